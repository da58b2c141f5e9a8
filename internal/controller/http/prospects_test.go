package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyhealth/kpi-gateway/internal/domain/prospects"
)

func doProspects(t *testing.T, target string) []prospects.Prospect {
	t.Helper()
	r := chi.NewRouter()
	NewProspectsHandler(25).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var list []prospects.Prospect
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	return list
}

func TestProspectsList(t *testing.T) {
	list := doProspects(t, "/prospects")
	assert.NotEmpty(t, list)
	assert.NotEmpty(t, list[0].Name)
}

func TestProspectsLimit(t *testing.T) {
	assert.Len(t, doProspects(t, "/prospects?limit=1"), 1)
}

func TestProspectsInvalidLimitUsesDefault(t *testing.T) {
	full := doProspects(t, "/prospects")
	assert.Len(t, doProspects(t, "/prospects?limit=zero"), len(full))
	assert.Len(t, doProspects(t, "/prospects?limit=-3"), len(full))
}
