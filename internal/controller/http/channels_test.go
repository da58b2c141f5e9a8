package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyhealth/kpi-gateway/internal/domain/channels"
	"github.com/skyhealth/kpi-gateway/internal/httpx/upstream/youtube"
)

type stubChannels struct {
	result *channels.Result
	seenIn channels.Input
}

func (s *stubChannels) Stats(ctx context.Context, in channels.Input) *channels.Result {
	s.seenIn = in
	return s.result
}

func TestChannelsPassesQueryIdentifiers(t *testing.T) {
	stub := &stubChannels{result: &channels.Result{
		YouTube: &youtube.ChannelStats{Title: "SkyHealth", Subscribers: 1200},
		Errors:  map[string]string{"linkedin": "upstream returned 403"},
	}}

	r := chi.NewRouter()
	NewChannelsHandler(stub).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/kpi/channels?youtube=UC123&linkedin=456", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, channels.Input{YouTubeID: "UC123", LinkedInID: "456"}, stub.seenIn)

	var result channels.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotNil(t, result.YouTube)
	assert.Equal(t, "SkyHealth", result.YouTube.Title)
	assert.Equal(t, "upstream returned 403", result.Errors["linkedin"])
	assert.Nil(t, result.LinkedIn)
}
