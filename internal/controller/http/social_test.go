package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyhealth/kpi-gateway/internal/domain/social/entity"
	"github.com/skyhealth/kpi-gateway/internal/domain/social/policy"
	"github.com/skyhealth/kpi-gateway/internal/httpx/response"
	"github.com/skyhealth/kpi-gateway/internal/httpx/upstream"
)

// stubPolicy returns a canned result or error
type stubPolicy struct {
	result *entity.KPIResult
	err    error
	seenIn policy.KPIInput
}

func (s *stubPolicy) KPI(ctx context.Context, in policy.KPIInput) (*entity.KPIResult, error) {
	s.seenIn = in
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func doSocial(t *testing.T, p SocialPolicy, target string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	NewSocialHandler(p, discardLogger()).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSocialOK(t *testing.T) {
	stub := &stubPolicy{result: &entity.KPIResult{
		Account: entity.AccountSummary{Platform: entity.PlatformInstagram, AccountID: "17841", Username: "demo"},
		Posts:   []entity.SocialPost{{ID: "m1", Platform: entity.PlatformInstagram, LikeCount: 5}},
	}}

	rec := doSocial(t, stub, "/kpi/social?platform=instagram&accountId=17841&accessToken=tok&postLimit=20")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, policy.KPIInput{
		Platform:    "instagram",
		AccountID:   "17841",
		AccessToken: "tok",
		PostLimit:   20,
	}, stub.seenIn)

	var result entity.KPIResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "demo", result.Account.Username)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, "m1", result.Posts[0].ID)
}

func TestSocialValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"unsupported platform", entity.ErrUnsupportedPlatform, "invalid_platform"},
		{"missing account id", entity.ErrMissingAccountID, "missing_accountId"},
		{"missing access token", entity.ErrMissingAccessToken, "missing_accessToken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doSocial(t, &stubPolicy{err: tt.err}, "/kpi/social?platform=bogus")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Error)
		})
	}
}

func TestSocialVendorFailureSurfacesStatusInDetail(t *testing.T) {
	stub := &stubPolicy{err: &upstream.HTTPError{StatusCode: 400, Body: `{"error":"bad token"}`}}

	rec := doSocial(t, stub, "/kpi/social?platform=instagram&accountId=17841")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "social_kpi_failed", body.Error)
	assert.Contains(t, body.Detail, "400")
	assert.Contains(t, body.Detail, "bad token")
}

func TestSocialUnparsablePostLimitFallsBack(t *testing.T) {
	stub := &stubPolicy{result: &entity.KPIResult{}}

	rec := doSocial(t, stub, "/kpi/social?platform=instagram&accountId=17841&postLimit=many")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, stub.seenIn.PostLimit)
}
