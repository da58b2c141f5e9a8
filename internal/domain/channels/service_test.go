package channels

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyhealth/kpi-gateway/internal/httpx/upstream/linkedin"
	"github.com/skyhealth/kpi-gateway/internal/httpx/upstream/youtube"
)

type fakeYouTube struct {
	stats *youtube.ChannelStats
	err   error
	calls int
}

func (f *fakeYouTube) ChannelStatistics(ctx context.Context, channelID string) (*youtube.ChannelStats, error) {
	f.calls++
	return f.stats, f.err
}

type fakeLinkedIn struct {
	stats *linkedin.OrganizationStats
	err   error
	calls int
}

func (f *fakeLinkedIn) OrganizationStatistics(ctx context.Context, orgID string) (*linkedin.OrganizationStats, error) {
	f.calls++
	return f.stats, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStatsFetchesRequestedPlatforms(t *testing.T) {
	yt := &fakeYouTube{stats: &youtube.ChannelStats{Title: "Demo Channel", Subscribers: 1200, Views: 90000, Videos: 42}}
	li := &fakeLinkedIn{stats: &linkedin.OrganizationStats{Name: "Demo Org", Followers: 300}}
	svc := New(yt, li, true, testLogger())

	result := svc.Stats(context.Background(), Input{YouTubeID: "UC123", LinkedInID: "456", TikTokID: "any"})

	require.NotNil(t, result.YouTube)
	assert.Equal(t, "Demo Channel", result.YouTube.Title)
	require.NotNil(t, result.LinkedIn)
	assert.EqualValues(t, 300, result.LinkedIn.Followers)
	require.NotNil(t, result.TikTok)
	assert.Contains(t, result.TikTok["note"], "TikTok")
	assert.Empty(t, result.Errors)
}

func TestStatsSkipsUnrequestedPlatforms(t *testing.T) {
	yt := &fakeYouTube{stats: &youtube.ChannelStats{}}
	li := &fakeLinkedIn{stats: &linkedin.OrganizationStats{}}
	svc := New(yt, li, true, testLogger())

	result := svc.Stats(context.Background(), Input{YouTubeID: "UC123"})

	assert.NotNil(t, result.YouTube)
	assert.Nil(t, result.LinkedIn)
	assert.Nil(t, result.TikTok)
	assert.Zero(t, li.calls)
}

func TestStatsSkipsUnconfiguredPlatforms(t *testing.T) {
	svc := New(nil, nil, false, testLogger())

	result := svc.Stats(context.Background(), Input{YouTubeID: "UC123", LinkedInID: "456", TikTokID: "any"})

	assert.Nil(t, result.YouTube)
	assert.Nil(t, result.LinkedIn)
	assert.Nil(t, result.TikTok)
	assert.Empty(t, result.Errors)
}

func TestStatsIsolatesFailures(t *testing.T) {
	yt := &fakeYouTube{err: errors.New("quota exceeded")}
	li := &fakeLinkedIn{stats: &linkedin.OrganizationStats{Name: "Demo Org", Followers: 300}}
	svc := New(yt, li, false, testLogger())

	result := svc.Stats(context.Background(), Input{YouTubeID: "UC123", LinkedInID: "456"})

	// youtube failed, linkedin still answered
	assert.Nil(t, result.YouTube)
	require.NotNil(t, result.LinkedIn)
	assert.Equal(t, "Demo Org", result.LinkedIn.Name)
	require.Contains(t, result.Errors, "youtube")
	assert.Contains(t, result.Errors["youtube"], "quota exceeded")
}
