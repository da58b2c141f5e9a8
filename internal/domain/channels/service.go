// Package channels reports per-channel KPIs for the non-Meta platforms
// (YouTube, LinkedIn, TikTok placeholder). Unlike the social KPI endpoint,
// platforms here are isolated deliberately: one platform failing is
// reported in the errors map while the others still return their stats.
package channels

import (
	"context"
	"log/slog"
	"sync"

	"github.com/skyhealth/kpi-gateway/internal/httpx/upstream/linkedin"
	"github.com/skyhealth/kpi-gateway/internal/httpx/upstream/youtube"
)

// tiktokNote mirrors the placeholder response of the TikTok integration
const tiktokNote = "TikTok wired – add your endpoint logic."

// YouTubeAPI is the consumer-side view of the YouTube client
type YouTubeAPI interface {
	ChannelStatistics(ctx context.Context, channelID string) (*youtube.ChannelStats, error)
}

// LinkedInAPI is the consumer-side view of the LinkedIn client
type LinkedInAPI interface {
	OrganizationStatistics(ctx context.Context, orgID string) (*linkedin.OrganizationStats, error)
}

// Service fans a channels request out to the configured platforms.
// A nil client means the platform has no credentials and is skipped.
type Service struct {
	youtube  YouTubeAPI
	linkedin LinkedInAPI
	tiktok   bool // TikTok credential present
	logger   *slog.Logger
}

// New creates the channels service
func New(yt YouTubeAPI, li LinkedInAPI, tiktokConfigured bool, logger *slog.Logger) *Service {
	return &Service{
		youtube:  yt,
		linkedin: li,
		tiktok:   tiktokConfigured,
		logger:   logger,
	}
}

// Input names the channel identifier per platform; empty means the
// platform was not requested.
type Input struct {
	YouTubeID  string
	LinkedInID string
	TikTokID   string
}

// Result holds one entry per requested-and-configured platform, either
// its stats or its error string.
type Result struct {
	YouTube  *youtube.ChannelStats       `json:"youtube,omitempty"`
	LinkedIn *linkedin.OrganizationStats `json:"linkedin,omitempty"`
	TikTok   map[string]string           `json:"tiktok,omitempty"`
	Errors   map[string]string           `json:"errors,omitempty"`
}

// Stats fetches each requested platform concurrently. Failures are
// collected per platform, never aborting the others.
func (s *Service) Stats(ctx context.Context, in Input) *Result {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result = &Result{}
	)

	fail := func(platform string, err error) {
		s.logger.Error("channel stats fetch failed", "platform", platform, "error", err)
		mu.Lock()
		defer mu.Unlock()
		if result.Errors == nil {
			result.Errors = make(map[string]string)
		}
		result.Errors[platform] = err.Error()
	}

	if in.YouTubeID != "" && s.youtube != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stats, err := s.youtube.ChannelStatistics(ctx, in.YouTubeID)
			if err != nil {
				fail("youtube", err)
				return
			}
			mu.Lock()
			result.YouTube = stats
			mu.Unlock()
		}()
	}

	if in.LinkedInID != "" && s.linkedin != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stats, err := s.linkedin.OrganizationStatistics(ctx, in.LinkedInID)
			if err != nil {
				fail("linkedin", err)
				return
			}
			mu.Lock()
			result.LinkedIn = stats
			mu.Unlock()
		}()
	}

	if in.TikTokID != "" && s.tiktok {
		result.TikTok = map[string]string{"note": tiktokNote}
	}

	wg.Wait()
	return result
}
