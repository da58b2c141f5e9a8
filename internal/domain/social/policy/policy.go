// Package policy orchestrates social KPI retrieval: platform dispatch,
// request validation, the concurrent account + posts fetch, and assembly
// of the final result.
package policy

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/skyhealth/kpi-gateway/internal/domain/social/entity"
	"github.com/skyhealth/kpi-gateway/internal/domain/social/service"
)

// DefaultPostLimit bounds the post fetch when the request does not ask
// for a specific count
const DefaultPostLimit = 50

// PlatformFetcher is the per-platform fetch-and-normalize capability the
// policy dispatches to. Implemented by service.Instagram and
// service.Facebook.
type PlatformFetcher interface {
	Account(ctx context.Context, accountID, accessToken string) (*entity.AccountSummary, error)
	Posts(ctx context.Context, accountID, accessToken string, limit int) ([]entity.SocialPost, error)
}

// Config carries the injected process-wide defaults. The fallback token is
// an explicit configuration value, not ambient global state.
type Config struct {
	DefaultAccessToken string
	DefaultPostLimit   int
}

// Policy is the public entry point for social KPI retrieval
type Policy struct {
	fetchers map[entity.Platform]PlatformFetcher
	cfg      Config
}

// New creates a new social KPI policy
func New(instagram, facebook PlatformFetcher, cfg Config) *Policy {
	if cfg.DefaultPostLimit <= 0 {
		cfg.DefaultPostLimit = DefaultPostLimit
	}
	return &Policy{
		fetchers: map[entity.Platform]PlatformFetcher{
			entity.PlatformInstagram: instagram,
			entity.PlatformFacebook:  facebook,
		},
		cfg: cfg,
	}
}

// KPIInput represents one KPI request
type KPIInput struct {
	Platform    string
	AccountID   string
	AccessToken string // optional, falls back to the configured credential
	PostLimit   int    // optional, falls back to the configured default
}

// KPI validates the request, fetches the account summary and the post list
// concurrently, ranks the posts, and assembles the result. Validation runs
// before any network call; either fetch failing fails the whole request
// and cancels the other (fail-fast join, no partial result).
func (p *Policy) KPI(ctx context.Context, in KPIInput) (*entity.KPIResult, error) {
	platform, err := entity.ParsePlatform(in.Platform)
	if err != nil {
		return nil, err
	}
	fetcher := p.fetchers[platform]
	if fetcher == nil {
		return nil, entity.ErrUnsupportedPlatform
	}

	if in.AccountID == "" {
		return nil, entity.ErrMissingAccountID
	}

	token := in.AccessToken
	if token == "" {
		token = p.cfg.DefaultAccessToken
	}
	if token == "" {
		return nil, entity.ErrMissingAccessToken
	}

	limit := in.PostLimit
	if limit <= 0 {
		limit = p.cfg.DefaultPostLimit
	}

	var (
		account *entity.AccountSummary
		posts   []entity.SocialPost
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		account, err = fetcher.Account(gctx, in.AccountID, token)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = fetcher.Posts(gctx, in.AccountID, token, limit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &entity.KPIResult{
		Account:       *account,
		Posts:         posts,
		TopByLikes:    service.TopByLikes(posts),
		TopByComments: service.TopByComments(posts),
		LatestFirst:   service.LatestFirst(posts),
		Summary:       service.Summarize(posts),
	}, nil
}
