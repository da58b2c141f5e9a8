package service

import (
	"context"

	"github.com/skyhealth/kpi-gateway/internal/domain/social/entity"
)

var (
	facebookAccountFields = []string{"id", "name", "fan_count"}
	facebookPostFields    = []string{"id", "message", "permalink_url", "created_time", "reactions.summary(total_count)", "comments.summary(total_count)"}
)

// Facebook normalizes Facebook Page KPIs
type Facebook struct {
	api GraphAPI
}

// NewFacebook creates the Facebook normalizer
func NewFacebook(api GraphAPI) *Facebook {
	return &Facebook{api: api}
}

// Account fetches and normalizes the page summary
func (s *Facebook) Account(ctx context.Context, accountID, accessToken string) (*entity.AccountSummary, error) {
	obj, err := s.api.GetObject(ctx, accountID, facebookAccountFields, accessToken)
	if err != nil {
		return nil, err
	}

	sum := &entity.AccountSummary{
		Platform:  entity.PlatformFacebook,
		AccountID: stringOr(obj.Get("id"), accountID),
		Name:      obj.Get("name").String(),
	}
	if v := obj.Get("fan_count"); v.Exists() {
		sum.FanCount = int64Ptr(coerceCount(v))
	}

	return sum, nil
}

// Posts fetches up to limit recent page posts and normalizes each one.
// Engagement counters sit one level down in the reactions/comments
// summaries and default to 0 when the summary is absent.
func (s *Facebook) Posts(ctx context.Context, accountID, accessToken string, limit int) ([]entity.SocialPost, error) {
	items, err := s.api.ListEdge(ctx, accountID, "posts", facebookPostFields, accessToken, limit)
	if err != nil {
		return nil, err
	}

	posts := make([]entity.SocialPost, 0, len(items))
	for _, item := range items {
		posts = append(posts, entity.SocialPost{
			ID:            item.Get("id").String(),
			Platform:      entity.PlatformFacebook,
			Caption:       item.Get("message").String(),
			Permalink:     item.Get("permalink_url").String(),
			CreatedTime:   item.Get("created_time").String(),
			LikeCount:     coerceCount(item.Get("reactions.summary.total_count")),
			CommentsCount: coerceCount(item.Get("comments.summary.total_count")),
		})
	}

	return posts, nil
}
