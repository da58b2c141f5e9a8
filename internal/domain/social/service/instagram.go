// Package service fetches vendor account and post records and normalizes
// them into the canonical KPI shapes, one normalizer per platform, plus
// the ranking over the normalized posts.
package service

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/skyhealth/kpi-gateway/internal/domain/social/entity"
)

// GraphAPI is the consumer-side view of the Graph fetch adapter.
// Interface is defined by consumer (normalizer), not provider (client).
type GraphAPI interface {
	GetObject(ctx context.Context, id string, fields []string, accessToken string) (gjson.Result, error)
	ListEdge(ctx context.Context, id, edge string, fields []string, accessToken string, limit int) ([]gjson.Result, error)
}

var (
	instagramAccountFields = []string{"id", "username", "followers_count", "media_count"}
	instagramMediaFields   = []string{"id", "caption", "media_type", "media_url", "permalink", "timestamp", "like_count", "comments_count"}
)

// Instagram normalizes Instagram business-account KPIs
type Instagram struct {
	api GraphAPI
}

// NewInstagram creates the Instagram normalizer
func NewInstagram(api GraphAPI) *Instagram {
	return &Instagram{api: api}
}

// Account fetches and normalizes the account summary.
// Counters the vendor omits stay absent, not zero.
func (s *Instagram) Account(ctx context.Context, accountID, accessToken string) (*entity.AccountSummary, error) {
	obj, err := s.api.GetObject(ctx, accountID, instagramAccountFields, accessToken)
	if err != nil {
		return nil, err
	}

	sum := &entity.AccountSummary{
		Platform:  entity.PlatformInstagram,
		AccountID: stringOr(obj.Get("id"), accountID),
		Username:  obj.Get("username").String(),
	}
	if v := obj.Get("followers_count"); v.Exists() {
		sum.Followers = int64Ptr(coerceCount(v))
	}
	if v := obj.Get("media_count"); v.Exists() {
		sum.MediaCount = int64Ptr(coerceCount(v))
	}

	return sum, nil
}

// Posts fetches up to limit recent media items and normalizes each one.
// Order is the vendor's fetch order.
func (s *Instagram) Posts(ctx context.Context, accountID, accessToken string, limit int) ([]entity.SocialPost, error) {
	items, err := s.api.ListEdge(ctx, accountID, "media", instagramMediaFields, accessToken, limit)
	if err != nil {
		return nil, err
	}

	posts := make([]entity.SocialPost, 0, len(items))
	for _, item := range items {
		posts = append(posts, entity.SocialPost{
			ID:            item.Get("id").String(),
			Platform:      entity.PlatformInstagram,
			Caption:       item.Get("caption").String(),
			MediaType:     item.Get("media_type").String(),
			MediaURL:      item.Get("media_url").String(),
			Permalink:     item.Get("permalink").String(),
			CreatedTime:   item.Get("timestamp").String(),
			LikeCount:     coerceCount(item.Get("like_count")),
			CommentsCount: coerceCount(item.Get("comments_count")),
		})
	}

	return posts, nil
}

// coerceCount maps a vendor counter to a non-negative int64. Missing and
// non-numeric values become 0.
func coerceCount(v gjson.Result) int64 {
	n := v.Int()
	if n < 0 {
		return 0
	}
	return n
}

func stringOr(v gjson.Result, fallback string) string {
	if s := v.String(); s != "" {
		return s
	}
	return fallback
}

func int64Ptr(n int64) *int64 {
	return &n
}
