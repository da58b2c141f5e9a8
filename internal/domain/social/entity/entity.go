package entity

import (
	"strings"
	"time"
)

// Platform identifies a supported social platform
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
)

// ParsePlatform maps a request parameter to a supported platform
func ParsePlatform(s string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformInstagram:
		return PlatformInstagram, nil
	case PlatformFacebook:
		return PlatformFacebook, nil
	default:
		return "", ErrUnsupportedPlatform
	}
}

// AccountSummary is one queried account's profile-level KPIs. The optional
// counters stay nil when the vendor omits them: vendor silence about a
// capability must not be reported as a zero count.
type AccountSummary struct {
	Platform  Platform `json:"platform"`
	AccountID string   `json:"account_id"`

	// Instagram fields
	Username   string `json:"username,omitempty"`
	Followers  *int64 `json:"followers,omitempty"`
	MediaCount *int64 `json:"media_count,omitempty"`

	// Facebook fields
	Name     string `json:"name,omitempty"`
	FanCount *int64 `json:"fan_count,omitempty"`
}

// SocialPost is the canonical post record every vendor media/post item is
// normalized into. Engagement counters default to 0 when the vendor omits
// the field or returns a non-numeric value; they are never null.
type SocialPost struct {
	ID            string   `json:"id"`
	Platform      Platform `json:"platform"`
	Caption       string   `json:"caption,omitempty"`
	MediaType     string   `json:"media_type,omitempty"` // instagram only
	MediaURL      string   `json:"media_url,omitempty"`  // instagram only
	Permalink     string   `json:"permalink,omitempty"`
	CreatedTime   string   `json:"created_time,omitempty"` // ISO-8601 as supplied
	LikeCount     int64    `json:"like_count"`
	CommentsCount int64    `json:"comments_count"`
}

// createdTimeLayouts covers the timestamp shapes Meta emits: strict
// RFC 3339 and the Graph API's +0000 offset without a colon.
var createdTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
}

// CreatedAt parses the post timestamp. Unparsable values yield the zero
// time so they sort as older than every parseable timestamp.
func (p SocialPost) CreatedAt() time.Time {
	for _, layout := range createdTimeLayouts {
		if t, err := time.Parse(layout, p.CreatedTime); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Summary aggregates engagement statistics over one account's posts
type Summary struct {
	TotalPosts  int         `json:"total_posts"`
	AvgLikes    float64     `json:"avg_likes"`
	AvgComments float64     `json:"avg_comments"`
	TopPost     *SocialPost `json:"top_post,omitempty"` // highest like_count
}

// KPIResult is the full per-request payload: one account summary, the
// posts in fetch order, and the derived views over them.
type KPIResult struct {
	Account       AccountSummary `json:"account"`
	Posts         []SocialPost   `json:"posts"`
	TopByLikes    []SocialPost   `json:"top_by_likes"`
	TopByComments []SocialPost   `json:"top_by_comments"`
	LatestFirst   []SocialPost   `json:"latest_first"`
	Summary       Summary        `json:"summary"`
}
