package service

import (
	"sort"

	"github.com/skyhealth/kpi-gateway/internal/domain/social/entity"
)

// topN is how many posts the engagement views keep
const topN = 10

// TopByLikes returns the posts with the highest like counts, descending,
// truncated to topN. The sort is stable: ties keep their fetch order.
func TopByLikes(posts []entity.SocialPost) []entity.SocialPost {
	out := sortedCopy(posts, func(a, b entity.SocialPost) bool {
		return a.LikeCount > b.LikeCount
	})
	return truncate(out, topN)
}

// TopByComments returns the posts with the highest comment counts,
// descending, stable, truncated to topN.
func TopByComments(posts []entity.SocialPost) []entity.SocialPost {
	out := sortedCopy(posts, func(a, b entity.SocialPost) bool {
		return a.CommentsCount > b.CommentsCount
	})
	return truncate(out, topN)
}

// LatestFirst returns all posts ordered by parsed creation time,
// newest first, stable. Posts with unparsable timestamps parse to the
// zero time and therefore sort last.
func LatestFirst(posts []entity.SocialPost) []entity.SocialPost {
	return sortedCopy(posts, func(a, b entity.SocialPost) bool {
		return a.CreatedAt().After(b.CreatedAt())
	})
}

// Summarize computes aggregate engagement statistics over the full post
// sequence. An empty sequence yields zero averages and no top post.
func Summarize(posts []entity.SocialPost) entity.Summary {
	sum := entity.Summary{TotalPosts: len(posts)}
	if len(posts) == 0 {
		return sum
	}

	var likes, comments int64
	top := 0
	for i, p := range posts {
		likes += p.LikeCount
		comments += p.CommentsCount
		if p.LikeCount > posts[top].LikeCount {
			top = i
		}
	}

	n := float64(len(posts))
	sum.AvgLikes = float64(likes) / n
	sum.AvgComments = float64(comments) / n
	topPost := posts[top]
	sum.TopPost = &topPost

	return sum
}

func sortedCopy(posts []entity.SocialPost, less func(a, b entity.SocialPost) bool) []entity.SocialPost {
	out := make([]entity.SocialPost, len(posts))
	copy(out, posts)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func truncate(posts []entity.SocialPost, n int) []entity.SocialPost {
	if len(posts) > n {
		return posts[:n]
	}
	return posts
}
