package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyhealth/kpi-gateway/internal/domain/social/entity"
)

func post(id string, likes, comments int64, created string) entity.SocialPost {
	return entity.SocialPost{
		ID:            id,
		Platform:      entity.PlatformInstagram,
		LikeCount:     likes,
		CommentsCount: comments,
		CreatedTime:   created,
	}
}

func ids(posts []entity.SocialPost) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestTopByLikes(t *testing.T) {
	posts := []entity.SocialPost{
		post("a", 3, 0, ""),
		post("b", 9, 0, ""),
		post("c", 3, 0, ""),
		post("d", 12, 0, ""),
	}

	got := TopByLikes(posts)

	// descending, ties keep fetch order (a before c)
	assert.Equal(t, []string{"d", "b", "a", "c"}, ids(got))
	// input untouched
	assert.Equal(t, "a", posts[0].ID)
}

func TestTopByLikesTruncatesToTen(t *testing.T) {
	posts := make([]entity.SocialPost, 0, 25)
	for i := 0; i < 25; i++ {
		posts = append(posts, post(fmt.Sprintf("p%d", i), int64(i), 0, ""))
	}

	got := TopByLikes(posts)

	require.Len(t, got, 10)
	assert.Equal(t, "p24", got[0].ID)
	assert.Equal(t, "p15", got[9].ID)
}

func TestTopByCommentsStableOnTies(t *testing.T) {
	posts := []entity.SocialPost{
		post("a", 0, 4, ""),
		post("b", 0, 4, ""),
		post("c", 0, 7, ""),
	}

	got := TopByComments(posts)

	assert.Equal(t, []string{"c", "a", "b"}, ids(got))
}

func TestLatestFirst(t *testing.T) {
	posts := []entity.SocialPost{
		post("old", 0, 0, "2024-01-01T00:00:00Z"),
		post("new", 0, 0, "2024-02-01T00:00:00Z"),
		post("mid", 0, 0, "2024-01-15T00:00:00Z"),
	}

	got := LatestFirst(posts)

	assert.Equal(t, []string{"new", "mid", "old"}, ids(got))
	assert.Len(t, got, len(posts))
}

func TestLatestFirstUnparsableTimestampsSortLast(t *testing.T) {
	posts := []entity.SocialPost{
		post("garbled", 0, 0, "not-a-date"),
		post("dated", 0, 0, "2024-01-01T00:00:00Z"),
		post("undated", 0, 0, ""),
	}

	got := LatestFirst(posts)

	// both unparsable posts sort as the minimum date, keeping fetch order
	assert.Equal(t, []string{"dated", "garbled", "undated"}, ids(got))
}

func TestLatestFirstGraphOffsetLayout(t *testing.T) {
	posts := []entity.SocialPost{
		post("a", 0, 0, "2024-01-01T10:00:00+0000"),
		post("b", 0, 0, "2024-01-02T10:00:00+0000"),
	}

	got := LatestFirst(posts)

	assert.Equal(t, []string{"b", "a"}, ids(got))
}

func TestRankEmptyInput(t *testing.T) {
	var posts []entity.SocialPost

	assert.NotNil(t, TopByLikes(posts))
	assert.Empty(t, TopByLikes(posts))
	assert.NotNil(t, TopByComments(posts))
	assert.Empty(t, TopByComments(posts))
	assert.NotNil(t, LatestFirst(posts))
	assert.Empty(t, LatestFirst(posts))
}

func TestSummarize(t *testing.T) {
	posts := []entity.SocialPost{
		post("a", 4, 2, ""),
		post("b", 10, 0, ""),
		post("c", 1, 4, ""),
	}

	sum := Summarize(posts)

	assert.Equal(t, 3, sum.TotalPosts)
	assert.InDelta(t, 5.0, sum.AvgLikes, 1e-9)
	assert.InDelta(t, 2.0, sum.AvgComments, 1e-9)
	require.NotNil(t, sum.TopPost)
	assert.Equal(t, "b", sum.TopPost.ID)
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)

	assert.Equal(t, 0, sum.TotalPosts)
	assert.Zero(t, sum.AvgLikes)
	assert.Zero(t, sum.AvgComments)
	assert.Nil(t, sum.TopPost)
}
