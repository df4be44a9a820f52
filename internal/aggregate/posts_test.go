package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaignlens/internal/models"
)

func rawComment(postURL string, text string) models.RawComment {
	return models.RawComment{
		CommentID: "id-" + text,
		Text:      text,
		Timestamp: time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC),
		Platform:  "Facebook",
		PostURL:   postURL,
	}
}

func repeatComments(postURL string, n int) []models.RawComment {
	out := make([]models.RawComment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, rawComment(postURL, postURL+string(rune('a'+i))))
	}
	return out
}

func TestPostsRankingAndLabels(t *testing.T) {
	candidates := []models.PostCandidate{
		{PostURL: "https://tt/p2", PostURLOriginal: "https://tt/p2", Platform: "TikTok"},
		{PostURL: "https://fb/p1", PostURLOriginal: "https://fb/p1", Platform: "Facebook"},
	}
	rows := append(repeatComments("https://tt/p2", 5), repeatComments("https://fb/p1", 10)...)

	posts := Posts(candidates, rows)
	require.Len(t, posts, 2)

	assert.Equal(t, 1, posts[0].Rank)
	assert.Equal(t, "https://fb/p1", posts[0].PostURL)
	assert.Equal(t, 10, posts[0].CommentCount)
	assert.Equal(t, "Pauta 1 (Facebook)", posts[0].Label)

	assert.Equal(t, 2, posts[1].Rank)
	assert.Equal(t, 5, posts[1].CommentCount)
	assert.Equal(t, "Pauta 2 (TikTok)", posts[1].Label)
}

func TestPostsDeduplicatesFirstWins(t *testing.T) {
	candidates := []models.PostCandidate{
		{PostURL: "https://fb/p1", PostURLOriginal: "https://orig/a", Platform: "Facebook"},
		{PostURL: "https://fb/p1", PostURLOriginal: "https://orig/b", Platform: "Instagram"},
	}

	posts := Posts(candidates, nil)
	require.Len(t, posts, 1)
	assert.Equal(t, "https://orig/a", posts[0].PostURLOriginal)
	assert.Equal(t, "Facebook", posts[0].Platform)
}

func TestPostsDropsEmptyURL(t *testing.T) {
	candidates := []models.PostCandidate{
		{PostURL: "", Platform: "Facebook"},
		{PostURL: "https://fb/p1", Platform: "Facebook"},
	}

	posts := Posts(candidates, nil)
	require.Len(t, posts, 1)
	assert.Equal(t, "https://fb/p1", posts[0].PostURL)
}

func TestPostsIgnoresInvalidComments(t *testing.T) {
	candidates := []models.PostCandidate{
		{PostURL: "https://fb/p1", Platform: "Facebook"},
	}

	valid := rawComment("https://fb/p1", "hola")
	noText := rawComment("https://fb/p1", "")
	noTime := rawComment("https://fb/p1", "chau")
	noTime.Timestamp = time.Time{}

	posts := Posts(candidates, []models.RawComment{valid, noText, noTime})
	require.Len(t, posts, 1)
	assert.Equal(t, 1, posts[0].CommentCount)
}

func TestPostsZeroCountDefault(t *testing.T) {
	candidates := []models.PostCandidate{
		{PostURL: "https://fb/p1", Platform: "Facebook"},
	}

	posts := Posts(candidates, nil)
	require.Len(t, posts, 1)
	assert.Equal(t, 0, posts[0].CommentCount)
	assert.Equal(t, 1, posts[0].Rank)
}

func TestPostsStableTieOrder(t *testing.T) {
	candidates := []models.PostCandidate{
		{PostURL: "https://fb/p1", Platform: "Facebook"},
		{PostURL: "https://ig/p2", Platform: "Instagram"},
		{PostURL: "https://tt/p3", Platform: "TikTok"},
	}
	rows := append(repeatComments("https://fb/p1", 2), repeatComments("https://ig/p2", 2)...)
	rows = append(rows, repeatComments("https://tt/p3", 2)...)

	posts := Posts(candidates, rows)
	require.Len(t, posts, 3)

	// All tied: first appearance order is preserved and ranks are 1..N.
	assert.Equal(t, []string{"https://fb/p1", "https://ig/p2", "https://tt/p3"},
		[]string{posts[0].PostURL, posts[1].PostURL, posts[2].PostURL})
	for i, p := range posts {
		assert.Equal(t, i+1, p.Rank)
	}
}

func TestPostLabels(t *testing.T) {
	posts := []models.Post{
		{PostURL: "https://fb/p1", Label: "Pauta 1 (Facebook)"},
		{PostURL: "https://tt/p2", Label: "Pauta 2 (TikTok)"},
	}

	labels := PostLabels(posts)
	assert.Equal(t, "Pauta 1 (Facebook)", labels["https://fb/p1"])
	assert.Equal(t, "Pauta 2 (TikTok)", labels["https://tt/p2"])
}
