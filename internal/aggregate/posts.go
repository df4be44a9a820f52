// Package aggregate holds the two aggregation stages of the pipeline: post
// deduplication/ranking and comment enrichment.
package aggregate

import (
	"fmt"
	"log/slog"
	"sort"

	"campaignlens/internal/models"
)

// Posts deduplicates the candidate set by post_url (first occurrence wins),
// counts valid comments per post, ranks by count descending with stable
// ties, and assigns the display label. Candidates with an empty post_url
// are discarded.
func Posts(candidates []models.PostCandidate, rows []models.RawComment) []models.Post {
	counts := make(map[string]int)
	for _, row := range rows {
		if row.HasRequiredFields() {
			counts[row.PostURL]++
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	posts := make([]models.Post, 0, len(candidates))
	for _, c := range candidates {
		if c.PostURL == "" {
			continue
		}
		if _, dup := seen[c.PostURL]; dup {
			continue
		}
		seen[c.PostURL] = struct{}{}

		posts = append(posts, models.Post{
			PostURL:         c.PostURL,
			PostURLOriginal: c.PostURLOriginal,
			Platform:        c.Platform,
			CommentCount:    counts[c.PostURL],
		})
	}

	// Stable: ties keep first-appearance order from the source data.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CommentCount > posts[j].CommentCount
	})

	for i := range posts {
		posts[i].Rank = i + 1
		posts[i].Label = fmt.Sprintf("Pauta %d (%s)", posts[i].Rank, posts[i].Platform)
	}

	slog.Info("[PostAggregator] Posts aggregated",
		slog.Int("candidates", len(candidates)),
		slog.Int("unique_posts", len(posts)))

	return posts
}

// PostLabels builds the post_url → label lookup used to tag comments.
func PostLabels(posts []models.Post) map[string]string {
	labels := make(map[string]string, len(posts))
	for _, p := range posts {
		labels[p.PostURL] = p.Label
	}
	return labels
}
