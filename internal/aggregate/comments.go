package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"campaignlens/internal/classifier"
	"campaignlens/internal/models"
	"campaignlens/internal/sentiment"
	"campaignlens/internal/utils"
)

const (
	SENTIMENT_BATCH_SIZE = 25
	MAX_PARALLEL_BATCHES = 4

	// Fixed-offset conversion to campaign local time. Not calendar-aware:
	// no daylight-saving rules apply.
	LOCAL_TIME_OFFSET = -5 * time.Hour

	// Label for comments whose post_url has no aggregated post.
	UNASSIGNED_POST_LABEL = "Sin Pauta"
)

// EnrichComments runs the comment stage: drop rows missing required fields,
// normalize timestamps, attach sentiment and topic, join post labels. The
// returned slice preserves dataset order; the int is the excluded-row count.
// A sentiment collaborator failure aborts the stage.
func EnrichComments(
	ctx context.Context,
	rows []models.RawComment,
	clf *classifier.Classifier,
	predictor sentiment.Predictor,
	postLabels map[string]string,
) ([]models.Comment, int, error) {
	valid := make([]models.RawComment, 0, len(rows))
	for _, row := range rows {
		if row.HasRequiredFields() {
			valid = append(valid, row)
		}
	}
	excluded := len(rows) - len(valid)
	if excluded > 0 {
		slog.Info("[CommentAggregator] Excluded rows missing required fields",
			slog.Int("excluded", excluded))
	}

	labels, err := predictLabels(ctx, valid, predictor)
	if err != nil {
		return nil, excluded, err
	}

	comments := make([]models.Comment, 0, len(valid))
	for _, row := range valid {
		postLabel, ok := postLabels[row.PostURL]
		if !ok {
			postLabel = UNASSIGNED_POST_LABEL
		}

		comments = append(comments, models.Comment{
			CommentID: row.CommentID,
			Text:      row.Text,
			LocalTime: row.Timestamp.Add(LOCAL_TIME_OFFSET),
			Platform:  row.Platform,
			PostURL:   row.PostURL,
			Sentiment: sentiment.DisplayLabel(labels[row.CommentID]),
			Topic:     clf.Classify(row.Text),
			PostLabel: postLabel,
		})
	}

	slog.Info("[CommentAggregator] Comments enriched",
		slog.Int("comments", len(comments)))

	return comments, excluded, nil
}

// predictLabels fans batches out to the predictor with bounded parallelism.
// Results land in a map keyed by comment ID, so completion order never
// affects the downstream join.
func predictLabels(ctx context.Context, rows []models.RawComment, predictor sentiment.Predictor) (map[string]string, error) {
	requests := make([]models.SentimentRequest, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, models.SentimentRequest{
			CommentID: row.CommentID,
			Text:      row.Text,
		})
	}

	chunks := utils.Chunk(requests, SENTIMENT_BATCH_SIZE)
	results := make([][]models.SentimentResponse, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(MAX_PARALLEL_BATCHES)
	for i, chunk := range chunks {
		g.Go(func() error {
			resp, err := predictor.PredictBatch(gctx, chunk)
			if err != nil {
				return fmt.Errorf("[CommentAggregator] sentiment batch %d failed: %w", i+1, err)
			}
			results[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	labels := make(map[string]string, len(requests))
	for _, batch := range results {
		for _, r := range batch {
			labels[r.CommentID] = r.Label
		}
	}
	return labels, nil
}
