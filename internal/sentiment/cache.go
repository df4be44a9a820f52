package sentiment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"campaignlens/internal/clients"
	"campaignlens/internal/models"
)

// CachedPredictor decorates a Predictor with a Valkey label cache keyed by
// text hash, so duplicate comments skip the collaborator. Cache failures
// degrade to plain prediction.
type CachedPredictor struct {
	inner  Predictor
	valkey *clients.ValkeyClient
}

func NewCachedPredictor(inner Predictor, valkey *clients.ValkeyClient) *CachedPredictor {
	return &CachedPredictor{inner: inner, valkey: valkey}
}

func (p *CachedPredictor) PredictBatch(ctx context.Context, batch []models.SentimentRequest) ([]models.SentimentResponse, error) {
	labels := make(map[string]string, len(batch))
	var misses []models.SentimentRequest
	seen := make(map[string]struct{}, len(batch))

	for _, req := range batch {
		hash := hashText(req.Text)
		if label, ok := p.valkey.GetCachedLabel(ctx, hash); ok {
			labels[hash] = label
			continue
		}
		if _, dup := seen[hash]; dup {
			continue
		}
		seen[hash] = struct{}{}
		misses = append(misses, req)
	}

	if len(misses) > 0 {
		results, err := p.inner.PredictBatch(ctx, misses)
		if err != nil {
			return nil, err
		}
		for i, r := range results {
			hash := hashText(misses[i].Text)
			labels[hash] = r.Label
			if err := p.valkey.StoreLabel(ctx, hash, r.Label); err != nil {
				slog.Warn("[SentimentCache] Failed to store label",
					slog.String("error", err.Error()))
			}
		}
	}

	slog.Debug("[SentimentCache] Batch resolved",
		slog.Int("batch_size", len(batch)),
		slog.Int("misses", len(misses)))

	out := make([]models.SentimentResponse, 0, len(batch))
	for _, req := range batch {
		out = append(out, models.SentimentResponse{
			CommentID: req.CommentID,
			Label:     labels[hashText(req.Text)],
		})
	}
	return out, nil
}

func hashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
