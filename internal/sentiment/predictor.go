// Package sentiment provides the pluggable three-way sentiment backends and
// the fixed mapping from collaborator labels to display labels.
package sentiment

import (
	"context"
	"log/slog"

	"campaignlens/internal/clients"
	"campaignlens/internal/models"
)

// Predictor is the seam between the pipeline and whichever sentiment backend
// a run uses. Responses come back in request order regardless of how the
// backend processed them.
type Predictor interface {
	PredictBatch(ctx context.Context, batch []models.SentimentRequest) ([]models.SentimentResponse, error)
}

// displayLabels is the fixed three-way table; anything outside it defaults
// to Neutro.
var displayLabels = map[string]string{
	models.SentimentPOS: models.SentimentPositivo,
	models.SentimentNEG: models.SentimentNegativo,
	models.SentimentNEU: models.SentimentNeutro,
}

// DisplayLabel maps a collaborator label to its Spanish display label,
// defaulting to Neutro for anything unmapped or missing.
func DisplayLabel(label string) string {
	if display, ok := displayLabels[label]; ok {
		return display
	}
	return models.SentimentNeutro
}

// HTTPPredictor calls the external sentiment collaborator.
type HTTPPredictor struct {
	client *clients.SentimentClient
}

func NewHTTPPredictor(client *clients.SentimentClient) *HTTPPredictor {
	return &HTTPPredictor{client: client}
}

func (p *HTTPPredictor) PredictBatch(ctx context.Context, batch []models.SentimentRequest) ([]models.SentimentResponse, error) {
	resp, err := p.client.GetBatchedSentiment(ctx, models.SentimentBatchRequest{Comments: batch})
	if err != nil {
		return nil, err
	}

	// Re-associate by comment ID, never by response position: the
	// collaborator makes no ordering promise.
	byID := make(map[string]models.SentimentResponse, len(resp.Results))
	for _, r := range resp.Results {
		byID[r.CommentID] = r
	}

	out := make([]models.SentimentResponse, 0, len(batch))
	for _, req := range batch {
		r, ok := byID[req.CommentID]
		if !ok {
			slog.Warn("[SentimentPredictor] No result for comment",
				slog.String("comment_id", req.CommentID))
			r = models.SentimentResponse{CommentID: req.CommentID}
		}
		out = append(out, r)
	}
	return out, nil
}

// VaderPredictor scores comments locally with govader, for offline runs.
type VaderPredictor struct{}

func NewVaderPredictor() *VaderPredictor {
	return &VaderPredictor{}
}

func (p *VaderPredictor) PredictBatch(_ context.Context, batch []models.SentimentRequest) ([]models.SentimentResponse, error) {
	out := make([]models.SentimentResponse, 0, len(batch))
	for _, req := range batch {
		_, label := AnalyzeWithVADER(req.Text)
		out = append(out, models.SentimentResponse{
			CommentID: req.CommentID,
			Label:     label,
		})
	}
	return out, nil
}
