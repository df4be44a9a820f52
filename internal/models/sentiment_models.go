package models

// Collaborator label vocabulary. Anything else maps to Neutro downstream.
const (
	SentimentPOS = "POS"
	SentimentNEG = "NEG"
	SentimentNEU = "NEU"
)

// Display labels carried on the final payload.
const (
	SentimentPositivo = "Positivo"
	SentimentNegativo = "Negativo"
	SentimentNeutro   = "Neutro"
)

type SentimentRequest struct {
	CommentID string `json:"comment_id"`
	Text      string `json:"text"`
}

type SentimentResponse struct {
	CommentID string `json:"comment_id"`
	Label     string `json:"label"`
}

type SentimentBatchRequest struct {
	Comments []SentimentRequest `json:"comments"`
}

type SentimentBatchResponse struct {
	Results []SentimentResponse `json:"results"`
}
