package models

import "time"

// RawComment is one row of the ingested campaign dataset, before any
// filtering or enrichment. A zero Timestamp means the source cell was empty.
type RawComment struct {
	CommentID       string    `json:"comment_id"`
	Text            string    `json:"comment_text"`
	Timestamp       time.Time `json:"created_time_processed"`
	Platform        string    `json:"platform"`
	PostURL         string    `json:"post_url"`
	PostURLOriginal string    `json:"post_url_original"`
}

// HasRequiredFields reports whether the row survives aggregation. Rows
// missing text, timestamp or post_url are excluded, never repaired.
func (r RawComment) HasRequiredFields() bool {
	return r.Text != "" && !r.Timestamp.IsZero() && r.PostURL != ""
}

// Comment is a RawComment after enrichment: local-time normalized,
// sentiment and topic assigned, post label joined.
type Comment struct {
	CommentID string    `json:"comment_id"`
	Text      string    `json:"comment_text"`
	LocalTime time.Time `json:"created_time_local"`
	Platform  string    `json:"platform"`
	PostURL   string    `json:"post_url"`
	Sentiment string    `json:"sentiment"`
	Topic     string    `json:"topic"`
	PostLabel string    `json:"post_label"`
}
