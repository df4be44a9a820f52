package models

// PostCandidate is the (post_url, post_url_original, platform) triple taken
// from every dataset row, before deduplication.
type PostCandidate struct {
	PostURL         string `json:"post_url"`
	PostURLOriginal string `json:"post_url_original"`
	Platform        string `json:"platform"`
}

// Post is a deduplicated, ranked advertisement (pauta).
type Post struct {
	PostURL         string `json:"post_url"`
	PostURLOriginal string `json:"post_url_original"`
	Platform        string `json:"platform"`
	CommentCount    int    `json:"comment_count"`
	Rank            int    `json:"rank"`
	Label           string `json:"post_label"`
}
