package models

// CommentRecord is the external comment schema consumed by the dashboard.
// Date is local time with the campaign offset already applied, serialized
// without a UTC suffix.
type CommentRecord struct {
	Date      string `json:"date"`
	Comment   string `json:"comment"`
	Sentiment string `json:"sentiment"`
	Topic     string `json:"topic"`
	Platform  string `json:"platform"`
	PostURL   string `json:"post_url"`
	PostLabel string `json:"post_label"`
}

type DateRange struct {
	MinDate string `json:"min_date"`
	MaxDate string `json:"max_date"`
}

// PostOption pairs a post_url with its display label for the post filter.
type PostOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FilterOptions struct {
	Platforms []string     `json:"platforms"`
	Topics    []string     `json:"topics"`
	Posts     []PostOption `json:"posts"`
}

type CampaignInfo struct {
	CampaignName string `json:"campaign_name"`
	Product      string `json:"product"`
	Version      string `json:"version"`
}

// ReportPayload is the single self-contained artifact of a run.
type ReportPayload struct {
	Campaign         CampaignInfo    `json:"campaign"`
	DateRange        DateRange       `json:"date_range"`
	Filters          FilterOptions   `json:"filters"`
	Comments         []CommentRecord `json:"comments"`
	Posts            []Post          `json:"posts"`
	ExcludedComments int             `json:"excluded_comments"`
}
