// Package report assembles the final analytics payload consumed by the
// dashboard.
package report

import (
	"log/slog"
	"time"

	"campaignlens/internal/campaign"
	"campaignlens/internal/models"
)

const (
	// Local time with the offset pre-baked, so no UTC suffix.
	dateTimeLayout = "2006-01-02T15:04:05"
	dateLayout     = "2006-01-02"
)

// FilterAll is the synthetic "everything" option prepended to the topic
// filter; the platform filter uses its feminine form.
const (
	FilterAllTopics    = "Todos"
	FilterAllPlatforms = "Todas"
)

// platformFilter is the fixed platform option set of the dashboard.
var platformFilter = []string{FilterAllPlatforms, "Facebook", "Instagram", "TikTok"}

// Assemble joins the enriched comments and ranked posts into the payload:
// renamed comment records, post records in aggregator order, the overall
// date range and the filter option sets.
func Assemble(cfg *campaign.Config, comments []models.Comment, posts []models.Post, excluded int) models.ReportPayload {
	records := make([]models.CommentRecord, 0, len(comments))
	for _, c := range comments {
		records = append(records, models.CommentRecord{
			Date:      c.LocalTime.Format(dateTimeLayout),
			Comment:   c.Text,
			Sentiment: c.Sentiment,
			Topic:     c.Topic,
			Platform:  c.Platform,
			PostURL:   c.PostURL,
			PostLabel: c.PostLabel,
		})
	}

	payload := models.ReportPayload{
		Campaign: models.CampaignInfo{
			CampaignName: cfg.CampaignName,
			Product:      cfg.Product,
			Version:      cfg.Version,
		},
		DateRange: dateRange(comments),
		Filters: models.FilterOptions{
			Platforms: append([]string(nil), platformFilter...),
			Topics:    topicOptions(cfg, comments),
			Posts:     postOptions(posts),
		},
		Comments:         records,
		Posts:            posts,
		ExcludedComments: excluded,
	}

	slog.Info("[ReportAssembler] Payload assembled",
		slog.Int("comments", len(records)),
		slog.Int("posts", len(posts)),
		slog.String("min_date", payload.DateRange.MinDate),
		slog.String("max_date", payload.DateRange.MaxDate))

	return payload
}

// dateRange computes the min/max local date over all comments. Empty input
// yields empty strings; that is a boundary case, not an error.
func dateRange(comments []models.Comment) models.DateRange {
	if len(comments) == 0 {
		return models.DateRange{}
	}

	var min, max time.Time
	for i, c := range comments {
		if i == 0 || c.LocalTime.Before(min) {
			min = c.LocalTime
		}
		if i == 0 || c.LocalTime.After(max) {
			max = c.LocalTime
		}
	}

	return models.DateRange{
		MinDate: min.Format(dateLayout),
		MaxDate: max.Format(dateLayout),
	}
}

// topicOptions is the synthetic all-option plus the observed topics, kept in
// campaign category order so output is deterministic.
func topicOptions(cfg *campaign.Config, comments []models.Comment) []string {
	observed := make(map[string]struct{}, len(comments))
	for _, c := range comments {
		observed[c.Topic] = struct{}{}
	}

	topics := []string{FilterAllTopics}
	for _, cat := range cfg.Categories {
		if _, ok := observed[cat]; ok {
			topics = append(topics, cat)
		}
	}
	return topics
}

func postOptions(posts []models.Post) []models.PostOption {
	options := make([]models.PostOption, 0, len(posts))
	for _, p := range posts {
		options = append(options, models.PostOption{
			Value: p.PostURL,
			Label: p.Label,
		})
	}
	return options
}
