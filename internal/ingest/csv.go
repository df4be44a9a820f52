// Package ingest reads the tabular campaign dataset into raw comment rows.
// The spreadsheet export step is an external collaborator; the contract here
// is a CSV with the processed column set.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"campaignlens/internal/models"
)

const (
	colTimestamp       = "created_time_processed"
	colText            = "comment_text"
	colPostURL         = "post_url"
	colPlatform        = "platform"
	colPostURLOriginal = "post_url_original"
)

// timestampLayouts are tried in order. Values carry no zone; they are taken
// as the ingestion clock's instant and shifted downstream.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ReadComments parses the dataset at path. A missing file is fatal for the
// run; a row with empty required cells is returned as-is and excluded later;
// a non-empty but unparseable timestamp aborts the run rather than silently
// corrupting the date range.
func ReadComments(path string) ([]models.RawComment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("[Ingest] input dataset not found: %q: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("[Ingest] failed to read header of %q: %w", path, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{colTimestamp, colText, colPostURL, colPlatform} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("[Ingest] dataset %q missing required column %q", path, required)
		}
	}

	_, hasOriginal := cols[colPostURLOriginal]
	if !hasOriginal {
		slog.Warn("[Ingest] Column post_url_original not present, deriving it from post_url")
	}

	var rows []models.RawComment
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("[Ingest] failed to read %q line %d: %w", path, line+1, err)
		}
		line++

		row := models.RawComment{
			CommentID: uuid.NewString(),
			Text:      field(record, cols, colText),
			Platform:  field(record, cols, colPlatform),
			PostURL:   field(record, cols, colPostURL),
		}

		if raw := field(record, cols, colTimestamp); raw != "" {
			ts, err := parseTimestamp(raw)
			if err != nil {
				return nil, fmt.Errorf("[Ingest] line %d: %w", line, err)
			}
			row.Timestamp = ts
		}

		row.PostURLOriginal = field(record, cols, colPostURLOriginal)
		if row.PostURLOriginal == "" {
			row.PostURLOriginal = row.PostURL
		}

		rows = append(rows, row)
	}

	slog.Info("[Ingest] Dataset loaded",
		slog.String("path", path),
		slog.Int("rows", len(rows)))

	return rows, nil
}

// Candidates extracts the post candidate triple from every row, in dataset
// order, including rows that will later be excluded as comments.
func Candidates(rows []models.RawComment) []models.PostCandidate {
	out := make([]models.PostCandidate, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.PostCandidate{
			PostURL:         row.PostURL,
			PostURLOriginal: row.PostURLOriginal,
			Platform:        row.Platform,
		})
	}
	return out
}

func field(record []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", raw)
}
