package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"campaignlens/config"
	"campaignlens/internal/aggregate"
	"campaignlens/internal/campaign"
	"campaignlens/internal/classifier"
	"campaignlens/internal/clients"
	"campaignlens/internal/ingest"
	"campaignlens/internal/logging"
	"campaignlens/internal/report"
	"campaignlens/internal/sentiment"
	"campaignlens/internal/utils"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute*10)
	defer cancel()

	cfg, err := campaign.Load(getenvDefault("CAMPAIGN_CONFIG", "config/campaign.yaml"))
	if err != nil {
		fatal("Failed to load campaign config", err)
	}

	clf, err := classifier.New(cfg)
	if err != nil {
		fatal("Failed to build classifier", err)
	}

	rows, err := ingest.ReadComments(getenvDefault("INPUT_FILE", "comments.csv"))
	if err != nil {
		fatal("Failed to load input dataset", err)
	}

	posts := aggregate.Posts(ingest.Candidates(rows), rows)
	labels := aggregate.PostLabels(posts)

	predictor, err := buildPredictor(ctx)
	if err != nil {
		fatal("Failed to set up sentiment backend", err)
	}
	defer clients.CloseValkey()

	comments, excluded, err := aggregate.EnrichComments(ctx, rows, clf, predictor, labels)
	if err != nil {
		fatal("Comment enrichment failed", err)
	}

	payload := report.Assemble(cfg, comments, posts, excluded)

	data, err := utils.SerializeToJSON(payload)
	if err != nil {
		fatal("Failed to serialize payload", err)
	}

	outputPath := getenvDefault("OUTPUT_FILE", "report.json")
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		fatal("Failed to write payload", err)
	}

	slog.Info("[Report] Report generation completed successfully",
		slog.String("output", outputPath),
		slog.Int("comments", len(comments)),
		slog.Int("posts", len(posts)),
		slog.Int("excluded", excluded))
}

// buildPredictor picks the sentiment backend: the external collaborator over
// HTTP, or the local VADER scorer for offline runs. Either one gets the
// Valkey label cache when an address is configured.
func buildPredictor(ctx context.Context) (sentiment.Predictor, error) {
	var predictor sentiment.Predictor

	switch backend := getenvDefault("SENTIMENT_BACKEND", "vader"); backend {
	case "http":
		client := clients.GetSentimentClient()
		if err := client.Ping(ctx); err != nil {
			return nil, err
		}
		predictor = sentiment.NewHTTPPredictor(client)
	default:
		slog.Info("[Report] Using local VADER sentiment backend")
		predictor = sentiment.NewVaderPredictor()
	}

	if os.Getenv("VALKEY_INIT_ADDRESS") != "" {
		predictor = sentiment.NewCachedPredictor(predictor, clients.InitValkey())
	}

	return predictor, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fatal(msg string, err error) {
	slog.Error("[Report] "+msg, slog.String("error", err.Error()))
	os.Exit(1)
}
