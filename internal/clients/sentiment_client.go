package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"campaignlens/internal/models"
)

var (
	sentimentInstance *SentimentClient
	sentimentOnce     sync.Once
)

// SentimentClient talks to the external three-way sentiment service. The
// service is a black box: one POST per batch, POS/NEG/NEU labels back.
type SentimentClient struct {
	Client   *http.Client
	Endpoint string
}

func GetSentimentClient() *SentimentClient {
	var timeout time.Duration
	env := os.Getenv("APP_ENV")
	if env == "production" {
		timeout = 10 * time.Second
	} else {
		timeout = 60 * time.Second
	}
	sentimentOnce.Do(func() {
		endpoint := os.Getenv("SENTIMENT_URL")
		slog.Info("[SentimentClient] Initializing Client",
			slog.Duration("timeout", timeout),
			slog.String("endpoint", endpoint),
			slog.String("env", env))
		sentimentInstance = &SentimentClient{
			Client:   &http.Client{Timeout: timeout},
			Endpoint: endpoint,
		}
	})
	return sentimentInstance
}

func (s *SentimentClient) DoWithRetry(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error
	backoff := INITIAL_BACKOFF

	for attempt := 0; attempt < MAX_RETRIES; attempt++ {
		resp, err = s.Client.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		if resp != nil {
			resp.Body.Close()
		}

		slog.Warn("[SentimentClient] Request failed, will retry",
			slog.Int("attempt", attempt+1),
			slog.String("error", errMsg(err, resp)))

		time.Sleep(backoff)
		backoff *= 2
	}

	return resp, err
}

// GetBatchedSentiment sends one batch of comments for analysis. Transport
// failures after retries propagate; the caller decides what a partial run
// means (for this pipeline: abort).
func (s *SentimentClient) GetBatchedSentiment(ctx context.Context, input models.SentimentBatchRequest) (models.SentimentBatchResponse, error) {
	var result models.SentimentBatchResponse
	start := time.Now()

	err := s.postJSON(ctx, s.Endpoint, input, &result)
	if err != nil {
		slog.Error("[SentimentClient] Sentiment request failed",
			slog.Duration("elapsed", time.Since(start)))
		return result, err
	}

	slog.Debug("[SentimentClient] Sentiment request successful",
		slog.Int("batch_size", len(input.Comments)),
		slog.Duration("elapsed", time.Since(start)))
	return result, nil
}

// Ping probes the service before a run so a dead collaborator fails fast
// instead of after ingestion.
func (s *SentimentClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Endpoint+"/health", nil)
	if err != nil {
		return fmt.Errorf("[SentimentClient] failed to build health request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("[SentimentClient] health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("[SentimentClient] health check returned status %d", resp.StatusCode)
	}
	return nil
}

func (s *SentimentClient) postJSON(ctx context.Context, endpoint string, input interface{}, output interface{}) error {
	body, err := json.Marshal(input)
	if err != nil {
		slog.Error("[SentimentClient] Failed to marshal input",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		slog.Error("[SentimentClient] Failed to build request",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := s.DoWithRetry(req)
	if err != nil {
		slog.Error("[SentimentClient] Failed request after retries",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("request failed after retries: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("[SentimentClient] Failed to read response",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := json.Unmarshal(respBody, output); err != nil {
		slog.Error("[SentimentClient] Failed to unmarshal response",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}

func errMsg(err error, resp *http.Response) string {
	if err != nil {
		return err.Error()
	}
	if resp != nil {
		return fmt.Sprintf("status code %d", resp.StatusCode)
	}
	return "unknown error"
}
