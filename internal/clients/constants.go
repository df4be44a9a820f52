package clients

import "time"

const (
	MAX_RETRIES     = 5
	INITIAL_BACKOFF = 1 * time.Second
	USER_AGENT      = "campaignlens-client/1.0"
)
