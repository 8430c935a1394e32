package expo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kbpark824/quizr/internal/domain/provider"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://exp.host/--/api/v2/push/send"
	requestTimeout = 10 * time.Second

	// Expo caps a single send request at 100 messages.
	maxBatchSize = 100
)

type sendResponse struct {
	Data []provider.PushResult `json:"data"`
}

// Client delivers push notifications through the Expo push service.
type Client struct {
	baseURL     string
	accessToken string
	client      *http.Client
	logger      *zap.Logger
}

// NewClient creates a new push delivery client
func NewClient(baseURL, accessToken string, httpClient *http.Client, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		client:      httpClient,
		logger:      logger,
	}
}

// SendMessages delivers the messages in batches and returns one result per
// message, in input order.
func (c *Client) SendMessages(ctx context.Context, messages []provider.PushMessage) ([]provider.PushResult, error) {
	results := make([]provider.PushResult, 0, len(messages))

	for start := 0; start < len(messages); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(messages) {
			end = len(messages)
		}

		batchResults, err := c.sendBatch(ctx, messages[start:end])
		if err != nil {
			return nil, err
		}
		results = append(results, batchResults...)
	}

	return results, nil
}

func (c *Client) sendBatch(ctx context.Context, batch []provider.PushMessage) ([]provider.PushResult, error) {
	jsonBody, err := json.Marshal(batch)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create push request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Push delivery request failed", zap.Error(err))
		return nil, fmt.Errorf("push delivery request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read push response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Push delivery returned non-success status",
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("response", respBody))
		return nil, fmt.Errorf("push delivery returned status %d", resp.StatusCode)
	}

	var parsed sendResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse push response: %w", err)
	}

	if len(parsed.Data) != len(batch) {
		return nil, fmt.Errorf("push delivery returned %d results for %d messages", len(parsed.Data), len(batch))
	}

	return parsed.Data, nil
}
