package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the ai-service chat endpoint and satisfies the generator's
// Provider contract: prompt in, raw candidate text out. It never parses or
// persists anything; interpretation of the output belongs to the caller.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	// Backoff is the base delay between transport retries. Exposed so
	// tests don't sleep.
	Backoff time.Duration
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://ai-service:8000"
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
		Backoff: time.Second,
	}
}

// Complete sends the prompt and returns the provider's raw text output.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(map[string]interface{}{
		"agent": "auto",
		"input": prompt,
	})
	if err != nil {
		return "", err
	}

	resp, err := c.doPostWithRetry(ctx, "/v1/chat", body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai-service returned status %d", resp.StatusCode)
	}

	var chatResp struct {
		Agent  string `json:"agent"`
		Output string `json:"output"`
	}
	if err := json.Unmarshal(respBytes, &chatResp); err != nil {
		return "", fmt.Errorf("decode ai-service envelope: %w", err)
	}
	return chatResp.Output, nil
}

// doPostWithRetry performs an HTTP POST with exponential backoff on
// transport errors. Non-2xx responses are not retried here; the caller owns
// that policy.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * c.Backoff
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}
