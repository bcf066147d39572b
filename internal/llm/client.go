// Package llm provides the text-completion client used for descriptive
// flavor in daily entries. Targets any OpenAI-compatible completions
// endpoint (a locally hosted model by default).
package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// DefaultURL points at a locally hosted completion server.
const DefaultURL = "http://localhost:1234/v1/completions"

// Client wraps an OpenAI-compatible completions endpoint.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a completions client. Returns nil if apiKey is
// empty (flavor text disabled). An empty url selects DefaultURL.
func NewClient(url, apiKey string) *Client {
	if apiKey == "" {
		return nil
	}
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url:    url,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Enabled returns true if the client is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// request is the completions API request body.
type request struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

// response is the completions API response body.
type response struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
}

// Complete sends a prompt and returns the trimmed completion text.
func (c *Client) Complete(prompt string, maxTokens int) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("LLM client not configured")
	}

	req := request{
		Prompt:    prompt,
		MaxTokens: maxTokens,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequest("POST", c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("API call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, string(respBody))
	}

	var apiResp response
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("empty response")
	}

	return strings.TrimSpace(apiResp.Choices[0].Text), nil
}

// isTimeout reports whether an error chain contains a network timeout.
func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
