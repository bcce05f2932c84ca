package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FunctionRelay invokes the bot function over HTTP. The function takes
// {"message": "..."} and answers {"response": "..."}.
type FunctionRelay struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewFunctionRelay creates a relay posting to baseURL + "/iet-bot".
func NewFunctionRelay(baseURL, apiKey string, timeout time.Duration) *FunctionRelay {
	return &FunctionRelay{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type invokeRequest struct {
	Message string `json:"message"`
}

type invokeResponse struct {
	Response *string `json:"response"`
}

// Invoke sends message and returns the bot's reply.
func (r *FunctionRelay) Invoke(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(invokeRequest{Message: message})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := r.baseURL + "/" + FunctionName
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%s error (status %d): %s", FunctionName, resp.StatusCode, string(respBody))
	}

	var out invokeResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if out.Response == nil {
		return "", ErrEmptyReply
	}
	return *out.Response, nil
}
