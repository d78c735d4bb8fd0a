// Package restapi implements the remote repository interfaces against the
// campus HTTP backend. Responses may arrive either as a bare JSON payload or
// wrapped in a {"success": ..., "data": ...} envelope; both are accepted.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/studentlife/campus/internal/domain"
)

// Client is the shared HTTP transport for all remote repositories.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a Client from the [api] configuration.
func NewClient(cfg domain.APIConfig) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout()},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// envelope is the optional response wrapper some backend deployments use.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// newRequest builds a request with the common headers set. Every request
// carries a fresh X-Request-ID so backend logs can be correlated.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do executes the request and decodes the response into out (which may be
// nil for operations without a payload).
//
// A 404 surfaces as domain.ErrNotFound so callers can reconcile local state;
// every other failure is wrapped in a FetchError for the given operation.
func (c *Client) do(req *http.Request, operation string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return domain.NewFetchError(operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", operation, domain.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.NewFetchError(operation, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if out == nil {
		return nil
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewFetchError(operation, fmt.Errorf("read response: %w", err))
	}

	return decodePayload(operation, payload, out)
}

// decodePayload unwraps an envelope if present, otherwise decodes the bare
// payload.
func decodePayload(operation string, payload []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(payload, &env); err == nil && env.Data != nil {
		if env.Success != nil && !*env.Success {
			return domain.NewFetchError(operation, fmt.Errorf("backend reported failure"))
		}
		payload = env.Data
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return domain.NewFetchError(operation, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
