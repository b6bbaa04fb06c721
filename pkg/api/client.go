package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"rocketapi/pkg/errors"
	"rocketapi/pkg/logger"
)

// DefaultBaseURL is the RocketAPI service endpoint
const DefaultBaseURL = "https://v1.rocketapi.io/"

// envelope is the outer response shape every RocketAPI endpoint returns.
// The body of the proxied upstream response sits in Response.Body.
type envelope struct {
	Status   string `json:"status"`
	Response struct {
		StatusCode  int             `json:"status_code"`
		ContentType string          `json:"content_type"`
		Body        json.RawMessage `json:"body"`
	} `json:"response"`
}

// Client is the low-level RocketAPI transport. It holds the API token
// and timeout and performs a single POST per call, no retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     logger.Logger

	// last raw envelope and request counter, kept for debugging;
	// guarded so concurrent calls stay safe
	mu           sync.Mutex
	lastResponse json.RawMessage
	counter      uint64
}

// NewClient creates a new RocketAPI transport client. Timeouts below 15
// seconds are discouraged by the service.
func NewClient(token string, timeout time.Duration, log logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: DefaultBaseURL,
		token:   token,
		logger:  log,
	}
}

// SetBaseURL overrides the service endpoint. Used by tests and proxies.
func (c *Client) SetBaseURL(u string) {
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}
	c.baseURL = u
}

// SetHTTPClient replaces the underlying HTTP client
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// LastResponse returns the raw envelope of the most recent request
func (c *Client) LastResponse() json.RawMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastResponse
}

// Counter returns the number of requests made by this client
func (c *Client) Counter() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counter
}

// Request calls a RocketAPI method and returns the proxied response
// body. Every endpoint is a POST of a JSON payload to baseURL+method;
// the method string is the endpoint path, e.g. "instagram/user/get_info".
func (c *Client) Request(ctx context.Context, method string, payload interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.RequestError(fmt.Sprintf("failed to encode payload: %v", err), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+method, bytes.NewReader(body))
	if err != nil {
		return nil, errors.RequestError(fmt.Sprintf("failed to create request: %v", err), err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+c.token)

	start := time.Now()
	c.logger.DebugWithFields("sending API request", map[string]interface{}{
		"method": method,
		"url":    req.URL.String(),
	})

	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.ErrorWithFields("API request failed", map[string]interface{}{
			"method":   method,
			"error":    err.Error(),
			"duration": duration,
		})
		return nil, errors.RequestError(fmt.Sprintf("request failed: %v", err), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.RequestError(fmt.Sprintf("failed to read response body: %v", err), err)
	}

	c.logger.DebugWithFields("API request completed", map[string]interface{}{
		"method":   method,
		"status":   resp.StatusCode,
		"duration": duration,
	})

	c.record(raw)

	return c.decode(resp.StatusCode, raw)
}

// record stores the raw envelope and bumps the request counter
func (c *Client) record(raw json.RawMessage) {
	c.mu.Lock()
	c.lastResponse = raw
	c.counter++
	c.mu.Unlock()
}

// decode maps the HTTP status and envelope onto the error taxonomy and
// extracts the proxied body on success.
func (c *Client) decode(statusCode int, raw json.RawMessage) (json.RawMessage, error) {
	switch {
	case statusCode == http.StatusNotFound:
		return nil, errors.NotFound("resource not found", raw)
	case statusCode < 200 || statusCode >= 300:
		return nil, errors.BadResponse(fmt.Sprintf("unexpected status code: %d", statusCode), raw)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.BadResponse(fmt.Sprintf("failed to parse response: %v", err), raw)
	}

	if env.Status != "done" {
		return nil, errors.BadResponse(fmt.Sprintf("unexpected envelope status: %q", env.Status), raw)
	}

	switch {
	case env.Response.StatusCode == http.StatusOK && env.Response.ContentType == "application/json":
		return env.Response.Body, nil
	case env.Response.StatusCode == http.StatusNotFound:
		return nil, errors.NotFound("resource not found", raw)
	default:
		return nil, errors.BadResponse(
			fmt.Sprintf("unexpected response: status %d, content type %q",
				env.Response.StatusCode, env.Response.ContentType),
			raw,
		)
	}
}
