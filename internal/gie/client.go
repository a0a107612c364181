package gie

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Backend is the remote intent-extraction collaborator.
// It is implemented by *Client and can be faked in tests.
type Backend interface {
	Extract(ctx context.Context, text string) (ExtractResponse, error)
	Health(ctx context.Context) error
}

// Ensure Client implements Backend at compile time.
var _ Backend = (*Client)(nil)

// Client talks to the intent-extraction HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBase        = "http://127.0.0.1:5000"
	defaultUserAgent      = "musaed/0.1"
	DefaultRequestTimeout = 10 * time.Second
	maxBodyBytes          = 1 << 20

	healthPath  = "/api/health"
	extractPath = "/api/gie"
)

// NewClient builds a Client for apiBase. A bare host:port is treated as http.
// A non-positive timeout uses DefaultRequestTimeout.
func NewClient(apiBase string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the resolved API base address.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Health probes GET /api/health. Any 2xx response is healthy.
func (c *Client) Health(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	_, err := c.do(ctx, http.MethodGet, healthPath, nil)
	return err
}

// Extract submits text to POST /api/gie and returns the decoded response.
// Bodies that are not valid JSON decode as an empty response rather than
// failing. Non-2xx statuses return an *APIError carrying the payload message.
func (c *Client) Extract(ctx context.Context, text string) (ExtractResponse, error) {
	if c == nil {
		return ExtractResponse{}, fmt.Errorf("client is nil")
	}
	payload, err := json.Marshal(struct {
		Text string `json:"text"`
	}{Text: text})
	if err != nil {
		return ExtractResponse{}, fmt.Errorf("encode request: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, extractPath, payload)
	var apiErr *APIError
	if err != nil && !errors.As(err, &apiErr) {
		return ExtractResponse{}, err
	}

	resp := decodeExtract(body)
	if apiErr != nil {
		apiErr.Message = strings.TrimSpace(resp.Message)
		return resp, apiErr
	}
	return resp, nil
}

// do executes a request and returns the (bounded) response body. Non-2xx
// statuses return the body alongside an *APIError.
func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: method + " " + path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{Op: method + " " + path, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return body, &APIError{Path: path, Status: resp.StatusCode}
	}
	return body, nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", apiBase, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_base %q: missing host", apiBase)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
