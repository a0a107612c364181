package gie

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func isTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultAPIBase {
		t.Fatalf("base = %q, want %q", u.String(), defaultAPIBase)
	}

	u, err = parseBaseURL("10.0.0.5:8080")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "10.0.0.5:8080" {
		t.Fatalf("base = %q, want http://10.0.0.5:8080", u.String())
	}

	u, err = parseBaseURL("https://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_ExtractSendsTextAndHeaders(t *testing.T) {
	t.Parallel()

	var gotBody struct {
		Text string `json:"text"`
	}
	var gotHeaders http.Header
	var gotMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != extractPath {
			http.NotFound(w, r)
			return
		}
		gotMethod = r.Method
		gotHeaders = r.Header.Clone()
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"mode": "fallback",
			"detected_intent": "payments",
			"confidence": 0.45,
			"services": [{"id":"gov_payments","title":"المدفوعات الحكومية","description":"سداد","action":{"type":"navigate","target":"payments"}}]
		}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	resp, err := c.Extract(context.Background(), "ابغى اسدد رسوم")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("method = %q, want POST", gotMethod)
	}
	if gotBody.Text != "ابغى اسدد رسوم" {
		t.Fatalf("request text = %q", gotBody.Text)
	}
	if ct := gotHeaders.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", ct)
	}
	if gotHeaders.Get("X-Request-ID") == "" {
		t.Fatalf("X-Request-ID header missing")
	}
	if ua := gotHeaders.Get("User-Agent"); !strings.HasPrefix(ua, "musaed/") {
		t.Fatalf("User-Agent = %q, want musaed/*", ua)
	}
	if len(resp.Services) != 1 || resp.Services[0].Action.Target != "payments" {
		t.Fatalf("services = %#v, want one payments service", resp.Services)
	}
	if resp.Mode != "fallback" || resp.DetectedIntent != "payments" || resp.Confidence != 0.45 {
		t.Fatalf("metadata = %#v", resp)
	}
}

func TestClient_ExtractErrorStatuses(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error","message":"النص غير واضح"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Extract(context.Background(), "ابغى موعد")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Extract error = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Fatalf("Status = %d, want 400", apiErr.Status)
	}
	if apiErr.Display() != "النص غير واضح" {
		t.Fatalf("Display = %q, want backend message", apiErr.Display())
	}
}

func TestClient_ExtractErrorWithoutMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Extract(context.Background(), "ابغى موعد")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Extract error = %v, want *APIError", err)
	}
	if apiErr.Display() != "HTTP 500" {
		t.Fatalf("Display = %q, want HTTP 500", apiErr.Display())
	}
	if isTransport(err) {
		t.Fatalf("status error should not be a transport error")
	}
}

func TestClient_ExtractMalformedBodyIsEmpty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	resp, err := c.Extract(context.Background(), "ابغى موعد")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if len(resp.Services) != 0 {
		t.Fatalf("services = %#v, want none", resp.Services)
	}
}

func TestClient_TransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	c, err := NewClient(addr, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if _, err := c.Extract(context.Background(), "ابغى موعد"); !isTransport(err) {
		t.Fatalf("Extract error = %v, want transport error", err)
	}
	if err := c.Health(context.Background()); !isTransport(err) {
		t.Fatalf("Health error = %v, want transport error", err)
	}
}

func TestClient_TimeoutIsTransportFailure(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	c, err := NewClient(server.URL, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.Extract(context.Background(), "ابغى موعد"); !isTransport(err) {
		t.Fatalf("Extract error = %v, want transport error", err)
	}
}

func TestClient_Health(t *testing.T) {
	t.Parallel()

	var unhealthy atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != healthPath || r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		if unhealthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health returned error: %v", err)
	}

	unhealthy.Store(true)
	err = c.Health(context.Background())
	if err == nil || !strings.Contains(err.Error(), "returned status 503") {
		t.Fatalf("Health error = %v, want status 503 error", err)
	}
}
