package client

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
)

func TestGetJSONDecodesGzipBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("Expected a User-Agent header")
		}
		var buf bytes.Buffer
		gz := gzip.NewWriter(&buf)
		_, _ = gz.Write([]byte(`{"found": 42}`))
		_ = gz.Close()

		w.Header().Set("Content-Encoding", "gzip")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}))
	defer server.Close()

	var out struct {
		Found int `json:"found"`
	}
	err := GetJSON(context.Background(), CreateHTTPClient(), server.URL, APIHeaders(), &out)
	if err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if out.Found != 42 {
		t.Errorf("Expected found 42, got %d", out.Found)
	}
}

func TestGetJSONStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"type":"bad_argument"}]}`))
	}))
	defer server.Close()

	var out map[string]interface{}
	err := GetJSON(context.Background(), CreateHTTPClient(), server.URL, nil, &out)
	if err == nil {
		t.Fatal("Expected an error for a 400 response")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected *StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", statusErr.StatusCode)
	}
}

func TestGetJSONTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	var out map[string]interface{}
	err := GetJSON(context.Background(), CreateHTTPClient(), url, nil, &out)
	if err == nil {
		t.Fatal("Expected an error for a closed server")
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Error("Transport failures must not look like status errors")
	}
}

func TestCreateProxyHTTPClient(t *testing.T) {
	httpClient, err := CreateProxyHTTPClient("http://localhost:8080")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if httpClient.Timeout != timeout {
		t.Errorf("Expected timeout %v, got %v", timeout, httpClient.Timeout)
	}

	if _, err := CreateProxyHTTPClient("://bad"); err == nil {
		t.Error("Expected an error for a malformed proxy URL")
	}
}
