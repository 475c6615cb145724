package server

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

// recordedRequest is what a test server saw.
type recordedRequest struct {
	Method string
	Host   string
	URI    string
	Header http.Header
	Body   string
}

// recorder is an httptest server that records every request and answers
// with handler.
type recorder struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newRecorder(t *testing.T, handler http.HandlerFunc) *recorder {
	t.Helper()

	rec := &recorder{}
	rec.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.requests = append(rec.requests, recordedRequest{
			Method: r.Method,
			Host:   r.Host,
			URI:    r.URL.RequestURI(),
			Header: r.Header.Clone(),
			Body:   string(body),
		})
		rec.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(rec.server.Close)
	return rec
}

func (rec *recorder) URL() string {
	return rec.server.URL
}

func (rec *recorder) Requests() []recordedRequest {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	out := make([]recordedRequest, len(rec.requests))
	copy(out, rec.requests)
	return out
}

func (rec *recorder) URIs() []string {
	var uris []string
	for _, r := range rec.Requests() {
		uris = append(uris, r.URI)
	}
	return uris
}

// respond returns a handler writing status and body.
func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// bufferLogger returns a logger writing to the returned buffer.
func bufferLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf), &buf
}

func newTestProvider(t *testing.T, baseURL, owner string, opts ...Option) *Provider {
	t.Helper()

	logger, _ := bufferLogger()
	opts = append([]Option{WithLogger(logger)}, opts...)
	provider, err := New(baseURL, owner, opts...)
	require.NoError(t, err)
	return provider
}

// closedServerURL returns the URL of a server that no longer accepts connections.
func closedServerURL(t *testing.T) string {
	t.Helper()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	return url
}
