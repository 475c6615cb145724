package server

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jmgilman/go/bitbucket"
)

const (
	// DefaultConnectTimeout bounds connection establishment.
	DefaultConnectTimeout = 10 * time.Second

	// DefaultReadTimeout bounds every read from an established connection.
	DefaultReadTimeout = 60 * time.Second

	// probeFailed is the status reported by probe when no response was received.
	probeFailed = -1
)

// snapshot is the read-only configuration one request is issued with.
type snapshot struct {
	credentials *Credentials
	proxy       *ProxySettings
}

// transport issues single authenticated requests against the server.
// It keeps no connection state between calls.
type transport struct {
	baseURL        string
	credentials    *Credentials
	proxies        ProxySource
	connectTimeout time.Duration
	readTimeout    time.Duration
	userAgent      string
	logger         *log.Logger
}

// snapshot assembles the configuration for a request to target. The proxy
// source is consulted every time.
func (t *transport) snapshot(target *url.URL) (snapshot, error) {
	proxy, err := t.proxies.ProxyFor(target)
	if err != nil {
		return snapshot{}, bitbucket.NewTransportError(err, "failed to resolve proxy")
	}
	if proxy != nil {
		t.logger.Debug("using proxy", "host", proxy.Host, "port", proxy.Port, "proxy_auth", proxy.Username != "")
	}
	return snapshot{credentials: t.credentials, proxy: proxy}, nil
}

// httpClient builds a client for one request. Keep-alives are disabled so
// the connection is released with the response.
func (t *transport) httpClient(snap snapshot) *http.Client {
	dialer := &net.Dialer{Timeout: t.connectTimeout}
	readTimeout := t.readTimeout

	tr := &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			conn, err := dialer.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			return &readTimeoutConn{Conn: conn, timeout: readTimeout}, nil
		},
		TLSHandshakeTimeout:   t.connectTimeout,
		ResponseHeaderTimeout: t.readTimeout,
		DisableKeepAlives:     true,
	}
	if snap.proxy != nil {
		tr.Proxy = http.ProxyURL(snap.proxy.url())
	}

	return &http.Client{Transport: tr}
}

// do sends one request. The caller owns the response body.
func (t *transport) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	target, err := url.Parse(t.baseURL + path)
	if err != nil {
		return nil, bitbucket.NewTransportError(err, "invalid request URL")
	}

	snap, err := t.snapshot(target)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, bitbucket.NewTransportError(err, "failed to build request")
	}

	// Sent up front; the server does not reliably challenge.
	if snap.credentials != nil {
		req.SetBasicAuth(snap.credentials.Username, snap.credentials.Password)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", t.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.httpClient(snap).Do(req)
	if err != nil {
		return nil, bitbucket.NewTransportError(err, "communication error")
	}

	t.logger.Debug("request", "method", method, "path", path, "status", resp.StatusCode)
	return resp, nil
}

// get performs a GET that must answer 200 and returns the body.
func (t *transport) get(ctx context.Context, path string) (string, error) {
	resp, err := t.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}
	defer release(resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", bitbucket.NewTransportError(err, "communication error")
	}
	if resp.StatusCode != http.StatusOK {
		return "", bitbucket.NewUnexpectedStatusError(resp.StatusCode, statusText(resp), string(body))
	}
	return string(body), nil
}

// probe performs a GET and returns only the status, or probeFailed when no
// response was received. It never fails.
func (t *transport) probe(ctx context.Context, path string) int {
	resp, err := t.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		t.logger.Error("communication error", "path", path, "err", err)
		return probeFailed
	}
	defer release(resp)

	return resp.StatusCode
}

// post sends a JSON body. 200 and 201 return the response body, 204 returns
// an empty body without reading it.
func (t *transport) post(ctx context.Context, path string, payload []byte) (string, error) {
	resp, err := t.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return "", err
	}
	defer release(resp)

	if resp.StatusCode == http.StatusNoContent {
		return "", nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", bitbucket.NewTransportError(err, "communication error")
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", bitbucket.NewUnexpectedStatusError(resp.StatusCode, statusText(resp), string(body))
	}
	return string(body), nil
}

// release drains and closes the response body.
func release(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// statusText returns the reason phrase of the response, e.g. "Not Found".
func statusText(resp *http.Response) string {
	text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" ")
	if text == "" || text == resp.Status {
		return http.StatusText(resp.StatusCode)
	}
	return text
}

// readTimeoutConn applies a fresh read deadline before every read.
type readTimeoutConn struct {
	net.Conn
	timeout time.Duration
}

func (c *readTimeoutConn) Read(p []byte) (int, error) {
	if err := c.Conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return 0, err
	}
	return c.Conn.Read(p)
}
