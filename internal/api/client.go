// Package api talks to the toko2025 backend over HTTP/JSON.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/samcodingcoach/toko2025/domain"
)

// ErrUnreachable marks transport-level failures so callers can tell a dead
// server apart from a server that answered with an error.
var ErrUnreachable = errors.New("server unreachable")

// ServerError carries the backend's own message for a failed request.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// Client is the HTTP client for the backend. All methods take a context and
// are safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	log     logrus.FieldLogger
}

// NewClient builds a Client against baseURL. httpClient may carry the
// configured timeout; a nil logger falls back to the standard logger.
func NewClient(baseURL string, httpClient *http.Client, log logrus.FieldLogger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

// BaseURL reports the server root the client is bound to.
func (c *Client) BaseURL() string { return c.baseURL }

// Ping probes the server by fetching the category list. A nil return means
// the server answered and spoke the expected protocol.
func (c *Client) Ping(ctx context.Context) error {
	_, err := request[[]domain.Category](ctx, c, http.MethodGet, "/api/kategori", nil, "")
	return err
}

// request performs an HTTP call and unwraps the standard response envelope.
func request[T any](ctx context.Context, c *Client, method, path string, body io.Reader, contentType string) (T, error) {
	var zero T
	raw, status, err := c.do(ctx, method, path, body, contentType)
	if err != nil {
		return zero, err
	}
	var env domain.Envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		if status < 200 || status >= 300 {
			return zero, &ServerError{Status: status, Message: strings.TrimSpace(string(raw))}
		}
		return zero, fmt.Errorf("decode %s: %w", path, err)
	}
	if status < 200 || status >= 300 || !env.Success {
		return zero, &ServerError{Status: status, Message: env.Message}
	}
	return env.Data, nil
}

// requestInto decodes the body straight into out for endpoints that do not
// use the envelope shape. Non-2xx responses become a ServerError.
func (c *Client) requestInto(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	raw, status, err := c.do(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		msg := strings.TrimSpace(string(raw))
		var env domain.Envelope[json.RawMessage]
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			msg = env.Message
		}
		return &ServerError{Status: status, Message: msg}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, 0, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("path", path).Warn("request failed")
		return nil, 0, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return raw, resp.StatusCode, nil
}

// form posts url-encoded fields, matching what the backend's handlers parse.
func form[T any](ctx context.Context, c *Client, method, path string, v url.Values) (T, error) {
	return request[T](ctx, c, method, path, strings.NewReader(v.Encode()), "application/x-www-form-urlencoded")
}

func postJSON[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	var zero T
	buf, err := json.Marshal(payload)
	if err != nil {
		return zero, err
	}
	return request[T](ctx, c, http.MethodPost, path, strings.NewReader(string(buf)), "application/json")
}
