package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-console/internal/dto"
	"github.com/noah-isme/sma-console/internal/session"
	appErrors "github.com/noah-isme/sma-console/pkg/errors"
)

// Envelope is the common response contract of the backend: either data or
// a structured error, never both.
type Envelope struct {
	Data  json.RawMessage  `json:"data,omitempty"`
	Error *appErrors.Error `json:"error,omitempty"`
}

// Config tunes the REST client.
type Config struct {
	BaseURL   string
	Prefix    string
	Timeout   time.Duration
	Session   *session.Session
	Logger    *zap.Logger
	Transport http.RoundTripper
}

// Client speaks HTTP/JSON to the admin-panel backend. Every request carries
// the session bearer token; responses are decoded from the data/error
// envelope and failures mapped onto the typed error taxonomy.
type Client struct {
	baseURL string
	prefix  string
	http    *http.Client
	session *session.Session
	logger  *zap.Logger
}

// New constructs a Client. A zero Timeout falls back to 15 seconds.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		prefix:  strings.TrimRight(cfg.Prefix, "/"),
		http:    &http.Client{Transport: transport, Timeout: cfg.Timeout},
		session: cfg.Session,
		logger:  cfg.Logger,
	}
}

// Get fetches path and decodes the envelope data into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post sends body as JSON and decodes the envelope data into out.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put sends a partial patch as JSON and decodes the envelope data into out.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE; any 2xx counts as success.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// DownloadCSV fetches the server-rendered CSV export for a resource.
func (c *Client) DownloadCSV(ctx context.Context, resource string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/%s/export/csv", resource), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.mapTransportError(ctx, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, "read csv export")
	}
	c.logger.Debug("http_request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, appErrors.FromStatus(resp.StatusCode, "csv export failed")
	}
	return payload, nil
}

// ImportCSV uploads raw CSV content for server-side bulk creation.
func (c *Client) ImportCSV(ctx context.Context, resource, csvData string) (*dto.ImportResult, error) {
	result := &dto.ImportResult{}
	path := fmt.Sprintf("/%s/import/csv", resource)
	if err := c.Post(ctx, path, dto.ImportCSVRequest{CSVData: csvData}, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapTransportError(ctx, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, "read response body")
	}

	c.logger.Debug("http_request",
		zap.String("method", method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.mapStatusError(resp.StatusCode, payload)
	}
	if out == nil || len(payload) == 0 {
		return nil
	}

	envelope := Envelope{}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return appErrors.Wrap(err, appErrors.ErrServer.Code, appErrors.ErrServer.Status, "malformed response envelope")
	}
	if envelope.Data == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrServer.Code, appErrors.ErrServer.Status, "decode response data")
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "encode request body")
		}
		reader = bytes.NewReader(raw)
	}

	url := c.baseURL + c.prefix + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func (c *Client) mapTransportError(ctx context.Context, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return appErrors.Wrap(err, appErrors.ErrTimeout.Code, appErrors.ErrTimeout.Status, "request exceeded deadline")
	}
	if ctx.Err() != nil {
		return appErrors.Wrap(ctx.Err(), appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, "request cancelled")
	}
	return appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, "request failed")
}

func (c *Client) mapStatusError(status int, payload []byte) error {
	message := ""
	envelope := Envelope{}
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Error != nil {
		message = envelope.Error.Message
	}
	return appErrors.FromStatus(status, message)
}
