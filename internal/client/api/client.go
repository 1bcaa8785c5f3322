package api

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

	"github.com/dmitrijs2005/docproc/internal/logging"
)

const (
	DefaultTimeout = 30 * time.Second

	// Uploads are long-tailed, so they get their own budget instead of the
	// default request timeout.
	DefaultUploadTimeout = 60 * time.Second

	// sessionHeader carries the client's session id; the backend associates
	// uploads with a session through it and scopes listings accordingly.
	sessionHeader = "X-Session-ID"
)

// Config holds the explicit transport configuration. One Client is built
// from it at process start and shared by every lifecycle service.
type Config struct {
	BaseURL       string
	SessionID     string
	Timeout       time.Duration
	UploadTimeout time.Duration
}

type Client struct {
	baseURL   string
	sessionID string
	http      *http.Client
	upload    *http.Client
	logger    logging.Logger
}

func New(cfg Config, logger logging.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UploadTimeout <= 0 {
		cfg.UploadTimeout = DefaultUploadTimeout
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		sessionID: cfg.SessionID,
		http:      &http.Client{Timeout: cfg.Timeout},
		upload:    &http.Client{Timeout: cfg.UploadTimeout},
		logger:    logger,
	}
}

// setSessionHeader stamps the session id on every outgoing request, the
// axios-default-header way the original client does it. The backend reads it
// where it matters (upload) and ignores it elsewhere.
func (c *Client) setSessionHeader(req *http.Request) {
	if c.sessionID != "" {
		req.Header.Set(sessionHeader, c.sessionID)
	}
}

// envelope is the wrapper every JSON response arrives in.
type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	ErrorCode string          `json:"error_code,omitempty"`
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// doJSON issues a request whose response body is an envelope-wrapped JSON
// payload. When out is non-nil the envelope's data field is decoded into it.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setSessionHeader(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	return decodeEnvelope(resp, out)
}

// doBinary issues a GET whose response body is raw bytes (a file download).
// The response headers are returned alongside so callers can resolve a
// filename from content-disposition. Error responses still arrive as JSON
// envelopes and are decoded as such.
func (c *Client) doBinary(ctx context.Context, path string) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, nil), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	c.setSessionHeader(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, mapTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, mapTransportError(err)
	}

	if resp.StatusCode >= 400 {
		var env envelope
		if jsonErr := json.Unmarshal(data, &env); jsonErr == nil && !env.Success {
			return nil, nil, newError(resp.StatusCode, env.ErrorCode, env.Message)
		}
		return nil, nil, newError(resp.StatusCode, "", http.StatusText(resp.StatusCode))
	}

	return data, resp.Header, nil
}

func decodeEnvelope(resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return mapTransportError(err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		if resp.StatusCode >= 400 {
			return newError(resp.StatusCode, "", http.StatusText(resp.StatusCode))
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if !env.Success {
		return newError(resp.StatusCode, env.ErrorCode, env.Message)
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}

	return nil
}

// mapTransportError classifies connectivity and timeout failures as
// ErrUnavailable while keeping the original cause in the message. Caller
// cancellation passes through untouched so watch loops can tell the two
// apart.
func mapTransportError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
