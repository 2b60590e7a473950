package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/authpages/internal/client/models"
	"github.com/dmitrijs2005/authpages/internal/logging"
	"github.com/google/uuid"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

type HTTPClient struct {
	baseURL   *url.URL
	http      *http.Client
	timeout   time.Duration
	log       logging.Logger
	requestID func() string
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

// WithTimeout bounds every request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) { h.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.log = l }
}

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. "http://localhost:6585").
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL:   u,
		http:      http.DefaultClient,
		log:       logging.Discard(),
		requestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) Authenticate(ctx context.Context, token string) (*models.UserInfo, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	status, body, err := c.do(ctx, http.MethodGet, PathAuthenticate, header, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &StatusError{Code: status, Body: string(body)}
	}

	var info models.UserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("%w: decode user info: %w", ErrMalformedResponse, err)
	}
	if info.Username == "" {
		return nil, fmt.Errorf("%w: missing Username", ErrMalformedResponse)
	}
	return &info, nil
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	status, body, err := c.postJSON(ctx, PathLogin, req)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", &StatusError{Code: status, Body: string(body)}
	}
	return string(body), nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) error {
	status, body, err := c.postJSON(ctx, PathRegister, req)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return &StatusError{Code: status, Body: string(body)}
	}
	return nil
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, payload any) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("encode request: %w", err)
	}
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	return c.do(ctx, http.MethodPost, path, header, data)
}

// do sends one request and returns the status code and body. Only
// transport failures are reported as errors.
func (c *HTTPClient) do(ctx context.Context, method, path string, header http.Header, body []byte) (int, []byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), reader)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	requestID := c.requestID()
	req.Header.Set(RequestIDHeader, requestID)

	log := c.log.With("request_id", requestID, "method", method, "path", path)
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err, "elapsed", time.Since(started))
		return 0, nil, c.mapError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Warn(ctx, "reading response failed", "status", resp.StatusCode, "error", err)
		return 0, nil, c.mapError(err)
	}

	log.Debug(ctx, "request finished", "status", resp.StatusCode, "elapsed", time.Since(started))
	return resp.StatusCode, respBody, nil
}

func (c *HTTPClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
