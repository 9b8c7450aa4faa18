package restapi

// Package restapi implements the backend gateway ports over the BookCourier
// REST API. A single configured client targets the backend base URL and
// attaches the caller's bearer token (from the request context) to every
// request; the backend remains the authority on every mutation.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/bookcourier/ui-gateway/internal/errors"

	domainauth "github.com/bookcourier/ui-gateway/internal/domain/auth"
	"golang.org/x/net/publicsuffix"
)

const defaultTimeout = 15 * time.Second

// Config holds configuration for the backend client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client // Optional, a jar-equipped default is built when nil
}

// Client is the single HTTP client shared by all gateway implementations.
type Client struct {
	baseURL string
	hc      *http.Client
}

// NewClient builds a backend client from Config.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("backend base URL is required")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("parse backend base URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	hc := cfg.HTTPClient
	if hc == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("build cookie jar: %w", err)
		}
		hc = &http.Client{Timeout: timeout, Jar: jar}
	}

	return &Client{baseURL: base, hc: hc}, nil
}

// requestParams groups the pieces of a backend call (≤3 params rule).
type requestParams struct {
	Method string
	Path   string
	Body   any
}

// do performs one backend round trip, decoding a JSON response into out when
// out is non-nil. Transport and HTTP-level failures come back as AppErrors so
// call sites can branch on the taxonomy instead of status codes.
func (c *Client) do(ctx context.Context, p requestParams, out any) error {
	var body io.Reader
	if p.Body != nil {
		buf, err := json.Marshal(p.Body)
		if err != nil {
			return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "encode %s %s request", p.Method, p.Path)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, p.Method, c.baseURL+p.Path, body)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "build %s %s request", p.Method, p.Path)
	}
	req.Header.Set("Accept", "application/json")
	if p.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := domainauth.TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUnavailable, "backend %s %s", p.Method, p.Path)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "decode %s %s response", p.Method, p.Path)
	}
	return nil
}

// apiError is the backend's error envelope. Message carries the
// human-readable reason surfaced to the user.
type apiError struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// statusError maps a non-2xx backend response to the AppError taxonomy,
// preserving the backend's message text when it sent one.
func statusError(resp *http.Response) error {
	msg := readErrorMessage(resp.Body)
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return apperrors.Unauthorized(msg)
	case resp.StatusCode == http.StatusForbidden:
		return apperrors.Forbidden(msg)
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NotFound(msg)
	case resp.StatusCode == http.StatusConflict:
		return apperrors.Conflict(msg)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return apperrors.Validation(msg)
	case resp.StatusCode >= http.StatusInternalServerError:
		return apperrors.Unavailable(msg)
	default:
		return apperrors.Internalf("unexpected backend status %d: %s", resp.StatusCode, msg)
	}
}

// readErrorMessage best-effort decodes the backend error envelope.
// A body that is not JSON yields an empty message, never a failure.
func readErrorMessage(r io.Reader) string {
	const maxErrorBody = 8 << 10
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	var envelope apiError
	if jsonErr := json.Unmarshal(data, &envelope); jsonErr != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error
}
