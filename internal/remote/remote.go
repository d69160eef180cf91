// Package remote fetches jurisdiction overrides from the backend API.
//
// The backend answers GET {base}/states/{slug} with an envelope
// {"success": bool, "data": {...}}. Only the four override fields are
// decoded; anything else in the payload is ignored.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/NielsdaWheelz/filemyrti/internal/errors"
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 1 << 20

// StateRecord is the subset of the backend state record used for overrides.
// Empty strings mean "no override".
type StateRecord struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	RTIPortalURL string `json:"rti_portal_url"`
}

type envelope struct {
	Success bool         `json:"success"`
	Data    *StateRecord `json:"data"`
	Message string       `json:"message,omitempty"`
}

// Config configures the remote client.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.filemyrti.com/api".
	BaseURL string
	// Timeout is the per-request timeout. Zero means no client timeout;
	// callers bound the request with their context.
	Timeout time.Duration
	// UserAgent is sent on every request when set.
	UserAgent string
}

// Client is a Remote Config Source backed by HTTP.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// New creates a client. An empty BaseURL yields a client whose fetches
// fail with E_REMOTE_NOT_CONFIGURED.
func New(cfg Config) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

// NewWithHTTPClient is New with a caller-supplied transport, for tests.
func NewWithHTTPClient(cfg Config, hc *http.Client) *Client {
	c := New(cfg)
	if hc != nil {
		c.http = hc
	}
	return c
}

// BaseURL returns the configured API root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// StateURL returns the fetch URL for slug.
func (c *Client) StateURL(slug string) string {
	return c.baseURL + "/states/" + url.PathEscape(slug)
}

// FetchState performs a single GET for slug. It does not retry.
//
// Transport errors, non-2xx statuses, malformed JSON, success=false and a
// missing data object all return E_REMOTE_FETCH_FAILED.
func (c *Client) FetchState(ctx context.Context, slug string) (*StateRecord, error) {
	if c.baseURL == "" {
		return nil, errors.NewWithDetails(errors.ERemoteNotConfigured, "remote base url is not configured", map[string]string{
			"slug": slug,
		})
	}

	target := c.StateURL(slug)
	details := map[string]string{"slug": slug, "url": target}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.WrapWithDetails(errors.ERemoteFetchFailed, "failed to build request", err, details)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapWithDetails(errors.ERemoteFetchFailed, "state request failed", err, details)
	}
	defer resp.Body.Close()

	details["duration_ms"] = strconv.FormatInt(time.Since(start).Milliseconds(), 10)
	details["status_code"] = strconv.Itoa(resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		details["status"] = resp.Status
		return nil, errors.NewWithDetails(errors.ERemoteFetchFailed, fmt.Sprintf("state request returned HTTP %d", resp.StatusCode), details)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.WrapWithDetails(errors.ERemoteFetchFailed, "failed to read state response", err, details)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errors.WrapWithDetails(errors.ERemoteFetchFailed, "malformed state response", err, details)
	}
	if !env.Success {
		msg := "backend reported failure"
		if env.Message != "" {
			msg += ": " + env.Message
		}
		return nil, errors.NewWithDetails(errors.ERemoteFetchFailed, msg, details)
	}
	if env.Data == nil {
		return nil, errors.NewWithDetails(errors.ERemoteFetchFailed, "state response has no data", details)
	}
	return env.Data, nil
}
