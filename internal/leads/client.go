package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NielsdaWheelz/filemyrti/internal/errors"
	"github.com/NielsdaWheelz/filemyrti/internal/events"
)

// SubmitPath is appended to the API root.
const SubmitPath = "/consultations/public"

const maxErrorBody = 4 << 10 // drained before close

// payload is the Public Submission API request body. Optional fields are
// sent as null when empty.
type payload struct {
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	Mobile    string  `json:"mobile"`
	Address   *string `json:"address"`
	Pincode   *string `json:"pincode"`
	StateSlug *string `json:"state_slug"`
	Source    string  `json:"source"`
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Receipt describes an accepted submission.
type Receipt struct {
	SubmissionID string    `json:"submission_id"`
	StatusCode   int       `json:"status_code"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// Config configures the relay client.
type Config struct {
	// BaseURL is the API root. Empty disables submission with E_LEADS_DISABLED.
	BaseURL string
	// Timeout is the per-request timeout; zero means none.
	Timeout time.Duration
	// DefaultSource is used when a lead carries no source.
	DefaultSource string
}

// Client submits leads.
type Client struct {
	baseURL       string
	defaultSource string
	http          *http.Client
	events        *events.Log
	logger        *slog.Logger
	now           func() time.Time
	newID         func() string
}

// Option configures a Client.
type Option func(*Client)

// WithEvents sets the audit log.
func WithEvents(l *events.Log) Option {
	return func(c *Client) { c.events = l }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithClock sets the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// WithIDGenerator sets the submission id generator, for deterministic tests.
func WithIDGenerator(gen func() string) Option {
	return func(c *Client) { c.newID = gen }
}

// NewClient creates a relay client.
func NewClient(cfg Config, opts ...Option) *Client {
	source := cfg.DefaultSource
	if source == "" {
		source = DefaultSource
	}
	c := &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		defaultSource: source,
		http:          &http.Client{Timeout: cfg.Timeout},
		logger:        slog.Default(),
		now:           time.Now,
		newID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enabled reports whether a submission endpoint is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// Endpoint returns the full submission URL.
func (c *Client) Endpoint() string {
	return c.baseURL + SubmitPath
}

// Submit normalizes, validates and sends l once.
//
// Returns E_INVALID_LEAD for validation failures, E_LEADS_DISABLED when no
// endpoint is configured and E_LEAD_SUBMIT_FAILED for transport errors or
// non-2xx responses. Every outcome is appended to the audit log.
func (c *Client) Submit(ctx context.Context, l Lead) (Receipt, error) {
	l = Normalize(l)
	if l.Source == "" {
		l.Source = c.defaultSource
	}

	if err := Validate(l); err != nil {
		c.record(events.Event{
			Event: events.EventLeadRejected,
			Data:  events.LeadRejectedData(l.Source, InvalidFields(err)),
		})
		return Receipt{}, err
	}

	if !c.Enabled() {
		return Receipt{}, errors.New(errors.ELeadsDisabled, "lead submission endpoint is not configured")
	}

	id := c.newID()
	details := map[string]string{
		"submission_id": id,
		"source":        l.Source,
		"state":         l.StateSlug,
		"url":           c.Endpoint(),
	}

	body, err := json.Marshal(payload{
		FullName:  l.FullName,
		Email:     l.Email,
		Mobile:    l.Mobile,
		Address:   nullable(l.Address),
		Pincode:   nullable(l.Pincode),
		StateSlug: nullable(l.StateSlug),
		Source:    l.Source,
	})
	if err != nil {
		return Receipt{}, errors.Wrap(errors.EInternal, "failed to encode lead", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return Receipt{}, errors.WrapWithDetails(errors.ELeadSubmitFailed, "failed to build request", err, details)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Idempotency-Key", id)

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.fail(id, l, 0, err.Error())
		return Receipt{}, errors.WrapWithDetails(errors.ELeadSubmitFailed, "lead submission failed", err, details)
	}
	defer resp.Body.Close()
	elapsed := c.now().Sub(start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The body may echo the submitted contact details, so only the
		// status line reaches the audit log.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		c.fail(id, l, resp.StatusCode, resp.Status)
		details["status_code"] = strconv.Itoa(resp.StatusCode)
		details["status"] = resp.Status
		return Receipt{}, errors.NewWithDetails(errors.ELeadSubmitFailed, fmt.Sprintf("lead submission returned HTTP %d", resp.StatusCode), details)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	c.record(events.Event{
		SubmissionID: id,
		Event:        events.EventLeadSubmitted,
		Data:         events.LeadSubmittedData(l.StateSlug, l.Source, resp.StatusCode, elapsed.Milliseconds()),
	})
	c.logger.Info("lead submitted", "submission_id", id, "state", l.StateSlug, "source", l.Source, "status", resp.StatusCode)

	return Receipt{SubmissionID: id, StatusCode: resp.StatusCode, SubmittedAt: start.UTC()}, nil
}

func (c *Client) fail(id string, l Lead, status int, reason string) {
	c.record(events.Event{
		SubmissionID: id,
		Event:        events.EventLeadFailed,
		Data:         events.LeadFailedData(l.StateSlug, l.Source, string(errors.ELeadSubmitFailed), status, reason),
	})
	c.logger.Warn("lead submission failed", "submission_id", id, "state", l.StateSlug, "source", l.Source, "status", status)
}

// record appends e best-effort.
func (c *Client) record(e events.Event) {
	if c.events == nil {
		return
	}
	if e.Timestamp == "" {
		e.Timestamp = c.now().UTC().Format(time.RFC3339)
	}
	if err := c.events.Append(e); err != nil {
		c.logger.Warn("failed to append lead event", "path", c.events.Path(), "err", err)
	}
}
