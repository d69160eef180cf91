package leads

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NielsdaWheelz/filemyrti/internal/errors"
	"github.com/NielsdaWheelz/filemyrti/internal/events"
)

func validLead() Lead {
	return Lead{
		FullName: "  Asha   Verma ",
		Email:    "Asha@Example.com",
		Mobile:   "+91 98765 43210",
		Pincode:  "302 001",
		Source:   "rajasthan_comprehensive_form",
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(validLead())
	assert.Equal(t, "Asha Verma", got.FullName)
	assert.Equal(t, "asha@example.com", got.Email)
	assert.Equal(t, "9876543210", got.Mobile)
	assert.Equal(t, "302001", got.Pincode)

	tests := map[string]string{
		"09876543210":             "9876543210",
		"98765-43210":             "9876543210",
		"919876543210":            "9876543210",
		"12345":                   "12345",
		"not a number":            "notanumber",
		"+1 415 555 010":          "1415555010",
		"(98765) 43210":           "9876543210",
		"98765.43210":             "9876543210",
		"98765-x-43210":           "98765x43210",
		"phone:+91(98765)43210!!": "phone:+919876543210!!",
	}
	for in, want := range tests {
		if got := normalizeMobile(in); got != want {
			t.Errorf("normalizeMobile(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Lead)
		wantFields []string
	}{
		{"valid", func(*Lead) {}, nil},
		{"valid with state", func(l *Lead) { l.StateSlug = "rajasthan" }, nil},
		{"missing name", func(l *Lead) { l.FullName = "" }, []string{"full_name"}},
		{"bad email", func(l *Lead) { l.Email = "asha@" }, []string{"email"}},
		{"short mobile", func(l *Lead) { l.Mobile = "98765" }, []string{"mobile"}},
		{"landline", func(l *Lead) { l.Mobile = "0141 222 3333" }, []string{"mobile"}},
		{"mobile inside free text", func(l *Lead) { l.Mobile = "call me 98765-x-43210 pls" }, []string{"mobile"}},
		{"mobile with label", func(l *Lead) { l.Mobile = "phone:+91(98765)43210!!" }, []string{"mobile"}},
		{"bracketed mobile", func(l *Lead) { l.Mobile = "+91 (98765) 43210" }, nil},
		{"bad pincode", func(l *Lead) { l.Pincode = "012345" }, []string{"pincode"}},
		{"unknown state", func(l *Lead) { l.StateSlug = "atlantis" }, []string{"state_slug"}},
		{"bad source", func(l *Lead) { l.Source = "Rajasthan Form!" }, []string{"source"}},
		{"several", func(l *Lead) { l.FullName = ""; l.Mobile = "" }, []string{"full_name", "mobile"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validLead()
			tt.mutate(&l)
			err := Validate(Normalize(l))
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errors.EInvalidLead, errors.GetCode(err))
			assert.Equal(t, tt.wantFields, InvalidFields(err))
		})
	}
}

func TestValidate_Hint(t *testing.T) {
	l := Normalize(validLead())
	l.Mobile = "123"
	err := Validate(l)
	assert.Equal(t, "enter a 10-digit Indian mobile number", errors.GetHint(err))
}

type captured struct {
	body    map[string]any
	headers http.Header
}

// newBackend fakes the submission API. Each request body is delivered on
// the returned channel.
func newBackend(t *testing.T, status int, calls *atomic.Int32) (*httptest.Server, <-chan captured) {
	t.Helper()
	reqs := make(chan captured, 4)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Method != http.MethodPost || r.URL.Path != "/api/consultations/public" {
			http.Error(w, "unexpected route", http.StatusTeapot)
			return
		}
		got := captured{headers: r.Header.Clone()}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &got.body)
		reqs <- got
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	t.Cleanup(ts.Close)
	return ts, reqs
}

func readEvents(t *testing.T, path string) []events.Event {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var out []events.Event
	for _, line := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
		var e events.Event
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		out = append(out, e)
	}
	return out
}

func testClient(baseURL, eventsPath string) *Client {
	fixed := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	return NewClient(Config{BaseURL: baseURL},
		WithEvents(events.NewLog(eventsPath)),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return fixed }),
		WithIDGenerator(func() string { return "sub-1" }),
	)
}

func TestSubmit_Success(t *testing.T) {
	var calls atomic.Int32
	ts, reqs := newBackend(t, http.StatusCreated, &calls)
	eventsPath := filepath.Join(t.TempDir(), "events.jsonl")

	l := validLead()
	l.StateSlug = "Rajasthan"
	receipt, err := testClient(ts.URL+"/api/", eventsPath).Submit(context.Background(), l)
	require.NoError(t, err)

	assert.Equal(t, "sub-1", receipt.SubmissionID)
	assert.Equal(t, http.StatusCreated, receipt.StatusCode)
	assert.Equal(t, int32(1), calls.Load())

	got := <-reqs
	assert.Equal(t, "Asha Verma", got.body["full_name"])
	assert.Equal(t, "9876543210", got.body["mobile"])
	assert.Equal(t, "rajasthan", got.body["state_slug"])
	assert.Equal(t, "rajasthan_comprehensive_form", got.body["source"])
	assert.Equal(t, "302001", got.body["pincode"])
	addr, present := got.body["address"]
	assert.True(t, present, "address is sent as null")
	assert.Nil(t, addr)
	assert.Equal(t, "sub-1", got.headers.Get("Idempotency-Key"))

	evs := readEvents(t, eventsPath)
	require.Len(t, evs, 1)
	assert.Equal(t, events.EventLeadSubmitted, evs[0].Event)
	assert.Equal(t, "sub-1", evs[0].SubmissionID)
	assert.Equal(t, "2026-01-10T12:00:00Z", evs[0].Timestamp)
	raw, _ := os.ReadFile(eventsPath)
	assert.NotContains(t, string(raw), "asha@example.com", "contact details must not be logged")
	assert.NotContains(t, string(raw), "9876543210")
}

func TestSubmit_DefaultSource(t *testing.T) {
	var calls atomic.Int32
	ts, reqs := newBackend(t, http.StatusOK, &calls)

	l := validLead()
	l.Source = ""
	_, err := testClient(ts.URL+"/api", "").Submit(context.Background(), l)
	require.NoError(t, err)
	got := <-reqs
	assert.Equal(t, DefaultSource, got.body["source"])
	assert.Nil(t, got.body["state_slug"])
}

func TestSubmit_BackendErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	ts, _ := newBackend(t, http.StatusBadGateway, &calls)
	eventsPath := filepath.Join(t.TempDir(), "events.jsonl")

	_, err := testClient(ts.URL+"/api", eventsPath).Submit(context.Background(), validLead())
	require.Error(t, err)
	assert.Equal(t, errors.ELeadSubmitFailed, errors.GetCode(err))
	assert.Equal(t, int32(1), calls.Load())

	ae, _ := errors.AsAppError(err)
	assert.Equal(t, "502", ae.Details["status_code"])
	assert.Equal(t, "sub-1", ae.Details["submission_id"])

	evs := readEvents(t, eventsPath)
	require.Len(t, evs, 1)
	assert.Equal(t, events.EventLeadFailed, evs[0].Event)
}

func TestSubmit_FailureReasonOmitsResponseBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"duplicate lead","lead":` + string(raw) + `}`))
	}))
	defer ts.Close()
	eventsPath := filepath.Join(t.TempDir(), "events.jsonl")

	_, err := testClient(ts.URL, eventsPath).Submit(context.Background(), validLead())
	assert.Equal(t, errors.ELeadSubmitFailed, errors.GetCode(err))

	evs := readEvents(t, eventsPath)
	require.Len(t, evs, 1)
	assert.Equal(t, events.EventLeadFailed, evs[0].Event)
	raw, _ := os.ReadFile(eventsPath)
	assert.NotContains(t, string(raw), "asha@example.com")
	assert.NotContains(t, string(raw), "9876543210")
	assert.NotContains(t, string(raw), "duplicate lead")
	assert.Contains(t, string(raw), "422")
}

func TestSubmit_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := ts.URL
	ts.Close()

	_, err := testClient(base, "").Submit(context.Background(), validLead())
	assert.Equal(t, errors.ELeadSubmitFailed, errors.GetCode(err))
}

func TestSubmit_InvalidNeverSends(t *testing.T) {
	var calls atomic.Int32
	ts, _ := newBackend(t, http.StatusOK, &calls)
	eventsPath := filepath.Join(t.TempDir(), "events.jsonl")

	l := validLead()
	l.Email = ""
	_, err := testClient(ts.URL+"/api", eventsPath).Submit(context.Background(), l)
	assert.Equal(t, errors.EInvalidLead, errors.GetCode(err))
	assert.Equal(t, int32(0), calls.Load())

	evs := readEvents(t, eventsPath)
	require.Len(t, evs, 1)
	assert.Equal(t, events.EventLeadRejected, evs[0].Event)
	assert.Empty(t, evs[0].SubmissionID)
}

func TestSubmit_Disabled(t *testing.T) {
	c := testClient("", "")
	assert.False(t, c.Enabled())
	_, err := c.Submit(context.Background(), validLead())
	assert.Equal(t, errors.ELeadsDisabled, errors.GetCode(err))
}

func TestNewClient_GeneratesUUIDs(t *testing.T) {
	var calls atomic.Int32
	ts, _ := newBackend(t, http.StatusOK, &calls)

	c := NewClient(Config{BaseURL: ts.URL + "/api"}, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	a, err := c.Submit(context.Background(), validLead())
	require.NoError(t, err)
	b, err := c.Submit(context.Background(), validLead())
	require.NoError(t, err)

	assert.Len(t, a.SubmissionID, 36)
	assert.NotEqual(t, a.SubmissionID, b.SubmissionID)
}
