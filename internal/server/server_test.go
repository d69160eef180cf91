package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
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

	"github.com/NielsdaWheelz/filemyrti/internal/config"
	"github.com/NielsdaWheelz/filemyrti/internal/events"
	"github.com/NielsdaWheelz/filemyrti/internal/leads"
	"github.com/NielsdaWheelz/filemyrti/internal/logging"
	"github.com/NielsdaWheelz/filemyrti/internal/page"
	"github.com/NielsdaWheelz/filemyrti/internal/popup"
	"github.com/NielsdaWheelz/filemyrti/internal/provider"
	"github.com/NielsdaWheelz/filemyrti/internal/remote"
)

// fakeBackend serves the remote state endpoint and the lead endpoint.
type fakeBackend struct {
	stateStatus int
	stateBody   string
	stateBlock  bool
	leadStatus  int

	stateCalls atomic.Int32
	leadCalls  atomic.Int32
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case strings.HasPrefix(r.URL.Path, "/api/states/"):
		b.stateCalls.Add(1)
		if b.stateBlock {
			<-r.Context().Done()
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(b.stateStatus)
		_, _ = io.WriteString(w, b.stateBody)
	case r.URL.Path == "/api/consultations/public":
		b.leadCalls.Add(1)
		w.WriteHeader(b.leadStatus)
		_, _ = io.WriteString(w, `{"success":true}`)
	default:
		http.NotFound(w, r)
	}
}

type testEnv struct {
	srv     *Server
	backend *fakeBackend
	events  string
}

func newEnv(t *testing.T, b *fakeBackend, await time.Duration, limiter *IPRateLimiter) *testEnv {
	t.Helper()
	ts := httptest.NewServer(b)
	t.Cleanup(ts.Close)

	logger := logging.Discard()
	sched := provider.NewIdleScheduler(time.Second)
	eventsPath := filepath.Join(t.TempDir(), "events.jsonl")
	ev := events.NewLog(eventsPath)

	srv := New(Deps{
		Provider: provider.New(nil, remote.New(remote.Config{BaseURL: ts.URL + "/api"}),
			provider.WithScheduler(sched),
			provider.WithLogger(logger),
		),
		Scheduler: sched,
		Pages:     page.NewBuilder(nil, "/"),
		Leads:     leads.NewClient(leads.Config{BaseURL: ts.URL + "/api"}, leads.WithEvents(ev), leads.WithLogger(logger)),
		Popup:     popup.NewMemoryStore(),
		Events:    ev,
		Limiter:   limiter,
		Logger:    logger,
		Await:     await,
	})
	return &testEnv{srv: srv, backend: b, events: eventsPath}
}

func (e *testEnv) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	e.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

const remoteOK = `{"success":true,"data":{"name":"Rajasthan","slug":"rajasthan","description":"From the backend","rti_portal_url":"https://rti.rajasthan.gov.in/"}}`

func TestHealthz(t *testing.T) {
	env := newEnv(t, &fakeBackend{}, 0, nil)
	rec := env.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestRequestIDPropagates(t *testing.T) {
	env := newEnv(t, &fakeBackend{}, 0, nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	env.srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "req-42", rec.Header().Get(requestIDHeader))
}

func TestListStates(t *testing.T) {
	env := newEnv(t, &fakeBackend{}, 0, nil)
	rec := env.do(t, http.MethodGet, "/api/states", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode(t, rec)["states"].([]any)
	assert.Len(t, list, 3)
}

func TestGetState_Merged(t *testing.T) {
	b := &fakeBackend{stateStatus: http.StatusOK, stateBody: remoteOK}
	env := newEnv(t, b, 2*time.Second, nil)

	rec := env.do(t, http.MethodGet, "/api/states/Rajasthan", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, string(provider.PhaseMerged), body["phase"])
	cfg := body["config"].(map[string]any)
	assert.Equal(t, "From the backend", cfg["description"])
	assert.Empty(t, body["remote_error"])
	assert.Equal(t, int32(1), b.stateCalls.Load())
}

func TestGetState_MixedCaseSlugStaysCanonical(t *testing.T) {
	b := &fakeBackend{stateStatus: http.StatusOK, stateBody: `{"success":true,"data":{"slug":"Rajasthan","description":"From the backend"}}`}
	env := newEnv(t, b, 2*time.Second, nil)

	rec := env.do(t, http.MethodGet, "/api/states/RAJASTHAN", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, string(provider.PhaseMerged), body["phase"])
	assert.Equal(t, "rajasthan", body["slug"])
	assert.Equal(t, "rajasthan", body["config"].(map[string]any)["slug"])
}

func TestGetState_RemoteFailureServesStatic(t *testing.T) {
	b := &fakeBackend{stateStatus: http.StatusInternalServerError, stateBody: `oops`}
	env := newEnv(t, b, 2*time.Second, nil)

	rec := env.do(t, http.MethodGet, "/api/states/rajasthan", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, string(provider.PhaseStaticOnly), body["phase"])
	assert.Contains(t, body["remote_error"], "HTTP 500")
	assert.Equal(t, "rajasthan", body["config"].(map[string]any)["slug"])
}

func TestGetState_AwaitBound(t *testing.T) {
	b := &fakeBackend{stateBlock: true}
	env := newEnv(t, b, 50*time.Millisecond, nil)

	start := time.Now()
	rec := env.do(t, http.MethodGet, "/api/states/delhi", "")
	assert.Less(t, time.Since(start), time.Second)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(provider.PhaseStaticOnly), decode(t, rec)["phase"])
}

func TestGetState_NoAwaitIsStatic(t *testing.T) {
	b := &fakeBackend{stateStatus: http.StatusOK, stateBody: remoteOK}
	env := newEnv(t, b, 0, nil)

	rec := env.do(t, http.MethodGet, "/api/states/rajasthan", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(provider.PhaseStaticOnly), decode(t, rec)["phase"])
}

func TestGetState_Unknown(t *testing.T) {
	b := &fakeBackend{stateStatus: http.StatusOK, stateBody: remoteOK}
	env := newEnv(t, b, time.Second, nil)

	rec := env.do(t, http.MethodGet, "/api/states/atlantis", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, "E_UNKNOWN_STATE", body["code"])
	assert.Equal(t, "/api/states/atlantis", body["instance"])
	assert.NotEmpty(t, body["hint"])
	assert.Equal(t, int32(0), b.stateCalls.Load(), "unknown slugs never reach the remote source")
}

func TestPage(t *testing.T) {
	env := newEnv(t, &fakeBackend{stateStatus: http.StatusOK, stateBody: remoteOK}, 0, nil)

	tests := []struct {
		name     string
		host     string
		target   string
		wantSlug string
		wantCode int
	}{
		{"subdomain", "rajasthan.filemyrti.com", "/api/page", "rajasthan", http.StatusOK},
		{"query wins", "rajasthan.filemyrti.com", "/api/page?state=Telangana", "telangana", http.StatusOK},
		{"apex host", "filemyrti.com", "/api/page", "delhi", http.StatusOK},
		{"localhost", "localhost:8080", "/api/page", "delhi", http.StatusOK},
		{"unknown subdomain", "www.filemyrti.com", "/api/page", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req.Host = tt.host
			rec := httptest.NewRecorder()
			env.srv.Handler().ServeHTTP(rec, req)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantCode != http.StatusOK {
				return
			}
			body := decode(t, rec)
			assert.Equal(t, tt.wantSlug, body["slug"])
			assert.NotEmpty(t, body["sections"])
		})
	}
}

func TestDepartments(t *testing.T) {
	env := newEnv(t, &fakeBackend{}, 0, nil)

	rec := env.do(t, http.MethodGet, "/api/departments/telangana", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["sections"], 10)

	rec = env.do(t, http.MethodGet, "/api/departments/atlantis", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResource(t *testing.T) {
	env := newEnv(t, &fakeBackend{}, 0, nil)

	rec := env.do(t, http.MethodGet, "/api/resources?name=RTI+Delhi+Police", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["found"])
	dept := body["department"].(map[string]any)
	assert.Equal(t, "delhi/RTI Delhi Police & Security/RTI Template For Delhi Police.pdf", dept["path"])

	rec = env.do(t, http.MethodGet, "/api/resources?name=RTI+Delhi+Metro", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, false, body["found"])
	fb := body["department"].(map[string]any)["fallback"].(map[string]any)
	assert.Equal(t, "/apply?department=RTI+Delhi+Metro&state=delhi", fb["url"])

	rec = env.do(t, http.MethodGet, "/api/resources", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "E_USAGE", decode(t, rec)["code"])
}

const leadBody = `{"full_name":"Asha Verma","email":"asha@example.com","mobile":"9876543210","state_slug":"rajasthan","source":"rajasthan_comprehensive_form"}`

func TestLead_Accepted(t *testing.T) {
	b := &fakeBackend{leadStatus: http.StatusCreated}
	env := newEnv(t, b, 0, nil)

	rec := env.do(t, http.MethodPost, "/api/leads", leadBody)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "submitted", body["status"])
	assert.Len(t, body["submission_id"], 36)
	assert.Equal(t, int32(1), b.leadCalls.Load())

	raw, err := os.ReadFile(env.events)
	require.NoError(t, err)
	assert.Contains(t, string(raw), events.EventLeadSubmitted)
}

func TestLead_Invalid(t *testing.T) {
	b := &fakeBackend{leadStatus: http.StatusCreated}
	env := newEnv(t, b, 0, nil)

	rec := env.do(t, http.MethodPost, "/api/leads", `{"full_name":"","email":"nope","mobile":"9876543210"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "E_INVALID_LEAD", body["code"])
	assert.Equal(t, []any{"full_name", "email"}, body["fields"])
	assert.Equal(t, int32(0), b.leadCalls.Load())

	rec = env.do(t, http.MethodPost, "/api/leads", `{"full_name":"x","unexpected":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLead_UpstreamFailure(t *testing.T) {
	env := newEnv(t, &fakeBackend{leadStatus: http.StatusServiceUnavailable}, 0, nil)
	rec := env.do(t, http.MethodPost, "/api/leads", leadBody)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "E_LEAD_SUBMIT_FAILED", decode(t, rec)["code"])
}

func TestLead_Disabled(t *testing.T) {
	srv := New(Deps{Logger: logging.Discard()})
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(leadBody))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "E_LEADS_DISABLED", decode(t, rec)["code"])
}

func TestLead_RateLimited(t *testing.T) {
	b := &fakeBackend{leadStatus: http.StatusCreated}
	env := newEnv(t, b, 0, NewIPRateLimiter(1, 1))

	first := env.do(t, http.MethodPost, "/api/leads", leadBody)
	require.Equal(t, http.StatusAccepted, first.Code)

	second := env.do(t, http.MethodPost, "/api/leads", leadBody)
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
	assert.Equal(t, "E_RATE_LIMITED", decode(t, second)["code"])
	assert.Equal(t, int32(1), b.leadCalls.Load())
}

func TestPopup(t *testing.T) {
	env := newEnv(t, &fakeBackend{}, 0, nil)

	rec := env.do(t, http.MethodGet, "/api/popup/visitor-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["show"])

	rec = env.do(t, http.MethodPost, "/api/popup/visitor-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/popup/visitor-1", "")
	body := decode(t, rec)
	assert.Equal(t, false, body["show"])
	assert.Equal(t, popup.FlagName, body["flag"])
	assert.Equal(t, "memory", body["backend"])

	rec = env.do(t, http.MethodGet, "/api/popup/bad%20visitor", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	raw, err := os.ReadFile(env.events)
	require.NoError(t, err)
	assert.Contains(t, string(raw), events.EventPopupDismissed)
}

func TestNotFound(t *testing.T) {
	env := newEnv(t, &fakeBackend{}, 0, nil)
	rec := env.do(t, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
}

func TestServe_Shutdown(t *testing.T) {
	cfg := config.Default()
	srv := NewFromConfig(cfg, nil, popup.NewMemoryStore(), logging.Discard())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
