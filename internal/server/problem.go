package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/NielsdaWheelz/filemyrti/internal/errors"
	"github.com/NielsdaWheelz/filemyrti/internal/leads"
)

// Problem is an RFC 7807 problem detail. Code carries the stable error
// code so clients can branch without parsing Detail.
type Problem struct {
	Type      string   `json:"type"`
	Title     string   `json:"title"`
	Status    int      `json:"status"`
	Detail    string   `json:"detail,omitempty"`
	Instance  string   `json:"instance,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
	Code      string   `json:"code,omitempty"`
	Hint      string   `json:"hint,omitempty"`
	Fields    []string `json:"fields,omitempty"`
}

func (p *Problem) Error() string {
	return fmt.Sprintf("%s: %s", p.Title, p.Detail)
}

// writeProblem writes an RFC 7807 response enriched with the request path
// and id.
func writeProblem(w http.ResponseWriter, r *http.Request, status int, code errors.Code, detail string) {
	writeProblemDoc(w, &Problem{
		Status:    status,
		Detail:    detail,
		Instance:  r.URL.Path,
		RequestID: w.Header().Get(requestIDHeader),
		Code:      string(code),
	})
}

func writeProblemDoc(w http.ResponseWriter, p *Problem) {
	p.Type = fmt.Sprintf("https://filemyrti.com/errors/%d", p.Status)
	p.Title = http.StatusText(p.Status)
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// statusFor maps error codes to HTTP statuses.
func statusFor(code errors.Code) int {
	switch code {
	case errors.EUsage:
		return http.StatusBadRequest
	case errors.EUnknownState, errors.EResourceNotFound:
		return http.StatusNotFound
	case errors.EInvalidLead:
		return http.StatusUnprocessableEntity
	case errors.ERateLimited:
		return http.StatusTooManyRequests
	case errors.ELeadSubmitFailed, errors.ERemoteFetchFailed:
		return http.StatusBadGateway
	case errors.ELeadsDisabled, errors.ERemoteNotConfigured:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a problem response. 5xx causes are logged and
// never exposed to the client.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	p := &Problem{
		Status:    status,
		Instance:  r.URL.Path,
		RequestID: w.Header().Get(requestIDHeader),
		Code:      string(code),
	}

	if status >= http.StatusInternalServerError && status != http.StatusBadGateway && status != http.StatusServiceUnavailable {
		logger.Error("internal server error", "request_id", p.RequestID, "path", r.URL.Path, "err", err)
		p.Detail = "An unexpected error occurred. Please try again later."
		if code == "" {
			p.Code = string(errors.EInternal)
		}
		writeProblemDoc(w, p)
		return
	}

	if ae, ok := errors.AsAppError(err); ok {
		p.Detail = ae.Msg
	} else {
		p.Detail = err.Error()
	}
	p.Hint = errors.GetHint(err)
	if code == errors.EInvalidLead {
		p.Fields = leads.InvalidFields(err)
	}
	if status == http.StatusBadGateway {
		logger.Warn("upstream failure", "request_id", p.RequestID, "path", r.URL.Path, "err", err)
	}
	writeProblemDoc(w, p)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// clientIP returns the peer address without port. Forwarding headers are
// not trusted.
func clientIP(r *http.Request) string {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		return host
	}
	ip = strings.TrimPrefix(ip, "[")
	return strings.TrimSuffix(ip, "]")
}
