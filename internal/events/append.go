// Package events provides the lead relay audit log.
// Events are stored in append-only JSONL files.
package events

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// SchemaVersion is written on every event.
const SchemaVersion = "1.0"

// Event names.
const (
	EventLeadSubmitted  = "lead_submitted"
	EventLeadFailed     = "lead_failed"
	EventLeadRejected   = "lead_rejected"
	EventPopupDismissed = "popup_dismissed"
)

// Event represents a single event in events.jsonl.
// This is the public contract for the events file format.
// Contact details are never recorded.
type Event struct {
	SchemaVersion string         `json:"schema_version"`
	Timestamp     string         `json:"timestamp"` // RFC3339
	SubmissionID  string         `json:"submission_id,omitempty"`
	Event         string         `json:"event"`
	Data          map[string]any `json:"data,omitempty"`
}

// AppendEvent appends a single event to the events.jsonl file.
// The file is created lazily if it doesn't exist.
// Each event is written as a single JSON line followed by newline.
//
// Best-effort: errors are returned but callers should typically ignore them
// and continue with the main operation.
func AppendEvent(path string, e Event) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = f.Write(data)
	return err
}

// Log serializes appends to one events file across goroutines.
// A Log with an empty path discards events.
type Log struct {
	path string
	mu   sync.Mutex
}

// NewLog returns a Log writing to path.
func NewLog(path string) *Log {
	return &Log{path: path}
}

// Path returns the events file path.
func (l *Log) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Append writes e, filling SchemaVersion and Timestamp when unset.
func (l *Log) Append(e Event) error {
	if l == nil || l.path == "" {
		return nil
	}
	if e.SchemaVersion == "" {
		e.SchemaVersion = SchemaVersion
	}
	if e.Timestamp == "" {
		e.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return AppendEvent(l.path, e)
}

const maxReasonLen = 512

func truncate(s string) string {
	if len(s) > maxReasonLen {
		return s[:maxReasonLen]
	}
	return s
}

// LeadSubmittedData returns the data map for a lead_submitted event.
func LeadSubmittedData(stateSlug, source string, statusCode int, durationMs int64) map[string]any {
	return map[string]any{
		"state_slug":  stateSlug,
		"source":      source,
		"status_code": statusCode,
		"duration_ms": durationMs,
	}
}

// LeadFailedData returns the data map for a lead_failed event.
// statusCode is zero when no response was received.
func LeadFailedData(stateSlug, source, errorCode string, statusCode int, reason string) map[string]any {
	data := map[string]any{
		"state_slug": stateSlug,
		"source":     source,
		"error_code": errorCode,
	}
	if statusCode != 0 {
		data["status_code"] = statusCode
	}
	if reason != "" {
		data["reason"] = truncate(reason)
	}
	return data
}

// LeadRejectedData returns the data map for a lead_rejected event.
// fields lists the inputs that failed validation.
func LeadRejectedData(source string, fields []string) map[string]any {
	return map[string]any{
		"source": source,
		"fields": fields,
	}
}

// PopupDismissedData returns the data map for a popup_dismissed event.
func PopupDismissedData(visitor, backend string) map[string]any {
	return map[string]any{
		"visitor": visitor,
		"backend": backend,
	}
}
