package events

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestAppendEvent(t *testing.T) {
	t.Run("creates file lazily", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "events.jsonl")

		event := Event{
			SchemaVersion: "1.0",
			Timestamp:     "2026-01-10T12:00:00Z",
			SubmissionID:  "6f1c2d4e-0000-4000-8000-000000000001",
			Event:         EventLeadSubmitted,
			Data:          LeadSubmittedData("rajasthan", "rajasthan_comprehensive_form", 201, 84),
		}

		if err := AppendEvent(path, event); err != nil {
			t.Fatalf("AppendEvent() error = %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}

		// Should be a single line ending with newline
		if !strings.HasSuffix(string(content), "\n") {
			t.Error("expected line to end with newline")
		}

		var parsed Event
		if err := json.Unmarshal(content, &parsed); err != nil {
			t.Fatalf("failed to parse JSON: %v", err)
		}
		if parsed.Event != EventLeadSubmitted {
			t.Errorf("Event = %q, want %q", parsed.Event, EventLeadSubmitted)
		}
		if parsed.SubmissionID != event.SubmissionID {
			t.Errorf("SubmissionID = %q, want %q", parsed.SubmissionID, event.SubmissionID)
		}
		if parsed.Data["state_slug"] != "rajasthan" {
			t.Errorf("data.state_slug = %v", parsed.Data["state_slug"])
		}
	})

	t.Run("appends multiple events", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "events.jsonl")

		for _, name := range []string{EventLeadRejected, EventLeadFailed} {
			if err := AppendEvent(path, Event{SchemaVersion: "1.0", Timestamp: "2026-01-10T12:00:00Z", Event: name}); err != nil {
				t.Fatalf("AppendEvent(%s) error = %v", name, err)
			}
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		var e2 Event
		if err := json.Unmarshal([]byte(lines[1]), &e2); err != nil {
			t.Fatalf("failed to parse line 2: %v", err)
		}
		if e2.Event != EventLeadFailed {
			t.Errorf("event2.Event = %q, want %q", e2.Event, EventLeadFailed)
		}
	})

	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "events.jsonl")
		if err := AppendEvent(path, Event{SchemaVersion: "1.0", Event: EventPopupDismissed}); err != nil {
			t.Fatalf("AppendEvent() error = %v", err)
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Fatal("expected events.jsonl to be created with parent dirs")
		}
	})
}

func TestLog_ConcurrentAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	log := NewLog(path)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := log.Append(Event{Event: EventLeadSubmitted}); err != nil {
				t.Errorf("Append() error = %v", err)
			}
		}()
	}
	wg.Wait()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 lines, got %d", len(lines))
	}
	for i, line := range lines {
		var e Event
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if e.SchemaVersion != SchemaVersion {
			t.Errorf("line %d schema_version = %q", i, e.SchemaVersion)
		}
	}
}

func TestLog_EmptyPathDiscards(t *testing.T) {
	if err := NewLog("").Append(Event{Event: EventLeadSubmitted}); err != nil {
		t.Errorf("Append() error = %v", err)
	}
	var nilLog *Log
	if err := nilLog.Append(Event{}); err != nil {
		t.Errorf("nil Append() error = %v", err)
	}
}

func TestLeadFailedData(t *testing.T) {
	t.Run("without response", func(t *testing.T) {
		data := LeadFailedData("delhi", "website", "E_LEAD_SUBMIT_FAILED", 0, "")
		if _, ok := data["status_code"]; ok {
			t.Error("status_code should not be present")
		}
		if _, ok := data["reason"]; ok {
			t.Error("reason should not be present")
		}
	})

	t.Run("reason truncated", func(t *testing.T) {
		data := LeadFailedData("delhi", "website", "E_LEAD_SUBMIT_FAILED", 502, strings.Repeat("x", 600))
		if data["status_code"] != 502 {
			t.Errorf("status_code = %v, want 502", data["status_code"])
		}
		if got := len(data["reason"].(string)); got != 512 {
			t.Errorf("len(reason) = %d, want 512", got)
		}
	})
}

func TestLeadRejectedData(t *testing.T) {
	data := LeadRejectedData("website", []string{"email", "mobile"})
	fields, ok := data["fields"].([]string)
	if !ok || len(fields) != 2 || fields[0] != "email" {
		t.Errorf("fields = %v", data["fields"])
	}
}

func TestEventJSON(t *testing.T) {
	data, err := json.Marshal(Event{
		SchemaVersion: "1.0",
		Timestamp:     "2026-01-10T12:00:00Z",
		Event:         EventPopupDismissed,
		Data:          PopupDismissedData("v-1", "file"),
	})
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	// Verify compact JSON (no indentation)
	if strings.Contains(string(data), "\n") {
		t.Error("JSON should be compact (no newlines)")
	}

	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	for _, field := range []string{"schema_version", "timestamp", "event"} {
		if _, ok := parsed[field]; !ok {
			t.Errorf("missing required field: %s", field)
		}
	}
	if _, ok := parsed["submission_id"]; ok {
		t.Error("submission_id should be omitted when empty")
	}
}
