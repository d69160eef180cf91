package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatFirstLinesAreCodeAndMessage(t *testing.T) {
	tests := []struct {
		name string
		code Code
		msg  string
	}{
		{"usage error", EUsage, "bad args"},
		{"unknown state", EUnknownState, "unknown state: goa"},
		{"invalid lead", EInvalidLead, "email is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := Format(New(tt.code, tt.msg), PrintOptions{})
			lines := strings.Split(output, "\n")
			if len(lines) < 2 {
				t.Fatalf("expected at least two lines, got %q", output)
			}
			if lines[0] != "error_code: "+string(tt.code) {
				t.Errorf("first line = %q", lines[0])
			}
			if lines[1] != tt.msg {
				t.Errorf("second line = %q, want %q", lines[1], tt.msg)
			}
		})
	}
}

func TestFormatContextKeysInOrder(t *testing.T) {
	err := NewWithDetails(ERemoteFetchFailed, "remote config fetch failed", map[string]string{
		"url":  "https://api.example.com/states/telangana",
		"op":   "remote.fetch",
		"slug": "telangana",
	})

	output := Format(err, PrintOptions{})

	opIdx := strings.Index(output, "op: remote.fetch")
	slugIdx := strings.Index(output, "slug: telangana")
	urlIdx := strings.Index(output, "url: https://api.example.com/states/telangana")
	if opIdx < 0 || slugIdx < 0 || urlIdx < 0 {
		t.Fatalf("missing context keys in output:\n%s", output)
	}
	if !(opIdx < slugIdx && slugIdx < urlIdx) {
		t.Errorf("context keys out of order:\n%s", output)
	}
}

func TestFormatNoContextNoBlankLine(t *testing.T) {
	output := Format(New(EUsage, "bad args"), PrintOptions{})
	if output != "error_code: E_USAGE\nbad args\n" {
		t.Errorf("unexpected output %q", output)
	}
}

func TestFormatVerboseExtraAndCause(t *testing.T) {
	err := WrapWithDetails(EPersistFailed, "failed to write popup store", errors.New("disk full"), map[string]string{
		"path":    "/var/lib/filemyrti/popup.json",
		"zz_note": "custom",
	})

	output := Format(err, PrintOptions{Verbose: true})

	if !strings.Contains(output, "path: /var/lib/filemyrti/popup.json") {
		t.Errorf("verbose output should include path:\n%s", output)
	}
	if !strings.Contains(output, "cause: disk full") {
		t.Errorf("verbose output should include cause:\n%s", output)
	}
	if !strings.Contains(output, "extra:\n  zz_note: custom") {
		t.Errorf("verbose output should include extra section:\n%s", output)
	}

	plain := Format(err, PrintOptions{})
	if strings.Contains(plain, "zz_note") || strings.Contains(plain, "cause:") {
		t.Errorf("default output should hide extras:\n%s", plain)
	}
}

func TestFormatHintAndTryLines(t *testing.T) {
	err := NewWithDetails(EResourceNotFound, "no template for department", map[string]string{
		"department": "RTI Delhi Metro",
		"state":      "delhi",
		"hint":       "use the application flow instead",
	})

	output := Format(err, PrintOptions{})

	if !strings.Contains(output, "\nhint: use the application flow instead\n") {
		t.Errorf("missing hint:\n%s", output)
	}
	if !strings.HasSuffix(output, "try: filemyrti resource list --state delhi\n") {
		t.Errorf("missing try line:\n%s", output)
	}
}

func TestFormatSanitizesMultilineValues(t *testing.T) {
	err := NewWithDetails(EInvalidConfig, "bad config", map[string]string{
		"field": "line1\r\nline2\n",
	})
	output := Format(err, PrintOptions{})
	if !strings.Contains(output, "field: line1\\nline2\n") {
		t.Errorf("value not sanitized:\n%s", output)
	}
}

func TestFormatNonAppError(t *testing.T) {
	if got := Format(errors.New("plain"), PrintOptions{}); got != "plain\n" {
		t.Errorf("Format() = %q", got)
	}
}

func TestFormatHint(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"hint: already", "hint: already"},
		{"do this", "hint: do this"},
	}
	for _, tt := range tests {
		if got := FormatHint(tt.in); got != tt.want {
			t.Errorf("FormatHint(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetHint(t *testing.T) {
	err := NewWithDetails(EUsage, "x", map[string]string{"hint": "pass a slug"})
	if GetHint(err) != "pass a slug" {
		t.Errorf("GetHint() = %q", GetHint(err))
	}
	if GetHint(errors.New("plain")) != "" {
		t.Error("GetHint on plain error should be empty")
	}
}
