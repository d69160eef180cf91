package tty

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestIsTTY_NotTerminal(t *testing.T) {
	if IsTTY(nil) {
		t.Error("IsTTY(nil) = true, want false")
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTTY(f) {
		t.Error("IsTTY(regular file) = true, want false")
	}
	if IsTerminal(f) {
		t.Error("IsTerminal(regular file) = true, want false")
	}

	var buf bytes.Buffer
	if IsTerminal(&buf) {
		t.Error("IsTerminal(buffer) = true, want false")
	}
}

func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		requested string
		want      string
	}{
		{"", "json"},
		{"text", "text"},
		{"json", "json"},
	}
	for _, tt := range tests {
		if got := LogFormat(tt.requested, &buf); got != tt.want {
			t.Errorf("LogFormat(%q, buffer) = %q, want %q", tt.requested, got, tt.want)
		}
	}
}
