package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/NielsdaWheelz/filemyrti/internal/page"
	"github.com/NielsdaWheelz/filemyrti/internal/resources"
	"github.com/NielsdaWheelz/filemyrti/internal/states"
)

func TestWriteTable_AlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(&buf, []string{"A", "LONGER", "LAST"}, [][]string{
		{"xxxx", "y", "z"},
		{"q", "yyyyyyyy", "last column is not padded"},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "A     LONGER    LAST\n" +
		"xxxx  y         z\n" +
		"q     yyyyyyyy  last column is not padded\n"
	if buf.String() != want {
		t.Errorf("got:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestWriteKV_EmptyIsNone(t *testing.T) {
	var buf bytes.Buffer
	_ = WriteKV(&buf, []KV{{"a", "1"}, {"b", ""}})
	if buf.String() != "a: 1\nb: none\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestTruncateForDisplay(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"abc", 2, "ab"},
	}
	for _, tt := range tests {
		if got := TruncateForDisplay(tt.in, tt.max); got != tt.want {
			t.Errorf("TruncateForDisplay(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestWriteStateList(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteStateList(&buf, StateRows(states.Default().All())); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "SLUG") {
		t.Errorf("missing header:\n%s", out)
	}
	for _, slug := range states.AllSlugs() {
		if !strings.Contains(out, slug) {
			t.Errorf("missing %q:\n%s", slug, out)
		}
	}

	buf.Reset()
	_ = WriteStateList(&buf, nil)
	if buf.String() != "no states configured\n" {
		t.Errorf("empty output = %q", buf.String())
	}
}

func TestWriteStateShow(t *testing.T) {
	cfg, _ := states.GetStateBySlug("rajasthan")
	var buf bytes.Buffer
	if err := WriteStateShow(&buf, StateShowData{Config: cfg, Phase: "STATIC_ONLY"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"slug: rajasthan\n", "phase: STATIC_ONLY\n", "remote_error: none\n", "departments (", "process:"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestWriteResourceResult(t *testing.T) {
	b := page.NewBuilder(nil, "")

	var hit bytes.Buffer
	_ = WriteResourceResult(&hit, ResourceResult{Found: true, Jurisdiction: resources.Delhi, Department: b.Resolve("delhi", "RTI Delhi Police")})
	if !strings.Contains(hit.String(), "path: delhi/RTI Delhi Police & Security/") {
		t.Errorf("hit output:\n%s", hit.String())
	}

	var miss bytes.Buffer
	_ = WriteResourceResult(&miss, ResourceResult{Jurisdiction: resources.Delhi, Department: b.Resolve("delhi", "RTI Delhi Metro")})
	if !strings.Contains(miss.String(), "found: no\n") || !strings.Contains(miss.String(), "fallback: /apply?") {
		t.Errorf("miss output:\n%s", miss.String())
	}
}

func TestWriteSections(t *testing.T) {
	b := page.NewBuilder(nil, "")
	var buf bytes.Buffer
	if err := WriteSections(&buf, b.Sections(resources.Telangana)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "DEPARTMENT") {
		t.Errorf("missing header:\n%s", buf.String())
	}

	buf.Reset()
	_ = WriteSections(&buf, nil)
	if buf.String() != "no departments listed\n" {
		t.Errorf("empty output = %q", buf.String())
	}
}
