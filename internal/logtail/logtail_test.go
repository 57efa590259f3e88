package logtail

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestTail(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "nosleep.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "zero", maxLines: 0, expected: nil},
		{name: "negative", maxLines: -1, expected: nil},
		{name: "partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Tail() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tail() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTail_MissingFile(t *testing.T) {
	got, err := Tail(filepath.Join(t.TempDir(), "absent.log"), 5)
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Tail() = %v, want nil", got)
	}
}

func TestParse_SlogTextLine(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Warn("assertion refused", slog.String("mask", "System|Continuous"), slog.String("error", "access denied"))

	entry := Parse(strings.TrimSpace(buf.String()))

	if entry.Level != "WARN" {
		t.Fatalf("Level = %q, want WARN", entry.Level)
	}
	if entry.Message != "assertion refused" {
		t.Fatalf("Message = %q, want %q", entry.Message, "assertion refused")
	}
	if _, err := time.Parse(time.RFC3339Nano, entry.Time); err != nil {
		t.Fatalf("Time %q did not parse: %v", entry.Time, err)
	}
	want := []Attr{{Key: "mask", Value: "System|Continuous"}, {Key: "error", Value: "access denied"}}
	if !reflect.DeepEqual(entry.Attrs, want) {
		t.Fatalf("Attrs = %#v, want %#v", entry.Attrs, want)
	}
}

func TestParse_PlainLine(t *testing.T) {
	line := "panic: something went wrong"
	entry := Parse(line)
	if entry.Message != line || entry.Level != "" || entry.Raw != line {
		t.Fatalf("Parse(%q) = %#v", line, entry)
	}
}

func TestParse_UnterminatedQuote(t *testing.T) {
	line := `level=INFO msg="half`
	if got := Parse(line); got.Message != line {
		t.Fatalf("Message = %q, want raw line", got.Message)
	}
}

func TestRecent(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nosleep.log")
	body := "level=INFO msg=starting\n\nlevel=INFO msg=toggle toggle=enabled value=false\nlevel=INFO msg=stopped\n"
	if err := os.WriteFile(logPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := Recent(logPath, 3)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Recent() returned %d entries, want 2", len(entries))
	}
	if entries[0].Message != "toggle" || entries[1].Message != "stopped" {
		t.Fatalf("Recent() messages = %q, %q", entries[0].Message, entries[1].Message)
	}
	if len(entries[0].Attrs) != 2 || entries[0].Attrs[1].Value != "false" {
		t.Fatalf("Recent() attrs = %#v", entries[0].Attrs)
	}
}
