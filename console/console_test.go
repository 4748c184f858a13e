package console

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/dkonishi/kicker/config"
)

var logLine = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} \| `)

func fixedNow() time.Time {
	return time.Date(2026, 8, 30, 9, 41, 7, 350_000_000, time.UTC)
}

func TestLogTimestampFormat(t *testing.T) {
	var buf bytes.Buffer
	c := New(config.Default(), &buf, WithNow(fixedNow))

	c.Log("compiling")
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	got := buf.String()
	if !logLine.MatchString(got) {
		t.Fatalf("Log() = %q, want HH:MM:SS.cc prefix", got)
	}
	if got != "09:41:07.35 | compiling\n" {
		t.Errorf("Log() = %q", got)
	}
}

func TestLogQuietOmitsTimestamp(t *testing.T) {
	cfg := config.Default()
	cfg.Quiet = true

	var buf bytes.Buffer
	c := New(cfg, &buf, WithNow(fixedNow))

	c.Log("compiling")
	c.Flush()

	if got := buf.String(); got != "compiling\n" {
		t.Errorf("Log() = %q, want verbatim message", got)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name      string
		succeeded bool
		exitCode  int
		want      string
	}{
		{"success", true, 0, "Success"},
		{"failure includes exit code", false, 7, "Failed (7)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := New(config.Default(), &buf, WithNow(fixedNow), WithColor(false))

			c.Status(tt.succeeded, tt.exitCode)
			c.Flush()

			if got := buf.String(); !strings.Contains(got, tt.want) {
				t.Errorf("Status() = %q, want substring %q", got, tt.want)
			}
		})
	}
}

func TestPrintOmitsNewline(t *testing.T) {
	var buf bytes.Buffer
	c := New(config.Default(), &buf)

	c.Print("no newline")
	c.Flush()

	if got := buf.String(); got != "no newline" {
		t.Errorf("Print() = %q", got)
	}
}

func TestWritesBufferedUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	c := New(config.Default(), &buf)

	c.Println("pending")
	if buf.Len() != 0 {
		t.Fatalf("output reached writer before Flush: %q", buf.String())
	}

	c.Flush()
	if got := buf.String(); got != "pending\n" {
		t.Errorf("after Flush = %q", got)
	}
}

func TestStreamModeBypassesBuffer(t *testing.T) {
	var buf bytes.Buffer
	c := New(config.Default(), &buf)

	restore := c.StreamMode()
	c.Write([]byte("live"))
	if got := buf.String(); got != "live" {
		t.Fatalf("streaming write = %q, want immediate %q", got, "live")
	}

	restore()
	c.Println("buffered again")
	if got := buf.String(); got != "live" {
		t.Fatalf("post-restore write reached writer before Flush: %q", got)
	}
	c.Flush()
	if got := buf.String(); got != "live"+"buffered again\n" {
		t.Errorf("after Flush = %q", got)
	}
}

func TestStreamModeFlushesPendingOutput(t *testing.T) {
	var buf bytes.Buffer
	c := New(config.Default(), &buf)

	c.Println("queued")
	c.StreamMode()

	if got := buf.String(); got != "queued\n" {
		t.Errorf("StreamMode did not flush pending output: %q", got)
	}
}

func TestStreamModeRestoreIdempotent(t *testing.T) {
	var buf bytes.Buffer
	c := New(config.Default(), &buf)

	restore := c.StreamMode()
	restore()
	restore()

	c.Println("x")
	if buf.Len() != 0 {
		t.Errorf("double restore left console streaming: %q", buf.String())
	}
}

func TestClearUsesInjectedFunc(t *testing.T) {
	var buf bytes.Buffer
	cleared := false
	c := New(config.Default(), &buf, WithClearFunc(func(w io.Writer) {
		cleared = true
	}))

	c.Clear()
	if !cleared {
		t.Error("Clear() did not invoke the injected clear function")
	}
}
