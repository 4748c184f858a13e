// Package console owns the terminal output of the execution pipeline:
// timestamped log lines, raw prints, blank separators, console clearing
// and the buffered/streaming output mode toggled around a running
// command.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/dkonishi/kicker/config"
)

// defaultClear writes ANSI clear-and-home. The actual control codes are a
// terminal concern; callers can inject their own via WithClearFunc.
func defaultClear(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// Console writes pipeline output. Writes go through an internal buffer
// except while streaming mode is active, during which they pass straight
// to the underlying writer so subprocess output appears immediately.
//
// Console is used from a single execution thread; it is not safe for
// concurrent use.
type Console struct {
	cfg       *config.Config
	out       io.Writer
	buf       *bufio.Writer
	streaming bool
	colored   bool
	clearFn   func(io.Writer)
	now       func() time.Time

	succeedText func(string) string
	failText    func(string) string
}

// Option configures a Console.
type Option func(*Console)

// WithClearFunc replaces the console-clearing function.
func WithClearFunc(fn func(io.Writer)) Option {
	return func(c *Console) {
		c.clearFn = fn
	}
}

// WithNow replaces the clock used for log timestamps.
func WithNow(now func() time.Time) Option {
	return func(c *Console) {
		c.now = now
	}
}

// WithColor forces colored status lines on or off. The default enables
// color only when the underlying writer is a terminal.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		c.colored = enabled
	}
}

// New creates a Console writing to out.
func New(cfg *config.Config, out io.Writer, opts ...Option) *Console {
	c := &Console{
		cfg:     cfg,
		out:     out,
		buf:     bufio.NewWriter(out),
		colored: isTerminal(out),
		clearFn: defaultClear,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.succeedText = plainText
	c.failText = plainText
	if c.colored {
		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		c.succeedText = func(s string) string { return green(s) }
		c.failText = func(s string) string { return red(s) }
	}

	return c
}

func plainText(s string) string { return s }

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writer returns the current write target.
func (c *Console) writer() io.Writer {
	if c.streaming {
		return c.out
	}
	return c.buf
}

// Write implements io.Writer so the Console can serve as the live echo
// target for subprocess output.
func (c *Console) Write(p []byte) (int, error) {
	return c.writer().Write(p)
}

// Log prints msg with a timestamp prefix formatted HH:MM:SS.cc. In quiet
// mode the message is printed verbatim.
func (c *Console) Log(msg string) {
	if c.cfg != nil && c.cfg.Quiet {
		c.Println(msg)
		return
	}
	c.Println(timestamp(c.now()) + " | " + msg)
}

// Status logs the execution outcome, colored when enabled.
func (c *Console) Status(succeeded bool, exitCode int) {
	if succeeded {
		c.Log(c.succeedText("Success"))
		return
	}
	c.Log(c.failText(fmt.Sprintf("Failed (%d)", exitCode)))
}

// Print prints raw text with no newline and no timestamp.
func (c *Console) Print(s string) {
	fmt.Fprint(c.writer(), s)
}

// Println prints a raw line with no timestamp.
func (c *Console) Println(s string) {
	fmt.Fprintln(c.writer(), s)
}

// Blank prints an empty separator line.
func (c *Console) Blank() {
	fmt.Fprintln(c.writer())
}

// Clear clears the console.
func (c *Console) Clear() {
	c.clearFn(c.writer())
}

// Flush writes any buffered output through to the underlying writer.
func (c *Console) Flush() error {
	return c.buf.Flush()
}

// StreamMode flushes pending output and switches the Console to
// unbuffered writes until the returned restore function runs. Restore is
// idempotent and safe to call from a defer on every exit path; it
// reinstates the prior mode.
func (c *Console) StreamMode() (restore func()) {
	_ = c.buf.Flush()
	prev := c.streaming
	c.streaming = true

	restored := false
	return func() {
		if restored {
			return
		}
		restored = true
		c.streaming = prev
	}
}

// timestamp formats t as HH:MM:SS.cc with a two-digit fractional-second
// component.
func timestamp(t time.Time) string {
	return fmt.Sprintf("%s.%02d", t.Format("15:04:05"), t.Nanosecond()/1e7)
}
