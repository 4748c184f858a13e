//go:build !windows

package exec

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRunCapturesOutput(t *testing.T) {
	r := NewRunner()

	res, err := r.Run(context.Background(), &RunConfig{
		Argv: []string{"echo", "hello"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if got := string(res.Output); got != "hello\n" {
		t.Errorf("Output = %q, want %q", got, "hello\n")
	}
}

func TestRunNonZeroExitIsNotAnError(t *testing.T) {
	r := NewRunner()

	res, err := r.Run(context.Background(), &RunConfig{
		Argv: []string{"sh", "-c", "exit 7"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if res.ExitCode != 7 {
		t.Errorf("ExitCode = %d, want 7", res.ExitCode)
	}
}

func TestRunMergesStderrIntoStdout(t *testing.T) {
	r := NewRunner()

	res, err := r.Run(context.Background(), &RunConfig{
		Argv: []string{"sh", "-c", "echo out; echo err 1>&2"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	got := string(res.Output)
	if !strings.Contains(got, "out") || !strings.Contains(got, "err") {
		t.Errorf("Output = %q, want both streams merged", got)
	}
}

func TestRunEchoesWhileCapturing(t *testing.T) {
	r := NewRunner()

	var echo bytes.Buffer
	res, err := r.Run(context.Background(), &RunConfig{
		Argv: []string{"echo", "live"},
		Echo: &echo,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := string(res.Output); got != "live\n" {
		t.Errorf("Output = %q", got)
	}
	if got := echo.String(); got != "live\n" {
		t.Errorf("echoed = %q, want same bytes as captured", got)
	}
}

func TestRunSpawnFailure(t *testing.T) {
	r := NewRunner()

	res, err := r.Run(context.Background(), &RunConfig{
		Argv: []string{"definitely-not-a-binary-kicker-test"},
	})
	if err == nil {
		t.Fatal("Run() error = nil, want spawn failure")
	}
	if res == nil {
		t.Fatal("Run() result = nil, want partial result")
	}
	if len(res.Output) != 0 {
		t.Errorf("Output = %q, want empty", res.Output)
	}
}

func TestRunEmptyArgv(t *testing.T) {
	r := NewRunner()

	if _, err := r.Run(context.Background(), &RunConfig{}); err == nil {
		t.Error("Run() error = nil for empty argv")
	}
}

func TestRunCanceledContext(t *testing.T) {
	r := NewRunner()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Run(ctx, &RunConfig{Argv: []string{"echo", "x"}}); err == nil {
		t.Error("Run() error = nil with a canceled context")
	}
}

func TestRunCustomEnv(t *testing.T) {
	r := NewRunner()

	res, err := r.Run(context.Background(), &RunConfig{
		Argv: []string{"sh", "-c", "echo $KICKER_TEST_VAR"},
		Env:  []string{"KICKER_TEST_VAR=present", "PATH=/bin:/usr/bin"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.TrimSpace(string(res.Output)); got != "present" {
		t.Errorf("Output = %q, want %q", got, "present")
	}
}

func TestLookPath(t *testing.T) {
	if !LookPath("sh") {
		t.Error("LookPath(sh) = false")
	}
	if LookPath("definitely-not-a-binary-kicker-test") {
		t.Error("LookPath() = true for a nonexistent binary")
	}
}
