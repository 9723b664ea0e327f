package runner

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRun_Argv(t *testing.T) {
	res, err := Run(context.Background(), Argv("sh", "-c", "echo hi"))
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !res.Ok() {
		t.Fatalf("exit code = %d", res.ExitCode)
	}
	if strings.TrimSpace(res.Output) != "hi" {
		t.Fatalf("output = %q", res.Output)
	}
}

func TestRun_NonZeroExitIsResultNotError(t *testing.T) {
	res, err := Run(context.Background(), Argv("sh", "-c", "echo nope >&2; exit 3"))
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if res.ExitCode != 3 {
		t.Fatalf("exit code = %d", res.ExitCode)
	}
	if !strings.Contains(res.Output, "nope") {
		t.Fatalf("stderr not captured: %q", res.Output)
	}
}

func TestRun_ShellScript(t *testing.T) {
	res, err := Run(context.Background(), ShellScript("x=brew; echo bootstrap-$x"))
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if strings.TrimSpace(res.Output) != "bootstrap-brew" {
		t.Fatalf("output = %q", res.Output)
	}
}

func TestRun_MissingExecutable(t *testing.T) {
	_, err := Run(context.Background(), Argv("definitely-not-a-real-binary-xyz"))
	if err == nil {
		t.Fatal("expected error for missing executable")
	}
}

func TestRun_ContextTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err := Run(ctx, Argv("sh", "-c", "sleep 5"))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

func TestResult_Lines(t *testing.T) {
	r := Result{Output: "a\nb  \n\n"}
	lines := r.Lines()
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "b" {
		t.Fatalf("lines = %v", lines)
	}
	if (Result{}).Lines() != nil {
		t.Fatal("empty output should yield nil")
	}
}
