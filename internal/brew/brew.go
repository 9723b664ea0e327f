// Package brew wraps the Homebrew CLI. brew itself stays an opaque
// collaborator: everything goes through subprocess invocations and
// parses plain command output.
package brew

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"brewctl/internal/runner"
)

// CommandError reports a brew invocation that exited non-zero where the
// output was going to be parsed rather than shown.
type CommandError struct {
	Args     []string
	ExitCode int
	Output   string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("brew %s exited %d", strings.Join(e.Args, " "), e.ExitCode)
}

// Brew invokes a brew executable. Bin is resolvable on PATH or an
// absolute path; tests point it at a stub.
type Brew struct {
	Bin string
}

// New returns a wrapper for the `brew` found on PATH.
func New() *Brew {
	return &Brew{Bin: "brew"}
}

// Detect reports whether the brew executable is resolvable on PATH.
// Absence is an expected outcome, not an error.
func (b *Brew) Detect() (string, bool) {
	path, err := exec.LookPath(b.Bin)
	if err != nil {
		return "", false
	}
	return path, true
}

// Version runs `brew --version` and returns the parsed version string.
func (b *Brew) Version(ctx context.Context) (string, error) {
	res, err := runner.Run(ctx, runner.Argv(b.Bin, "--version"))
	if err != nil {
		return "", err
	}
	return ParseVersion(res.Output), nil
}

// Install runs `brew install <name> [opts...]`.
func (b *Brew) Install(ctx context.Context, name string, opts ...string) (runner.Result, error) {
	args := append([]string{"install", name}, opts...)
	return runner.Run(ctx, runner.Argv(b.Bin, args...))
}

// InstallCask runs `brew install --cask <name>`.
func (b *Brew) InstallCask(ctx context.Context, name string) (runner.Result, error) {
	return runner.Run(ctx, runner.Argv(b.Bin, "install", "--cask", name))
}

// Uninstall runs `brew uninstall <name>`.
func (b *Brew) Uninstall(ctx context.Context, name string) (runner.Result, error) {
	return runner.Run(ctx, runner.Argv(b.Bin, "uninstall", name))
}

// Tap runs `brew tap <name>`.
func (b *Brew) Tap(ctx context.Context, name string) (runner.Result, error) {
	return runner.Run(ctx, runner.Argv(b.Bin, "tap", name))
}

// Untap runs `brew untap <name>`.
func (b *Brew) Untap(ctx context.Context, name string) (runner.Result, error) {
	return runner.Run(ctx, runner.Argv(b.Bin, "untap", name))
}

// Doctor runs `brew doctor` and returns its result. brew doctor exits
// non-zero when it finds problems; interpreting that is the caller's job.
func (b *Brew) Doctor(ctx context.Context) (runner.Result, error) {
	return runner.Run(ctx, runner.Argv(b.Bin, "doctor"))
}

// ListTaps returns the configured taps.
func (b *Brew) ListTaps(ctx context.Context) ([]string, error) {
	return b.lines(ctx, "tap")
}

// Leaves returns formulae installed on request (not as dependencies).
func (b *Brew) Leaves(ctx context.Context) ([]string, error) {
	return b.lines(ctx, "leaves")
}

// ListCasks returns installed casks.
func (b *Brew) ListCasks(ctx context.Context) ([]string, error) {
	return b.lines(ctx, "list", "--cask")
}

func (b *Brew) lines(ctx context.Context, args ...string) ([]string, error) {
	res, err := runner.Run(ctx, runner.Argv(b.Bin, args...))
	if err != nil {
		return nil, err
	}
	// A failing listing must never be mistaken for package names.
	if !res.Ok() {
		return nil, &CommandError{Args: args, ExitCode: res.ExitCode, Output: res.Output}
	}
	var out []string
	for _, ln := range strings.Split(res.Output, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		out = append(out, ln)
	}
	return out, nil
}
