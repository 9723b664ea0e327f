// Package bootstrap implements the Homebrew bootstrap sequence: detect
// brew on PATH, install it from the remote installer script when absent,
// install the brew-file formula, and gate a fresh installation behind
// `brew doctor`.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"brewctl/internal/brew"
	"brewctl/internal/fetch"
	"brewctl/internal/runner"
	"brewctl/internal/system"
)

// Mode selects the error policy for the fetch and install steps.
type Mode int

const (
	// Strict surfaces every subprocess failure and aborts.
	Strict Mode = iota
	// Legacy reproduces the original install script: fetch/install
	// failures are logged and ignored, only the post-install
	// diagnostic is fatal.
	Legacy
)

func (m Mode) String() string {
	if m == Legacy {
		return "legacy"
	}
	return "strict"
}

// Advisory is printed when the post-install diagnostic fails,
// matching the original script's output.
const Advisory = "Check brew environment!"

// Process exit codes. Diagnostic failure keeps the original contract of
// exit 1; strict-mode fetch/install failures are distinct from both.
const (
	ExitOK         = 0
	ExitDiagnostic = 1
	ExitInstall    = 2
)

// StepError reports a failed fetch or install step.
type StepError struct {
	Step   string // "fetch", "install-brew", "install-package"
	Output string
	Err    error // underlying cause, nil when only the exit code failed
}

func (e *StepError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("%s: command exited non-zero", e.Step)
}

func (e *StepError) Unwrap() error { return e.Err }

// DiagnosticError reports that `brew doctor` found problems after a
// fresh installation.
type DiagnosticError struct {
	ExitCode int
	Output   string
}

func (e *DiagnosticError) Error() string {
	return fmt.Sprintf("brew doctor exited %d", e.ExitCode)
}

// Options configures one bootstrap run.
type Options struct {
	InstallerURL string
	Package      string
	Mode         Mode

	Brew  *brew.Brew
	Fetch func(ctx context.Context, url string) (string, error)
	Out   io.Writer
}

// Run executes the bootstrap sequence. It returns nil on success, a
// *DiagnosticError when the post-install diagnostic fails, and a
// *StepError for strict-mode fetch/install failures. The "was brew
// freshly installed" flag is the only state and stays local to this
// function.
func Run(ctx context.Context, opts Options) error {
	b := opts.Brew
	if b == nil {
		b = brew.New()
	}
	doFetch := opts.Fetch
	if doFetch == nil {
		doFetch = fetch.Script
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	preinstalled := true
	if path, ok := b.Detect(); ok {
		fmt.Fprintf(out, "brew found at %s\n", path)
	} else {
		preinstalled = false
		fmt.Fprintln(out, "Homebrew is not installed! Install now...")
		if err := installBrew(ctx, doFetch, opts, out); err != nil {
			if opts.Mode == Legacy {
				system.Logger.Warn("ignoring bootstrap failure (legacy mode)", "err", err)
			} else {
				return err
			}
		}
	}

	fmt.Fprintf(out, "Installing %s...\n", opts.Package)
	res, err := b.Install(ctx, opts.Package)
	if err != nil || !res.Ok() {
		serr := &StepError{Step: "install-package", Output: res.Output, Err: err}
		if opts.Mode == Legacy {
			system.Logger.Warn("ignoring package install failure (legacy mode)", "err", serr)
		} else {
			return serr
		}
	}

	// Diagnostic runs iff brew was freshly installed in this run.
	if preinstalled {
		return nil
	}
	fmt.Fprintln(out, "Running brew doctor...")
	dres, derr := b.Doctor(ctx)
	if derr != nil {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		// brew itself is missing or unrunnable; in shell terms the
		// diagnostic exited non-zero.
		dres.ExitCode = 127
	}
	if dres.ExitCode != 0 {
		fmt.Fprintln(out, Advisory)
		return &DiagnosticError{ExitCode: dres.ExitCode, Output: dres.Output}
	}
	return nil
}

// installBrew fetches the remote installer and executes it through the
// shell, the way the original `/bin/bash -c "$(curl -fsSL ...)"` does.
func installBrew(ctx context.Context, doFetch func(context.Context, string) (string, error), opts Options, out io.Writer) error {
	script, err := doFetch(ctx, opts.InstallerURL)
	if err != nil {
		return &StepError{Step: "fetch", Err: err}
	}
	src := runner.ShellScript(script)
	src.Env = []string{"NONINTERACTIVE=1"}
	res, err := runner.Run(ctx, src)
	if err != nil {
		return &StepError{Step: "install-brew", Output: res.Output, Err: err}
	}
	if !res.Ok() {
		return &StepError{Step: "install-brew", Output: res.Output}
	}
	fmt.Fprintln(out, "Homebrew installed.")
	return nil
}

// ExitCode maps a Run error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var de *DiagnosticError
	if errors.As(err, &de) {
		return ExitDiagnostic
	}
	return ExitInstall
}
