// Package runner is the single subprocess-invocation abstraction used for
// every external command. A Source is either an argv or an inline shell
// script body; Run returns the captured exit status plus combined output,
// so callers always see the status and decide explicitly what to do with it.
package runner

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	xansi "github.com/charmbracelet/x/ansi"
)

// shell executes inline script sources, matching the upstream
// `/bin/bash -c "$(curl ...)"` invocation.
const shell = "/bin/bash"

// waitDelay bounds how long we wait for a cancelled child to exit
// before it is killed forcibly.
const waitDelay = 5 * time.Second

// Source describes one external invocation.
type Source struct {
	Name   string   // executable name or path
	Args   []string // arguments
	Script string   // inline script body; when set, runs via the shell
	Dir    string   // working directory (optional)
	Env    []string // extra env entries appended to os.Environ (optional)
}

// Argv builds a direct-exec source.
func Argv(name string, args ...string) Source {
	return Source{Name: name, Args: args}
}

// ShellScript builds an inline-script source.
func ShellScript(body string) Source {
	return Source{Script: body}
}

// Result is the captured outcome of a finished subprocess.
type Result struct {
	ExitCode int
	Output   string // combined stdout+stderr, ANSI stripped
}

// Ok reports whether the subprocess exited zero.
func (r Result) Ok() bool { return r.ExitCode == 0 }

// Run executes src and waits for it. A non-zero exit is a valid Result,
// not an error; err is reserved for failures to run at all (executable
// not found, context cancelled or expired).
func Run(ctx context.Context, src Source) (Result, error) {
	var cmd *exec.Cmd
	if src.Script != "" {
		cmd = exec.CommandContext(ctx, shell, "-c", src.Script)
	} else {
		cmd = exec.CommandContext(ctx, src.Name, src.Args...)
	}
	if src.Dir != "" {
		cmd.Dir = src.Dir
	}
	// Avoid opening pagers or interactive prompts in child tools.
	cmd.Env = append(append(os.Environ(), "NO_COLOR=1"), src.Env...)
	cmd.WaitDelay = waitDelay

	out, err := cmd.CombinedOutput()
	res := Result{Output: xansi.Strip(string(out))}
	if cerr := ctx.Err(); cerr != nil {
		return res, cerr
	}
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			res.ExitCode = ee.ExitCode()
			return res, nil
		}
		return res, err
	}
	return res, nil
}

// Lines splits the captured output into trimmed non-empty lines,
// convenient for indented re-printing.
func (r Result) Lines() []string {
	s := strings.TrimSpace(r.Output)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "\n")
	out := make([]string, 0, len(parts))
	for _, ln := range parts {
		out = append(out, strings.TrimRight(ln, " \t\r"))
	}
	return out
}
