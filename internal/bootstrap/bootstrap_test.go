package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"brewctl/internal/brew"
	"brewctl/internal/fetch"
	tu "brewctl/internal/testutil"
)

// stubBrewScript logs every invocation and honors TESTBREW_DOCTOR_EXIT
// for the doctor subcommand.
const stubBrewScript = `echo "$@" >> "$TESTBREW_LOG"
if [ "$1" = doctor ]; then exit "${TESTBREW_DOCTOR_EXIT:-0}"; fi
exit 0`

// env wires a scratch bin dir onto PATH and points the stub logs at a
// scratch file. Returns the bin dir and the log path.
func env(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	log := filepath.Join(dir, "invocations.log")
	t.Cleanup(tu.WithEnv(t, "PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH")))
	t.Cleanup(tu.WithEnv(t, "TESTBREW_LOG", log))
	return dir, log
}

func invocations(t *testing.T, log string) []string {
	t.Helper()
	b, err := os.ReadFile(log)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("read log: %v", err)
	}
	var out []string
	for _, ln := range strings.Split(strings.TrimSpace(string(b)), "\n") {
		if ln != "" {
			out = append(out, ln)
		}
	}
	return out
}

func fetchFatal(t *testing.T) func(context.Context, string) (string, error) {
	return func(context.Context, string) (string, error) {
		t.Fatal("fetch must not be called when brew is present")
		return "", nil
	}
}

// Scenario A: brew pre-installed. The package installs and the
// diagnostic never runs.
func TestRun_ToolPresent_SkipsDiagnostic(t *testing.T) {
	dir, log := env(t)
	tu.StubBin(t, dir, "testbrew", stubBrewScript)

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		InstallerURL: "http://unused.invalid",
		Package:      "rcmdnk/file/brew-file",
		Brew:         &brew.Brew{Bin: "testbrew"},
		Fetch:        fetchFatal(t),
		Out:          &out,
	})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	inv := invocations(t, log)
	if len(inv) != 1 || inv[0] != "install rcmdnk/file/brew-file" {
		t.Fatalf("invocations = %v", inv)
	}
	if ExitCode(err) != ExitOK {
		t.Fatalf("exit code = %d", ExitCode(err))
	}
}

// Scenario B: brew absent, installer succeeds, doctor passes.
func TestRun_FreshInstall_RunsDiagnosticOnce(t *testing.T) {
	dir, log := env(t)

	// The fetched installer writes the brew stub onto the scratch PATH,
	// standing in for the real Homebrew install script.
	installer := fmt.Sprintf(`cat > "%[1]s" <<'STUB'
#!/bin/sh
%[2]s
STUB
chmod +x "%[1]s"`, filepath.Join(dir, "testbrew"), stubBrewScript)

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		InstallerURL: "http://example.invalid/install.sh",
		Package:      "rcmdnk/file/brew-file",
		Brew:         &brew.Brew{Bin: "testbrew"},
		Fetch: func(context.Context, string) (string, error) {
			return installer, nil
		},
		Out: &out,
	})
	if err != nil {
		t.Fatalf("Run error: %v\noutput:\n%s", err, out.String())
	}
	inv := invocations(t, log)
	if len(inv) != 2 || inv[0] != "install rcmdnk/file/brew-file" || inv[1] != "doctor" {
		t.Fatalf("invocations = %v", inv)
	}
}

// Scenario C: fresh install but the diagnostic reports problems.
func TestRun_DiagnosticFailure_AdvisoryAndExit1(t *testing.T) {
	dir, log := env(t)
	defer tu.WithEnv(t, "TESTBREW_DOCTOR_EXIT", "2")()

	installer := fmt.Sprintf(`cat > "%[1]s" <<'STUB'
#!/bin/sh
%[2]s
STUB
chmod +x "%[1]s"`, filepath.Join(dir, "testbrew"), stubBrewScript)

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		InstallerURL: "http://example.invalid/install.sh",
		Package:      "rcmdnk/file/brew-file",
		Brew:         &brew.Brew{Bin: "testbrew"},
		Fetch: func(context.Context, string) (string, error) {
			return installer, nil
		},
		Out: &out,
	})
	var de *DiagnosticError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want *DiagnosticError", err)
	}
	if de.ExitCode != 2 {
		t.Fatalf("doctor exit = %d", de.ExitCode)
	}
	if !strings.Contains(out.String(), Advisory) {
		t.Fatalf("advisory missing from output:\n%s", out.String())
	}
	if ExitCode(err) != ExitDiagnostic {
		t.Fatalf("exit code = %d", ExitCode(err))
	}
	if n := strings.Count(strings.Join(invocations(t, log), "\n"), "doctor"); n != 1 {
		t.Fatalf("doctor ran %d times", n)
	}
}

// Scenario D (legacy): the installer fails but execution still proceeds
// to the package-install step, mirroring the original script.
func TestRun_Legacy_InstallerFailureIgnored(t *testing.T) {
	env(t)

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		InstallerURL: "http://example.invalid/install.sh",
		Package:      "rcmdnk/file/brew-file",
		Mode:         Legacy,
		Brew:         &brew.Brew{Bin: "testbrew"},
		Fetch: func(context.Context, string) (string, error) {
			return "exit 1", nil
		},
		Out: &out,
	})
	// brew never appeared, so the package step was attempted (and
	// ignored) and the diagnostic failed: exit code 1, like the shell.
	if !strings.Contains(out.String(), "Installing rcmdnk/file/brew-file") {
		t.Fatalf("package step skipped:\n%s", out.String())
	}
	var de *DiagnosticError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want *DiagnosticError", err)
	}
	if ExitCode(err) != ExitDiagnostic {
		t.Fatalf("exit code = %d", ExitCode(err))
	}
}

// Strict mode surfaces the same installer failure instead.
func TestRun_Strict_InstallerFailureAborts(t *testing.T) {
	env(t)

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		InstallerURL: "http://example.invalid/install.sh",
		Package:      "rcmdnk/file/brew-file",
		Brew:         &brew.Brew{Bin: "testbrew"},
		Fetch: func(context.Context, string) (string, error) {
			return "exit 1", nil
		},
		Out: &out,
	})
	var se *StepError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StepError", err)
	}
	if se.Step != "install-brew" {
		t.Fatalf("step = %q", se.Step)
	}
	if strings.Contains(out.String(), "Installing") {
		t.Fatalf("package step must not run in strict mode:\n%s", out.String())
	}
	if code := ExitCode(err); code != ExitInstall {
		t.Fatalf("exit code = %d", code)
	}
}

// Strict mode maps an unreachable installer URL to a fetch error.
func TestRun_Strict_FetchFailureAborts(t *testing.T) {
	env(t)

	err := Run(context.Background(), Options{
		InstallerURL: "http://example.invalid/install.sh",
		Package:      "rcmdnk/file/brew-file",
		Brew:         &brew.Brew{Bin: "testbrew"},
		Fetch: func(_ context.Context, url string) (string, error) {
			return "", &fetch.StatusError{URL: url, Status: 503}
		},
		Out: new(bytes.Buffer),
	})
	var se *StepError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StepError", err)
	}
	if se.Step != "fetch" {
		t.Fatalf("step = %q", se.Step)
	}
	var fe *fetch.StatusError
	if !errors.As(err, &fe) || fe.Status != 503 {
		t.Fatalf("cause = %v", err)
	}
}
