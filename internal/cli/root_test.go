package cli

import (
	"errors"
	"fmt"
	"testing"

	"brewctl/internal/bootstrap"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"diagnostic", &bootstrap.DiagnosticError{ExitCode: 2}, bootstrap.ExitDiagnostic},
		{"step", &bootstrap.StepError{Step: "fetch"}, bootstrap.ExitInstall},
		{"wrapped diagnostic", fmt.Errorf("bootstrap: %w", &bootstrap.DiagnosticError{ExitCode: 1}), bootstrap.ExitDiagnostic},
		{"other", errors.New("boom"), 1},
	}
	for _, c := range cases {
		if got := exitCode(c.err); got != c.want {
			t.Fatalf("%s: exitCode = %d, want %d", c.name, got, c.want)
		}
	}
}
