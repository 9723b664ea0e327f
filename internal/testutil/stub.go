package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// StubBin writes an executable shell script named name into dir and
// returns its path. Used to fake external tools on a scratch PATH.
func StubBin(t *testing.T, dir, name, script string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	body := "#!/bin/sh\n" + script + "\n"
	if err := os.WriteFile(p, []byte(body), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return p
}
