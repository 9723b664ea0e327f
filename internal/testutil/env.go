package testutil

import (
	"os"
	"testing"
)

// WithEnv overrides one environment variable and returns a restore
// func, meant for defer at the call site. An empty val unsets the key.
func WithEnv(t *testing.T, key, val string) func() {
	t.Helper()
	prev, existed := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	return func() {
		if existed {
			_ = os.Setenv(key, prev)
		} else {
			_ = os.Unsetenv(key)
		}
	}
}
