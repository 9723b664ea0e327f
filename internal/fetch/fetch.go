// Package fetch retrieves the remote installer script over HTTPS.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Installer scripts are small; reads are capped at 4 MiB.
const maxScriptSize = 4 << 20

// StatusError reports a non-2xx response for the installer URL.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
}

// Script downloads the script at url and returns its body.
// Transport errors and non-2xx statuses are both fetch failures;
// the latter carries a *StatusError.
func Script(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: url, Status: resp.StatusCode}
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxScriptSize))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
