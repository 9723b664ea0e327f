package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestScript_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("#!/bin/bash\necho install\n"))
	}))
	defer srv.Close()

	body, err := Script(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Script error: %v", err)
	}
	if body != "#!/bin/bash\necho install\n" {
		t.Fatalf("body = %q", body)
	}
}

func TestScript_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := Script(context.Background(), srv.URL)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.Status != http.StatusNotFound {
		t.Fatalf("status = %d", se.Status)
	}
}

func TestScript_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before the request

	if _, err := Script(context.Background(), srv.URL); err == nil {
		t.Fatal("expected transport error")
	}
}
