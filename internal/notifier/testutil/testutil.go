// Package testutil holds fakes shared by the notifier tests: deploy tools on
// a private PATH, webhook endpoints and console capture.
package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/dimasma0305/teams-notifier/internal/log"
)

// FakeService installs an executable shell script called name and makes its
// directory the only PATH entry for the rest of the test.
func FakeService(t *testing.T, name, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script services are not supported on windows")
	}
	dir := t.TempDir()
	//nolint:gosec // G306: test script must be executable
	if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatalf("Failed to write fake service: %v", err)
	}
	t.Setenv("PATH", dir)
	return dir
}

// Webhook is a recording webhook endpoint
type Webhook struct {
	*httptest.Server
	// Bodies receives every posted body
	Bodies chan []byte
}

// WebhookServer answers every request with status and records the bodies.
// Requests that are not JSON POSTs fail the test.
func WebhookServer(t *testing.T, status int) *Webhook {
	t.Helper()
	hook := &Webhook{Bodies: make(chan []byte, 16)}
	hook.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("webhook method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("webhook Content-Type = %q, want application/json", ct)
		}
		body, _ := io.ReadAll(r.Body)
		hook.Bodies <- body
		w.WriteHeader(status)
		_, _ = w.Write([]byte("1"))
	}))
	t.Cleanup(hook.Close)
	return hook
}

// NetworkFailureServer creates a test server that simulates network failures
func NetworkFailureServer(t *testing.T, failureType string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		switch failureType {
		case "connection_reset":
			// Close connection immediately
			hj, ok := w.(http.Hijacker)
			if ok {
				conn, _, _ := hj.Hijack()
				_ = conn.Close()
			}
		case "rate_limit":
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error": "rate limit exceeded"}`))
		case "internal_error":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error": "internal server error"}`))
		default:
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("1"))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ClosedServerURL returns the URL of a server that no longer accepts
// connections.
func ClosedServerURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

// CaptureLog redirects the logger into buffers with colors disabled
func CaptureLog(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	log.SetOutput(&out, &errOut)
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		log.SetOutput(nil, nil)
		log.SetDebugMode(false)
		color.NoColor = noColor
	})
	return &out, &errOut
}
