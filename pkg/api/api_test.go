package api

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spendwise/cli/pkg/client"
	"github.com/spendwise/cli/pkg/config"
)

// startTestServer points the shared client at an httptest server for
// the duration of one test.
func startTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()

	if err := config.Init(filepath.Join(t.TempDir(), "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client.ClearSession()
	client.SetBaseURL(server.URL)

	return server
}

func jsonResponse(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("Bad decimal literal %q: %v", s, err)
	}
	return d
}
