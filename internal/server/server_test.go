package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rce-oj/dataserver/config"
	"github.com/rce-oj/dataserver/types"
	"github.com/rs/zerolog"
)

// unreachableConfig points at a closed port so every store call fails fast.
func unreachableConfig() config.Config {
	return config.Config{
		ServerPort: 18081,
		CORS:       config.CORSConfig{AllowedOrigins: []string{"https://app.example"}},
		Database: config.DatabaseConfig{
			URI:         "mongodb://127.0.0.1:1/?directConnection=true",
			Name:        "rce",
			MaxPoolSize: 2,
			Timeout:     100 * time.Millisecond,
		},
		ProblemKey: types.ProblemKeyID,
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := New(context.Background(), unreachableConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})
	return srv
}

func TestNewRejectsMissingURI(t *testing.T) {
	cfg := unreachableConfig()
	cfg.Database.URI = ""
	if _, err := New(context.Background(), cfg, zerolog.Nop()); err == nil {
		t.Fatalf("expected error without a mongodb uri")
	}
}

func TestRequestTimeoutFitsWriteDeadline(t *testing.T) {
	srv := newTestServer(t)
	if requestTimeout >= srv.httpServer.WriteTimeout {
		t.Fatalf("request timeout %s must be shorter than write timeout %s", requestTimeout, srv.httpServer.WriteTimeout)
	}
}

func TestHealthzReportsUnreachableStore(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestGraphQLDegradesWithoutStore(t *testing.T) {
	srv := newTestServer(t)

	body, _ := json.Marshal(map[string]string{
		"query": `{ problemCount submissionCount(user: "alice") problems(page: 1) { title } }`,
	})
	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	var resp struct {
		Data struct {
			ProblemCount    int               `json:"problemCount"`
			SubmissionCount int               `json:"submissionCount"`
			Problems        []json.RawMessage `json:"problems"`
		} `json:"data"`
		Errors []any `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", resp.Errors)
	}
	if resp.Data.ProblemCount != -1 || resp.Data.SubmissionCount != -1 {
		t.Fatalf("expected -1 counts, got %d and %d", resp.Data.ProblemCount, resp.Data.SubmissionCount)
	}
	if resp.Data.Problems == nil || len(resp.Data.Problems) != 0 {
		t.Fatalf("expected empty problem list, got %v", resp.Data.Problems)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/graphql", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Fatalf("unexpected allow-origin header: %q", got)
	}
}
