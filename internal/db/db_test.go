package db

import (
	"context"
	"testing"
	"time"

	"github.com/rce-oj/dataserver/config"
)

func TestOpenRequiresURI(t *testing.T) {
	if _, err := Open(context.Background(), config.DatabaseConfig{URI: "  "}); err == nil {
		t.Fatalf("expected error for empty uri")
	}
}

func TestOpenRejectsMalformedURI(t *testing.T) {
	if _, err := Open(context.Background(), config.DatabaseConfig{URI: "postgres://localhost"}); err == nil {
		t.Fatalf("expected error for non-mongodb scheme")
	}
}

func TestOpenIsLazy(t *testing.T) {
	client, err := Open(context.Background(), config.DatabaseConfig{
		URI:         "mongodb://127.0.0.1:1",
		Name:        "rce",
		MaxPoolSize: 1,
		Timeout:     50 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() {
		_ = Close(client)
	}()

	problems, submissions := Collections(client, "rce")
	if problems.Name() != ProblemsCollection || submissions.Name() != SubmissionsCollection {
		t.Fatalf("unexpected collections: %s, %s", problems.Name(), submissions.Name())
	}

	if err := Ping(context.Background(), client); err == nil {
		t.Fatalf("expected ping against a closed port to fail")
	}
}

func TestPingNilClient(t *testing.T) {
	if err := Ping(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil client")
	}
}
