package server

import (
	"context"
	"testing"

	"patchmuch/internal/config"
)

func TestNewServerContext_DefaultConfig(t *testing.T) {
	sc, err := NewServerContext(context.Background(), nil)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer sc.Shutdown()

	if sc.Config().Notmuch.Binary != "notmuch" {
		t.Errorf("default binary = %q, want %q", sc.Config().Notmuch.Binary, "notmuch")
	}
	if sc.Context() == nil {
		t.Error("Context() should not be nil")
	}
	if sc.IsShutdown() {
		t.Error("new context should not be shutdown")
	}
}

func TestServerContext_ShutdownIdempotent(t *testing.T) {
	sc, err := NewServerContext(context.Background(), nil)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if err := sc.Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("IsShutdown() = false after Shutdown()")
	}
	if err := sc.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}

	select {
	case <-sc.Context().Done():
	default:
		t.Error("server context should be cancelled after Shutdown()")
	}
}

func TestServerContext_OpenStore_MissingBinary(t *testing.T) {
	cfg := config.Default()
	cfg.Notmuch.Binary = "patchmuch-no-such-binary"

	sc, err := NewServerContext(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer sc.Shutdown()

	if _, err := sc.OpenStore(); err == nil {
		t.Error("OpenStore() with missing binary should fail")
	}
}

func TestServerContext_OpenStore(t *testing.T) {
	// "sh" stands in for notmuch: OpenStore only resolves the binary.
	cfg := config.Default()
	cfg.Notmuch.Binary = "sh"

	sc, err := NewServerContext(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer sc.Shutdown()

	store, err := sc.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestServerContext_IndexAvailable(t *testing.T) {
	cfg := config.Default()
	cfg.Notmuch.Binary = "sh"
	sc, err := NewServerContext(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer sc.Shutdown()

	if !sc.IndexAvailable() {
		t.Error("IndexAvailable() = false for a resolvable binary")
	}

	bad := config.Default()
	bad.Notmuch.Binary = "patchmuch-no-such-binary"
	scBad, err := NewServerContext(context.Background(), bad)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer scBad.Shutdown()

	if scBad.IndexAvailable() {
		t.Error("IndexAvailable() = true for a missing binary")
	}
}
