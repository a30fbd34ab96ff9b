package server

import (
	"context"
	"os/exec"
	"sync"

	"patchmuch/internal/archive"
	"patchmuch/internal/config"
	"patchmuch/internal/instrumentation"
	"patchmuch/internal/notmuch"
)

// ServerContext holds the shared state for the MCP server: the mail index
// configuration used to open request-scoped stores, the instrumentation
// handles, and the shutdown state.
type ServerContext struct {
	ctx         context.Context
	cancel      context.CancelFunc
	cfg         *config.Config
	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger
	mu          sync.RWMutex
	shutdown    bool
}

// NewServerContext creates a new server context. The configuration is not
// validated here; the notmuch binary is only resolved when a store is opened.
func NewServerContext(ctx context.Context, cfg *config.Config) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	if cfg == nil {
		cfg = config.Default()
	}

	return &ServerContext{
		ctx:    shutdownCtx,
		cancel: cancel,
		cfg:    cfg,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Config returns the loaded configuration.
func (sc *ServerContext) Config() *config.Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.cfg
}

// OpenStore opens a store backed by the configured mail index. Each tool
// invocation opens its own store and closes it when done, so a wedged
// notmuch process never outlives the request that started it.
func (sc *ServerContext) OpenStore() (archive.Store, error) {
	sc.mu.RLock()
	opts := notmuch.Options{
		Binary:     sc.cfg.Notmuch.Binary,
		ConfigPath: sc.cfg.Notmuch.ConfigPath,
	}
	sc.mu.RUnlock()

	return notmuch.Open(opts)
}

// SetInstrumentation attaches the metrics recorder and audit logger. Both
// may be nil; tool handlers treat missing instrumentation as a no-op.
func (sc *ServerContext) SetInstrumentation(metrics *instrumentation.Metrics, auditLogger *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
	sc.auditLogger = auditLogger
}

// Metrics returns the metrics recorder, or nil when none is configured.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// AuditLogger returns the audit logger, or nil when none is configured.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// IndexAvailable reports whether the configured notmuch binary can be
// resolved. Used by readiness probes.
func (sc *ServerContext) IndexAvailable() bool {
	sc.mu.RLock()
	binary := sc.cfg.Notmuch.Binary
	sc.mu.RUnlock()

	if binary == "" {
		binary = "notmuch"
	}
	_, err := exec.LookPath(binary)
	return err == nil
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
