package instrumentation

import "strings"

// Cardinality management helpers for metrics.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// Always use these helpers when recording metrics derived from user input.

// QueryKind classifies an index query string into a small set of label
// values. Queries are free-form and unbounded, so the raw string must never
// become a metric label; the leading search prefix is usually enough to see
// what callers ask for.
//
// Example:
//
//	QueryKind("from:jane@example.com")   // "from"
//	QueryKind("tag:unread and tag:new")  // "tag"
//	QueryKind("thread:0000001f00")       // "thread"
//	QueryKind("refcount leak")           // "freeform"
//	QueryKind("")                        // "unknown"
func QueryKind(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return "unknown"
	}

	token := query
	if i := strings.IndexAny(token, " \t"); i >= 0 {
		token = token[:i]
	}
	if i := strings.Index(token, ":"); i > 0 {
		prefix := strings.ToLower(token[:i])
		switch prefix {
		case "from", "to", "subject", "tag", "thread", "id", "date", "path", "folder", "mimetype", "attachment":
			return prefix
		}
	}
	return "freeform"
}

// Common operation types for mail index metrics.
// Status constants are defined in config.go.
const (
	OperationSearch = "search"
	OperationShow   = "show"
	OperationRead   = "read"
)
