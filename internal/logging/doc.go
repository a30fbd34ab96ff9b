// Package logging provides structured logging utilities for the patchmuch application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - PII sanitization (index-query anonymization)
//   - Consistent attribute naming across the codebase
//   - Logger adapter interface for flexibility
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "archive.find_series")
//	logger.Info("search completed",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("running search",
//	    logging.QueryHash(filter))
//
// # Security Considerations
//
// Index queries routinely carry sender addresses and subject fragments, so
// they are hashed before logging to prevent PII leakage while still
// allowing correlation of entries belonging to one query.
package logging
