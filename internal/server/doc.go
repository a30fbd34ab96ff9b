// Package server provides the MCP server context, the HTTP transport,
// and the operational endpoints for the patchmuch application.
//
// # Key Components
//
// ServerContext carries the mail index configuration and the shutdown
// state. Tool handlers use it to open a request-scoped store per
// invocation; nothing index-related is cached between requests.
//
// HTTPServer mounts the streamable HTTP MCP transport on /mcp and the
// health endpoints next to it. The stdio transport does not go through
// this package.
//
// HealthChecker serves Kubernetes-style probes:
//   - /healthz: liveness, process is running
//   - /readyz: readiness, includes a check that the notmuch binary resolves
//   - /healthz/detailed: uptime and overall status
//
// MetricsServer serves Prometheus metrics on a dedicated port so that
// operational metrics never share a listener with tool traffic.
package server
