// Package common holds helpers shared by the MCP tool packages:
// argument extraction and the instrumentation wrapper that records
// metrics and audit logs around every tool invocation.
package common
