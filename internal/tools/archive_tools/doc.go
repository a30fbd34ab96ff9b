// Package archive_tools exposes the mail archive as MCP tools.
//
// Two tools are registered:
//
//   - notmuch_find_series: search the index for patch series, returning
//     thread IDs and subjects for follow-up retrieval
//   - notmuch_show_thread: render threads as plain text, optionally
//     restricted to the cover letter and the patches themselves
//
// Each invocation opens its own read-only index handle and closes it
// before returning. Handlers report failures as tool error results, not
// protocol errors, so agents can react to them.
package archive_tools
