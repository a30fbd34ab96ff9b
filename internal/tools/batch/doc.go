// Package batch supports tools that accept one thread ID or many. It
// parses string-or-array arguments, runs an operation per ID, and
// aggregates per-ID outcomes so one bad thread never fails the rest.
package batch
