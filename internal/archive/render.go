package archive

import "strings"

const blockSeparatorWidth = 50

// Render formats walked thread entries into one textual record per message,
// newline-joined in input order. Rendering is a pure formatting step: no
// reordering, deduplication, or truncation happens here.
func Render(entries []*Entry) string {
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, renderEntry(e))
	}
	return strings.Join(blocks, "\n")
}

func renderEntry(e *Entry) string {
	m := e.Message
	lines := []string{
		"Message-ID: " + NormalizeID(m.ID),
		"In-Reply-To: " + e.InReplyTo,
		"From: " + m.Header("From"),
		"To: " + m.Header("To"),
		"Cc: " + m.Header("Cc"),
		"Subject: " + m.Header("Subject"),
		"Date: " + m.Header("Date"),
		"Tags: " + strings.Join(m.Tags, ", "),
		"Body:",
		e.Body,
		strings.Repeat("-", blockSeparatorWidth),
	}
	return strings.Join(lines, "\n")
}
