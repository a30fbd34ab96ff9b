package archive

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patchmuch/internal/notmuch"
)

func TestRenderSingleMessage(t *testing.T) {
	entry := &Entry{
		Message: &notmuch.Message{
			ID: "<patch1@x>",
			Headers: map[string]string{
				"From":    "Jane Hacker <jane@example.com>",
				"To":      "netdev@example.com",
				"Cc":      "maintainer@example.com",
				"Subject": "[PATCH 1/2] foo",
				"Date":    "Wed, 22 May 2024 16:14:20 +0000",
			},
			Tags: []string{"inbox", "patch"},
		},
		InReplyTo: "cover@x",
		Body:      "hello\nworld",
	}

	want := strings.Join([]string{
		"Message-ID: patch1@x",
		"In-Reply-To: cover@x",
		"From: Jane Hacker <jane@example.com>",
		"To: netdev@example.com",
		"Cc: maintainer@example.com",
		"Subject: [PATCH 1/2] foo",
		"Date: Wed, 22 May 2024 16:14:20 +0000",
		"Tags: inbox, patch",
		"Body:",
		"hello\nworld",
		strings.Repeat("-", 50),
	}, "\n")

	assert.Equal(t, want, Render([]*Entry{entry}))
}

func TestRenderMissingHeaders(t *testing.T) {
	entry := &Entry{Message: &notmuch.Message{ID: "bare@x"}}

	got := Render([]*Entry{entry})
	assert.Contains(t, got, "Message-ID: bare@x")
	assert.Contains(t, got, "In-Reply-To: \n")
	assert.Contains(t, got, "Subject: \n")
	assert.Contains(t, got, "Tags: \n")
}

func TestRenderJoinsBlocksInOrder(t *testing.T) {
	entries := []*Entry{
		{Message: &notmuch.Message{ID: "first@x"}, Body: "one"},
		{Message: &notmuch.Message{ID: "second@x"}, Body: "two"},
	}

	got := Render(entries)
	first := strings.Index(got, "first@x")
	second := strings.Index(got, "second@x")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
	assert.Equal(t, 2, strings.Count(got, strings.Repeat("-", 50)))
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", Render(nil))
}

// End to end over the fake store: walking a thread and rendering it keeps
// the body byte-for-byte, including internal newlines.
func TestWalkAndRenderRoundTrip(t *testing.T) {
	const thread = "t-single"
	msg := indexMessage("only@x", thread, "[PATCH] single")
	store := &fakeStore{
		threads: map[string]*notmuch.Thread{
			thread: {ID: thread, TopLevel: []*notmuch.Message{msg}},
		},
		raw: map[string]string{
			"only@x": rawMail("", "hello\nworld"),
		},
	}

	entries := NewWalker(store, testLogger()).RetrieveThread(context.Background(), thread, ModeAll)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello\nworld", entries[0].Body)

	got := Render(entries)
	assert.Contains(t, got, "Body:\nhello\nworld\n")
}
