package archive

import (
	"context"
	"io"

	"patchmuch/internal/notmuch"
)

// Store is the read-only slice of the mail index this package depends on.
// *notmuch.DB implements it; tests substitute an in-memory fake.
//
// A Store is request-scoped: the caller opens it for one logical operation
// and closes it on every exit path.
type Store interface {
	// FindThread resolves a thread id to its reply forest. The boolean
	// reports whether the thread exists; a miss is not an error.
	FindThread(ctx context.Context, threadID string) (*notmuch.Thread, bool, error)

	// SearchMessages returns all messages matching a free-form index
	// query. The query grammar is owned by the index, not by callers.
	SearchMessages(ctx context.Context, query string) ([]*notmuch.Message, error)

	// ReadRaw opens the stored file of a message.
	ReadRaw(m *notmuch.Message) (io.ReadCloser, error)

	Close() error
}
