package archive

import (
	"context"
	"io"
	"log/slog"

	"patchmuch/internal/logging"
	"patchmuch/internal/notmuch"
)

// Mode selects which messages of a thread the walker returns.
type Mode int

const (
	// ModeAll returns every message reachable from the thread's top level.
	ModeAll Mode = iota

	// ModePatchesAndCover returns the top-level message(s) plus only the
	// direct replies the classifier accepts as patches. Excluded replies
	// are still traversed: a patch reached through a non-patch parent is
	// not lost.
	ModePatchesAndCover
)

// maxReplyDepth bounds recursion into reply subtrees. The index guarantees
// an acyclic reply structure, but a pathological thread from an untrusted
// archive should exhaust this limit, not the call stack.
const maxReplyDepth = 500

// Entry is one message of a walked thread together with the raw-message
// fields the index does not carry.
type Entry struct {
	Message *notmuch.Message

	// InReplyTo is the normalized In-Reply-To header read from the stored
	// file, empty when the message has none or the file is unreadable.
	InReplyTo string

	// Body is the extracted plain-text body, best effort.
	Body string
}

// Walker reconstructs reply trees from the mail index.
type Walker struct {
	store  Store
	logger *slog.Logger
}

// NewWalker returns a walker over store. A nil logger falls back to
// slog.Default.
func NewWalker(store Store, logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{store: store, logger: logger}
}

// RetrieveThread returns the messages of a thread in depth-first,
// reply-chronological order. A missing thread yields an empty result, and
// so does a gateway failure: batch callers iterate many threads and one
// broken thread must not abort the run. Both conditions are logged.
func (w *Walker) RetrieveThread(ctx context.Context, threadID string, mode Mode) []*Entry {
	logger := logging.WithOperation(w.logger, "archive.retrieve_thread")

	thread, ok, err := w.store.FindThread(ctx, threadID)
	if err != nil {
		logger.Error("thread retrieval failed", logging.Thread(threadID), logging.Err(err))
		return nil
	}
	if !ok {
		logger.Info("thread not found", logging.Thread(threadID))
		return nil
	}

	var entries []*Entry
	for _, top := range thread.TopLevel {
		coverID := top.ID
		entries = append(entries, w.entry(top))
		entries = w.walkReplies(entries, top, coverID, mode, 1)
	}
	return entries
}

// walkReplies visits parent's reply subtree depth-first. Children keep the
// order the index returned them in, which determines the human-readable
// sequence of the rendered thread.
func (w *Walker) walkReplies(entries []*Entry, parent *notmuch.Message, coverID string, mode Mode, depth int) []*Entry {
	if depth > maxReplyDepth {
		w.logger.Warn("reply depth limit reached, truncating subtree",
			logging.MessageID(parent.ID), slog.Int("depth", depth))
		return entries
	}
	for _, reply := range parent.Replies {
		e := w.entry(reply)
		if mode == ModeAll || IsPatch(reply.Header("Subject"), e.InReplyTo, coverID) {
			entries = append(entries, e)
		}
		entries = w.walkReplies(entries, reply, coverID, mode, depth+1)
	}
	return entries
}

// entry loads the raw-message fields for one index message. A stored file
// that cannot be read or parsed degrades to an entry with empty In-Reply-To
// and body rather than failing the walk.
func (w *Walker) entry(m *notmuch.Message) *Entry {
	e := &Entry{Message: m}

	rc, err := w.store.ReadRaw(m)
	if err != nil {
		w.logger.Warn("cannot open stored message", logging.MessageID(m.ID), logging.Err(err))
		return e
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		w.logger.Warn("cannot read stored message", logging.MessageID(m.ID), logging.Err(err))
		return e
	}

	ent := parseMessage(raw)
	e.InReplyTo = NormalizeID(rawHeader(ent, "In-Reply-To"))
	e.Body = ExtractBody(ent)
	return e
}
