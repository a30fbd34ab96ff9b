package archive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"patchmuch/internal/notmuch"
)

// fakeStore is an in-memory Store for traversal and search tests. It counts
// gateway calls so tests can assert that validation happens before I/O.
type fakeStore struct {
	threads  map[string]*notmuch.Thread
	messages []*notmuch.Message
	raw      map[string]string // message id -> raw RFC 5322 bytes

	findErr   error
	searchErr error

	findCalls   int
	searchCalls int
	closed      bool
}

func (s *fakeStore) FindThread(_ context.Context, threadID string) (*notmuch.Thread, bool, error) {
	s.findCalls++
	if s.findErr != nil {
		return nil, false, s.findErr
	}
	thread, ok := s.threads[threadID]
	return thread, ok, nil
}

func (s *fakeStore) SearchMessages(_ context.Context, _ string) ([]*notmuch.Message, error) {
	s.searchCalls++
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.messages, nil
}

func (s *fakeStore) ReadRaw(m *notmuch.Message) (io.ReadCloser, error) {
	raw, ok := s.raw[m.ID]
	if !ok {
		return nil, fmt.Errorf("no stored file for %s", m.ID)
	}
	return io.NopCloser(strings.NewReader(raw)), nil
}

func (s *fakeStore) Close() error {
	s.closed = true
	return nil
}

// rawMail builds a minimal plain-text message file.
func rawMail(inReplyTo, body string) string {
	var b strings.Builder
	if inReplyTo != "" {
		fmt.Fprintf(&b, "In-Reply-To: <%s>\r\n", inReplyTo)
	}
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.String()
}

// indexMessage builds an index message with a subject header and reply
// children, mirroring what the gateway decodes from notmuch show output.
func indexMessage(id, threadID, subject string, replies ...*notmuch.Message) *notmuch.Message {
	return &notmuch.Message{
		ID:       id,
		ThreadID: threadID,
		Headers:  map[string]string{"Subject": subject},
		Replies:  replies,
	}
}
