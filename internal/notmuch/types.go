package notmuch

import (
	"encoding/json"
	"net/textproto"
)

// ThreadSummary is one row of `notmuch search --output=summary --format=json`.
type ThreadSummary struct {
	ThreadID  string   `json:"thread"`
	Timestamp int64    `json:"timestamp"`
	Authors   string   `json:"authors"`
	Subject   string   `json:"subject"`
	Matched   int      `json:"matched"`
	Total     int      `json:"total"`
	Tags      []string `json:"tags"`
}

// Message is a single indexed message together with its direct-reply
// subtree. A message read from the index is immutable; callers must not
// retain it beyond the operation that produced it.
type Message struct {
	// ID is the message-id as stored by the index, without angle brackets.
	ID string

	// ThreadID is the id of the thread this message belongs to. Every
	// message belongs to exactly one thread for the duration of a query.
	ThreadID string

	// ThreadSubject is the subject the index reports for the enclosing
	// thread. Empty when the message was not produced by a thread-scoped
	// search.
	ThreadSubject string

	// Filename is the path of the message in the on-disk mail store.
	Filename string

	Timestamp int64

	// Tags in index order.
	Tags []string

	// Headers holds the header values the index carries for this message
	// (Subject, From, To, Cc, Date), keyed by canonical MIME header name.
	Headers map[string]string

	// Replies are the direct replies in index (chronological) order.
	Replies []*Message
}

// Header returns the index-provided header value for name, or the empty
// string if the index does not carry it. Headers the index omits (such as
// In-Reply-To) must be read from the raw message instead.
func (m *Message) Header(name string) string {
	if m.Headers == nil {
		return ""
	}
	return m.Headers[textproto.CanonicalMIMEHeaderKey(name)]
}

// Thread is the reconstructed reply forest for a single thread id.
type Thread struct {
	ID       string
	Subject  string
	Tags     []string
	TopLevel []*Message
}

// rawMessage mirrors the message object emitted by `notmuch show`.
// Filename switched from a string to an array of strings in notmuch 0.29;
// both forms are accepted.
type rawMessage struct {
	ID        string            `json:"id"`
	Match     bool              `json:"match"`
	Excluded  bool              `json:"excluded"`
	Filename  multiFilename     `json:"filename"`
	Timestamp int64             `json:"timestamp"`
	Tags      []string          `json:"tags"`
	Headers   map[string]string `json:"headers"`
}

type multiFilename []string

func (f *multiFilename) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = multiFilename{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*f = multiFilename(list)
	return nil
}

func (f multiFilename) first() string {
	if len(f) == 0 {
		return ""
	}
	return f[0]
}
