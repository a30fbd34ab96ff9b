package notmuch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// DefaultBinary is the notmuch executable used when none is configured.
const DefaultBinary = "notmuch"

// Options configures a read-only database handle.
type Options struct {
	// Binary is the notmuch executable to run (default: "notmuch").
	Binary string

	// ConfigPath is passed to notmuch via --config. Empty means notmuch
	// resolves its own configuration (NOTMUCH_CONFIG or ~/.notmuch-config).
	ConfigPath string
}

// DB is a read-only handle on the notmuch index. It is request-scoped:
// open it at the start of an operation and release it with Close on every
// exit path. Concurrent readers are safe because notmuch serves read-only
// queries to multiple processes.
type DB struct {
	binary     string
	configPath string
	closed     bool
}

// Open creates a read-only database handle. The index itself is only
// touched when a query method runs.
func Open(opts Options) (*DB, error) {
	binary := opts.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	if _, err := exec.LookPath(binary); err != nil {
		return nil, fmt.Errorf("notmuch binary not found: %w", err)
	}
	return &DB{
		binary:     binary,
		configPath: opts.ConfigPath,
	}, nil
}

// Close releases the handle. Further queries fail.
func (db *DB) Close() error {
	db.closed = true
	return nil
}

// run executes a notmuch subcommand and returns its stdout.
func (db *DB) run(ctx context.Context, args ...string) ([]byte, error) {
	if db.closed {
		return nil, fmt.Errorf("database handle is closed")
	}

	argv := make([]string, 0, len(args)+2)
	if db.configPath != "" {
		argv = append(argv, "--config="+db.configPath)
	}
	argv = append(argv, args...)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, db.binary, argv...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("notmuch %s: %s: %w", args[0], msg, err)
		}
		return nil, fmt.Errorf("notmuch %s: %w", args[0], err)
	}
	return stdout.Bytes(), nil
}

// Search returns the thread summaries matching query, newest first.
func (db *DB) Search(ctx context.Context, query string) ([]ThreadSummary, error) {
	out, err := db.run(ctx, "search", "--format=json", "--output=summary", "--", query)
	if err != nil {
		return nil, err
	}
	return parseSummaries(out)
}

// FindThread resolves a thread id to its reconstructed reply forest.
// The second return value reports whether the thread exists; a missing
// thread is not an error.
func (db *DB) FindThread(ctx context.Context, threadID string) (*Thread, bool, error) {
	summaries, err := db.Search(ctx, "thread:"+threadID)
	if err != nil {
		return nil, false, err
	}
	if len(summaries) == 0 {
		return nil, false, nil
	}
	summary := summaries[0]

	out, err := db.run(ctx, "show", "--format=json", "--body=false", "--", "thread:"+threadID)
	if err != nil {
		return nil, false, err
	}
	forest, err := parseForest(out, threadID)
	if err != nil {
		return nil, false, err
	}

	return &Thread{
		ID:       threadID,
		Subject:  summary.Subject,
		Tags:     summary.Tags,
		TopLevel: forest,
	}, true, nil
}

// SearchMessages streams all messages matching query, grouped by thread in
// the order search returns threads and, within a thread, in index order.
// Each returned message carries its thread id; only matching messages are
// included (reply subtrees are flattened away).
func (db *DB) SearchMessages(ctx context.Context, query string) ([]*Message, error) {
	summaries, err := db.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	var messages []*Message
	for _, summary := range summaries {
		scoped := fmt.Sprintf("thread:%s and ( %s )", summary.ThreadID, query)
		out, err := db.run(ctx, "show", "--format=json", "--body=false", "--entire-thread=false", "--", scoped)
		if err != nil {
			return nil, err
		}
		forest, err := parseForest(out, summary.ThreadID)
		if err != nil {
			return nil, err
		}
		flat := flatten(forest)
		for _, m := range flat {
			m.ThreadSubject = summary.Subject
		}
		messages = append(messages, flat...)
	}
	return messages, nil
}

// ReadRaw opens the stored file of a message for reading.
func (db *DB) ReadRaw(m *Message) (io.ReadCloser, error) {
	if m.Filename == "" {
		return nil, fmt.Errorf("message %s has no stored file", m.ID)
	}
	return os.Open(m.Filename)
}

// flatten returns the forest in depth-first order with reply links intact.
func flatten(forest []*Message) []*Message {
	var out []*Message
	for _, m := range forest {
		out = append(out, m)
		out = append(out, flatten(m.Replies)...)
	}
	return out
}
