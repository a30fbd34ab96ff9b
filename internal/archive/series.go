package archive

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Distinguishable failure conditions of the series finder. ErrEmptyFilter
// is a caller-correctable usage error and is raised before any index
// access; ErrSearchFailed wraps index-level failures; ErrInternal covers
// anything else that should never reach a caller raw.
var (
	ErrEmptyFilter  = errors.New("search filter must not be empty")
	ErrSearchFailed = errors.New("mail index search failed")
	ErrInternal     = errors.New("internal error")
)

// Series identifies one patch series: a thread and its human-readable
// subject.
type Series struct {
	ThreadID string
	Subject  string
}

// FindSeries scans all messages matching filter and returns one Series per
// thread that contains a patch submission, in first-seen order.
//
// A message qualifies as a submission when its subject contains "PATCH"
// (case-insensitive) and is not phrased as a reply; only a qualifying
// message claims its thread. A thread whose matched messages are all
// replies contributes nothing, but stays eligible: a later qualifying
// message from the same thread still claims it. The series subject prefers
// the thread's own subject as reported by the index, falling back to the
// qualifying message's subject.
func FindSeries(ctx context.Context, store Store, filter string) ([]Series, error) {
	if strings.TrimSpace(filter) == "" {
		return nil, ErrEmptyFilter
	}

	messages, err := store.SearchMessages(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}

	seen := make(map[string]struct{})
	var series []Series
	for _, m := range messages {
		if _, done := seen[m.ThreadID]; done {
			continue
		}

		subject := m.Header("Subject")
		upper := strings.ToUpper(subject)
		if !strings.Contains(upper, "PATCH") {
			continue
		}
		if strings.HasPrefix(upper, "RE:") || strings.HasPrefix(upper, "R:") {
			continue
		}

		title := m.ThreadSubject
		if title == "" {
			title = subject
		}
		series = append(series, Series{ThreadID: m.ThreadID, Subject: title})
		seen[m.ThreadID] = struct{}{}
	}
	return series, nil
}
