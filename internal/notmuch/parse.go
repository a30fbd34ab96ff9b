package notmuch

import (
	"encoding/json"
	"fmt"
	"net/textproto"
)

// parseSummaries decodes the output of `notmuch search --format=json
// --output=summary`.
func parseSummaries(data []byte) ([]ThreadSummary, error) {
	var summaries []ThreadSummary
	if err := json.Unmarshal(data, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode search output: %w", err)
	}
	return summaries, nil
}

// parseForest decodes the output of `notmuch show --format=json
// --body=false` into a reply forest. The show format is a triple-nested
// array: the outer array holds threads, each thread is a list of top-level
// entries, and each entry is a pair [message, replies] where replies is
// again a list of entries. Messages filtered out by --entire-thread=false
// appear as null and are replaced by their (flattened) children.
func parseForest(data []byte, threadID string) ([]*Message, error) {
	var threads []json.RawMessage
	if err := json.Unmarshal(data, &threads); err != nil {
		return nil, fmt.Errorf("failed to decode show output: %w", err)
	}

	var forest []*Message
	for _, thread := range threads {
		var entries []json.RawMessage
		if err := json.Unmarshal(thread, &entries); err != nil {
			return nil, fmt.Errorf("failed to decode thread entries: %w", err)
		}
		for _, entry := range entries {
			msgs, err := parseEntry(entry, threadID)
			if err != nil {
				return nil, err
			}
			forest = append(forest, msgs...)
		}
	}
	return forest, nil
}

// parseEntry decodes one [message, replies] pair. When the message slot is
// null the pair contributes its children directly, preserving their order.
func parseEntry(entry json.RawMessage, threadID string) ([]*Message, error) {
	var pair []json.RawMessage
	if err := json.Unmarshal(entry, &pair); err != nil {
		return nil, fmt.Errorf("failed to decode message entry: %w", err)
	}
	if len(pair) != 2 {
		return nil, fmt.Errorf("malformed message entry: expected [message, replies], got %d elements", len(pair))
	}

	var children []*Message
	var childEntries []json.RawMessage
	if err := json.Unmarshal(pair[1], &childEntries); err != nil {
		return nil, fmt.Errorf("failed to decode reply entries: %w", err)
	}
	for _, childEntry := range childEntries {
		msgs, err := parseEntry(childEntry, threadID)
		if err != nil {
			return nil, err
		}
		children = append(children, msgs...)
	}

	if string(pair[0]) == "null" {
		return children, nil
	}

	var raw rawMessage
	if err := json.Unmarshal(pair[0], &raw); err != nil {
		return nil, fmt.Errorf("failed to decode message: %w", err)
	}

	headers := make(map[string]string, len(raw.Headers))
	for name, value := range raw.Headers {
		headers[textproto.CanonicalMIMEHeaderKey(name)] = value
	}

	return []*Message{{
		ID:        raw.ID,
		ThreadID:  threadID,
		Filename:  raw.Filename.first(),
		Timestamp: raw.Timestamp,
		Tags:      raw.Tags,
		Headers:   headers,
		Replies:   children,
	}}, nil
}
