package archive

import (
	"strings"

	"github.com/emersion/go-message"
)

// NormalizeID strips surrounding whitespace and angle brackets from a
// message id, so that "<abc@example.com>" and "abc@example.com" compare
// equal.
func NormalizeID(id string) string {
	id = strings.TrimSpace(id)
	id = strings.TrimPrefix(id, "<")
	id = strings.TrimSuffix(id, ">")
	return strings.TrimSpace(id)
}

// rawHeader returns a header value from a parsed message entity, or the
// empty string when the entity is nil or the header is absent. Headers are
// frequently missing in real-world mail; callers must never have to branch
// on an error to tolerate that.
func rawHeader(ent *message.Entity, name string) string {
	if ent == nil {
		return ""
	}
	return ent.Header.Get(name)
}
