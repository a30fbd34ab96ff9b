package archive

import (
	"bytes"
	"io"
	"strings"

	"github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset"
)

// parseMessage reads raw message bytes into a MIME entity. Unknown charsets
// are a recoverable defect: the entity is kept and its text decoded
// best-effort. Only a structurally unreadable message yields nil.
func parseMessage(raw []byte) *message.Entity {
	ent, err := message.Read(bytes.NewReader(raw))
	if err != nil && !message.IsUnknownCharset(err) {
		return nil
	}
	return ent
}

// ExtractBody yields a single plain-text body for a message: the first
// non-attachment text/plain part in depth-first order, or the first leaf
// part's payload when no such part exists. Extraction is best-effort and
// never fails; malformed transfer encodings and charsets degrade to partial
// or replacement-character text rather than an error.
func ExtractBody(ent *message.Entity) string {
	if ent == nil {
		return ""
	}
	body, found, fallback, _ := scanParts(ent)
	if found {
		return body
	}
	return fallback
}

// scanParts walks the MIME tree depth-first looking for the first inline
// text/plain part. The first leaf payload encountered is carried along as a
// fallback for messages without any qualifying part.
func scanParts(ent *message.Entity) (body string, found bool, fallback string, haveFallback bool) {
	mr := ent.MultipartReader()
	if mr == nil {
		text := decodePart(ent)
		ctype, _, _ := ent.Header.ContentType()
		disposition, _, _ := ent.Header.ContentDisposition()
		if (ctype == "" || ctype == "text/plain") && disposition != "attachment" {
			return text, true, text, true
		}
		return "", false, text, true
	}

	for {
		part, err := mr.NextPart()
		if err != nil && !message.IsUnknownCharset(err) {
			break
		}
		if part == nil {
			break
		}
		b, f, fb, hfb := scanParts(part)
		if f {
			return b, true, fb, true
		}
		if !haveFallback && hfb {
			fallback, haveFallback = fb, true
		}
	}
	return "", false, fallback, haveFallback
}

// decodePart reads a leaf part's text. The entity body stream already
// applies transfer decoding and charset conversion; whatever bytes survive
// a mid-stream decode error are kept, with invalid UTF-8 replaced.
func decodePart(ent *message.Entity) string {
	b, _ := io.ReadAll(ent.Body)
	return strings.ToValidUTF8(string(b), "�")
}
