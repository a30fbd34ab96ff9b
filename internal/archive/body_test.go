package archive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extract(t *testing.T, raw string) string {
	t.Helper()
	ent := parseMessage([]byte(raw))
	require.NotNil(t, ent, "message should be parseable")
	return ExtractBody(ent)
}

func TestExtractBodyPlainText(t *testing.T) {
	raw := "Subject: hi\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"hello\nworld"

	// Internal newlines and spacing survive extraction untouched.
	assert.Equal(t, "hello\nworld", extract(t, raw))
}

func TestExtractBodyNoContentType(t *testing.T) {
	raw := "Subject: hi\r\n" +
		"\r\n" +
		"plain enough"
	assert.Equal(t, "plain enough", extract(t, raw))
}

func TestExtractBodyPrefersInlineOverAttachment(t *testing.T) {
	raw := "Subject: hi\r\n" +
		"Content-Type: multipart/mixed; boundary=frontier\r\n" +
		"\r\n" +
		"--frontier\r\n" +
		"Content-Type: text/plain\r\n" +
		"Content-Disposition: attachment; filename=\"notes.txt\"\r\n" +
		"\r\n" +
		"attached notes\r\n" +
		"--frontier\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"inline body\r\n" +
		"--frontier--\r\n"

	assert.Equal(t, "inline body", extract(t, raw))
}

func TestExtractBodyNestedMultipart(t *testing.T) {
	raw := "Subject: hi\r\n" +
		"Content-Type: multipart/mixed; boundary=outer\r\n" +
		"\r\n" +
		"--outer\r\n" +
		"Content-Type: multipart/alternative; boundary=inner\r\n" +
		"\r\n" +
		"--inner\r\n" +
		"Content-Type: text/html\r\n" +
		"\r\n" +
		"<p>html</p>\r\n" +
		"--inner\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"nested plain\r\n" +
		"--inner--\r\n" +
		"--outer--\r\n"

	assert.Equal(t, "nested plain", extract(t, raw))
}

func TestExtractBodyFallsBackToFirstPart(t *testing.T) {
	raw := "Subject: hi\r\n" +
		"Content-Type: multipart/alternative; boundary=frontier\r\n" +
		"\r\n" +
		"--frontier\r\n" +
		"Content-Type: text/html\r\n" +
		"\r\n" +
		"<p>only html here</p>\r\n" +
		"--frontier--\r\n"

	assert.Equal(t, "<p>only html here</p>", extract(t, raw))
}

func TestExtractBodyQuotedPrintable(t *testing.T) {
	raw := "Subject: hi\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"Content-Transfer-Encoding: quoted-printable\r\n" +
		"\r\n" +
		"caf=C3=A9"

	assert.Equal(t, "café", extract(t, raw))
}

func TestExtractBodyUnknownCharset(t *testing.T) {
	raw := "Subject: hi\r\n" +
		"Content-Type: text/plain; charset=x-no-such-charset\r\n" +
		"\r\n" +
		"still readable"

	// Unknown charsets degrade to raw bytes, never to a failure.
	body := extract(t, raw)
	assert.Contains(t, body, "still readable")
}

func TestExtractBodyInvalidUTF8(t *testing.T) {
	raw := "Subject: hi\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"ok \xff\xfe bytes"

	body := extract(t, raw)
	assert.True(t, strings.HasPrefix(body, "ok "))
	assert.Contains(t, body, "�")
	assert.Contains(t, body, "bytes")
}

func TestExtractBodyNilEntity(t *testing.T) {
	assert.Equal(t, "", ExtractBody(nil))
}

func TestRawHeader(t *testing.T) {
	ent := parseMessage([]byte("In-Reply-To: <cover@example.com>\r\nSubject: hi\r\n\r\nbody"))
	require.NotNil(t, ent)

	assert.Equal(t, "<cover@example.com>", rawHeader(ent, "In-Reply-To"))
	assert.Equal(t, "", rawHeader(ent, "Cc"))
	assert.Equal(t, "", rawHeader(nil, "Subject"))
}
