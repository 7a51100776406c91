package contentsearch

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	text, err := Decode("f1", FormatText, []byte("plain text content"))
	require.NoError(t, err)
	assert.Equal(t, "plain text content", text)
}

func TestDecodeTextInvalidUTF8Replaced(t *testing.T) {
	raw := []byte{'o', 'k', 0xff, 0xfe, 'o', 'k'}
	text, err := Decode("f1", FormatText, raw)
	require.NoError(t, err)
	assert.Equal(t, "ok��ok", text)
}

func TestDecodeCSV(t *testing.T) {
	text, err := Decode("f1", FormatCSV, []byte("name,amount\nwidget,42\n"))
	require.NoError(t, err)
	assert.Contains(t, text, "widget,42")
}

func TestDecodeDOCX(t *testing.T) {
	raw := buildDOCX(t, `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`+
		`<w:body>`+
		`<w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	text, err := Decode("f1", FormatDOCX, raw)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph\nSecond paragraph", text)
}

func TestDecodeDOCXHyperlinkText(t *testing.T) {
	// Text nested under wrappers like w:hyperlink must not be dropped.
	raw := buildDOCX(t, `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`+
		`<w:body>`+
		`<w:p><w:r><w:t>see </w:t></w:r>`+
		`<w:hyperlink><w:r><w:t>the docs</w:t></w:r></w:hyperlink></w:p>`+
		`</w:body></w:document>`)

	text, err := Decode("f1", FormatDOCX, raw)
	require.NoError(t, err)
	assert.Equal(t, "see the docs", text)
}

func TestDecodeDOCXCorrupt(t *testing.T) {
	_, err := Decode("f1", FormatDOCX, []byte("not a zip archive"))
	var derr *DecodeError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "f1", derr.FileID)
	assert.Equal(t, FormatDOCX, derr.Format)
}

func TestDecodeDOCXMissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Decode("f1", FormatDOCX, buf.Bytes())
	var derr *DecodeError
	require.True(t, errors.As(err, &derr))
}

func TestDecodePDFCorrupt(t *testing.T) {
	_, err := Decode("f1", FormatPDF, []byte("%PDF-1.4 truncated garbage"))
	var derr *DecodeError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, FormatPDF, derr.Format)
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := Decode("f1", FormatUnknown, []byte("payload"))
	var derr *DecodeError
	require.True(t, errors.As(err, &derr))
}

func TestDecodeGoogleDocRejected(t *testing.T) {
	_, err := Decode("f1", FormatGoogleDoc, []byte("payload"))
	var derr *DecodeError
	require.True(t, errors.As(err, &derr))
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		mime string
		want Format
	}{
		{"application/vnd.google-apps.document", FormatGoogleDoc},
		{"application/pdf", FormatPDF},
		{"text/plain", FormatText},
		{"text/csv", FormatCSV},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", FormatDOCX},
		{"image/png", FormatUnknown},
		{"", FormatUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectFormat(tt.mime), "mime %q", tt.mime)
	}
}

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
