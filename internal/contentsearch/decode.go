package contentsearch

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/unicode"
)

// Decode converts a raw payload to plain text according to its declared
// format. Google-native documents never reach Decode; the searcher reads
// them through the store's export capability.
func Decode(fileID string, format Format, raw []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch format {
	case FormatText, FormatCSV:
		text, err = decodeText(raw)
	case FormatPDF:
		text, err = decodePDF(raw)
	case FormatDOCX:
		text, err = decodeDOCX(raw)
	case FormatGoogleDoc:
		err = errors.New("google-native documents are exported, not decoded")
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return "", &DecodeError{FileID: fileID, Format: format, Err: err}
	}
	return text, nil
}

// decodeText interprets the payload as UTF-8, replacing invalid byte
// sequences with U+FFFD instead of failing.
func decodeText(raw []byte) (string, error) {
	out, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// decodePDF extracts the text streams of a PDF, ignoring images, fonts
// and layout. The pdf library panics on some malformed inputs, so the
// recover turns those into decode failures.
func decodePDF(raw []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// decodeDOCX pulls the visible text out of the word/document.xml entry
// of the OOXML zip container. Runs are concatenated and paragraphs become
// newlines; styling and embedded objects are dropped.
func decodeDOCX(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", err
	}
	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", errors.New("no word/document.xml in container")
	}
	rc, err := doc.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	// Stream the tokens rather than unmarshalling a struct so text inside
	// hyperlinks and other nested wrappers is not lost.
	var sb strings.Builder
	dec := xml.NewDecoder(rc)
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
