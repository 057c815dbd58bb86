package ingest

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bauwerk-digital/contracts-tracker/constants"
	"github.com/bauwerk-digital/contracts-tracker/internal/common"
)

// Document is an uploaded file as handed to the pipeline: name, declared
// MIME type and the full byte content. The content is read once, fully into
// memory; there is no streaming path.
type Document struct {
	FileName    string
	ContentType string
	Content     []byte
}

// Ext returns the normalized file extension of the document.
func (d Document) Ext() string {
	return constants.NormalizeExt(filepath.Ext(d.FileName))
}

// IsPDF reports whether the document declares itself as a PDF.
func (d Document) IsPDF() bool {
	return strings.HasPrefix(d.ContentType, constants.MIMEPDF) || d.Ext() == "pdf"
}

// ReadText converts the document to decoded text content.
//   - text/plain or .txt: decoded directly
//   - application/pdf: rejected, the text-only backend cannot process PDFs
//   - anything else: best-effort text decode, rejected when the bytes are
//     not valid text
func ReadText(doc Document) (string, error) {
	if constants.IsTextFile(doc.ContentType, doc.FileName) {
		return decodeText(doc)
	}
	if doc.IsPDF() {
		return "", common.UnsupportedFormat(
			"PDF-Dateien werden aktuell nicht unterstützt. Bitte laden Sie eine Text-Datei (.txt) hoch oder kopieren Sie den Vertragstext.")
	}
	text, err := decodeText(doc)
	if err != nil {
		return "", common.UnsupportedFormat(fmt.Sprintf("Dateityp %s wird nicht unterstützt.", doc.ContentType))
	}
	return text, nil
}

func decodeText(doc Document) (string, error) {
	// BOM from Windows exports
	text := strings.TrimPrefix(string(doc.Content), "\uFEFF")
	if !utf8.ValidString(text) {
		return "", common.DecodeFailure(fmt.Sprintf("file %s is not valid text", doc.FileName))
	}
	return text, nil
}

// ReadBase64 returns the document's byte content base64-encoded, for
// binary-capable backends.
func ReadBase64(doc Document) string {
	return base64.StdEncoding.EncodeToString(doc.Content)
}

// StripDataURLPrefix removes a leading "data:<mime>;base64," prefix from a
// payload, returning the bare base64 data. Input without a prefix is
// returned unchanged.
func StripDataURLPrefix(payload string) string {
	if !strings.HasPrefix(payload, "data:") {
		return payload
	}
	if i := strings.IndexByte(payload, ','); i >= 0 {
		return payload[i+1:]
	}
	return payload
}

// DecodePayload decodes a base64 or data-URL payload into raw bytes.
func DecodePayload(payload string) ([]byte, error) {
	raw := StripDataURLPrefix(strings.TrimSpace(payload))
	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, common.DecodeFailure("payload is not valid base64")
	}
	return b, nil
}
