package constants

import "strings"

// MIME types the reader switches on.
const (
	MIMETextPlain = "text/plain"
	MIMEPDF       = "application/pdf"
)

// DefaultCurrency is used when the extraction output carries no currency.
const DefaultCurrency = "EUR"

// NoticePeriodUnspecified is the marker stored when the model found no
// cancellation terms.
const NoticePeriodUnspecified = "Nicht angegeben"

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsTextFile reports whether a file should be read as plain text, by MIME
// type or by .txt extension.
func IsTextFile(contentType, fileName string) bool {
	if strings.HasPrefix(contentType, MIMETextPlain) {
		return true
	}
	return strings.HasSuffix(strings.ToLower(fileName), ".txt")
}

// imageExts are the extensions a vision-capable backend accepts as inline
// base64 payloads.
var imageExts = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
}

// IsImageExt reports whether the extension belongs to a supported image type.
func IsImageExt(ext string) bool {
	_, ok := imageExts[NormalizeExt(ext)]
	return ok
}
