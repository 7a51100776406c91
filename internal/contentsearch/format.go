package contentsearch

// Format identifies a decodable file format. Dispatch is by this closed
// enumeration, never by sniffing payload bytes.
type Format string

const (
	// FormatGoogleDoc is a Drive-native document, read through the
	// store's export-to-text capability instead of a local parser.
	FormatGoogleDoc Format = "google-doc"
	FormatPDF       Format = "pdf"
	FormatText      Format = "text"
	FormatCSV       Format = "csv"
	FormatDOCX      Format = "docx"
	FormatUnknown   Format = "unknown"
)

const (
	mimeGoogleDoc = "application/vnd.google-apps.document"
	mimePDF       = "application/pdf"
	mimeText      = "text/plain"
	mimeCSV       = "text/csv"
	mimeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// DetectFormat maps a Drive MIME type to a decodable format.
func DetectFormat(mimeType string) Format {
	switch mimeType {
	case mimeGoogleDoc:
		return FormatGoogleDoc
	case mimePDF:
		return FormatPDF
	case mimeText:
		return FormatText
	case mimeCSV:
		return FormatCSV
	case mimeDOCX:
		return FormatDOCX
	default:
		return FormatUnknown
	}
}

// MimeType returns the Drive MIME type for a format, or "" for unknown.
func (f Format) MimeType() string {
	switch f {
	case FormatGoogleDoc:
		return mimeGoogleDoc
	case FormatPDF:
		return mimePDF
	case FormatText:
		return mimeText
	case FormatCSV:
		return mimeCSV
	case FormatDOCX:
		return mimeDOCX
	default:
		return ""
	}
}

// SearchableFormats lists every format the decoders support, in the
// order used when building the store-side type filter.
func SearchableFormats() []Format {
	return []Format{FormatGoogleDoc, FormatPDF, FormatText, FormatCSV, FormatDOCX}
}
