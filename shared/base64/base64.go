package base64

import "strings"

const (
	dataPrefix      = "data:"
	base64Separator = ";base64,"
)

// GetContentType extracts the MIME type from a data URI such as
// "data:image/png;base64,...". Room photos may arrive this way instead
// of as multipart uploads. Returns an empty string when the input is
// not a data URI.
func GetContentType(file string) string {
	if !strings.HasPrefix(file, dataPrefix) {
		return ""
	}

	start := len(dataPrefix)
	end := strings.Index(file, base64Separator)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}
