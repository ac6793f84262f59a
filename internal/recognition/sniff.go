package recognition

import (
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// sniff returns the detected MIME type of the file at path and its content.
func sniff(path string) (string, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	return mimetype.Detect(data).String(), data, nil
}

func isImage(mime string) bool {
	return strings.HasPrefix(mime, "image/")
}

func isPDF(mime string) bool {
	return mime == "application/pdf"
}
