package batch

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// sniffLen is how many leading bytes are handed to the charset detector.
const sniffLen = 4096

// Decode converts r to UTF-8. An empty label means the charset is detected
// from the first bytes of r. It returns the charset that was applied.
// When nothing can be detected, or the label is unknown, the bytes pass
// through unchanged as UTF-8.
func Decode(r io.Reader, label string) (io.Reader, string) {
	buffered := bufio.NewReaderSize(r, sniffLen)

	if label == "" {
		label = detect(buffered)
	}

	if isUTF8(label) {
		return buffered, "utf-8"
	}

	decoded, err := charset.NewReaderLabel(label, buffered)
	if err != nil {
		return buffered, "utf-8"
	}

	return decoded, strings.ToLower(label)
}

func detect(r *bufio.Reader) string {
	head, _ := r.Peek(sniffLen)
	if len(head) == 0 || isASCII(head) {
		return "utf-8"
	}

	best, err := chardet.NewTextDetector().DetectBest(head)
	if err != nil {
		return "utf-8"
	}

	return best.Charset
}

func isUTF8(label string) bool {
	switch strings.ToLower(label) {
	case "utf-8", "utf8", "us-ascii", "ascii":
		return true
	default:
		return false
	}
}

func isASCII(b []byte) bool {
	return bytes.IndexFunc(b, func(r rune) bool { return r >= 0x80 }) < 0 //nolint:mnd
}
