// Package extract reads raw text out of uploaded study files.
//
// It knows file formats only. Splitting into content blocks, topic
// detection and placeholder text for empty pages belong to the caller.
package extract

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrUnreadable is returned when a file cannot be parsed as its declared type.
var ErrUnreadable = errors.New("unreadable file")

// Page is the text of one PDF page. Err is set when only that page failed.
type Page struct {
	Number int
	Text   string
	Err    error
}

// Extractor implements text extraction for every supported file type.
// It is stateless and safe for concurrent use.
type Extractor struct{}

// New returns an Extractor.
func New() *Extractor { return &Extractor{} }

// PlainText returns the file contents as text.
func (e *Extractor) PlainText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return strings.ToValidUTF8(string(b), ""), nil
}
