package csview

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrNilDocument       = errors.New("nil document")
	ErrNoHeader          = errors.New("document has no header")
)

// Format represents an output format.
type Format string

const (
	CSV      Format = "csv"
	Table    Format = "table"
	Markdown Format = "markdown"
	JSON     Format = "json"
	YAML     Format = "yaml"
	Info     Format = "info"
)

var formats = []Format{CSV, Table, Markdown, JSON, YAML, Info}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders doc in format f and writes it to w.
//
// Table and Info accept a nil doc and render a notice line instead; the
// serialization formats (CSV, Markdown, JSON, YAML) report [ErrNilDocument].
func Write(w io.Writer, f Format, doc *Document) error {
	switch f {
	case Table, Info:
	default:
		if doc == nil {
			return fmt.Errorf("%w: cannot render format %q", ErrNilDocument, f)
		}
	}
	switch f {
	case CSV:
		return writeCSV(w, doc)
	case Table:
		return writeTable(w, doc)
	case Markdown:
		return writeMarkdown(w, doc)
	case JSON:
		return writeJSON(w, doc)
	case YAML:
		return writeYAML(w, doc)
	case Info:
		return writeInfo(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders doc in format f and returns the bytes.
func Marshal(f Format, doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
