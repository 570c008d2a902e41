package cuberepr

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrUnsupportedFormat is returned for format names this package cannot
// render.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format represents an output format.
type Format string

const (
	HTML     Format = "html"
	Markdown Format = "markdown"
	JSON     Format = "json"
	YAML     Format = "yaml"
	Text     Format = "text"
)

var formats = []Format{HTML, Markdown, JSON, YAML, Text}

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

// Render writes the representation to w in format f.
func (r *Representation) Render(w io.Writer, f Format) error {
	switch f {
	case HTML:
		return writeHTML(w, r)
	case Markdown:
		return writeMarkdown(w, r)
	case JSON:
		return writeJSON(w, r)
	case YAML:
		return writeYAML(w, r)
	case Text:
		return writeText(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Write renders c to w in format f.
func Write(w io.Writer, f Format, c Cube) error {
	return New(c).Render(w, f)
}

// Marshal renders c in format f and returns the bytes.
func Marshal(f Format, c Cube) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
