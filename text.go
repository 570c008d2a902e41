package cuberepr

import (
	"io"
	"strings"
)

// writeText writes the captured summary unchanged.
func writeText(w io.Writer, r *Representation) error {
	s := r.cubeStr
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(w, s)
	return err
}
