package cuberepr

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, r *Representation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Document())
}
