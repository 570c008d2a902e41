package cuberepr

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, r *Representation) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.Document()); err != nil {
		return err
	}
	return enc.Close()
}
