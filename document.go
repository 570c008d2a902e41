package cuberepr

// Document is the structured form of a representation, used by the JSON and
// YAML formats.
type Document struct {
	Name     string            `json:"name" yaml:"name"`
	Units    string            `json:"units" yaml:"units"`
	Shape    []int             `json:"shape" yaml:"shape,flow"`
	Dims     []string          `json:"dims" yaml:"dims,flow"`
	Sections []DocumentSection `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// DocumentSection holds the rows under one heading.
type DocumentSection struct {
	Heading string        `json:"heading" yaml:"heading"`
	Rows    []DocumentRow `json:"rows" yaml:"rows"`
}

// DocumentRow is either a coordinate row with one marker per dimension or a
// key/value row. Multi-line values keep their newlines.
type DocumentRow struct {
	Title   string   `json:"title" yaml:"title"`
	Markers []string `json:"markers,omitempty" yaml:"markers,omitempty,flow"`
	Value   string   `json:"value,omitempty" yaml:"value,omitempty"`
}

// Document returns the sections of the summary in display order. Empty and
// absent sections are left out.
func (r *Representation) Document() Document {
	doc := Document{
		Name:  r.name,
		Units: r.units,
		Shape: r.Shapes(),
		Dims:  r.Names(),
	}
	for _, h := range headings {
		lines := r.sections[h]
		if len(lines) == 0 {
			continue
		}
		sec := DocumentSection{Heading: h.Title()}
		for _, line := range lines {
			e := classify(h, line, r.ndims)
			if e.continuation && !h.describesDims() && len(sec.Rows) > 0 {
				last := &sec.Rows[len(sec.Rows)-1]
				last.Value += "\n" + e.value
				continue
			}
			sec.Rows = append(sec.Rows, DocumentRow{Title: e.title, Markers: e.markers, Value: e.value})
		}
		doc.Sections = append(doc.Sections, sec)
	}
	return doc
}
