package cube

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDescription is returned by [Decode] for documents that cannot be
// turned into a cube.
var ErrInvalidDescription = errors.New("invalid cube description")

// description is the YAML document form of a cube:
//
//	name: air_temperature
//	units: K
//	shape: [6, 70]
//	dim_coords:
//	  - {name: time, units: hours, dims: [0]}
//	scalar_coords:
//	  - {name: forecast_period, units: hours, value: "0.0"}
//	attributes:
//	  source: Iris test case
//	cell_methods:
//	  - {method: mean, coords: [time], intervals: [6hr]}
type description struct {
	Name          string            `yaml:"name"`
	Units         string            `yaml:"units"`
	Shape         []int             `yaml:"shape,flow"`
	DimCoords     []Coord           `yaml:"dim_coords,omitempty"`
	AuxCoords     []Coord           `yaml:"aux_coords,omitempty"`
	DerivedCoords []Coord           `yaml:"derived_coords,omitempty"`
	ScalarCoords  []Coord           `yaml:"scalar_coords,omitempty"`
	Attributes    map[string]string `yaml:"attributes,omitempty"`
	CellMethods   []CellMethod      `yaml:"cell_methods,omitempty"`
}

// Decode reads a YAML cube description from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Cube, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var d description
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDescription)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDescription, err)
	}
	if slices.ContainsFunc(d.Shape, func(n int) bool { return n < 0 }) {
		return nil, fmt.Errorf("%w: negative extent in shape %v", ErrInvalidDescription, d.Shape)
	}

	c := New(d.Name, d.Units, d.Shape...)
	adders := []struct {
		coords []Coord
		add    func(Coord) error
	}{
		{d.DimCoords, c.AddDimCoord},
		{d.AuxCoords, c.AddAuxCoord},
		{d.DerivedCoords, c.AddDerivedCoord},
		{d.ScalarCoords, c.AddScalarCoord},
	}
	for _, a := range adders {
		for _, co := range a.coords {
			if err := a.add(co); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidDescription, err)
			}
		}
	}
	for k, v := range d.Attributes {
		c.SetAttribute(k, v)
	}
	for _, m := range d.CellMethods {
		c.AddCellMethod(m)
	}
	return c, nil
}

// Encode writes c to w as a YAML cube description readable by [Decode].
func Encode(w io.Writer, c *Cube) error {
	d := description{
		Name:          c.name,
		Units:         c.units,
		Shape:         c.Shape(),
		DimCoords:     c.DimCoords(),
		AuxCoords:     c.AuxCoords(),
		DerivedCoords: c.DerivedCoords(),
		ScalarCoords:  c.ScalarCoords(),
		CellMethods:   c.CellMethods(),
	}
	if len(c.attributes) > 0 {
		d.Attributes = c.Attributes()
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}
