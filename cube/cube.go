// Package cube holds the metadata half of a multi-dimensional labeled data
// array: its name, units, shape, coordinates, attributes and cell methods.
// No data payload is carried. The text summary produced by [Cube.String] is
// the input the cuberepr package renders.
package cube

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Sentinel errors returned by the Cube mutators.
var (
	ErrInvalidDim     = errors.New("invalid dimension")
	ErrDuplicateCoord = errors.New("duplicate coordinate")
	ErrCoordNotFound  = errors.New("coordinate not found")
)

// Coord describes one coordinate of a cube. Dims lists the data dimensions
// the coordinate spans; a scalar coordinate spans none and carries its single
// point in Value.
type Coord struct {
	Name  string `yaml:"name"`
	Units string `yaml:"units,omitempty"`
	Dims  []int  `yaml:"dims,omitempty,flow"`
	Value string `yaml:"value,omitempty"`
}

// Scalar reports whether the coordinate spans no dimension.
func (c Coord) Scalar() bool { return len(c.Dims) == 0 }

// Spans reports whether the coordinate describes dimension dim.
func (c Coord) Spans(dim int) bool { return slices.Contains(c.Dims, dim) }

// CellMethod records a statistical operation applied over coordinates.
type CellMethod struct {
	Method    string   `yaml:"method"`
	Coords    []string `yaml:"coords,flow"`
	Intervals []string `yaml:"intervals,omitempty,flow"`
	Comments  []string `yaml:"comments,omitempty,flow"`
}

// String renders the cell method as "method: coord (interval, comment), ...".
func (m CellMethod) String() string {
	n := max(len(m.Coords), len(m.Intervals), len(m.Comments))
	parts := make([]string, 0, n)
	for i := range n {
		coord := at(m.Coords, i)
		var info []string
		if s := at(m.Intervals, i); s != "" {
			info = append(info, s)
		}
		if s := at(m.Comments, i); s != "" {
			info = append(info, s)
		}
		if len(info) > 0 {
			coord = fmt.Sprintf("%s (%s)", coord, strings.Join(info, ", "))
		}
		parts = append(parts, coord)
	}
	return m.Method + ": " + strings.Join(parts, ", ")
}

func at(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}

// Cube is the metadata of a labeled data array. The zero value is not
// usable; construct with [New].
type Cube struct {
	name       string
	units      string
	shape      []int
	dimCoords  []Coord
	auxCoords  []Coord
	derived    []Coord
	scalars    []Coord
	attributes map[string]string
	methods    []CellMethod
}

// New returns a cube with no coordinates.
func New(name, units string, shape ...int) *Cube {
	return &Cube{
		name:       name,
		units:      units,
		shape:      slices.Clone(shape),
		attributes: make(map[string]string),
	}
}

// Name returns the cube name, or "unknown" when unset.
func (c *Cube) Name() string {
	if c.name == "" {
		return "unknown"
	}
	return c.name
}

// Rename sets the cube name.
func (c *Cube) Rename(name string) { c.name = name }

// Units returns the units string.
func (c *Cube) Units() string { return c.units }

// SetUnits sets the units string.
func (c *Cube) SetUnits(units string) { c.units = units }

// Shape returns a copy of the per-dimension extents.
func (c *Cube) Shape() []int { return slices.Clone(c.shape) }

// NDim returns the number of data dimensions.
func (c *Cube) NDim() int { return len(c.shape) }

// DimCoords returns the dimension coordinates ordered by dimension.
func (c *Cube) DimCoords() []Coord { return cloneCoords(c.dimCoords) }

// AuxCoords returns the auxiliary coordinates in insertion order.
func (c *Cube) AuxCoords() []Coord { return cloneCoords(c.auxCoords) }

// DerivedCoords returns the derived coordinates in insertion order.
func (c *Cube) DerivedCoords() []Coord { return cloneCoords(c.derived) }

// ScalarCoords returns the scalar coordinates in insertion order.
func (c *Cube) ScalarCoords() []Coord { return cloneCoords(c.scalars) }

// Attributes returns a copy of the attribute mapping.
func (c *Cube) Attributes() map[string]string { return maps.Clone(c.attributes) }

// SetAttribute sets a single attribute. Values may span several lines.
func (c *Cube) SetAttribute(key, value string) { c.attributes[key] = value }

// CellMethods returns the cell methods in the order they were added.
func (c *Cube) CellMethods() []CellMethod { return slices.Clone(c.methods) }

// AddCellMethod appends a cell method.
func (c *Cube) AddCellMethod(m CellMethod) { c.methods = append(c.methods, m) }

// DimCoordName returns the name of the dimension coordinate describing dim.
func (c *Cube) DimCoordName(dim int) (string, bool) {
	for _, co := range c.dimCoords {
		if co.Spans(dim) {
			return co.Name, true
		}
	}
	return "", false
}

// AddDimCoord adds a coordinate describing exactly one dimension. Each
// dimension holds at most one dimension coordinate.
func (c *Cube) AddDimCoord(co Coord) error {
	if len(co.Dims) != 1 {
		return fmt.Errorf("%w: dimension coordinate %q must span one dimension, got %v", ErrInvalidDim, co.Name, co.Dims)
	}
	if err := c.checkCoord(co); err != nil {
		return err
	}
	if name, ok := c.DimCoordName(co.Dims[0]); ok {
		return fmt.Errorf("%w: dimension %d already described by %q", ErrDuplicateCoord, co.Dims[0], name)
	}
	c.dimCoords = append(c.dimCoords, cloneCoord(co))
	slices.SortStableFunc(c.dimCoords, func(a, b Coord) int { return a.Dims[0] - b.Dims[0] })
	return nil
}

// AddAuxCoord adds an auxiliary coordinate spanning one or more dimensions.
func (c *Cube) AddAuxCoord(co Coord) error {
	if err := c.checkSpanning(co); err != nil {
		return err
	}
	c.auxCoords = append(c.auxCoords, cloneCoord(co))
	return nil
}

// AddDerivedCoord adds a coordinate computed from other coordinates, such as
// a hybrid height.
func (c *Cube) AddDerivedCoord(co Coord) error {
	if err := c.checkSpanning(co); err != nil {
		return err
	}
	c.derived = append(c.derived, cloneCoord(co))
	return nil
}

// AddScalarCoord adds a coordinate that spans no dimension.
func (c *Cube) AddScalarCoord(co Coord) error {
	if !co.Scalar() {
		return fmt.Errorf("%w: scalar coordinate %q spans %v", ErrInvalidDim, co.Name, co.Dims)
	}
	if err := c.checkCoord(co); err != nil {
		return err
	}
	c.scalars = append(c.scalars, cloneCoord(co))
	return nil
}

// RemoveCoord removes the named coordinate, whatever its kind.
func (c *Cube) RemoveCoord(name string) error {
	for _, list := range []*[]Coord{&c.dimCoords, &c.auxCoords, &c.derived, &c.scalars} {
		if i := slices.IndexFunc(*list, func(co Coord) bool { return co.Name == name }); i >= 0 {
			*list = slices.Delete(*list, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrCoordNotFound, name)
}

// CoordsOption narrows the result of [Cube.Coords].
type CoordsOption func(*coordsFilter)

type coordsFilter struct {
	dimOnly bool
	dim     int
	byDim   bool
}

// DimCoordsOnly keeps dimension coordinates only.
func DimCoordsOnly() CoordsOption {
	return func(f *coordsFilter) { f.dimOnly = true }
}

// ContainsDimension keeps coordinates spanning dim.
func ContainsDimension(dim int) CoordsOption {
	return func(f *coordsFilter) {
		f.byDim = true
		f.dim = dim
	}
}

// Coords returns the cube's coordinates in dimension, auxiliary, derived,
// scalar order, filtered by opts.
func (c *Cube) Coords(opts ...CoordsOption) []Coord {
	var f coordsFilter
	for _, opt := range opts {
		opt(&f)
	}
	groups := [][]Coord{c.dimCoords}
	if !f.dimOnly {
		groups = append(groups, c.auxCoords, c.derived, c.scalars)
	}
	var out []Coord
	for _, group := range groups {
		for _, co := range group {
			if f.byDim && !co.Spans(f.dim) {
				continue
			}
			out = append(out, cloneCoord(co))
		}
	}
	return out
}

func (c *Cube) checkSpanning(co Coord) error {
	if co.Scalar() {
		return fmt.Errorf("%w: coordinate %q spans no dimension", ErrInvalidDim, co.Name)
	}
	return c.checkCoord(co)
}

func (c *Cube) checkCoord(co Coord) error {
	for _, d := range co.Dims {
		if d < 0 || d >= len(c.shape) {
			return fmt.Errorf("%w: coordinate %q spans dimension %d of a %d-dimensional cube", ErrInvalidDim, co.Name, d, len(c.shape))
		}
	}
	for _, existing := range c.Coords() {
		if existing.Name == co.Name {
			return fmt.Errorf("%w: %q", ErrDuplicateCoord, co.Name)
		}
	}
	return nil
}

func cloneCoords(coords []Coord) []Coord {
	out := make([]Coord, len(coords))
	for i, co := range coords {
		out[i] = cloneCoord(co)
	}
	return out
}

func cloneCoord(co Coord) Coord {
	co.Dims = slices.Clone(co.Dims)
	return co
}
