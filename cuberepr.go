package cuberepr

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AnonymousDim names a dimension that no dimension coordinate describes.
const AnonymousDim = "--"

// Cube is the view of a data cube a [Representation] is built from. String
// returns the cube's text summary; everything rendered beyond the name,
// units, shape and dimension names is read from that summary.
type Cube interface {
	fmt.Stringer
	Name() string
	Units() string
	Shape() []int
	DimCoordName(dim int) (string, bool)
}

// Heading identifies a section of the text summary.
type Heading int

const (
	DimCoords Heading = iota
	AuxCoords
	ScalarCoords
	Attributes
	CellMethods
)

var headings = []Heading{DimCoords, AuxCoords, ScalarCoords, Attributes, CellMethods}

var headingLabels = [...]string{
	DimCoords:    "Dimension coordinates:",
	AuxCoords:    "Auxiliary coordinates:",
	ScalarCoords: "Scalar coordinates:",
	Attributes:   "Attributes:",
	CellMethods:  "Cell methods:",
}

// Derived coordinates are listed together with the auxiliary ones.
var headingByLabel = map[string]Heading{
	"Dimension coordinates:": DimCoords,
	"Auxiliary coordinates:": AuxCoords,
	"Derived coordinates:":   AuxCoords,
	"Scalar coordinates:":    ScalarCoords,
	"Attributes:":            Attributes,
	"Cell methods:":          CellMethods,
}

// Headings returns every heading in display order.
func Headings() []Heading { return slices.Clone(headings) }

// String returns the heading as it appears in the summary, trailing colon
// included.
func (h Heading) String() string {
	if h < 0 || int(h) >= len(headingLabels) {
		return fmt.Sprintf("Heading(%d)", int(h))
	}
	return headingLabels[h]
}

// Title returns the heading without its trailing colon.
func (h Heading) Title() string { return strings.TrimSuffix(h.String(), ":") }

// describesDims reports whether the heading's lines carry inclusion markers.
func (h Heading) describesDims() bool { return h == DimCoords || h == AuxCoords }

// Representation is a snapshot of a cube laid out for display. It captures
// the cube's summary at construction; later changes to the cube only show
// through [Representation.DimNames].
type Representation struct {
	cube     Cube
	id       string
	cubeStr  string
	name     string
	units    string
	shapes   []int
	ndims    int
	names    []string
	sections map[Heading][]string
}

// New captures c for rendering.
func New(c Cube) *Representation {
	shape := slices.Clone(c.Shape())
	r := &Representation{
		cube:    c,
		id:      uuid.NewString(),
		cubeStr: c.String(),
		name:    displayName(c.Name()),
		units:   c.Units(),
		shapes:  shape,
		ndims:   len(shape),
	}
	r.names = r.DimNames()
	r.sections = parse(r.cubeStr)
	return r
}

// displayName turns "air_temperature" into "Air Temperature". Casers hold
// state, so each call gets its own.
func displayName(name string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(name, "_", " "))
}

// Cube returns the cube the representation was built from.
func (r *Representation) Cube() Cube { return r.cube }

// ID returns the element id given to the rendered table.
func (r *Representation) ID() string { return r.id }

// CubeString returns the summary captured at construction.
func (r *Representation) CubeString() string { return r.cubeStr }

// Name returns the display name: underscores become spaces and each word is
// title-cased.
func (r *Representation) Name() string { return r.name }

// Units returns the cube units.
func (r *Representation) Units() string { return r.units }

// Shapes returns the per-dimension extents.
func (r *Representation) Shapes() []int { return slices.Clone(r.shapes) }

// NDims returns the number of data dimensions.
func (r *Representation) NDims() int { return r.ndims }

// Names returns the dimension names captured at construction.
func (r *Representation) Names() []string { return slices.Clone(r.names) }

// DimNames reads the dimension coordinate name of every dimension from the
// cube, using [AnonymousDim] where a dimension has none.
func (r *Representation) DimNames() []string {
	names := make([]string, r.ndims)
	for dim := range names {
		if name, ok := r.cube.DimCoordName(dim); ok {
			names[dim] = name
		} else {
			names[dim] = AnonymousDim
		}
	}
	return names
}

// Lines returns the summary lines collected under h. ok is false when the
// summary has no such section.
func (r *Representation) Lines(h Heading) (lines []string, ok bool) {
	lines, ok = r.sections[h]
	return slices.Clone(lines), ok
}

// columns is the number of content columns; a scalar cube still gets one.
func (r *Representation) columns() int { return max(r.ndims, 1) }
