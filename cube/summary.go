package cube

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	headingIndent = "     "
	itemIndent    = "          "
	anonymousDim  = "--"
)

// String renders the text summary of the cube:
//
//	thingness / (1)      (wibble: 2; latitude: 3; longitude: 4)
//	     Dimension coordinates:
//	          wibble          x           -            -
//	          latitude        -           x            -
//	          longitude       -           -            x
//
// Each section heading is indented below the top line and each item is
// indented below its heading. Coordinate rows carry one inclusion marker per
// dimension ("x" when the coordinate spans it, "-" otherwise), aligned under
// the dimension entries of the top line. Sections without content are left
// out.
func (c *Cube) String() string {
	var b strings.Builder

	top := fmt.Sprintf("%s / (%s)", c.Name(), c.units)
	width := runewidth.StringWidth(top)
	for _, group := range [][]Coord{c.dimCoords, c.auxCoords, c.derived} {
		for _, co := range group {
			width = max(width, len(itemIndent)+runewidth.StringWidth(co.Name))
		}
	}
	width += 2

	var centres []int
	if len(c.shape) == 0 {
		b.WriteString(top + "  (scalar cube)")
	} else {
		entries := make([]string, len(c.shape))
		for dim, n := range c.shape {
			name, ok := c.DimCoordName(dim)
			if !ok {
				name = anonymousDim
			}
			entries[dim] = name + ": " + strconv.Itoa(n)
		}
		b.WriteString(runewidth.FillRight(top, width))
		b.WriteString("(" + strings.Join(entries, "; ") + ")")

		pos := width + 1
		for _, e := range entries {
			w := runewidth.StringWidth(e)
			centres = append(centres, pos+(w-1)/2)
			pos += w + 2
		}
	}

	writeCoords(&b, "Dimension coordinates:", c.dimCoords, width, centres)
	writeCoords(&b, "Auxiliary coordinates:", c.auxCoords, width, centres)
	writeCoords(&b, "Derived coordinates:", c.derived, width, centres)

	if len(c.scalars) > 0 {
		writeHeading(&b, "Scalar coordinates:")
		for _, co := range c.scalars {
			value := co.Value
			if co.Units != "" && co.Units != "1" {
				value = strings.TrimSpace(value + " " + co.Units)
			}
			writeItem(&b, co.Name+": "+value)
		}
	}

	if len(c.attributes) > 0 {
		writeHeading(&b, "Attributes:")
		keys := make([]string, 0, len(c.attributes))
		for k := range c.attributes {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			writeItem(&b, k+": "+c.attributes[k])
		}
	}

	if len(c.methods) > 0 {
		writeHeading(&b, "Cell methods:")
		for _, m := range c.methods {
			writeItem(&b, m.String())
		}
	}

	return b.String()
}

func writeHeading(b *strings.Builder, heading string) {
	b.WriteString("\n" + headingIndent + heading)
}

func writeItem(b *strings.Builder, item string) {
	b.WriteString("\n" + itemIndent + item)
}

func writeCoords(b *strings.Builder, heading string, coords []Coord, width int, centres []int) {
	if len(coords) == 0 {
		return
	}
	writeHeading(b, heading)
	for _, co := range coords {
		line := runewidth.FillRight(itemIndent+co.Name, width)
		for dim, centre := range centres {
			line += strings.Repeat(" ", max(centre-runewidth.StringWidth(line), 1))
			if co.Spans(dim) {
				line += "x"
			} else {
				line += "-"
			}
		}
		b.WriteString("\n" + line)
	}
}
