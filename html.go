package cuberepr

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"
)

// CSS classes carried by the rendered table.
const (
	ClassTitle      = "iris-title"
	ClassWord       = "iris-word-cell"
	ClassSubheading = "iris-subheading-cell"
	ClassInclusion  = "iris-inclusion-cell"
)

const (
	rowOpen   = `<tr class="iris">`
	rowClose  = `</tr>`
	cellEnd   = `</td>`
	lineBreak = `<br>`
)

const pageFormat = `<style>
  a.iris {
      text-decoration: none !important;
  }
  details.iris > summary {
      cursor: pointer;
      font-family: monaco, monospace;
  }
  table.iris {
      white-space: pre;
      border: 1px solid;
      border-color: #9c9c9c;
      font-family: monaco, monospace;
  }
  th.iris {
      background: #303f3f;
      color: #e0e0e0;
      border-left: 1px solid;
      border-color: #9c9c9c;
      font-size: 1.05em;
      min-width: 50px;
      max-width: 125px;
  }
  tr.iris :first-child {
      border-right: 1px solid #9c9c9c !important;
  }
  td.iris-title {
      background: #d5dcdf;
      border-top: 1px solid #9c9c9c;
      font-weight: bold;
  }
  .iris-word-cell {
      text-align: left !important;
      white-space: pre;
  }
  .iris-subheading-cell {
      padding-left: 2em !important;
  }
  .iris-inclusion-cell {
      padding-right: 1em !important;
  }
</style>
<details class="iris" open>
<summary>%s</summary>
<table class="iris" id="%s">
%s
%s
%s
</table>
</details>
`

// HTML renders the representation as a table inside a collapsible details
// element. Repeated calls return the same markup.
func (r *Representation) HTML() string {
	shape := ""
	if r.ndims > 0 {
		shape = r.makeShapesRow()
	}
	summary, _, _ := strings.Cut(r.cubeStr, "\n")
	return fmt.Sprintf(pageFormat,
		html.EscapeString(strings.Join(strings.Fields(summary), " ")),
		html.EscapeString(r.id),
		r.makeHeader(),
		shape,
		r.makeContent(),
	)
}

func writeHTML(w io.Writer, r *Representation) error {
	_, err := io.WriteString(w, r.HTML())
	return err
}

// makeHeader builds the header row: name and units, then one cell per
// dimension name. A scalar cube gets one empty cell over its single content
// column. Cells are newline separated.
func (r *Representation) makeHeader() string {
	cells := []string{rowOpen}
	cells = append(cells, headerCell(fmt.Sprintf("%s (%s)", r.name, r.units)))
	for _, name := range r.names {
		cells = append(cells, headerCell(name))
	}
	if r.ndims == 0 {
		cells = append(cells, headerCell(""))
	}
	cells = append(cells, rowClose)
	return strings.Join(cells, "\n")
}

func headerCell(content string) string {
	return fmt.Sprintf(`<th class="iris %s">%s</th>`, ClassWord, html.EscapeString(content))
}

// makeShapesRow builds the row holding the extent of each dimension.
func (r *Representation) makeShapesRow() string {
	cells := []string{rowOpen, cell(ClassWord+" "+ClassSubheading, "Shape")}
	for _, n := range r.shapes {
		cells = append(cells, cell("iris "+ClassInclusion, strconv.Itoa(n)))
	}
	cells = append(cells, rowClose)
	return strings.Join(cells, "\n")
}

func cell(class, content string) string {
	return fmt.Sprintf(`    <td class="%s">%s</td>`, class, html.EscapeString(content))
}

// makeTitleRow builds a section heading row: the title with its trailing
// colon removed, then an empty cell per column.
func (r *Representation) makeTitleRow(title string) []string {
	title = strings.TrimSuffix(strings.TrimSpace(title), ":")
	row := []string{rowOpen, cell(ClassTitle+" "+ClassWord, title)}
	for range r.columns() {
		row = append(row, cell(ClassTitle, ""))
	}
	return append(row, rowClose)
}

// makeInclusionRow builds a coordinate row with one x/- marker cell per
// dimension.
func (r *Representation) makeInclusionRow(title string, markers []string) []string {
	row := []string{rowOpen, subtitleCell(title)}
	for _, m := range markers {
		row = append(row, cell(ClassInclusion, m))
	}
	return append(row, rowClose)
}

// makeSpanRow builds a row whose body is a single cell spanning colSpan
// columns.
func (r *Representation) makeSpanRow(title, body string, colSpan int) []string {
	return []string{
		rowOpen,
		subtitleCell(title),
		fmt.Sprintf(`    <td class="%s" colspan="%d">%s</td>`, ClassWord, colSpan, html.EscapeString(body)),
		rowClose,
	}
}

func subtitleCell(title string) string {
	return cell(ClassWord+" "+ClassSubheading, "\t"+strings.TrimSuffix(title, ":"))
}

// expandLastCell appends text to the content of the cell held in element,
// on a new line.
func (r *Representation) expandLastCell(element, text string) string {
	text = lineBreak + html.EscapeString(text)
	i := strings.LastIndex(element, cellEnd)
	if i < 0 {
		return element + text
	}
	return element[:i] + text + element[i:]
}

// makeContent builds a title row for every populated section followed by a
// row per line. Coordinate lines become inclusion rows; everything else
// becomes a spanning row. Lines continuing a multi-line value are folded
// into the previous row's cell.
func (r *Representation) makeContent() string {
	var elements []string
	for _, h := range headings {
		lines := r.sections[h]
		if len(lines) == 0 {
			continue
		}
		elements = append(elements, r.makeTitleRow(h.String())...)
		expandable := false
		for _, line := range lines {
			e := classify(h, line, r.ndims)
			switch {
			case h.describesDims():
				elements = append(elements, r.makeInclusionRow(e.title, e.markers)...)
			case e.continuation && expandable:
				last := len(elements) - 2
				elements[last] = r.expandLastCell(elements[last], e.value)
			default:
				elements = append(elements, r.makeSpanRow(e.title, e.value, r.columns())...)
				expandable = true
			}
		}
	}
	return strings.Join(elements, "\n")
}
