package cuberepr

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeMarkdown renders the table as GitHub-flavored Markdown. Markdown has
// no column spans, so values sit in the first dimension column and
// multi-line values are joined with <br>.
func writeMarkdown(w io.Writer, r *Representation) error {
	doc := r.Document()
	numCols := r.columns() + 1

	header := append([]string{fmt.Sprintf("%s (%s)", doc.Name, doc.Units)}, doc.Dims...)
	var rows [][]string
	if len(doc.Shape) > 0 {
		shape := []string{"Shape"}
		for _, n := range doc.Shape {
			shape = append(shape, strconv.Itoa(n))
		}
		rows = append(rows, shape)
	}
	for _, sec := range doc.Sections {
		rows = append(rows, []string{"**" + sec.Heading + "**"})
		for _, row := range sec.Rows {
			if row.Markers != nil {
				rows = append(rows, append([]string{row.Title}, row.Markers...))
				continue
			}
			value := strings.ReplaceAll(row.Value, "\n", lineBreak)
			rows = append(rows, []string{row.Title, value})
		}
	}

	// Column widths, minimum 3 for the separator dashes.
	widths := make([]int, numCols)
	for i := range widths {
		widths[i] = 3
	}
	for _, cells := range append([][]string{header}, rows...) {
		for i, c := range cells {
			if w := runewidth.StringWidth(escapePipes(c)); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}

	if err := writeMarkdownRow(w, header, widths); err != nil {
		return err
	}
	sep := make([]string, numCols)
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		c := ""
		if i < len(cells) {
			c = escapePipes(cells[i])
		}
		padded[i] = runewidth.FillRight(c, width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

func escapePipes(s string) string { return strings.ReplaceAll(s, "|", `\|`) }
