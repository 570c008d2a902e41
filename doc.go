// Package cuberepr renders the summary of a multi-dimensional labeled data
// array (a "cube") as an HTML table for display in notebooks.
//
// A cube's text summary names the cube and its dimensions on the first line
// and lists its metadata under indented headings:
//
//	thingness / (1)      (wibble: 2; latitude: 3; longitude: 4)
//	     Dimension coordinates:
//	          wibble          x           -            -
//	          latitude        -           x            -
//	          longitude       -           -            x
//
// [New] captures a [Cube] and parses its summary into sections keyed by
// [Heading]. [Representation.HTML] lays those sections out as a table with
// one column per dimension:
//
//	r := cuberepr.New(c)
//	fmt.Println(r.HTML())
//
// # Table layout
//
// The header row holds the cube name and units followed by the dimension
// names; dimensions without a dimension coordinate are shown as
// [AnonymousDim]. The second row holds the extent of each dimension. Each
// populated section then contributes a title row and one row per line:
//
//   - coordinate lines become inclusion rows with an "x" or "-" cell per
//     dimension, showing whether the coordinate spans it;
//   - scalar coordinates, attributes and cell methods become rows with one
//     cell spanning every dimension column. Values spread over several
//     lines share that cell, separated by <br>.
//
// Derived coordinates are listed under the auxiliary coordinates heading.
// Sections missing from the summary never appear in the output.
//
// Cells carry the CSS classes [ClassTitle], [ClassWord], [ClassSubheading]
// and [ClassInclusion]; the rendered markup embeds a matching style sheet
// and wraps the table in a collapsible details element.
//
// # Other formats
//
// [Write] and [Marshal] render a cube in any [Format]: HTML, Markdown, JSON
// and YAML (both carrying a [Document]), or the raw text summary. Use
// [ParseFormat] to turn a flag value into a [Format].
//
// # Malformed summaries
//
// The summary is trusted. Lines that do not follow the heading and body
// layout are rendered as best they can be; the result is not specified.
package cuberepr
