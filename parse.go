package cuberepr

import (
	"regexp"
	"strings"
)

// headingPattern matches a section heading such as "     Attributes:".
var headingPattern = regexp.MustCompile(`^(\s+)([A-Z][A-Za-z ]*:)$`)

type parseState int

const (
	seekingHeading parseState = iota
	accumulatingBody
)

// parse groups the body lines of a summary under their headings. The first
// line (name and shape) is skipped. Headings are recognised by their
// indentation, which is fixed by the first heading found; lines under an
// unrecognised heading are dropped, as are blank lines. A heading that
// appears with no lines maps to an empty, non-nil slice.
func parse(summary string) map[Heading][]string {
	sections := make(map[Heading][]string)
	lines := strings.Split(summary, "\n")
	if len(lines) < 2 {
		return sections
	}

	state := seekingHeading
	indent := ""
	var current Heading
	var known bool
	for _, line := range lines[1:] {
		if m := headingPattern.FindStringSubmatch(line); m != nil && (state == seekingHeading || m[1] == indent) {
			indent = m[1]
			current, known = headingByLabel[m[2]]
			if known && sections[current] == nil {
				sections[current] = []string{}
			}
			state = accumulatingBody
			continue
		}
		if state != accumulatingBody || !known || strings.TrimSpace(line) == "" {
			continue
		}
		sections[current] = append(sections[current], line)
	}
	return sections
}

// entry is one summary line broken into display parts.
type entry struct {
	title   string
	markers []string
	value   string
	// continuation marks a line with no "key:" prefix, which belongs to
	// the value on the line before it.
	continuation bool
}

// classify splits line according to its heading. A coordinate line ends in
// one marker per dimension; whatever precedes the last ndims fields is the
// coordinate name, so names may hold spaces or any other characters.
func classify(h Heading, line string, ndims int) entry {
	if h.describesDims() {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return entry{}
		}
		split := max(len(fields)-ndims, 1)
		return entry{
			title:   strings.Join(fields[:split], " "),
			markers: fields[split:],
		}
	}
	title, value, ok := strings.Cut(line, ":")
	if !ok {
		return entry{value: strings.TrimSpace(line), continuation: true}
	}
	return entry{title: strings.TrimSpace(title), value: strings.TrimSpace(value)}
}
