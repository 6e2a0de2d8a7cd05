// Package renderer turns the freelancer book's records and reports into
// markdown, left to the caller to style for the terminal.
package renderer

import (
	"fmt"
	"strings"
)

// table builds a markdown table row by row.
type table struct {
	strings.Builder
}

// Header writes the header row and its separator.
func (t *table) Header(cells ...string) {
	t.Row(cells...)
	seps := make([]string, len(cells))
	for i := range seps {
		seps[i] = "---"
	}
	t.Row(seps...)
}

// Row writes one table row, escaping pipes so cell content cannot break the
// table.
func (t *table) Row(cells ...string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	fmt.Fprintf(t, "| %s |\n", strings.Join(escaped, " | "))
}
