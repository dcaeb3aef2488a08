package token

import "golang.org/x/text/width"

// Caret renders a line of source text followed by a marker line with a
// '^' aligned under the rune at the given 1-based column. Double-width
// runes (most East Asian scripts) occupy two terminal cells, so a plain
// rune-count offset would misalign the marker; Caret consults
// golang.org/x/text/width to budget two cells for any rune in its
// wide/fullwidth classes.
//
// column is 1-based, matching Position.Column.
func Caret(line []rune, column int) string {
	if column < 1 {
		column = 1
	}
	out := make([]rune, 0, len(line)+1)
	out = append(out, line...)
	out = append(out, '\n')

	cells := 0
	for i := 0; i < column-1 && i < len(line); i++ {
		cells += runeCells(line[i])
	}
	for i := 0; i < cells; i++ {
		out = append(out, ' ')
	}
	out = append(out, '^')
	return string(out)
}

func runeCells(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
