// Package measure provides character width backends for rolling columns.
//
// The column state machine only needs a width(char) function; this package
// supplies the ones the CLI and HTTP API use. Terminal output measures in
// cells with go-runewidth, so East Asian wide characters take two cells.
package measure

import (
	"github.com/mattn/go-runewidth"

	"github.com/01wneo/RollingText/pkg/charorder"
	"github.com/01wneo/RollingText/pkg/column"
)

// Cells measures characters in terminal cells, multiplied by Scale.
// A zero Scale counts as 1. Empty is always zero wide.
type Cells struct {
	Scale float64
}

// Width implements column.Measurer.
func (c Cells) Width(r rune) float64 {
	if r == charorder.Empty {
		return 0
	}
	scale := c.Scale
	if scale == 0 {
		scale = 1
	}
	return float64(runewidth.RuneWidth(r)) * scale
}

// Fixed measures every visible character as the same width.
type Fixed float64

// Width implements column.Measurer.
func (f Fixed) Width(r rune) float64 {
	if r == charorder.Empty {
		return 0
	}
	return float64(f)
}

// Table looks widths up in a map and defers unknown characters to Fallback.
// A nil Fallback measures unknown characters as zero.
type Table struct {
	Widths   map[rune]float64
	Fallback column.Measurer
}

// Width implements column.Measurer.
func (t Table) Width(r rune) float64 {
	if w, ok := t.Widths[r]; ok {
		return w
	}
	if t.Fallback != nil {
		return t.Fallback.Width(r)
	}
	return 0
}

// TextWidth sums the widths of every character of s.
func TextWidth(m column.Measurer, s string) float64 {
	var total float64
	for _, r := range s {
		total += m.Width(r)
	}
	return total
}

var (
	_ column.Measurer = Cells{}
	_ column.Measurer = Fixed(1)
	_ column.Measurer = Table{}
)
