// Package rolling manages a whole line of rolling text: one column per
// character position, fed by a charorder.Manager whenever the text changes.
//
// # Usage
//
//	orders := charorder.NewManager(charorder.WithPool([]rune("0123456789")))
//	txt := rolling.New(orders, measure.Cells{}, 1)
//	_ = txt.SetText("1024")
//	_ = txt.SetText("2048") // animate from 1024 to 2048
//	for _, p := range []float64{0, 0.5, 1} {
//	    _ = txt.Update(p)
//	    draw(txt.Snapshot())
//	}
//	txt.End()
//
// Text is single threaded: drive it from one animation loop.
package rolling

import (
	"github.com/01wneo/RollingText/pkg/charorder"
	"github.com/01wneo/RollingText/pkg/column"
)

// Text is a line of independently rolling columns.
type Text struct {
	orders   *charorder.Manager
	measurer column.Measurer
	height   float64

	columns  []*column.TextColumn
	target   []rune
	progress float64
}

// New creates an empty text. height is the cell height passed to every
// column.
func New(orders *charorder.Manager, m column.Measurer, height float64) *Text {
	if orders == nil {
		orders = charorder.NewManager()
	}
	return &Text{orders: orders, measurer: m, height: height}
}

// SetText starts a transition from what the columns show now to target.
// A target that arrives mid-animation therefore continues from the
// characters on screen instead of jumping back to the previous target.
//
// Columns are right aligned. Missing leading columns are created; leading
// columns the target no longer covers roll out to Empty.
func (t *Text) SetText(target string) error {
	next := []rune(target)

	trs, err := t.orders.ResolveAll(t.visible(), next)
	if err != nil {
		return err
	}

	if missing := len(trs) - len(t.columns); missing > 0 {
		fresh := make([]*column.TextColumn, missing)
		for i := range fresh {
			fresh[i] = column.New(t.measurer, t.height)
		}
		t.columns = append(fresh, t.columns...)
	}
	for i, tr := range trs {
		t.columns[i].SetTransition(tr)
	}

	t.target = next
	t.progress = 0
	return nil
}

// visible returns the character at the baseline of every column, Empty
// included, so the result lines up with the columns.
func (t *Text) visible() []rune {
	out := make([]rune, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.CurrentChar()
	}
	return out
}

// Update moves every column to progress in [0,1].
func (t *Text) Update(progress float64) error {
	for _, c := range t.columns {
		if err := c.Update(progress); err != nil {
			return err
		}
	}
	t.progress = progress
	return nil
}

// End puts every column at rest on its target and drops leading columns
// that rolled out to Empty.
func (t *Text) End() {
	for _, c := range t.columns {
		c.EndAnimation()
	}
	drop := 0
	for drop < len(t.columns) && t.columns[drop].TargetChar() == charorder.Empty {
		drop++
	}
	t.columns = t.columns[drop:]
	t.progress = 1
}

// Columns returns the live columns, leftmost first.
func (t *Text) Columns() []*column.TextColumn { return t.columns }

// Len returns the number of columns.
func (t *Text) Len() int { return len(t.columns) }

// Text returns the most recently set target text.
func (t *Text) Text() string { return string(t.target) }

// Progress returns the last progress value applied.
func (t *Text) Progress() float64 { return t.progress }

// Height returns the cell height.
func (t *Text) Height() float64 { return t.height }

// Orders returns the manager resolving column transitions.
func (t *Text) Orders() *charorder.Manager { return t.orders }

// CurrentText returns the characters currently at the baseline, skipping
// Empty columns.
func (t *Text) CurrentText() string {
	out := make([]rune, 0, len(t.columns))
	for _, c := range t.columns {
		if r := c.CurrentChar(); r != charorder.Empty {
			out = append(out, r)
		}
	}
	return string(out)
}

// Width returns the sum of the interpolated column widths.
func (t *Text) Width() float64 {
	var w float64
	for _, c := range t.columns {
		w += c.CurrentWidth()
	}
	return w
}

// Animating reports whether any column has something to roll.
func (t *Text) Animating() bool {
	for _, c := range t.columns {
		if c.Animating() {
			return true
		}
	}
	return false
}
