package rolling

import "github.com/01wneo/RollingText/pkg/column"

// Snapshot is the drawable state of a Text at one instant.
type Snapshot struct {
	Progress float64
	Width    float64
	Height   float64
	Text     string
	Columns  []ColumnState
}

// ColumnState is the drawable state of one column.
type ColumnState struct {
	Char   rune
	Width  float64
	Offset float64
	Slots  []column.Slot
}

// Snapshot captures the current state of every column.
func (t *Text) Snapshot() Snapshot {
	s := Snapshot{
		Progress: t.progress,
		Width:    t.Width(),
		Height:   t.height,
		Text:     t.CurrentText(),
		Columns:  make([]ColumnState, len(t.columns)),
	}
	for i, c := range t.columns {
		s.Columns[i] = ColumnState{
			Char:   c.CurrentChar(),
			Width:  c.CurrentWidth(),
			Offset: c.BottomDelta(),
			Slots:  c.RenderSlots(),
		}
	}
	return s
}
