package terminal

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/01wneo/RollingText/pkg/charorder"
	"github.com/01wneo/RollingText/pkg/rolling"
)

// DefaultReach is the number of rows drawn above and below the baseline.
const DefaultReach = 1

// Options configures terminal rasterisation.
type Options struct {
	// Reach is the number of rows above and below the baseline. Zero uses
	// DefaultReach; negative values draw the baseline only.
	Reach int
	// Baseline styles the row holding the resting characters.
	Baseline lipgloss.Style
	// Faded styles the rows above and below the baseline.
	Faded lipgloss.Style
}

func (o Options) reach() int {
	switch {
	case o.Reach == 0:
		return DefaultReach
	case o.Reach < 0:
		return 0
	}
	return o.Reach
}

// Lines rasterises snap into 2*Reach+1 plain rows. The baseline is the
// middle row. Each slot lands on the row nearest to offset/height, halves
// rounding towards the row below, and every column is padded to the cell
// width of its widest character.
func Lines(snap rolling.Snapshot, opts Options) []string {
	reach := opts.reach()
	rows := make([]strings.Builder, 2*reach+1)

	height := snap.Height
	if height <= 0 {
		height = 1
	}

	for _, col := range snap.Columns {
		cells := make([]string, len(rows))
		width := cellWidth(col)
		for _, slot := range col.Slots {
			row := reach + int(math.Floor(slot.Offset/height+0.5))
			if row < 0 || row >= len(rows) || cells[row] != "" {
				continue
			}
			cells[row] = string(slot.Char)
		}
		for i := range rows {
			rows[i].WriteString(runewidth.FillRight(cells[i], width))
		}
	}

	out := make([]string, len(rows))
	for i := range rows {
		out[i] = rows[i].String()
	}
	return out
}

// View renders snap as a styled multi-line string.
func View(snap rolling.Snapshot, opts Options) string {
	lines := Lines(snap, opts)
	reach := opts.reach()
	for i, line := range lines {
		if i == reach {
			lines[i] = opts.Baseline.Render(line)
		} else {
			lines[i] = opts.Faded.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// Baseline returns only the resting row of snap, unstyled. Columns whose
// current character is Empty are omitted.
func Baseline(snap rolling.Snapshot) string {
	var b strings.Builder
	for _, col := range snap.Columns {
		if col.Char != charorder.Empty {
			b.WriteRune(col.Char)
		}
	}
	return b.String()
}

func cellWidth(col rolling.ColumnState) int {
	w := runewidth.RuneWidth(col.Char)
	for _, s := range col.Slots {
		w = max(w, runewidth.RuneWidth(s.Char))
	}
	return max(w, 1)
}
