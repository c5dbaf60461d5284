package measure

import (
	"testing"

	"github.com/01wneo/RollingText/pkg/charorder"
)

func TestCells(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		r     rune
		want  float64
	}{
		{"ascii", 0, 'a', 1},
		{"digit scaled", 2, '7', 2},
		{"wide cjk", 0, '世', 2},
		{"wide cjk scaled", 0.5, '界', 1},
		{"empty sentinel", 3, charorder.Empty, 0},
		{"combining mark", 0, '́', 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Cells{Scale: tt.scale}).Width(tt.r); got != tt.want {
				t.Errorf("Width(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestFixed(t *testing.T) {
	f := Fixed(12)
	if f.Width('x') != 12 || f.Width('世') != 12 {
		t.Error("Fixed should measure every visible character the same")
	}
	if f.Width(charorder.Empty) != 0 {
		t.Error("Fixed should measure Empty as zero")
	}
}

func TestTable(t *testing.T) {
	tbl := Table{
		Widths:   map[rune]float64{'1': 4, 'W': 14},
		Fallback: Fixed(9),
	}
	if got := tbl.Width('1'); got != 4 {
		t.Errorf("Width('1') = %v, want 4", got)
	}
	if got := tbl.Width('z'); got != 9 {
		t.Errorf("Width('z') = %v, want fallback 9", got)
	}
	if got := (Table{}).Width('z'); got != 0 {
		t.Errorf("Width without fallback = %v, want 0", got)
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth(Cells{}, "ab世"); got != 4 {
		t.Errorf("TextWidth() = %v, want 4", got)
	}
	if got := TextWidth(Fixed(2), ""); got != 0 {
		t.Errorf("TextWidth(\"\") = %v, want 0", got)
	}
}
