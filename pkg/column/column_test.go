package column

import (
	"math"
	"slices"
	"testing"

	"github.com/01wneo/RollingText/pkg/charorder"
	"github.com/01wneo/RollingText/pkg/errors"
)

const (
	height = 10.0
	eps    = 1e-9
)

// widths gives every digit a distinct width so interpolation is observable.
var widths = MeasurerFunc(func(r rune) float64 {
	switch {
	case r == charorder.Empty:
		return 0
	case r >= '0' && r <= '9':
		return 5 + float64(r-'0')
	default:
		return 8
	}
})

func newColumn(chars string, dir charorder.Direction) *TextColumn {
	c := New(widths, height)
	c.SetTransition(charorder.Transition{Chars: []rune(chars), Direction: dir})
	return c
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < eps }

func mustUpdate(t *testing.T, c *TextColumn, progress float64) {
	t.Helper()
	if err := c.Update(progress); err != nil {
		t.Fatalf("Update(%v) error: %v", progress, err)
	}
}

func TestNewColumnIsStaticAndEmpty(t *testing.T) {
	c := New(widths, height)
	if c.Animating() {
		t.Error("new column should be static")
	}
	if c.CurrentChar() != charorder.Empty {
		t.Errorf("CurrentChar() = %q, want Empty", c.CurrentChar())
	}
	if len(c.RenderSlots()) != 0 {
		t.Errorf("RenderSlots() = %v, want none", c.RenderSlots())
	}
	if c.Height() != height {
		t.Errorf("Height() = %v", c.Height())
	}
}

func TestSetTransitionMeasures(t *testing.T) {
	c := newColumn("19", charorder.ScrollDown)

	if c.SourceWidth() != 6 || c.TargetWidth() != 14 {
		t.Errorf("widths = %v/%v, want 6/14", c.SourceWidth(), c.TargetWidth())
	}
	if c.CurrentWidth() != 14 {
		t.Errorf("CurrentWidth() = %v, want max of source and target", c.CurrentWidth())
	}
	if c.Index() != 0 {
		t.Errorf("Index() = %d, want 0", c.Index())
	}
}

func TestStaticTransitionShowsLastChar(t *testing.T) {
	c := New(widths, height)
	c.SetTransition(charorder.Transition{Chars: []rune{'7'}, Direction: charorder.ScrollDown})

	if c.Animating() {
		t.Error("single-char transition should be static")
	}
	if c.CurrentChar() != '7' {
		t.Errorf("CurrentChar() = %q, want '7'", c.CurrentChar())
	}

	c.SetTransition(charorder.Transition{})
	if c.CurrentChar() != charorder.Empty {
		t.Errorf("CurrentChar() = %q, want Empty for empty transition", c.CurrentChar())
	}
	mustUpdate(t, c, 0.5)
	if c.CurrentChar() != charorder.Empty || c.BottomDelta() != 0 {
		t.Errorf("empty transition after update: %q %v", c.CurrentChar(), c.BottomDelta())
	}
}

func TestUpdateAtZero(t *testing.T) {
	c := newColumn("12345", charorder.ScrollDown)
	mustUpdate(t, c, 0)

	if c.Index() != 0 || c.CurrentChar() != '1' {
		t.Errorf("Update(0): index %d char %q, want 0 '1'", c.Index(), c.CurrentChar())
	}
	if c.BottomDelta() != 0 {
		t.Errorf("BottomDelta() = %v, want 0", c.BottomDelta())
	}
}

func TestUpdateAtOne(t *testing.T) {
	for _, chars := range []string{"12", "12345", "9876543210"} {
		c := newColumn(chars, charorder.ScrollUp)
		mustUpdate(t, c, 1)

		n := len(chars)
		if c.Index() != n-1 {
			t.Errorf("%s: Index() = %d, want %d", chars, c.Index(), n-1)
		}
		if c.CurrentChar() != rune(chars[n-1]) {
			t.Errorf("%s: CurrentChar() = %q, want target", chars, c.CurrentChar())
		}

		c.EndAnimation()
		if c.BottomDelta() != 0 {
			t.Errorf("%s: BottomDelta() after end = %v, want 0", chars, c.BottomDelta())
		}
	}
}

func TestUpdateOffsets(t *testing.T) {
	tests := []struct {
		name      string
		chars     string
		dir       charorder.Direction
		progress  float64
		wantIndex int
		wantChar  rune
		wantDelta float64
	}{
		{"down quarter", "123", charorder.ScrollDown, 0.25, 0, '1', 5},
		{"down half", "123", charorder.ScrollDown, 0.5, 1, '2', 0},
		{"down three quarters", "123", charorder.ScrollDown, 0.75, 1, '2', 5},
		{"up quarter", "123", charorder.ScrollUp, 0.25, 0, '1', -5},
		{"pair midway", "19", charorder.ScrollDown, 0.5, 0, '1', 5},
		{"pair up midway", "91", charorder.ScrollUp, 0.4, 0, '9', -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newColumn(tt.chars, tt.dir)
			mustUpdate(t, c, tt.progress)

			if c.Index() != tt.wantIndex {
				t.Errorf("Index() = %d, want %d", c.Index(), tt.wantIndex)
			}
			if c.CurrentChar() != tt.wantChar {
				t.Errorf("CurrentChar() = %q, want %q", c.CurrentChar(), tt.wantChar)
			}
			if !almostEqual(c.BottomDelta(), tt.wantDelta) {
				t.Errorf("BottomDelta() = %v, want %v", c.BottomDelta(), tt.wantDelta)
			}
		})
	}
}

func TestUpdateRejectsInvalidProgress(t *testing.T) {
	c := newColumn("12", charorder.ScrollDown)
	for _, p := range []float64{-0.01, 1.0001, math.NaN(), math.Inf(1)} {
		err := c.Update(p)
		if !errors.Is(err, errors.ErrCodeInvalidProgress) {
			t.Errorf("Update(%v) error = %v, want INVALID_PROGRESS", p, err)
		}
	}
}

func TestWidthInterpolation(t *testing.T) {
	c := newColumn("19", charorder.ScrollDown)
	mustUpdate(t, c, 0.5)

	w1, w2 := widths('1'), widths('9')
	want := w1 + (w2-w1)*0.5
	if !almostEqual(c.CurrentWidth(), want) {
		t.Errorf("CurrentWidth() = %v, want %v", c.CurrentWidth(), want)
	}

	mustUpdate(t, c, 1)
	if c.CurrentWidth() != w2 {
		t.Errorf("CurrentWidth() at end = %v, want %v", c.CurrentWidth(), w2)
	}
}

func TestEndAnimationIsIdempotent(t *testing.T) {
	c := newColumn("1234", charorder.ScrollDown)
	mustUpdate(t, c, 0.6)

	c.EndAnimation()
	char, delta, width, index := c.CurrentChar(), c.BottomDelta(), c.CurrentWidth(), c.Index()
	c.EndAnimation()

	if c.CurrentChar() != '4' {
		t.Errorf("CurrentChar() = %q, want target '4'", c.CurrentChar())
	}
	if c.CurrentChar() != char || c.BottomDelta() != delta || c.CurrentWidth() != width || c.Index() != index {
		t.Error("second EndAnimation() changed state")
	}
	if c.previousBottomDelta != 0 {
		t.Errorf("previousBottomDelta = %v, want 0", c.previousBottomDelta)
	}
}

func TestInterruptedAnimationCarriesOffset(t *testing.T) {
	c := newColumn("123", charorder.ScrollDown)
	mustUpdate(t, c, 0.25)
	carried := c.BottomDelta()
	if carried == 0 {
		t.Fatal("expected a non-zero offset mid-animation")
	}

	c.SetTransition(charorder.Transition{Chars: []rune("ab"), Direction: charorder.ScrollUp})
	if c.BottomDelta() != 0 {
		t.Errorf("BottomDelta() right after SetTransition = %v, want 0", c.BottomDelta())
	}

	mustUpdate(t, c, 0)
	if !almostEqual(c.BottomDelta(), carried) {
		t.Errorf("Update(0) BottomDelta() = %v, want carried %v", c.BottomDelta(), carried)
	}

	mustUpdate(t, c, 0.5)
	want := 0.5*height*-1 + carried*0.5
	if !almostEqual(c.BottomDelta(), want) {
		t.Errorf("Update(0.5) BottomDelta() = %v, want %v", c.BottomDelta(), want)
	}

	mustUpdate(t, c, 1)
	if !almostEqual(c.BottomDelta(), 0) {
		t.Errorf("Update(1) BottomDelta() = %v, want carried offset fully decayed", c.BottomDelta())
	}
}

func TestRestedColumnCarriesNothing(t *testing.T) {
	c := newColumn("12", charorder.ScrollDown)
	mustUpdate(t, c, 0.5)
	c.EndAnimation()

	c.SetTransition(charorder.Transition{Chars: []rune("23"), Direction: charorder.ScrollDown})
	mustUpdate(t, c, 0)
	if c.BottomDelta() != 0 {
		t.Errorf("BottomDelta() = %v, want 0 after a completed animation", c.BottomDelta())
	}
}

func TestRenderSlots(t *testing.T) {
	tests := []struct {
		name     string
		chars    []rune
		dir      charorder.Direction
		progress float64
		want     []Slot
	}{
		{
			name:     "down middle",
			chars:    []rune("123"),
			dir:      charorder.ScrollDown,
			progress: 0.5,
			want:     []Slot{{'3', -10}, {'2', 0}, {'1', 10}},
		},
		{
			name:     "up quarter",
			chars:    []rune("abc"),
			dir:      charorder.ScrollUp,
			progress: 0.25,
			want:     []Slot{{'b', 5}, {'a', -5}},
		},
		{
			name:     "previous is empty",
			chars:    []rune{charorder.Empty, '0', '1'},
			dir:      charorder.ScrollDown,
			progress: 0.5,
			want:     []Slot{{'1', -10}, {'0', 0}},
		},
		{
			name:     "rolling out to empty",
			chars:    []rune{'7', charorder.Empty},
			dir:      charorder.ScrollDown,
			progress: 0.5,
			want:     []Slot{{'7', 5}},
		},
		{
			name:     "at the end",
			chars:    []rune("12"),
			dir:      charorder.ScrollDown,
			progress: 1,
			want:     []Slot{{'2', 0}, {'1', 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(widths, height)
			c.SetTransition(charorder.Transition{Chars: tt.chars, Direction: tt.dir})
			mustUpdate(t, c, tt.progress)

			if got := c.RenderSlots(); !slices.Equal(got, tt.want) {
				t.Errorf("RenderSlots() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderSlotsAfterEnd(t *testing.T) {
	tests := []struct {
		name     string
		chars    string
		progress float64
		want     []Slot
	}{
		{"ended at one", "123", 1, []Slot{{Char: '3'}}},
		{"ended mid roll", "123", 0.25, []Slot{{Char: '3'}}},
		{"ended before start", "123", 0, []Slot{{Char: '3'}}},
		{"empty target", "1\x00", 0.5, []Slot{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newColumn(tt.chars, charorder.ScrollDown)
			mustUpdate(t, c, tt.progress)
			c.EndAnimation()
			if got := c.RenderSlots(); !slices.Equal(got, tt.want) {
				t.Errorf("RenderSlots() = %v, want %v", got, tt.want)
			}
		})
	}
}
