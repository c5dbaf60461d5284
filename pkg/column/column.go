// Package column implements the animation state machine of a single rolling
// text column.
//
// A [TextColumn] receives a [charorder.Transition] whenever the text changes
// and a progress value in [0,1] on every animation tick. From those it
// derives what to draw: the current character, its vertical offset, the
// neighbouring characters sliding in and out, and an interpolated width.
//
// When a new transition arrives before the previous one finished, the
// column keeps the offset it had reached and lets it decay to zero over the
// new animation, so the text never jumps.
package column

import (
	"math"

	"github.com/01wneo/RollingText/pkg/charorder"
	"github.com/01wneo/RollingText/pkg/errors"
)

// Measurer returns the display width of a character.
type Measurer interface {
	Width(r rune) float64
}

// MeasurerFunc adapts a function to Measurer.
type MeasurerFunc func(r rune) float64

// Width calls f.
func (f MeasurerFunc) Width(r rune) float64 { return f(r) }

// Slot is one character to draw and its vertical offset from the baseline.
type Slot struct {
	Char   rune
	Offset float64
}

// TextColumn animates one character position.
//
// It is Static while its transition has fewer than two characters and
// Animating otherwise. TextColumn is not safe for concurrent use.
type TextColumn struct {
	measurer Measurer
	height   float64

	transition charorder.Transition

	index               int
	currentChar         rune
	currentWidth        float64
	bottomDelta         float64
	previousBottomDelta float64

	sourceWidth float64
	targetWidth float64
}

// New creates a static, empty column. height is the vertical extent of one
// character cell.
func New(m Measurer, height float64) *TextColumn {
	c := &TextColumn{measurer: m, height: height, currentChar: charorder.Empty}
	c.Measure()
	return c
}

// SetTransition replaces the active transition. The offset reached so far
// is carried over and decays during the next animation.
func (c *TextColumn) SetTransition(t charorder.Transition) {
	c.transition = t
	if !t.Animated() {
		c.currentChar = t.Target()
	}
	c.Measure()
	c.index = 0
	c.previousBottomDelta = c.bottomDelta
	c.bottomDelta = 0
}

// Measure re-measures the source and target characters and resets the
// current width to the wider of the two.
func (c *TextColumn) Measure() {
	c.sourceWidth = c.measurer.Width(c.SourceChar())
	c.targetWidth = c.measurer.Width(c.TargetChar())
	c.currentWidth = max(c.sourceWidth, c.targetWidth)
}

// Update advances the column to progress, which must lie in [0,1].
func (c *TextColumn) Update(progress float64) error {
	if math.IsNaN(progress) || progress < 0 || progress > 1 {
		return errors.New(errors.ErrCodeInvalidProgress, "progress %v outside [0,1]", progress)
	}

	chars := c.transition.Chars
	carried := c.previousBottomDelta * (1 - progress)
	if len(chars) == 0 {
		c.index = 0
		c.currentChar = charorder.Empty
		c.bottomDelta = carried
		c.currentWidth = c.measurer.Width(charorder.Empty)
		return nil
	}

	scaled := float64(len(chars)-1) * progress
	c.index = min(max(int(math.Floor(scaled)), 0), len(chars)-1)
	c.currentChar = chars[c.index]

	fraction := scaled - float64(c.index)
	c.bottomDelta = fraction*c.height*c.transition.Direction.Unit() + carried

	w := c.measurer.Width(c.currentChar)
	if c.index+1 < len(chars) {
		next := c.measurer.Width(chars[c.index+1])
		c.currentWidth = w + (next-w)*progress
	} else {
		c.currentWidth = w
	}
	return nil
}

// EndAnimation forces the rest state: the target character with no offset.
// The transition collapses to the target alone, so RenderSlots afterwards
// returns only the target (or nothing when the target is Empty).
func (c *TextColumn) EndAnimation() {
	target := c.TargetChar()
	c.transition = charorder.Transition{Chars: []rune{target}, Direction: c.transition.Direction}
	c.index = 0
	c.currentChar = target
	c.bottomDelta = 0
	c.previousBottomDelta = 0
	c.Measure()
}

// RenderSlots returns the characters to draw, up to three: the next
// character one cell against the direction of travel, the current one at
// the bottom delta, and the previous one a cell along the direction.
// Out-of-range and Empty characters are skipped.
func (c *TextColumn) RenderSlots() []Slot {
	shift := c.height * c.transition.Direction.Unit()
	slots := make([]Slot, 0, 3)
	add := func(idx int, offset float64) {
		chars := c.transition.Chars
		if idx >= 0 && idx < len(chars) && chars[idx] != charorder.Empty {
			slots = append(slots, Slot{Char: chars[idx], Offset: offset})
		}
	}
	add(c.index+1, c.bottomDelta-shift)
	add(c.index, c.bottomDelta)
	add(c.index-1, c.bottomDelta+shift)
	return slots
}

// Transition returns the active transition.
func (c *TextColumn) Transition() charorder.Transition { return c.transition }

// Animating reports whether the active transition has something to roll.
func (c *TextColumn) Animating() bool { return c.transition.Animated() }

// Index returns the position within the transition shown at the baseline.
func (c *TextColumn) Index() int { return c.index }

// CurrentChar returns the character at the baseline.
func (c *TextColumn) CurrentChar() rune { return c.currentChar }

// CurrentWidth returns the interpolated column width.
func (c *TextColumn) CurrentWidth() float64 { return c.currentWidth }

// BottomDelta returns the vertical offset of the current character.
func (c *TextColumn) BottomDelta() float64 { return c.bottomDelta }

// SourceChar returns the first character of an animated transition, or Empty.
func (c *TextColumn) SourceChar() rune { return c.transition.Source() }

// TargetChar returns the character the column rests on when done.
func (c *TextColumn) TargetChar() rune { return c.transition.Target() }

// SourceWidth returns the measured width of the source character.
func (c *TextColumn) SourceWidth() float64 { return c.sourceWidth }

// TargetWidth returns the measured width of the target character.
func (c *TextColumn) TargetWidth() float64 { return c.targetWidth }

// Height returns the cell height the column was created with.
func (c *TextColumn) Height() float64 { return c.height }
