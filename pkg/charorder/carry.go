package charorder

import (
	"math/big"
	"slices"
)

// DefaultMaxCycles bounds the number of full turns a carry column makes.
const DefaultMaxCycles = 3

// CarryBit animates decimal numbers like an odometer: every column turns
// once for each unit its prefix value changes, so "95" → "105" spins the
// units wheel a full turn while the tens wheel moves one step.
//
// Columns holding a non-digit on either side (separators, signs, currency
// symbols) do not count towards the numeric prefix and are resolved by
// Fallback instead.
//
// CarryBit caches the per-column plan between BeforeCompute and
// AfterCompute; use one value per goroutine.
type CarryBit struct {
	// MaxCycles caps the number of full turns a column makes.
	// Zero means DefaultMaxCycles.
	MaxCycles int
	// Fallback resolves non-numeric columns. Nil means Normal.
	Fallback CharResolver

	plan *carryPlan
}

type carryPlan struct {
	source, target []rune
	steps          []int
	dirs           []Direction
	numeric        []bool
}

// BeforeCompute precomputes the plan for every column of the pass.
func (c *CarryBit) BeforeCompute(source, target []rune, _ Pools) {
	c.plan = c.computePlan(source, target)
}

// AfterCompute drops the cached plan.
func (c *CarryBit) AfterCompute(_, _ []rune, _ Pools) {
	c.plan = nil
}

// FindCharOrder implements Strategy.
func (c *CarryBit) FindCharOrder(source, target []rune, column int, pools Pools) (Transition, error) {
	src, tgt, err := Align(source, target, column)
	if err != nil {
		return Transition{}, err
	}
	plan := c.plan
	if plan == nil || !slices.Equal(plan.source, source) || !slices.Equal(plan.target, target) {
		plan = c.computePlan(source, target)
	}
	if !plan.numeric[column] {
		fb := c.Fallback
		if fb == nil {
			fb = Normal
		}
		return fb.ResolveChar(src, tgt, column, pools.Find(src, tgt)), nil
	}
	return rollDigits(src, tgt, plan.steps[column], plan.dirs[column]), nil
}

func (c *CarryBit) computePlan(source, target []rune) *carryPlan {
	maxLen := max(len(source), len(target))
	plan := &carryPlan{
		source:  slices.Clone(source),
		target:  slices.Clone(target),
		steps:   make([]int, maxLen),
		dirs:    make([]Direction, maxLen),
		numeric: make([]bool, maxLen),
	}
	cycles := big.NewInt(int64(c.maxCycles()))
	ten := big.NewInt(10)

	var s, t, diff, q, r big.Int
	for i := 0; i < maxLen; i++ {
		src, tgt, _ := Align(source, target, i)
		if !isDigitOrEmpty(src) || !isDigitOrEmpty(tgt) {
			continue
		}
		plan.numeric[i] = true
		s.Mul(&s, ten).Add(&s, big.NewInt(int64(digit(src))))
		t.Mul(&t, ten).Add(&t, big.NewInt(int64(digit(tgt))))

		diff.Sub(&t, &s)
		plan.dirs[i] = ScrollDown
		if diff.Sign() < 0 {
			plan.dirs[i] = ScrollUp
			diff.Neg(&diff)
		}
		q.QuoRem(&diff, ten, &r)
		if q.Cmp(cycles) > 0 {
			q.Set(cycles)
		}
		plan.steps[i] = int(q.Int64())*10 + int(r.Int64())
	}
	return plan
}

func (c *CarryBit) maxCycles() int {
	if c.MaxCycles <= 0 {
		return DefaultMaxCycles
	}
	return c.MaxCycles
}

func rollDigits(src, tgt rune, steps int, dir Direction) Transition {
	if steps == 0 {
		return Transition{Chars: []rune{tgt}, Direction: dir}
	}
	step := 1
	if dir == ScrollUp {
		step = -1
	}
	chars := make([]rune, 0, steps+1)
	chars = append(chars, src)
	d := digit(src)
	for k := 0; k < steps; k++ {
		d = (d + step + 10) % 10
		chars = append(chars, '0'+rune(d))
	}
	// endpoints keep Empty where the texts have no character
	chars[len(chars)-1] = tgt
	return Transition{Chars: chars, Direction: dir}
}

func isDigitOrEmpty(r rune) bool {
	return r == Empty || (r >= '0' && r <= '9')
}

func digit(r rune) int {
	if r == Empty {
		return 0
	}
	return int(r - '0')
}

var (
	_ Strategy     = (*CarryBit)(nil)
	_ ComputeHooks = (*CarryBit)(nil)
)
