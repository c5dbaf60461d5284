package charorder

import (
	"github.com/01wneo/RollingText/pkg/errors"
)

// Transition is the ordered list of characters one column displays on its
// way from source to target, plus the direction the column turns.
//
// With fewer than two characters there is nothing to animate and the column
// rests on the last element (or Empty when there is none).
type Transition struct {
	Chars     []rune
	Direction Direction
}

// Source returns the first character, or Empty for a static transition.
func (t Transition) Source() rune {
	if len(t.Chars) < 2 {
		return Empty
	}
	return t.Chars[0]
}

// Target returns the last character, or Empty when there is none.
func (t Transition) Target() rune {
	if len(t.Chars) == 0 {
		return Empty
	}
	return t.Chars[len(t.Chars)-1]
}

// Animated reports whether the transition has at least two steps.
func (t Transition) Animated() bool {
	return len(t.Chars) >= 2
}

// Strategy decides the transition for one column of a text change.
// Implementations must not mutate source, target or pools.
type Strategy interface {
	// FindCharOrder resolves column, which ranges over
	// [0, max(len(source), len(target))). Columns outside that range are a
	// contract violation and yield an INVALID_COLUMN error.
	FindCharOrder(source, target []rune, column int, pools Pools) (Transition, error)
}

// ComputeHooks is implemented by strategies that need setup or teardown
// around a full multi-column pass. The Manager calls BeforeCompute once
// before resolving the first column and AfterCompute once after the last.
type ComputeHooks interface {
	BeforeCompute(source, target []rune, pools Pools)
	AfterCompute(source, target []rune, pools Pools)
}

// CharResolver resolves a single, already aligned column. pool is the first
// registered pool holding both characters, or nil.
type CharResolver interface {
	ResolveChar(src, tgt rune, column int, pool Pool) Transition
}

// CharResolverFunc adapts a function to CharResolver.
type CharResolverFunc func(src, tgt rune, column int, pool Pool) Transition

// ResolveChar calls f.
func (f CharResolverFunc) ResolveChar(src, tgt rune, column int, pool Pool) Transition {
	return f(src, tgt, column, pool)
}

// Simple is the default strategy template: it right-aligns the two texts,
// looks up a pool holding both characters and hands the pair to Resolver.
// A nil Resolver behaves like Direct.
type Simple struct {
	Resolver CharResolver
}

// FindCharOrder implements Strategy.
func (s Simple) FindCharOrder(source, target []rune, column int, pools Pools) (Transition, error) {
	src, tgt, err := Align(source, target, column)
	if err != nil {
		return Transition{}, err
	}
	r := s.Resolver
	if r == nil {
		r = Direct
	}
	return r.ResolveChar(src, tgt, column, pools.Find(src, tgt)), nil
}

// Align returns the source and target characters of column when both texts
// are right aligned. A side that is shorter than the column reaches yields
// Empty.
func Align(source, target []rune, column int) (src, tgt rune, err error) {
	maxLen := max(len(source), len(target))
	if column < 0 || column >= maxLen {
		return Empty, Empty, errors.New(errors.ErrCodeInvalidColumn,
			"column %d out of range [0,%d)", column, maxLen)
	}
	padSrc := maxLen - len(source)
	padTgt := maxLen - len(target)

	src, tgt = Empty, Empty
	if column >= padSrc {
		src = source[column-padSrc]
	}
	if column >= padTgt {
		tgt = target[column-padTgt]
	}
	return src, tgt, nil
}

// Ensure Simple implements Strategy.
var _ Strategy = Simple{}
