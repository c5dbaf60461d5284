package charorder

// Empty is the sentinel for "no character at this column". It pads the
// shorter of two texts and is never drawn.
const Empty rune = 0

// Pool is an ordered, deduplicated alphabet used to generate intermediate
// characters. Empty is always its first member. A Pool is immutable once
// built with NewPool.
type Pool []rune

// NewPool builds a pool from chars with Empty prepended. Duplicates are
// collapsed, keeping the first occurrence.
func NewPool(chars []rune) Pool {
	seen := make(map[rune]struct{}, len(chars)+1)
	p := make(Pool, 0, len(chars)+1)
	for _, r := range append([]rune{Empty}, chars...) {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		p = append(p, r)
	}
	return p
}

// Contains reports whether r is a member of the pool.
func (p Pool) Contains(r rune) bool {
	return p.Index(r) >= 0
}

// Index returns the position of r in the pool, or -1.
func (p Pool) Index(r rune) int {
	for i, c := range p {
		if c == r {
			return i
		}
	}
	return -1
}

// String renders the pool without the Empty sentinel.
func (p Pool) String() string {
	out := make([]rune, 0, len(p))
	for _, r := range p {
		if r != Empty {
			out = append(out, r)
		}
	}
	return string(out)
}

// Pools is the ordered list of registered pools. Order is the lookup order.
type Pools []Pool

// Find returns the first pool containing both src and tgt, or nil.
func (ps Pools) Find(src, tgt rune) Pool {
	for _, p := range ps {
		if p.Contains(src) && p.Contains(tgt) {
			return p
		}
	}
	return nil
}
