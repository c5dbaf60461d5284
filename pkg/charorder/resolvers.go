package charorder

var (
	// Direct cuts from source to target with no intermediate characters,
	// even when both are equal.
	Direct CharResolver = CharResolverFunc(direct)

	// NoAnimation jumps straight to the target.
	NoAnimation CharResolver = CharResolverFunc(func(_, tgt rune, _ int, _ Pool) Transition {
		return Transition{Chars: []rune{tgt}, Direction: ScrollDown}
	})

	// Normal rolls linearly through the pool. Moving towards the end of the
	// pool scrolls down, moving towards its start scrolls up.
	Normal CharResolver = CharResolverFunc(normal)
)

func direct(src, tgt rune, _ int, _ Pool) Transition {
	return Transition{Chars: []rune{src, tgt}, Direction: ScrollDown}
}

func normal(src, tgt rune, column int, pool Pool) Transition {
	if src == tgt {
		return Transition{Chars: []rune{tgt}, Direction: ScrollDown}
	}
	if pool == nil {
		return direct(src, tgt, column, pool)
	}
	from, to := pool.Index(src), pool.Index(tgt)
	if from < to {
		return Transition{Chars: clone(pool[from : to+1]), Direction: ScrollDown}
	}
	chars := make([]rune, 0, from-to+1)
	for i := from; i >= to; i-- {
		chars = append(chars, pool[i])
	}
	return Transition{Chars: chars, Direction: ScrollUp}
}

// SameDirection returns a resolver that always turns dir, wrapping around the
// end of the pool. The wrap skips the Empty slot unless Empty is the source
// or the target, so "9" → "1" over digits reads 9 0 1 rather than 9 _ 0 1.
func SameDirection(dir Direction) CharResolver {
	return CharResolverFunc(func(src, tgt rune, column int, pool Pool) Transition {
		if src == tgt {
			return Transition{Chars: []rune{tgt}, Direction: dir}
		}
		if pool == nil {
			return Transition{Chars: []rune{src, tgt}, Direction: dir}
		}
		step := 1
		if dir == ScrollUp {
			step = -1
		}
		n := len(pool)
		i := pool.Index(src)
		chars := []rune{src}
		for pool[i] != tgt {
			i = (i + step + n) % n
			if pool[i] == Empty && tgt != Empty {
				continue
			}
			chars = append(chars, pool[i])
		}
		return Transition{Chars: chars, Direction: dir}
	})
}

func clone(rs []rune) []rune {
	return append([]rune(nil), rs...)
}
