package charorder

import (
	"slices"
	"testing"
)

var digitPool = NewPool([]rune("0123456789"))

func TestNoAnimation(t *testing.T) {
	tr := NoAnimation.ResolveChar('1', '9', 0, digitPool)
	if !slices.Equal(tr.Chars, []rune{'9'}) {
		t.Errorf("Chars = %q, want [9]", tr.Chars)
	}
	if tr.Animated() {
		t.Error("NoAnimation should produce a static transition")
	}
}

func TestNormal(t *testing.T) {
	tests := []struct {
		name     string
		src, tgt rune
		pool     Pool
		want     string
		dir      Direction
	}{
		{"forward", '2', '5', digitPool, "2345", ScrollDown},
		{"backward", '5', '2', digitPool, "5432", ScrollUp},
		{"equal", '4', '4', digitPool, "4", ScrollDown},
		{"no pool", 'a', '9', nil, "a9", ScrollDown},
		{"from empty", Empty, '2', digitPool, "\x00012", ScrollDown},
		{"to empty", '1', Empty, digitPool, "10\x00", ScrollUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Normal.ResolveChar(tt.src, tt.tgt, 0, tt.pool)
			if string(tr.Chars) != tt.want {
				t.Errorf("Chars = %q, want %q", string(tr.Chars), tt.want)
			}
			if tr.Direction != tt.dir {
				t.Errorf("Direction = %v, want %v", tr.Direction, tt.dir)
			}
		})
	}
}

func TestNormalDoesNotAliasPool(t *testing.T) {
	pool := NewPool([]rune("abcd"))
	tr := Normal.ResolveChar('a', 'c', 0, pool)
	tr.Chars[0] = 'z'
	if pool.String() != "abcd" {
		t.Errorf("pool mutated through transition: %q", pool.String())
	}
}

func TestSameDirection(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		src, tgt rune
		pool     Pool
		want     string
	}{
		{"down no wrap", ScrollDown, '2', '5', digitPool, "2345"},
		{"down wraps past empty", ScrollDown, '8', '1', digitPool, "8901"},
		{"up no wrap", ScrollUp, '5', '2', digitPool, "5432"},
		{"up wraps past empty", ScrollUp, '1', '8', digitPool, "1098"},
		{"down into empty", ScrollDown, '8', Empty, digitPool, "89\x00"},
		{"up from empty", ScrollUp, Empty, '8', digitPool, "\x0098"},
		{"equal", ScrollUp, '3', '3', digitPool, "3"},
		{"no pool", ScrollUp, 'x', '3', nil, "x3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := SameDirection(tt.dir).ResolveChar(tt.src, tt.tgt, 0, tt.pool)
			if string(tr.Chars) != tt.want {
				t.Errorf("Chars = %q, want %q", string(tr.Chars), tt.want)
			}
			if tr.Direction != tt.dir {
				t.Errorf("Direction = %v, want %v", tr.Direction, tt.dir)
			}
		})
	}
}
