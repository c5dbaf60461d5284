package charorder

import (
	"slices"
	"testing"
)

func TestNewPool(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []rune
	}{
		{"digits", "0123", []rune{Empty, '0', '1', '2', '3'}},
		{"duplicates collapsed", "abcab", []rune{Empty, 'a', 'b', 'c'}},
		{"order preserved", "zyx", []rune{Empty, 'z', 'y', 'x'}},
		{"empty input", "", []rune{Empty}},
		{"explicit sentinel", string([]rune{'a', Empty, 'b'}), []rune{Empty, 'a', 'b'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPool([]rune(tt.in))
			if !slices.Equal(got, tt.want) {
				t.Errorf("NewPool(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPoolContains(t *testing.T) {
	p := NewPool([]rune("0123456789"))

	if !p.Contains(Empty) {
		t.Error("every pool should contain Empty")
	}
	if !p.Contains('7') {
		t.Error("pool should contain '7'")
	}
	if p.Contains('a') {
		t.Error("pool should not contain 'a'")
	}
	if got := p.Index('0'); got != 1 {
		t.Errorf("Index('0') = %d, want 1", got)
	}
	if got := p.String(); got != "0123456789" {
		t.Errorf("String() = %q", got)
	}
}

func TestPoolsFind(t *testing.T) {
	digits := NewPool([]rune("0123456789"))
	lower := NewPool([]rune("abcdef"))
	mixed := NewPool([]rune("0abc"))
	pools := Pools{digits, lower, mixed}

	tests := []struct {
		name     string
		src, tgt rune
		want     Pool
	}{
		{"both digits", '1', '9', digits},
		{"both letters", 'a', 'f', lower},
		{"first match wins", '0', '0', digits},
		{"mixed needs third pool", '0', 'a', mixed},
		{"empty and digit", Empty, '5', digits},
		{"no pool", '1', 'z', nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pools.Find(tt.src, tt.tgt)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Find(%q, %q) = %q, want %q", tt.src, tt.tgt, got, tt.want)
			}
		})
	}

	if got := Pools(nil).Find('1', '2'); got != nil {
		t.Errorf("empty Pools.Find() = %q, want nil", got)
	}
}
