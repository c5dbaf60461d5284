package charorder

import (
	"strings"

	"github.com/01wneo/RollingText/pkg/errors"
)

// Direction is the sign convention for vertical motion during a roll.
type Direction int

const (
	// ScrollUp moves content upward; offsets are subtracted.
	ScrollUp Direction = -1
	// ScrollDown moves content downward; offsets are added.
	ScrollDown Direction = 1
)

// Unit returns the signed unit used in offset math.
func (d Direction) Unit() float64 {
	if d == ScrollUp {
		return -1
	}
	return 1
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == ScrollUp {
		return ScrollDown
	}
	return ScrollUp
}

func (d Direction) String() string {
	if d == ScrollUp {
		return "up"
	}
	return "down"
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection parses "up" or "down" (also "scroll-up", "scroll_down", ...).
func ParseDirection(s string) (Direction, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	switch strings.TrimPrefix(norm, "scroll") {
	case "up":
		return ScrollUp, nil
	case "down":
		return ScrollDown, nil
	}
	return ScrollDown, errors.New(errors.ErrCodeInvalidInput, "invalid direction %q (valid: up, down)", s)
}
