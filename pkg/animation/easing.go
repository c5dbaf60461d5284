package animation

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/harmonica"

	"github.com/01wneo/RollingText/pkg/errors"
)

// Easing maps linear time in [0,1] to animation progress in [0,1].
type Easing func(t float64) float64

// Easing names accepted by ParseEasing.
const (
	EasingLinear    = "linear"
	EasingIn        = "ease-in"
	EasingOut       = "ease-out"
	EasingInOut     = "ease-in-out"
	EasingSpring    = "spring"
	DefaultEasing   = EasingInOut
	springFPS       = 120
	springFrequency = 6.0
)

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseIn starts slow (cubic).
func EaseIn(t float64) float64 { return t * t * t }

// EaseOut ends slow (cubic).
func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOut starts and ends slow (cubic).
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Spring returns a critically damped spring curve. The spring is simulated
// once with harmonica and sampled, so the easing is deterministic and never
// overshoots.
func Spring(fps int, frequency float64) Easing {
	if fps <= 0 {
		fps = springFPS
	}
	if frequency <= 0 {
		frequency = springFrequency
	}
	s := harmonica.NewSpring(harmonica.FPS(fps), frequency, 1.0)

	samples := []float64{0}
	var pos, vel float64
	for i := 0; i < fps*10 && pos < 0.999; i++ {
		pos, vel = s.Update(pos, vel, 1)
		samples = append(samples, clamp01(pos))
	}
	samples[len(samples)-1] = 1

	return func(t float64) float64 {
		t = clamp01(t)
		x := t * float64(len(samples)-1)
		i := int(math.Floor(x))
		if i >= len(samples)-1 {
			return 1
		}
		frac := x - float64(i)
		return clamp01(samples[i] + (samples[i+1]-samples[i])*frac)
	}
}

var easings = map[string]func() Easing{
	EasingLinear: func() Easing { return Linear },
	EasingIn:     func() Easing { return EaseIn },
	EasingOut:    func() Easing { return EaseOut },
	EasingInOut:  func() Easing { return EaseInOut },
	EasingSpring: func() Easing { return Spring(springFPS, springFrequency) },
}

// EasingNames lists the accepted easing names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseEasing returns the easing registered under name. An empty name
// selects DefaultEasing.
func ParseEasing(name string) (Easing, error) {
	if name == "" {
		name = DefaultEasing
	}
	build, ok := easings[strings.ToLower(name)]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"unknown easing %q (valid: %s)", name, strings.Join(EasingNames(), ", "))
	}
	return build(), nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
