package animation

import "time"

// DefaultDuration is the length of a transition when none is configured.
const DefaultDuration = 750 * time.Millisecond

// Timeline converts elapsed time into eased progress.
type Timeline struct {
	Duration time.Duration
	Easing   Easing
}

// Progress returns the eased progress after elapsed. The result is always in
// [0,1]; a non-positive Duration completes immediately.
func (tl Timeline) Progress(elapsed time.Duration) float64 {
	if tl.Duration <= 0 || elapsed >= tl.Duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	ease := tl.Easing
	if ease == nil {
		ease = Linear
	}
	return clamp01(ease(float64(elapsed) / float64(tl.Duration)))
}
