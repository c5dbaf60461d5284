package animation

import (
	"context"
	"fmt"
	"time"

	"github.com/01wneo/RollingText/pkg/observability"
	"github.com/01wneo/RollingText/pkg/rolling"
)

// DefaultFPS is the frame rate used when Player.FPS is not positive.
const DefaultFPS = 30

// FrameFunc receives each rendered frame. Returning an error stops playback.
type FrameFunc func(rolling.Snapshot) error

// Player drives a rolling.Text through a Timeline.
type Player struct {
	FPS      int
	Timeline Timeline
}

func (p Player) fps() int {
	if p.FPS <= 0 {
		return DefaultFPS
	}
	return p.FPS
}

// FrameCount is the number of timed frames for one transition, excluding
// the final rest frame.
func (p Player) FrameCount() int {
	n := int(p.Timeline.Duration.Seconds()*float64(p.fps()) + 0.5)
	return max(n, 1)
}

// Run plays the pending transition of text in real time on the calling
// goroutine. When the timeline completes or ctx is cancelled, the text is
// ended and a final rest frame is delivered. Cancellation returns ctx.Err().
func (p Player) Run(ctx context.Context, text *rolling.Text, onFrame FrameFunc) (err error) {
	hooks := observability.Animation()
	hooks.OnAnimationStart(ctx, text.CurrentText(), text.Text(), text.Len())

	start := time.Now()
	frames := 0
	defer func() {
		hooks.OnAnimationEnd(ctx, frames, time.Since(start), err)
	}()

	ticker := time.NewTicker(time.Second / time.Duration(p.fps()))
	defer ticker.Stop()

	for {
		progress := p.Timeline.Progress(time.Since(start))
		if progress >= 1 {
			break
		}
		if err := text.Update(progress); err != nil {
			return fmt.Errorf("update frame %d: %w", frames, err)
		}
		hooks.OnFrame(ctx, frames, progress)
		if err := onFrame(text.Snapshot()); err != nil {
			return err
		}
		frames++

		select {
		case <-ctx.Done():
			text.End()
			if ferr := onFrame(text.Snapshot()); ferr != nil {
				return ferr
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}

	text.End()
	hooks.OnFrame(ctx, frames, 1)
	frames++
	return onFrame(text.Snapshot())
}

// Frames computes the pending transition of text offline. It returns
// FrameCount evenly spaced frames followed by the rest frame, and leaves
// text ended.
func (p Player) Frames(text *rolling.Text) ([]rolling.Snapshot, error) {
	n := p.FrameCount()
	out := make([]rolling.Snapshot, 0, n+1)
	for i := range n {
		elapsed := time.Duration(int64(p.Timeline.Duration) * int64(i) / int64(n))
		if err := text.Update(p.Timeline.Progress(elapsed)); err != nil {
			return nil, fmt.Errorf("update frame %d: %w", i, err)
		}
		out = append(out, text.Snapshot())
	}
	text.End()
	return append(out, text.Snapshot()), nil
}
