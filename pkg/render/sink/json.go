package sink

import (
	"encoding/json"
	"time"

	"github.com/01wneo/RollingText/pkg/charorder"
	"github.com/01wneo/RollingText/pkg/rolling"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	runID    string
	fps      int
	duration time.Duration
	from, to string
	easing   string
}

// WithJSONRunID tags the document with an identifier for the run.
func WithJSONRunID(id string) JSONOption { return func(r *jsonRenderer) { r.runID = id } }

// WithJSONTiming records the frame rate and transition length used to
// produce the frames.
func WithJSONTiming(fps int, d time.Duration) JSONOption {
	return func(r *jsonRenderer) { r.fps = fps; r.duration = d }
}

// WithJSONTransition records the source and target text.
func WithJSONTransition(from, to string) JSONOption {
	return func(r *jsonRenderer) { r.from = from; r.to = to }
}

// WithJSONEasing records the easing name.
func WithJSONEasing(name string) JSONOption { return func(r *jsonRenderer) { r.easing = name } }

type jsonOutput struct {
	RunID      string      `json:"run_id,omitempty"`
	FPS        int         `json:"fps,omitempty"`
	DurationMS int64       `json:"duration_ms,omitempty"`
	Easing     string      `json:"easing,omitempty"`
	Height     float64     `json:"height"`
	From       string      `json:"from"`
	To         string      `json:"to"`
	Frames     []jsonFrame `json:"frames"`
}

type jsonFrame struct {
	Progress float64      `json:"progress"`
	Width    float64      `json:"width"`
	Text     string       `json:"text"`
	Columns  []jsonColumn `json:"columns"`
}

type jsonColumn struct {
	Char   string     `json:"char"`
	Width  float64    `json:"width"`
	Offset float64    `json:"offset"`
	Slots  []jsonSlot `json:"slots,omitempty"`
}

type jsonSlot struct {
	Char   string  `json:"char"`
	Offset float64 `json:"offset"`
}

// RenderJSON exports a sequence of frames as a pretty-printed JSON document.
// Empty characters are written as empty strings.
func RenderJSON(frames []rolling.Snapshot, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		RunID:      r.runID,
		FPS:        r.fps,
		DurationMS: r.duration.Milliseconds(),
		Easing:     r.easing,
		From:       r.from,
		To:         r.to,
		Frames:     make([]jsonFrame, 0, len(frames)),
	}
	if len(frames) > 0 {
		out.Height = frames[0].Height
	}
	for _, f := range frames {
		out.Frames = append(out.Frames, buildJSONFrame(f))
	}

	return json.MarshalIndent(out, "", "  ")
}

func buildJSONFrame(s rolling.Snapshot) jsonFrame {
	f := jsonFrame{
		Progress: s.Progress,
		Width:    s.Width,
		Text:     s.Text,
		Columns:  make([]jsonColumn, 0, len(s.Columns)),
	}
	for _, c := range s.Columns {
		jc := jsonColumn{
			Char:   charString(c.Char),
			Width:  c.Width,
			Offset: c.Offset,
		}
		for _, slot := range c.Slots {
			jc.Slots = append(jc.Slots, jsonSlot{Char: charString(slot.Char), Offset: slot.Offset})
		}
		f.Columns = append(f.Columns, jc)
	}
	return f
}

func charString(r rune) string {
	if r == charorder.Empty {
		return ""
	}
	return string(r)
}
