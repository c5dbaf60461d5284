package sink

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/01wneo/RollingText/pkg/charorder"
	"github.com/01wneo/RollingText/pkg/column"
	"github.com/01wneo/RollingText/pkg/rolling"
)

func TestRenderJSON(t *testing.T) {
	frames := []rolling.Snapshot{
		{
			Progress: 0.5,
			Width:    2,
			Height:   10,
			Text:     "9",
			Columns: []rolling.ColumnState{
				{Char: charorder.Empty, Width: 0.5, Offset: -5, Slots: []column.Slot{{Char: '1', Offset: -5}}},
				{Char: '9', Width: 1, Offset: 5, Slots: []column.Slot{{Char: '0', Offset: -5}, {Char: '9', Offset: 5}}},
			},
		},
		{Progress: 1, Width: 2, Height: 10, Text: "10"},
	}

	data, err := RenderJSON(frames)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Height != 10 {
		t.Errorf("Height = %v, want 10", out.Height)
	}
	if len(out.Frames) != 2 {
		t.Fatalf("Frames count = %d, want 2", len(out.Frames))
	}
	first := out.Frames[0]
	if len(first.Columns) != 2 {
		t.Fatalf("Columns count = %d, want 2", len(first.Columns))
	}
	if first.Columns[0].Char != "" {
		t.Errorf("Empty char = %q, want \"\"", first.Columns[0].Char)
	}
	if got := first.Columns[1].Slots[0].Char; got != "0" {
		t.Errorf("slot char = %q, want %q", got, "0")
	}
	if out.Frames[1].Text != "10" {
		t.Errorf("rest text = %q, want %q", out.Frames[1].Text, "10")
	}
}

func TestRenderJSONWithOptions(t *testing.T) {
	data, err := RenderJSON(nil,
		WithJSONRunID("run-1"),
		WithJSONTiming(30, 1500*time.Millisecond),
		WithJSONTransition("99", "100"),
		WithJSONEasing("spring"),
	)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.RunID != "run-1" {
		t.Errorf("RunID = %q", out.RunID)
	}
	if out.FPS != 30 || out.DurationMS != 1500 {
		t.Errorf("timing = %d fps %d ms, want 30 fps 1500 ms", out.FPS, out.DurationMS)
	}
	if out.From != "99" || out.To != "100" {
		t.Errorf("transition = %q -> %q", out.From, out.To)
	}
	if out.Easing != "spring" {
		t.Errorf("Easing = %q", out.Easing)
	}
	if out.Frames == nil || len(out.Frames) != 0 {
		t.Errorf("Frames = %v, want empty list", out.Frames)
	}
}

func TestRenderJSONOmitsEmptyMetadata(t *testing.T) {
	data, err := RenderJSON(nil)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"run_id", "fps", "duration_ms", "easing"} {
		if _, ok := raw[key]; ok {
			t.Errorf("key %q present, want omitted", key)
		}
	}
}
