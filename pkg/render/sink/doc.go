// Package sink serialises rendered frames for other programs.
//
// [RenderJSON] writes one document per transition: timing metadata followed
// by every frame with its columns and visible slots. Options follow the
// functional-option style:
//
//	data, err := sink.RenderJSON(frames,
//	    sink.WithJSONTransition("99", "100"),
//	    sink.WithJSONTiming(30, time.Second),
//	)
package sink
