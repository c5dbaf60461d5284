// Package render groups the output formats for rolling text.
//
// # Overview
//
// Rendering consumes [rolling.Snapshot] values produced by the animation
// driver and never mutates animation state. Three outputs are provided:
//
//   - Terminal rows (in [terminal] subpackage)
//   - JSON frame documents (in [sink] subpackage)
//   - Transition diagrams via Graphviz (in [nodelink] subpackage)
//
// # Terminal
//
// The [terminal] subpackage rasterises a snapshot into rows of cells,
// placing each rolling character on the row nearest its vertical offset.
//
//	fmt.Println(terminal.View(text.Snapshot(), terminal.Options{}))
//
// # JSON
//
// The [sink] subpackage writes a whole frame sequence, with timing metadata,
// as one JSON document for external players.
//
//	data, err := sink.RenderJSON(frames, sink.WithJSONTiming(30, time.Second))
//
// # Transition Diagrams
//
// The [nodelink] subpackage draws the character path of every column as a
// Graphviz cluster.
//
//	dot := nodelink.ToDOT("98", "101", transitions, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [rolling.Snapshot]: github.com/01wneo/RollingText/pkg/rolling#Snapshot
// [terminal]: github.com/01wneo/RollingText/pkg/render/terminal
// [sink]: github.com/01wneo/RollingText/pkg/render/sink
// [nodelink]: github.com/01wneo/RollingText/pkg/render/nodelink
package render
