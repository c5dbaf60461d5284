// Package nodelink renders character transitions as Graphviz diagrams.
//
// Every column of a transition is drawn as a dashed cluster holding the
// characters it rolls through, chained by arrows in roll order. The final
// character has a heavier outline and Empty is drawn as a grey dashed box.
//
//	dot := nodelink.ToDOT("98", "101", transitions, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [RenderSVG] uses [github.com/goccy/go-graphviz] in process, so no external
// Graphviz installation is required.
package nodelink
