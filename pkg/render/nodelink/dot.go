package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/01wneo/RollingText/pkg/charorder"
)

// EmptyLabel is the node label drawn for the Empty character.
const EmptyLabel = "∅"

// Options configures transition diagram rendering.
type Options struct {
	// Detailed adds the step index to each node label.
	Detailed bool
}

// ToDOT converts per-column transitions to Graphviz DOT format. Each column
// becomes a cluster whose nodes are chained in roll order. The resulting DOT
// string can be rendered using [RenderSVG].
func ToDOT(source, target string, transitions []charorder.Transition, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n", source+" → "+target)
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.3;\n")
	buf.WriteString("  nodesep=0.3;\n")

	for i, t := range transitions {
		buf.WriteString("\n")
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=%q;\n", fmt.Sprintf("column %d (%s)", i, t.Direction))
		buf.WriteString("    style=dashed;\n")
		for j, r := range t.Chars {
			fmt.Fprintf(&buf, "    %q [%s];\n", nodeID(i, j), fmtAttrs(r, j, len(t.Chars), opts.Detailed))
		}
		buf.WriteString("  }\n")
		for j := 1; j < len(t.Chars); j++ {
			fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(i, j-1), nodeID(i, j))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(col, step int) string {
	return fmt.Sprintf("c%d_%d", col, step)
}

func fmtLabel(r rune, step int, detailed bool) string {
	label := EmptyLabel
	if r != charorder.Empty {
		label = string(r)
	}
	if detailed {
		label += "\nstep: " + strconv.Itoa(step)
	}
	return label
}

func fmtAttrs(r rune, step, n int, detailed bool) string {
	attrs := fmt.Sprintf("label=%q", fmtLabel(r, step, detailed))
	switch {
	case r == charorder.Empty:
		attrs += ", style=\"rounded,filled,dashed\", fillcolor=lightgrey"
	case step == n-1:
		attrs += ", penwidth=2"
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// Output formats accepted by [Render].
const (
	FormatSVG = "svg"
	FormatDOT = "dot"
)

// Render produces the transition diagram in format: DOT source or SVG.
func Render(ctx context.Context, source, target string, transitions []charorder.Transition, format string, opts Options) ([]byte, error) {
	dot := ToDOT(source, target, transitions, opts)
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return RenderSVG(ctx, dot)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}
