package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/01wneo/RollingText/pkg/cache"
	"github.com/01wneo/RollingText/pkg/errors"
	"github.com/01wneo/RollingText/pkg/render/nodelink"
)

// graphTTL is how long rendered diagrams stay in the cache.
const graphTTL = 7 * 24 * time.Hour

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		flags    settingsFlags
		format   string
		output   string
		detailed bool
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "graph FROM TO",
		Short: "Draw the transition as a Graphviz diagram",
		Long: `Draw one cluster per column showing the characters it rolls through from
FROM to TO. SVG output is rendered with Graphviz and cached.`,
		Example: `  rollingtext graph 19 23 -o roll.svg
  rollingtext graph -f dot --detailed 0995 1005`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(format, nodelink.FormatSVG, nodelink.FormatDOT); err != nil {
				return err
			}
			cfg, err := c.loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			from, to := args[0], args[1]
			prog := newProgress(loggerFromContext(cmd.Context()))

			store, keyer := newCache(noCache)
			defer store.Close()

			cached := true
			key := keyer.ArtifactKey(from, to, cfg.ArtifactKeyOpts(format, detailed))
			data, err := cache.GetOrCompute(cmd.Context(), store, key, graphTTL, func() ([]byte, error) {
				cached = false
				transitions, err := resolveTexts(cfg, from, to)
				if err != nil {
					return nil, err
				}
				return nodelink.Render(cmd.Context(), from, to, transitions, format, nodelink.Options{Detailed: detailed})
			})
			if err != nil {
				return err
			}

			if output == "" {
				_, err := c.out.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			prog.done("Rendered %s diagram", format)
			printFile(c.out, output, cached)
			return nil
		},
	}

	flags.register(cmd, false)
	cmd.Flags().StringVarP(&format, "format", "f", nodelink.FormatSVG, "output format (svg, dot)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label nodes with their step index")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the diagram cache")
	_ = cmd.RegisterFlagCompletionFunc("format", fixedCompletion(nodelink.FormatSVG, nodelink.FormatDOT))

	return cmd
}
