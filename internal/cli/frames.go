package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/01wneo/RollingText/pkg/config"
	"github.com/01wneo/RollingText/pkg/measure"
	"github.com/01wneo/RollingText/pkg/render/sink"
)

// framesCommand creates the frames command.
func (c *CLI) framesCommand() *cobra.Command {
	var (
		flags  settingsFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "frames FROM TO",
		Short: "Write the frames of a transition as JSON",
		Long: `Compute every frame of the transition from FROM to TO at the configured
frame rate and write them as a JSON document, for playback by other tools.`,
		Example: `  rollingtext frames 19 23
  rollingtext frames --fps 60 --easing spring -o frames.json 99 100`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(cmd.Context()))

			data, n, err := renderFrames(cfg, args[0], args[1], uuid.NewString())
			if err != nil {
				return err
			}

			if output == "" {
				_, err := c.out.Write(append(data, '\n'))
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			prog.done("Rendered %d frames", n)
			printFile(c.out, output, false)
			return nil
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// renderFrames produces the JSON frame document for from → to and the
// number of frames it holds.
func renderFrames(cfg config.Config, from, to, runID string) ([]byte, int, error) {
	if _, err := resolveTexts(cfg, from, to); err != nil {
		return nil, 0, err
	}
	player, err := cfg.Player()
	if err != nil {
		return nil, 0, err
	}
	txt, err := cfg.NewText(measure.Cells{})
	if err != nil {
		return nil, 0, err
	}
	if err := txt.SetText(from); err != nil {
		return nil, 0, err
	}
	txt.End()
	if err := txt.SetText(to); err != nil {
		return nil, 0, err
	}

	frames, err := player.Frames(txt)
	if err != nil {
		return nil, 0, err
	}
	data, err := sink.RenderJSON(frames,
		sink.WithJSONRunID(runID),
		sink.WithJSONTiming(player.FPS, player.Timeline.Duration),
		sink.WithJSONTransition(from, to),
		sink.WithJSONEasing(cfg.Easing),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("render frames: %w", err)
	}
	return data, len(frames), nil
}
