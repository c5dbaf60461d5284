package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/01wneo/RollingText/pkg/animation"
	"github.com/01wneo/RollingText/pkg/errors"
	"github.com/01wneo/RollingText/pkg/measure"
	"github.com/01wneo/RollingText/pkg/render/terminal"
	"github.com/01wneo/RollingText/pkg/rolling"
)

// linePlayer draws frames over a single terminal line using carriage
// returns, so it works in pipes and terminals without a TUI.
type linePlayer struct {
	w     io.Writer
	width int
}

func newLinePlayer(w io.Writer) *linePlayer {
	return &linePlayer{w: w}
}

// draw overwrites the line with the baseline row of s.
func (p *linePlayer) draw(s rolling.Snapshot) error {
	line := terminal.Lines(s, terminal.Options{Reach: -1})[0]
	w := runewidth.StringWidth(line)
	pad := strings.Repeat(" ", max(0, p.width-w))
	p.width = w
	_, err := fmt.Fprintf(p.w, "\r%s%s", StyleHighlight.Render(line), pad)
	return err
}

// finish ends the line.
func (p *linePlayer) finish() {
	fmt.Fprintln(p.w)
	p.width = 0
}

// playCommand creates the play command.
func (c *CLI) playCommand() *cobra.Command {
	var (
		flags settingsFlags
		from  string
		pause time.Duration
	)

	cmd := &cobra.Command{
		Use:   "play TEXT [TEXT...]",
		Short: "Roll through one or more texts on a single line",
		Long: `Roll from --from (empty by default) through every TEXT in order on a
single terminal line, pausing between texts.`,
		Example: `  rollingtext play 98 99 100 101
  rollingtext play --strategy carry-bit --from 995 1005`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			for _, text := range append([]string{from}, args...) {
				if err := errors.ValidateText(text); err != nil {
					return err
				}
			}

			txt, err := cfg.NewText(measure.Cells{})
			if err != nil {
				return err
			}
			if err := txt.SetText(from); err != nil {
				return err
			}
			txt.End()

			player, err := cfg.Player()
			if err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			lp := newLinePlayer(c.out)
			defer lp.finish()
			if err := playAll(cmd.Context(), player, txt, args, pause, lp.draw); err != nil {
				return err
			}
			prog.done("Played %d transitions", len(args))
			return nil
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVar(&from, "from", "", "text to start from")
	cmd.Flags().DurationVar(&pause, "pause", 500*time.Millisecond, "pause between texts")

	return cmd
}

// playAll runs one transition per target, pausing between them.
func playAll(ctx context.Context, player animation.Player, txt *rolling.Text, targets []string, pause time.Duration, onFrame animation.FrameFunc) error {
	for i, target := range targets {
		if err := txt.SetText(target); err != nil {
			return err
		}
		if err := player.Run(ctx, txt, onFrame); err != nil {
			return err
		}
		if i == len(targets)-1 || pause <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pause):
		}
	}
	return nil
}
