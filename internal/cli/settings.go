package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/01wneo/RollingText/pkg/animation"
	"github.com/01wneo/RollingText/pkg/config"
)

// settingsFlags holds the flags that override config file values.
type settingsFlags struct {
	strategy  string
	direction string
	maxCycles int
	pools     []string
	height    float64

	duration time.Duration
	easing   string
	fps      int
}

// register adds the resolution flags to cmd, plus timing flags when timed
// is set.
func (f *settingsFlags) register(cmd *cobra.Command, timed bool) {
	flags := cmd.Flags()
	flags.StringVarP(&f.strategy, "strategy", "s", "", "character order strategy (direct, none, normal, same-direction, carry-bit)")
	flags.StringVarP(&f.direction, "direction", "d", "", "scroll direction for same-direction and carry-bit (up, down)")
	flags.IntVar(&f.maxCycles, "max-cycles", 0, "maximum full turns per column for carry-bit")
	flags.StringSliceVarP(&f.pools, "pool", "p", nil, "character pool, repeatable (digits, alphabet, ALPHABET, or literal characters)")
	flags.Float64Var(&f.height, "height", 0, "column height in measurement units")

	_ = cmd.RegisterFlagCompletionFunc("strategy", fixedCompletion(config.Strategies...))
	_ = cmd.RegisterFlagCompletionFunc("direction", fixedCompletion("up", "down"))

	if !timed {
		return
	}
	flags.DurationVar(&f.duration, "duration", 0, "length of one transition (e.g. 750ms)")
	flags.StringVar(&f.easing, "easing", "", "easing curve (linear, ease-in, ease-out, ease-in-out, spring)")
	flags.IntVar(&f.fps, "fps", 0, "frames per second")

	_ = cmd.RegisterFlagCompletionFunc("easing", fixedCompletion(animation.EasingNames()...))
}

// loadConfig builds the effective configuration for cmd: defaults, then
// the config file, then any flags the user set.
func (c *CLI) loadConfig(cmd *cobra.Command, f *settingsFlags) (config.Config, error) {
	logger := loggerFromContext(cmd.Context())

	cfg := config.Default()
	path := c.configPath
	if path == "" {
		if p, err := defaultConfigPath(); err == nil {
			if _, err := os.Stat(p); err == nil {
				path = p
			}
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
		logger.Debug("loaded config", "path", path)
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if flags.Changed("direction") {
		cfg.Direction = f.direction
	}
	if flags.Changed("max-cycles") {
		cfg.MaxCycles = f.maxCycles
	}
	if flags.Changed("pool") {
		cfg.Pools = f.pools
	}
	if flags.Changed("height") {
		cfg.ColumnHeight = f.height
	}
	if flags.Changed("duration") {
		cfg.Duration = config.Duration(f.duration)
	}
	if flags.Changed("easing") {
		cfg.Easing = f.easing
	}
	if flags.Changed("fps") {
		cfg.FPS = f.fps
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("settings: %w", err)
	}
	logger.Debug("effective config", "strategy", cfg.Strategy, "pools", cfg.Pools, "duration", time.Duration(cfg.Duration), "easing", cfg.Easing, "fps", cfg.FPS)
	return cfg, nil
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
