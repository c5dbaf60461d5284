package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/01wneo/RollingText/pkg/animation"
	"github.com/01wneo/RollingText/pkg/cache"
	"github.com/01wneo/RollingText/pkg/charorder"
	"github.com/01wneo/RollingText/pkg/column"
	"github.com/01wneo/RollingText/pkg/errors"
	"github.com/01wneo/RollingText/pkg/measure"
	"github.com/01wneo/RollingText/pkg/rolling"
)

// Strategy names.
const (
	StrategyDirect        = "direct"
	StrategyNone          = "none"
	StrategyNormal        = "normal"
	StrategySameDirection = "same-direction"
	StrategyCarryBit      = "carry-bit"
)

// Strategies lists the accepted strategy names.
var Strategies = []string{StrategyDirect, StrategyNone, StrategyNormal, StrategySameDirection, StrategyCarryBit}

// Pool presets that may appear in place of a literal character list.
var Presets = map[string]string{
	"digits":   "0123456789",
	"alphabet": "abcdefghijklmnopqrstuvwxyz",
	"ALPHABET": "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
}

// Limits on numeric settings.
const (
	MaxFPS               = 240
	MaxCycles            = 100
	MaxDuration          = time.Minute
	DefaultAddr          = ":8080"
	DefaultMongoDatabase = "rollingtext"
	DefaultFPS           = animation.DefaultFPS
	DefaultHeight        = 1.0
)

// Config holds every tunable of a rolling text animation.
type Config struct {
	Strategy     string       `toml:"strategy" yaml:"strategy"`
	Direction    string       `toml:"direction" yaml:"direction"`
	MaxCycles    int          `toml:"max_cycles" yaml:"max_cycles"`
	Pools        []string     `toml:"pools" yaml:"pools"`
	Duration     Duration     `toml:"duration" yaml:"duration"`
	Easing       string       `toml:"easing" yaml:"easing"`
	FPS          int          `toml:"fps" yaml:"fps"`
	ColumnHeight float64      `toml:"column_height" yaml:"column_height"`
	Server       ServerConfig `toml:"server" yaml:"server"`
}

// ServerConfig configures the HTTP API. RedisURL selects a shared diagram
// cache and MongoURI a persistent run store; both are optional.
type ServerConfig struct {
	Addr          string `toml:"addr" yaml:"addr"`
	RedisURL      string `toml:"redis_url" yaml:"redis_url"`
	MongoURI      string `toml:"mongo_uri" yaml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database" yaml:"mongo_database"`
}

// Duration is a time.Duration written as a Go duration string ("750ms").
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", b, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Default returns the built-in configuration: digits rolled with the
// normal strategy.
func Default() Config {
	return Config{
		Strategy:     StrategyNormal,
		Direction:    charorder.ScrollDown.String(),
		MaxCycles:    charorder.DefaultMaxCycles,
		Pools:        []string{"digits"},
		Duration:     Duration(animation.DefaultDuration),
		Easing:       animation.DefaultEasing,
		FPS:          DefaultFPS,
		ColumnHeight: DefaultHeight,
		Server:       ServerConfig{Addr: DefaultAddr, MongoDatabase: DefaultMongoDatabase},
	}
}

// Load reads a TOML or YAML file, chosen by extension, over Default and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if err := errors.ValidateFormat(ext, "toml", "yaml", "yml"); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext {
	case "toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field and returns an INVALID_CONFIG error for the
// first problem found.
func (c Config) Validate() error {
	if !slices.Contains(Strategies, c.Strategy) {
		return invalid("unknown strategy %q (valid: %s)", c.Strategy, strings.Join(Strategies, ", "))
	}
	if _, err := charorder.ParseDirection(c.Direction); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid direction")
	}
	if c.MaxCycles < 0 || c.MaxCycles > MaxCycles {
		return invalid("max_cycles must be between 0 and %d, got %d", MaxCycles, c.MaxCycles)
	}
	for _, p := range c.Pools {
		if err := errors.ValidatePool(expandPool(p)); err != nil {
			return err
		}
	}
	if d := time.Duration(c.Duration); d < 0 || d > MaxDuration {
		return invalid("duration must be between 0 and %s, got %s", MaxDuration, d)
	}
	if _, err := animation.ParseEasing(c.Easing); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid easing")
	}
	if c.FPS < 1 || c.FPS > MaxFPS {
		return invalid("fps must be between 1 and %d, got %d", MaxFPS, c.FPS)
	}
	if c.ColumnHeight <= 0 {
		return invalid("column_height must be positive, got %v", c.ColumnHeight)
	}
	if c.Server.MongoURI != "" && c.Server.MongoDatabase == "" {
		return invalid("server.mongo_database is required with server.mongo_uri")
	}
	return nil
}

// NewStrategy builds the configured strategy. Each call returns a fresh value,
// so stateful strategies are never shared.
func (c Config) NewStrategy() (charorder.Strategy, error) {
	switch c.Strategy {
	case StrategyDirect:
		return charorder.Simple{Resolver: charorder.Direct}, nil
	case StrategyNone:
		return charorder.Simple{Resolver: charorder.NoAnimation}, nil
	case StrategyNormal, "":
		return charorder.Simple{Resolver: charorder.Normal}, nil
	case StrategySameDirection:
		dir, err := charorder.ParseDirection(c.Direction)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid direction")
		}
		return charorder.Simple{Resolver: charorder.SameDirection(dir)}, nil
	case StrategyCarryBit:
		return &charorder.CarryBit{MaxCycles: c.MaxCycles}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStrategy, "unknown strategy %q", c.Strategy)
}

// Manager builds a charorder.Manager holding the configured pools and
// strategy.
func (c Config) Manager() (*charorder.Manager, error) {
	s, err := c.NewStrategy()
	if err != nil {
		return nil, err
	}
	m := charorder.NewManager(charorder.WithStrategy(s))
	for _, p := range c.Pools {
		m.RegisterPoolString(expandPool(p))
	}
	return m, nil
}

// Timeline builds the configured animation timeline.
func (c Config) Timeline() (animation.Timeline, error) {
	ease, err := animation.ParseEasing(c.Easing)
	if err != nil {
		return animation.Timeline{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid easing")
	}
	return animation.Timeline{Duration: time.Duration(c.Duration), Easing: ease}, nil
}

// Player builds an animation player from the configured frame rate and
// timeline.
func (c Config) Player() (animation.Player, error) {
	tl, err := c.Timeline()
	if err != nil {
		return animation.Player{}, err
	}
	return animation.Player{FPS: c.FPS, Timeline: tl}, nil
}

func expandPool(p string) string {
	if chars, ok := Presets[p]; ok {
		return chars
	}
	return p
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, format, args...)
}

// NewText builds an empty rolling.Text using the configured pools, strategy
// and column height. Widths come from m, or terminal cells when m is nil.
func (c Config) NewText(m column.Measurer) (*rolling.Text, error) {
	if m == nil {
		m = measure.Cells{}
	}
	orders, err := c.Manager()
	if err != nil {
		return nil, err
	}
	return rolling.New(orders, m, c.ColumnHeight), nil
}

// ArtifactKeyOpts returns the cache key inputs describing this configuration.
func (c Config) ArtifactKeyOpts(format string, detailed bool) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:    format,
		Strategy:  c.Strategy,
		Direction: c.Direction,
		MaxCycles: c.MaxCycles,
		Detailed:  detailed,
		Pools:     c.Pools,
	}
}
