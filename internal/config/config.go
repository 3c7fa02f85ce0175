package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/diegok/pypong/internal/ai"
	"github.com/diegok/pypong/internal/game"
)

// Default values for configuration
const (
	DefaultDifficulty = "easy"
	DefaultPoints     = game.DefaultPointsToWin
	DefaultWidth      = game.DefaultWidth
	DefaultHeight     = game.DefaultHeight
	DefaultStep       = 1.0 / 60 // seconds, one frame at 60 FPS
	DefaultMaxTicks   = 60 * 60 * 10
	DefaultLogLevel   = "info"
)

// Config holds the application configuration
type Config struct {
	Difficulty     string  `toml:"difficulty"`
	LeftDifficulty string  `toml:"left_difficulty"`
	PointsToWin    int     `toml:"points"`
	Width          float64 `toml:"width"`
	Height         float64 `toml:"height"`
	Step           float64 `toml:"step"`
	MaxTicks       int     `toml:"max_ticks"`
	Seed           int64   `toml:"seed"`
	SpeedScaling   bool    `toml:"speed_scaling"`
	LogLevel       string  `toml:"log_level"`

	RightPolicy ai.Policy `toml:"-"`
	LeftPolicy  ai.Policy `toml:"-"`
}

// Default returns the configuration used when nothing is specified
func Default() Config {
	return Config{
		Difficulty:     DefaultDifficulty,
		LeftDifficulty: DefaultDifficulty,
		PointsToWin:    DefaultPoints,
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Step:           DefaultStep,
		MaxTicks:       DefaultMaxTicks,
		SpeedScaling:   true,
		LogLevel:       DefaultLogLevel,
	}
}

// LoadFile overlays the values found in a TOML file on cfg
func LoadFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// ParseArgs parses command line arguments and returns a Config.
// A --config file supplies defaults, flags given on the command line win.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pypong", flag.ContinueOnError)

	def := Default()
	file := fs.String("config", "", "TOML config file")
	difficulty := fs.String("difficulty", def.Difficulty, "right paddle difficulty (easy|hard)")
	left := fs.String("left", def.LeftDifficulty, "left paddle difficulty (easy|hard)")
	points := fs.Int("points", def.PointsToWin, "points to win (>=1)")
	width := fs.Float64("width", def.Width, "playfield width")
	height := fs.Float64("height", def.Height, "playfield height")
	step := fs.Float64("step", def.Step, "simulation step in seconds")
	maxTicks := fs.Int("max-ticks", def.MaxTicks, "stop after this many ticks (0 = no limit)")
	seed := fs.Int64("seed", def.Seed, "random seed for serves (0 = time based)")
	scaling := fs.Bool("speed-scaling", def.SpeedScaling, "speed the ball up on every paddle hit")
	logLevel := fs.String("log-level", def.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := def
	if *file != "" {
		if err := LoadFile(*file, &cfg); err != nil {
			return nil, err
		}
	}

	// Only flags present on the command line override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "difficulty":
			cfg.Difficulty = *difficulty
		case "left":
			cfg.LeftDifficulty = *left
		case "points":
			cfg.PointsToWin = *points
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "step":
			cfg.Step = *step
		case "max-ticks":
			cfg.MaxTicks = *maxTicks
		case "seed":
			cfg.Seed = *seed
		case "speed-scaling":
			cfg.SpeedScaling = *scaling
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and resolves the difficulty names
func (c *Config) Validate() error {
	var err error
	if c.RightPolicy, err = ai.ParsePolicy(c.Difficulty); err != nil {
		return err
	}
	if c.LeftPolicy, err = ai.ParsePolicy(c.LeftDifficulty); err != nil {
		return fmt.Errorf("left: %w", err)
	}

	if c.PointsToWin < 1 {
		return fmt.Errorf("points must be at least 1, got %d", c.PointsToWin)
	}

	if !(c.Width > 0) || !(c.Height > 0) || math.IsInf(c.Width, 0) || math.IsInf(c.Height, 0) {
		return fmt.Errorf("playfield must have positive size, got %gx%g", c.Width, c.Height)
	}

	// Wall thresholds sit at one radius from the top and two from the bottom
	if c.Height <= 3*game.DefaultBallRadius {
		return fmt.Errorf("height %g is too small for the ball", c.Height)
	}

	if !(c.Step > 0) || math.IsInf(c.Step, 0) {
		return errors.New("step must be a positive number of seconds")
	}

	if c.MaxTicks < 0 {
		return fmt.Errorf("max-ticks cannot be negative, got %d", c.MaxTicks)
	}

	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}

// Bounds returns the playfield described by the configuration
func (c *Config) Bounds() game.Bounds {
	return game.Bounds{Width: c.Width, Height: c.Height}
}

// BallParams returns the ball tuning for the configuration
func (c *Config) BallParams() game.BallParams {
	params := game.DefaultBallParams()
	params.SpeedScaling = c.SpeedScaling
	return params
}
