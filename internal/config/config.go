package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. WHOLE_UI_MOUSE.
const EnvPrefix = "WHOLE"

// Config holds all application configuration
type Config struct {
	Motion  MotionConfig  `mapstructure:"motion"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// MotionConfig tunes the scroll and animation coordinator. Distances are in
// page pixels.
type MotionConfig struct {
	VisibilityThreshold float64       `mapstructure:"visibility_threshold"`
	LookAheadPx         float64       `mapstructure:"look_ahead_px"`
	ActiveFloorPx       float64       `mapstructure:"active_floor_px"`
	FrameInterval       time.Duration `mapstructure:"frame_interval"`
	QuoteInterval       time.Duration `mapstructure:"quote_interval"`
	RevealDelayStep     time.Duration `mapstructure:"reveal_delay_step"`
	RevealDuration      time.Duration `mapstructure:"reveal_duration"`
	ClampProgress       bool          `mapstructure:"clamp_progress"`
	NoMatchPolicy       string        `mapstructure:"no_match_policy"` // "reset" or "keep"
	ParallaxSpeed       float64       `mapstructure:"parallax_speed"`
}

// UIConfig holds terminal UI configuration
type UIConfig struct {
	RowHeightPx int  `mapstructure:"row_height_px"` // page pixels per terminal row
	Mouse       bool `mapstructure:"mouse"`
	AltScreen   bool `mapstructure:"alt_screen"`
	SkipLoader  bool `mapstructure:"skip_loader"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Motion: MotionConfig{
			VisibilityThreshold: 0.1,
			LookAheadPx:         150,
			ActiveFloorPx:       200,
			FrameInterval:       16 * time.Millisecond,
			QuoteInterval:       8 * time.Second,
			RevealDelayStep:     100 * time.Millisecond,
			RevealDuration:      800 * time.Millisecond,
			ClampProgress:       true,
			NoMatchPolicy:       "reset",
			ParallaxSpeed:       0.3,
		},
		UI: UIConfig{
			RowHeightPx: 24,
			Mouse:       true,
			AltScreen:   true,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "whole", "whole.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "whole", "whole.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "whole")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "whole")
	}
}

// LoadConfig loads configuration from file and environment. An empty path
// searches the default locations; a missing file there is not an error.
func LoadConfig(path string) (*Config, error) {
	return load(viper.New(), path)
}

func load(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("motion.visibility_threshold", cfg.Motion.VisibilityThreshold)
	v.SetDefault("motion.look_ahead_px", cfg.Motion.LookAheadPx)
	v.SetDefault("motion.active_floor_px", cfg.Motion.ActiveFloorPx)
	v.SetDefault("motion.frame_interval", cfg.Motion.FrameInterval)
	v.SetDefault("motion.quote_interval", cfg.Motion.QuoteInterval)
	v.SetDefault("motion.reveal_delay_step", cfg.Motion.RevealDelayStep)
	v.SetDefault("motion.reveal_duration", cfg.Motion.RevealDuration)
	v.SetDefault("motion.clamp_progress", cfg.Motion.ClampProgress)
	v.SetDefault("motion.no_match_policy", cfg.Motion.NoMatchPolicy)
	v.SetDefault("motion.parallax_speed", cfg.Motion.ParallaxSpeed)

	v.SetDefault("ui.row_height_px", cfg.UI.RowHeightPx)
	v.SetDefault("ui.mouse", cfg.UI.Mouse)
	v.SetDefault("ui.alt_screen", cfg.UI.AltScreen)
	v.SetDefault("ui.skip_loader", cfg.UI.SkipLoader)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects values the coordinator cannot work with.
func (c *Config) Validate() error {
	m := c.Motion
	switch {
	case m.VisibilityThreshold <= 0 || m.VisibilityThreshold > 1:
		return fmt.Errorf("%w: motion.visibility_threshold must be in (0, 1], got %v", ErrInvalidConfig, m.VisibilityThreshold)
	case m.LookAheadPx < 0:
		return fmt.Errorf("%w: motion.look_ahead_px must not be negative", ErrInvalidConfig)
	case m.ActiveFloorPx < 0:
		return fmt.Errorf("%w: motion.active_floor_px must not be negative", ErrInvalidConfig)
	case m.FrameInterval <= 0:
		return fmt.Errorf("%w: motion.frame_interval must be positive", ErrInvalidConfig)
	case m.QuoteInterval <= 0:
		return fmt.Errorf("%w: motion.quote_interval must be positive", ErrInvalidConfig)
	case m.RevealDelayStep < 0 || m.RevealDuration < 0:
		return fmt.Errorf("%w: reveal timings must not be negative", ErrInvalidConfig)
	}
	switch strings.ToLower(m.NoMatchPolicy) {
	case "reset", "keep":
	default:
		return fmt.Errorf("%w: motion.no_match_policy must be reset or keep, got %q", ErrInvalidConfig, m.NoMatchPolicy)
	}
	if c.UI.RowHeightPx <= 0 {
		return fmt.Errorf("%w: ui.row_height_px must be positive", ErrInvalidConfig)
	}
	return nil
}
