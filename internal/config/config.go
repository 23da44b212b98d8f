package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Colors  ColorsConfig  `mapstructure:"colors"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// UIConfig holds window and layout configuration
type UIConfig struct {
	Window  WindowConfig  `mapstructure:"window"`
	Board   BoardConfig   `mapstructure:"board"`
	History HistoryConfig `mapstructure:"history"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// BoardConfig holds the grid layout settings
type BoardConfig struct {
	CellSize int `mapstructure:"cell_size"`
	OffsetX  int `mapstructure:"offset_x"`
	OffsetY  int `mapstructure:"offset_y"`
}

// HistoryConfig holds the history list layout settings
type HistoryConfig struct {
	EntryWidth  int `mapstructure:"entry_width"`
	EntryHeight int `mapstructure:"entry_height"`
	Margin      int `mapstructure:"margin"`
}

// ColorsConfig holds the configurable parts of the palette
type ColorsConfig struct {
	Background [3]int `mapstructure:"background"`
	MarkX      [3]int `mapstructure:"mark_x"`
	MarkO      [3]int `mapstructure:"mark_o"`
	Highlight  [3]int `mapstructure:"highlight"`
}

// LoggingConfig holds log settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Window defaults
	v.SetDefault("ui.window.width", 640)
	v.SetDefault("ui.window.height", 420)
	v.SetDefault("ui.window.title", "Tic-Tac-Toe")

	// Board layout defaults
	v.SetDefault("ui.board.cell_size", 96)
	v.SetDefault("ui.board.offset_x", 40)
	v.SetDefault("ui.board.offset_y", 60)

	// History list defaults
	v.SetDefault("ui.history.entry_width", 200)
	v.SetDefault("ui.history.entry_height", 26)
	v.SetDefault("ui.history.margin", 40)

	// Color defaults
	v.SetDefault("colors.background", []int{50, 50, 50})
	v.SetDefault("colors.mark_x", []int{200, 50, 50})
	v.SetDefault("colors.mark_o", []int{50, 100, 200})
	v.SetDefault("colors.highlight", []int{60, 120, 60})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("TTT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults apply.
		if configPath == "" {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file, useful for
// tweaking layout and colors while the window is open.
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.UI.Window.Width <= 0 || c.UI.Window.Height <= 0 {
		return fmt.Errorf("ui.window dimensions must be positive")
	}
	if c.UI.Board.CellSize <= 0 {
		return fmt.Errorf("ui.board.cell_size must be positive")
	}
	if c.UI.Board.OffsetX < 0 || c.UI.Board.OffsetY < 0 {
		return fmt.Errorf("ui.board offsets must be non-negative")
	}
	if c.UI.History.EntryWidth <= 0 || c.UI.History.EntryHeight <= 0 {
		return fmt.Errorf("ui.history entry dimensions must be positive")
	}
	if c.UI.History.Margin < 0 {
		return fmt.Errorf("ui.history.margin must be non-negative")
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level is invalid: %w", err)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json")
	}

	validateRGB := func(rgb [3]int, name string) error {
		for i, val := range rgb {
			if val < 0 || val > 255 {
				return fmt.Errorf("%s[%d] must be between 0 and 255", name, i)
			}
		}
		return nil
	}

	if err := validateRGB(c.Colors.Background, "colors.background"); err != nil {
		return err
	}
	if err := validateRGB(c.Colors.MarkX, "colors.mark_x"); err != nil {
		return err
	}
	if err := validateRGB(c.Colors.MarkO, "colors.mark_o"); err != nil {
		return err
	}
	if err := validateRGB(c.Colors.Highlight, "colors.highlight"); err != nil {
		return err
	}

	return nil
}
