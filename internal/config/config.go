// Package config loads rollpanel settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rollpanel/internal/roller"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ROLLPANEL_ROLLER_MOTION.
const EnvPrefix = "ROLLPANEL"

// Config holds application configuration.
type Config struct {
	Roller RollerConfig `mapstructure:"roller"`
	UI     UIConfig     `mapstructure:"ui"`
	Log    LogConfig    `mapstructure:"log"`
}

// RollerConfig mirrors roller.Config minus the container size, which comes
// from the terminal.
type RollerConfig struct {
	Direction  string        `mapstructure:"direction"`
	Motion     string        `mapstructure:"motion"`
	Unit       string        `mapstructure:"unit"`
	ItemCount  int           `mapstructure:"item_count"`
	Flow       string        `mapstructure:"flow"`
	Duration   time.Duration `mapstructure:"duration"`
	Delay      time.Duration `mapstructure:"delay"`
	PanelTag   string        `mapstructure:"panel_tag"`
	WrapperTag string        `mapstructure:"wrapper_tag"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Wrap bool `mapstructure:"wrap"` // next on the last page rolls to the first
}

// LogConfig controls the debug log. Bubble Tea owns the terminal, so logs
// only ever go to a file.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Roller converts the file settings to a roller.Config for a container of
// the given size.
func (c RollerConfig) Roller(width, height int) roller.Config {
	return roller.Config{
		Width:      width,
		Height:     height,
		Direction:  roller.Direction(c.Direction),
		Motion:     c.Motion,
		Unit:       roller.Unit(c.Unit),
		ItemCount:  c.ItemCount,
		Flow:       roller.Flow(c.Flow),
		Duration:   c.Duration,
		Delay:      c.Delay,
		PanelTag:   c.PanelTag,
		WrapperTag: c.WrapperTag,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/rollpanel/config.toml (or the
// platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "rollpanel", "config.toml"), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("roller.direction", string(roller.Horizontal))
	v.SetDefault("roller.motion", "easeInOut")
	v.SetDefault("roller.unit", string(roller.UnitPage))
	v.SetDefault("roller.item_count", 0)
	v.SetDefault("roller.flow", string(roller.FlowNext))
	v.SetDefault("roller.duration", 400*time.Millisecond)
	v.SetDefault("roller.delay", 16*time.Millisecond)
	v.SetDefault("roller.panel_tag", "li.panel")
	v.SetDefault("roller.wrapper_tag", "ul.frame")
	v.SetDefault("ui.wrap", false)
	v.SetDefault("log.file", "")
}

// Load reads configuration. path wins over $ROLLPANEL_CONFIG, which wins
// over DefaultPath. An explicit file that cannot be read is an error; a
// missing default file is not. Env vars override file values.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		def, err := DefaultPath()
		if err == nil {
			v.AddConfigPath(filepath.Dir(def))
			v.SetConfigName("config")
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg to path (DefaultPath when empty), creating the directory
// if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		def, err := DefaultPath()
		if err != nil {
			return err
		}
		path = def
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("roller.direction", cfg.Roller.Direction)
	v.Set("roller.motion", cfg.Roller.Motion)
	v.Set("roller.unit", cfg.Roller.Unit)
	v.Set("roller.item_count", cfg.Roller.ItemCount)
	v.Set("roller.flow", cfg.Roller.Flow)
	v.Set("roller.duration", cfg.Roller.Duration.String())
	v.Set("roller.delay", cfg.Roller.Delay.String())
	v.Set("roller.panel_tag", cfg.Roller.PanelTag)
	v.Set("roller.wrapper_tag", cfg.Roller.WrapperTag)
	v.Set("ui.wrap", cfg.UI.Wrap)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
