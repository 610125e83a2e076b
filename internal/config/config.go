package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/lucaspeixotot/snipe/core"
)

// Config holds application configuration.
type Config struct {
	Picker  PickerConfig
	Keys    KeysConfig
	History HistoryConfig
	UI      UIConfig
	Log     LogConfig
}

// PickerConfig holds the tag alphabet and page sizing.
type PickerConfig struct {
	Alphabet string `mapstructure:"alphabet"`
	MaxRows  int    `mapstructure:"max_rows"`
}

// KeysConfig holds the non-tag key names.
type KeysConfig struct {
	NextPage    string `mapstructure:"next_page"`
	PrevPage    string `mapstructure:"prev_page"`
	UnderCursor string `mapstructure:"under_cursor"`
	Cancel      string `mapstructure:"cancel"`
	Filter      string `mapstructure:"filter"`
}

// HistoryConfig holds the selection-history store settings.
type HistoryConfig struct {
	Enabled bool
	Path    string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ThemePath string `mapstructure:"theme_path"`
}

// LogConfig holds debug log settings.
type LogConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix SNIPE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("picker.alphabet", core.DefaultAlphabet)
	v.SetDefault("picker.max_rows", 10)
	v.SetDefault("keys.next_page", ">")
	v.SetDefault("keys.prev_page", "<")
	v.SetDefault("keys.under_cursor", "enter")
	v.SetDefault("keys.cancel", "esc")
	v.SetDefault("keys.filter", "/")
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "snipe", "history.db"))
	v.SetDefault("ui.theme_path", "")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "snipe", "debug.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SNIPE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "snipe"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SNIPE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// NavKeys converts the configured key names to the core type.
func (c Config) NavKeys() core.NavKeys {
	return core.NavKeys{
		NextPage:    c.Keys.NextPage,
		PrevPage:    c.Keys.PrevPage,
		UnderCursor: c.Keys.UnderCursor,
		Cancel:      c.Keys.Cancel,
	}
}

// BuildAlphabet validates the configured alphabet and the nav keys against
// it. Duplicate symbols are returned for the caller to warn about; a nav
// key shadowing a tag symbol is an error, as is the filter key.
func (c Config) BuildAlphabet() (core.Alphabet, []rune, error) {
	alphabet, dups, err := core.NewAlphabet(c.Picker.Alphabet)
	if err != nil {
		return core.Alphabet{}, dups, fmt.Errorf("picker.alphabet: %w", err)
	}
	if err := c.NavKeys().Validate(alphabet); err != nil {
		return core.Alphabet{}, dups, err
	}
	if r := []rune(c.Keys.Filter); len(r) == 1 && alphabet.Contains(r[0]) {
		return core.Alphabet{}, dups, fmt.Errorf("%w: %q", core.ErrNavKeyCollision, c.Keys.Filter)
	}
	return alphabet, dups, nil
}
