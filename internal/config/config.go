package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI    UIConfig
	Rules RulesConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Timezone        string `mapstructure:"timezone"`
	DateLayout      string `mapstructure:"date_layout"`
	DefaultScenario int    `mapstructure:"default_scenario"`
}

// RulesConfig holds banner rule thresholds.
type RulesConfig struct {
	MinorAge int `mapstructure:"minor_age"`
}

// Load reads configuration from file and env. Env var overrides use prefix COMMSBANNER_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("ui.date_layout", "2006-01-02")
	v.SetDefault("ui.default_scenario", 1)
	v.SetDefault("rules.minor_age", 18)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("COMMSBANNER_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "commsbanner"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("COMMSBANNER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing default file is fine; a broken or missing explicit one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Rules.MinorAge <= 0 {
		return fmt.Errorf("rules.minor_age must be positive, got %d", c.Rules.MinorAge)
	}
	if c.UI.DefaultScenario < 1 || c.UI.DefaultScenario > 3 {
		return fmt.Errorf("ui.default_scenario must be 1, 2 or 3, got %d", c.UI.DefaultScenario)
	}
	if strings.TrimSpace(c.UI.DateLayout) == "" {
		return errors.New("ui.date_layout must not be empty")
	}
	return nil
}
