package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config holds the settings shared by every monthgrid command.
type Config struct {
	// Name is echoed back in calendar callbacks.
	Name string `mapstructure:"name"`
	// StatePath is the directory holding the persisted selection.
	StatePath string `mapstructure:"state_path"`
	// MatchYear makes selection checks compare years as well as months.
	MatchYear bool      `mapstructure:"match_year"`
	Log       LogConfig `mapstructure:"log"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// LoadConfig reads .monthgrid.yaml from $MONTHGRID_CONFIG_PATH or the working
// directory. MONTHGRID_* environment variables override file values and a
// missing file leaves the defaults in place.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetDefault("name", "calendar")
	v.SetDefault("state_path", "~/.monthgrid")
	v.SetDefault("match_year", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "~/.monthgrid/monthgrid.log")

	v.SetConfigName(".monthgrid") // .yaml is implicit
	v.SetEnvPrefix("MONTHGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("MONTHGRID_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.expand(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) expand() error {
	var err error
	if c.StatePath, err = homedir.Expand(c.StatePath); err != nil {
		return fmt.Errorf("invalid state_path: %w", err)
	}
	if c.Log.File, err = homedir.Expand(c.Log.File); err != nil {
		return fmt.Errorf("invalid log.file: %w", err)
	}
	return nil
}
