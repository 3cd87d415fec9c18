package rom

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/pdswan/rom/order"
)

// Config is the file and environment form of Options.
type Config struct {
	// Nils is "first" or "last".
	Nils string `mapstructure:"nils"`

	JoinWorkers int `mapstructure:"join_workers"`

	// Collation is a BCP 47 language tag, empty for byte order.
	Collation string `mapstructure:"collation"`

	Log struct {
		Level       string `mapstructure:"level"`
		Development bool   `mapstructure:"development"`
	} `mapstructure:"log"`
}

// SetConfigDefaults registers the default value of every Config key with v.
func SetConfigDefaults(v *viper.Viper) {
	v.SetDefault("nils", "last")
	v.SetDefault("join_workers", 1)
	v.SetDefault("collation", "")
	v.SetDefault("log.level", "")
	v.SetDefault("log.development", false)
}

// LoadConfig reads the YAML config file at path.  An empty path reads no
// file.  Keys can be overridden from the environment with a ROM_ prefix, as
// in ROM_NILS=first or ROM_LOG_LEVEL=debug.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ROM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return ReadConfig(v, path)
}

// ReadConfig reads the config file at path, if any, into v and decodes the
// result.  It lets callers bind flags or environment variables to v first.
func ReadConfig(v *viper.Viper, path string) (*Config, error) {
	SetConfigDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Options converts the config into dataset options.
func (c *Config) Options() ([]Option, error) {
	nils, err := order.ParseNilPolicy(c.Nils)
	if err != nil {
		return nil, err
	}

	tag := language.Und
	if c.Collation != "" {
		if tag, err = language.Parse(c.Collation); err != nil {
			return nil, fmt.Errorf("rom: collation: %w", err)
		}
	}

	logger, err := NewLogger(c.Log.Level, c.Log.Development)
	if err != nil {
		return nil, err
	}

	return []Option{
		WithNils(nils),
		WithJoinWorkers(c.JoinWorkers),
		WithCollation(tag),
		WithLogger(logger),
	}, nil
}
