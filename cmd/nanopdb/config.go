package main

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config is the nanopdb command configuration.
type Config struct {
	RCSB   RCSBConfig   `mapstructure:"rcsb"`
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// RCSBConfig configures downloads.
type RCSBConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	Rate    float64       `mapstructure:"rate"` // requests per second, 0 = unlimited
}

type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

type OutputConfig struct {
	JSON bool `mapstructure:"json"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("rcsb.base_url", "https://files.rcsb.org")
	v.SetDefault("rcsb.timeout", "30s")
	v.SetDefault("rcsb.rate", 5.0)
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("output.json", false)
}

// newViper returns a viper instance with defaults and NANOPDB_* environment
// overrides (e.g. NANOPDB_RCSB_BASE_URL). If path is not empty, the file is
// read on top of the defaults.
func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("NANOPDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}
	return v, nil
}

func loadConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if cfg.RCSB.Timeout <= 0 {
		return nil, errors.Newf("rcsb.timeout must be positive, got %s", cfg.RCSB.Timeout)
	}
	return &cfg, nil
}
