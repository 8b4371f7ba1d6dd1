package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config is the merged configuration shared by every binary.
type Config struct {
	OutputPath string       `mapstructure:"output"`
	Format     string       `mapstructure:"format"`
	LabelsFile string       `mapstructure:"labels"`
	LogLevel   string       `mapstructure:"log_level"`
	Server     ServerConfig `mapstructure:"server"`
}

type ServerConfig struct {
	Addr           string        `mapstructure:"addr"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl"`
	RateLimit      float64       `mapstructure:"rate_limit"`
	RateBurst      int           `mapstructure:"rate_burst"`
	MaxUploadBytes int64         `mapstructure:"max_upload_bytes"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"output":    "output",
	"format":    "format",
	"labels":    "labels",
	"log-level": "log_level",
	"addr":      "server.addr",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", "")
	v.SetDefault("format", "csv")
	v.SetDefault("labels", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("server.addr", "0.0.0.0:3000")
	v.SetDefault("server.cache_ttl", 30*time.Minute)
	v.SetDefault("server.rate_limit", 10.0)
	v.SetDefault("server.rate_burst", 30)
	v.SetDefault("server.max_upload_bytes", int64(10<<20))
}

// New creates a configuration holding only defaults and outputPath.
func New(outputPath string) *Config {
	v := viper.New()
	setDefaults(v)
	v.Set("output", outputPath)

	var c Config
	// defaults always decode
	_ = v.Unmarshal(&c)
	return &c
}

// Build layers defaults, the config file (cfgFile, or ./config.yaml when
// present), a .env file, COCKPIT_* environment variables and flags, in
// increasing priority. flags may be nil.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	if err := gotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("COCKPIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.Format {
	case "csv", "xlsx":
	default:
		return fmt.Errorf("invalid format %q: want csv or xlsx", c.Format)
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("server.rate_limit must be positive")
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be positive")
	}
	return nil
}

func (c *Config) GetOutputPath() string {
	return c.OutputPath
}
