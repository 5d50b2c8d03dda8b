package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"botfileid/pkg"
)

const (
	DefaultPath = "config.yaml"
	EnvPrefix   = "BOTFILEID_"
)

type Config struct {
	Log    LogCfg    `yaml:"log"`
	Output OutputCfg `yaml:"output"`
}

type LogCfg struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

type OutputCfg struct {
	Format string `yaml:"format" env:"OUTPUT_FORMAT"`
	Indent bool   `yaml:"indent" env:"OUTPUT_INDENT"`
}

var (
	logFormats    = []string{"text", "json"}
	outputFormats = []string{"json", "text"}
)

func Default() *Config {
	return &Config{
		Log: LogCfg{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputCfg{
			Format: "json",
			Indent: true,
		},
	}
}

// Load builds the configuration from defaults, the yaml file at path, a
// .env file in the working directory and BOTFILEID_* environment variables,
// later sources taking precedence. A missing file at DefaultPath is not an
// error; a missing file at any other path is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
		case err != nil:
			return nil, &pkg.ErrConfig{Cause: "failed to read config file", Info: path, Err: err}
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, &pkg.ErrConfig{Cause: "failed to parse config file", Info: path, Err: err}
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, &pkg.ErrConfig{Cause: "failed to load .env", Err: err}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, &pkg.ErrConfig{Cause: "failed to parse environment", Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if !slices.Contains(logFormats, c.Log.Format) {
		return &pkg.ErrConfig{Cause: "invalid log format", Err: fmt.Errorf("unknown format %q", c.Log.Format)}
	}
	if !slices.Contains(outputFormats, c.Output.Format) {
		return &pkg.ErrConfig{Cause: "invalid output format", Err: fmt.Errorf("unknown format %q", c.Output.Format)}
	}
	return nil
}
