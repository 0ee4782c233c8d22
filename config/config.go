// Package config loads the YAML settings of the fnkit command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/on-the-ground/fnkit/pure"
	"github.com/on-the-ground/fnkit/shared/log"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// MaxNumShards bounds config.table.num_shards.
const MaxNumShards = 1024

type Config struct {
	Log   LogConfig   `yaml:"log"`
	Table TableConfig `yaml:"table"`
}

type LogConfig struct {
	Level log.LogLevel `yaml:"level"` // default: info
}

type TableConfig struct {
	Name      string `yaml:"name"`       // default: fnkit
	NumShards int    `yaml:"num_shards"` // default: 1
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:   LogConfig{Level: log.LogInfo},
		Table: TableConfig{Name: "fnkit", NumShards: 1},
	}
}

// Load reads the YAML file at path over Default and validates the result.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes YAML over Default. Unknown fields are rejected and an empty
// document yields Default.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg.normalize()
}

func (c Config) normalize() (Config, error) {
	if c.Log.Level == "" {
		c.Log.Level = log.LogInfo
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, ConfigLogLevel, err)
	}
	if c.Table.Name == "" {
		c.Table.Name = "fnkit"
	}
	switch {
	case c.Table.NumShards == 0:
		c.Table.NumShards = 1
	case c.Table.NumShards < 0 || c.Table.NumShards > MaxNumShards:
		return Config{}, fmt.Errorf("%w: %s must be within [1, %d], got %d",
			ErrInvalidConfig, ConfigTableNumShards, MaxNumShards, c.Table.NumShards)
	}
	return c, nil
}

// Logger builds the console logger described by c.Log.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, ConfigLogLevel, err)
	}
	return log.NewConsoleLogger(level), nil
}

// PureTableConfig converts c.Table into a pure.TableConfig logging to logger.
// suffix is appended to the table name to tell tables of one program apart.
func (c Config) PureTableConfig(suffix string, logger *zap.Logger) pure.TableConfig {
	name := c.Table.Name
	if suffix != "" {
		name += delimiter + suffix
	}
	return pure.NewTableConfig(name, c.Table.NumShards, logger)
}
