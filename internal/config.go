package internal

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	Level string `yaml:"level"`
	Color bool   `yaml:"color"`
}

type Config struct {
	Listen         string        `yaml:"listen"`
	Root           string        `yaml:"root"`
	ReadSize       int           `yaml:"read_size"`
	MaxRequestSize int           `yaml:"max_request_size"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	Confine        bool          `yaml:"confine"`
	Concurrent     bool          `yaml:"concurrent"`
	Log            LogConfig     `yaml:"log"`
}

func DefaultConfig() *Config {
	return &Config{
		Listen:         "127.0.0.1:10000",
		Root:           "./webroot",
		ReadSize:       1024,
		MaxRequestSize: 64 << 10,
		Log: LogConfig{
			Level: "info",
			Color: true,
		},
	}
}

// LoadConfig reads a yaml file over the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("bad config %s: %w", path, err)
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address is empty")
	}
	if c.Root == "" {
		return fmt.Errorf("document root is empty")
	}
	if c.ReadSize <= 0 {
		return fmt.Errorf("bad read size: %d", c.ReadSize)
	}
	if c.MaxRequestSize < 0 {
		return fmt.Errorf("bad max request size: %d", c.MaxRequestSize)
	}
	if c.ReadTimeout < 0 {
		return fmt.Errorf("bad read timeout: %s", c.ReadTimeout)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

func (c *Config) LogLevel() (zerolog.Level, error) {
	if c.Log.Level == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("bad log level: %q", c.Log.Level)
	}
	return level, nil
}
