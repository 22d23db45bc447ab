package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "NUMCMP_CONFIG"

const (
	DefaultLogLevel = "warn"
	DefaultEncoding = "utf-8"
)

type Config struct {
	LogLevel          string `yaml:"log_level"`
	Encoding          string `yaml:"encoding"`
	ReadErrorExitCode int    `yaml:"read_error_exit_code"`
}

func Default() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		Encoding: DefaultEncoding,
	}
}

// UnmarshalYAML fills in defaults for missing keys and normalizes case.
func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type configAlias struct {
		LogLevel          string `yaml:"log_level"`
		Encoding          string `yaml:"encoding"`
		ReadErrorExitCode *int   `yaml:"read_error_exit_code"`
	}

	var alias configAlias
	if err := unmarshal(&alias); err != nil {
		return err
	}

	*c = Default()
	if s := strings.TrimSpace(alias.LogLevel); s != "" {
		c.LogLevel = strings.ToLower(s)
	}
	if s := strings.TrimSpace(alias.Encoding); s != "" {
		c.Encoding = strings.ToLower(s)
	}
	if alias.ReadErrorExitCode != nil {
		c.ReadErrorExitCode = *alias.ReadErrorExitCode
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.ReadErrorExitCode < 0 || c.ReadErrorExitCode > 125 {
		return fmt.Errorf("read_error_exit_code: %d out of range [0, 125]", c.ReadErrorExitCode)
	}
	return nil
}

// Load reads a YAML config from path. An empty file yields defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	// Пустой файл: конфигурация по умолчанию
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv loads the file named by EnvPath, or returns defaults when it is unset.
func FromEnv() (Config, error) {
	path := strings.TrimSpace(os.Getenv(EnvPath))
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
