// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fjacquet/extrato-classifier/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "EXTRATO"

// LogConfig configures the application logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ServerConfig configures the HTTP transport.
type ServerConfig struct {
	Address                string `mapstructure:"address" yaml:"address"`
	ReadTimeoutSeconds     int    `mapstructure:"read_timeout_seconds" yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds    int    `mapstructure:"write_timeout_seconds" yaml:"write_timeout_seconds"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" yaml:"shutdown_timeout_seconds"`
	MaxBodyBytes           int64  `mapstructure:"max_body_bytes" yaml:"max_body_bytes"`
}

// ClassifierConfig tunes the classifier.
type ClassifierConfig struct {
	// MaxInputLength bounds a description in characters. Zero selects the
	// built-in bound and a negative value disables it.
	MaxInputLength int `mapstructure:"max_input_length" yaml:"max_input_length"`
}

// RulesConfig points at an optional rule table file.
type RulesConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// CSVConfig configures batch CSV input and output.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// Config represents the complete application configuration
type Config struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	Server     ServerConfig     `mapstructure:"server" yaml:"server"`
	Classifier ClassifierConfig `mapstructure:"classifier" yaml:"classifier"`
	Rules      RulesConfig      `mapstructure:"rules" yaml:"rules"`
	CSV        CSVConfig        `mapstructure:"csv" yaml:"csv"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.extrato")
	v.AddConfigPath(".extrato")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Server: ServerConfig{
			Address:                ":8080",
			ReadTimeoutSeconds:     10,
			WriteTimeoutSeconds:    10,
			ShutdownTimeoutSeconds: 15,
			MaxBodyBytes:           64 * 1024,
		},
		CSV: CSVConfig{Delimiter: ","},
	}
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("server.read_timeout_seconds", d.Server.ReadTimeoutSeconds)
	v.SetDefault("server.write_timeout_seconds", d.Server.WriteTimeoutSeconds)
	v.SetDefault("server.shutdown_timeout_seconds", d.Server.ShutdownTimeoutSeconds)
	v.SetDefault("server.max_body_bytes", d.Server.MaxBodyBytes)

	v.SetDefault("classifier.max_input_length", d.Classifier.MaxInputLength)

	v.SetDefault("rules.file", d.Rules.File)

	v.SetDefault("csv.delimiter", d.CSV.Delimiter)
}

// Validate checks a configuration changed after loading, e.g. by command
// line flags.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if format := strings.ToLower(config.Log.Format); format != "text" && format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Server.Address == "" {
		return fmt.Errorf("server.address must not be empty")
	}

	if config.Server.ReadTimeoutSeconds < 1 || config.Server.ReadTimeoutSeconds > 300 {
		return fmt.Errorf("server.read_timeout_seconds must be between 1 and 300, got: %d", config.Server.ReadTimeoutSeconds)
	}

	if config.Server.WriteTimeoutSeconds < 1 || config.Server.WriteTimeoutSeconds > 300 {
		return fmt.Errorf("server.write_timeout_seconds must be between 1 and 300, got: %d", config.Server.WriteTimeoutSeconds)
	}

	if config.Server.ShutdownTimeoutSeconds < 1 || config.Server.ShutdownTimeoutSeconds > 300 {
		return fmt.Errorf("server.shutdown_timeout_seconds must be between 1 and 300, got: %d", config.Server.ShutdownTimeoutSeconds)
	}

	if config.Server.MaxBodyBytes < 1 {
		return fmt.Errorf("server.max_body_bytes must be positive, got: %d", config.Server.MaxBodyBytes)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	return nil
}

// ConfigureLoggingFromConfig builds the application logger from the Config
// struct.
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(strings.ToLower(config.Log.Level), strings.ToLower(config.Log.Format))
}
