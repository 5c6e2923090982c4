package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/iothub-httpapi/internal/constants"
	"github.com/oshokin/iothub-httpapi/internal/logger"
	"github.com/oshokin/iothub-httpapi/internal/utils"
	"github.com/oshokin/iothub-httpapi/internal/version"
)

// Config holds all configuration settings.
type Config struct {
	// Host is the IoT hub host name requests are sent to.
	Host string `mapstructure:"host" yaml:"host"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// Timeout is the response timeout applied through the "timeout" option (e.g., "10s").
	Timeout string `mapstructure:"timeout" yaml:"timeout"`
	// UserAgent is added to requests that do not carry their own User-Agent header.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
	// MaxLogLength limits debug dumps of wire traffic (e.g., "1 MB", "64KB").
	MaxLogLength string `mapstructure:"max_log_length" yaml:"max_log_length"`
	// MaxResponseSize caps the response body a request may announce (e.g., "16 MiB").
	MaxResponseSize string `mapstructure:"max_response_size" yaml:"max_response_size"`
	// CAFile is an optional PEM bundle that replaces the system trust roots.
	CAFile string `mapstructure:"ca_file" yaml:"ca_file"`
	// InsecureSkipVerify disables server certificate verification.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify" yaml:"insecure_skip_verify"`
	// MetricsFile is where request metrics are written in Prometheus text format. Empty disables it.
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `yaml:"-"`
	// ParsedTimeout is the parsed response timeout.
	ParsedTimeout time.Duration `yaml:"-"`
	// ParsedMaxLogLength is the parsed debug dump limit in bytes.
	ParsedMaxLogLength uint64 `yaml:"-"`
	// ParsedMaxResponseSize is the parsed response body cap in bytes.
	ParsedMaxResponseSize uint64 `yaml:"-"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".iothub-httpapi.yaml"

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"

	// DefaultTimeout is the default response timeout.
	DefaultTimeout = "10s"

	// DefaultMaxLogLength is the default maximum size (in bytes) of a single debug dump.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// DefaultMaxResponseSize is the default cap on a response body.
	DefaultMaxResponseSize = 16 * 1024 * 1024 // 16 MB
)

// Static error definitions for better error handling.
var (
	// ErrEmptyHost indicates that the host name is missing.
	ErrEmptyHost = errors.New("host cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidTimeout indicates that the timeout is not positive.
	ErrInvalidTimeout = errors.New("timeout must be positive")
	// ErrTimeoutTooLarge indicates that the timeout does not fit into an unsigned 32-bit millisecond count.
	ErrTimeoutTooLarge = errors.New("timeout is too large")
	// ErrInvalidMaxLogLength indicates that max_log_length is zero.
	ErrInvalidMaxLogLength = errors.New("max_log_length must be positive")
	// ErrInvalidMaxResponseSize indicates that max_response_size is zero.
	ErrInvalidMaxResponseSize = errors.New("max_response_size must be positive")
	// ErrConfigExists indicates that SaveConfig would overwrite an existing file.
	ErrConfigExists = errors.New("configuration file already exists")
)

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		LogLevel:        DefaultLogLevel,
		Timeout:         DefaultTimeout,
		UserAgent:       utils.ProductUserAgent(constants.ApplicationName, version.Short()).GetUserAgent(),
		MaxLogLength:    humanize.IBytes(DefaultMaxLogLength),
		MaxResponseSize: humanize.IBytes(DefaultMaxResponseSize),
	}
}

// LoadConfig loads configuration settings from a YAML file.
// When configFilename is empty, the default file is read if present and defaults are used otherwise.
func LoadConfig(configFilename string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("timeout", defaults.Timeout)
	v.SetDefault("user_agent", defaults.UserAgent)
	v.SetDefault("max_log_length", defaults.MaxLogLength)
	v.SetDefault("max_response_size", defaults.MaxResponseSize)

	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigFilename
	}

	v.SetConfigFile(configFilename)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if isExplicit || !isNotExist(err) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	var err error

	cfg.Host = strings.TrimSpace(cfg.Host)
	if cfg.Host == "" {
		return ErrEmptyHost
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedTimeout, err = time.ParseDuration(strings.TrimSpace(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("failed to parse timeout: %w", err)
	}

	if cfg.ParsedTimeout <= 0 {
		return ErrInvalidTimeout
	}

	if cfg.ParsedTimeout.Milliseconds() > math.MaxUint32 {
		return fmt.Errorf("%w: %s", ErrTimeoutTooLarge, cfg.ParsedTimeout)
	}

	cfg.ParsedMaxLogLength, err = humanize.ParseBytes(strings.TrimSpace(cfg.MaxLogLength))
	if err != nil {
		return fmt.Errorf("failed to parse max log length: %w", err)
	}

	if cfg.ParsedMaxLogLength == 0 {
		return ErrInvalidMaxLogLength
	}

	cfg.ParsedMaxResponseSize, err = humanize.ParseBytes(strings.TrimSpace(cfg.MaxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to parse max response size: %w", err)
	}

	if cfg.ParsedMaxResponseSize == 0 {
		return ErrInvalidMaxResponseSize
	}

	return nil
}

// TimeoutMilliseconds returns the parsed timeout as the unsigned millisecond count
// expected by the "timeout" option.
func (c *Config) TimeoutMilliseconds() uint32 {
	ms := utils.SafeInt64ToUint64(c.ParsedTimeout.Milliseconds())
	if ms > math.MaxUint32 {
		return math.MaxUint32
	}

	return uint32(ms)
}

// SaveConfig writes cfg as YAML to path. Existing files are kept unless overwrite is set.
func SaveConfig(cfg *Config, path string, overwrite bool) error {
	if path == "" {
		path = DefaultConfigFilename
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, constants.DefaultFolderPermissions); err != nil {
			return fmt.Errorf("failed to create config folder: %w", err)
		}
	}

	if err = os.WriteFile(path, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError

	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
