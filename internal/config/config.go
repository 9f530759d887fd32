// Package config provides configuration management for the application.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/amaumene/moviehub/internal/constants"
)

const (
	// Default configuration file name
	defaultConfigFile = "config.json"
)

// Duration accepts either a Go duration string ("3s") or a number of
// seconds in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var secs float64
	if err := json.Unmarshal(b, &secs); err != nil {
		return fmt.Errorf("duration must be a string or a number of seconds")
	}
	*d = Duration(time.Duration(secs * float64(time.Second)))
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Config holds the application configuration.
// Values come from defaults, then an optional JSON file, then environment
// variables; later sources win.
type Config struct {
	// Remote catalog
	OMDbAPIKey    string `json:"OMDB_API_KEY"`
	OMDbBaseURL   string `json:"OMDB_BASE_URL"`
	OMDbRateLimit int64  `json:"OMDB_RATE_LIMIT"` // requests per second, 0 disables
	OMDbRateBurst int64  `json:"OMDB_RATE_BURST"`

	// HTTP server
	Port           string   `json:"PORT"`
	GinMode        string   `json:"GIN_MODE"`
	RequestTimeout Duration `json:"REQUEST_TIMEOUT"`
	SplashDuration Duration `json:"SPLASH_DURATION"`

	// Sessions
	SessionTTL      Duration `json:"SESSION_TTL"`
	SessionCapacity int      `json:"SESSION_CAPACITY"`

	LogLevel string `json:"LOG_LEVEL"`
}

// Defaults returns a configuration with every default applied.
func Defaults() *Config {
	return &Config{
		OMDbBaseURL:     constants.DefaultOMDbBaseURL,
		OMDbRateLimit:   constants.DefaultOMDbRateLimit,
		OMDbRateBurst:   constants.DefaultOMDbRateBurst,
		Port:            constants.DefaultPort,
		RequestTimeout:  Duration(constants.RequestTimeout),
		SplashDuration:  Duration(constants.SplashDuration),
		SessionTTL:      Duration(time.Duration(constants.DefaultSessionTTL) * time.Hour),
		SessionCapacity: constants.DefaultSessionCapacity,
		LogLevel:        constants.DefaultLogLevel,
	}
}

// Load reads configuration from an optional JSON file and environment
// variables. Environment variables take precedence over file values.
// Returns an error if the configuration is invalid.
func Load() (*Config, error) {
	cfg := Defaults()

	// Load from config file if exists
	configFile := getEnvOrDefault("CONFIG_FILE", defaultConfigFile)
	if err := cfg.loadFromFile(configFile); err != nil {
		// Ignore file not found errors
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from a JSON file.
func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, c)
}

// loadFromEnv loads configuration from environment variables.
func (c *Config) loadFromEnv() error {
	setString(&c.OMDbAPIKey, "OMDB_API_KEY")
	setString(&c.OMDbBaseURL, "OMDB_BASE_URL")
	setString(&c.Port, "PORT")
	setString(&c.GinMode, "GIN_MODE")
	setString(&c.LogLevel, "LOG_LEVEL")

	if err := setInt64(&c.OMDbRateLimit, "OMDB_RATE_LIMIT"); err != nil {
		return err
	}
	if err := setInt64(&c.OMDbRateBurst, "OMDB_RATE_BURST"); err != nil {
		return err
	}

	capacity := int64(c.SessionCapacity)
	if err := setInt64(&capacity, "SESSION_CAPACITY"); err != nil {
		return err
	}
	c.SessionCapacity = int(capacity)

	for key, dst := range map[string]*Duration{
		"REQUEST_TIMEOUT": &c.RequestTimeout,
		"SPLASH_DURATION": &c.SplashDuration,
		"SESSION_TTL":     &c.SessionTTL,
	} {
		if err := setDuration(dst, key); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks if the configuration is valid.
// Sets default values for missing optional fields.
func (c *Config) Validate() error {
	// OMDB_API_KEY is not required to start; searches report a network
	// error until one is configured.

	if strings.TrimSpace(c.OMDbBaseURL) == "" {
		c.OMDbBaseURL = constants.DefaultOMDbBaseURL
	}
	if strings.TrimSpace(c.Port) == "" {
		c.Port = constants.DefaultPort
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}

	if c.OMDbRateLimit < 0 {
		return fmt.Errorf("OMDB_RATE_LIMIT must not be negative")
	}
	if c.OMDbRateBurst <= 0 {
		c.OMDbRateBurst = constants.DefaultOMDbRateBurst
	}

	for name, d := range map[string]Duration{
		"REQUEST_TIMEOUT": c.RequestTimeout,
		"SPLASH_DURATION": c.SplashDuration,
		"SESSION_TTL":     c.SessionTTL,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = Duration(constants.RequestTimeout)
	}
	if c.SessionTTL == 0 {
		c.SessionTTL = Duration(time.Duration(constants.DefaultSessionTTL) * time.Hour)
	}

	if c.SessionCapacity <= 0 {
		c.SessionCapacity = constants.DefaultSessionCapacity
	}
	if c.LogLevel == "" {
		c.LogLevel = constants.DefaultLogLevel
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt64(dst *int64, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setDuration(dst *Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = Duration(d)
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
