// Package config loads client configuration from the environment.
package config

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/homecircle/homecircle-go/api"
)

// Config holds everything the client layer needs to reach the backend.
type Config struct {
	// Backend
	APIURL  string
	Token   string
	Timeout time.Duration

	// Logging: "human" or "json"
	LogFormat string
	LogLevel  string

	// Directory downloaded attachments are saved to for sharing
	DocumentsDir string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is read first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIURL:       getEnv("HOMECIRCLE_API_URL", "https://api.homecircle.app"),
		Token:        getEnv("HOMECIRCLE_TOKEN", ""),
		Timeout:      getEnvDuration("HOMECIRCLE_TIMEOUT", 30*time.Second),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		DocumentsDir: getEnv("HOMECIRCLE_DOCUMENTS_DIR", "."),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errs []string

	if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("invalid API URL %q", c.APIURL))
	}

	if c.LogFormat != "human" && c.LogFormat != "json" {
		errs = append(errs, fmt.Sprintf("invalid log format %q: must be 'human' or 'json'", c.LogFormat))
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("invalid log level %q", c.LogLevel))
	}

	if c.Timeout < time.Second {
		errs = append(errs, fmt.Sprintf("invalid timeout %v: must be at least 1 second", c.Timeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

// Logger builds the process logger according to the configuration.
func (c *Config) Logger() zerolog.Logger {
	output := io.Writer(os.Stdout)
	if c.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// Client builds the API client from the configuration.
func (c *Config) Client() (*api.Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return api.New(c.APIURL,
		api.WithToken(c.Token),
		api.WithTimeout(c.Timeout),
		api.WithLogger(c.Logger()),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
