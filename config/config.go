// Package config reads settings from the environment, optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"web_controls/application/controls"
	"web_controls/infrastructure/browser"
)

const (
	DriverPlaywright = "playwright"
	DriverSelenium   = "selenium"

	DefaultBaseURL = "https://rahulshettyacademy.com"
)

type Config struct {
	Driver       string
	Headless     bool
	DriverPath   string
	ChromeBinary string
	StateDir     string

	BaseURL string

	PresenceTimeout   time.Duration
	SuggestionTimeout time.Duration
	PollInterval      time.Duration

	LogLevel     logrus.Level
	LocatorsFile string
}

// Load reads files (".env" when none are given) into the environment
// without overriding variables already set, then parses the settings.
// Missing env files are not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv parses the settings from the process environment
func FromEnv() (*Config, error) {
	cfg := &Config{
		DriverPath:   os.Getenv("BROWSER_DRIVER_PATH"),
		ChromeBinary: os.Getenv("CHROME_BINARY_PATH"),
		StateDir:     os.Getenv("BROWSER_STATE_DIR"),
		BaseURL:      strings.TrimRight(getEnv("BASE_URL", DefaultBaseURL), "/"),
		LocatorsFile: os.Getenv("LOCATORS_FILE"),
	}

	var err error
	if cfg.Driver, err = ParseDriver(getEnv("BROWSER_DRIVER", DriverPlaywright)); err != nil {
		return nil, fmt.Errorf("invalid BROWSER_DRIVER: %w", err)
	}
	if cfg.Headless, err = getBool("BROWSER_HEADLESS", false); err != nil {
		return nil, err
	}
	if cfg.PresenceTimeout, err = getDuration("PRESENCE_TIMEOUT", controls.DefaultPresenceTimeout); err != nil {
		return nil, err
	}
	if cfg.SuggestionTimeout, err = getDuration("SUGGESTION_TIMEOUT", controls.DefaultSuggestionTimeout); err != nil {
		return nil, err
	}
	if cfg.PollInterval, err = getDuration("POLL_INTERVAL", controls.DefaultPollInterval); err != nil {
		return nil, err
	}

	cfg.LogLevel, err = logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// ParseDriver lowercases name and checks it is a known browser backend
func ParseDriver(name string) (string, error) {
	driver := strings.ToLower(strings.TrimSpace(name))
	if driver != DriverPlaywright && driver != DriverSelenium {
		return "", fmt.Errorf("driver must be %q or %q, got %q", DriverPlaywright, DriverSelenium, name)
	}
	return driver, nil
}

// NewLogger builds the text logger used across the app
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(c.LogLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger
}

func (c *Config) BrowserOptions() browser.Options {
	return browser.Options{
		Headless:     c.Headless,
		DriverPath:   c.DriverPath,
		ChromeBinary: c.ChromeBinary,
	}
}

// ControlOptions applies the configured waits to controls
func (c *Config) ControlOptions(logger *logrus.Logger) []controls.Option {
	return []controls.Option{
		controls.WithPresenceTimeout(c.PresenceTimeout),
		controls.WithSuggestionTimeout(c.SuggestionTimeout),
		controls.WithPollInterval(c.PollInterval),
		controls.WithLogger(logrus.NewEntry(logger)),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

// getDuration accepts Go durations ("750ms") or plain seconds ("5", "0.5")
func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q is not a duration", key, v)
	}
	return time.Duration(secs * float64(time.Second)), nil
}
