package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web_controls/domain/entities"
)

var envKeys = []string{
	"BROWSER_DRIVER", "BROWSER_HEADLESS", "BROWSER_DRIVER_PATH", "CHROME_BINARY_PATH",
	"BROWSER_STATE_DIR", "BASE_URL", "PRESENCE_TIMEOUT", "SUGGESTION_TIMEOUT",
	"POLL_INTERVAL", "LOG_LEVEL", "LOCATORS_FILE",
}

func clearEnv(t *testing.T) {
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DriverPlaywright, cfg.Driver)
	assert.False(t, cfg.Headless)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.PresenceTimeout)
	assert.Equal(t, 10*time.Second, cfg.SuggestionTimeout)
	assert.Equal(t, 100*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BROWSER_DRIVER", "Selenium")
	t.Setenv("BROWSER_HEADLESS", "true")
	t.Setenv("BASE_URL", "http://localhost:8080/")
	t.Setenv("PRESENCE_TIMEOUT", "2")
	t.Setenv("SUGGESTION_TIMEOUT", "1.5")
	t.Setenv("POLL_INTERVAL", "250ms")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DriverSelenium, cfg.Driver)
	assert.True(t, cfg.Headless)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.PresenceTimeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.SuggestionTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.BrowserOptions().Headless)
	assert.Len(t, cfg.ControlOptions(cfg.NewLogger()), 4)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "BROWSER_DRIVER", value: "lynx"},
		{key: "BROWSER_HEADLESS", value: "maybe"},
		{key: "PRESENCE_TIMEOUT", value: "soon"},
		{key: "LOG_LEVEL", value: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestParseDriver(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "playwright", want: DriverPlaywright},
		{name: "Selenium", want: DriverSelenium},
		{name: " PLAYWRIGHT ", want: DriverPlaywright},
		{name: "lynx", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDriver(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("BASE_URL")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("BASE_URL=http://example.test\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://example.test", cfg.BaseURL)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
}

func TestLoadLocators(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
country:
  by: id
  value: autocomplete
suggestions:
  by: css selector
  value: "#ui-id-1 li"
`), 0644))

	locators, err := LoadLocators(good)
	require.NoError(t, err)

	loc, ok := locators.Lookup("suggestions")
	require.True(t, ok)
	assert.Equal(t, entities.CSS("#ui-id-1 li"), loc)

	_, ok = locators.Lookup("missing")
	assert.False(t, ok)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("x:\n  by: sorcery\n  value: y\n"), 0644))
	_, err = LoadLocators(bad)
	assert.Error(t, err)

	_, err = LoadLocators(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}
