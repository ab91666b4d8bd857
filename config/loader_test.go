package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err, "Failed to create temp file")
	return path
}

// TestConfig_LoadFromFile tests loading a complete config file
func TestConfig_LoadFromFile(t *testing.T) {
	path := writeConfig(t, `
data:
  dir: /srv/bikeshare
cities:
  - name: Chicago
    file: chi.csv
  - name: washington
    file: dc.csv
pager:
  rows: 10
logging:
  verbose: true
`)

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)

	require.Equal(t, "/srv/bikeshare", cfg.Data.Dir)
	require.Equal(t, []string{"chicago", "washington"}, cfg.CityNames())
	require.Equal(t, map[string]string{"chicago": "chi.csv", "washington": "dc.csv"}, cfg.CityFiles())
	require.Equal(t, 10, cfg.Pager.Rows)
	require.True(t, cfg.Logging.Verbose)
}

// TestConfig_MissingFile tests that a missing config falls back to defaults
func TestConfig_MissingFile(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, []string{"chicago", "new york city", "washington"}, cfg.CityNames())
}

// TestConfig_SearchOrder tests that the first existing path wins
func TestConfig_SearchOrder(t *testing.T) {
	second := writeConfig(t, "pager:\n  rows: 7\n")
	third := writeConfig(t, "pager:\n  rows: 9\n")

	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "missing.yml"), second, third)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Pager.Rows)
}

// TestConfig_InvalidYAML tests error handling for invalid YAML
func TestConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "invalid: yaml: content: [[[")

	_, err := LoadAppConfig(path)
	require.Error(t, err, "Loading invalid YAML should return error")
}

// TestConfig_EmptyFile tests that an empty file yields the defaults
func TestConfig_EmptyFile(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)
	require.Equal(t, DefaultPagerRows, cfg.Pager.Rows)
	require.Equal(t, ".", cfg.Data.Dir)
	require.Len(t, cfg.Cities, 3)
}

func TestConfig_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "city without file",
			content: "cities:\n  - name: chicago\n",
		},
		{
			name:    "city without name",
			content: "cities:\n  - file: chicago.csv\n",
		},
		{
			name:    "negative pager rows",
			content: "pager:\n  rows: -1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadAppConfig(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestConfig_DuplicateCity(t *testing.T) {
	path := writeConfig(t, `
cities:
  - name: chicago
    file: a.csv
  - name: " CHICAGO "
    file: b.csv
`)

	_, err := LoadAppConfig(path)
	require.ErrorIs(t, err, ErrDuplicateCity)
}

func TestConfig_SelectCity(t *testing.T) {
	cfg := Default()

	city, err := cfg.SelectCity("  New York City ")
	require.NoError(t, err)
	require.Equal(t, "new_york_city.csv", city.File)

	_, err = cfg.SelectCity("boston")
	require.ErrorIs(t, err, ErrUnknownCity)
}
