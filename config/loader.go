package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPagerRows is the number of raw rows shown per page
const DefaultPagerRows = 5

// DefaultPaths are searched in order when LoadAppConfig is called without paths
var DefaultPaths = []string{"config.yml", "./bikeshare/config.yml"}

var (
	ErrUnknownCity   = errors.New("unknown city")
	ErrDuplicateCity = errors.New("duplicate city")
)

// Default returns the built-in configuration for the bundled city files.
func Default() AppConfig {
	return AppConfig{
		Data: DataConfig{Dir: "."},
		Cities: []City{
			{Name: "chicago", File: "chicago.csv"},
			{Name: "new york city", File: "new_york_city.csv"},
			{Name: "washington", File: "washington.csv"},
		},
		Pager: PagerConfig{Rows: DefaultPagerRows},
	}
}

// LoadAppConfig loads and validates the first config file found in paths.
// A missing file is not an error; the defaults are returned instead.
func LoadAppConfig(paths ...string) (AppConfig, error) {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	var data []byte
	found := false
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err == nil {
			data = b
			found = true
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return AppConfig{}, fmt.Errorf("read %s: %w", p, err)
		}
	}
	if !found {
		return Default(), nil
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("validate config: %w", err)
	}
	applyDefaults(&cfg)
	if err := checkCities(cfg.Cities); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	def := Default()
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = def.Data.Dir
	}
	if len(cfg.Cities) == 0 {
		cfg.Cities = def.Cities
	}
	if cfg.Pager.Rows == 0 {
		cfg.Pager.Rows = def.Pager.Rows
	}
	for i := range cfg.Cities {
		cfg.Cities[i].Name = normalize(cfg.Cities[i].Name)
	}
}

func checkCities(cities []City) error {
	seen := make(map[string]bool, len(cities))
	for _, c := range cities {
		if seen[c.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateCity, c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

// CityNames returns the selectable city names in configured order
func (c AppConfig) CityNames() []string {
	names := make([]string, 0, len(c.Cities))
	for _, city := range c.Cities {
		names = append(names, city.Name)
	}
	return names
}

// CityFiles returns the city name to file mapping used by the trip loader
func (c AppConfig) CityFiles() map[string]string {
	files := make(map[string]string, len(c.Cities))
	for _, city := range c.Cities {
		files[city.Name] = city.File
	}
	return files
}

// SelectCity looks up a city by name (case-insensitive).
func (c AppConfig) SelectCity(name string) (City, error) {
	name = normalize(name)
	for _, city := range c.Cities {
		if city.Name == name {
			return city, nil
		}
	}
	return City{}, fmt.Errorf("%w: %q", ErrUnknownCity, name)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
