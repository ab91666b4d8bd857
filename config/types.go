package config

// DataConfig locates the city trip files
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// City maps a selectable city name to its trip file
type City struct {
	Name string `yaml:"name" validate:"required"`
	File string `yaml:"file" validate:"required"`
}

// PagerConfig contains raw-record pager configuration
type PagerConfig struct {
	Rows int `yaml:"rows" validate:"gte=0"`
}

// LoggingConfig contains diagnostic logging configuration
type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Data    DataConfig    `yaml:"data"`
	Cities  []City        `yaml:"cities" validate:"omitempty,dive"`
	Pager   PagerConfig   `yaml:"pager"`
	Logging LoggingConfig `yaml:"logging"`
}
