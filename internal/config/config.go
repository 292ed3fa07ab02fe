// Package config handles shipgrid tool configuration loading and
// management.
package config

// Config holds all tool settings.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Convert ConvertConfig `yaml:"convert"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig holds input data paths.
type DataConfig struct {
	CatalogPath string `yaml:"catalog_path"` // Structure catalog YAML
}

// ConvertConfig overrides the game-data constants the converter uses.
// The defaults match the currently supported game data version.
type ConvertConfig struct {
	EmptyTypeCode int   `yaml:"empty_type_code"`
	HullTypeCodes []int `yaml:"hull_type_codes"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			CatalogPath: "catalog.yaml",
		},
		Convert: ConvertConfig{
			EmptyTypeCode: -1,
			HullTypeCodes: []int{1, 2},
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}
