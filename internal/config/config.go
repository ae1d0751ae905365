// Package config handles configuration loading.
package config

import (
	"os"

	"github.com/woozymasta/savedplaces/internal/export"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Title   string `yaml:"title,omitempty"`    // HTML launcher title
	Creator string `yaml:"creator,omitempty"`  // GPX creator attribute
	MapsURL string `yaml:"maps_url,omitempty"` // deep link base of the HTML launcher
	CSV     CSV    `yaml:"csv,omitempty"`
	Workers int    `yaml:"workers,omitempty"`
	Minify  bool   `yaml:"minify,omitempty"`
}

// CSV holds options of the tabular outputs (CSV and XLSX).
type CSV struct {
	URLInNotes bool `yaml:"url_in_notes,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Title:   export.DefaultTitle,
		Creator: export.DefaultCreator,
		MapsURL: export.DefaultMapsURL,
		Workers: 1,
	}
}

// Load reads and parses the YAML configuration file from the specified path.
// Keys missing from the file keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "config: read %s", path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, eris.Wrapf(err, "config: parse %s", path)
	}

	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	return cfg, nil
}

// ExportOptions maps the configuration onto serializer options.
func (c *Config) ExportOptions() export.Options {
	return export.Options{
		Title:           c.Title,
		Creator:         c.Creator,
		MapsURL:         c.MapsURL,
		Minify:          c.Minify,
		NotesIncludeURL: c.CSV.URLInNotes,
	}
}
