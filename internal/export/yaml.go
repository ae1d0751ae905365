package export

import (
	"io"

	"github.com/woozymasta/savedplaces/internal/places"

	"gopkg.in/yaml.v3"
)

type yamlPlace struct {
	Name       string  `yaml:"name"`
	Latitude   float64 `yaml:"latitude"`
	Longitude  float64 `yaml:"longitude"`
	URL        string  `yaml:"url,omitempty"`
	Annotation string  `yaml:"annotation,omitempty"`
	Date       string  `yaml:"date,omitempty"`
	Address    string  `yaml:"address,omitempty"`
	Comment    string  `yaml:"comment,omitempty"`
	Ordinal    int     `yaml:"ordinal"`
}

// WriteYAML renders places as a YAML sequence.
func WriteYAML(w io.Writer, list []places.Place, _ Options) error {
	out := make([]yamlPlace, 0, len(list))
	for _, p := range list {
		out = append(out, yamlPlace{
			Name:       p.Name,
			Latitude:   p.Latitude,
			Longitude:  p.Longitude,
			URL:        p.SourceURL,
			Annotation: p.Annotation,
			Date:       p.Date,
			Address:    p.Address,
			Comment:    p.Comment,
			Ordinal:    p.Ordinal,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
