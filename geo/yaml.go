package geo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ShinjiMC/Simulated-Annealing-TSP/tsp"
)

// pointsFile is the on-disk YAML layout:
//
//	points:
//	  - {name: Lima, x: -77.03, y: -12.04}
type pointsFile struct {
	Points []pointRecord `yaml:"points"`
}

type pointRecord struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// LoadPointsYAML reads a YAML point list from path.
func LoadPointsYAML(path string) ([]Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading points file %s: %w", path, err)
	}

	return ParsePointsYAML(data)
}

// ParsePointsYAML parses a YAML point list. Unnamed points are labelled
// "point-<index>".
func ParsePointsYAML(data []byte) ([]Site, error) {
	var f pointsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing points YAML: %w", err)
	}
	if len(f.Points) == 0 {
		return nil, fmt.Errorf("points YAML: %w", ErrEmptyCollection)
	}

	sites := make([]Site, len(f.Points))
	for i, p := range f.Points {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("point-%d", i)
		}
		sites[i] = Site{Name: name, Point: tsp.Point{X: p.X, Y: p.Y}}
	}

	return sites, nil
}

// SavePointsYAML writes sites in the layout LoadPointsYAML reads.
func SavePointsYAML(path string, sites []Site) error {
	f := pointsFile{Points: make([]pointRecord, len(sites))}
	for i, s := range sites {
		f.Points[i] = pointRecord{Name: s.Name, X: s.Point.X, Y: s.Point.Y}
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshaling points YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing points file %s: %w", path, err)
	}

	return nil
}
