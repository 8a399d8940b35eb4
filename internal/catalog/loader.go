package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the structure of the fish data YAML file.
type catalogFile struct {
	Zones  []*Zone   `yaml:"zones"`
	Exotic []Species `yaml:"exotic"`
}

// LoadFromYAML loads the fish catalog from a YAML file.
func LoadFromYAML(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read fish catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds and validates a catalog from YAML data.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse fish catalog YAML: %w", err)
	}

	c := &Catalog{
		zones:  make(map[string]*Zone),
		exotic: file.Exotic,
	}

	for _, z := range file.Zones {
		if z.Name == "" {
			return nil, fmt.Errorf("zone with empty name in catalog")
		}
		if _, dup := c.zones[z.Name]; dup {
			return nil, fmt.Errorf("duplicate zone %q in catalog", z.Name)
		}
		if err := validateZone(z); err != nil {
			return nil, err
		}
		c.zones[z.Name] = z
		c.order = append(c.order, z.Name)
	}

	if len(c.order) == 0 {
		return nil, fmt.Errorf("fish catalog defines no zones")
	}

	return c, nil
}

func validateZone(z *Zone) error {
	if z.CatchWidth <= 0 {
		return fmt.Errorf("zone %q: catch_width must be positive", z.Name)
	}
	if z.SpeedDivisor <= 0 {
		return fmt.Errorf("zone %q: speed_divisor must be positive", z.Name)
	}
	seen := make(map[string]bool)
	for _, sp := range z.Species {
		if sp.Name == "" {
			return fmt.Errorf("zone %q: species with empty name", z.Name)
		}
		if seen[sp.Name] {
			return fmt.Errorf("zone %q: duplicate species %q", z.Name, sp.Name)
		}
		seen[sp.Name] = true
		if sp.MinWeight < 0 || sp.MaxWeight < sp.MinWeight {
			return fmt.Errorf("zone %q: species %q has invalid weight range [%g, %g]",
				z.Name, sp.Name, sp.MinWeight, sp.MaxWeight)
		}
	}
	return nil
}
