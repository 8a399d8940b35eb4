// Package shop holds the unlock item catalog.
package shop

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Item is one purchasable unlock item.
type Item struct {
	Name        string  `yaml:"name"`
	Price       float64 `yaml:"price"`
	Description string  `yaml:"description"`

	// Requires lists item names that must already be owned before this
	// one can be bought (e.g. the Ancient Key gate).
	Requires []string `yaml:"requires,omitempty"`
}

// Catalog is the full shop inventory, loaded once at startup.
type Catalog struct {
	Items []Item `yaml:"items"`
}

// DefaultCatalog returns the built-in shop used when no data file exists.
func DefaultCatalog() *Catalog {
	return &Catalog{Items: []Item{
		{Name: "Boat", Price: 25000, Description: "Access Sea zone"},
		{Name: "Submarine", Price: 1000000, Description: "Access Bathyal zone"},
		{Name: "Torch", Price: 5000, Description: "Access Mystic Spring zone"},
		{Name: "Submarine Upgrade 01", Price: 10000000, Description: "Access Abyss Trench zone"},
		{
			Name:        "Submarine Upgrade 02",
			Price:       100000000,
			Description: "Access Ancient Sea zone",
			Requires:    []string{"Submarine Upgrade 01", "Ancient Key"},
		},
	}}
}

// LoadFromYAML loads the shop catalog from a YAML file, falling back to
// the built-in catalog when the file doesn't exist.
func LoadFromYAML(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCatalog(), nil
		}
		return nil, fmt.Errorf("failed to read shop file: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse shop YAML: %w", err)
	}
	if len(c.Items) == 0 {
		return DefaultCatalog(), nil
	}
	return &c, nil
}

// Item looks up a shop item by name.
func (c *Catalog) Item(name string) (Item, bool) {
	for _, it := range c.Items {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}
