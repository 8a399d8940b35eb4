package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rarity classifies fish scarcity. Tiers are totally ordered: a higher
// value is strictly rarer than a lower one.
type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
	Epic
	Legendary
	Mythical
	Exotic
)

// Rarities returns all tiers in ascending rarity order.
func Rarities() []Rarity {
	return []Rarity{Common, Uncommon, Rare, Epic, Legendary, Mythical, Exotic}
}

// String returns the display name of a rarity tier.
func (r Rarity) String() string {
	switch r {
	case Common:
		return "Common"
	case Uncommon:
		return "Uncommon"
	case Rare:
		return "Rare"
	case Epic:
		return "Epic"
	case Legendary:
		return "Legendary"
	case Mythical:
		return "Mythical"
	case Exotic:
		return "Exotic"
	default:
		return "Unknown"
	}
}

// ParseRarity converts a display name to a Rarity. Case-insensitive.
func ParseRarity(s string) (Rarity, error) {
	for _, r := range Rarities() {
		if strings.EqualFold(r.String(), s) {
			return r, nil
		}
	}
	return Common, fmt.Errorf("unknown rarity %q", s)
}

// UnmarshalYAML parses a rarity from its display name in data files.
func (r *Rarity) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseRarity(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalYAML writes the rarity as its display name.
func (r Rarity) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}
