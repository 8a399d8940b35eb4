package catalog

// Species is an immutable fish definition from the catalog data file.
// Keyed by (zone, name); unique within a zone.
type Species struct {
	Name      string  `yaml:"name"`
	Rarity    Rarity  `yaml:"rarity"`
	MinWeight float64 `yaml:"min_weight"` // kg
	MaxWeight float64 `yaml:"max_weight"` // kg
	BaseValue float64 `yaml:"base_value"` // currency per kg
	XP        int     `yaml:"xp"`
}

// Zone describes one fishing zone: its species table and minigame difficulty.
type Zone struct {
	Name string `yaml:"name"`

	// UnlockItem is the shop item required to fish here. Empty means
	// the zone is open from the start.
	UnlockItem string `yaml:"unlock_item,omitempty"`

	// CatchWidth is the length of the catch zone on the timing track.
	CatchWidth int `yaml:"catch_width"`

	// SpeedDivisor scales the pointer tick: higher is faster.
	SpeedDivisor float64 `yaml:"speed_divisor"`

	Species []Species `yaml:"species"`
}

// SpeciesByName looks up a species in this zone.
func (z *Zone) SpeciesByName(name string) (Species, bool) {
	for _, sp := range z.Species {
		if sp.Name == name {
			return sp, true
		}
	}
	return Species{}, false
}

// RaritiesPresent returns the rarity tiers that have at least one species
// in this zone, in ascending rarity order.
func (z *Zone) RaritiesPresent() []Rarity {
	present := make(map[Rarity]bool)
	for _, sp := range z.Species {
		present[sp.Rarity] = true
	}
	var out []Rarity
	for _, r := range Rarities() {
		if present[r] {
			out = append(out, r)
		}
	}
	return out
}

// SpeciesOfRarity returns all species of the given tier in this zone.
func (z *Zone) SpeciesOfRarity(r Rarity) []Species {
	var out []Species
	for _, sp := range z.Species {
		if sp.Rarity == r {
			out = append(out, sp)
		}
	}
	return out
}

// Catalog is the read-only reference data for every zone, loaded once at
// startup.
type Catalog struct {
	zones map[string]*Zone
	order []string

	// exotic species only appear during the Full Moon event.
	exotic []Species
}

// Zone returns a zone by name.
func (c *Catalog) Zone(name string) (*Zone, bool) {
	z, ok := c.zones[name]
	return z, ok
}

// Zones returns all zones in data-file order.
func (c *Catalog) Zones() []*Zone {
	out := make([]*Zone, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.zones[name])
	}
	return out
}

// ZoneCount returns the number of zones.
func (c *Catalog) ZoneCount() int {
	return len(c.order)
}

// FullMoonEncounter builds the transient zone used when an exotic fish
// bites during the Full Moon event: the exotic species table with the
// narrowest catch zone and the fastest pointer.
func (c *Catalog) FullMoonEncounter(base *Zone) *Zone {
	return &Zone{
		Name:         base.Name,
		CatchWidth:   2,
		SpeedDivisor: 10,
		Species:      c.exotic,
	}
}

// HasExotic reports whether any exotic species are configured.
func (c *Catalog) HasExotic() bool {
	return len(c.exotic) > 0
}
