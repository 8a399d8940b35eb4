package quest

import (
	"github.com/saltlinegames/deepcast/internal/catalog"
	"github.com/saltlinegames/deepcast/internal/rng"
)

// Config tunes quest generation.
type Config struct {
	SpeciesTargetMin int
	SpeciesTargetMax int
	RarityTargetMin  int
	RarityTargetMax  int

	// Rewards is the base reward per catch by rarity; the quest reward
	// is the base times the target count.
	Rewards map[catalog.Rarity]float64
}

// DefaultConfig returns the stock generation tuning.
func DefaultConfig() Config {
	return Config{
		SpeciesTargetMin: 3,
		SpeciesTargetMax: 8,
		RarityTargetMin:  1,
		RarityTargetMax:  5,
		Rewards: map[catalog.Rarity]float64{
			catalog.Common:    100,
			catalog.Uncommon:  200,
			catalog.Rare:      3000,
			catalog.Epic:      5000,
			catalog.Legendary: 10000,
			catalog.Mythical:  15000,
			catalog.Exotic:    50000,
		},
	}
}

// RaritiesForLevel returns the rarity tiers quest generation may target
// at the given player level. Higher tiers unlock as the player levels.
func RaritiesForLevel(level int) []catalog.Rarity {
	rarities := []catalog.Rarity{catalog.Common, catalog.Uncommon}
	if level >= 5 {
		rarities = append(rarities, catalog.Rare)
	}
	if level >= 10 {
		rarities = append(rarities, catalog.Epic)
	}
	if level >= 20 {
		rarities = append(rarities, catalog.Legendary)
	}
	if level >= 30 {
		rarities = append(rarities, catalog.Mythical)
	}
	if level >= 40 {
		rarities = append(rarities, catalog.Exotic)
	}
	return rarities
}

// Generator produces quests for zone slots.
type Generator struct {
	rng *rng.RNG
	cfg Config
}

// NewGenerator creates a generator drawing from the given RNG.
func NewGenerator(r *rng.RNG, cfg Config) *Generator {
	return &Generator{rng: r, cfg: cfg}
}

// Generate produces a fresh quest for the given slot. The kind is picked
// uniformly between the two templates; choices that cannot be satisfied by
// the zone's catalog are excluded up front, so the result is never
// structurally unsatisfiable. Returns nil only for a zone with an empty
// species table.
func (g *Generator) Generate(zone *catalog.Zone, slot, playerLevel int) *Quest {
	if zone == nil || len(zone.Species) == 0 {
		return nil
	}

	if g.rng.Intn(2) == 0 {
		return g.generateSpeciesQuest(zone, slot)
	}
	return g.generateRarityQuest(zone, slot, playerLevel)
}

func (g *Generator) generateSpeciesQuest(zone *catalog.Zone, slot int) *Quest {
	sp := zone.Species[g.rng.Intn(len(zone.Species))]
	target := g.rng.IntBetween(g.cfg.SpeciesTargetMin, g.cfg.SpeciesTargetMax)
	return &Quest{
		Slot:    slot,
		Kind:    KindSpecificSpecies,
		Species: sp.Name,
		Rarity:  sp.Rarity,
		Target:  target,
		Reward:  g.cfg.Rewards[sp.Rarity] * float64(target),
	}
}

func (g *Generator) generateRarityQuest(zone *catalog.Zone, slot, playerLevel int) *Quest {
	present := zone.RaritiesPresent()

	// Restrict to tiers the player's level allows, but never leave the
	// pool empty: a zone of only high-tier fish still gets valid quests.
	allowed := make(map[catalog.Rarity]bool)
	for _, r := range RaritiesForLevel(playerLevel) {
		allowed[r] = true
	}
	var pool []catalog.Rarity
	for _, r := range present {
		if allowed[r] {
			pool = append(pool, r)
		}
	}
	if len(pool) == 0 {
		pool = present
	}

	rarity := pool[g.rng.Intn(len(pool))]
	target := g.rng.IntBetween(g.cfg.RarityTargetMin, g.cfg.RarityTargetMax)
	return &Quest{
		Slot:   slot,
		Kind:   KindRarityCount,
		Rarity: rarity,
		Target: target,
		Reward: g.cfg.Rewards[rarity] * float64(target),
	}
}
