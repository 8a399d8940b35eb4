package catalog

import "fmt"

// WeightTable maps rarity tiers to relative selection weights for the
// rarity-weighted species draw. Weights are relative; the draw normalizes
// them over the species actually present in a zone.
type WeightTable map[Rarity]float64

// DefaultWeightTable returns the stock tuning: strictly decreasing weight
// as rarity increases.
func DefaultWeightTable() WeightTable {
	return WeightTable{
		Common:    40,
		Uncommon:  24,
		Rare:      14,
		Epic:      8,
		Legendary: 5,
		Mythical:  3,
		Exotic:    1,
	}
}

// WeightOf returns the relative weight for a tier. Unknown tiers weigh zero.
func (t WeightTable) WeightOf(r Rarity) float64 {
	return t[r]
}

// Validate checks the contract for rarity weights: every tier has a
// positive weight and a strictly rarer tier has a strictly lower weight.
func (t WeightTable) Validate() error {
	tiers := Rarities()
	for _, r := range tiers {
		if t[r] <= 0 {
			return fmt.Errorf("rarity weight for %s must be positive, got %g", r, t[r])
		}
	}
	for i := 1; i < len(tiers); i++ {
		if t[tiers[i]] >= t[tiers[i-1]] {
			return fmt.Errorf("rarity weights must strictly decrease: %s (%g) >= %s (%g)",
				tiers[i], t[tiers[i]], tiers[i-1], t[tiers[i-1]])
		}
	}
	return nil
}
