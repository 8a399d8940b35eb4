// Package quest implements the per-zone quest engine: ten auto-generated
// quest slots whose progress tracks catch events.
package quest

import (
	"errors"
	"fmt"

	"github.com/saltlinegames/deepcast/internal/catalog"
)

// SlotCount is the number of quest slots every unlocked zone holds.
const SlotCount = 10

// ErrNotCompleted is returned when finishing a quest whose progress has
// not reached its target.
var ErrNotCompleted = errors.New("quest requirements not met")

// Kind is the quest objective variant.
type Kind int

const (
	// KindSpecificSpecies requires catching a set number of one species.
	KindSpecificSpecies Kind = iota

	// KindRarityCount requires catching a set number of fish of one
	// rarity tier, any species.
	KindRarityCount
)

// String returns a short name for the quest kind.
func (k Kind) String() string {
	switch k {
	case KindSpecificSpecies:
		return "species"
	case KindRarityCount:
		return "rarity"
	default:
		return "unknown"
	}
}

// Quest is one active quest occupying a slot. Slot identity (1-SlotCount)
// is stable across replacement; only quest contents change.
type Quest struct {
	Slot     int            `json:"slot"`
	Kind     Kind           `json:"kind"`
	Species  string         `json:"species,omitempty"`
	Rarity   catalog.Rarity `json:"rarity"`
	Target   int            `json:"target"`
	Progress int            `json:"progress"`
	Reward   float64        `json:"reward"`
}

// Completed reports whether the quest's objective has been met.
func (q *Quest) Completed() bool {
	return q.Progress >= q.Target
}

// Matches reports whether a catch of the given species and rarity counts
// toward this quest.
func (q *Quest) Matches(species string, rarity catalog.Rarity) bool {
	switch q.Kind {
	case KindSpecificSpecies:
		return q.Species == species
	case KindRarityCount:
		return q.Rarity == rarity
	default:
		return false
	}
}

// Requirement returns the display text for the quest objective.
func (q *Quest) Requirement(zone string) string {
	switch q.Kind {
	case KindSpecificSpecies:
		return fmt.Sprintf("Catch %d %s in %s", q.Target, q.Species, zone)
	case KindRarityCount:
		return fmt.Sprintf("Catch %d %s fish in %s", q.Target, q.Rarity, zone)
	default:
		return "Unknown objective"
	}
}
