// Package player holds the mutable player and zone state: currency,
// inventory, unlocks, discovery logs and quest logs. Each public method
// is one atomic mutation; the game layer triggers autosave after each.
package player

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/saltlinegames/deepcast/internal/catalog"
	"github.com/saltlinegames/deepcast/internal/quest"
)

var (
	// ErrInsufficientFunds is returned by Spend when currency is too low.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNotEnoughFish is returned when selling more of a species than
	// the inventory holds.
	ErrNotEnoughFish = errors.New("not enough fish of that species")
)

// MaxLevel caps player progression.
const MaxLevel = 100

// CaughtFish is one fish instance in the inventory. Destroyed on sell.
type CaughtFish struct {
	ID      string         `json:"id"`
	Species string         `json:"species"`
	Rarity  catalog.Rarity `json:"rarity"`
	Weight  float64        `json:"weight"`
	Value   float64        `json:"value"`
	Zone    string         `json:"zone"`
}

// DiscoveryEntry records one species in a zone's discovery log.
type DiscoveryEntry struct {
	Count     int     `json:"count"`
	MaxWeight float64 `json:"max_weight"`
	MaxValue  float64 `json:"max_value"`
}

// State is the whole mutable player/world aggregate. It is process-local
// and single-actor; no locking is needed.
type State struct {
	Currency    float64
	Level       int
	XP          int
	CurrentZone string
	Inventory   []CaughtFish
	Items       map[string]bool
	Discovery   map[string]map[string]*DiscoveryEntry
	Quests      map[string]*quest.Log
}

// NewState creates a fresh first-run state.
func NewState(startZone string, startCurrency float64) *State {
	return &State{
		Currency:    startCurrency,
		CurrentZone: startZone,
		Items:       make(map[string]bool),
		Discovery:   make(map[string]map[string]*DiscoveryEntry),
		Quests:      make(map[string]*quest.Log),
	}
}

// Normalize initializes any nil maps, e.g. after loading an old snapshot.
func (s *State) Normalize() {
	if s.Items == nil {
		s.Items = make(map[string]bool)
	}
	if s.Discovery == nil {
		s.Discovery = make(map[string]map[string]*DiscoveryEntry)
	}
	if s.Quests == nil {
		s.Quests = make(map[string]*quest.Log)
	}
}

// AddCatch adds a fish to the inventory, assigning an instance ID if it
// doesn't have one. Returns the stored fish.
func (s *State) AddCatch(f CaughtFish) CaughtFish {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	s.Inventory = append(s.Inventory, f)
	return f
}

// CreditCurrency adds to the player's balance.
func (s *State) CreditCurrency(amount float64) {
	s.Currency += amount
}

// Spend deducts from the balance, rejecting overdrafts.
func (s *State) Spend(amount float64) error {
	if amount > s.Currency {
		return fmt.Errorf("%w: need %.2f, have %.2f", ErrInsufficientFunds, amount, s.Currency)
	}
	s.Currency -= amount
	return nil
}

// GrantItem marks an unlock item as owned.
func (s *State) GrantItem(name string) {
	s.Items[name] = true
}

// HasItem reports whether an unlock item is owned.
func (s *State) HasItem(name string) bool {
	return s.Items[name]
}

// ZoneUnlocked reports whether the player can fish a zone.
func (s *State) ZoneUnlocked(z *catalog.Zone) bool {
	return z.UnlockItem == "" || s.Items[z.UnlockItem]
}

// RecordDiscovery updates the zone's discovery log for a caught species.
func (s *State) RecordDiscovery(zone, species string, weight, value float64) {
	zoneLog := s.Discovery[zone]
	if zoneLog == nil {
		zoneLog = make(map[string]*DiscoveryEntry)
		s.Discovery[zone] = zoneLog
	}
	entry := zoneLog[species]
	if entry == nil {
		entry = &DiscoveryEntry{}
		zoneLog[species] = entry
	}
	entry.Count++
	if weight > entry.MaxWeight {
		entry.MaxWeight = weight
	}
	if value > entry.MaxValue {
		entry.MaxValue = value
	}
}

// DiscoveryFor returns a zone's discovery log (may be nil).
func (s *State) DiscoveryFor(zone string) map[string]*DiscoveryEntry {
	return s.Discovery[zone]
}

// QuestLog returns the quest log for a zone (may be nil if the zone has
// never been unlocked).
func (s *State) QuestLog(zone string) *quest.Log {
	return s.Quests[zone]
}

// SetQuestLog installs a quest log for a zone.
func (s *State) SetQuestLog(zone string, l *quest.Log) {
	s.Quests[zone] = l
}

// CountSpecies returns how many fish of the species are in the inventory.
func (s *State) CountSpecies(name string) int {
	count := 0
	for _, f := range s.Inventory {
		if f.Species == name {
			count++
		}
	}
	return count
}

// SpeciesNames returns the distinct species names currently held, in
// inventory order.
func (s *State) SpeciesNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, f := range s.Inventory {
		if !seen[f.Species] {
			seen[f.Species] = true
			names = append(names, f.Species)
		}
	}
	return names
}

// SellAll sells the whole inventory, crediting the total value.
func (s *State) SellAll() float64 {
	var total float64
	for _, f := range s.Inventory {
		total += f.Value
	}
	s.Inventory = nil
	s.Currency += total
	return total
}

// SellSpecies sells count fish of the given species (oldest first),
// crediting their value. Fails without mutation if the inventory holds
// fewer than count.
func (s *State) SellSpecies(name string, count int) (float64, error) {
	if count <= 0 {
		return 0, fmt.Errorf("sell count must be positive, got %d", count)
	}
	if s.CountSpecies(name) < count {
		return 0, fmt.Errorf("%w: %q", ErrNotEnoughFish, name)
	}

	var total float64
	sold := 0
	kept := s.Inventory[:0]
	for _, f := range s.Inventory {
		if sold < count && f.Species == name {
			total += f.Value
			sold++
			continue
		}
		kept = append(kept, f)
	}
	s.Inventory = kept
	s.Currency += total
	return total, nil
}
