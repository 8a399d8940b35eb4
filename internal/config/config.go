package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/saltlinegames/deepcast/internal/catalog"
)

// GameConfig holds gameplay tuning loaded from YAML. Every value has a
// default so the game runs without a config file.
type GameConfig struct {
	Minigame MinigameConfig `yaml:"minigame"`
	Fishing  FishingConfig  `yaml:"fishing"`
	Quests   QuestsConfig   `yaml:"quests"`
	Rarity   RarityConfig   `yaml:"rarity"`
	Player   PlayerConfig   `yaml:"player"`
}

// MinigameConfig tunes the pointer-timing minigame.
type MinigameConfig struct {
	// TrackWidth is the number of pointer positions on the timing track.
	TrackWidth int `yaml:"track_width"`

	// BaseTickMS is the pointer step interval in milliseconds before the
	// zone speed divisor is applied.
	BaseTickMS int `yaml:"base_tick_ms"`

	// EscapeChancePercent is the chance a fish still escapes after a
	// strike inside the catch zone.
	EscapeChancePercent int `yaml:"escape_chance_percent"`

	// MinZoneStart is the earliest track position the catch zone may
	// start at.
	MinZoneStart int `yaml:"min_zone_start"`
}

// FishingConfig tunes the bite loop and the Full Moon event.
type FishingConfig struct {
	BiteChancePercent     int `yaml:"bite_chance_percent"`
	InitialWaitSeconds    int `yaml:"initial_wait_seconds"`
	MaxWaitSeconds        int `yaml:"max_wait_seconds"`
	FullMoonStartHour     int `yaml:"full_moon_start_hour"`
	FullMoonChancePercent int `yaml:"full_moon_chance_percent"`

	// FullMoonZone is the zone where exotic fish bite during the event.
	FullMoonZone string `yaml:"full_moon_zone"`
}

// QuestsConfig tunes quest generation.
type QuestsConfig struct {
	SpeciesTargetMin int `yaml:"species_target_min"`
	SpeciesTargetMax int `yaml:"species_target_max"`
	RarityTargetMin  int `yaml:"rarity_target_min"`
	RarityTargetMax  int `yaml:"rarity_target_max"`

	// Rewards is the base reward per catch, keyed by rarity display name.
	Rewards map[string]float64 `yaml:"rewards"`
}

// RarityConfig tunes rarity selection weights and XP grants.
type RarityConfig struct {
	// Weights are relative selection weights keyed by rarity display
	// name; they must strictly decrease as rarity increases.
	Weights map[string]float64 `yaml:"weights"`

	// XP is the experience granted per catch, keyed by rarity name.
	XP map[string]int `yaml:"xp"`
}

// PlayerConfig tunes starting state.
type PlayerConfig struct {
	StartCurrency float64 `yaml:"start_currency"`
	StartZone     string  `yaml:"start_zone"`
}

// DefaultConfig returns the stock tuning, matched to the shipped data files.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Minigame: MinigameConfig{
			TrackWidth:          26,
			BaseTickMS:          100,
			EscapeChancePercent: 20,
			MinZoneStart:        5,
		},
		Fishing: FishingConfig{
			BiteChancePercent:     60,
			InitialWaitSeconds:    2,
			MaxWaitSeconds:        6,
			FullMoonStartHour:     20,
			FullMoonChancePercent: 20,
			FullMoonZone:          "Bathyal",
		},
		Quests: QuestsConfig{
			SpeciesTargetMin: 3,
			SpeciesTargetMax: 8,
			RarityTargetMin:  1,
			RarityTargetMax:  5,
			Rewards: map[string]float64{
				"Common":    100,
				"Uncommon":  200,
				"Rare":      3000,
				"Epic":      5000,
				"Legendary": 10000,
				"Mythical":  15000,
				"Exotic":    50000,
			},
		},
		Rarity: RarityConfig{
			Weights: map[string]float64{
				"Common":    40,
				"Uncommon":  24,
				"Rare":      14,
				"Epic":      8,
				"Legendary": 5,
				"Mythical":  3,
				"Exotic":    1,
			},
			XP: map[string]int{
				"Common":    5,
				"Uncommon":  10,
				"Rare":      30,
				"Epic":      100,
				"Legendary": 1000,
				"Mythical":  1000,
				"Exotic":    100000,
			},
		},
		Player: PlayerConfig{
			StartCurrency: 100,
			StartZone:     "Lake",
		},
	}
}

// LoadConfig loads gameplay tuning from a YAML file. If the file doesn't
// exist, returns defaults.
func LoadConfig(path string) (*GameConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// WeightTable converts the configured rarity weights into a validated
// catalog.WeightTable.
func (c *GameConfig) WeightTable() (catalog.WeightTable, error) {
	table := make(catalog.WeightTable, len(c.Rarity.Weights))
	for name, w := range c.Rarity.Weights {
		r, err := catalog.ParseRarity(name)
		if err != nil {
			return nil, fmt.Errorf("rarity weights: %w", err)
		}
		table[r] = w
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// RewardTable converts configured quest rewards to a rarity-keyed map.
func (c *GameConfig) RewardTable() (map[catalog.Rarity]float64, error) {
	out := make(map[catalog.Rarity]float64, len(c.Quests.Rewards))
	for name, amount := range c.Quests.Rewards {
		r, err := catalog.ParseRarity(name)
		if err != nil {
			return nil, fmt.Errorf("quest rewards: %w", err)
		}
		out[r] = amount
	}
	return out, nil
}

// XPTable converts configured XP grants to a rarity-keyed map.
func (c *GameConfig) XPTable() (map[catalog.Rarity]int, error) {
	out := make(map[catalog.Rarity]int, len(c.Rarity.XP))
	for name, xp := range c.Rarity.XP {
		r, err := catalog.ParseRarity(name)
		if err != nil {
			return nil, fmt.Errorf("rarity xp: %w", err)
		}
		out[r] = xp
	}
	return out, nil
}
