package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saltlinegames/deepcast/internal/catalog"
)

func TestDefaultConfigTables(t *testing.T) {
	cfg := DefaultConfig()

	weights, err := cfg.WeightTable()
	if err != nil {
		t.Fatalf("default weights should convert: %v", err)
	}
	if err := weights.Validate(); err != nil {
		t.Errorf("default weights should validate: %v", err)
	}

	rewards, err := cfg.RewardTable()
	if err != nil {
		t.Fatalf("default rewards should convert: %v", err)
	}
	if rewards[catalog.Exotic] != 50000 {
		t.Errorf("Exotic reward = %g, want 50000", rewards[catalog.Exotic])
	}

	xp, err := cfg.XPTable()
	if err != nil {
		t.Fatalf("default xp should convert: %v", err)
	}
	if xp[catalog.Common] != 5 {
		t.Errorf("Common xp = %d, want 5", xp[catalog.Common])
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
	if cfg.Minigame.TrackWidth != 26 {
		t.Errorf("default track width = %d, want 26", cfg.Minigame.TrackWidth)
	}
	if cfg.Fishing.BiteChancePercent != 60 {
		t.Errorf("default bite chance = %d, want 60", cfg.Fishing.BiteChancePercent)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := `
minigame:
  track_width: 30
fishing:
  full_moon_zone: Abyss Trench
player:
  start_currency: 500
  start_zone: Lake
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Minigame.TrackWidth != 30 {
		t.Errorf("track width = %d, want 30", cfg.Minigame.TrackWidth)
	}
	if cfg.Fishing.FullMoonZone != "Abyss Trench" {
		t.Errorf("full moon zone = %q, want Abyss Trench", cfg.Fishing.FullMoonZone)
	}
	if cfg.Player.StartCurrency != 500 {
		t.Errorf("start currency = %g, want 500", cfg.Player.StartCurrency)
	}
	// Untouched sections keep their defaults.
	if cfg.Minigame.EscapeChancePercent != 20 {
		t.Errorf("escape chance = %d, want default 20", cfg.Minigame.EscapeChancePercent)
	}
}

func TestWeightTableRejectsUnknownRarity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rarity.Weights["Shiny"] = 50
	if _, err := cfg.WeightTable(); err == nil {
		t.Error("unknown rarity name should fail conversion")
	}
}
