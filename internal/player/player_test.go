package player

import (
	"errors"
	"testing"

	"github.com/saltlinegames/deepcast/internal/catalog"
)

func TestNewState(t *testing.T) {
	s := NewState("Lake", 100)
	if s.Currency != 100 {
		t.Errorf("currency = %g, want 100", s.Currency)
	}
	if s.CurrentZone != "Lake" {
		t.Errorf("zone = %q, want Lake", s.CurrentZone)
	}
	if s.Level != 0 || s.XP != 0 {
		t.Errorf("fresh state should start at level 0 with no XP")
	}
}

func TestAddCatchAssignsID(t *testing.T) {
	s := NewState("Lake", 0)
	f := s.AddCatch(CaughtFish{Species: "Carp", Rarity: catalog.Common, Weight: 1.2, Value: 1.2})
	if f.ID == "" {
		t.Error("stored fish should carry an instance ID")
	}
	g := s.AddCatch(CaughtFish{ID: "keep-me", Species: "Carp"})
	if g.ID != "keep-me" {
		t.Errorf("existing ID overwritten: %q", g.ID)
	}
	if len(s.Inventory) != 2 {
		t.Errorf("inventory size = %d, want 2", len(s.Inventory))
	}
}

func TestSpend(t *testing.T) {
	s := NewState("Lake", 100)
	if err := s.Spend(60); err != nil {
		t.Fatalf("affordable spend failed: %v", err)
	}
	if s.Currency != 40 {
		t.Errorf("balance = %g, want 40", s.Currency)
	}

	err := s.Spend(41)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if s.Currency != 40 {
		t.Errorf("failed spend must not change balance, got %g", s.Currency)
	}
}

func TestZoneUnlocked(t *testing.T) {
	s := NewState("Lake", 0)
	open := &catalog.Zone{Name: "Lake"}
	locked := &catalog.Zone{Name: "Sea", UnlockItem: "Boat"}

	if !s.ZoneUnlocked(open) {
		t.Error("zone without unlock item should be open")
	}
	if s.ZoneUnlocked(locked) {
		t.Error("Sea should be locked without a Boat")
	}
	s.GrantItem("Boat")
	if !s.ZoneUnlocked(locked) {
		t.Error("Sea should unlock after buying a Boat")
	}
}

func TestRecordDiscovery(t *testing.T) {
	s := NewState("Lake", 0)
	s.RecordDiscovery("Lake", "Carp", 1.5, 1.5)
	s.RecordDiscovery("Lake", "Carp", 2.5, 2.5)
	s.RecordDiscovery("Lake", "Carp", 0.8, 0.8)

	entry := s.DiscoveryFor("Lake")["Carp"]
	if entry == nil {
		t.Fatal("Carp missing from discovery log")
	}
	if entry.Count != 3 {
		t.Errorf("count = %d, want 3", entry.Count)
	}
	if entry.MaxWeight != 2.5 {
		t.Errorf("max weight = %g, want 2.5", entry.MaxWeight)
	}
	if entry.MaxValue != 2.5 {
		t.Errorf("max value = %g, want 2.5", entry.MaxValue)
	}
}

func TestSellAll(t *testing.T) {
	s := NewState("Lake", 10)
	s.AddCatch(CaughtFish{Species: "Carp", Value: 1.5})
	s.AddCatch(CaughtFish{Species: "Catfish", Value: 20})

	total := s.SellAll()
	if total != 21.5 {
		t.Errorf("total = %g, want 21.5", total)
	}
	if s.Currency != 31.5 {
		t.Errorf("balance = %g, want 31.5", s.Currency)
	}
	if len(s.Inventory) != 0 {
		t.Errorf("inventory should be empty, has %d", len(s.Inventory))
	}
}

func TestSellSpecies(t *testing.T) {
	s := NewState("Lake", 0)
	s.AddCatch(CaughtFish{Species: "Carp", Value: 1})
	s.AddCatch(CaughtFish{Species: "Catfish", Value: 20})
	s.AddCatch(CaughtFish{Species: "Carp", Value: 2})
	s.AddCatch(CaughtFish{Species: "Carp", Value: 3})

	total, err := s.SellSpecies("Carp", 2)
	if err != nil {
		t.Fatalf("SellSpecies failed: %v", err)
	}
	// Oldest first: the 1 and 2 value carp go, the 3 stays.
	if total != 3 {
		t.Errorf("total = %g, want 3", total)
	}
	if s.CountSpecies("Carp") != 1 {
		t.Errorf("remaining carp = %d, want 1", s.CountSpecies("Carp"))
	}
	if s.CountSpecies("Catfish") != 1 {
		t.Error("unrelated species must survive the sale")
	}
}

func TestSellSpeciesInsufficient(t *testing.T) {
	s := NewState("Lake", 50)
	s.AddCatch(CaughtFish{Species: "Carp", Value: 1})

	_, err := s.SellSpecies("Carp", 2)
	if !errors.Is(err, ErrNotEnoughFish) {
		t.Fatalf("expected ErrNotEnoughFish, got %v", err)
	}
	if len(s.Inventory) != 1 || s.Currency != 50 {
		t.Error("failed sale must not mutate state")
	}

	if _, err := s.SellSpecies("Carp", 0); err == nil {
		t.Error("zero count should be rejected")
	}
}

func TestSpeciesNames(t *testing.T) {
	s := NewState("Lake", 0)
	s.AddCatch(CaughtFish{Species: "Carp"})
	s.AddCatch(CaughtFish{Species: "Catfish"})
	s.AddCatch(CaughtFish{Species: "Carp"})

	names := s.SpeciesNames()
	if len(names) != 2 || names[0] != "Carp" || names[1] != "Catfish" {
		t.Errorf("SpeciesNames = %v, want [Carp Catfish]", names)
	}
}

func TestNormalize(t *testing.T) {
	s := &State{}
	s.Normalize()
	if s.Items == nil || s.Discovery == nil || s.Quests == nil {
		t.Error("Normalize should initialize all maps")
	}
}
