package database

import (
	"path/filepath"
	"testing"

	"github.com/saltlinegames/deepcast/internal/catalog"
	"github.com/saltlinegames/deepcast/internal/gametime"
	"github.com/saltlinegames/deepcast/internal/player"
	"github.com/saltlinegames/deepcast/internal/quest"
	"github.com/saltlinegames/deepcast/internal/rng"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "save.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadSnapshotFirstRun(t *testing.T) {
	s := openTestStore(t)
	state, clock, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if state != nil || clock != nil {
		t.Error("fresh store should have no snapshot")
	}
}

func TestSnapshotRoundtrip(t *testing.T) {
	s := openTestStore(t)

	state := player.NewState("Bathyal", 12345.5)
	state.Level = 21
	state.XP = 150
	state.GrantItem("Boat")
	state.GrantItem("Submarine")
	state.AddCatch(player.CaughtFish{
		Species: "Anglerfish", Rarity: catalog.Uncommon, Weight: 14.5, Value: 290, Zone: "Bathyal",
	})
	state.RecordDiscovery("Bathyal", "Anglerfish", 14.5, 290)

	zone := &catalog.Zone{
		Name: "Bathyal", CatchWidth: 5, SpeedDivisor: 4,
		Species: []catalog.Species{
			{Name: "Anglerfish", Rarity: catalog.Uncommon, MinWeight: 10, MaxWeight: 25, BaseValue: 20},
		},
	}
	g := quest.NewGenerator(rng.New(42), quest.DefaultConfig())
	log := quest.NewLog(zone, g, state.Level)
	log.Slots[0].Progress = 1
	state.SetQuestLog("Bathyal", log)

	clock := &gametime.Clock{Hour: 22, Event: gametime.EventFullMoon}

	if err := s.SaveSnapshot(state, clock); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	loaded, loadedClock, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("snapshot should exist after save")
	}

	if loaded.Currency != 12345.5 || loaded.Level != 21 || loaded.XP != 150 {
		t.Errorf("player scalars: %.1f/%d/%d", loaded.Currency, loaded.Level, loaded.XP)
	}
	if loaded.CurrentZone != "Bathyal" {
		t.Errorf("zone = %q, want Bathyal", loaded.CurrentZone)
	}
	if !loaded.HasItem("Boat") || !loaded.HasItem("Submarine") {
		t.Error("items lost across save")
	}

	if len(loaded.Inventory) != 1 {
		t.Fatalf("inventory rows = %d, want 1", len(loaded.Inventory))
	}
	fish := loaded.Inventory[0]
	if fish.Species != "Anglerfish" || fish.Rarity != catalog.Uncommon || fish.Weight != 14.5 {
		t.Errorf("fish roundtrip mismatch: %+v", fish)
	}
	if fish.ID == "" {
		t.Error("fish instance ID lost")
	}

	entry := loaded.DiscoveryFor("Bathyal")["Anglerfish"]
	if entry == nil || entry.Count != 1 || entry.MaxWeight != 14.5 {
		t.Errorf("discovery roundtrip mismatch: %+v", entry)
	}

	loadedLog := loaded.QuestLog("Bathyal")
	if loadedLog == nil {
		t.Fatal("quest log lost across save")
	}
	if len(loadedLog.Slots) != quest.SlotCount {
		t.Errorf("quest log slots = %d, want %d", len(loadedLog.Slots), quest.SlotCount)
	}
	if loadedLog.Slots[0].Progress != 1 {
		t.Errorf("slot 1 progress = %d, want 1", loadedLog.Slots[0].Progress)
	}

	if loadedClock.Hour != 22 || !loadedClock.IsFullMoon() {
		t.Errorf("clock roundtrip mismatch: %+v", loadedClock)
	}
}

func TestSaveSnapshotReplacesPrevious(t *testing.T) {
	s := openTestStore(t)
	clock := gametime.NewClock()

	first := player.NewState("Lake", 100)
	first.AddCatch(player.CaughtFish{Species: "Carp", Value: 1})
	if err := s.SaveSnapshot(first, clock); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	second := player.NewState("Sea", 900)
	if err := s.SaveSnapshot(second, clock); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	loaded, _, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if loaded.Currency != 900 || loaded.CurrentZone != "Sea" {
		t.Errorf("latest snapshot should win: %.0f in %s", loaded.Currency, loaded.CurrentZone)
	}
	if len(loaded.Inventory) != 0 {
		t.Error("stale inventory rows survived the overwrite")
	}
}

func TestRebind(t *testing.T) {
	sqlite := NewDialect(DialectSQLite)
	postgres := NewDialect(DialectPostgres)
	query := "INSERT INTO t (a, b) VALUES (?, ?)"

	if got := rebind(sqlite, query); got != query {
		t.Errorf("sqlite rebind changed query: %q", got)
	}
	want := "INSERT INTO t (a, b) VALUES ($1, $2)"
	if got := rebind(postgres, query); got != want {
		t.Errorf("postgres rebind = %q, want %q", got, want)
	}
}
