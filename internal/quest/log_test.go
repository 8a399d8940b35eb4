package quest

import (
	"errors"
	"testing"

	"github.com/saltlinegames/deepcast/internal/catalog"
	"github.com/saltlinegames/deepcast/internal/rng"
)

func TestNewLogFillsAllSlots(t *testing.T) {
	g := NewGenerator(rng.New(42), DefaultConfig())
	l := NewLog(testZone(), g, 1)

	if len(l.Slots) != SlotCount {
		t.Fatalf("log has %d slots, want %d", len(l.Slots), SlotCount)
	}
	for i, q := range l.Slots {
		if q == nil {
			t.Fatalf("slot %d is empty", i+1)
		}
		if q.Slot != i+1 {
			t.Errorf("slot %d quest carries id %d", i+1, q.Slot)
		}
	}
}

func TestOnCatchAdvancesMatching(t *testing.T) {
	l := &Log{Zone: "Lake", Slots: []*Quest{
		{Slot: 1, Kind: KindSpecificSpecies, Species: "Carp", Target: 3},
		{Slot: 2, Kind: KindRarityCount, Rarity: catalog.Common, Target: 2},
		{Slot: 3, Kind: KindSpecificSpecies, Species: "Catfish", Target: 2},
	}}

	updated := l.OnCatch("Carp", catalog.Common)
	if updated != 2 {
		t.Errorf("one carp should advance 2 quests, got %d", updated)
	}
	if l.Slots[0].Progress != 1 || l.Slots[1].Progress != 1 || l.Slots[2].Progress != 0 {
		t.Errorf("progress after catch: %d/%d/%d, want 1/1/0",
			l.Slots[0].Progress, l.Slots[1].Progress, l.Slots[2].Progress)
	}
}

func TestOnCatchNeverExceedsTarget(t *testing.T) {
	l := &Log{Zone: "Lake", Slots: []*Quest{
		{Slot: 1, Kind: KindRarityCount, Rarity: catalog.Uncommon, Target: 3, Progress: 3},
	}}

	// A completed quest no longer accumulates; it waits to be finished.
	if updated := l.OnCatch("Grass carp", catalog.Uncommon); updated != 0 {
		t.Errorf("completed quest should not advance, got %d", updated)
	}
	if l.Slots[0].Progress != 3 {
		t.Errorf("progress = %d, want capped at 3", l.Slots[0].Progress)
	}
}

func TestFinishIncomplete(t *testing.T) {
	g := NewGenerator(rng.New(1), DefaultConfig())
	l := &Log{Zone: "Lake", Slots: []*Quest{
		{Slot: 1, Kind: KindSpecificSpecies, Species: "Snakefish", Target: 5, Progress: 4, Reward: 2500},
	}}

	_, err := l.Finish(1, g, testZone(), 1)
	if !errors.Is(err, ErrNotCompleted) {
		t.Fatalf("expected ErrNotCompleted, got %v", err)
	}
	if l.Slots[0].Progress != 4 || l.Slots[0].Species != "Snakefish" {
		t.Error("failed finish must not mutate the quest")
	}
}

func TestFinishCompletedReplacesSlot(t *testing.T) {
	g := NewGenerator(rng.New(1), DefaultConfig())
	l := &Log{Zone: "Lake", Slots: []*Quest{
		{Slot: 1, Kind: KindSpecificSpecies, Species: "Snakefish", Target: 5, Progress: 5, Reward: 2500},
	}}

	reward, err := l.Finish(1, g, testZone(), 1)
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if reward != 2500 {
		t.Errorf("reward = %g, want 2500", reward)
	}

	next := l.Slots[0]
	if next == nil {
		t.Fatal("slot 1 should hold a fresh quest")
	}
	if next.Slot != 1 {
		t.Errorf("replacement slot id = %d, want 1", next.Slot)
	}
	if next.Progress != 0 {
		t.Errorf("replacement progress = %d, want 0", next.Progress)
	}
}

func TestFinishBadSlot(t *testing.T) {
	g := NewGenerator(rng.New(1), DefaultConfig())
	l := NewLog(testZone(), g, 1)

	for _, slot := range []int{0, -1, SlotCount + 1} {
		if _, err := l.Finish(slot, g, testZone(), 1); err == nil {
			t.Errorf("slot %d should be rejected", slot)
		}
	}
}

func TestRefill(t *testing.T) {
	g := NewGenerator(rng.New(9), DefaultConfig())
	l := &Log{Zone: "Lake", Slots: []*Quest{
		{Slot: 1, Kind: KindSpecificSpecies, Species: "Carp", Target: 3, Progress: 7},
		nil,
	}}

	l.Refill(g, testZone(), 1)

	if len(l.Slots) != SlotCount {
		t.Fatalf("refilled log has %d slots, want %d", len(l.Slots), SlotCount)
	}
	if l.Slots[0].Species != "Carp" {
		t.Error("refill must preserve existing quests")
	}
	if l.Slots[0].Progress != 3 {
		t.Errorf("over-target progress should clamp to 3, got %d", l.Slots[0].Progress)
	}
	for i, q := range l.Slots {
		if q == nil {
			t.Fatalf("slot %d still empty after refill", i+1)
		}
		if q.Slot != i+1 {
			t.Errorf("slot %d quest carries id %d", i+1, q.Slot)
		}
	}
}

func TestLogJSONRoundtrip(t *testing.T) {
	g := NewGenerator(rng.New(3), DefaultConfig())
	l := NewLog(testZone(), g, 15)
	l.Slots[2].Progress = 2

	restored, err := LogFromJSON(l.ToJSON())
	if err != nil {
		t.Fatalf("LogFromJSON failed: %v", err)
	}
	if restored.Zone != l.Zone {
		t.Errorf("zone = %q, want %q", restored.Zone, l.Zone)
	}
	if len(restored.Slots) != SlotCount {
		t.Fatalf("restored %d slots, want %d", len(restored.Slots), SlotCount)
	}
	if restored.Slots[2].Progress != 2 {
		t.Errorf("slot 3 progress = %d, want 2", restored.Slots[2].Progress)
	}

	if empty, err := LogFromJSON(""); err != nil || empty != nil {
		t.Errorf("empty payload should restore to nil, got %v, %v", empty, err)
	}
}
