package quest

import (
	"encoding/json"
	"fmt"

	"github.com/saltlinegames/deepcast/internal/catalog"
)

// Log holds the active quests for one zone: exactly SlotCount slots, each
// occupied by one quest until the player finishes it.
type Log struct {
	Zone  string   `json:"zone"`
	Slots []*Quest `json:"slots"`
}

// NewLog creates a full quest log for a zone, generating a quest for
// every slot.
func NewLog(zone *catalog.Zone, g *Generator, playerLevel int) *Log {
	l := &Log{Zone: zone.Name}
	for slot := 1; slot <= SlotCount; slot++ {
		l.Slots = append(l.Slots, g.Generate(zone, slot, playerLevel))
	}
	return l
}

// Quest returns the quest in the given slot (1-SlotCount).
func (l *Log) Quest(slot int) (*Quest, bool) {
	if slot < 1 || slot > len(l.Slots) || l.Slots[slot-1] == nil {
		return nil, false
	}
	return l.Slots[slot-1], true
}

// Active returns all occupied slots in order.
func (l *Log) Active() []*Quest {
	out := make([]*Quest, 0, len(l.Slots))
	for _, q := range l.Slots {
		if q != nil {
			out = append(out, q)
		}
	}
	return out
}

// OnCatch advances every in-progress quest that matches the caught
// species and rarity. Progress is capped at the target inside this
// method, so the invariant 0 <= progress <= target holds by construction.
// Returns the number of quests advanced.
func (l *Log) OnCatch(species string, rarity catalog.Rarity) int {
	updated := 0
	for _, q := range l.Slots {
		if q == nil || q.Completed() {
			continue
		}
		if q.Matches(species, rarity) {
			q.Progress++
			updated++
		}
	}
	return updated
}

// Finish settles the quest in the given slot. If its progress has not
// reached the target it returns ErrNotCompleted and changes nothing.
// Otherwise it returns the reward and replaces the slot with a freshly
// generated quest; the caller credits the reward to the player.
func (l *Log) Finish(slot int, g *Generator, zone *catalog.Zone, playerLevel int) (float64, error) {
	q, ok := l.Quest(slot)
	if !ok {
		return 0, fmt.Errorf("no quest in slot %d", slot)
	}
	if !q.Completed() {
		return 0, ErrNotCompleted
	}

	reward := q.Reward
	if next := g.Generate(zone, slot, playerLevel); next != nil {
		l.Slots[slot-1] = next
	}
	return reward, nil
}

// Refill tops the log up to SlotCount slots, generating quests for any
// missing or empty slots. Existing quests are preserved. Used after
// loading a snapshot saved by an older build.
func (l *Log) Refill(g *Generator, zone *catalog.Zone, playerLevel int) {
	for len(l.Slots) < SlotCount {
		l.Slots = append(l.Slots, nil)
	}
	l.Slots = l.Slots[:SlotCount]
	for i, q := range l.Slots {
		if q == nil {
			l.Slots[i] = g.Generate(zone, i+1, playerLevel)
		} else {
			q.Slot = i + 1
			if q.Progress > q.Target {
				q.Progress = q.Target
			}
		}
	}
}

// ToJSON serializes the log for snapshot storage.
func (l *Log) ToJSON() string {
	data, err := json.Marshal(l)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// LogFromJSON deserializes a quest log from snapshot storage.
func LogFromJSON(data string) (*Log, error) {
	if data == "" || data == "{}" {
		return nil, nil
	}
	l := &Log{}
	if err := json.Unmarshal([]byte(data), l); err != nil {
		return nil, err
	}
	return l, nil
}
