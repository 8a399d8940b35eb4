package game

import (
	"fmt"

	"github.com/saltlinegames/deepcast/internal/logger"
	"github.com/saltlinegames/deepcast/internal/quest"
)

// FinishQuest settles a completed quest in the named zone's log: credits
// the reward, regenerates the slot and autosaves. An incomplete quest
// returns quest.ErrNotCompleted and changes nothing.
func (s *Session) FinishQuest(zoneName string, slot int) (float64, error) {
	zone, ok := s.catalog.Zone(zoneName)
	if !ok {
		return 0, fmt.Errorf("unknown zone %q", zoneName)
	}
	log := s.state.QuestLog(zone.Name)
	if log == nil {
		return 0, fmt.Errorf("no quest log for zone %q", zone.Name)
	}

	reward, err := log.Finish(slot, s.gen, zone, s.state.Level)
	if err != nil {
		return 0, err
	}
	s.state.CreditCurrency(reward)
	logger.Info("quest finished", "zone", zone.Name, "slot", slot, "reward", reward)
	s.autosave()
	return reward, nil
}

// QuestLogFor returns the quest log for a zone, nil if never unlocked.
func (s *Session) QuestLogFor(zoneName string) *quest.Log {
	return s.state.QuestLog(zoneName)
}
