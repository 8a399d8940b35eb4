package game

import (
	"time"

	"github.com/saltlinegames/deepcast/internal/gametime"
	"github.com/saltlinegames/deepcast/internal/logger"
	"github.com/saltlinegames/deepcast/internal/minigame"
	"github.com/saltlinegames/deepcast/internal/player"
)

// AncientKeyItem is granted when the Ancient Key is "caught"; it gates
// the final shop upgrade.
const AncientKeyItem = "Ancient Key"

// CatchReport summarizes one fishing turn for the display layer.
type CatchReport struct {
	Result         minigame.Result
	Fish           *player.CaughtFish
	XPGained       int
	LevelsGained   int
	QuestsAdvanced int
	GotAncientKey  bool
	Exotic         bool
}

// StartFishing runs one full fishing turn: wait for a bite, run the
// minigame, and on a catch update inventory, discovery, XP and quests,
// then autosave. A miss or an aborted attempt mutates nothing. The game
// clock advances once per turn regardless of outcome.
func (s *Session) StartFishing(in minigame.Input, disp minigame.Display) CatchReport {
	zone := s.CurrentZone()
	report := CatchReport{}

	s.waitForBite()

	attemptZone := zone
	if s.isExoticBite() {
		report.Exotic = true
		attemptZone = s.catalog.FullMoonEncounter(zone)
		s.announce(">>> Something Stranger Bites! <<<")
	} else {
		s.announce(">>> Fish Bite! <<<")
	}

	report.Result = s.engine.Attempt(attemptZone, in, disp)

	if report.Result.Outcome == minigame.OutcomeCaught {
		s.applyCatch(&report)
	}

	// An aborted attempt is neither hit nor miss: no autosave, and the
	// clock doesn't move.
	if report.Result.Outcome != minigame.OutcomeAborted {
		s.clock.Advance(s.rng, s.cfg.Fishing.FullMoonStartHour, s.cfg.Fishing.FullMoonChancePercent)
	}
	return report
}

// waitForBite blocks until a fish bites. The wait starts short and grows
// each quiet stretch, capped by configuration.
func (s *Session) waitForBite() {
	wait := s.cfg.Fishing.InitialWaitSeconds
	for {
		s.announce("Waiting for a bite...")
		s.sleep(time.Duration(wait) * time.Second)
		if s.rng.Chance(s.cfg.Fishing.BiteChancePercent) {
			return
		}
		if wait < s.cfg.Fishing.MaxWaitSeconds {
			wait++
		}
	}
}

// isExoticBite reports whether this bite is a Full Moon exotic encounter.
func (s *Session) isExoticBite() bool {
	return s.clock.Event == gametime.EventFullMoon &&
		s.state.CurrentZone == s.cfg.Fishing.FullMoonZone &&
		s.catalog.HasExotic()
}

// applyCatch routes one catch event through the player state and the
// quest engine, then autosaves.
func (s *Session) applyCatch(report *CatchReport) {
	catch := report.Result.Catch

	fish := s.state.AddCatch(player.CaughtFish{
		Species: catch.Species.Name,
		Rarity:  catch.Species.Rarity,
		Weight:  catch.Weight,
		Value:   catch.Value,
		Zone:    catch.Zone,
	})
	report.Fish = &fish

	report.XPGained = s.xpFor(catch)
	report.LevelsGained = s.state.GrantXP(report.XPGained)

	s.state.RecordDiscovery(catch.Zone, catch.Species.Name, catch.Weight, catch.Value)

	if l := s.state.QuestLog(catch.Zone); l != nil {
		report.QuestsAdvanced = l.OnCatch(catch.Species.Name, catch.Species.Rarity)
	}

	if catch.Species.Name == AncientKeyItem && !s.state.HasItem(AncientKeyItem) {
		s.state.GrantItem(AncientKeyItem)
		report.GotAncientKey = true
	}

	logger.Info("fish caught",
		"species", catch.Species.Name,
		"rarity", catch.Species.Rarity.String(),
		"zone", catch.Zone,
		"weight_kg", catch.Weight,
		"value", catch.Value,
		"quests_advanced", report.QuestsAdvanced)

	s.autosave()
}

// xpFor returns the XP grant for a catch. Species XP from the catalog
// wins; the rarity table is the fallback for species without one.
func (s *Session) xpFor(catch *minigame.Catch) int {
	if catch.Species.XP > 0 {
		return catch.Species.XP
	}
	xpTable, err := s.cfg.XPTable()
	if err != nil {
		return 0
	}
	return xpTable[catch.Species.Rarity]
}
