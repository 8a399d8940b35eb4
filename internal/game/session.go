// Package game orchestrates the core subsystems: it runs the fishing
// flow, routes catch events into the quest engine and player state, and
// triggers autosave after every mutating operation.
package game

import (
	"fmt"
	"time"

	"github.com/saltlinegames/deepcast/internal/catalog"
	"github.com/saltlinegames/deepcast/internal/config"
	"github.com/saltlinegames/deepcast/internal/gametime"
	"github.com/saltlinegames/deepcast/internal/logger"
	"github.com/saltlinegames/deepcast/internal/minigame"
	"github.com/saltlinegames/deepcast/internal/player"
	"github.com/saltlinegames/deepcast/internal/quest"
	"github.com/saltlinegames/deepcast/internal/rng"
	"github.com/saltlinegames/deepcast/internal/shop"
)

// Saver persists whole-state snapshots. A nil Saver disables autosave.
type Saver interface {
	SaveSnapshot(*player.State, *gametime.Clock) error
}

// Session is one running game. All operations are synchronous and
// single-actor; each public method is one atomic turn.
type Session struct {
	cfg     *config.GameConfig
	catalog *catalog.Catalog
	shop    *shop.Catalog
	state   *player.State
	clock   *gametime.Clock
	engine  *minigame.Engine
	gen     *quest.Generator
	rng     *rng.RNG
	store   Saver

	// Announce, when set, receives progress messages during the bite
	// wait so the display layer can narrate. Never required.
	Announce func(msg string)

	sleep func(time.Duration)
}

// NewSession wires a session from loaded collaborators. The state may
// come from a snapshot or be fresh; quest logs are filled so every
// unlocked zone holds its full set of slots.
func NewSession(cfg *config.GameConfig, cat *catalog.Catalog, shopCat *shop.Catalog,
	state *player.State, clock *gametime.Clock, r *rng.RNG, store Saver) (*Session, error) {

	weights, err := cfg.WeightTable()
	if err != nil {
		return nil, fmt.Errorf("invalid rarity weights: %w", err)
	}
	rewards, err := cfg.RewardTable()
	if err != nil {
		return nil, fmt.Errorf("invalid quest rewards: %w", err)
	}

	state.Normalize()
	if state.CurrentZone == "" {
		state.CurrentZone = cfg.Player.StartZone
	}
	if _, ok := cat.Zone(state.CurrentZone); !ok {
		state.CurrentZone = cfg.Player.StartZone
	}

	s := &Session{
		cfg:     cfg,
		catalog: cat,
		shop:    shopCat,
		state:   state,
		clock:   clock,
		rng:     r,
		store:   store,
		sleep:   time.Sleep,
		engine: minigame.NewEngine(r, weights, minigame.Config{
			TrackWidth:   cfg.Minigame.TrackWidth,
			BaseTick:     time.Duration(cfg.Minigame.BaseTickMS) * time.Millisecond,
			EscapeChance: cfg.Minigame.EscapeChancePercent,
			MinZoneStart: cfg.Minigame.MinZoneStart,
		}),
		gen: quest.NewGenerator(r, quest.Config{
			SpeciesTargetMin: cfg.Quests.SpeciesTargetMin,
			SpeciesTargetMax: cfg.Quests.SpeciesTargetMax,
			RarityTargetMin:  cfg.Quests.RarityTargetMin,
			RarityTargetMax:  cfg.Quests.RarityTargetMax,
			Rewards:          rewards,
		}),
	}

	s.ensureQuestLogs()
	return s, nil
}

// State returns the player state for rendering.
func (s *Session) State() *player.State { return s.state }

// Clock returns the game clock for rendering.
func (s *Session) Clock() *gametime.Clock { return s.clock }

// Catalog returns the fish catalog for rendering.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// ShopCatalog returns the shop inventory for rendering.
func (s *Session) ShopCatalog() *shop.Catalog { return s.shop }

// CurrentZone returns the active zone.
func (s *Session) CurrentZone() *catalog.Zone {
	z, _ := s.catalog.Zone(s.state.CurrentZone)
	return z
}

// ChooseZone switches the active zone if it exists and is unlocked.
func (s *Session) ChooseZone(name string) error {
	zone, ok := s.catalog.Zone(name)
	if !ok {
		return fmt.Errorf("unknown zone %q", name)
	}
	if !s.state.ZoneUnlocked(zone) {
		return fmt.Errorf("%s zone is locked: buy a %s first", zone.Name, zone.UnlockItem)
	}
	s.state.CurrentZone = zone.Name
	s.ensureQuestLog(zone)
	return nil
}

// ensureQuestLogs guarantees every unlocked zone holds its full quest
// log, regenerating any slots missing from an old snapshot.
func (s *Session) ensureQuestLogs() {
	for _, zone := range s.catalog.Zones() {
		if s.state.ZoneUnlocked(zone) {
			s.ensureQuestLog(zone)
		}
	}
}

func (s *Session) ensureQuestLog(zone *catalog.Zone) {
	if l := s.state.QuestLog(zone.Name); l != nil {
		l.Refill(s.gen, zone, s.state.Level)
		return
	}
	s.state.SetQuestLog(zone.Name, quest.NewLog(zone, s.gen, s.state.Level))
}

// autosave persists a snapshot. Save failures are non-fatal: the
// in-memory state stays authoritative for the session.
func (s *Session) autosave() {
	if s.store == nil {
		return
	}
	if err := s.store.SaveSnapshot(s.state, s.clock); err != nil {
		logger.Warning("autosave failed, continuing with in-memory state", "error", err)
	}
}

func (s *Session) announce(msg string) {
	if s.Announce != nil {
		s.Announce(msg)
	}
}
