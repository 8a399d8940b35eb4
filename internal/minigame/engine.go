// Package minigame implements the pointer-timing catch minigame and its
// hit/miss and reward resolution.
package minigame

import (
	"math"
	"time"

	"github.com/saltlinegames/deepcast/internal/catalog"
	"github.com/saltlinegames/deepcast/internal/rng"
)

// Signal is the player's timing input polled once per pointer tick.
type Signal int

const (
	// SignalNone means no input arrived this tick.
	SignalNone Signal = iota

	// SignalStrike is the timing signal: sample the pointer now.
	SignalStrike

	// SignalFlee aborts the attempt; neither hit nor miss.
	SignalFlee
)

// Input supplies the player's timing signal.
type Input interface {
	Poll() Signal
}

// Display renders one minigame frame. A nil Display is allowed.
type Display interface {
	Frame(pointer, zoneStart, zoneEnd, width int)
}

// Outcome classifies one attempt.
type Outcome int

const (
	// OutcomeEmpty is a miss: struck outside the catch zone, timed out,
	// or nothing was catchable. No state mutation follows.
	OutcomeEmpty Outcome = iota

	// OutcomeCaught is a hit with a drawn fish.
	OutcomeCaught

	// OutcomeEscaped is a strike inside the catch zone where the fish
	// still got away. Treated as a miss for all state purposes.
	OutcomeEscaped

	// OutcomeAborted means the player fled before the signal.
	OutcomeAborted
)

// Catch is the fish drawn on a successful attempt.
type Catch struct {
	Species catalog.Species
	Zone    string
	Weight  float64 // kg, rolled uniformly from the species range
	Value   float64 // sell value: weight times base value per kg
}

// Result is the outcome of one attempt. Catch is non-nil only for
// OutcomeCaught.
type Result struct {
	Outcome Outcome
	Catch   *Catch
}

// Config tunes the minigame independent of zone difficulty.
type Config struct {
	TrackWidth   int
	BaseTick     time.Duration
	EscapeChance int // percent chance a zone hit still fails
	MinZoneStart int
}

// DefaultConfig returns the stock minigame tuning.
func DefaultConfig() Config {
	return Config{
		TrackWidth:   26,
		BaseTick:     100 * time.Millisecond,
		EscapeChance: 20,
		MinZoneStart: 5,
	}
}

// Engine runs catch attempts.
type Engine struct {
	rng     *rng.RNG
	weights catalog.WeightTable
	cfg     Config
	sleep   func(time.Duration)
}

// NewEngine creates an engine using the given RNG and rarity weight table.
func NewEngine(r *rng.RNG, weights catalog.WeightTable, cfg Config) *Engine {
	return &Engine{
		rng:     r,
		weights: weights,
		cfg:     cfg,
		sleep:   time.Sleep,
	}
}

// Attempt runs one catch attempt in the given zone. The pointer advances
// one track position per tick; the input is polled each tick. The attempt
// ends on the first strike, on flee, or when the pointer runs off the
// track (a timeout, treated as a miss).
func (e *Engine) Attempt(zone *catalog.Zone, in Input, disp Display) Result {
	if zone == nil || len(zone.Species) == 0 {
		return Result{Outcome: OutcomeEmpty}
	}

	width := e.cfg.TrackWidth
	start, end := e.placeCatchZone(zone, width)
	tick := e.tickFor(zone)

	for pos := 0; pos < width; pos++ {
		if disp != nil {
			disp.Frame(pos, start, end, width)
		}
		e.sleep(tick)

		switch in.Poll() {
		case SignalFlee:
			return Result{Outcome: OutcomeAborted}
		case SignalStrike:
			if pos < start || pos > end {
				return Result{Outcome: OutcomeEmpty}
			}
			if e.rng.Chance(e.cfg.EscapeChance) {
				return Result{Outcome: OutcomeEscaped}
			}
			catch := e.draw(zone)
			if catch == nil {
				return Result{Outcome: OutcomeEmpty}
			}
			return Result{Outcome: OutcomeCaught, Catch: catch}
		}
	}

	return Result{Outcome: OutcomeEmpty}
}

// placeCatchZone positions the catch zone within the track. The zone
// width comes from the zone's difficulty, clamped to fit.
func (e *Engine) placeCatchZone(zone *catalog.Zone, width int) (int, int) {
	zoneLen := zone.CatchWidth
	if zoneLen < 1 {
		zoneLen = 1
	}
	if zoneLen > width {
		zoneLen = width
	}

	minStart := e.cfg.MinZoneStart
	maxStart := width - zoneLen - 1
	if maxStart < minStart {
		maxStart = minStart
	}
	if maxStart > width-zoneLen {
		maxStart = width - zoneLen
	}
	start := e.rng.IntBetween(minStart, maxStart)
	if start < 0 {
		start = 0
	}
	return start, start + zoneLen - 1
}

// tickFor scales the base tick by the zone's speed divisor, with a floor
// so the pointer never moves faster than the input can be polled.
func (e *Engine) tickFor(zone *catalog.Zone) time.Duration {
	div := zone.SpeedDivisor
	if div < 1 {
		div = 1
	}
	tick := time.Duration(float64(e.cfg.BaseTick) / div)
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	return tick
}

// draw picks one species from the zone's table, weighted by rarity, and
// rolls its weight and sell value. Returns nil when nothing is selectable
// (all weights zero).
func (e *Engine) draw(zone *catalog.Zone) *Catch {
	weights := make([]float64, len(zone.Species))
	for i, sp := range zone.Species {
		weights[i] = e.weights.WeightOf(sp.Rarity)
	}

	idx := e.rng.WeightedIndex(weights)
	if idx < 0 {
		return nil
	}

	sp := zone.Species[idx]
	weight := round1(e.rng.FloatBetween(sp.MinWeight, sp.MaxWeight))
	return &Catch{
		Species: sp,
		Zone:    zone.Name,
		Weight:  weight,
		Value:   round2(weight * sp.BaseValue),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
