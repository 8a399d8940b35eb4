package game

import (
	"fmt"

	"github.com/saltlinegames/deepcast/internal/command"
	"github.com/saltlinegames/deepcast/internal/logger"
	"github.com/saltlinegames/deepcast/internal/shop"
)

// SellAll sells the whole inventory and returns the credited total.
func (s *Session) SellAll() float64 {
	total := s.state.SellAll()
	if total > 0 {
		logger.Info("inventory sold", "total", total, "balance", s.state.Currency)
		s.autosave()
	}
	return total
}

// Sell executes a parsed sell order. Species names are matched fuzzily
// against the inventory, so "snakfish" still sells Snakefish. A failed
// order mutates nothing.
func (s *Session) Sell(order command.SellOrder) (float64, error) {
	if order.All {
		return s.SellAll(), nil
	}

	species, ok := command.MatchSpecies(order.Species, s.state.SpeciesNames())
	if !ok {
		return 0, fmt.Errorf("no fish matching %q in inventory", order.Species)
	}

	total, err := s.state.SellSpecies(species, order.Count)
	if err != nil {
		return 0, err
	}
	logger.Info("fish sold", "species", species, "count", order.Count, "total", total)
	s.autosave()
	return total, nil
}

// Buy purchases a shop item by name: checks ownership, prerequisites and
// funds, then grants the item and autosaves.
func (s *Session) Buy(name string) (shop.Item, error) {
	item, ok := s.shop.Item(name)
	if !ok {
		return shop.Item{}, fmt.Errorf("unknown shop item %q", name)
	}
	if s.state.HasItem(item.Name) {
		return shop.Item{}, fmt.Errorf("already own %s", item.Name)
	}
	for _, req := range item.Requires {
		if !s.state.HasItem(req) {
			return shop.Item{}, fmt.Errorf("%s requires %s", item.Name, req)
		}
	}
	if err := s.state.Spend(item.Price); err != nil {
		return shop.Item{}, err
	}
	s.state.GrantItem(item.Name)
	s.ensureQuestLogs()
	logger.Info("item purchased", "item", item.Name, "price", item.Price, "balance", s.state.Currency)
	s.autosave()
	return item, nil
}
