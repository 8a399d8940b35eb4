package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/saltlinegames/deepcast/internal/catalog"
	"github.com/saltlinegames/deepcast/internal/gametime"
	"github.com/saltlinegames/deepcast/internal/player"
	"github.com/saltlinegames/deepcast/internal/quest"
)

// SaveSnapshot writes the whole player state and clock in one
// transaction, replacing any previous snapshot.
func (s *Store) SaveSnapshot(p *player.State, c *gametime.Clock) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"player", "inventory", "discovery", "quest_logs"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	items := make([]string, 0, len(p.Items))
	for name, owned := range p.Items {
		if owned {
			items = append(items, name)
		}
	}
	sort.Strings(items)
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}

	_, err = tx.Exec(rebind(s.dialect,
		`INSERT INTO player (id, currency, level, xp, current_zone, items, clock_hour, event)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?)`),
		p.Currency, p.Level, p.XP, p.CurrentZone, string(itemsJSON), c.Hour, string(c.Event))
	if err != nil {
		return fmt.Errorf("failed to save player row: %w", err)
	}

	insertFish := rebind(s.dialect,
		`INSERT INTO inventory (id, species, rarity, weight, value, zone)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	for _, f := range p.Inventory {
		if _, err := tx.Exec(insertFish, f.ID, f.Species, int(f.Rarity), f.Weight, f.Value, f.Zone); err != nil {
			return fmt.Errorf("failed to save inventory row: %w", err)
		}
	}

	insertDiscovery := rebind(s.dialect,
		`INSERT INTO discovery (zone, species, count, max_weight, max_value)
		 VALUES (?, ?, ?, ?, ?)`)
	for zone, zoneLog := range p.Discovery {
		for species, entry := range zoneLog {
			if _, err := tx.Exec(insertDiscovery, zone, species, entry.Count, entry.MaxWeight, entry.MaxValue); err != nil {
				return fmt.Errorf("failed to save discovery row: %w", err)
			}
		}
	}

	insertLog := rebind(s.dialect, `INSERT INTO quest_logs (zone, log) VALUES (?, ?)`)
	for zone, l := range p.Quests {
		if l == nil {
			continue
		}
		if _, err := tx.Exec(insertLog, zone, l.ToJSON()); err != nil {
			return fmt.Errorf("failed to save quest log: %w", err)
		}
	}

	return tx.Commit()
}

// LoadSnapshot reads the saved state. Returns (nil, nil, nil) when no
// snapshot exists (first run).
func (s *Store) LoadSnapshot() (*player.State, *gametime.Clock, error) {
	var (
		itemsJSON string
		event     string
	)
	p := player.NewState("", 0)
	c := gametime.NewClock()

	row := s.db.QueryRow(
		`SELECT currency, level, xp, current_zone, items, clock_hour, event FROM player WHERE id = 1`)
	err := row.Scan(&p.Currency, &p.Level, &p.XP, &p.CurrentZone, &itemsJSON, &c.Hour, &event)
	if err == sql.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load player row: %w", err)
	}
	c.Event = gametime.Event(event)

	var items []string
	if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
		return nil, nil, fmt.Errorf("failed to decode items: %w", err)
	}
	for _, name := range items {
		p.Items[name] = true
	}

	if err := s.loadInventory(p); err != nil {
		return nil, nil, err
	}
	if err := s.loadDiscovery(p); err != nil {
		return nil, nil, err
	}
	if err := s.loadQuestLogs(p); err != nil {
		return nil, nil, err
	}

	return p, c, nil
}

func (s *Store) loadInventory(p *player.State) error {
	rows, err := s.db.Query(`SELECT id, species, rarity, weight, value, zone FROM inventory`)
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f player.CaughtFish
		var rarity int
		if err := rows.Scan(&f.ID, &f.Species, &rarity, &f.Weight, &f.Value, &f.Zone); err != nil {
			return fmt.Errorf("failed to scan inventory row: %w", err)
		}
		f.Rarity = catalog.Rarity(rarity)
		p.Inventory = append(p.Inventory, f)
	}
	return rows.Err()
}

func (s *Store) loadDiscovery(p *player.State) error {
	rows, err := s.db.Query(`SELECT zone, species, count, max_weight, max_value FROM discovery`)
	if err != nil {
		return fmt.Errorf("failed to load discovery: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var zone, species string
		entry := &player.DiscoveryEntry{}
		if err := rows.Scan(&zone, &species, &entry.Count, &entry.MaxWeight, &entry.MaxValue); err != nil {
			return fmt.Errorf("failed to scan discovery row: %w", err)
		}
		if p.Discovery[zone] == nil {
			p.Discovery[zone] = make(map[string]*player.DiscoveryEntry)
		}
		p.Discovery[zone][species] = entry
	}
	return rows.Err()
}

func (s *Store) loadQuestLogs(p *player.State) error {
	rows, err := s.db.Query(`SELECT zone, log FROM quest_logs`)
	if err != nil {
		return fmt.Errorf("failed to load quest logs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var zone, data string
		if err := rows.Scan(&zone, &data); err != nil {
			return fmt.Errorf("failed to scan quest log row: %w", err)
		}
		l, err := quest.LogFromJSON(data)
		if err != nil {
			return fmt.Errorf("failed to decode quest log for %s: %w", zone, err)
		}
		if l != nil {
			p.Quests[zone] = l
		}
	}
	return rows.Err()
}
