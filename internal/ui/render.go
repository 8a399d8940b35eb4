package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/saltlinegames/deepcast/internal/catalog"
	"github.com/saltlinegames/deepcast/internal/command"
	"github.com/saltlinegames/deepcast/internal/gametime"
	"github.com/saltlinegames/deepcast/internal/player"
	"github.com/saltlinegames/deepcast/internal/quest"
	"github.com/saltlinegames/deepcast/internal/shop"
)

// Banner is printed once at startup.
const Banner = `
  ____                      _
 |  _ \  ___  ___ _ __  ___ __ _ ___| |_
 | | | |/ _ \/ _ \ '_ \/ __/ _' / __| __|
 | |_| |  __/  __/ |_) | (_| (_| \__ \ |_
 |____/ \___|\___| .__/ \___\__,_|___/\__|
                 |_|`

// Status renders the header line shown above the main menu.
func (c *Console) Status(state *player.State, clock *gametime.Clock, levelPct int) {
	event := string(clock.Event)
	if clock.IsFullMoon() {
		event = colorYellow + event + colorReset
	}
	c.Printf("\n%s[ %s | Level %d (%d%%) | %.2f gold | %s | Event: %s ]%s\n",
		colorBold, state.CurrentZone, state.Level, levelPct,
		state.Currency, clock.TimeString(), event, colorReset)
}

// MainMenu renders the numbered command menu.
func (c *Console) MainMenu() {
	c.Println()
	for i, cmd := range command.Menu() {
		c.Printf("  %d. %s\n", i+1, cmd)
	}
}

// ZoneList renders every zone with its lock state.
func (c *Console) ZoneList(zones []*catalog.Zone, state *player.State) {
	c.Println("\n--- Zones ---")
	for i, z := range zones {
		status := ""
		if !state.ZoneUnlocked(z) {
			status = fmt.Sprintf(" %s(locked: requires %s)%s", colorRed, z.UnlockItem, colorReset)
		} else if z.Name == state.CurrentZone {
			status = fmt.Sprintf(" %s(current)%s", colorGreen, colorReset)
		}
		c.Printf("  %d. %s%s\n", i+1, z.Name, status)
	}
}

// Inventory renders the held fish grouped by species, with totals.
func (c *Console) Inventory(state *player.State) {
	c.Println("\n--- Inventory ---")
	if len(state.Inventory) == 0 {
		c.Println("  Empty. Go fish!")
		return
	}

	type group struct {
		rarity catalog.Rarity
		count  int
		value  float64
	}
	groups := make(map[string]*group)
	for _, f := range state.Inventory {
		g := groups[f.Species]
		if g == nil {
			g = &group{rarity: f.Rarity}
			groups[f.Species] = g
		}
		g.count++
		g.value += f.Value
	}

	var total float64
	for _, name := range state.SpeciesNames() {
		g := groups[name]
		c.Printf("  %s x%d  (%.2f gold)\n", ColorRarity(name, g.rarity), g.count, g.value)
		total += g.value
	}
	c.Printf("  Total: %d fish, %.2f gold\n", len(state.Inventory), total)
}

// Discovery renders a zone's discovery log: every species in the zone,
// showing stats for discovered ones and ??? for the rest.
func (c *Console) Discovery(zone *catalog.Zone, state *player.State) {
	c.Printf("\n--- Discovery Book: %s ---\n", zone.Name)
	log := state.DiscoveryFor(zone.Name)
	discovered := 0
	for _, sp := range zone.Species {
		entry := log[sp.Name]
		if entry == nil {
			c.Printf("  [%-9s] ???\n", sp.Rarity)
			continue
		}
		discovered++
		c.Printf("  [%-9s] %s  caught %d, best %.1fkg (%.2f gold)\n",
			sp.Rarity, ColorRarity(sp.Name, sp.Rarity), entry.Count, entry.MaxWeight, entry.MaxValue)
	}
	c.Printf("  Discovered %d/%d\n", discovered, len(zone.Species))
}

// Quests renders a zone's quest log.
func (c *Console) Quests(log *quest.Log, zoneName string) {
	c.Printf("\n--- Quests: %s ---\n", zoneName)
	if log == nil {
		c.Println("  No quests here yet.")
		return
	}
	for _, q := range log.Active() {
		mark := " "
		if q.Completed() {
			mark = colorGreen + "*" + colorReset
		}
		c.Printf(" %s%2d. %s  [%d/%d]  reward %.0f gold\n",
			mark, q.Slot, q.Requirement(zoneName), q.Progress, q.Target, q.Reward)
	}
}

// Shop renders the shop inventory with ownership and prerequisites.
func (c *Console) Shop(cat *shop.Catalog, state *player.State) {
	c.Println("\n--- Shop ---")
	for i, item := range cat.Items {
		note := ""
		if state.HasItem(item.Name) {
			note = fmt.Sprintf("  %s(owned)%s", colorGreen, colorReset)
		} else if missing := missingRequires(item, state); len(missing) > 0 {
			note = fmt.Sprintf("  %s(requires %s)%s", colorRed, strings.Join(missing, ", "), colorReset)
		}
		c.Printf("  %d. %-22s %12.0f gold  %s%s\n", i+1, item.Name, item.Price, item.Description, note)
	}
	c.Printf("  Balance: %.2f gold\n", state.Currency)
}

func missingRequires(item shop.Item, state *player.State) []string {
	var missing []string
	for _, req := range item.Requires {
		if !state.HasItem(req) {
			missing = append(missing, req)
		}
	}
	return missing
}

// SortedZoneNames returns discovery map keys in stable order; used by the
// tests and any full-book rendering.
func SortedZoneNames(discovery map[string]map[string]*player.DiscoveryEntry) []string {
	names := make([]string, 0, len(discovery))
	for name := range discovery {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
