package main

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/saltlinegames/deepcast/internal/command"
	"github.com/saltlinegames/deepcast/internal/game"
	"github.com/saltlinegames/deepcast/internal/minigame"
	"github.com/saltlinegames/deepcast/internal/quest"
	"github.com/saltlinegames/deepcast/internal/ui"
)

// runLoop drives the main menu until the player exits or input closes.
func runLoop(s *game.Session, console *ui.Console) {
	for {
		console.Status(s.State(), s.Clock(), int(s.State().XPProgressPercent()))
		console.MainMenu()

		input, ok := console.Prompt("> ")
		if !ok {
			return
		}

		switch command.Parse(input) {
		case command.StartFishing:
			doFishing(s, console)
		case command.ChooseZone:
			doChooseZone(s, console)
		case command.SellFish:
			doSell(s, console)
		case command.Inventory:
			console.Inventory(s.State())
		case command.Shop:
			doShop(s, console)
		case command.Discovery:
			console.Discovery(s.CurrentZone(), s.State())
		case command.Quests:
			doQuests(s, console)
		case command.Exit:
			return
		default:
			console.Println("Unknown command. Enter a menu number.")
		}
	}
}

func doFishing(s *game.Session, console *ui.Console) {
	console.Println("\nCasting... press Enter when the pointer is in the green zone, f to flee.")
	track := ui.NewTrack(os.Stdout)
	report := s.StartFishing(console, track)
	track.Done()

	switch report.Result.Outcome {
	case minigame.OutcomeCaught:
		fish := report.Fish
		console.Printf("Caught a %s! %.1fkg, worth %.2f gold.\n",
			ui.ColorRarity(fish.Species, fish.Rarity), fish.Weight, fish.Value)
		if report.Exotic {
			console.Println("An exotic catch!")
		}
		if report.GotAncientKey {
			console.Println("The Ancient Key! Something in the shop might need this...")
		}
		if report.QuestsAdvanced > 0 {
			console.Printf("%d quest(s) advanced.\n", report.QuestsAdvanced)
		}
		if report.LevelsGained > 0 {
			console.Printf("Level up! Now level %d.\n", s.State().Level)
		}
	case minigame.OutcomeEscaped:
		console.Println("It got away!")
	case minigame.OutcomeAborted:
		console.Println("You reel in your line.")
	default:
		console.Println("Nothing on the hook.")
	}
}

func doChooseZone(s *game.Session, console *ui.Console) {
	zones := s.Catalog().Zones()
	console.ZoneList(zones, s.State())
	input, ok := console.Prompt("Zone (number or name): ")
	if !ok || input == "" {
		return
	}

	name := input
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(zones) {
		name = zones[n-1].Name
	}
	if err := s.ChooseZone(name); err != nil {
		console.Println(err.Error())
		return
	}
	console.Printf("Now fishing in %s.\n", name)
}

func doSell(s *game.Session, console *ui.Console) {
	console.Inventory(s.State())
	if len(s.State().Inventory) == 0 {
		return
	}
	input, ok := console.Prompt("Sell (all, or x<count> <species>): ")
	if !ok || input == "" {
		return
	}

	order, err := command.ParseSellOrder(input)
	if err != nil {
		console.Println(err.Error())
		return
	}
	total, err := s.Sell(order)
	if err != nil {
		console.Println(err.Error())
		return
	}
	console.Printf("Sold for %.2f gold. Balance: %.2f\n", total, s.State().Currency)
}

func doShop(s *game.Session, console *ui.Console) {
	console.Shop(s.ShopCatalog(), s.State())
	input, ok := console.Prompt("Buy (number or name, blank to leave): ")
	if !ok || input == "" {
		return
	}

	name := input
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(s.ShopCatalog().Items) {
		name = s.ShopCatalog().Items[n-1].Name
	}
	item, err := s.Buy(name)
	if err != nil {
		console.Println(err.Error())
		return
	}
	console.Printf("Bought %s for %.0f gold.\n", item.Name, item.Price)
}

func doQuests(s *game.Session, console *ui.Console) {
	zone := s.CurrentZone()
	log := s.QuestLogFor(zone.Name)
	console.Quests(log, zone.Name)
	if log == nil {
		return
	}

	input, ok := console.Prompt("Finish quest (slot number, blank to leave): ")
	if !ok || input == "" {
		return
	}
	slot, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		console.Println("Enter a slot number.")
		return
	}
	reward, err := s.FinishQuest(zone.Name, slot)
	if err != nil {
		if errors.Is(err, quest.ErrNotCompleted) {
			console.Println("That quest isn't finished yet.")
		} else {
			console.Println(err.Error())
		}
		return
	}
	console.Printf("Quest complete! +%.0f gold.\n", reward)
}
