// Package command maps user input to game intents: the main menu command
// enum and the sell-order grammar.
package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is a main-menu intent.
type Command int

const (
	Unknown Command = iota
	StartFishing
	ChooseZone
	SellFish
	Inventory
	Shop
	Discovery
	Quests
	Exit
)

// String returns the menu label for a command.
func (c Command) String() string {
	switch c {
	case StartFishing:
		return "Fishing"
	case ChooseZone:
		return "Zone"
	case SellFish:
		return "Sell fish"
	case Inventory:
		return "Inventory"
	case Shop:
		return "Shop"
	case Discovery:
		return "Discovery Book"
	case Quests:
		return "Quest"
	case Exit:
		return "Exit game"
	default:
		return "Unknown"
	}
}

// Menu returns the commands in menu order.
func Menu() []Command {
	return []Command{StartFishing, ChooseZone, SellFish, Inventory, Shop, Discovery, Quests, Exit}
}

// Parse maps a menu input (number or keyword) to a Command.
func Parse(input string) Command {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "fish", "fishing":
		return StartFishing
	case "2", "zone":
		return ChooseZone
	case "3", "sell":
		return SellFish
	case "4", "inventory", "inv":
		return Inventory
	case "5", "shop":
		return Shop
	case "6", "discovery", "book":
		return Discovery
	case "7", "quest", "quests":
		return Quests
	case "8", "exit", "quit":
		return Exit
	default:
		return Unknown
	}
}

// SellOrder is a parsed sell instruction.
type SellOrder struct {
	All     bool
	Count   int
	Species string
}

// ParseSellOrder parses sell input: "all", or "sell x2 Carp" / "x2 Carp".
func ParseSellOrder(input string) (SellOrder, error) {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, "all") {
		return SellOrder{All: true}, nil
	}

	fields := strings.Fields(input)
	if len(fields) > 0 && strings.EqualFold(fields[0], "sell") {
		fields = fields[1:]
	}
	if len(fields) < 2 {
		return SellOrder{}, fmt.Errorf("invalid sell input %q", input)
	}

	countToken := strings.TrimPrefix(strings.ToLower(fields[0]), "x")
	count, err := strconv.Atoi(countToken)
	if err != nil || count <= 0 {
		return SellOrder{}, fmt.Errorf("invalid sell count %q", fields[0])
	}

	return SellOrder{
		Count:   count,
		Species: strings.Join(fields[1:], " "),
	}, nil
}
