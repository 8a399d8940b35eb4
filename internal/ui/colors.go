// Package ui renders the console interface: menus, inventory and
// discovery views, the minigame track, and line-based input.
package ui

import "github.com/saltlinegames/deepcast/internal/catalog"

const (
	colorReset   = "\033[0m"
	colorWhite   = "\033[37m"
	colorGreen   = "\033[32m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorYellow  = "\033[33m"
	colorRed     = "\033[31m"
	colorCyan    = "\033[36m"
	colorBold    = "\033[1m"
)

// RarityColor returns the ANSI color code for a rarity tier.
func RarityColor(r catalog.Rarity) string {
	switch r {
	case catalog.Common:
		return colorWhite
	case catalog.Uncommon:
		return colorGreen
	case catalog.Rare:
		return colorBlue
	case catalog.Epic:
		return colorMagenta
	case catalog.Legendary:
		return colorYellow
	case catalog.Mythical:
		return colorRed
	case catalog.Exotic:
		return colorCyan
	default:
		return colorWhite
	}
}

// ColorRarity wraps text in the rarity's color.
func ColorRarity(text string, r catalog.Rarity) string {
	return RarityColor(r) + text + colorReset
}
