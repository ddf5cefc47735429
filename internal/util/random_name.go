package util

import (
	"fmt"

	"consoleholdem/internal/rng"
)

var adjectives = []string{
	"Lucky", "Bluffing", "Stoic", "Reckless", "Patient", "Crafty", "Silent",
	"Grinning", "Cold", "Loose", "Tight", "Wild", "Steady", "Sly", "Bold",
	"Cagey", "Fearless", "Quiet", "Sharp", "Smooth",
}

var nouns = []string{
	"Shark", "Fish", "Whale", "Fox", "Owl", "Rock", "Maverick", "Gambler",
	"Dealer", "Drifter", "Ace", "Joker", "Duke", "Baron", "Card", "River",
	"Cowboy", "Wizard", "Hustler", "Rounder",
}

// RandomSeatName returns a random player name by combining an adjective
// with a noun. Used when a table is created with fewer names than seats.
func RandomSeatName(gen rng.Generator) string {
	return fmt.Sprintf("%s %s", adjectives[gen.Intn(len(adjectives))], nouns[gen.Intn(len(nouns))])
}
