package main

import (
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"consoleholdem/internal/config"
	"consoleholdem/internal/console"
	"consoleholdem/internal/rng"
	"consoleholdem/internal/util"
	"consoleholdem/pkg/poker/holdem"
)

// Version is the game version
var Version = "v0.0.0-dev"

var (
	configFile = flag.String("config", "", "path to the configuration file")
	maxHands   = flag.Int("hands", 0, "stop after this many hands (0 plays until one stack remains)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logrus.WithError(err).Fatal("could not load configuration")
	}

	setupLogger(cfg)

	table, err := holdem.NewTable(logrus.StandardLogger(), console.NewPrompter(), holdem.Options{
		SmallBlind:    cfg.Table.SmallBlind,
		BigBlind:      cfg.Table.BigBlind,
		StartingStack: cfg.Table.StartingStack,
	}, seatNames(cfg))
	if err != nil {
		logrus.WithError(err).Fatal("could not create table")
	}

	table.AddObserver(console.NewRenderer())

	pterm.DefaultHeader.Printfln("Texas Hold'em %s", Version)

	for hand := 1; *maxHands == 0 || hand <= *maxHands; hand++ {
		if _, err := table.PlayHand(); err != nil {
			if errors.Is(err, holdem.ErrNotEnoughPlayers) {
				break
			}

			logrus.WithError(err).Fatal("hand failed")
		}

		if table.PlayersWithChips() < 2 {
			break
		}
	}

	pterm.Println("Thanks for playing")
}

// seatNames returns the configured player names, padded out to the
// configured seat count with generated names
func seatNames(cfg config.Config) []string {
	names := cfg.Table.PlayerNames

	gen := rng.Crypto{}
	for len(names) < cfg.Table.Seats {
		names = append(names, util.RandomSeatName(gen))
	}

	return names
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
