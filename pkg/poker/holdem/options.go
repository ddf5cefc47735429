package holdem

import "errors"

// table size limits. 22 seats is the most a single 52-card deck can
// serve: 22×2 hole cards + 3 burns + 5 community = 52.
const (
	MinSeats = 2
	MaxSeats = 22
)

// Options configures a hold'em table
type Options struct {
	SmallBlind    int `json:"smallBlind"`
	BigBlind      int `json:"bigBlind"`
	StartingStack int `json:"startingStack"`
}

// DefaultOptions returns the default table options
func DefaultOptions() Options {
	return Options{
		SmallBlind:    50,
		BigBlind:      100,
		StartingStack: 20000,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind must be >= small blind")
	}

	if opts.StartingStack < opts.BigBlind {
		return errors.New("starting stack must cover the big blind")
	}

	return nil
}
