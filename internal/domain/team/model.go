package team

import (
	"errors"
	"fmt"
)

// ErrInUse is reported when a team cannot be removed because matches still reference it.
var ErrInUse = errors.New("team is referenced by matches")

// Team is a football club with caller-maintained result counters.
type Team struct {
	ID     int64
	Name   string
	Wins   int
	Losses int
	Draws  int
}

func (t Team) Validate() error {
	if t.Wins < 0 {
		return fmt.Errorf("team wins must be >= 0")
	}
	if t.Losses < 0 {
		return fmt.Errorf("team losses must be >= 0")
	}
	if t.Draws < 0 {
		return fmt.Errorf("team draws must be >= 0")
	}

	return nil
}

// Played is the number of results recorded on the counters.
func (t Team) Played() int {
	return t.Wins + t.Losses + t.Draws
}

// Points uses three points for a win and one for a draw.
func (t Team) Points() int {
	return 3*t.Wins + t.Draws
}
