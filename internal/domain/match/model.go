package match

import (
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/league-tracker/internal/domain/team"
)

// ErrUnknownTeam is reported when a match points at a team row that does not exist.
var ErrUnknownTeam = errors.New("match references unknown team")

type Outcome string

const (
	OutcomeHomeWin Outcome = "HOME_WIN"
	OutcomeAwayWin Outcome = "AWAY_WIN"
	OutcomeDraw    Outcome = "DRAW"
)

// Match is one played fixture between a home and an away team.
//
// HomeTeam and AwayTeam are populated on read only; writes persist the IDs.
type Match struct {
	ID         int64
	HomeTeamID int64
	AwayTeamID int64
	HomeTeam   *team.Team
	AwayTeam   *team.Team
	HomeScore  int
	AwayScore  int
	MatchDate  time.Time
}

func (m Match) Validate() error {
	if m.HomeTeamID <= 0 {
		return fmt.Errorf("match home team id is required")
	}
	if m.AwayTeamID <= 0 {
		return fmt.Errorf("match away team id is required")
	}
	if m.HomeScore < 0 {
		return fmt.Errorf("match home score must be >= 0")
	}
	if m.AwayScore < 0 {
		return fmt.Errorf("match away score must be >= 0")
	}
	if m.MatchDate.IsZero() {
		return fmt.Errorf("match date is required")
	}

	return nil
}

func (m Match) Outcome() Outcome {
	switch {
	case m.HomeScore > m.AwayScore:
		return OutcomeHomeWin
	case m.HomeScore < m.AwayScore:
		return OutcomeAwayWin
	default:
		return OutcomeDraw
	}
}

// Involves reports whether teamID played on either side.
func (m Match) Involves(teamID int64) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}
