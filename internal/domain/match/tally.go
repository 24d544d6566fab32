package match

// Record is a win/loss/draw tally for one team.
type Record struct {
	Wins   int
	Losses int
	Draws  int
}

// Tally folds matches into per-team records keyed by team id.
// Each side is credited on its own, so a team listed on both sides gets both results.
func Tally(matches []Match) map[int64]Record {
	out := make(map[int64]Record)
	credit := func(teamID int64, apply func(*Record)) {
		rec := out[teamID]
		apply(&rec)
		out[teamID] = rec
	}

	for _, m := range matches {
		switch m.Outcome() {
		case OutcomeHomeWin:
			credit(m.HomeTeamID, func(r *Record) { r.Wins++ })
			credit(m.AwayTeamID, func(r *Record) { r.Losses++ })
		case OutcomeAwayWin:
			credit(m.HomeTeamID, func(r *Record) { r.Losses++ })
			credit(m.AwayTeamID, func(r *Record) { r.Wins++ })
		default:
			credit(m.HomeTeamID, func(r *Record) { r.Draws++ })
			credit(m.AwayTeamID, func(r *Record) { r.Draws++ })
		}
	}

	return out
}
