package sqlstore

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/league-tracker/internal/domain/match"
	"github.com/riskibarqy/league-tracker/internal/domain/team"
)

const matchesTable = "matches"

type matchTableModel struct {
	ID         int64     `db:"id,readonly"`
	HomeTeamID int64     `db:"home_team_id"`
	AwayTeamID int64     `db:"away_team_id"`
	HomeScore  int       `db:"home_score"`
	AwayScore  int       `db:"away_score"`
	MatchDate  time.Time `db:"match_date"`
}

// matchRowModel is a match row joined with both team rows.
type matchRowModel struct {
	matchTableModel
	HomeTeamName   sql.NullString `db:"home_team_name"`
	HomeTeamWins   sql.NullInt64  `db:"home_team_wins"`
	HomeTeamLosses sql.NullInt64  `db:"home_team_losses"`
	HomeTeamDraws  sql.NullInt64  `db:"home_team_draws"`
	AwayTeamName   sql.NullString `db:"away_team_name"`
	AwayTeamWins   sql.NullInt64  `db:"away_team_wins"`
	AwayTeamLosses sql.NullInt64  `db:"away_team_losses"`
	AwayTeamDraws  sql.NullInt64  `db:"away_team_draws"`
}

var matchRowColumns = []string{
	"m.id",
	"m.home_team_id",
	"m.away_team_id",
	"m.home_score",
	"m.away_score",
	"m.match_date",
	"h.name AS home_team_name",
	"h.wins AS home_team_wins",
	"h.losses AS home_team_losses",
	"h.draws AS home_team_draws",
	"a.name AS away_team_name",
	"a.wins AS away_team_wins",
	"a.losses AS away_team_losses",
	"a.draws AS away_team_draws",
}

func matchToTableModel(item match.Match) matchTableModel {
	return matchTableModel{
		ID:         item.ID,
		HomeTeamID: item.HomeTeamID,
		AwayTeamID: item.AwayTeamID,
		HomeScore:  item.HomeScore,
		AwayScore:  item.AwayScore,
		MatchDate:  item.MatchDate.UTC(),
	}
}

func (row matchRowModel) toDomain() match.Match {
	return match.Match{
		ID:         row.ID,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		HomeTeam:   joinedTeam(row.HomeTeamID, row.HomeTeamName, row.HomeTeamWins, row.HomeTeamLosses, row.HomeTeamDraws),
		AwayTeam:   joinedTeam(row.AwayTeamID, row.AwayTeamName, row.AwayTeamWins, row.AwayTeamLosses, row.AwayTeamDraws),
		HomeScore:  row.HomeScore,
		AwayScore:  row.AwayScore,
		MatchDate:  row.MatchDate.UTC(),
	}
}

// joinedTeam returns nil when the LEFT JOIN found no team row.
func joinedTeam(id int64, name sql.NullString, wins, losses, draws sql.NullInt64) *team.Team {
	if !name.Valid {
		return nil
	}
	return &team.Team{
		ID:     id,
		Name:   name.String,
		Wins:   int(wins.Int64),
		Losses: int(losses.Int64),
		Draws:  int(draws.Int64),
	}
}
