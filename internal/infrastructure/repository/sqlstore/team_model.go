package sqlstore

import "github.com/riskibarqy/league-tracker/internal/domain/team"

const teamsTable = "teams"

var teamColumns = []string{"id", "name", "wins", "losses", "draws"}

type teamTableModel struct {
	ID     int64  `db:"id,readonly"`
	Name   string `db:"name"`
	Wins   int    `db:"wins"`
	Losses int    `db:"losses"`
	Draws  int    `db:"draws"`
}

func teamToTableModel(item team.Team) teamTableModel {
	return teamTableModel{
		ID:     item.ID,
		Name:   item.Name,
		Wins:   item.Wins,
		Losses: item.Losses,
		Draws:  item.Draws,
	}
}

func (row teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:     row.ID,
		Name:   row.Name,
		Wins:   row.Wins,
		Losses: row.Losses,
		Draws:  row.Draws,
	}
}
