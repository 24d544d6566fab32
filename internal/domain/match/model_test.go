package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchValidate(t *testing.T) {
	valid := Match{
		HomeTeamID: 1,
		AwayTeamID: 2,
		HomeScore:  2,
		AwayScore:  1,
		MatchDate:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, valid.Validate())

	t.Run("same team on both sides is allowed", func(t *testing.T) {
		m := valid
		m.AwayTeamID = m.HomeTeamID
		assert.NoError(t, m.Validate())
	})

	cases := map[string]func(*Match){
		"missing home team": func(m *Match) { m.HomeTeamID = 0 },
		"missing away team": func(m *Match) { m.AwayTeamID = 0 },
		"negative home":     func(m *Match) { m.HomeScore = -1 },
		"negative away":     func(m *Match) { m.AwayScore = -1 },
		"zero date":         func(m *Match) { m.MatchDate = time.Time{} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			m := valid
			mutate(&m)
			assert.Error(t, m.Validate())
		})
	}
}

func TestMatchOutcome(t *testing.T) {
	assert.Equal(t, OutcomeHomeWin, Match{HomeScore: 3, AwayScore: 0}.Outcome())
	assert.Equal(t, OutcomeAwayWin, Match{HomeScore: 0, AwayScore: 1}.Outcome())
	assert.Equal(t, OutcomeDraw, Match{HomeScore: 2, AwayScore: 2}.Outcome())
}

func TestTally(t *testing.T) {
	matches := []Match{
		{HomeTeamID: 1, AwayTeamID: 2, HomeScore: 2, AwayScore: 1},
		{HomeTeamID: 2, AwayTeamID: 3, HomeScore: 0, AwayScore: 0},
		{HomeTeamID: 3, AwayTeamID: 1, HomeScore: 4, AwayScore: 1},
		{HomeTeamID: 4, AwayTeamID: 4, HomeScore: 1, AwayScore: 0},
	}

	got := Tally(matches)

	assert.Equal(t, Record{Wins: 1, Losses: 1}, got[1])
	assert.Equal(t, Record{Losses: 1, Draws: 1}, got[2])
	assert.Equal(t, Record{Wins: 1, Draws: 1}, got[3])
	assert.Equal(t, Record{Wins: 1, Losses: 1}, got[4])
	assert.Len(t, got, 4)
}
