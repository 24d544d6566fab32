package httpapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-tracker/internal/domain/match"
	"github.com/riskibarqy/league-tracker/internal/domain/team"
	"github.com/riskibarqy/league-tracker/internal/usecase"
)

const matchDateLayout = "2006-01-02"

type teamUpsertRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Wins   int    `json:"wins" validate:"gte=0"`
	Losses int    `json:"losses" validate:"gte=0"`
	Draws  int    `json:"draws" validate:"gte=0"`
}

func (req teamUpsertRequest) toInput() usecase.TeamInput {
	return usecase.TeamInput{
		Name:   req.Name,
		Wins:   req.Wins,
		Losses: req.Losses,
		Draws:  req.Draws,
	}
}

type matchUpsertRequest struct {
	HomeTeamID int64  `json:"homeTeamId" validate:"required,gt=0"`
	AwayTeamID int64  `json:"awayTeamId" validate:"required,gt=0"`
	HomeScore  int    `json:"homeScore" validate:"gte=0"`
	AwayScore  int    `json:"awayScore" validate:"gte=0"`
	MatchDate  string `json:"matchDate" validate:"required"`
}

func (req matchUpsertRequest) toInput() (usecase.MatchInput, error) {
	matchDate, err := parseMatchDate(req.MatchDate)
	if err != nil {
		return usecase.MatchInput{}, err
	}

	return usecase.MatchInput{
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		HomeScore:  req.HomeScore,
		AwayScore:  req.AwayScore,
		MatchDate:  matchDate,
	}, nil
}

// parseMatchDate accepts RFC 3339 timestamps or a bare calendar date, read as UTC midnight.
func parseMatchDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if v, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return v.UTC(), nil
	}
	if v, err := time.Parse(matchDateLayout, raw); err == nil {
		return v, nil
	}
	return time.Time{}, fmt.Errorf("%w: matchDate must be RFC3339 or YYYY-MM-DD", usecase.ErrInvalidInput)
}

type teamDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Draws  int    `json:"draws"`
	Played int    `json:"played"`
	Points int    `json:"points"`
}

type teamRefDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type matchDTO struct {
	ID         int64       `json:"id"`
	HomeTeamID int64       `json:"homeTeamId"`
	AwayTeamID int64       `json:"awayTeamId"`
	HomeTeam   *teamRefDTO `json:"homeTeam,omitempty"`
	AwayTeam   *teamRefDTO `json:"awayTeam,omitempty"`
	HomeScore  int         `json:"homeScore"`
	AwayScore  int         `json:"awayScore"`
	MatchDate  string      `json:"matchDate"`
	Outcome    string      `json:"outcome"`
}

type standingDTO struct {
	Position int    `json:"position"`
	TeamID   int64  `json:"teamId"`
	TeamName string `json:"teamName"`
	Played   int    `json:"played"`
	Wins     int    `json:"wins"`
	Draws    int    `json:"draws"`
	Losses   int    `json:"losses"`
	Points   int    `json:"points"`
}

type recomputeDTO struct {
	TeamCount    int `json:"teamCount"`
	MatchCount   int `json:"matchCount"`
	UpdatedCount int `json:"updatedCount"`
	WorkerCount  int `json:"workerCount"`
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{
		ID:     item.ID,
		Name:   item.Name,
		Wins:   item.Wins,
		Losses: item.Losses,
		Draws:  item.Draws,
		Played: item.Played(),
		Points: item.Points(),
	}
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	return out
}

func teamRefToDTO(item *team.Team) *teamRefDTO {
	if item == nil {
		return nil
	}
	return &teamRefDTO{ID: item.ID, Name: item.Name}
}

func matchToDTO(item match.Match) matchDTO {
	return matchDTO{
		ID:         item.ID,
		HomeTeamID: item.HomeTeamID,
		AwayTeamID: item.AwayTeamID,
		HomeTeam:   teamRefToDTO(item.HomeTeam),
		AwayTeam:   teamRefToDTO(item.AwayTeam),
		HomeScore:  item.HomeScore,
		AwayScore:  item.AwayScore,
		MatchDate:  item.MatchDate.UTC().Format(time.RFC3339Nano),
		Outcome:    string(item.Outcome()),
	}
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}

func standingsToDTO(items []usecase.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, standingDTO{
			Position: item.Position,
			TeamID:   item.TeamID,
			TeamName: item.TeamName,
			Played:   item.Played,
			Wins:     item.Wins,
			Draws:    item.Draws,
			Losses:   item.Losses,
			Points:   item.Points,
		})
	}
	return out
}
