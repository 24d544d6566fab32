package usecase

import (
	"context"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-tracker/internal/domain/team"
	"go.opentelemetry.io/otel/attribute"
)

type TeamInput struct {
	Name   string
	Wins   int
	Losses int
	Draws  int
}

type TeamService struct {
	teamRepo team.Repository
}

func NewTeamService(teamRepo team.Repository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) CreateTeam(ctx context.Context, input TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	item, err := teamFromInput(0, input)
	if err != nil {
		return team.Team{}, err
	}

	created, err := s.teamRepo.Create(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return created, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam", attribute.Int64("team.id", teamID))
	defer span.End()

	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

// UpdateTeam replaces every field of the team, counters included.
func (s *TeamService) UpdateTeam(ctx context.Context, teamID int64, input TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UpdateTeam", attribute.Int64("team.id", teamID))
	defer span.End()

	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}
	item, err := teamFromInput(teamID, input)
	if err != nil {
		return team.Team{}, err
	}

	found, err := s.teamRepo.Update(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	if !found {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, teamID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.DeleteTeam", attribute.Int64("team.id", teamID))
	defer span.End()

	if teamID <= 0 {
		return fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	found, err := s.teamRepo.Delete(ctx, teamID)
	if err != nil {
		if crerr.Is(err, team.ErrInUse) {
			return fmt.Errorf("%w: team=%d: %w", ErrConflict, teamID, err)
		}
		return fmt.Errorf("delete team: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	return nil
}

func teamFromInput(teamID int64, input TeamInput) (team.Team, error) {
	item := team.Team{
		ID:     teamID,
		Name:   strings.TrimSpace(input.Name),
		Wins:   input.Wins,
		Losses: input.Losses,
		Draws:  input.Draws,
	}
	if item.Name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return item, nil
}
