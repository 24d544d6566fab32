package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/league-tracker/internal/domain/match"
	"go.opentelemetry.io/otel/attribute"
)

type MatchInput struct {
	HomeTeamID int64
	AwayTeamID int64
	HomeScore  int
	AwayScore  int
	MatchDate  time.Time
}

type MatchService struct {
	matchRepo match.Repository
}

func NewMatchService(matchRepo match.Repository) *MatchService {
	return &MatchService{matchRepo: matchRepo}
}

// CreateMatch stores a result. Team existence is enforced by the store,
// which reports match.ErrUnknownTeam for a dangling id.
func (s *MatchService) CreateMatch(ctx context.Context, input MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	item, err := matchFromInput(0, input)
	if err != nil {
		return match.Match{}, err
	}

	created, err := s.matchRepo.Create(ctx, item)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return created, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch", attribute.Int64("match.id", matchID))
	defer span.End()

	if matchID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id must be greater than zero", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	return item, nil
}

func (s *MatchService) ListMatches(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	items, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return items, nil
}

func (s *MatchService) ListMatchesByTeam(ctx context.Context, teamID int64) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatchesByTeam", attribute.Int64("team.id", teamID))
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	items, err := s.matchRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list matches by team: %w", err)
	}

	return items, nil
}

// UpdateMatch rewrites the match and returns it re-read so team names reflect the new ids.
func (s *MatchService) UpdateMatch(ctx context.Context, matchID int64, input MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateMatch", attribute.Int64("match.id", matchID))
	defer span.End()

	if matchID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id must be greater than zero", ErrInvalidInput)
	}
	item, err := matchFromInput(matchID, input)
	if err != nil {
		return match.Match{}, err
	}

	found, err := s.matchRepo.Update(ctx, item)
	if err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	if !found {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	updated, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	return updated, nil
}

func (s *MatchService) DeleteMatch(ctx context.Context, matchID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteMatch", attribute.Int64("match.id", matchID))
	defer span.End()

	if matchID <= 0 {
		return fmt.Errorf("%w: match id must be greater than zero", ErrInvalidInput)
	}

	found, err := s.matchRepo.Delete(ctx, matchID)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	return nil
}

func matchFromInput(matchID int64, input MatchInput) (match.Match, error) {
	item := match.Match{
		ID:         matchID,
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		HomeScore:  input.HomeScore,
		AwayScore:  input.AwayScore,
		MatchDate:  input.MatchDate.UTC(),
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return item, nil
}
