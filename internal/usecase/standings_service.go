package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-tracker/internal/domain/match"
	"github.com/riskibarqy/league-tracker/internal/domain/team"
	"github.com/riskibarqy/league-tracker/internal/platform/tracing"
	"go.opentelemetry.io/otel/attribute"
)

const defaultRecomputeWorkers = 4

type Standing struct {
	Position int
	TeamID   int64
	TeamName string
	Played   int
	Wins     int
	Draws    int
	Losses   int
	Points   int
}

type RecomputeResult struct {
	TeamCount    int
	MatchCount   int
	UpdatedCount int
	WorkerCount  int
}

type StandingsService struct {
	teamRepo  team.Repository
	matchRepo match.Repository
	workers   int
}

func NewStandingsService(teamRepo team.Repository, matchRepo match.Repository, workers int) *StandingsService {
	if workers <= 0 {
		workers = defaultRecomputeWorkers
	}
	return &StandingsService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		workers:   workers,
	}
}

// ListStandings ranks teams by their stored counters: points, then wins, then name.
func (s *StandingsService) ListStandings(ctx context.Context) ([]Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.ListStandings")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]Standing, 0, len(teams))
	for _, item := range teams {
		out = append(out, Standing{
			TeamID:   item.ID,
			TeamName: item.Name,
			Played:   item.Played(),
			Wins:     item.Wins,
			Draws:    item.Draws,
			Losses:   item.Losses,
			Points:   item.Points(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		left, right := strings.ToLower(out[i].TeamName), strings.ToLower(out[j].TeamName)
		if left != right {
			return left < right
		}
		return out[i].TeamID < out[j].TeamID
	})
	for idx := range out {
		out[idx].Position = idx + 1
	}

	return out, nil
}

// RecomputeRecords rebuilds every team's counters from the stored matches.
// Teams without matches are reset to zero. Only rows whose counters change are written.
func (s *StandingsService) RecomputeRecords(ctx context.Context) (RecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.RecomputeRecords")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("list teams: %w", err)
	}
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("list matches: %w", err)
	}

	records := match.Tally(matches)
	result := RecomputeResult{
		TeamCount:   len(teams),
		MatchCount:  len(matches),
		WorkerCount: s.workers,
	}

	pending := make([]team.Team, 0, len(teams))
	for _, item := range teams {
		rec := records[item.ID]
		if item.Wins == rec.Wins && item.Losses == rec.Losses && item.Draws == rec.Draws {
			continue
		}
		item.Wins, item.Losses, item.Draws = rec.Wins, rec.Losses, rec.Draws
		pending = append(pending, item)
	}
	if len(pending) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		updated  atomic.Int32
		errMu    sync.Mutex
		firstErr error
		workers  sync.WaitGroup
	)
	for _, item := range pending {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			found, err := s.teamRepo.Update(ctx, item)
			if err == nil && found {
				updated.Add(1)
				return
			}
			if err == nil {
				return
			}

			errMu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("update team=%d: %w", item.ID, err)
			}
			errMu.Unlock()
		}); err != nil {
			workers.Done()
			workers.Wait()
			return RecomputeResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	result.UpdatedCount = int(updated.Load())
	span.SetAttributes(
		attribute.Int("standings.teams", result.TeamCount),
		attribute.Int("standings.matches", result.MatchCount),
		attribute.Int("standings.updated", result.UpdatedCount),
	)
	if firstErr != nil {
		tracing.RecordError(span, firstErr)
		return result, firstErr
	}

	return result, nil
}
