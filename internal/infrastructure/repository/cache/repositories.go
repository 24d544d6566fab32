package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/league-tracker/internal/domain/match"
	"github.com/riskibarqy/league-tracker/internal/domain/team"
	basecache "github.com/riskibarqy/league-tracker/internal/platform/cache"
)

const (
	teamKeyPrefix  = "team:"
	teamListKey    = "team:list"
	matchKeyPrefix = "match:"
	matchListKey   = "match:list"
)

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return team.Team{}, err
	}

	r.cache.Delete(ctx, teamListKey)
	// Replaces any cached miss for the new id.
	r.cache.Set(ctx, teamIDKey(created.ID), cachedTeamByID{value: created, exists: true})
	return created, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, teamIDKey(teamID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, teamListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

// Update also drops cached matches, since match reads carry the joined team row.
func (r *TeamRepository) Update(ctx context.Context, item team.Team) (bool, error) {
	found, err := r.next.Update(ctx, item)
	if err != nil {
		return false, err
	}

	r.invalidate(ctx, item.ID)
	return found, nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID int64) (bool, error) {
	found, err := r.next.Delete(ctx, teamID)
	if err != nil {
		return false, err
	}

	r.invalidate(ctx, teamID)
	return found, nil
}

func (r *TeamRepository) invalidate(ctx context.Context, teamID int64) {
	r.cache.Delete(ctx, teamIDKey(teamID), teamListKey)
	r.cache.DeletePrefix(ctx, matchKeyPrefix)
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return match.Match{}, err
	}

	r.cache.DeletePrefix(ctx, matchKeyPrefix)
	return created, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, matchIDKey(matchID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return cachedMatchByID{value: cloneMatch(item), exists: exists}, nil
	})
	if err != nil {
		return match.Match{}, false, err
	}

	cached, _ := v.(cachedMatchByID)
	return cloneMatch(cached.value), cached.exists, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	return r.loadList(ctx, matchListKey, r.next.List)
}

// ListByTeam filters a cached full list when one is present; both share the same ordering.
func (r *MatchRepository) ListByTeam(ctx context.Context, teamID int64) ([]match.Match, error) {
	if v, ok := r.cache.Get(ctx, matchListKey); ok {
		all, _ := v.([]match.Match)
		out := make([]match.Match, 0, len(all))
		for _, item := range all {
			if item.Involves(teamID) {
				out = append(out, cloneMatch(item))
			}
		}
		return out, nil
	}

	return r.loadList(ctx, matchKeyPrefix+"team:"+strconv.FormatInt(teamID, 10), func(ctx context.Context) ([]match.Match, error) {
		return r.next.ListByTeam(ctx, teamID)
	})
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) (bool, error) {
	found, err := r.next.Update(ctx, item)
	if err != nil {
		return false, err
	}

	r.cache.DeletePrefix(ctx, matchKeyPrefix)
	return found, nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID int64) (bool, error) {
	found, err := r.next.Delete(ctx, matchID)
	if err != nil {
		return false, err
	}

	r.cache.DeletePrefix(ctx, matchKeyPrefix)
	return found, nil
}

func (r *MatchRepository) loadList(ctx context.Context, key string, load func(context.Context) ([]match.Match, error)) ([]match.Match, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cloneMatches(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return cloneMatches(items), nil
}

type cachedMatchByID struct {
	value  match.Match
	exists bool
}

func teamIDKey(teamID int64) string {
	return teamKeyPrefix + "id:" + strconv.FormatInt(teamID, 10)
}

func matchIDKey(matchID int64) string {
	return matchKeyPrefix + "id:" + strconv.FormatInt(matchID, 10)
}

// cloneMatch copies the joined team rows so callers never share cached pointers.
func cloneMatch(item match.Match) match.Match {
	if item.HomeTeam != nil {
		home := *item.HomeTeam
		item.HomeTeam = &home
	}
	if item.AwayTeam != nil {
		away := *item.AwayTeam
		item.AwayTeam = &away
	}
	return item
}

func cloneMatches(items []match.Match) []match.Match {
	if items == nil {
		return nil
	}
	out := make([]match.Match, len(items))
	for idx, item := range items {
		out[idx] = cloneMatch(item)
	}
	return out
}
