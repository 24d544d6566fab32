package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/league-tracker/internal/domain/match"
	"github.com/riskibarqy/league-tracker/internal/domain/team"
	matchmock "github.com/riskibarqy/league-tracker/internal/mocks/domain/match"
	teammock "github.com/riskibarqy/league-tracker/internal/mocks/domain/team"
	basecache "github.com/riskibarqy/league-tracker/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTeamRepository_GetByIDServedFromCache(t *testing.T) {
	ctx := context.Background()
	next := teammock.NewRepository(t)
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	next.On("GetByID", mock.Anything, int64(1)).Return(team.Team{ID: 1, Name: "Arsenal"}, true, nil).Once()

	for i := 0; i < 3; i++ {
		got, exists, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		require.True(t, exists)
		assert.Equal(t, "Arsenal", got.Name)
	}
}

func TestTeamRepository_CachesMissingRows(t *testing.T) {
	ctx := context.Background()
	next := teammock.NewRepository(t)
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	next.On("GetByID", mock.Anything, int64(9)).Return(team.Team{}, false, nil).Once()

	_, exists, err := repo.GetByID(ctx, 9)
	require.NoError(t, err)
	assert.False(t, exists)
	_, exists, err = repo.GetByID(ctx, 9)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTeamRepository_UpdateInvalidatesTeamAndMatches(t *testing.T) {
	ctx := context.Background()
	store := basecache.NewStore(time.Minute)
	teams := teammock.NewRepository(t)
	matches := matchmock.NewRepository(t)
	teamRepo := NewTeamRepository(teams, store)
	matchRepo := NewMatchRepository(matches, store)

	teams.On("GetByID", mock.Anything, int64(1)).Return(team.Team{ID: 1, Name: "Arsenal"}, true, nil).Once()
	teams.On("GetByID", mock.Anything, int64(1)).Return(team.Team{ID: 1, Name: "Arsenal FC"}, true, nil).Once()
	teams.On("Update", mock.Anything, team.Team{ID: 1, Name: "Arsenal FC"}).Return(true, nil).Once()
	matches.On("List", mock.Anything).Return([]match.Match{{ID: 1, HomeTeamID: 1, AwayTeamID: 2}}, nil).Twice()

	_, _, err := teamRepo.GetByID(ctx, 1)
	require.NoError(t, err)
	_, err = matchRepo.List(ctx)
	require.NoError(t, err)

	found, err := teamRepo.Update(ctx, team.Team{ID: 1, Name: "Arsenal FC"})
	require.NoError(t, err)
	require.True(t, found)

	got, _, err := teamRepo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Arsenal FC", got.Name)
	_, err = matchRepo.List(ctx)
	require.NoError(t, err)
}

func TestTeamRepository_FailedWriteKeepsCache(t *testing.T) {
	ctx := context.Background()
	next := teammock.NewRepository(t)
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	next.On("List", mock.Anything).Return([]team.Team{{ID: 1, Name: "Arsenal"}}, nil).Once()
	next.On("Delete", mock.Anything, int64(1)).Return(false, team.ErrInUse).Once()

	_, err := repo.List(ctx)
	require.NoError(t, err)

	_, err = repo.Delete(ctx, 1)
	require.Error(t, err)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMatchRepository_CreateInvalidatesLists(t *testing.T) {
	ctx := context.Background()
	next := matchmock.NewRepository(t)
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	next.On("ListByTeam", mock.Anything, int64(1)).Return([]match.Match{}, nil).Once()
	next.On("ListByTeam", mock.Anything, int64(1)).Return([]match.Match{{ID: 5, HomeTeamID: 1, AwayTeamID: 2}}, nil).Once()
	next.On("Create", mock.Anything, mock.Anything).Return(match.Match{ID: 5, HomeTeamID: 1, AwayTeamID: 2}, nil).Once()

	got, err := repo.ListByTeam(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = repo.Create(ctx, match.Match{HomeTeamID: 1, AwayTeamID: 2})
	require.NoError(t, err)

	got, err = repo.ListByTeam(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMatchRepository_ReturnsCopiesOfJoinedTeams(t *testing.T) {
	ctx := context.Background()
	next := matchmock.NewRepository(t)
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	next.On("GetByID", mock.Anything, int64(1)).Return(match.Match{
		ID:       1,
		HomeTeam: &team.Team{ID: 1, Name: "Arsenal"},
	}, true, nil).Once()

	first, _, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	first.HomeTeam.Name = "mutated"

	second, _, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Arsenal", second.HomeTeam.Name)
}

func TestMatchRepository_LoaderErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	next := matchmock.NewRepository(t)
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	boom := errors.New("disk I/O error")
	next.On("List", mock.Anything).Return(nil, boom).Once()
	next.On("List", mock.Anything).Return([]match.Match{{ID: 1}}, nil).Once()

	_, err := repo.List(ctx)
	require.ErrorIs(t, err, boom)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestTeamRepository_CreateReplacesCachedMiss(t *testing.T) {
	ctx := context.Background()
	next := teammock.NewRepository(t)
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	next.On("GetByID", mock.Anything, int64(3)).Return(team.Team{}, false, nil).Once()
	next.On("Create", mock.Anything, team.Team{Name: "Chelsea"}).Return(team.Team{ID: 3, Name: "Chelsea"}, nil).Once()

	_, exists, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	require.False(t, exists)

	_, err = repo.Create(ctx, team.Team{Name: "Chelsea"})
	require.NoError(t, err)

	got, exists, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, "Chelsea", got.Name)
}

func TestMatchRepository_ListByTeamFiltersCachedList(t *testing.T) {
	ctx := context.Background()
	next := matchmock.NewRepository(t)
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	next.On("List", mock.Anything).Return([]match.Match{
		{ID: 1, HomeTeamID: 1, AwayTeamID: 2, HomeTeam: &team.Team{ID: 1, Name: "Arsenal"}},
		{ID: 2, HomeTeamID: 2, AwayTeamID: 3},
		{ID: 3, HomeTeamID: 3, AwayTeamID: 1},
	}, nil).Once()

	_, err := repo.List(ctx)
	require.NoError(t, err)

	got, err := repo.ListByTeam(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	got[0].HomeTeam.Name = "mutated"
	again, err := repo.ListByTeam(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Arsenal", again[0].HomeTeam.Name)
}
