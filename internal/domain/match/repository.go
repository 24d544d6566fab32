package match

import "context"

// Repository exposes match persistence. Reads resolve HomeTeam and AwayTeam.
type Repository interface {
	Create(ctx context.Context, item Match) (Match, error)
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
	List(ctx context.Context) ([]Match, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Match, error)
	Update(ctx context.Context, item Match) (bool, error)
	Delete(ctx context.Context, matchID int64) (bool, error)
}
