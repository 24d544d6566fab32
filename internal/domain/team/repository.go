package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Team) (Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	List(ctx context.Context) ([]Team, error)
	Update(ctx context.Context, item Team) (bool, error)
	Delete(ctx context.Context, teamID int64) (bool, error)
}
