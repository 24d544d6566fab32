package sqlstore

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-tracker/internal/domain/team"
	qb "github.com/riskibarqy/league-tracker/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	query, args, err := qb.InsertModel(teamsTable, teamToTableModel(item), "RETURNING id")
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	var id int64
	if err := r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...).Scan(&id); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}

	item.ID = id
	return item, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From(teamsTable).
		Where(qb.Eq("id", teamID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From(teamsTable).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (bool, error) {
	query, args, err := qb.UpdateModel(teamsTable, teamToTableModel(item), qb.Eq("id", item.ID)).
		SetExpr("updated_at", "CURRENT_TIMESTAMP").
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update team query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return false, fmt.Errorf("update team: %w", err)
	}

	return rowsAffected(res)
}

// Delete removes the team row. Matches referencing it block the delete with team.ErrInUse.
func (r *TeamRepository) Delete(ctx context.Context, teamID int64) (bool, error) {
	query, args, err := qb.DeleteFrom(teamsTable).Where(qb.Eq("id", teamID)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete team query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, crerr.Mark(crerr.Wrapf(err, "delete team %d", teamID), team.ErrInUse)
		}
		return false, fmt.Errorf("delete team: %w", err)
	}

	return rowsAffected(res)
}
