package sqlstore

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-tracker/internal/domain/match"
	qb "github.com/riskibarqy/league-tracker/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Create inserts the match. A home or away id without a team row fails with match.ErrUnknownTeam.
func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	query, args, err := qb.InsertModel(matchesTable, matchToTableModel(item), "RETURNING id")
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}

	var id int64
	if err := r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return match.Match{}, crerr.Mark(
				crerr.Wrapf(err, "insert match home=%d away=%d", item.HomeTeamID, item.AwayTeamID),
				match.ErrUnknownTeam,
			)
		}
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}

	item.ID = id
	return item, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := selectMatches().
		Where(qb.Eq("m.id", matchID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match by id query: %w", err)
	}

	var row matchRowModel
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := selectMatches().
		OrderBy("m.match_date", "m.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	return r.selectRows(ctx, query, args, "select matches")
}

func (r *MatchRepository) ListByTeam(ctx context.Context, teamID int64) ([]match.Match, error) {
	query, args, err := selectMatches().
		Where(qb.Or(
			qb.Eq("m.home_team_id", teamID),
			qb.Eq("m.away_team_id", teamID),
		)).
		OrderBy("m.match_date", "m.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by team query: %w", err)
	}

	return r.selectRows(ctx, query, args, "select matches by team")
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) (bool, error) {
	query, args, err := qb.UpdateModel(matchesTable, matchToTableModel(item), qb.Eq("id", item.ID)).
		SetExpr("updated_at", "CURRENT_TIMESTAMP").
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update match query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, crerr.Mark(crerr.Wrapf(err, "update match %d", item.ID), match.ErrUnknownTeam)
		}
		return false, fmt.Errorf("update match: %w", err)
	}

	return rowsAffected(res)
}

func (r *MatchRepository) Delete(ctx context.Context, matchID int64) (bool, error) {
	query, args, err := qb.DeleteFrom(matchesTable).Where(qb.Eq("id", matchID)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete match query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return false, fmt.Errorf("delete match: %w", err)
	}

	return rowsAffected(res)
}

func (r *MatchRepository) selectRows(ctx context.Context, query string, args []any, op string) ([]match.Match, error) {
	var rows []matchRowModel
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func selectMatches() *qb.SelectBuilder {
	return qb.Select(matchRowColumns...).
		From(matchesTable+" m").
		LeftJoin(teamsTable+" h", "h.id = m.home_team_id").
		LeftJoin(teamsTable+" a", "a.id = m.away_team_id")
}
