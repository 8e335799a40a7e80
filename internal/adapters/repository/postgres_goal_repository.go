package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
)

var (
	_ domain.GoalRepository        = (*PostgresGoalRepository)(nil)
	_ domain.MonthlyGoalRepository = (*PostgresMonthlyGoalRepository)(nil)
)

const goalColumns = `id, title, target_value, current_value, unit, category, year, created_at`

type PostgresGoalRepository struct {
	db *sqlx.DB
}

func NewPostgresGoalRepository(db *sqlx.DB) *PostgresGoalRepository {
	return &PostgresGoalRepository{db: db}
}

func categoryArg(c *domain.Category) *string {
	if c == nil {
		return nil
	}
	s := string(*c)
	return &s
}

func (r *PostgresGoalRepository) Create(ctx context.Context, g *domain.Goal) error {
	query := `
        INSERT INTO goals (id, title, target_value, current_value, unit, category, year, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		g.ID, g.Title, g.TargetValue, g.CurrentValue, g.Unit, categoryArg(g.Category), g.Year, g.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}
	return nil
}

func (r *PostgresGoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	var g domain.Goal
	if err := r.db.GetContext(ctx, &g, `SELECT `+goalColumns+` FROM goals WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return &g, nil
}

func (r *PostgresGoalRepository) ListByYear(ctx context.Context, year int) ([]*domain.Goal, error) {
	goals := []*domain.Goal{}
	query := `SELECT ` + goalColumns + ` FROM goals WHERE year = $1 ORDER BY created_at ASC`
	if err := r.db.SelectContext(ctx, &goals, query, year); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return goals, nil
}

func (r *PostgresGoalRepository) Update(ctx context.Context, g *domain.Goal) error {
	query := `
        UPDATE goals SET title = $1, target_value = $2, current_value = $3, unit = $4, category = $5
        WHERE id = $6`

	res, err := r.db.ExecContext(ctx, query,
		g.Title, g.TargetValue, g.CurrentValue, g.Unit, categoryArg(g.Category), g.ID,
	)
	if err != nil {
		return fmt.Errorf("update query failed: %w", err)
	}
	return rowsAffected(res, domain.ErrGoalNotFound)
}

func (r *PostgresGoalRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}
	return rowsAffected(res, domain.ErrGoalNotFound)
}

const monthlyGoalColumns = `id, title, target_value, current_value, unit, category, month, year, status, created_at`

type PostgresMonthlyGoalRepository struct {
	db *sqlx.DB
}

func NewPostgresMonthlyGoalRepository(db *sqlx.DB) *PostgresMonthlyGoalRepository {
	return &PostgresMonthlyGoalRepository{db: db}
}

func (r *PostgresMonthlyGoalRepository) Create(ctx context.Context, g *domain.MonthlyGoal) error {
	query := `
        INSERT INTO monthly_goals (
            id, title, target_value, current_value, unit, category, month, year, status, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		g.ID, g.Title, g.TargetValue, g.CurrentValue, g.Unit, categoryArg(g.Category),
		g.Month, g.Year, string(g.Status), g.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert monthly goal: %w", err)
	}
	return nil
}

func (r *PostgresMonthlyGoalRepository) GetByID(ctx context.Context, id string) (*domain.MonthlyGoal, error) {
	var g domain.MonthlyGoal
	if err := r.db.GetContext(ctx, &g, `SELECT `+monthlyGoalColumns+` FROM monthly_goals WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMonthlyGoalNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return &g, nil
}

func (r *PostgresMonthlyGoalRepository) ListByMonth(ctx context.Context, month, year int) ([]*domain.MonthlyGoal, error) {
	goals := []*domain.MonthlyGoal{}
	query := `SELECT ` + monthlyGoalColumns + ` FROM monthly_goals WHERE month = $1 AND year = $2 ORDER BY created_at ASC`
	if err := r.db.SelectContext(ctx, &goals, query, month, year); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return goals, nil
}

func (r *PostgresMonthlyGoalRepository) Update(ctx context.Context, g *domain.MonthlyGoal) error {
	query := `
        UPDATE monthly_goals SET
            title = $1, target_value = $2, current_value = $3, unit = $4, category = $5, status = $6
        WHERE id = $7`

	res, err := r.db.ExecContext(ctx, query,
		g.Title, g.TargetValue, g.CurrentValue, g.Unit, categoryArg(g.Category), string(g.Status), g.ID,
	)
	if err != nil {
		return fmt.Errorf("update query failed: %w", err)
	}
	return rowsAffected(res, domain.ErrMonthlyGoalNotFound)
}
