package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
)

var (
	_ domain.DayRepository      = (*PostgresDayRepository)(nil)
	_ domain.ActivityRepository = (*PostgresActivityRepository)(nil)
)

const dayColumns = `id, date, energy_level, notes, created_at`

type PostgresDayRepository struct {
	db *sqlx.DB
}

func NewPostgresDayRepository(db *sqlx.DB) *PostgresDayRepository {
	return &PostgresDayRepository{db: db}
}

func (r *PostgresDayRepository) Create(ctx context.Context, d *domain.Day) error {
	query := `
        INSERT INTO days (id, date, energy_level, notes, created_at)
        VALUES (:id, :date, :energy_level, :notes, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, d); err != nil {
		if pgCode(err) == uniqueViolation {
			return domain.ErrDayConflict
		}
		return fmt.Errorf("failed to insert day: %w", err)
	}
	return nil
}

func (r *PostgresDayRepository) GetByDate(ctx context.Context, date time.Time) (*domain.Day, error) {
	var d domain.Day
	err := r.db.GetContext(ctx, &d, `SELECT `+dayColumns+` FROM days WHERE date = $1`, domain.DateKey(date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDayNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return &d, nil
}

func (r *PostgresDayRepository) List(ctx context.Context) ([]*domain.Day, error) {
	days := []*domain.Day{}
	if err := r.db.SelectContext(ctx, &days, `SELECT `+dayColumns+` FROM days ORDER BY date DESC`); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return days, nil
}

func (r *PostgresDayRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Day, error) {
	query := `SELECT ` + dayColumns + ` FROM days WHERE date BETWEEN $1 AND $2 ORDER BY date ASC`

	days := []*domain.Day{}
	if err := r.db.SelectContext(ctx, &days, query, domain.DateKey(from), domain.DateKey(to)); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return days, nil
}

const activityColumns = `id, day_id, category, title, description, completed, created_at`

type PostgresActivityRepository struct {
	db *sqlx.DB
}

func NewPostgresActivityRepository(db *sqlx.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) Create(ctx context.Context, a *domain.Activity) error {
	query := `
        INSERT INTO activities (id, day_id, category, title, description, completed, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.DayID, string(a.Category), a.Title, a.Description, a.Completed, a.CreatedAt,
	)
	if err != nil {
		if pgCode(err) == foreignKeyViolation {
			return domain.ErrDayNotFound
		}
		return fmt.Errorf("failed to insert activity: %w", err)
	}
	return nil
}

func (r *PostgresActivityRepository) ListByDayIDs(ctx context.Context, dayIDs []string) ([]*domain.Activity, error) {
	activities := []*domain.Activity{}
	if len(dayIDs) == 0 {
		return activities, nil
	}

	query := `SELECT ` + activityColumns + ` FROM activities WHERE day_id = ANY($1) ORDER BY created_at ASC`
	if err := r.db.SelectContext(ctx, &activities, query, pq.Array(dayIDs)); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return activities, nil
}

func (r *PostgresActivityRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities ORDER BY created_at DESC LIMIT $1`

	activities := []*domain.Activity{}
	if err := r.db.SelectContext(ctx, &activities, query, limit); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return activities, nil
}

func (r *PostgresActivityRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE activities SET completed = $1 WHERE id = $2`, completed, id)
	if err != nil {
		return fmt.Errorf("update query failed: %w", err)
	}
	return rowsAffected(res, domain.ErrActivityNotFound)
}
