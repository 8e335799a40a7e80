package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
)

var (
	_ domain.HabitRepository    = (*PostgresHabitRepository)(nil)
	_ domain.HabitLogRepository = (*PostgresHabitLogRepository)(nil)
)

const habitColumns = `id, name, category, emoji, target_per_week, current_streak, longest_streak, created_at, updated_at`

type PostgresHabitRepository struct {
	db *sqlx.DB
}

func NewPostgresHabitRepository(db *sqlx.DB) *PostgresHabitRepository {
	return &PostgresHabitRepository{db: db}
}

func (r *PostgresHabitRepository) Create(ctx context.Context, h *domain.Habit) error {
	query := `
        INSERT INTO habits (
            id, name, category, emoji, target_per_week,
            current_streak, longest_streak, created_at, updated_at
        ) VALUES (
            $1, $2, $3, $4, $5,
            $6, $7, $8, $9
        )`

	_, err := r.db.ExecContext(ctx, query,
		h.ID, h.Name, string(h.Category), h.Emoji, h.TargetPerWeek,
		h.CurrentStreak, h.LongestStreak, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert habit: %w", err)
	}
	return nil
}

func (r *PostgresHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	var h domain.Habit
	if err := r.db.GetContext(ctx, &h, `SELECT `+habitColumns+` FROM habits WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return &h, nil
}

func (r *PostgresHabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	habits := []*domain.Habit{}
	if err := r.db.SelectContext(ctx, &habits, `SELECT `+habitColumns+` FROM habits ORDER BY created_at ASC`); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return habits, nil
}

func (r *PostgresHabitRepository) Update(ctx context.Context, h *domain.Habit) error {
	query := `
        UPDATE habits SET
            name = $1, category = $2, emoji = $3, target_per_week = $4,
            updated_at = NOW()
        WHERE id = $5
        RETURNING updated_at`

	var updatedAt time.Time
	err := r.db.QueryRowContext(ctx, query,
		h.Name, string(h.Category), h.Emoji, h.TargetPerWeek, h.ID,
	).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrHabitNotFound
		}
		return fmt.Errorf("update query failed: %w", err)
	}

	h.UpdatedAt = updatedAt
	return nil
}

// Delete relies on ON DELETE CASCADE to remove the habit's logs.
func (r *PostgresHabitRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}
	return rowsAffected(res, domain.ErrHabitNotFound)
}

func (r *PostgresHabitRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	query := `UPDATE habits SET current_streak = $1, longest_streak = $2, updated_at = NOW() WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, current, longest, id)
	if err != nil {
		return fmt.Errorf("failed to update streaks: %w", err)
	}
	return rowsAffected(res, domain.ErrHabitNotFound)
}

const habitLogColumns = `id, habit_id, date, completed`

type PostgresHabitLogRepository struct {
	db *sqlx.DB
}

func NewPostgresHabitLogRepository(db *sqlx.DB) *PostgresHabitLogRepository {
	return &PostgresHabitLogRepository{db: db}
}

func (r *PostgresHabitLogRepository) GetByHabitAndDate(ctx context.Context, habitID string, date time.Time) (*domain.HabitLog, error) {
	query := `SELECT ` + habitLogColumns + ` FROM habit_logs WHERE habit_id = $1 AND date = $2`

	var l domain.HabitLog
	if err := r.db.GetContext(ctx, &l, query, habitID, domain.DateKey(date)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitLogNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return &l, nil
}

func (r *PostgresHabitLogRepository) Create(ctx context.Context, l *domain.HabitLog) error {
	query := `INSERT INTO habit_logs (id, habit_id, date, completed) VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, l.ID, l.HabitID, domain.DateKey(l.Date), l.Completed)
	if err != nil {
		switch pgCode(err) {
		case uniqueViolation:
			return domain.ErrHabitLogConflict
		case foreignKeyViolation:
			return domain.ErrHabitNotFound
		}
		return fmt.Errorf("failed to insert habit log: %w", err)
	}
	return nil
}

func (r *PostgresHabitLogRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE habit_logs SET completed = $1 WHERE id = $2`, completed, id)
	if err != nil {
		return fmt.Errorf("update query failed: %w", err)
	}
	return rowsAffected(res, domain.ErrHabitLogNotFound)
}

func (r *PostgresHabitLogRepository) List(ctx context.Context, filter domain.HabitLogFilter) ([]*domain.HabitLog, error) {
	var (
		where []string
		args  []interface{}
	)

	if len(filter.HabitIDs) > 0 {
		args = append(args, pq.Array(filter.HabitIDs))
		where = append(where, fmt.Sprintf("habit_id = ANY($%d)", len(args)))
	}
	if filter.From != nil {
		args = append(args, domain.DateKey(*filter.From))
		where = append(where, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, domain.DateKey(*filter.To))
		where = append(where, fmt.Sprintf("date <= $%d", len(args)))
	}

	query := `SELECT ` + habitLogColumns + ` FROM habit_logs`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY date ASC`

	logs := []*domain.HabitLog{}
	if err := r.db.SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return logs, nil
}
