package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
)

var _ domain.WheelRepository = (*PostgresWheelRepository)(nil)

const wheelColumns = `id, date, anima, mente, cuore, corpo, abito, portafoglio, created_at`

type PostgresWheelRepository struct {
	db *sqlx.DB
}

func NewPostgresWheelRepository(db *sqlx.DB) *PostgresWheelRepository {
	return &PostgresWheelRepository{db: db}
}

func (r *PostgresWheelRepository) Create(ctx context.Context, w *domain.WheelOfLife) error {
	query := `
        INSERT INTO wheel_of_life (` + wheelColumns + `)
        VALUES (:id, :date, :anima, :mente, :cuore, :corpo, :abito, :portafoglio, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, w); err != nil {
		return fmt.Errorf("failed to insert wheel of life: %w", err)
	}
	return nil
}

func (r *PostgresWheelRepository) Latest(ctx context.Context) (*domain.WheelOfLife, error) {
	return r.one(ctx, `SELECT `+wheelColumns+` FROM wheel_of_life ORDER BY date DESC, created_at DESC LIMIT 1`)
}

func (r *PostgresWheelRepository) LatestBetween(ctx context.Context, from, to time.Time) (*domain.WheelOfLife, error) {
	query := `
        SELECT ` + wheelColumns + ` FROM wheel_of_life
        WHERE date BETWEEN $1 AND $2
        ORDER BY date DESC, created_at DESC
        LIMIT 1`
	return r.one(ctx, query, domain.DateKey(from), domain.DateKey(to))
}

func (r *PostgresWheelRepository) one(ctx context.Context, query string, args ...interface{}) (*domain.WheelOfLife, error) {
	var w domain.WheelOfLife
	if err := r.db.GetContext(ctx, &w, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWheelNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return &w, nil
}
