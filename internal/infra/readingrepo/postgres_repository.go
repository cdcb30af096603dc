package readingrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minthura/astrologic/internal/domain/synthesis"
)

// PostgresRepository implements synthesis.ReadingRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Insert archives one reading row.
func (r *PostgresRepository) Insert(ctx context.Context, record synthesis.StoredReading) (synthesis.StoredReading, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO readings (name, city, birth_date, birth_time, provider, reading)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, record.Name, record.City, record.BirthDate, record.BirthTime, record.Provider, record.Reading)
	if err := row.Scan(&record.ID, &record.CreatedAt); err != nil {
		return synthesis.StoredReading{}, err
	}
	return record, nil
}

// Recent lists the latest archived readings, newest first.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]synthesis.StoredReading, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, city, birth_date, birth_time, provider, reading, created_at
		FROM readings
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]synthesis.StoredReading, 0, limit)
	for rows.Next() {
		var record synthesis.StoredReading
		if err := rows.Scan(
			&record.ID, &record.Name, &record.City,
			&record.BirthDate, &record.BirthTime,
			&record.Provider, &record.Reading, &record.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

var _ synthesis.ReadingRepository = (*PostgresRepository)(nil)
