package postgres

import (
	"context"
	"database/sql"
	"time"

	"joke-api/internal/domain"
	"joke-api/internal/repository"
)

type analyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) TopByRequestCount(ctx context.Context) (*domain.AnalyticsRecord, error) {
	rec := &domain.AnalyticsRecord{}
	// endpoint ASC makes the winner deterministic when counts tie
	query := `SELECT id, endpoint, request_count, last_access, created_at FROM analytics
	          ORDER BY request_count DESC, endpoint ASC LIMIT 1`
	var lastAccess sql.NullTime
	err := r.db.QueryRowContext(ctx, query).Scan(&rec.ID, &rec.Endpoint, &rec.RequestCount, &lastAccess, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	if lastAccess.Valid {
		rec.LastAccess = &lastAccess.Time
	}
	return rec, nil
}

func (r *analyticsRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]domain.AnalyticsRecord, error) {
	query := `SELECT id, endpoint, request_count, last_access, created_at FROM analytics WHERE created_at >= $1`
	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.AnalyticsRecord
	for rows.Next() {
		var rec domain.AnalyticsRecord
		var lastAccess sql.NullTime
		if err := rows.Scan(&rec.ID, &rec.Endpoint, &rec.RequestCount, &lastAccess, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if lastAccess.Valid {
			rec.LastAccess = &lastAccess.Time
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *analyticsRepository) Create(ctx context.Context, rec *domain.AnalyticsRecord) error {
	query := `INSERT INTO analytics (endpoint, request_count, last_access, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	var lastAccess interface{}
	if rec.LastAccess != nil {
		lastAccess = *rec.LastAccess
	}
	return r.db.QueryRowContext(ctx, query, rec.Endpoint, rec.RequestCount, lastAccess, rec.CreatedAt).Scan(&rec.ID)
}
