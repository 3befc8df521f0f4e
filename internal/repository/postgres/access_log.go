package postgres

import (
	"context"
	"database/sql"
	"time"

	"joke-api/internal/domain"
	"joke-api/internal/repository"
)

type accessLogRepository struct {
	db *sql.DB
}

func NewAccessLogRepository(db *sql.DB) repository.AccessLogRepository {
	return &accessLogRepository{db: db}
}

func (r *accessLogRepository) Record(ctx context.Context, l *domain.AccessLog) error {
	query := `INSERT INTO access_logs (api_key, endpoint, access_time) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, l.APIKey, l.Endpoint, l.AccessTime).Scan(&l.ID)
}

func (r *accessLogRepository) CountForKeySince(ctx context.Context, key string, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM access_logs WHERE api_key = $1 AND access_time > $2`
	var count int64
	err := r.db.QueryRowContext(ctx, query, key, since).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *accessLogRepository) EndpointUsageSince(ctx context.Context, since time.Time) ([]domain.EndpointUsage, error) {
	query := `SELECT endpoint, COUNT(*), MAX(access_time) FROM access_logs WHERE access_time > $1 GROUP BY endpoint`
	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usage []domain.EndpointUsage
	for rows.Next() {
		var u domain.EndpointUsage
		if err := rows.Scan(&u.Endpoint, &u.Count, &u.LastAccess); err != nil {
			return nil, err
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

func (r *accessLogRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM access_logs WHERE access_time < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
