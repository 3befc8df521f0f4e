package postgres

import (
	"context"
	"database/sql"
	"time"

	"joke-api/internal/domain"
	"joke-api/internal/logger"
	"joke-api/internal/repository"
)

type jokeRepository struct {
	db *sql.DB
}

func NewJokeRepository(db *sql.DB) repository.JokeRepository {
	return &jokeRepository{db: db}
}

func (r *jokeRepository) CreateWithQueueEntry(ctx context.Context, j *domain.Joke) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	j.CreatedAt = now
	query := `INSERT INTO jokes (id, setup, punchline, language, approved, created_by_user_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := tx.ExecContext(ctx, query, j.ID, j.Setup, j.Punchline, j.Language, j.Approved, j.CreatedByUserID, j.CreatedAt); err != nil {
		return err
	}

	queueQuery := `INSERT INTO moderation_queue (joke_id, status, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	if _, err := tx.ExecContext(ctx, queueQuery, j.ID, domain.ModerationStatusPending, now, now); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *jokeRepository) GetByID(ctx context.Context, id string) (*domain.Joke, error) {
	j := &domain.Joke{}
	query := `SELECT id, setup, punchline, language, approved, COALESCE(created_by_user_id, ''), created_at FROM jokes WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&j.ID, &j.Setup, &j.Punchline, &j.Language, &j.Approved, &j.CreatedByUserID, &j.CreatedAt)
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (r *jokeRepository) ListApprovedByLanguage(ctx context.Context, language string) ([]domain.Joke, error) {
	query := `SELECT id, setup, punchline, language, approved, COALESCE(created_by_user_id, ''), created_at
	          FROM jokes WHERE language = $1 AND approved = TRUE`
	rows, err := r.db.QueryContext(ctx, query, language)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jokes []domain.Joke
	for rows.Next() {
		var j domain.Joke
		if err := rows.Scan(&j.ID, &j.Setup, &j.Punchline, &j.Language, &j.Approved, &j.CreatedByUserID, &j.CreatedAt); err != nil {
			return nil, err
		}
		jokes = append(jokes, j)
	}
	return jokes, rows.Err()
}

func (r *jokeRepository) ApplyReview(ctx context.Context, jokeID string, approved bool, status domain.ModerationStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	logger.DatabaseCall("UPDATE", "jokes, moderation_queue", "jokeID", jokeID, "status", status)

	res, err := tx.ExecContext(ctx, `UPDATE jokes SET approved = $1 WHERE id = $2`, approved, jokeID)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "jokeID", jokeID)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}

	if _, err := tx.ExecContext(ctx, `UPDATE moderation_queue SET status = $1, updated_at = $2 WHERE joke_id = $3`, status, time.Now(), jokeID); err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "jokeID", jokeID)
		return err
	}

	return tx.Commit()
}

func (r *jokeRepository) ListQueueEntries(ctx context.Context, jokeID string) ([]domain.ModerationEntry, error) {
	query := `SELECT id, joke_id, status, created_at, updated_at FROM moderation_queue WHERE joke_id = $1`
	rows, err := r.db.QueryContext(ctx, query, jokeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ModerationEntry
	for rows.Next() {
		var e domain.ModerationEntry
		if err := rows.Scan(&e.ID, &e.JokeID, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
