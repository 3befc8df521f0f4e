package postgres

import (
	"context"
	"database/sql"

	"joke-api/internal/domain"
	"joke-api/internal/repository"
)

type apiKeyRepository struct {
	db *sql.DB
}

func NewAPIKeyRepository(db *sql.DB) repository.APIKeyRepository {
	return &apiKeyRepository{db: db}
}

func (r *apiKeyRepository) GetByKey(ctx context.Context, key string) (*domain.APIKey, error) {
	k := &domain.APIKey{}
	query := `SELECT key, COALESCE(owner_user_id, ''), created_at FROM api_keys WHERE key = $1`
	err := r.db.QueryRowContext(ctx, query, key).Scan(&k.Key, &k.OwnerUserID, &k.CreatedAt)
	if err != nil {
		return nil, err
	}
	return k, nil
}
