package postgres

import (
	"context"
	"database/sql"

	"joke-api/internal/domain"
	"joke-api/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByEmailOrID(ctx context.Context, usernameOrEmail string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, email, password_hash, created_at FROM users WHERE LOWER(email) = LOWER($1) OR id = $1 LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, usernameOrEmail).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}
