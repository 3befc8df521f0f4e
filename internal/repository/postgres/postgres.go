package postgres

import (
	"database/sql"

	"joke-api/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.JokeRepository
	repository.UserRepository
	repository.APIKeyRepository
	repository.AccessLogRepository
	repository.AnalyticsRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		JokeRepository:      NewJokeRepository(db),
		UserRepository:      NewUserRepository(db),
		APIKeyRepository:    NewAPIKeyRepository(db),
		AccessLogRepository: NewAccessLogRepository(db),
		AnalyticsRepository: NewAnalyticsRepository(db),
	}
}
