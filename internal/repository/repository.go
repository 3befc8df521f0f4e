package repository

import (
	"context"
	"time"

	"joke-api/internal/domain"
)

type JokeRepository interface {
	// CreateWithQueueEntry inserts the joke and its PENDING moderation queue
	// row in one transaction.
	CreateWithQueueEntry(ctx context.Context, joke *domain.Joke) error
	GetByID(ctx context.Context, id string) (*domain.Joke, error)
	ListApprovedByLanguage(ctx context.Context, language string) ([]domain.Joke, error)
	// ApplyReview sets the joke's approved flag and moves every moderation
	// queue row for the joke to the given status, atomically.
	ApplyReview(ctx context.Context, jokeID string, approved bool, status domain.ModerationStatus) error
	ListQueueEntries(ctx context.Context, jokeID string) ([]domain.ModerationEntry, error)
}

type UserRepository interface {
	// GetByEmailOrID matches on email or id equality, first match wins.
	GetByEmailOrID(ctx context.Context, usernameOrEmail string) (*domain.User, error)
}

type APIKeyRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.APIKey, error)
}

type AccessLogRepository interface {
	Record(ctx context.Context, log *domain.AccessLog) error
	CountForKeySince(ctx context.Context, key string, since time.Time) (int64, error)
	EndpointUsageSince(ctx context.Context, since time.Time) ([]domain.EndpointUsage, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type AnalyticsRepository interface {
	// TopByRequestCount returns the record with the highest request count,
	// ties broken by lexicographic endpoint order. sql.ErrNoRows when empty.
	TopByRequestCount(ctx context.Context) (*domain.AnalyticsRecord, error)
	ListCreatedSince(ctx context.Context, since time.Time) ([]domain.AnalyticsRecord, error)
	Create(ctx context.Context, rec *domain.AnalyticsRecord) error
}
