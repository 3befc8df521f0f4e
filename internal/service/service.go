package service

import (
	"context"
	"time"

	"joke-api/internal/domain"
)

type CatalogService interface {
	// GetRandomJoke serves an approved joke picked uniformly at random. An
	// empty candidate set yields ErrNoJokesFound (surfaced as not-found).
	GetRandomJoke(ctx context.Context, language string) (*domain.Joke, error)
	// GetJokeInLanguage applies the same filter and selection but signals an
	// empty set with ErrNoJokesInLanguage, which callers treat as a plain
	// error rather than not-found. The two failure shapes are deliberately
	// kept distinct.
	GetJokeInLanguage(ctx context.Context, language string) (*domain.Joke, error)
}

// SubmitResult is the in-band outcome of a joke submission. Persistence
// failures land here as Success=false, never as a returned error.
type SubmitResult struct {
	Success bool
	Message string
	JokeID  string
}

// ReviewResult is the in-band outcome of a moderation decision.
type ReviewResult struct {
	Success  bool
	Message  string
	JokeID   string
	Decision string
}

type ModerationService interface {
	SubmitJokeForReview(ctx context.Context, setup, punchline, submitterID, language string) (*SubmitResult, error)
	ReviewJoke(ctx context.Context, jokeID, decision string) (*ReviewResult, error)
}

// AuthResult carries the issued token. A failed authentication is the empty
// value, not an error.
type AuthResult struct {
	Token     string
	ExpiresIn int
}

type AuthService interface {
	GetUser(ctx context.Context, usernameOrEmail string) (*domain.User, error)
	AuthenticateUser(ctx context.Context, usernameOrEmail, password string) (*AuthResult, error)
}

type UsageStats struct {
	Endpoint     string
	RequestCount int32
	LastAccess   time.Time
}

type PerformanceMetrics struct {
	AverageResponseTime  float64
	RequestCount         int64
	ErrorRate            float64
	MostAccessedEndpoint string
	Timeframe            string
}

type AnalyticsService interface {
	GetAPIUsageStats(ctx context.Context) (*UsageStats, error)
	GetPerformanceMetrics(ctx context.Context) (*PerformanceMetrics, error)
}

type RateLimitStatus struct {
	RemainingRequests int64
	LimitWindowSecs   int
	UsedRequests      int64
}

type RateLimitService interface {
	Check(ctx context.Context, apiKey string) (*RateLimitStatus, error)
}
