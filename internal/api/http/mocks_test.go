package http

import (
	"context"
	"time"

	"joke-api/internal/domain"
	"joke-api/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetRandomJoke(ctx context.Context, language string) (*domain.Joke, error) {
	args := m.Called(ctx, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Joke), args.Error(1)
}
func (m *MockCatalogService) GetJokeInLanguage(ctx context.Context, language string) (*domain.Joke, error) {
	args := m.Called(ctx, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Joke), args.Error(1)
}

// MockModerationService
type MockModerationService struct {
	mock.Mock
}

func (m *MockModerationService) SubmitJokeForReview(ctx context.Context, setup, punchline, submitterID, language string) (*service.SubmitResult, error) {
	args := m.Called(ctx, setup, punchline, submitterID, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubmitResult), args.Error(1)
}
func (m *MockModerationService) ReviewJoke(ctx context.Context, jokeID, decision string) (*service.ReviewResult, error) {
	args := m.Called(ctx, jokeID, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReviewResult), args.Error(1)
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) GetUser(ctx context.Context, usernameOrEmail string) (*domain.User, error) {
	args := m.Called(ctx, usernameOrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) AuthenticateUser(ctx context.Context, usernameOrEmail, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, usernameOrEmail, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

// MockAnalyticsService
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) GetAPIUsageStats(ctx context.Context) (*service.UsageStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UsageStats), args.Error(1)
}
func (m *MockAnalyticsService) GetPerformanceMetrics(ctx context.Context) (*service.PerformanceMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PerformanceMetrics), args.Error(1)
}

// MockRateLimitService
type MockRateLimitService struct {
	mock.Mock
}

func (m *MockRateLimitService) Check(ctx context.Context, apiKey string) (*service.RateLimitStatus, error) {
	args := m.Called(ctx, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RateLimitStatus), args.Error(1)
}

// MockAccessLogRepo
type MockAccessLogRepo struct {
	mock.Mock
}

func (m *MockAccessLogRepo) Record(ctx context.Context, log *domain.AccessLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}
func (m *MockAccessLogRepo) CountForKeySince(ctx context.Context, key string, since time.Time) (int64, error) {
	args := m.Called(ctx, key, since)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAccessLogRepo) EndpointUsageSince(ctx context.Context, since time.Time) ([]domain.EndpointUsage, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EndpointUsage), args.Error(1)
}
func (m *MockAccessLogRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
