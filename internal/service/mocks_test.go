package service

import (
	"context"
	"time"

	"joke-api/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockJokeRepo
type MockJokeRepo struct {
	mock.Mock
}

func (m *MockJokeRepo) CreateWithQueueEntry(ctx context.Context, joke *domain.Joke) error {
	args := m.Called(ctx, joke)
	return args.Error(0)
}
func (m *MockJokeRepo) GetByID(ctx context.Context, id string) (*domain.Joke, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Joke), args.Error(1)
}
func (m *MockJokeRepo) ListApprovedByLanguage(ctx context.Context, language string) ([]domain.Joke, error) {
	args := m.Called(ctx, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Joke), args.Error(1)
}
func (m *MockJokeRepo) ApplyReview(ctx context.Context, jokeID string, approved bool, status domain.ModerationStatus) error {
	args := m.Called(ctx, jokeID, approved, status)
	return args.Error(0)
}
func (m *MockJokeRepo) ListQueueEntries(ctx context.Context, jokeID string) ([]domain.ModerationEntry, error) {
	args := m.Called(ctx, jokeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ModerationEntry), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByEmailOrID(ctx context.Context, usernameOrEmail string) (*domain.User, error) {
	args := m.Called(ctx, usernameOrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockAPIKeyRepo
type MockAPIKeyRepo struct {
	mock.Mock
}

func (m *MockAPIKeyRepo) GetByKey(ctx context.Context, key string) (*domain.APIKey, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APIKey), args.Error(1)
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

// MockAnalyticsRepo
type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) TopByRequestCount(ctx context.Context) (*domain.AnalyticsRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticsRecord), args.Error(1)
}
func (m *MockAnalyticsRepo) ListCreatedSince(ctx context.Context, since time.Time) ([]domain.AnalyticsRecord, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnalyticsRecord), args.Error(1)
}
func (m *MockAnalyticsRepo) Create(ctx context.Context, rec *domain.AnalyticsRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
