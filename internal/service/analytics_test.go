package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"joke-api/internal/config"
	"joke-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func analyticsConfig() config.AnalyticsConfig {
	return config.AnalyticsConfig{
		AverageResponseTimeMs: 120.0,
		ErrorRate:             0.02,
		UsageWindowHours:      24,
	}
}

func TestAnalyticsService_GetAPIUsageStats(t *testing.T) {
	ctx := context.Background()

	t.Run("TopRecord", func(t *testing.T) {
		repo := new(MockAnalyticsRepo)
		svc := NewAnalyticsService(repo, analyticsConfig())

		last := time.Now().Add(-time.Minute)
		repo.On("TopByRequestCount", ctx).Return(&domain.AnalyticsRecord{
			Endpoint:     "/joke",
			RequestCount: 200,
			LastAccess:   &last,
		}, nil)

		stats, err := svc.GetAPIUsageStats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "/joke", stats.Endpoint)
		assert.Equal(t, int32(200), stats.RequestCount)
		assert.Equal(t, last, stats.LastAccess)
	})

	t.Run("NullLastAccessSubstitutesNow", func(t *testing.T) {
		repo := new(MockAnalyticsRepo)
		svc := NewAnalyticsService(repo, analyticsConfig())

		repo.On("TopByRequestCount", ctx).Return(&domain.AnalyticsRecord{
			Endpoint:     "/joke",
			RequestCount: 10,
		}, nil)

		stats, err := svc.GetAPIUsageStats(ctx)
		assert.NoError(t, err)
		assert.WithinDuration(t, time.Now(), stats.LastAccess, time.Minute)
	})

	t.Run("NoDataSentinel", func(t *testing.T) {
		repo := new(MockAnalyticsRepo)
		svc := NewAnalyticsService(repo, analyticsConfig())

		repo.On("TopByRequestCount", ctx).Return(nil, sql.ErrNoRows)

		stats, err := svc.GetAPIUsageStats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "N/A", stats.Endpoint)
		assert.Equal(t, int32(0), stats.RequestCount)
		assert.WithinDuration(t, time.Now(), stats.LastAccess, time.Minute)
	})

	t.Run("IdempotentWithoutWrites", func(t *testing.T) {
		repo := new(MockAnalyticsRepo)
		svc := NewAnalyticsService(repo, analyticsConfig())

		last := time.Now().Add(-time.Hour)
		repo.On("TopByRequestCount", ctx).Return(&domain.AnalyticsRecord{
			Endpoint:     "/joke",
			RequestCount: 200,
			LastAccess:   &last,
		}, nil)

		first, err := svc.GetAPIUsageStats(ctx)
		assert.NoError(t, err)
		second, err := svc.GetAPIUsageStats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestAnalyticsService_GetPerformanceMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("AggregatesWindow", func(t *testing.T) {
		repo := new(MockAnalyticsRepo)
		svc := NewAnalyticsService(repo, analyticsConfig())

		records := []domain.AnalyticsRecord{
			{Endpoint: "/joke", RequestCount: 100},
			{Endpoint: "/joke", RequestCount: 50},
			{Endpoint: "/auth/login", RequestCount: 60},
		}
		repo.On("ListCreatedSince", ctx, mock.AnythingOfType("time.Time")).Return(records, nil)

		metrics, err := svc.GetPerformanceMetrics(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(210), metrics.RequestCount)
		assert.Equal(t, "/joke", metrics.MostAccessedEndpoint)
		assert.Equal(t, 120.0, metrics.AverageResponseTime)
		assert.Equal(t, 0.02, metrics.ErrorRate)
		assert.Contains(t, metrics.Timeframe, " to ")
	})

	t.Run("TieBreaksLexicographically", func(t *testing.T) {
		repo := new(MockAnalyticsRepo)
		svc := NewAnalyticsService(repo, analyticsConfig())

		records := []domain.AnalyticsRecord{
			{Endpoint: "/zebra", RequestCount: 40},
			{Endpoint: "/alpha", RequestCount: 40},
		}
		repo.On("ListCreatedSince", ctx, mock.AnythingOfType("time.Time")).Return(records, nil)

		metrics, err := svc.GetPerformanceMetrics(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "/alpha", metrics.MostAccessedEndpoint)
	})

	t.Run("EmptyWindow", func(t *testing.T) {
		repo := new(MockAnalyticsRepo)
		svc := NewAnalyticsService(repo, analyticsConfig())

		repo.On("ListCreatedSince", ctx, mock.AnythingOfType("time.Time")).Return([]domain.AnalyticsRecord{}, nil)

		metrics, err := svc.GetPerformanceMetrics(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), metrics.RequestCount)
		assert.Equal(t, "N/A", metrics.MostAccessedEndpoint)
	})
}
