package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"joke-api/internal/config"
	"joke-api/internal/repository"
)

const timeframeLayout = "2006-01-02 15:04:05"

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	cfg           config.AnalyticsConfig
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, cfg config.AnalyticsConfig) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		cfg:           cfg,
	}
}

func (s *analyticsService) GetAPIUsageStats(ctx context.Context) (*UsageStats, error) {
	rec, err := s.analyticsRepo.TopByRequestCount(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &UsageStats{Endpoint: "N/A", RequestCount: 0, LastAccess: time.Now()}, nil
		}
		return nil, err
	}

	stats := &UsageStats{
		Endpoint:     rec.Endpoint,
		RequestCount: rec.RequestCount,
		LastAccess:   time.Now(),
	}
	if rec.LastAccess != nil {
		stats.LastAccess = *rec.LastAccess
	}
	return stats, nil
}

func (s *analyticsService) GetPerformanceMetrics(ctx context.Context) (*PerformanceMetrics, error) {
	now := time.Now()
	start := now.Add(-time.Duration(s.cfg.UsageWindowHours) * time.Hour)

	records, err := s.analyticsRepo.ListCreatedSince(ctx, start)
	if err != nil {
		return nil, err
	}

	var total int64
	perEndpoint := make(map[string]int64)
	for _, rec := range records {
		total += int64(rec.RequestCount)
		perEndpoint[rec.Endpoint] += int64(rec.RequestCount)
	}

	// lexicographically smallest endpoint wins a tie
	mostAccessed := "N/A"
	var best int64 = -1
	for endpoint, count := range perEndpoint {
		if count > best || (count == best && endpoint < mostAccessed) {
			mostAccessed = endpoint
			best = count
		}
	}

	return &PerformanceMetrics{
		AverageResponseTime:  s.cfg.AverageResponseTimeMs,
		RequestCount:         total,
		ErrorRate:            s.cfg.ErrorRate,
		MostAccessedEndpoint: mostAccessed,
		Timeframe:            fmt.Sprintf("%s to %s", start.Format(timeframeLayout), now.Format(timeframeLayout)),
	}, nil
}
