package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"joke-api/internal/config"
	"joke-api/internal/repository"
)

type rateLimitService struct {
	apiKeyRepo    repository.APIKeyRepository
	accessLogRepo repository.AccessLogRepository
	cfg           config.RateLimitConfig
}

// NewRateLimitService builds the advisory quota reporter. It never rejects
// the request that triggers the check.
func NewRateLimitService(apiKeyRepo repository.APIKeyRepository, accessLogRepo repository.AccessLogRepository, cfg config.RateLimitConfig) RateLimitService {
	return &rateLimitService{
		apiKeyRepo:    apiKeyRepo,
		accessLogRepo: accessLogRepo,
		cfg:           cfg,
	}
}

func (s *rateLimitService) Check(ctx context.Context, apiKey string) (*RateLimitStatus, error) {
	if _, err := s.apiKeyRepo.GetByKey(ctx, apiKey); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// unknown key reports an empty quota rather than an error
			return &RateLimitStatus{
				RemainingRequests: 0,
				LimitWindowSecs:   s.cfg.WindowSeconds,
				UsedRequests:      0,
			}, nil
		}
		return nil, err
	}

	since := time.Now().Add(-time.Duration(s.cfg.WindowSeconds) * time.Second)
	used, err := s.accessLogRepo.CountForKeySince(ctx, apiKey, since)
	if err != nil {
		return nil, err
	}

	// remaining may go negative; callers read that as overage
	return &RateLimitStatus{
		RemainingRequests: int64(s.cfg.RequestsPerWindow) - used,
		LimitWindowSecs:   s.cfg.WindowSeconds,
		UsedRequests:      used,
	}, nil
}
