package http

import (
	"net/http"
	"time"

	"joke-api/internal/service"
)

type UsageStatsResponse struct {
	Endpoint     string    `json:"endpoint"`
	RequestCount int32     `json:"request_count"`
	LastAccess   time.Time `json:"last_access"`
}

type PerformanceMetricsResponse struct {
	AverageResponseTime  float64 `json:"average_response_time"`
	RequestCount         int64   `json:"request_count"`
	ErrorRate            float64 `json:"error_rate"`
	MostAccessedEndpoint string  `json:"most_accessed_endpoint"`
	Timeframe            string  `json:"timeframe"`
}

type AnalyticsHandler struct {
	analytics service.AnalyticsService
}

func NewAnalyticsHandler(analytics service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) GetUsageStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analytics.GetAPIUsageStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, UsageStatsResponse{
		Endpoint:     stats.Endpoint,
		RequestCount: stats.RequestCount,
		LastAccess:   stats.LastAccess,
	})
}

func (h *AnalyticsHandler) GetPerformanceMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.analytics.GetPerformanceMetrics(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, PerformanceMetricsResponse{
		AverageResponseTime:  metrics.AverageResponseTime,
		RequestCount:         metrics.RequestCount,
		ErrorRate:            metrics.ErrorRate,
		MostAccessedEndpoint: metrics.MostAccessedEndpoint,
		Timeframe:            metrics.Timeframe,
	})
}
