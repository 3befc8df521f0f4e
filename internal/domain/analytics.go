package domain

import "time"

// AnalyticsRecord is one pre-aggregated per-endpoint usage observation.
// Written by the rollup job, read-only for the reporting endpoints.
type AnalyticsRecord struct {
	ID           int64      `json:"id"`
	Endpoint     string     `json:"endpoint"`
	RequestCount int32      `json:"request_count"`
	LastAccess   *time.Time `json:"last_access"`
	CreatedAt    time.Time  `json:"created_at"`
}

// EndpointUsage is a per-endpoint aggregate over raw access logs, produced
// for the rollup job.
type EndpointUsage struct {
	Endpoint   string    `json:"endpoint"`
	Count      int64     `json:"count"`
	LastAccess time.Time `json:"last_access"`
}
