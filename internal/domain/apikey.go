package domain

import "time"

type APIKey struct {
	Key         string    `json:"key"`
	OwnerUserID string    `json:"owner_user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// AccessLog is one request event scoped to an API key. Rows are append-only;
// the rate limit reporter counts them and the rollup job aggregates them.
type AccessLog struct {
	ID         int64     `json:"id"`
	APIKey     string    `json:"api_key"`
	Endpoint   string    `json:"endpoint"`
	AccessTime time.Time `json:"access_time"`
}
