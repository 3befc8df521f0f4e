package domain

import "time"

// DefaultLanguage is assumed for submissions that do not name one.
const DefaultLanguage = "en"

type Joke struct {
	ID              string    `json:"id"`
	Setup           string    `json:"setup"`
	Punchline       string    `json:"punchline"`
	Language        string    `json:"language"`
	Approved        bool      `json:"approved"`
	CreatedByUserID string    `json:"created_by_user_id"`
	CreatedAt       time.Time `json:"created_at"`
}

type ModerationStatus string

const (
	ModerationStatusPending  ModerationStatus = "PENDING"
	ModerationStatusApproved ModerationStatus = "APPROVED"
	ModerationStatusRejected ModerationStatus = "REJECTED"
)

// ModerationEntry tracks the review workflow of a submitted joke, separate
// from the joke's own approved flag.
type ModerationEntry struct {
	ID        int64            `json:"id"`
	JokeID    string           `json:"joke_id"`
	Status    ModerationStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
