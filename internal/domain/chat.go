package domain

import "time"

const (
	// DefaultTimeout is the lifetime, in seconds, of a chat created without one.
	DefaultTimeout = 60
	// MaxTimeout caps the lifetime at ten years so expiration arithmetic in
	// milliseconds and time.Duration cannot overflow.
	MaxTimeout = 10 * 365 * 24 * 60 * 60
)

type Chat struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Text           string `json:"text"`
	Timeout        int64  `json:"timeout"`
	ExpirationDate int64  `json:"expiration_date"` // milliseconds since epoch
}

func (c Chat) ExpiresAt() time.Time {
	return time.UnixMilli(c.ExpirationDate)
}

func (c Chat) IsExpired(now time.Time) bool {
	return c.ExpirationDate <= now.UnixMilli()
}
