package domain

import (
	"time"
)

// DefaultRecordTTL is how long a short URL record lives in the durable
// store before the background expiry purge removes it.
const DefaultRecordTTL = 10 * 24 * time.Hour

// ShortURL represents a shortened URL record in the durable store
type ShortURL struct {
	ID        int64     `json:"id"`
	LongURL   string    `json:"long_url"`
	ShortCode string    `json:"short_code"`
	Clicks    int64     `json:"clicks"`
	UserID    string    `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ShortenRequest represents the request to create a short URL
type ShortenRequest struct {
	LongURL string `json:"longUrl"`
}

// ShortenResponse represents the response when creating a short URL
type ShortenResponse struct {
	Message  string `json:"message"`
	ShortURL string `json:"shortUrl"`
}

// ClicksResponse represents a click-count report
type ClicksResponse struct {
	StatusCode  int    `json:"statusCode"`
	LongURL     string `json:"longUrl,omitempty"`
	ShortCode   string `json:"shortCode,omitempty"`
	TotalClicks int64  `json:"totalClicks"`
}
