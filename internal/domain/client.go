package domain

import "time"

// Client represents a salon client
type Client struct {
	ID        int64
	Name      string
	Phone     string
	Email     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
