package domain

import "time"

// Service represents a salon service from the catalog
type Service struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasValidDuration returns true if the service carries a bookable duration
func (s *Service) HasValidDuration() bool {
	return s.DurationMinutes > 0
}
