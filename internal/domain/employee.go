package domain

import "time"

// Employee represents a staff member of the salon
type Employee struct {
	ID        int64
	Name      string
	Position  *string
	Phone     *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
