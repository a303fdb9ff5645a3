package domain

import "time"

// Map is a user-owned collection of saved places, shared with collaborators
// through invites.
type Map struct {
	ID        string
	Name      string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
