package domain

import "time"

// Invite is a capability to join one map with a fixed role. Rows are never
// mutated after creation except for UseCount, which only ever increases by
// exactly 1 per successful redemption. Expired or exhausted invites become
// inert but are retained for listing and audit.
type Invite struct {
	ID        string
	MapID     string
	Token     string // opaque, unguessable, unique across all invites
	CreatedBy string
	Role      Role
	ExpiresAt *time.Time // nil = never expires
	MaxUses   *int64     // nil = unlimited
	UseCount  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the invite's expiry, if set, has passed.
func (i Invite) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && i.ExpiresAt.Before(now)
}

// Exhausted reports whether the invite's use cap, if set, has been reached.
func (i Invite) Exhausted() bool {
	return i.MaxUses != nil && i.UseCount >= *i.MaxUses
}
