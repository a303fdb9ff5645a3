package domain

import "time"

// Membership binds one user to one map with a role. At most one row exists
// per (map, user) pair, and every map keeps at least one owner; the latter
// is enforced by the leave-map business rule, not by the store.
type Membership struct {
	ID       string
	MapID    string
	UserID   string
	Role     Role
	JoinedAt time.Time
}
