package domain

// Role is a user's relationship to a map. The set is closed: owners manage
// the map and its invites, editors contribute places.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
)

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleEditor
}
