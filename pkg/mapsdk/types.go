package mapsdk

import "time"

// ErrorResponse is the wire shape of every API error body.
type ErrorResponse struct {
	// Error is a human-readable description of what went wrong
	Error string `json:"error"`

	// Code is the stable machine-readable rejection code
	Code string `json:"code"`
}

// Stable rejection codes. Clients branch on these, never on the message.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeNotFound       = "NOT_FOUND"
	CodeNotMapOwner    = "NOT_MAP_OWNER"
	CodeNotMember      = "NOT_MEMBER"
	CodeRateLimited    = "RATE_LIMITED"
	CodeServerError    = "SERVER_ERROR"

	CodeInviteNotFound = "INVITE_NOT_FOUND"
	CodeInviteExpired  = "INVITE_EXPIRED"
	CodeInviteMaxUses  = "INVITE_MAX_USES"
	CodeAlreadyMember  = "ALREADY_MEMBER"

	CodeFreemiumLimit = "FREEMIUM_LIMIT_EXCEEDED"
	CodeLastOwner     = "LAST_OWNER"
)

// CreateMapRequest is the body for POST /v1/maps.
type CreateMapRequest struct {
	Name string `json:"name"`
}

// RenameMapRequest is the body for PATCH /v1/maps/{id}.
type RenameMapRequest struct {
	Name string `json:"name"`
}

// MapResponse describes one map the caller can see.
type MapResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Role is the caller's role on the map, present in listings.
	Role string `json:"role,omitempty"`
}

// MapListResponse is the body of GET /v1/maps.
type MapListResponse struct {
	Maps []MapResponse `json:"maps"`
}

// MemberResponse describes one membership row on a map.
type MemberResponse struct {
	UserID   string    `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// MemberListResponse is the body of GET /v1/maps/{id}/members.
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

// CreateInviteRequest is the body for POST /v1/invites.
type CreateInviteRequest struct {
	MapID string `json:"map_id"`

	// Role defaults to "editor"; it is also the only accepted value.
	Role string `json:"role,omitempty"`

	// ExpiresInDays resolves to an absolute expiry server-side; nil = never.
	ExpiresInDays *int `json:"expires_in_days,omitempty"`

	// MaxUses caps redemptions; nil = unlimited.
	MaxUses *int64 `json:"max_uses,omitempty"`
}

// InviteResponse describes a minted invite. Token is the raw shareable
// secret; owners re-share links from listings, so it is returned on list
// calls too.
type InviteResponse struct {
	ID        string     `json:"id"`
	MapID     string     `json:"map_id"`
	Token     string     `json:"token"`
	Role      string     `json:"role"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	MaxUses   *int64     `json:"max_uses,omitempty"`
	UseCount  int64      `json:"use_count"`
	CreatedAt time.Time  `json:"created_at"`
}

// InviteListResponse is the body of GET /v1/maps/{id}/invites.
type InviteListResponse struct {
	Invites []InviteResponse `json:"invites"`
}

// RedeemInviteRequest is the body for POST /v1/invites/redeem.
type RedeemInviteRequest struct {
	Token string `json:"token"`
}

// RedeemInviteResponse is the success body of a redemption: the identity of
// the map the caller just joined.
type RedeemInviteResponse struct {
	MapID   string `json:"map_id"`
	MapName string `json:"map_name"`
	Role    string `json:"role"`
}

// ProfileResponse is the body of GET /v1/profile.
type ProfileResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Entitlement string `json:"entitlement"`

	// ActiveMapID is the raw pointer value, which may be stale.
	ActiveMapID *string `json:"active_map_id,omitempty"`

	// ActiveMap is the resolved, validated active map; nil means the
	// aggregate all-maps view.
	ActiveMap *MapResponse `json:"active_map,omitempty"`
}

// SetActiveMapRequest is the body for PUT /v1/profile/active-map. A null
// map_id scopes the caller back to the aggregate view.
type SetActiveMapRequest struct {
	MapID *string `json:"map_id"`
}

// HealthResponse is the body of the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}
