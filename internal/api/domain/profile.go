package domain

import "time"

// Entitlement is the user's subscription tier. The free tier caps owned
// maps at creation time; redemption is never entitlement-gated.
type Entitlement string

const (
	EntitlementFree    Entitlement = "free"
	EntitlementPremium Entitlement = "premium"
)

// Profile is the per-user record. The profile id is the identity provider's
// subject for the user.
//
// ActiveMapID is a weak reference: nil means "aggregate view across all
// maps", and a non-nil value is not guaranteed to point at a map the user
// still belongs to. Readers must validate it and fall back (see
// ProfileService.ResolveActiveMap).
type Profile struct {
	ID          string
	DisplayName string
	Entitlement Entitlement
	ActiveMapID *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
