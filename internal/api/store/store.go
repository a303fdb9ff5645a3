package store

import (
	"context"
	"errors"

	"github.com/wanderlist/wanderlist/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrExhausted is returned by Invites.ConsumeUse when the guarded
	// increment finds no remaining capacity. It is the store-level signal
	// that a concurrent redemption won the last slot.
	ErrExhausted = errors.New("store: no remaining uses")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable, and Tx-scoped stores so multi-row operations like
// redemption commit or roll back as one unit.
type Store interface {
	Profiles() Profiles
	Maps() Maps
	Memberships() Memberships
	Invites() Invites

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It exposes the same repos plus
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Profiles interface {
	// GetProfile returns a profile by user id.
	GetProfile(ctx context.Context, id string) (domain.Profile, error)

	// CreateProfile inserts a new profile row (id is the identity subject).
	CreateProfile(ctx context.Context, p domain.Profile) error

	// UpdateActiveMap overwrites the active-map pointer. mapID nil clears
	// it back to the aggregate view. No membership validation here; the
	// pointer is a weak reference by design.
	UpdateActiveMap(ctx context.Context, userID string, mapID *string) error

	// ClearDanglingActiveMaps nulls out pointers whose target map no longer
	// exists or whose user no longer belongs to it. Returns rows repaired.
	ClearDanglingActiveMaps(ctx context.Context) (int64, error)
}

type Maps interface {
	// GetMapByID returns a map by id.
	GetMapByID(ctx context.Context, id string) (domain.Map, error)

	// CreateMap inserts a new map (id is provided by the app via ULID).
	CreateMap(ctx context.Context, m domain.Map) error

	// UpdateMapName mutates the name and bumps updated_at.
	UpdateMapName(ctx context.Context, mapID string, name string) error

	// DeleteMap cascades to memberships and invites (per schema).
	DeleteMap(ctx context.Context, mapID string) error
}

type Memberships interface {
	// CreateMembership inserts a membership. Returns ErrAlreadyExists when
	// a row for the same (map, user) pair is present.
	CreateMembership(ctx context.Context, m domain.Membership) error

	// GetMembership returns the membership for a (map, user) pair.
	GetMembership(ctx context.Context, mapID, userID string) (domain.Membership, error)

	// DeleteMembership removes a (map, user) pair. Last-owner protection
	// lives in the service layer, not here.
	DeleteMembership(ctx context.Context, mapID, userID string) error

	// ListUserMemberships returns all memberships for a user, oldest first.
	ListUserMemberships(ctx context.Context, userID string) ([]domain.Membership, error)

	// ListMapMemberships returns all memberships for a map, oldest first.
	ListMapMemberships(ctx context.Context, mapID string) ([]domain.Membership, error)

	// CountMapOwners returns how many owner rows the map has.
	CountMapOwners(ctx context.Context, mapID string) (int64, error)

	// CountUserOwnedMaps returns how many maps the user owns. Used by the
	// freemium gate at map creation.
	CountUserOwnedMaps(ctx context.Context, userID string) (int64, error)
}

type Invites interface {
	// CreateInvite writes a new invite. The token column is UNIQUE, so a
	// generation collision surfaces as ErrAlreadyExists.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	// GetInviteByToken returns an invite by its opaque token, inert or not.
	GetInviteByToken(ctx context.Context, token string) (domain.Invite, error)

	// ListMapInvites returns all invites for a map, newest first. Inert
	// invites are included; they are retained for audit.
	ListMapInvites(ctx context.Context, mapID string) ([]domain.Invite, error)

	// ConsumeUse increments use_count by exactly 1, guarded by max_uses.
	// The UPDATE's WHERE clause is the compare-and-swap that keeps
	// use_count <= max_uses under concurrent redemption; when it matches
	// no row because capacity ran out, ErrExhausted is returned and the
	// caller must abort its transaction.
	ConsumeUse(ctx context.Context, inviteID string) error
}
