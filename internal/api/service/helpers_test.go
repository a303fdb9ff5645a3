package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/wanderlist/wanderlist/internal/api/domain"
	"github.com/wanderlist/wanderlist/internal/api/store"
	"github.com/wanderlist/wanderlist/internal/api/store/drivers/sqlite"
	"github.com/wanderlist/wanderlist/pkg/idx"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a file-backed sqlite store in a per-test temp dir.
// A file, not :memory:, because the pool hands each connection its own
// in-memory database and the concurrency tests need shared state.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") +
		"?_txlock=immediate&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_time_format=sqlite"

	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedProfile(t *testing.T, s store.Store, userID string, ent domain.Entitlement) {
	t.Helper()

	err := s.Profiles().CreateProfile(context.Background(), domain.Profile{
		ID:          userID,
		DisplayName: userID,
		Entitlement: ent,
	})
	require.NoError(t, err)
}

// seedMap creates a map owned by ownerID, profile included.
func seedMap(t *testing.T, s store.Store, ownerID, name string) domain.Map {
	t.Helper()

	seedProfile(t, s, ownerID, domain.EntitlementFree)

	maps := MapService{Store: s}
	m, err := maps.CreateMap(context.Background(), ownerID, name)
	require.NoError(t, err)
	return m
}

// addMember inserts a membership row directly, bypassing invites. The
// member gets a profile row first if they don't have one yet; map_members
// carries a foreign key to profiles.
func addMember(t *testing.T, s store.Store, mapID, userID string, role domain.Role) {
	t.Helper()

	err := s.Profiles().CreateProfile(context.Background(), domain.Profile{
		ID:          userID,
		DisplayName: userID,
		Entitlement: domain.EntitlementFree,
	})
	if err != nil && !errors.Is(err, store.ErrAlreadyExists) {
		require.NoError(t, err)
	}

	err = s.Memberships().CreateMembership(context.Background(), domain.Membership{
		ID:       idx.New().String(),
		MapID:    mapID,
		UserID:   userID,
		Role:     role,
		JoinedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
