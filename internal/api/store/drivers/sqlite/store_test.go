package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/wanderlist/wanderlist/internal/api/domain"
	"github.com/wanderlist/wanderlist/internal/api/store"
	"github.com/wanderlist/wanderlist/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") +
		"?_txlock=immediate&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_time_format=sqlite"

	s, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedMapWithOwner(t *testing.T, s *Store, mapID, ownerID string) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.Profiles().CreateProfile(ctx, domain.Profile{
		ID: ownerID, DisplayName: ownerID, Entitlement: domain.EntitlementFree,
	}))
	require.NoError(t, s.Maps().CreateMap(ctx, domain.Map{
		ID: mapID, Name: "Test Map", CreatedBy: ownerID,
	}))
	require.NoError(t, s.Memberships().CreateMembership(ctx, domain.Membership{
		ID: idx.New().String(), MapID: mapID, UserID: ownerID,
		Role: domain.RoleOwner, JoinedAt: time.Now().UTC(),
	}))
}

func TestMembershipUniqueness(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	seedMapWithOwner(t, s, "map-1", "alice")

	err := s.Memberships().CreateMembership(ctx, domain.Membership{
		ID: idx.New().String(), MapID: "map-1", UserID: "alice",
		Role: domain.RoleEditor, JoinedAt: time.Now().UTC(),
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestInviteTokenUniqueness(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	seedMapWithOwner(t, s, "map-1", "alice")

	inv := domain.Invite{
		ID: idx.New().String(), MapID: "map-1", Token: "tok-1",
		CreatedBy: "alice", Role: domain.RoleEditor,
	}
	require.NoError(t, s.Invites().CreateInvite(ctx, inv))

	dup := inv
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.Invites().CreateInvite(ctx, dup), store.ErrAlreadyExists)
}

func TestConsumeUse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	seedMapWithOwner(t, s, "map-1", "alice")

	t.Run("guarded increment stops at max_uses", func(t *testing.T) {
		two := int64(2)
		inv := domain.Invite{
			ID: idx.New().String(), MapID: "map-1", Token: "tok-capped",
			CreatedBy: "alice", Role: domain.RoleEditor, MaxUses: &two,
		}
		require.NoError(t, s.Invites().CreateInvite(ctx, inv))

		require.NoError(t, s.Invites().ConsumeUse(ctx, inv.ID))
		require.NoError(t, s.Invites().ConsumeUse(ctx, inv.ID))
		require.ErrorIs(t, s.Invites().ConsumeUse(ctx, inv.ID), store.ErrExhausted)

		got, err := s.Invites().GetInviteByToken(ctx, "tok-capped")
		require.NoError(t, err)
		require.Equal(t, int64(2), got.UseCount)
	})

	t.Run("nil max_uses never exhausts", func(t *testing.T) {
		inv := domain.Invite{
			ID: idx.New().String(), MapID: "map-1", Token: "tok-open",
			CreatedBy: "alice", Role: domain.RoleEditor,
		}
		require.NoError(t, s.Invites().CreateInvite(ctx, inv))

		for i := 0; i < 5; i++ {
			require.NoError(t, s.Invites().ConsumeUse(ctx, inv.ID))
		}
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	seedMapWithOwner(t, s, "map-1", "alice")

	one := int64(1)
	inv := domain.Invite{
		ID: idx.New().String(), MapID: "map-1", Token: "tok-1",
		CreatedBy: "alice", Role: domain.RoleEditor, MaxUses: &one,
	}
	require.NoError(t, s.Invites().CreateInvite(ctx, inv))
	require.NoError(t, s.Invites().ConsumeUse(ctx, inv.ID))

	require.NoError(t, s.Profiles().CreateProfile(ctx, domain.Profile{
		ID: "bob", DisplayName: "bob", Entitlement: domain.EntitlementFree,
	}))

	// Membership insert succeeds inside the tx, then the exhausted invite
	// aborts it; the membership must not survive.
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Memberships().CreateMembership(ctx, domain.Membership{
			ID: idx.New().String(), MapID: "map-1", UserID: "bob",
			Role: domain.RoleEditor, JoinedAt: time.Now().UTC(),
		}); err != nil {
			return err
		}
		return tx.Invites().ConsumeUse(ctx, inv.ID)
	})
	require.ErrorIs(t, err, store.ErrExhausted)

	_, err = s.Memberships().GetMembership(ctx, "map-1", "bob")
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err := s.Invites().GetInviteByToken(ctx, "tok-1")
	require.NoError(t, err)
	require.Equal(t, int64(1), got.UseCount)
}

func TestDeleteMapCascades(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	seedMapWithOwner(t, s, "map-1", "alice")

	inv := domain.Invite{
		ID: idx.New().String(), MapID: "map-1", Token: "tok-1",
		CreatedBy: "alice", Role: domain.RoleEditor,
	}
	require.NoError(t, s.Invites().CreateInvite(ctx, inv))

	require.NoError(t, s.Maps().DeleteMap(ctx, "map-1"))

	_, err := s.Memberships().GetMembership(ctx, "map-1", "alice")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Invites().GetInviteByToken(ctx, "tok-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestClearDanglingActiveMaps(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	seedMapWithOwner(t, s, "map-1", "alice")
	require.NoError(t, s.Profiles().UpdateActiveMap(ctx, "alice", strPtr("map-1")))

	seedMapWithOwner(t, s, "map-2", "bob")
	require.NoError(t, s.Profiles().UpdateActiveMap(ctx, "bob", strPtr("map-2")))

	// Alice's map vanishes; her pointer is now dangling, bob's is fine.
	require.NoError(t, s.Maps().DeleteMap(ctx, "map-1"))

	repaired, err := s.Profiles().ClearDanglingActiveMaps(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), repaired)

	alice, err := s.Profiles().GetProfile(ctx, "alice")
	require.NoError(t, err)
	require.Nil(t, alice.ActiveMapID)

	bob, err := s.Profiles().GetProfile(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, bob.ActiveMapID)
	require.Equal(t, "map-2", *bob.ActiveMapID)
}

func strPtr(s string) *string { return &s }
