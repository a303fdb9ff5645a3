package service

import (
	"context"
	"testing"

	"github.com/wanderlist/wanderlist/internal/api/domain"
	"github.com/wanderlist/wanderlist/internal/api/store"
	"github.com/stretchr/testify/require"
)

func TestListMembers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	m := seedMap(t, s, "alice", "Tokyo Trip")
	addMember(t, s, m.ID, "bob", domain.RoleEditor)

	svc := MembershipService{Store: s}

	t.Run("any member may list", func(t *testing.T) {
		members, err := svc.ListMembers(ctx, m.ID, "bob")
		require.NoError(t, err)
		require.Len(t, members, 2)
	})

	t.Run("non-members are denied", func(t *testing.T) {
		_, err := svc.ListMembers(ctx, m.ID, "mallory")
		require.ErrorIs(t, err, ErrNotMember)
	})
}

func TestLeaveMap(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := func(s store.Store) *MembershipService { return &MembershipService{Store: s} }

	t.Run("editor leaves", func(t *testing.T) {
		s := newTestStore(t)
		m := seedMap(t, s, "alice", "Tokyo Trip")
		addMember(t, s, m.ID, "bob", domain.RoleEditor)

		require.NoError(t, svc(s).LeaveMap(ctx, m.ID, "bob"))

		_, err := s.Memberships().GetMembership(ctx, m.ID, "bob")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("sole owner may not leave", func(t *testing.T) {
		s := newTestStore(t)
		m := seedMap(t, s, "alice", "Tokyo Trip")
		addMember(t, s, m.ID, "bob", domain.RoleEditor)

		require.ErrorIs(t, svc(s).LeaveMap(ctx, m.ID, "alice"), ErrLastOwner)

		// Still there.
		_, err := s.Memberships().GetMembership(ctx, m.ID, "alice")
		require.NoError(t, err)
	})

	t.Run("co-owner may leave", func(t *testing.T) {
		s := newTestStore(t)
		m := seedMap(t, s, "alice", "Tokyo Trip")
		addMember(t, s, m.ID, "bob", domain.RoleOwner)

		require.NoError(t, svc(s).LeaveMap(ctx, m.ID, "alice"))

		// Bob is the sole owner now and is pinned.
		require.ErrorIs(t, svc(s).LeaveMap(ctx, m.ID, "bob"), ErrLastOwner)
	})

	t.Run("non-member may not leave", func(t *testing.T) {
		s := newTestStore(t)
		m := seedMap(t, s, "alice", "Tokyo Trip")

		require.ErrorIs(t, svc(s).LeaveMap(ctx, m.ID, "mallory"), ErrNotMember)
	})
}
