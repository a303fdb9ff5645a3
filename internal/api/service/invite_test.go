package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/wanderlist/wanderlist/internal/api/domain"
	"github.com/wanderlist/wanderlist/pkg/cryptox"
	"github.com/wanderlist/wanderlist/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestCreateInvite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	m := seedMap(t, s, "alice", "Tokyo Trip")

	svc := InviteService{Store: s}

	t.Run("owner mints an editor invite", func(t *testing.T) {
		inv, err := svc.CreateInvite(ctx, m.ID, "alice", domain.RoleEditor, intPtr(7), int64Ptr(5))
		require.NoError(t, err)
		require.NotEmpty(t, inv.Token)
		require.Equal(t, domain.RoleEditor, inv.Role)
		require.Equal(t, int64(0), inv.UseCount)
		require.NotNil(t, inv.ExpiresAt)
		require.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), *inv.ExpiresAt, time.Minute)
		require.Equal(t, int64(5), *inv.MaxUses)
	})

	t.Run("role defaults to editor", func(t *testing.T) {
		inv, err := svc.CreateInvite(ctx, m.ID, "alice", "", nil, nil)
		require.NoError(t, err)
		require.Equal(t, domain.RoleEditor, inv.Role)
		require.Nil(t, inv.ExpiresAt)
		require.Nil(t, inv.MaxUses)
	})

	t.Run("owner role is not grantable", func(t *testing.T) {
		_, err := svc.CreateInvite(ctx, m.ID, "alice", domain.RoleOwner, nil, nil)
		require.ErrorIs(t, err, ErrInvalidInviteRequest)
	})

	t.Run("rejects non-positive expiry and uses", func(t *testing.T) {
		_, err := svc.CreateInvite(ctx, m.ID, "alice", domain.RoleEditor, intPtr(0), nil)
		require.ErrorIs(t, err, ErrInvalidInviteRequest)

		_, err = svc.CreateInvite(ctx, m.ID, "alice", domain.RoleEditor, nil, int64Ptr(0))
		require.ErrorIs(t, err, ErrInvalidInviteRequest)
	})

	t.Run("editors and strangers may not mint", func(t *testing.T) {
		addMember(t, s, m.ID, "bob", domain.RoleEditor)

		_, err := svc.CreateInvite(ctx, m.ID, "bob", domain.RoleEditor, nil, nil)
		require.ErrorIs(t, err, ErrNotMapOwner)

		_, err = svc.CreateInvite(ctx, m.ID, "mallory", domain.RoleEditor, nil, nil)
		require.ErrorIs(t, err, ErrNotMapOwner)
	})
}

func TestListInvites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	m := seedMap(t, s, "alice", "Tokyo Trip")
	addMember(t, s, m.ID, "bob", domain.RoleEditor)
	seedProfile(t, s, "carol", domain.EntitlementFree)

	svc := InviteService{Store: s}

	_, err := svc.CreateInvite(ctx, m.ID, "alice", domain.RoleEditor, nil, nil)
	require.NoError(t, err)

	// An exhausted invite stays listed.
	used, err := svc.CreateInvite(ctx, m.ID, "alice", domain.RoleEditor, nil, int64Ptr(1))
	require.NoError(t, err)
	_, err = svc.RedeemInvite(ctx, used.Token, "carol")
	require.NoError(t, err)

	t.Run("owner sees every invite including inert ones", func(t *testing.T) {
		invites, err := svc.ListInvites(ctx, m.ID, "alice")
		require.NoError(t, err)
		require.Len(t, invites, 2)
	})

	t.Run("editors may not list", func(t *testing.T) {
		_, err := svc.ListInvites(ctx, m.ID, "bob")
		require.ErrorIs(t, err, ErrNotMapOwner)
	})
}

func TestRedeemInvite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	m := seedMap(t, s, "alice", "Tokyo Trip")
	for _, id := range []string{"bob", "dave", "erin", "frank", "grace"} {
		seedProfile(t, s, id, domain.EntitlementFree)
	}

	svc := InviteService{Store: s}

	t.Run("grants membership with the invite role", func(t *testing.T) {
		inv, err := svc.CreateInvite(ctx, m.ID, "alice", domain.RoleEditor, nil, nil)
		require.NoError(t, err)

		result, err := svc.RedeemInvite(ctx, inv.Token, "bob")
		require.NoError(t, err)
		require.Equal(t, m.ID, result.MapID)
		require.Equal(t, "Tokyo Trip", result.MapName)
		require.Equal(t, domain.RoleEditor, result.Role)

		membership, err := s.Memberships().GetMembership(ctx, m.ID, "bob")
		require.NoError(t, err)
		require.Equal(t, domain.RoleEditor, membership.Role)

		stored, err := s.Invites().GetInviteByToken(ctx, inv.Token)
		require.NoError(t, err)
		require.Equal(t, int64(1), stored.UseCount)
	})

	t.Run("rejects blank and unknown tokens", func(t *testing.T) {
		_, err := svc.RedeemInvite(ctx, "   ", "bob")
		require.ErrorIs(t, err, ErrInvalidInviteRequest)

		_, err = svc.RedeemInvite(ctx, "no-such-token", "bob")
		require.ErrorIs(t, err, ErrInviteNotFound)
	})

	t.Run("expired invite is rejected before capacity", func(t *testing.T) {
		past := time.Now().UTC().Add(-time.Hour)
		inv := domain.Invite{
			ID:        idx.New().String(),
			MapID:     m.ID,
			Token:     cryptox.MustGenerateToken(cryptox.TokenSize128),
			CreatedBy: "alice",
			Role:      domain.RoleEditor,
			ExpiresAt: &past,
		}
		require.NoError(t, s.Invites().CreateInvite(ctx, inv))

		_, err := svc.RedeemInvite(ctx, inv.Token, "dave")
		require.ErrorIs(t, err, ErrInviteExpired)

		_, err = s.Memberships().GetMembership(ctx, m.ID, "dave")
		require.Error(t, err)
	})

	t.Run("exhausted invite is rejected without side effects", func(t *testing.T) {
		inv, err := svc.CreateInvite(ctx, m.ID, "alice", domain.RoleEditor, nil, int64Ptr(1))
		require.NoError(t, err)

		_, err = svc.RedeemInvite(ctx, inv.Token, "erin")
		require.NoError(t, err)

		_, err = svc.RedeemInvite(ctx, inv.Token, "frank")
		require.ErrorIs(t, err, ErrInviteMaxUses)

		_, err = s.Memberships().GetMembership(ctx, m.ID, "frank")
		require.Error(t, err)

		stored, err := s.Invites().GetInviteByToken(ctx, inv.Token)
		require.NoError(t, err)
		require.Equal(t, int64(1), stored.UseCount)
	})

	t.Run("existing member does not burn a use", func(t *testing.T) {
		inv, err := svc.CreateInvite(ctx, m.ID, "alice", domain.RoleEditor, nil, int64Ptr(5))
		require.NoError(t, err)

		_, err = svc.RedeemInvite(ctx, inv.Token, "grace")
		require.NoError(t, err)

		// Redeeming again, same user, same token.
		_, err = svc.RedeemInvite(ctx, inv.Token, "grace")
		require.ErrorIs(t, err, ErrAlreadyMember)

		// The map owner redeeming their own invite is also a member.
		_, err = svc.RedeemInvite(ctx, inv.Token, "alice")
		require.ErrorIs(t, err, ErrAlreadyMember)

		stored, err := s.Invites().GetInviteByToken(ctx, inv.Token)
		require.NoError(t, err)
		require.Equal(t, int64(1), stored.UseCount)
	})

	t.Run("unlimited invite keeps counting", func(t *testing.T) {
		inv, err := svc.CreateInvite(ctx, m.ID, "alice", domain.RoleEditor, nil, nil)
		require.NoError(t, err)

		for i := 0; i < 4; i++ {
			guest := fmt.Sprintf("guest-%d", i)
			seedProfile(t, s, guest, domain.EntitlementFree)
			_, err := svc.RedeemInvite(ctx, inv.Token, guest)
			require.NoError(t, err)
		}

		stored, err := s.Invites().GetInviteByToken(ctx, inv.Token)
		require.NoError(t, err)
		require.Equal(t, int64(4), stored.UseCount)
	})
}

// TestRedeemInviteConcurrent races many distinct users at one capped invite
// and checks that exactly max_uses of them get in.
func TestRedeemInviteConcurrent(t *testing.T) {
	t.Parallel()

	const (
		maxUses    = 3
		contenders = 12
	)

	ctx := context.Background()
	s := newTestStore(t)
	m := seedMap(t, s, "alice", "Tokyo Trip")
	for i := 0; i < contenders; i++ {
		seedProfile(t, s, fmt.Sprintf("user-%d", i), domain.EntitlementFree)
	}

	svc := InviteService{Store: s}
	inv, err := svc.CreateInvite(ctx, m.ID, "alice", domain.RoleEditor, nil, int64Ptr(maxUses))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.RedeemInvite(ctx, inv.Token, fmt.Sprintf("user-%d", i))
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		default:
			require.ErrorIs(t, err, ErrInviteMaxUses)
			lost++
		}
	}
	require.Equal(t, maxUses, won)
	require.Equal(t, contenders-maxUses, lost)

	stored, err := s.Invites().GetInviteByToken(ctx, inv.Token)
	require.NoError(t, err)
	require.Equal(t, int64(maxUses), stored.UseCount)

	// Owner plus exactly maxUses invitees.
	members, err := s.Memberships().ListMapMemberships(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, members, maxUses+1)
}
