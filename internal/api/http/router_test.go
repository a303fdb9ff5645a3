package http

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wanderlist/wanderlist/internal/api/service"
	"github.com/wanderlist/wanderlist/internal/api/store/drivers/sqlite"
	"github.com/wanderlist/wanderlist/pkg/jwtx"
	"github.com/wanderlist/wanderlist/pkg/mapsdk"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("router-test-secret")

// newTestServer stands up the full stack on a temp sqlite file and returns
// an SDK client pointed at it.
func newTestServer(t *testing.T) *mapsdk.Client {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") +
		"?_txlock=immediate&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_time_format=sqlite"

	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := NewRouter(jwtx.NewHS256Verifier(testSecret), "test", st, logger)
	router.MapService = &service.MapService{Store: st}
	router.MembershipService = &service.MembershipService{Store: st}
	router.InviteService = &service.InviteService{Store: st}
	router.ProfileService = &service.ProfileService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return mapsdk.NewClient(srv.URL)
}

// signToken mints a bearer token the way the identity provider would.
func signToken(t *testing.T, subject string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    "test-idp",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

func TestInviteFlowEndToEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestServer(t)

	owner := client.Session(signToken(t, "alice"))
	invitee := client.Session(signToken(t, "bob"))

	// Owner creates a map; their profile is bootstrapped on first contact.
	m, err := owner.CreateMap(ctx, "Tokyo Trip")
	require.NoError(t, err)
	require.NotEmpty(t, m.ID)

	// Owner mints an invite and shares it as a deep link.
	maxUses := int64(2)
	inv, err := owner.CreateInvite(ctx, mapsdk.CreateInviteRequest{
		MapID:   m.ID,
		MaxUses: &maxUses,
	})
	require.NoError(t, err)
	require.NotEmpty(t, inv.Token)
	link := mapsdk.BuildInviteLink("wander", inv.Token)

	// Invitee opens the link; the coordinator redeems and activates.
	outcome := mapsdk.NewCoordinator().Open(ctx, invitee, link)
	require.Equal(t, mapsdk.RedemptionSuccess, outcome.State)
	require.Equal(t, m.ID, outcome.Join.MapID)
	require.Equal(t, "Tokyo Trip", outcome.Join.MapName)
	require.Equal(t, "editor", outcome.Join.Role)

	profile, err := invitee.GetProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile.ActiveMap)
	require.Equal(t, m.ID, profile.ActiveMap.ID)

	// A second redemption by the same user is a deterministic conflict.
	_, err = invitee.RedeemInvite(ctx, inv.Token)
	require.True(t, mapsdk.HasCode(err, mapsdk.CodeAlreadyMember))

	// Both members show up in the listing, visible to the invitee too.
	members, err := invitee.ListMembers(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
}

func TestRedeemErrorStatuses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestServer(t)
	owner := client.Session(signToken(t, "alice"))

	m, err := owner.CreateMap(ctx, "Tokyo Trip")
	require.NoError(t, err)

	t.Run("unknown token is 404 INVITE_NOT_FOUND", func(t *testing.T) {
		user := client.Session(signToken(t, "u1"))
		_, err := user.RedeemInvite(ctx, "no-such-token")

		var apiErr *mapsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 404, apiErr.StatusCode)
		require.Equal(t, mapsdk.CodeInviteNotFound, apiErr.Code)
	})

	t.Run("exhausted invite is 410 INVITE_MAX_USES", func(t *testing.T) {
		one := int64(1)
		inv, err := owner.CreateInvite(ctx, mapsdk.CreateInviteRequest{MapID: m.ID, MaxUses: &one})
		require.NoError(t, err)

		_, err = client.Session(signToken(t, "u2")).RedeemInvite(ctx, inv.Token)
		require.NoError(t, err)

		_, err = client.Session(signToken(t, "u3")).RedeemInvite(ctx, inv.Token)
		var apiErr *mapsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 410, apiErr.StatusCode)
		require.Equal(t, mapsdk.CodeInviteMaxUses, apiErr.Code)
	})

	t.Run("blank token is 400 INVALID_REQUEST", func(t *testing.T) {
		_, err := owner.RedeemInvite(ctx, "  ")
		var apiErr *mapsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 400, apiErr.StatusCode)
		require.Equal(t, mapsdk.CodeInvalidRequest, apiErr.Code)
	})
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestServer(t)

	// No token at all.
	_, err := client.Session("").ListMaps(ctx)
	require.Error(t, err)

	// Garbage token.
	_, err = client.Session("not-a-jwt").ListMaps(ctx)
	require.Error(t, err)

	// Expired token.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	signed, signErr := expired.SignedString(testSecret)
	require.NoError(t, signErr)
	_, err = client.Session(signed).ListMaps(ctx)
	require.Error(t, err)
}

func TestFreemiumAndLeaveFlow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestServer(t)

	owner := client.Session(signToken(t, "alice"))
	member := client.Session(signToken(t, "bob"))

	m, err := owner.CreateMap(ctx, "First")
	require.NoError(t, err)

	// Free tier blocks the second owned map.
	_, err = owner.CreateMap(ctx, "Second")
	require.True(t, mapsdk.HasCode(err, mapsdk.CodeFreemiumLimit))

	// The sole owner cannot leave their own map.
	err = owner.LeaveMap(ctx, m.ID)
	require.True(t, mapsdk.HasCode(err, mapsdk.CodeLastOwner))

	// An editor can join and leave freely.
	inv, err := owner.CreateInvite(ctx, mapsdk.CreateInviteRequest{MapID: m.ID})
	require.NoError(t, err)
	_, err = member.RedeemInvite(ctx, inv.Token)
	require.NoError(t, err)
	require.NoError(t, member.LeaveMap(ctx, m.ID))

	maps, err := member.ListMaps(ctx)
	require.NoError(t, err)
	require.Empty(t, maps)
}
