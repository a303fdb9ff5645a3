package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHousekeepingClearsDanglingPointers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	m := seedMap(t, s, "alice", "Tokyo Trip")

	// Leave the pointer dangling by deleting the map underneath it.
	maps := MapService{Store: s}
	require.NoError(t, maps.DeleteMap(ctx, m.ID, "alice"))

	profile, err := s.Profiles().GetProfile(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, profile.ActiveMapID)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewHousekeepingService(s, logger, time.Hour)
	svc.Start()
	svc.Stop()

	// Start runs a pass immediately; by the time Stop returns it is done.
	profile, err = s.Profiles().GetProfile(ctx, "alice")
	require.NoError(t, err)
	require.Nil(t, profile.ActiveMapID)
}
