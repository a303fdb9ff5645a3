package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/wanderlist/wanderlist/internal/api/store"
)

// HousekeepingService periodically repairs dangling active-map pointers
// left behind by map deletion and leave-map. Readers already tolerate and
// patch dangling pointers; this just bounds how long they linger.
//
// Inert invites are deliberately not pruned here: expired and exhausted
// invites stay listed for audit.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service with the given
// interval. Non-positive intervals default to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts down the worker, blocking until any in-progress pass finishes.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run once immediately on startup.
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) cleanup() {
	ctx := context.Background()

	repaired, err := s.Store.Profiles().ClearDanglingActiveMaps(ctx)
	if err != nil {
		s.Logger.Error("failed to clear dangling active-map pointers", "error", err)
		return
	}
	if repaired > 0 {
		s.Logger.Info("cleared dangling active-map pointers", "repaired", repaired)
	}
}
