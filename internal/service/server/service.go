package server

import (
	"context"

	"github.com/oshokin/statebox/internal/config"
	"github.com/oshokin/statebox/internal/domain/counter"
	"github.com/oshokin/statebox/internal/logger"
	"github.com/oshokin/statebox/internal/middleware"
)

// service owns the counter store and the middleware attached to it.
type service struct {
	// store is the counter store served over gRPC.
	store *counter.Store
	// delayer turns increment_async into a delayed increment.
	delayer *middleware.Delayer[counter.State, counter.Action]
	// recorder keeps recent dispatches for the shutdown summary. Nil when disabled.
	recorder *middleware.Recorder[counter.State, counter.Action]
}

// newService builds the counter store described by cfg.
func newService(ctx context.Context, cfg *config.Config) *service {
	// Dispatch logs get their own threshold so they can be silenced separately.
	dispatchLevel, _ := logger.ParseLogLevel(cfg.DispatchLogLevel)
	dispatchCtx := logger.ToContext(ctx, logger.Leveled(logger.FromContext(ctx), dispatchLevel))

	s := &service{
		delayer: middleware.NewDelayer[counter.State](cfg.AsyncDelay, counter.FollowUp),
	}

	chain := []counter.Middleware{
		middleware.Logging[counter.State, counter.Action](dispatchCtx),
	}

	if cfg.RecentActions > 0 {
		s.recorder = middleware.NewRecorder[counter.State, counter.Action](cfg.RecentActions)
		chain = append(chain, s.recorder.Middleware())
	}

	chain = append(chain, s.delayer.Middleware())

	s.store = counter.NewStore(ctx, counter.State{Count: cfg.InitialCount}, chain...)

	logger.InfoKV(ctx, "Counter store ready",
		"initial_count", cfg.InitialCount,
		"async_delay", cfg.AsyncDelay,
		"recent_actions", cfg.RecentActions,
	)

	return s
}

// recentActions returns the names of the recorded actions, oldest first.
func (s *service) recentActions() []string {
	if s.recorder == nil {
		return nil
	}

	entries := s.recorder.Entries()
	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		names = append(names, entry.Action.String())
	}

	return names
}

// close cancels pending delayed actions, then drains and stops the store.
func (s *service) close(ctx context.Context) {
	cancelled := s.delayer.Stop()
	s.store.Close()

	if recent := s.recentActions(); len(recent) > 0 {
		logger.InfoKV(ctx, "Recent actions", "actions", recent)
	}

	logger.InfoKV(ctx, "Counter store closed", "cancelled_follow_ups", cancelled, "final_count", s.store.State().Count)
}
