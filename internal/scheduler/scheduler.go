// Package scheduler runs the periodic portfolio price refresh.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"depotlens/internal/logger"
	"depotlens/internal/services"
)

// RefreshTimeout bounds one scheduled price refresh.
const RefreshTimeout = 2 * time.Minute

// Scheduler owns the cron runner and its jobs.
type Scheduler struct {
	cron    *cron.Cron
	market  services.MarketServicer
	audit   services.AuditServicer
	ctx     context.Context
	log     *zap.SugaredLogger
	timeout time.Duration
}

// New creates a Scheduler. Jobs stop receiving a live context once ctx is done.
func New(ctx context.Context, market services.MarketServicer, audit services.AuditServicer) *Scheduler {
	log := logger.Named("scheduler")
	cl := cronLogger{log: log}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		market:  market,
		audit:   audit,
		ctx:     ctx,
		log:     log,
		timeout: RefreshTimeout,
	}
}

// RegisterPriceRefresh schedules the price refresh on a standard five field
// cron spec or a descriptor such as "@every 1h".
func (s *Scheduler) RegisterPriceRefresh(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.RefreshPrices); err != nil {
		return fmt.Errorf("register price refresh %q: %w", spec, err)
	}
	s.log.Infow("price refresh scheduled", "spec", spec)
	return nil
}

// Start starts the cron runner in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started")
}

// Stop stops the runner and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

// RefreshPrices fetches current quotes for every portfolio entry.
func (s *Scheduler) RefreshPrices() {
	if s.ctx.Err() != nil {
		return
	}
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	start := time.Now()
	result, err := s.market.UpdatePrices(ctx)
	if err != nil {
		s.log.Errorw("scheduled price refresh failed", "error", err)
		return
	}

	s.log.Infow("scheduled price refresh finished",
		"updated", result.UpdatedCount,
		"total", result.TotalEntries,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	s.audit.Log(services.ActorScheduler, "UPDATE_PRICES", "portfolio_entry", "", "",
		map[string]interface{}{"updated_count": result.UpdatedCount, "total_entries": result.TotalEntries})
}

// cronLogger routes cron's own messages to zap.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
