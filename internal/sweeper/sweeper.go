// Package sweeper runs the periodic expired-session cleanup, additive
// scope beyond the per-login DeleteExpired call. Scheduled with
// robfig/cron/v3, adopted from the
// streamspace-dev-streamspace example's go.mod as the one cron library
// anywhere in the retrieved corpus (see DESIGN.md).
package sweeper

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/VinukaThejana/auth-rs/internal/clock"
)

// SessionDeleter is the subset of sessionstore.Store the sweeper needs.
type SessionDeleter interface {
	DeleteAllExpired(ctx context.Context, now int64) (int64, error)
}

// Sweeper periodically purges expired session rows.
type Sweeper struct {
	cron  *cron.Cron
	store SessionDeleter
	clock clock.Clock
}

// New builds a Sweeper on the given cron spec (e.g. "@hourly").
func New(spec string, store SessionDeleter, clk clock.Clock) (*Sweeper, error) {
	s := &Sweeper{cron: cron.New(), store: store, clock: clk}
	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins the cron schedule in the background.
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop waits for any in-flight sweep to finish and stops the schedule.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Sweeper) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.store.DeleteAllExpired(ctx, s.clock.Now())
	if err != nil {
		logx.Errorf("[sweeper] delete expired sessions failed: %v", err)
		return
	}
	logx.Infof("[sweeper] deleted %d expired sessions", n)
}
