// Package jobs runs scheduled maintenance over all users.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// UserLister enumerates registered users.
type UserLister interface {
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

// Refresher draws a user's daily challenge rotation. It reports false when today's rotation exists.
type Refresher interface {
	RefreshDailyChallenges(ctx context.Context, userID uuid.UUID, count int) (bool, error)
}

// DailyRefresh rotates the daily challenges of every user.
type DailyRefresh struct {
	users UserLister
	games Refresher
	log   *zap.Logger
}

func NewDailyRefresh(users UserLister, games Refresher, log *zap.Logger) *DailyRefresh {
	return &DailyRefresh{users: users, games: games, log: log}
}

// RunStats summarizes one pass.
type RunStats struct {
	Users     int
	Refreshed int
	Failed    int
}

// Run refreshes every user with the service default count. Per-user failures are logged and
// counted; only a failed user listing or a cancelled context aborts the pass.
func (j *DailyRefresh) Run(ctx context.Context) (RunStats, error) {
	ids, err := j.users.ListIDs(ctx)
	if err != nil {
		return RunStats{}, fmt.Errorf("list users: %w", err)
	}
	st := RunStats{Users: len(ids)}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		ok, err := j.games.RefreshDailyChallenges(ctx, id, 0)
		if err != nil {
			st.Failed++
			j.log.Warn("daily refresh failed", zap.String("user_id", id.String()), zap.Error(err))
			continue
		}
		if ok {
			st.Refreshed++
		}
	}
	return st, nil
}

// Scheduler triggers DailyRefresh on a cron schedule evaluated in UTC.
type Scheduler struct {
	cron *cron.Cron
	job  *DailyRefresh
	log  *zap.Logger
}

// NewScheduler validates spec (standard five-field syntax) and registers the job.
// Overlapping runs are skipped.
func NewScheduler(ctx context.Context, spec string, job *DailyRefresh, log *zap.Logger) (*Scheduler, error) {
	cl := cronLogger{log.Sugar()}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	s := &Scheduler{cron: c, job: job, log: log}
	if _, err := c.AddFunc(spec, func() { s.runOnce(ctx) }); err != nil {
		return nil, fmt.Errorf("cron spec %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) runOnce(ctx context.Context) {
	start := time.Now()
	st, err := s.job.Run(ctx)
	if err != nil {
		s.log.Error("daily refresh aborted", zap.Error(err))
		return
	}
	s.log.Info("daily refresh done",
		zap.Int("users", st.Users),
		zap.Int("refreshed", st.Refreshed),
		zap.Int("failed", st.Failed),
		zap.Duration("dur", time.Since(start)),
	)
}

// Run starts the scheduler and blocks until ctx is done, then waits for a running job.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	return nil
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct{ s *zap.SugaredLogger }

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
