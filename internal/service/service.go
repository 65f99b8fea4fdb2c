// Package service contains application services that orchestrate the per-user stores.
package service

import (
	"math/rand/v2"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/mindmates/internal/catalog"
	"github.com/and161185/mindmates/internal/metrics"
	"github.com/and161185/mindmates/internal/model"
	"github.com/and161185/mindmates/internal/progression"
)

// Env carries the collaborators shared by all services. Zero fields get defaults.
type Env struct {
	Log     *zap.Logger
	Metrics *metrics.Metrics
	Now     func() time.Time
	NewID   func() string
	Shuffle catalog.ShuffleFunc
}

func (e Env) withDefaults() Env {
	if e.Log == nil {
		e.Log = zap.NewNop()
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	if e.NewID == nil {
		e.NewID = func() string { return uuid.Must(uuid.NewV4()).String() }
	}
	if e.Shuffle == nil {
		e.Shuffle = rand.Shuffle
	}
	return e
}

// Rewards summarizes the XP side effects of one operation.
type Rewards struct {
	XP        int
	FromLevel int
	Level     int
	Unlocked  []model.Achievement
}

// LeveledUp reports whether any award of the operation crossed a threshold.
func (r Rewards) LeveledUp() bool { return r.Level > r.FromLevel }

func (r *Rewards) add(c progression.LevelChange) {
	if r.FromLevel == 0 {
		r.FromLevel = c.FromLevel
	}
	r.XP += c.Awarded
	r.Level = c.ToLevel
}

// settle runs the achievement pass over the loaded documents.
// All three documents must be loaded. It may run again on a retried update.
func (e Env) settle(d *Docs, r *Rewards) {
	res := catalog.CheckAchievementProgress(&d.Game, &d.Profile, journalDistinctMoods(d), e.Now())
	r.add(res.Level)
	r.Unlocked = append(r.Unlocked, res.Unlocked...)
}

// record reports committed rewards to metrics and the log.
func (e Env) record(r Rewards) {
	e.Metrics.XP(r.XP, r.LeveledUp())
	for _, a := range r.Unlocked {
		e.Metrics.AchievementUnlocked(a.ID)
		e.Log.Info("achievement unlocked", zap.String("id", a.ID))
	}
}
