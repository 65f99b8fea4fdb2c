package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/mindmates/internal/catalog"
	"github.com/and161185/mindmates/internal/journal"
	"github.com/and161185/mindmates/internal/model"
	"github.com/and161185/mindmates/internal/progression"
)

// CheckInXP is granted by the daily check-in screen on every submission.
const CheckInXP = 25

// ProgressService covers the profile, stats and streak of a user.
type ProgressService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (model.ProfileState, error)
	CompleteOnboarding(ctx context.Context, userID uuid.UUID, p model.UserProfile) (model.ProfileState, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, p model.UserProfile) (model.ProfileState, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs model.Preferences) (model.ProfileState, error)
	AwardXP(ctx context.Context, userID uuid.UUID, amount int) (model.UserStats, Rewards, error)
	UpdateStats(ctx context.Context, userID uuid.UUID, patch progression.StatsPatch) (model.UserStats, error)
	CheckIn(ctx context.Context, userID uuid.UUID, moodID string) (CheckInResult, error)
	ResetProgress(ctx context.Context, userID uuid.UUID) (model.ProfileState, error)
	ResetAll(ctx context.Context, userID uuid.UUID) error
}

// CheckInResult is the outcome of a daily check-in.
type CheckInResult struct {
	AlreadyCheckedIn bool
	Streak           model.DailyStreak
	Stats            model.UserStats
	Rewards          Rewards
}

type ProgressServiceImpl struct {
	store *StateStore
	env   Env
}

// NewProgressService constructs ProgressService.
func NewProgressService(store *StateStore, env Env) *ProgressServiceImpl {
	return &ProgressServiceImpl{store: store, env: env.withDefaults()}
}

// GetProfile returns the profile document, defaults for a new user.
func (s *ProgressServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (model.ProfileState, error) {
	d, err := s.store.Load(ctx, userID, model.KindProfile)
	if err != nil {
		return model.ProfileState{}, err
	}
	return d.Profile, nil
}

// CompleteOnboarding stores the profile collected by onboarding and marks the user onboarded.
func (s *ProgressServiceImpl) CompleteOnboarding(ctx context.Context, userID uuid.UUID, p model.UserProfile) (model.ProfileState, error) {
	if err := check(p); err != nil {
		return model.ProfileState{}, err
	}
	d, err := s.store.Update(ctx, userID, []model.StateKind{model.KindProfile}, func(d *Docs) error {
		d.Profile.Profile = withProfileDefaults(p)
		d.Profile.Onboarded = true
		return nil
	})
	if err != nil {
		return model.ProfileState{}, err
	}
	s.env.Log.Info("onboarding completed", zap.String("user_id", userID.String()))
	return d.Profile, nil
}

// UpdateProfile replaces the profile fields without touching the onboarding flag.
func (s *ProgressServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, p model.UserProfile) (model.ProfileState, error) {
	if err := check(p); err != nil {
		return model.ProfileState{}, err
	}
	d, err := s.store.Update(ctx, userID, []model.StateKind{model.KindProfile}, func(d *Docs) error {
		d.Profile.Profile = withProfileDefaults(p)
		return nil
	})
	if err != nil {
		return model.ProfileState{}, err
	}
	return d.Profile, nil
}

// UpdatePreferences replaces the preference toggles.
func (s *ProgressServiceImpl) UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs model.Preferences) (model.ProfileState, error) {
	d, err := s.store.Update(ctx, userID, []model.StateKind{model.KindProfile}, func(d *Docs) error {
		d.Profile.Profile.Preferences = prefs
		return nil
	})
	if err != nil {
		return model.ProfileState{}, err
	}
	return d.Profile, nil
}

// AwardXP grants amount XP and re-evaluates achievements.
func (s *ProgressServiceImpl) AwardXP(ctx context.Context, userID uuid.UUID, amount int) (model.UserStats, Rewards, error) {
	if err := checkVar("amount", amount, "gte=0,lte=10000"); err != nil {
		return model.UserStats{}, Rewards{}, err
	}
	var r Rewards
	d, err := s.store.Update(ctx, userID, allKinds, func(d *Docs) error {
		r = Rewards{}
		r.add(progression.AwardXP(&d.Profile.Stats, amount))
		s.env.settle(d, &r)
		return nil
	})
	if err != nil {
		return model.UserStats{}, Rewards{}, err
	}
	s.env.record(r)
	return d.Profile.Stats, r, nil
}

// UpdateStats applies a partial update of counters and trait scores.
func (s *ProgressServiceImpl) UpdateStats(ctx context.Context, userID uuid.UUID, patch progression.StatsPatch) (model.UserStats, error) {
	d, err := s.store.Update(ctx, userID, []model.StateKind{model.KindProfile}, func(d *Docs) error {
		progression.ApplyPatch(&d.Profile.Stats, patch)
		return nil
	})
	if err != nil {
		return model.UserStats{}, err
	}
	return d.Profile.Stats, nil
}

// CheckIn records today's check-in, optionally sets the current mood, grants CheckInXP
// and re-evaluates achievements. Repeating it on the same day still grants the XP.
func (s *ProgressServiceImpl) CheckIn(ctx context.Context, userID uuid.UUID, moodID string) (CheckInResult, error) {
	var mood *model.Mood
	if moodID != "" {
		m, ok := journal.MoodByID(moodID)
		if !ok {
			return CheckInResult{}, validationError(errUnknownMood(moodID))
		}
		mood = &m
	}
	var out CheckInResult
	d, err := s.store.Update(ctx, userID, allKinds, func(d *Docs) error {
		out = CheckInResult{}
		now := s.env.Now()
		res := progression.CheckIn(&d.Profile.Streak, now)
		d.Profile.Stats.StreakDays = d.Profile.Streak.CurrentStreak
		if mood != nil {
			journal.SetCurrentMood(&d.Journal, *mood, now)
		}
		out.AlreadyCheckedIn = res.AlreadyCheckedIn
		out.Rewards.add(progression.AwardXP(&d.Profile.Stats, CheckInXP))
		s.env.settle(d, &out.Rewards)
		return nil
	})
	if err != nil {
		return CheckInResult{}, err
	}
	s.env.record(out.Rewards)
	out.Streak = d.Profile.Streak
	out.Stats = d.Profile.Stats
	return out, nil
}

// ResetProgress restores stats and streak to defaults.
func (s *ProgressServiceImpl) ResetProgress(ctx context.Context, userID uuid.UUID) (model.ProfileState, error) {
	d, err := s.store.Update(ctx, userID, []model.StateKind{model.KindProfile}, func(d *Docs) error {
		progression.ResetProgress(&d.Profile)
		return nil
	})
	if err != nil {
		return model.ProfileState{}, err
	}
	return d.Profile, nil
}

// ResetAll wipes every document of the user back to a fresh account.
func (s *ProgressServiceImpl) ResetAll(ctx context.Context, userID uuid.UUID) error {
	_, err := s.store.Update(ctx, userID, allKinds, func(d *Docs) error {
		d.Profile = progression.NewProfileState()
		d.Journal = journal.NewState()
		d.Game = catalog.NewGameState()
		return nil
	})
	if err == nil {
		s.env.Log.Info("user state reset", zap.String("user_id", userID.String()))
	}
	return err
}

func withProfileDefaults(p model.UserProfile) model.UserProfile {
	def := progression.DefaultProfile()
	if p.Avatar == "" {
		p.Avatar = def.Avatar
	}
	for _, f := range []*[]string{&p.Personality, &p.Hobbies, &p.MusicTaste, &p.EmotionalNeeds, &p.CommonMoods} {
		if *f == nil {
			*f = []string{}
		}
	}
	return p
}
