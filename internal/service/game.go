package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/mindmates/internal/catalog"
	"github.com/and161185/mindmates/internal/model"
)

// GameService covers challenges, mini-games, the daily rotation and achievements.
type GameService interface {
	ListChallenges(ctx context.Context, userID uuid.UUID, category model.ChallengeCategory) ([]model.Challenge, error)
	ListMiniGames(ctx context.Context, userID uuid.UUID, category model.GameCategory, difficulty model.Difficulty) ([]model.MiniGame, error)
	CompleteChallenge(ctx context.Context, userID uuid.UUID, id string) (ChallengeResult, error)
	UnlockChallenge(ctx context.Context, userID uuid.UUID, id string) (bool, error)
	UnlockMiniGame(ctx context.Context, userID uuid.UUID, id string) (bool, error)
	SetHighScore(ctx context.Context, userID uuid.UUID, gameID string, score int) (HighScoreResult, error)
	DailyChallenges(ctx context.Context, userID uuid.UUID) ([]model.Challenge, error)
	RefreshDailyChallenges(ctx context.Context, userID uuid.UUID, count int) (bool, error)
	Achievements(ctx context.Context, userID uuid.UUID) ([]model.Achievement, error)
	CheckAchievements(ctx context.Context, userID uuid.UUID) (Rewards, error)
	ResetGameProgress(ctx context.Context, userID uuid.UUID) error
}

// ChallengeResult is the outcome of CompleteChallenge. Found is false for unknown ids.
type ChallengeResult struct {
	Found     bool
	Challenge model.Challenge
	Stats     model.UserStats
	Rewards   Rewards
}

// HighScoreResult is the outcome of SetHighScore. Found is false for unknown games.
type HighScoreResult struct {
	Found   bool
	NewBest bool
	Game    model.MiniGame
	Stats   model.UserStats
	Rewards Rewards
}

type GameServiceImpl struct {
	store      *StateStore
	env        Env
	dailyCount int
}

// NewGameService constructs GameService. dailyCount <= 0 uses catalog.DefaultDailyCount.
func NewGameService(store *StateStore, env Env, dailyCount int) *GameServiceImpl {
	if dailyCount <= 0 {
		dailyCount = catalog.DefaultDailyCount
	}
	return &GameServiceImpl{store: store, env: env.withDefaults(), dailyCount: dailyCount}
}

func (s *GameServiceImpl) game(ctx context.Context, userID uuid.UUID) (model.GameState, error) {
	d, err := s.store.Load(ctx, userID, model.KindGame)
	if err != nil {
		return model.GameState{}, err
	}
	return d.Game, nil
}

// ListChallenges returns the catalog, filtered by category when set.
func (s *GameServiceImpl) ListChallenges(ctx context.Context, userID uuid.UUID, category model.ChallengeCategory) ([]model.Challenge, error) {
	if err := checkVar("category", string(category), "omitempty,oneof=breathing mindfulness gratitude physical cognitive social"); err != nil {
		return nil, err
	}
	g, err := s.game(ctx, userID)
	if err != nil {
		return nil, err
	}
	return catalog.ChallengesByCategory(g.Challenges, category), nil
}

// ListMiniGames returns mini-games filtered by category and difficulty when set.
func (s *GameServiceImpl) ListMiniGames(ctx context.Context, userID uuid.UUID, category model.GameCategory, difficulty model.Difficulty) ([]model.MiniGame, error) {
	if err := checkVar("difficulty", string(difficulty), "omitempty,oneof=easy medium hard"); err != nil {
		return nil, err
	}
	g, err := s.game(ctx, userID)
	if err != nil {
		return nil, err
	}
	return catalog.MiniGamesBy(g.MiniGames, category, difficulty), nil
}

// CompleteChallenge marks a challenge completed and grants its points. Completing it again grants them again.
func (s *GameServiceImpl) CompleteChallenge(ctx context.Context, userID uuid.UUID, id string) (ChallengeResult, error) {
	var out ChallengeResult
	d, err := s.store.Update(ctx, userID, allKinds, func(d *Docs) error {
		out = ChallengeResult{}
		ch, lvl, ok := catalog.CompleteChallenge(&d.Game, &d.Profile.Stats, id)
		if !ok {
			return nil
		}
		out.Found = true
		out.Challenge = ch
		out.Rewards.add(lvl)
		s.env.settle(d, &out.Rewards)
		return nil
	})
	if err != nil {
		return ChallengeResult{}, err
	}
	if !out.Found {
		s.env.Log.Debug("complete: unknown challenge", zap.String("id", id))
	} else {
		s.env.Metrics.ChallengeCompleted(string(out.Challenge.Category))
		s.env.record(out.Rewards)
	}
	out.Stats = d.Profile.Stats
	return out, nil
}

// UnlockChallenge makes a challenge eligible for the daily rotation.
func (s *GameServiceImpl) UnlockChallenge(ctx context.Context, userID uuid.UUID, id string) (bool, error) {
	var found bool
	_, err := s.store.Update(ctx, userID, []model.StateKind{model.KindGame}, func(d *Docs) error {
		found = catalog.UnlockChallenge(&d.Game, id)
		return nil
	})
	return found, err
}

// UnlockMiniGame makes a mini-game playable.
func (s *GameServiceImpl) UnlockMiniGame(ctx context.Context, userID uuid.UUID, id string) (bool, error) {
	var found bool
	_, err := s.store.Update(ctx, userID, []model.StateKind{model.KindGame}, func(d *Docs) error {
		found = catalog.UnlockMiniGame(&d.Game, id)
		return nil
	})
	return found, err
}

// SetHighScore keeps the best score and grants catalog.HighScoreXP on every call.
func (s *GameServiceImpl) SetHighScore(ctx context.Context, userID uuid.UUID, gameID string, score int) (HighScoreResult, error) {
	if err := checkVar("score", score, "gte=0"); err != nil {
		return HighScoreResult{}, err
	}
	var out HighScoreResult
	d, err := s.store.Update(ctx, userID, allKinds, func(d *Docs) error {
		out = HighScoreResult{}
		res := catalog.SetHighScore(&d.Game, &d.Profile.Stats, gameID, score)
		if !res.Found {
			return nil
		}
		out.Found, out.NewBest, out.Game = true, res.NewBest, res.Game
		out.Rewards.add(res.Level)
		s.env.settle(d, &out.Rewards)
		return nil
	})
	if err != nil {
		return HighScoreResult{}, err
	}
	s.env.record(out.Rewards)
	out.Stats = d.Profile.Stats
	return out, nil
}

// DailyChallenges returns today's rotation, drawing a new one on the first read of the day.
func (s *GameServiceImpl) DailyChallenges(ctx context.Context, userID uuid.UUID) ([]model.Challenge, error) {
	var refreshed bool
	d, err := s.store.Update(ctx, userID, []model.StateKind{model.KindGame}, func(d *Docs) error {
		refreshed = catalog.RefreshDailyChallenges(&d.Game, s.env.Now(), s.dailyCount, s.env.Shuffle)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if refreshed {
		s.env.Metrics.DailyRefreshed()
	}
	return d.Game.DailyChallenges, nil
}

// RefreshDailyChallenges draws count challenges unless today's rotation exists.
// count <= 0 uses the configured default.
func (s *GameServiceImpl) RefreshDailyChallenges(ctx context.Context, userID uuid.UUID, count int) (bool, error) {
	if count <= 0 {
		count = s.dailyCount
	}
	var refreshed bool
	_, err := s.store.Update(ctx, userID, []model.StateKind{model.KindGame}, func(d *Docs) error {
		refreshed = catalog.RefreshDailyChallenges(&d.Game, s.env.Now(), count, s.env.Shuffle)
		return nil
	})
	if refreshed && err == nil {
		s.env.Metrics.DailyRefreshed()
	}
	return refreshed, err
}

// Achievements returns the achievement list with stored progress.
func (s *GameServiceImpl) Achievements(ctx context.Context, userID uuid.UUID) ([]model.Achievement, error) {
	g, err := s.game(ctx, userID)
	if err != nil {
		return nil, err
	}
	return g.Achievements, nil
}

// CheckAchievements re-evaluates achievement progress explicitly.
func (s *GameServiceImpl) CheckAchievements(ctx context.Context, userID uuid.UUID) (Rewards, error) {
	var r Rewards
	_, err := s.store.Update(ctx, userID, allKinds, func(d *Docs) error {
		r = Rewards{}
		s.env.settle(d, &r)
		return nil
	})
	if err != nil {
		return Rewards{}, err
	}
	s.env.record(r)
	return r, nil
}

// ResetGameProgress clears completion, scores, achievements and the rotation.
func (s *GameServiceImpl) ResetGameProgress(ctx context.Context, userID uuid.UUID) error {
	_, err := s.store.Update(ctx, userID, []model.StateKind{model.KindGame}, func(d *Docs) error {
		catalog.ResetGameProgress(&d.Game)
		return nil
	})
	return err
}
