package catalog

import (
	"time"

	"github.com/and161185/mindmates/internal/model"
	"github.com/and161185/mindmates/internal/progression"
)

// Rewards outside the catalog's per-item points.
const (
	HighScoreXP       = 10
	DefaultDailyCount = 3
)

// ShuffleFunc matches rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

// NewGameState returns the document of a user who has not played yet.
func NewGameState() model.GameState {
	return model.GameState{
		Challenges:          Challenges(),
		MiniGames:           MiniGames(),
		Achievements:        Achievements(),
		DailyChallenges:     []model.Challenge{},
		CategoryCompletions: map[model.ChallengeCategory]int{},
	}
}

// CompleteChallenge marks the challenge completed in the catalog and in today's rotation,
// awards its points and bumps the counters. Completing again awards again.
// Unknown ids return ok=false and leave everything untouched.
func CompleteChallenge(game *model.GameState, stats *model.UserStats, id string) (ch model.Challenge, lvl progression.LevelChange, ok bool) {
	idx := indexChallenge(game.Challenges, id)
	if idx < 0 {
		return model.Challenge{}, progression.LevelChange{}, false
	}
	game.Challenges[idx].Completed = true
	if d := indexChallenge(game.DailyChallenges, id); d >= 0 {
		game.DailyChallenges[d].Completed = true
	}
	ch = game.Challenges[idx]

	lvl = progression.AwardXP(stats, ch.Points)
	stats.TotalChallengesCompleted++
	if game.CategoryCompletions == nil {
		game.CategoryCompletions = map[model.ChallengeCategory]int{}
	}
	game.CategoryCompletions[ch.Category]++
	return ch, lvl, true
}

// UnlockChallenge makes a locked challenge available for the daily rotation.
func UnlockChallenge(game *model.GameState, id string) bool {
	idx := indexChallenge(game.Challenges, id)
	if idx < 0 {
		return false
	}
	game.Challenges[idx].Unlocked = true
	return true
}

// UnlockMiniGame makes a locked mini-game playable.
func UnlockMiniGame(game *model.GameState, id string) bool {
	idx := indexGame(game.MiniGames, id)
	if idx < 0 {
		return false
	}
	game.MiniGames[idx].Unlocked = true
	return true
}

// HighScoreResult describes a SetHighScore call.
type HighScoreResult struct {
	Game    model.MiniGame
	NewBest bool
	Level   progression.LevelChange
	Found   bool
}

// SetHighScore keeps the larger of the stored and submitted scores and awards HighScoreXP on every call
// for a known game.
func SetHighScore(game *model.GameState, stats *model.UserStats, id string, score int) HighScoreResult {
	idx := indexGame(game.MiniGames, id)
	if idx < 0 {
		return HighScoreResult{}
	}
	res := HighScoreResult{Found: true}
	if score > game.MiniGames[idx].HighScore {
		game.MiniGames[idx].HighScore = score
		res.NewBest = true
	}
	res.Game = game.MiniGames[idx]
	res.Level = progression.AwardXP(stats, HighScoreXP)
	return res
}

// RefreshDailyChallenges picks count random unlocked challenges once per UTC day.
// It reports whether a new rotation was drawn.
func RefreshDailyChallenges(game *model.GameState, now time.Time, count int, shuffle ShuffleFunc) bool {
	today := model.DateOf(now)
	if game.LastDailyChallengeDate == today {
		return false
	}
	if count <= 0 {
		count = DefaultDailyCount
	}
	pool := make([]model.Challenge, 0, len(game.Challenges))
	for _, c := range game.Challenges {
		if c.Unlocked {
			c.Completed = false
			pool = append(pool, c)
		}
	}
	shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	game.DailyChallenges = pool[:min(count, len(pool))]
	game.LastDailyChallengeDate = today
	return true
}

// ResetGameProgress clears completion, scores, achievements and the rotation.
// Unlock state of challenges and games is kept.
func ResetGameProgress(game *model.GameState) {
	for i := range game.Challenges {
		game.Challenges[i].Completed = false
	}
	for i := range game.MiniGames {
		game.MiniGames[i].HighScore = 0
	}
	for i := range game.Achievements {
		a := &game.Achievements[i]
		a.Unlocked = false
		a.Progress = 0
		a.Date = nil
	}
	game.DailyChallenges = []model.Challenge{}
	game.LastDailyChallengeDate = ""
	game.CategoryCompletions = map[model.ChallengeCategory]int{}
}

// ChallengesByCategory filters challenges; an empty category returns all of them.
func ChallengesByCategory(list []model.Challenge, c model.ChallengeCategory) []model.Challenge {
	if c == "" {
		return list
	}
	var out []model.Challenge
	for _, ch := range list {
		if ch.Category == c {
			out = append(out, ch)
		}
	}
	return out
}

// MiniGamesBy filters games by category and difficulty; empty values match everything.
func MiniGamesBy(list []model.MiniGame, c model.GameCategory, d model.Difficulty) []model.MiniGame {
	var out []model.MiniGame
	for _, g := range list {
		if (c == "" || g.Category == c) && (d == "" || g.Difficulty == d) {
			out = append(out, g)
		}
	}
	return out
}

func indexChallenge(list []model.Challenge, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func indexGame(list []model.MiniGame, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
