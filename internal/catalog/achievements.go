package catalog

import (
	"time"

	"github.com/and161185/mindmates/internal/model"
	"github.com/and161185/mindmates/internal/progression"
)

// AchievementXP is awarded once for every newly unlocked achievement.
const AchievementXP = 25

// Achievements returns a fresh copy of the achievement catalog.
func Achievements() []model.Achievement {
	return []model.Achievement{
		{ID: "first_check_in", Title: "First Steps", Description: "Complete your first mood check-in", Icon: "check-circle", Total: 1},
		{ID: "streak_3", Title: "Consistency Counts", Description: "Check in for 3 days in a row", Icon: "calendar", Total: 3},
		{ID: "streak_7", Title: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "calendar-check", Total: 7},
		{ID: "streak_30", Title: "Monthly Master", Description: "Maintain a 30-day streak", Icon: "award", Total: 30},
		{ID: "journal_5", Title: "Thoughtful Reflector", Description: "Write 5 journal entries", Icon: "book", Total: 5},
		{ID: "challenges_10", Title: "Challenge Champion", Description: "Complete 10 daily challenges", Icon: "target", Total: 10},
		{ID: "games_5", Title: "Game Enthusiast", Description: "Play 5 different mini-games", Icon: "gamepad-2", Total: 5},
		{ID: "mood_variety", Title: "Emotional Explorer", Description: "Track 5 different moods", Icon: "smile", Total: 5},
		{ID: "breathing_master", Title: "Breathing Master", Description: "Complete 10 breathing exercises", Icon: "wind", Total: 10},
		{ID: "mindfulness_guru", Title: "Mindfulness Guru", Description: "Complete 15 mindfulness activities", Icon: "brain", Total: 15},
		{ID: "gratitude_expert", Title: "Gratitude Expert", Description: "Record 20 things you're grateful for", Icon: "heart", Total: 20},
		{ID: "level_5", Title: "Growth Mindset", Description: "Reach level 5", Icon: "trending-up", Total: 5},
		{ID: "level_10", Title: "Mind Athlete", Description: "Reach level 10", Icon: "trophy", Total: 10},
	}
}

// Snapshot is everything the achievement rules read.
type Snapshot struct {
	Stats         model.UserStats
	Streak        model.DailyStreak
	MiniGames     []model.MiniGame
	DistinctMoods int
	Completions   map[model.ChallengeCategory]int
}

type rule func(Snapshot) int

var rules = map[string]rule{
	"first_check_in":   func(s Snapshot) int { return s.Streak.CurrentStreak },
	"streak_3":         func(s Snapshot) int { return s.Streak.CurrentStreak },
	"streak_7":         func(s Snapshot) int { return s.Streak.CurrentStreak },
	"streak_30":        func(s Snapshot) int { return s.Streak.CurrentStreak },
	"journal_5":        func(s Snapshot) int { return s.Stats.TotalJournalEntries },
	"challenges_10":    func(s Snapshot) int { return s.Stats.TotalChallengesCompleted },
	"games_5":          playedGames,
	"mood_variety":     func(s Snapshot) int { return s.DistinctMoods },
	"breathing_master": categoryCount(model.CategoryBreathing),
	"mindfulness_guru": categoryCount(model.CategoryMindfulness),
	"gratitude_expert": categoryCount(model.CategoryGratitude),
	"level_5":          func(s Snapshot) int { return s.Stats.Level },
	"level_10":         func(s Snapshot) int { return s.Stats.Level },
}

func playedGames(s Snapshot) int {
	n := 0
	for _, g := range s.MiniGames {
		if g.HighScore > 0 {
			n++
		}
	}
	return n
}

func categoryCount(c model.ChallengeCategory) rule {
	return func(s Snapshot) int { return s.Completions[c] }
}

// EvaluateAchievements recomputes progress in place and returns the achievements unlocked by this pass.
// Unlocked achievements keep their flag, date and full progress. Ids without a rule are left as stored.
func EvaluateAchievements(achs []model.Achievement, snap Snapshot, now time.Time) []model.Achievement {
	var unlocked []model.Achievement
	for i := range achs {
		a := &achs[i]
		if a.Unlocked {
			a.Progress = a.Total
			continue
		}
		r, ok := rules[a.ID]
		if !ok {
			continue
		}
		a.Progress = min(max(r(snap), 0), a.Total)
		if a.Progress >= a.Total {
			a.Unlocked = true
			at := now.UTC()
			a.Date = &at
			unlocked = append(unlocked, *a)
		}
	}
	return unlocked
}

// AchievementResult is the outcome of a recalculation pass.
type AchievementResult struct {
	Unlocked []model.Achievement
	Level    progression.LevelChange
}

// CheckAchievementProgress evaluates the rules against the current documents and awards
// AchievementXP per newly unlocked achievement in a single XP award.
func CheckAchievementProgress(game *model.GameState, profile *model.ProfileState, distinctMoods int, now time.Time) AchievementResult {
	snap := Snapshot{
		Stats:         profile.Stats,
		Streak:        profile.Streak,
		MiniGames:     game.MiniGames,
		DistinctMoods: distinctMoods,
		Completions:   game.CategoryCompletions,
	}
	res := AchievementResult{Unlocked: EvaluateAchievements(game.Achievements, snap, now)}
	res.Level = progression.AwardXP(&profile.Stats, len(res.Unlocked)*AchievementXP)
	return res
}

// UnlockedAchievements lists achievements already earned.
func UnlockedAchievements(achs []model.Achievement) []model.Achievement {
	var out []model.Achievement
	for _, a := range achs {
		if a.Unlocked {
			out = append(out, a)
		}
	}
	return out
}

// InProgressAchievements lists locked achievements with some progress.
func InProgressAchievements(achs []model.Achievement) []model.Achievement {
	var out []model.Achievement
	for _, a := range achs {
		if !a.Unlocked && a.Progress > 0 {
			out = append(out, a)
		}
	}
	return out
}
