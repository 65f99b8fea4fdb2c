package catalog

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/and161185/mindmates/internal/model"
	"github.com/and161185/mindmates/internal/progression"
)

var now = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

func seeded() ShuffleFunc { return rand.New(rand.NewPCG(1, 2)).Shuffle }

func newDocs() (model.GameState, model.ProfileState) {
	return NewGameState(), progression.NewProfileState()
}

func TestCatalog_Shape(t *testing.T) {
	t.Parallel()

	ch := Challenges()
	require.Len(t, ch, 10)
	unlocked := 0
	for _, c := range ch {
		require.NotNil(t, c.Content.Value, c.ID)
		if c.Unlocked {
			unlocked++
		}
	}
	require.Equal(t, 6, unlocked)
	require.Len(t, MiniGames(), 8)
	require.Len(t, Achievements(), 13)

	// fresh copies every call
	ch[0].Completed = true
	require.False(t, Challenges()[0].Completed)
}

func TestCompleteChallenge_AwardsAndCounts(t *testing.T) {
	t.Parallel()

	game, prof := newDocs()
	ch, lvl, ok := CompleteChallenge(&game, &prof.Stats, "mindfulness_1")
	require.True(t, ok)
	require.True(t, ch.Completed)
	require.Equal(t, 15, lvl.Awarded)
	require.Equal(t, 15, prof.Stats.XP)
	require.Equal(t, 1, prof.Stats.TotalChallengesCompleted)
	require.Equal(t, 1, game.CategoryCompletions[model.CategoryMindfulness])
}

func TestCompleteChallenge_RecompletionAwardsAgain(t *testing.T) {
	t.Parallel()

	game, prof := newDocs()
	CompleteChallenge(&game, &prof.Stats, "breathing_1")
	CompleteChallenge(&game, &prof.Stats, "breathing_1")
	require.Equal(t, 20, prof.Stats.XP)
	require.Equal(t, 2, prof.Stats.TotalChallengesCompleted)
}

func TestCompleteChallenge_UnknownIsNoop(t *testing.T) {
	t.Parallel()

	game, prof := newDocs()
	before := prof.Stats
	_, _, ok := CompleteChallenge(&game, &prof.Stats, "nope")
	require.False(t, ok)
	require.Equal(t, before, prof.Stats)
}

func TestCompleteChallenge_MarksDailyCopy(t *testing.T) {
	t.Parallel()

	game, prof := newDocs()
	require.True(t, RefreshDailyChallenges(&game, now, 3, seeded()))
	id := game.DailyChallenges[1].ID
	CompleteChallenge(&game, &prof.Stats, id)
	require.True(t, game.DailyChallenges[1].Completed)
}

func TestSetHighScore_OnlyHigherStoredButXPAlways(t *testing.T) {
	t.Parallel()

	game, prof := newDocs()
	r := SetHighScore(&game, &prof.Stats, "memory_match", 50)
	require.True(t, r.NewBest)
	require.Equal(t, 50, r.Game.HighScore)

	r = SetHighScore(&game, &prof.Stats, "memory_match", 30)
	require.False(t, r.NewBest)
	require.Equal(t, 50, r.Game.HighScore)
	require.Equal(t, 2*HighScoreXP, prof.Stats.XP)

	r = SetHighScore(&game, &prof.Stats, "missing", 99)
	require.False(t, r.Found)
	require.Equal(t, 2*HighScoreXP, prof.Stats.XP)
}

func TestRefreshDailyChallenges_OncePerDay(t *testing.T) {
	t.Parallel()

	game, _ := newDocs()
	require.True(t, RefreshDailyChallenges(&game, now, 3, seeded()))
	require.Len(t, game.DailyChallenges, 3)
	first := append([]model.Challenge(nil), game.DailyChallenges...)

	require.False(t, RefreshDailyChallenges(&game, now.Add(5*time.Hour), 3, seeded()))
	require.Equal(t, first, game.DailyChallenges)

	seen := map[string]bool{}
	for _, c := range game.DailyChallenges {
		require.True(t, c.Unlocked)
		require.False(t, c.Completed)
		require.False(t, seen[c.ID], "duplicate %s", c.ID)
		seen[c.ID] = true
	}

	require.True(t, RefreshDailyChallenges(&game, now.AddDate(0, 0, 1), 3, seeded()))
	require.Equal(t, "2024-05-11", game.LastDailyChallengeDate)
}

func TestRefreshDailyChallenges_FewerUnlockedThanCount(t *testing.T) {
	t.Parallel()

	game, _ := newDocs()
	for i := range game.Challenges {
		game.Challenges[i].Unlocked = i == 0
	}
	RefreshDailyChallenges(&game, now, 3, seeded())
	require.Len(t, game.DailyChallenges, 1)
}

func TestCheckAchievementProgress_UnlocksAndAwards(t *testing.T) {
	t.Parallel()

	game, prof := newDocs()
	prof.Streak = model.DailyStreak{CurrentStreak: 3, LongestStreak: 3, LastCheckIn: "2024-05-10"}

	res := CheckAchievementProgress(&game, &prof, 0, now)
	ids := []string{}
	for _, a := range res.Unlocked {
		ids = append(ids, a.ID)
		require.NotNil(t, a.Date)
	}
	require.ElementsMatch(t, []string{"first_check_in", "streak_3"}, ids)
	require.Equal(t, 2*AchievementXP, prof.Stats.XP)

	var streak7 model.Achievement
	for _, a := range game.Achievements {
		if a.ID == "streak_7" {
			streak7 = a
		}
	}
	require.Equal(t, 3, streak7.Progress)
	require.False(t, streak7.Unlocked)
}

func TestCheckAchievementProgress_Monotonic(t *testing.T) {
	t.Parallel()

	game, prof := newDocs()
	prof.Streak.CurrentStreak = 3
	CheckAchievementProgress(&game, &prof, 0, now)
	xp := prof.Stats.XP

	prof.Streak.CurrentStreak = 1
	later := now.Add(48 * time.Hour)
	res := CheckAchievementProgress(&game, &prof, 0, later)
	require.Empty(t, res.Unlocked)
	require.Equal(t, xp, prof.Stats.XP)
	for _, a := range game.Achievements {
		if a.ID == "streak_3" {
			require.True(t, a.Unlocked)
			require.Equal(t, 3, a.Progress)
			require.True(t, a.Date.Equal(now))
		}
	}
}

func TestCheckAchievementProgress_GamesAndCategories(t *testing.T) {
	t.Parallel()

	game, prof := newDocs()
	for i := 0; i < 5; i++ {
		game.MiniGames[i].HighScore = 1
	}
	game.CategoryCompletions[model.CategoryBreathing] = 12
	res := CheckAchievementProgress(&game, &prof, 5, now)
	ids := []string{}
	for _, a := range res.Unlocked {
		ids = append(ids, a.ID)
	}
	require.ElementsMatch(t, []string{"games_5", "breathing_master", "mood_variety"}, ids)
}

func TestEvaluateAchievements_UnknownIDLeftAlone(t *testing.T) {
	t.Parallel()

	achs := []model.Achievement{{ID: "custom", Total: 3, Progress: 2}}
	unlocked := EvaluateAchievements(achs, Snapshot{Stats: model.UserStats{Level: 99}}, now)
	require.Empty(t, unlocked)
	require.Equal(t, 2, achs[0].Progress)
}

func TestResetGameProgress(t *testing.T) {
	t.Parallel()

	game, prof := newDocs()
	CompleteChallenge(&game, &prof.Stats, "breathing_1")
	SetHighScore(&game, &prof.Stats, "focus_flow", 10)
	prof.Streak.CurrentStreak = 1
	CheckAchievementProgress(&game, &prof, 0, now)
	RefreshDailyChallenges(&game, now, 3, seeded())
	UnlockChallenge(&game, "breathing_2")

	ResetGameProgress(&game)
	for _, c := range game.Challenges {
		require.False(t, c.Completed)
	}
	for _, g := range game.MiniGames {
		require.Zero(t, g.HighScore)
	}
	for _, a := range game.Achievements {
		require.False(t, a.Unlocked)
		require.Zero(t, a.Progress)
		require.Nil(t, a.Date)
	}
	require.Empty(t, game.DailyChallenges)
	require.Empty(t, game.LastDailyChallengeDate)
	require.Empty(t, game.CategoryCompletions)
	require.True(t, game.Challenges[indexChallenge(game.Challenges, "breathing_2")].Unlocked)
}

func TestFilters(t *testing.T) {
	t.Parallel()

	require.Len(t, ChallengesByCategory(Challenges(), model.CategoryBreathing), 2)
	require.Len(t, ChallengesByCategory(Challenges(), ""), 10)
	require.Len(t, MiniGamesBy(MiniGames(), model.GameProblemSolving, ""), 3)
	require.Len(t, MiniGamesBy(MiniGames(), "", model.DifficultyEasy), 4)

	achs := Achievements()
	achs[0].Unlocked = true
	achs[1].Progress = 1
	require.Len(t, UnlockedAchievements(achs), 1)
	require.Len(t, InProgressAchievements(achs), 1)
}

func TestWalkthrough_EveryVariant(t *testing.T) {
	t.Parallel()

	for _, c := range Challenges() {
		lines := Walkthrough(c.Content.Value)
		require.NotEmpty(t, lines, c.ID)
		require.Contains(t, lines[len(lines)-1], "Why it helps")
	}
	require.Nil(t, Walkthrough(nil))

	lines := Walkthrough(model.SensoryAwareness{Steps: []model.SenseStep{{Sense: "see", Count: 5, Instruction: "look"}}})
	require.Equal(t, "see (5): look", lines[0])
}
