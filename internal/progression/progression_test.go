package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/and161185/mindmates/internal/model"
)

func TestAwardXP_LevelUp(t *testing.T) {
	t.Parallel()

	st := model.UserStats{Level: 1, XP: 90, XPToNextLevel: 100}
	ch := AwardXP(&st, 20)
	require.True(t, ch.LeveledUp())
	require.Equal(t, 2, st.Level)
	require.Equal(t, 10, st.XP)
	require.Equal(t, 150, st.XPToNextLevel)
}

func TestAwardXP_NoLevelUp(t *testing.T) {
	t.Parallel()

	st := DefaultStats()
	ch := AwardXP(&st, 99)
	require.False(t, ch.LeveledUp())
	require.Equal(t, 1, st.Level)
	require.Equal(t, 99, st.XP)
}

func TestAwardXP_SingleLevelPerCall(t *testing.T) {
	t.Parallel()

	st := DefaultStats()
	AwardXP(&st, 1000)
	require.Equal(t, 2, st.Level)
	require.Equal(t, 900, st.XP)
	require.Equal(t, 150, st.XPToNextLevel)

	// the next award catches up by one more level
	AwardXP(&st, 1)
	require.Equal(t, 3, st.Level)
	require.Equal(t, 751, st.XP)
	require.Equal(t, 225, st.XPToNextLevel)
}

func TestAwardXP_ThresholdFloors(t *testing.T) {
	t.Parallel()

	st := model.UserStats{Level: 3, XP: 0, XPToNextLevel: 225}
	AwardXP(&st, 225)
	require.Equal(t, 337, st.XPToNextLevel)
	require.Equal(t, 0, st.XP)
}

func TestAwardXP_NonPositiveIsNoop(t *testing.T) {
	t.Parallel()

	st := DefaultStats()
	require.Equal(t, 0, AwardXP(&st, 0).Awarded)
	require.Equal(t, 0, AwardXP(&st, -5).Awarded)
	require.Equal(t, DefaultStats(), st)
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t.Add(10 * time.Hour)
}

func TestCheckIn_Consecutive(t *testing.T) {
	t.Parallel()

	s := model.DailyStreak{CurrentStreak: 4, LongestStreak: 4, LastCheckIn: "2024-03-09"}
	res := CheckIn(&s, day("2024-03-10"))
	require.True(t, res.Continued)
	require.Equal(t, model.DailyStreak{CurrentStreak: 5, LongestStreak: 5, LastCheckIn: "2024-03-10"}, s)
}

func TestCheckIn_SameDayNoop(t *testing.T) {
	t.Parallel()

	s := model.DailyStreak{CurrentStreak: 2, LongestStreak: 6, LastCheckIn: "2024-03-10"}
	res := CheckIn(&s, day("2024-03-10"))
	require.True(t, res.AlreadyCheckedIn)
	require.Equal(t, 2, s.CurrentStreak)
}

func TestCheckIn_GapRestarts(t *testing.T) {
	t.Parallel()

	s := model.DailyStreak{CurrentStreak: 9, LongestStreak: 9, LastCheckIn: "2024-03-01"}
	CheckIn(&s, day("2024-03-10"))
	require.Equal(t, 1, s.CurrentStreak)
	require.Equal(t, 9, s.LongestStreak)
}

func TestCheckIn_EmptyLastCheckInExtends(t *testing.T) {
	t.Parallel()

	fresh := model.DailyStreak{}
	res := CheckIn(&fresh, day("2024-03-10"))
	require.True(t, res.Continued)
	require.Equal(t, 1, fresh.CurrentStreak)
	require.Equal(t, 1, fresh.LongestStreak)

	carried := model.DailyStreak{CurrentStreak: 3}
	CheckIn(&carried, day("2024-03-10"))
	require.Equal(t, 4, carried.CurrentStreak)
	require.Equal(t, 4, carried.LongestStreak)
	require.Equal(t, "2024-03-10", carried.LastCheckIn)
}

func TestCheckIn_MonthBoundary(t *testing.T) {
	t.Parallel()

	s := model.DailyStreak{CurrentStreak: 1, LongestStreak: 1, LastCheckIn: "2024-02-29"}
	CheckIn(&s, day("2024-03-01"))
	require.Equal(t, 2, s.CurrentStreak)
}

func TestApplyPatch_Clamps(t *testing.T) {
	t.Parallel()

	st := DefaultStats()
	hi, lo, play := 140, -3, -10
	ApplyPatch(&st, StatsPatch{FocusScore: &hi, CreativityScore: &lo, TotalPlayTime: &play})
	require.Equal(t, 100, st.FocusScore)
	require.Equal(t, 0, st.CreativityScore)
	require.Equal(t, 0, st.TotalPlayTime)
	require.Equal(t, StartTraitScore, st.ResilienceScore)
}

func TestResetProgress(t *testing.T) {
	t.Parallel()

	st := NewProfileState()
	st.Profile.Name = "Sam"
	st.Stats.Level = 7
	st.Streak = model.DailyStreak{CurrentStreak: 3, LongestStreak: 5, LastCheckIn: "2024-01-01"}
	ResetProgress(&st)
	require.Equal(t, DefaultStats(), st.Stats)
	require.Equal(t, model.DailyStreak{}, st.Streak)
	require.Equal(t, "Sam", st.Profile.Name)
}
