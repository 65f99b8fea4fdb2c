package progression

import (
	"time"

	"github.com/and161185/mindmates/internal/model"
)

// CheckInResult describes what a check-in did to the streak.
type CheckInResult struct {
	AlreadyCheckedIn bool
	Continued        bool // the previous streak was extended
	Streak           model.DailyStreak
}

// CheckIn records a check-in for the UTC date of now.
// Same day is a no-op. A first check-in or one the day after the last extends
// the streak; a gap restarts it at 1.
func CheckIn(streak *model.DailyStreak, now time.Time) CheckInResult {
	today := model.DateOf(now)
	if streak.LastCheckIn == today {
		return CheckInResult{AlreadyCheckedIn: true, Streak: *streak}
	}
	yesterday := model.DateOf(now.UTC().AddDate(0, 0, -1))

	res := CheckInResult{}
	if streak.LastCheckIn == "" || streak.LastCheckIn == yesterday {
		streak.CurrentStreak++
		res.Continued = true
	} else {
		streak.CurrentStreak = 1
	}
	streak.LongestStreak = max(streak.LongestStreak, streak.CurrentStreak)
	streak.LastCheckIn = today
	res.Streak = *streak
	return res
}
