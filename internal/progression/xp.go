// Package progression implements leveling, streak check-ins and stat defaults.
package progression

import "github.com/and161185/mindmates/internal/model"

// LevelChange reports the effect of a single XP award.
type LevelChange struct {
	Awarded   int
	FromLevel int
	ToLevel   int
}

// LeveledUp reports whether the award crossed a level threshold.
func (c LevelChange) LeveledUp() bool { return c.ToLevel > c.FromLevel }

// AwardXP adds amount to stats and performs at most one level-up.
// The threshold grows to floor(threshold*1.5). A large award can leave xp above
// the new threshold; the next award levels up again.
func AwardXP(stats *model.UserStats, amount int) LevelChange {
	ch := LevelChange{FromLevel: stats.Level, ToLevel: stats.Level}
	if amount <= 0 {
		return ch
	}
	ch.Awarded = amount
	stats.XP += amount
	if stats.XP >= stats.XPToNextLevel {
		stats.Level++
		stats.XP -= stats.XPToNextLevel
		stats.XPToNextLevel = nextThreshold(stats.XPToNextLevel)
		ch.ToLevel = stats.Level
	}
	return ch
}

func nextThreshold(cur int) int { return cur * 3 / 2 }

// StatsPatch is a partial update of counters and trait scores. Nil fields are left unchanged.
type StatsPatch struct {
	TotalPlayTime    *int
	FocusScore       *int
	CreativityScore  *int
	ResilienceScore  *int
	MindfulnessScore *int
	EmotionalIQScore *int
}

// ApplyPatch merges p into stats. Trait scores are clamped to [0,100], counters to >= 0.
func ApplyPatch(stats *model.UserStats, p StatsPatch) {
	if p.TotalPlayTime != nil {
		stats.TotalPlayTime = max(*p.TotalPlayTime, 0)
	}
	setTrait(&stats.FocusScore, p.FocusScore)
	setTrait(&stats.CreativityScore, p.CreativityScore)
	setTrait(&stats.ResilienceScore, p.ResilienceScore)
	setTrait(&stats.MindfulnessScore, p.MindfulnessScore)
	setTrait(&stats.EmotionalIQScore, p.EmotionalIQScore)
}

func setTrait(dst, v *int) {
	if v == nil {
		return
	}
	*dst = min(max(*v, 0), 100)
}
