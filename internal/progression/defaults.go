package progression

import "github.com/and161185/mindmates/internal/model"

// Starting values for a fresh account.
const (
	StartLevel      = 1
	StartThreshold  = 100
	StartTraitScore = 50
	DefaultAvatar   = "default"
)

// DefaultStats returns level 1 with 0 XP and neutral trait scores.
func DefaultStats() model.UserStats {
	return model.UserStats{
		Level:            StartLevel,
		XPToNextLevel:    StartThreshold,
		FocusScore:       StartTraitScore,
		CreativityScore:  StartTraitScore,
		ResilienceScore:  StartTraitScore,
		MindfulnessScore: StartTraitScore,
		EmotionalIQScore: StartTraitScore,
	}
}

// DefaultProfile returns an empty profile with default preferences.
func DefaultProfile() model.UserProfile {
	return model.UserProfile{
		Avatar:         DefaultAvatar,
		Personality:    []string{},
		Hobbies:        []string{},
		MusicTaste:     []string{},
		EmotionalNeeds: []string{},
		CommonMoods:    []string{},
		Preferences: model.Preferences{
			Notifications:  true,
			SoundEffects:   true,
			Music:          true,
			HapticFeedback: true,
		},
	}
}

// NewProfileState returns the document of a user who has not onboarded yet.
func NewProfileState() model.ProfileState {
	return model.ProfileState{
		Profile:            DefaultProfile(),
		Stats:              DefaultStats(),
		Friends:            []model.Friend{},
		RecommendedFriends: []model.Friend{},
	}
}

// ResetProgress restores stats and streak. Profile, friends and other documents are untouched.
func ResetProgress(st *model.ProfileState) {
	st.Stats = DefaultStats()
	st.Streak = model.DailyStreak{}
}
