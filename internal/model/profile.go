package model

// Preferences are the app-level toggles chosen by the user.
type Preferences struct {
	Notifications  bool `json:"notifications"`
	DarkMode       bool `json:"darkMode"`
	SoundEffects   bool `json:"soundEffects"`
	Music          bool `json:"music"`
	HapticFeedback bool `json:"hapticFeedback"`
}

// UserProfile is created by onboarding and feeds personalization.
type UserProfile struct {
	Name           string      `json:"name" validate:"required,max=64"`
	Avatar         string      `json:"avatar" validate:"max=64"`
	AgeRange       string      `json:"ageRange,omitempty" validate:"max=16"`
	Birthdate      string      `json:"birthdate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Personality    []string    `json:"personality" validate:"max=20,dive,max=64"`
	Hobbies        []string    `json:"hobbies" validate:"max=20,dive,max=64"`
	MusicTaste     []string    `json:"musicTaste" validate:"max=20,dive,max=64"`
	EmotionalNeeds []string    `json:"emotionalNeeds" validate:"max=20,dive,max=64"`
	CommonMoods    []string    `json:"commonMoods" validate:"max=20,dive,max=64"`
	LearningStyle  []string    `json:"learningStyle,omitempty" validate:"max=20,dive,max=64"`
	Preferences    Preferences `json:"preferences"`
}

// UserStats holds leveling state, counters and trait scores.
type UserStats struct {
	Level                    int `json:"level"`
	XP                       int `json:"xp"`
	XPToNextLevel            int `json:"xpToNextLevel"`
	StreakDays               int `json:"streakDays"`
	TotalChallengesCompleted int `json:"totalChallengesCompleted"`
	TotalJournalEntries      int `json:"totalJournalEntries"`
	TotalPlayTime            int `json:"totalPlayTime"`
	FocusScore               int `json:"focusScore"`
	CreativityScore          int `json:"creativityScore"`
	ResilienceScore          int `json:"resilienceScore"`
	MindfulnessScore         int `json:"mindfulnessScore"`
	EmotionalIQScore         int `json:"emotionalIQScore"`
}

// DailyStreak tracks consecutive check-in days. LastCheckIn is a UTC date (DateLayout) or empty.
type DailyStreak struct {
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
	LastCheckIn   string `json:"lastCheckIn"`
}

// ProfileState is the persisted "profile" document.
type ProfileState struct {
	Profile            UserProfile `json:"profile"`
	Onboarded          bool        `json:"onboarded"`
	Stats              UserStats   `json:"stats"`
	Streak             DailyStreak `json:"streak"`
	Friends            []Friend    `json:"friends"`
	RecommendedFriends []Friend    `json:"recommendedFriends"`
}
