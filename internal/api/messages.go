package api

import (
	"time"

	"github.com/and161185/mindmates/internal/model"
)

// Empty is used by RPCs without parameters or results.
type Empty struct{}

// --- shared ---

// Rewards reports XP, level and achievement effects of a mutation.
type Rewards struct {
	XP        int                 `json:"xp"`
	FromLevel int                 `json:"fromLevel"`
	Level     int                 `json:"level"`
	LeveledUp bool                `json:"leveledUp"`
	Unlocked  []model.Achievement `json:"unlocked,omitempty"`
}

// Challenge is a catalog challenge plus a rendered walkthrough of its interactive content.
type Challenge struct {
	model.Challenge
	Walkthrough []string `json:"walkthrough,omitempty"`
}

type IDRequest struct {
	ID string `json:"id"`
}

type FoundResponse struct {
	Found bool `json:"found"`
}

// --- auth ---

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserID string `json:"userId"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID      string    `json:"userId"`
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// --- profile and progression ---

type ProfileRequest struct {
	Profile model.UserProfile `json:"profile"`
}

type PreferencesRequest struct {
	Preferences model.Preferences `json:"preferences"`
}

type ProfileResponse struct {
	State model.ProfileState `json:"state"`
}

type AwardXPRequest struct {
	Amount int `json:"amount"`
}

// UpdateStatsRequest is a partial update; absent fields are left unchanged.
type UpdateStatsRequest struct {
	TotalPlayTime    *int `json:"totalPlayTime,omitempty"`
	FocusScore       *int `json:"focusScore,omitempty"`
	CreativityScore  *int `json:"creativityScore,omitempty"`
	ResilienceScore  *int `json:"resilienceScore,omitempty"`
	MindfulnessScore *int `json:"mindfulnessScore,omitempty"`
	EmotionalIQScore *int `json:"emotionalIQScore,omitempty"`
}

type StatsResponse struct {
	Stats   model.UserStats `json:"stats"`
	Rewards *Rewards        `json:"rewards,omitempty"`
}

type CheckInRequest struct {
	MoodID string `json:"moodId,omitempty"`
}

type CheckInResponse struct {
	AlreadyCheckedIn bool              `json:"alreadyCheckedIn"`
	Streak           model.DailyStreak `json:"streak"`
	Stats            model.UserStats   `json:"stats"`
	Rewards          Rewards           `json:"rewards"`
}

// --- challenges, games, achievements ---

type ListChallengesRequest struct {
	Category model.ChallengeCategory `json:"category,omitempty"`
}

type ChallengesResponse struct {
	Challenges []Challenge `json:"challenges"`
}

type ListMiniGamesRequest struct {
	Category   model.GameCategory `json:"category,omitempty"`
	Difficulty model.Difficulty   `json:"difficulty,omitempty"`
}

type MiniGamesResponse struct {
	Games []model.MiniGame `json:"games"`
}

type CompleteChallengeResponse struct {
	Found     bool            `json:"found"`
	Challenge *Challenge      `json:"challenge,omitempty"`
	Stats     model.UserStats `json:"stats"`
	Rewards   Rewards         `json:"rewards"`
}

type SetHighScoreRequest struct {
	GameID string `json:"gameId"`
	Score  int    `json:"score"`
}

type SetHighScoreResponse struct {
	Found   bool            `json:"found"`
	NewBest bool            `json:"newBest"`
	Game    *model.MiniGame `json:"game,omitempty"`
	Stats   model.UserStats `json:"stats"`
	Rewards Rewards         `json:"rewards"`
}

type RefreshDailyRequest struct {
	Count int `json:"count,omitempty"`
}

type RefreshDailyResponse struct {
	Refreshed  bool        `json:"refreshed"`
	Challenges []Challenge `json:"challenges"`
}

// Achievement list filters.
const (
	FilterAll        = ""
	FilterUnlocked   = "unlocked"
	FilterInProgress = "in_progress"
)

type ListAchievementsRequest struct {
	Filter string `json:"filter,omitempty"`
}

type AchievementsResponse struct {
	Achievements []model.Achievement `json:"achievements"`
}

type RewardsResponse struct {
	Rewards Rewards `json:"rewards"`
}

// --- moods and journal ---

type MoodsResponse struct {
	Moods []model.Mood `json:"moods"`
}

type SetMoodRequest struct {
	MoodID string `json:"moodId"`
}

type SetMoodResponse struct {
	Mood    model.Mood `json:"mood"`
	Rewards Rewards    `json:"rewards"`
}

type DateRequest struct {
	Date string `json:"date"`
}

type MoodResponse struct {
	Found bool        `json:"found"`
	Mood  *model.Mood `json:"mood,omitempty"`
}

type MoodTrendRequest struct {
	Days int `json:"days"`
}

type MoodTrendResponse struct {
	Records []model.MoodRecord `json:"records"`
}

type AddEntryRequest struct {
	MoodID           string   `json:"moodId,omitempty"`
	Content          string   `json:"content"`
	Tags             []string `json:"tags,omitempty"`
	IsPrivate        bool     `json:"isPrivate"`
	VoiceRecordingID string   `json:"voiceRecordingId,omitempty"`
}

type AddEntryResponse struct {
	Entry   model.JournalEntry `json:"entry"`
	Stats   model.UserStats    `json:"stats"`
	Rewards Rewards            `json:"rewards"`
}

// UpdateEntryRequest is a partial update; absent fields are left unchanged.
type UpdateEntryRequest struct {
	ID               string   `json:"id"`
	MoodID           *string  `json:"moodId,omitempty"`
	Content          *string  `json:"content,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	IsPrivate        *bool    `json:"isPrivate,omitempty"`
	VoiceRecordingID *string  `json:"voiceRecordingId,omitempty"`
}

type EntryResponse struct {
	Found bool                `json:"found"`
	Entry *model.JournalEntry `json:"entry,omitempty"`
}

type ListEntriesRequest struct {
	Date   string `json:"date,omitempty"`
	MoodID string `json:"moodId,omitempty"`
}

type EntriesResponse struct {
	Entries []model.JournalEntry `json:"entries"`
}

type AddRecordingRequest struct {
	URI                   string `json:"uri"`
	Duration              int    `json:"duration"`
	MoodID                string `json:"moodId,omitempty"`
	IsPositiveAffirmation bool   `json:"isPositiveAffirmation"`
	Title                 string `json:"title,omitempty"`
}

type AddRecordingResponse struct {
	Recording model.VoiceRecording `json:"recording"`
	Stats     model.UserStats      `json:"stats"`
	Rewards   Rewards              `json:"rewards"`
}

type RecordingResponse struct {
	Found     bool                  `json:"found"`
	Recording *model.VoiceRecording `json:"recording,omitempty"`
}

type ListRecordingsRequest struct {
	Limit            int  `json:"limit,omitempty"`
	AffirmationsOnly bool `json:"affirmationsOnly,omitempty"`
}

type RecordingsResponse struct {
	Recordings []model.VoiceRecording `json:"recordings"`
}

type PromptResponse struct {
	Prompt   string `json:"prompt"`
	Source   string `json:"source"`
	Fallback bool   `json:"fallback"`
}

type PromptsRequest struct {
	Theme string `json:"theme,omitempty"`
}

type PromptsResponse struct {
	Prompts []string `json:"prompts"`
}

// --- social ---

type RecommendResponse struct {
	Friends  []model.Friend `json:"friends"`
	Source   string         `json:"source"`
	Fallback bool           `json:"fallback"`
}

type FriendsResponse struct {
	Friends     []model.Friend `json:"friends"`
	Recommended []model.Friend `json:"recommended"`
}

type FriendResponse struct {
	Found  bool          `json:"found"`
	Friend *model.Friend `json:"friend,omitempty"`
}

type SendMessageRequest struct {
	FriendID string       `json:"friendId"`
	Content  string       `json:"content"`
	IsAudio  bool         `json:"isAudio"`
	Sender   model.Sender `json:"sender,omitempty"`
}

type MessageResponse struct {
	Found   bool           `json:"found"`
	Message *model.Message `json:"message,omitempty"`
}

type ThreadResponse struct {
	Found    bool            `json:"found"`
	Messages []model.Message `json:"messages"`
}
