// Package convert maps between domain/service values and api wire messages.
package convert

import (
	"github.com/and161185/mindmates/internal/ai"
	"github.com/and161185/mindmates/internal/api"
	"github.com/and161185/mindmates/internal/catalog"
	"github.com/and161185/mindmates/internal/journal"
	"github.com/and161185/mindmates/internal/model"
	"github.com/and161185/mindmates/internal/progression"
	"github.com/and161185/mindmates/internal/service"
)

// --- helpers ---

// NonNil replaces a nil slice with an empty one so lists encode as [].
func NonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func moodRef(id *string) *model.Mood {
	if id == nil {
		return nil
	}
	return &model.Mood{ID: *id}
}

// --- rewards ---

// ToRewards converts service rewards. Unlocked is omitted when empty.
func ToRewards(r service.Rewards) api.Rewards {
	return api.Rewards{
		XP:        r.XP,
		FromLevel: r.FromLevel,
		Level:     r.Level,
		LeveledUp: r.LeveledUp(),
		Unlocked:  r.Unlocked,
	}
}

// ToRewardsPtr is ToRewards for optional response fields.
func ToRewardsPtr(r service.Rewards) *api.Rewards {
	out := ToRewards(r)
	return &out
}

// --- challenges ---

// ToChallenge attaches the rendered walkthrough of the challenge's interactive content.
func ToChallenge(c model.Challenge) api.Challenge {
	out := api.Challenge{Challenge: c}
	if !c.Content.IsZero() {
		out.Walkthrough = catalog.Walkthrough(c.Content.Value)
	}
	return out
}

func ToChallenges(cs []model.Challenge) []api.Challenge {
	out := make([]api.Challenge, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToChallenge(c))
	}
	return out
}

func ToCompleteChallengeResponse(r service.ChallengeResult) *api.CompleteChallengeResponse {
	resp := &api.CompleteChallengeResponse{Found: r.Found, Stats: r.Stats, Rewards: ToRewards(r.Rewards)}
	if r.Found {
		c := ToChallenge(r.Challenge)
		resp.Challenge = &c
	}
	return resp
}

func ToSetHighScoreResponse(r service.HighScoreResult) *api.SetHighScoreResponse {
	resp := &api.SetHighScoreResponse{Found: r.Found, NewBest: r.NewBest, Stats: r.Stats, Rewards: ToRewards(r.Rewards)}
	if r.Found {
		g := r.Game
		resp.Game = &g
	}
	return resp
}

// FilterAchievements applies an api list filter. Unknown filters behave like api.FilterAll.
func FilterAchievements(as []model.Achievement, filter string) []model.Achievement {
	switch filter {
	case api.FilterUnlocked:
		return NonNil(catalog.UnlockedAchievements(as))
	case api.FilterInProgress:
		return NonNil(catalog.InProgressAchievements(as))
	default:
		return NonNil(as)
	}
}

// --- progression ---

func FromUpdateStatsRequest(in *api.UpdateStatsRequest) progression.StatsPatch {
	return progression.StatsPatch{
		TotalPlayTime:    in.TotalPlayTime,
		FocusScore:       in.FocusScore,
		CreativityScore:  in.CreativityScore,
		ResilienceScore:  in.ResilienceScore,
		MindfulnessScore: in.MindfulnessScore,
		EmotionalIQScore: in.EmotionalIQScore,
	}
}

func ToCheckInResponse(r service.CheckInResult) *api.CheckInResponse {
	return &api.CheckInResponse{
		AlreadyCheckedIn: r.AlreadyCheckedIn,
		Streak:           r.Streak,
		Stats:            r.Stats,
		Rewards:          ToRewards(r.Rewards),
	}
}

// --- journal ---

// FromAddEntryRequest builds a new entry. The mood carries only its id; the service resolves it.
func FromAddEntryRequest(in *api.AddEntryRequest) model.JournalEntry {
	return model.JournalEntry{
		Mood:             model.Mood{ID: in.MoodID},
		Content:          in.Content,
		Tags:             in.Tags,
		IsPrivate:        in.IsPrivate,
		VoiceRecordingID: in.VoiceRecordingID,
	}
}

func FromUpdateEntryRequest(in *api.UpdateEntryRequest) journal.EntryPatch {
	return journal.EntryPatch{
		Mood:             moodRef(in.MoodID),
		Content:          in.Content,
		Tags:             in.Tags,
		IsPrivate:        in.IsPrivate,
		VoiceRecordingID: in.VoiceRecordingID,
	}
}

func FromAddRecordingRequest(in *api.AddRecordingRequest) model.VoiceRecording {
	return model.VoiceRecording{
		URI:                   in.URI,
		Duration:              in.Duration,
		MoodID:                in.MoodID,
		IsPositiveAffirmation: in.IsPositiveAffirmation,
		Title:                 in.Title,
	}
}

func ToEntryResponse(e model.JournalEntry, found bool) *api.EntryResponse {
	if !found {
		return &api.EntryResponse{}
	}
	return &api.EntryResponse{Found: true, Entry: &e}
}

func ToRecordingResponse(r model.VoiceRecording, found bool) *api.RecordingResponse {
	if !found {
		return &api.RecordingResponse{}
	}
	return &api.RecordingResponse{Found: true, Recording: &r}
}

func ToMoodResponse(m model.Mood, found bool) *api.MoodResponse {
	if !found {
		return &api.MoodResponse{}
	}
	return &api.MoodResponse{Found: true, Mood: &m}
}

func ToPromptResponse(o ai.Outcome[string]) *api.PromptResponse {
	return &api.PromptResponse{Prompt: o.Value, Source: string(o.Source), Fallback: o.Fallback()}
}

// --- social ---

func ToRecommendResponse(o ai.Outcome[[]model.Friend]) *api.RecommendResponse {
	return &api.RecommendResponse{Friends: NonNil(o.Value), Source: string(o.Source), Fallback: o.Fallback()}
}

func ToFriendResponse(f model.Friend, found bool) *api.FriendResponse {
	if !found {
		return &api.FriendResponse{}
	}
	return &api.FriendResponse{Found: true, Friend: &f}
}

func FromSendMessageRequest(in *api.SendMessageRequest) model.Message {
	return model.Message{Content: in.Content, IsAudio: in.IsAudio, Sender: in.Sender}
}

func ToMessageResponse(m model.Message, found bool) *api.MessageResponse {
	if !found {
		return &api.MessageResponse{}
	}
	return &api.MessageResponse{Found: true, Message: &m}
}

func ToThreadResponse(ms []model.Message, found bool) *api.ThreadResponse {
	return &api.ThreadResponse{Found: found, Messages: NonNil(ms)}
}
