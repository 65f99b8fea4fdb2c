// Package journal implements the mood history, journal entries and voice recordings document.
package journal

import "github.com/and161185/mindmates/internal/model"

var moods = []model.Mood{
	{ID: "joyful", Name: "Joyful", Emoji: "😄", Color: "#FFD700", Intensity: 5},
	{ID: "happy", Name: "Happy", Emoji: "😊", Color: "#FFA500", Intensity: 4},
	{ID: "calm", Name: "Calm", Emoji: "😌", Color: "#63E2FF", Intensity: 3},
	{ID: "neutral", Name: "Neutral", Emoji: "😐", Color: "#A0AEC0", Intensity: 3},
	{ID: "tired", Name: "Tired", Emoji: "😴", Color: "#9370DB", Intensity: 2},
	{ID: "sad", Name: "Sad", Emoji: "😔", Color: "#6495ED", Intensity: 2},
	{ID: "anxious", Name: "Anxious", Emoji: "😰", Color: "#FFB6C1", Intensity: 2},
	{ID: "angry", Name: "Angry", Emoji: "😠", Color: "#FF6347", Intensity: 1},
	{ID: "frustrated", Name: "Frustrated", Emoji: "😤", Color: "#FF7F50", Intensity: 1},
	{ID: "excited", Name: "Excited", Emoji: "🤩", Color: "#FF1493", Intensity: 5},
	{ID: "grateful", Name: "Grateful", Emoji: "🙏", Color: "#9ACD32", Intensity: 4},
	{ID: "proud", Name: "Proud", Emoji: "😎", Color: "#4169E1", Intensity: 4},
}

// Moods returns the static mood catalog.
func Moods() []model.Mood { return append([]model.Mood(nil), moods...) }

// MoodByID looks a mood up in the catalog.
func MoodByID(id string) (model.Mood, bool) {
	for _, m := range moods {
		if m.ID == id {
			return m, true
		}
	}
	return model.Mood{}, false
}

// MoodsByIntensity filters the catalog by intensity.
func MoodsByIntensity(intensity int) []model.Mood {
	var out []model.Mood
	for _, m := range moods {
		if m.Intensity == intensity {
			out = append(out, m)
		}
	}
	return out
}
