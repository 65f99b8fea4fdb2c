package model

import "time"

// Mood is one of the static moods a user can pick. Intensity is 1..5.
type Mood struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	Color     string `json:"color"`
	Intensity int    `json:"intensity"`
}

// MoodRecord is the mood recorded for a calendar date. At most one record per date.
type MoodRecord struct {
	Date string `json:"date"`
	Mood Mood   `json:"mood"`
}

// JournalEntry is a written journal entry.
type JournalEntry struct {
	ID               string    `json:"id"`
	Date             time.Time `json:"date"`
	Mood             Mood      `json:"mood"`
	Content          string    `json:"content" validate:"required,max=10000"`
	Tags             []string  `json:"tags" validate:"max=20,dive,max=32"`
	IsPrivate        bool      `json:"isPrivate"`
	VoiceRecordingID string    `json:"voiceRecordingId,omitempty"`
}

// VoiceRecording describes a stored audio clip. Duration is in seconds.
type VoiceRecording struct {
	ID                    string    `json:"id"`
	Date                  time.Time `json:"date"`
	URI                   string    `json:"uri" validate:"required,max=2048"`
	Duration              int       `json:"duration" validate:"gte=0"`
	MoodID                string    `json:"moodId" validate:"max=32"`
	IsPositiveAffirmation bool      `json:"isPositiveAffirmation"`
	Title                 string    `json:"title,omitempty" validate:"max=128"`
}

// JournalState is the persisted "journal" document.
type JournalState struct {
	Entries         []JournalEntry   `json:"entries"`
	CurrentMood     *Mood            `json:"currentMood,omitempty"`
	MoodHistory     []MoodRecord     `json:"moodHistory"`
	VoiceRecordings []VoiceRecording `json:"voiceRecordings"`
}
