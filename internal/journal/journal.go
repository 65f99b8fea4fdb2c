package journal

import (
	"slices"
	"time"

	"github.com/and161185/mindmates/internal/model"
)

// Rewards granted by journaling actions.
const (
	EntryXP       = 15
	AffirmationXP = 10
	DefaultLimit  = 5
)

// NewState returns an empty journal document.
func NewState() model.JournalState {
	return model.JournalState{
		Entries:         []model.JournalEntry{},
		MoodHistory:     []model.MoodRecord{},
		VoiceRecordings: []model.VoiceRecording{},
	}
}

// SetCurrentMood sets the current mood and replaces today's history record.
func SetCurrentMood(st *model.JournalState, mood model.Mood, now time.Time) {
	today := model.DateOf(now)
	st.MoodHistory = slices.DeleteFunc(st.MoodHistory, func(r model.MoodRecord) bool { return r.Date == today })
	st.MoodHistory = append(st.MoodHistory, model.MoodRecord{Date: today, Mood: mood})
	m := mood
	st.CurrentMood = &m
}

// MoodByDate returns the mood recorded for a date.
func MoodByDate(st *model.JournalState, date string) (model.Mood, bool) {
	for _, r := range st.MoodHistory {
		if r.Date == date {
			return r.Mood, true
		}
	}
	return model.Mood{}, false
}

// MoodTrend returns the records of the last days days (today included), oldest first.
// Dates without a record are skipped.
func MoodTrend(st *model.JournalState, days int, now time.Time) []model.MoodRecord {
	var out []model.MoodRecord
	for i := days - 1; i >= 0; i-- {
		date := model.DateOf(now.UTC().AddDate(0, 0, -i))
		if m, ok := MoodByDate(st, date); ok {
			out = append(out, model.MoodRecord{Date: date, Mood: m})
		}
	}
	return out
}

// DistinctMoods counts different moods in the history.
func DistinctMoods(st *model.JournalState) int {
	seen := map[string]struct{}{}
	for _, r := range st.MoodHistory {
		seen[r.Mood.ID] = struct{}{}
	}
	return len(seen)
}

// AddEntry appends an entry stamped with id and now.
func AddEntry(st *model.JournalState, e model.JournalEntry, id string, now time.Time) model.JournalEntry {
	e.ID = id
	e.Date = now.UTC()
	if e.Tags == nil {
		e.Tags = []string{}
	}
	st.Entries = append(st.Entries, e)
	return e
}

// EntryPatch is a partial entry update. Nil fields are left unchanged.
type EntryPatch struct {
	Mood             *model.Mood
	Content          *string
	Tags             []string
	IsPrivate        *bool
	VoiceRecordingID *string
}

// UpdateEntry applies p to the entry with id. Unknown ids are ignored.
func UpdateEntry(st *model.JournalState, id string, p EntryPatch) (model.JournalEntry, bool) {
	for i := range st.Entries {
		e := &st.Entries[i]
		if e.ID != id {
			continue
		}
		if p.Mood != nil {
			e.Mood = *p.Mood
		}
		if p.Content != nil {
			e.Content = *p.Content
		}
		if p.Tags != nil {
			e.Tags = p.Tags
		}
		if p.IsPrivate != nil {
			e.IsPrivate = *p.IsPrivate
		}
		if p.VoiceRecordingID != nil {
			e.VoiceRecordingID = *p.VoiceRecordingID
		}
		return *e, true
	}
	return model.JournalEntry{}, false
}

// DeleteEntry removes the entry with id and reports whether it existed.
func DeleteEntry(st *model.JournalState, id string) bool {
	n := len(st.Entries)
	st.Entries = slices.DeleteFunc(st.Entries, func(e model.JournalEntry) bool { return e.ID == id })
	return len(st.Entries) != n
}

// EntriesByDate returns entries written on a UTC date.
func EntriesByDate(st *model.JournalState, date string) []model.JournalEntry {
	var out []model.JournalEntry
	for _, e := range st.Entries {
		if model.DateOf(e.Date) == date {
			out = append(out, e)
		}
	}
	return out
}

// EntriesByMood returns entries tagged with a mood id.
func EntriesByMood(st *model.JournalState, moodID string) []model.JournalEntry {
	var out []model.JournalEntry
	for _, e := range st.Entries {
		if e.Mood.ID == moodID {
			out = append(out, e)
		}
	}
	return out
}

// AddRecording appends a voice recording stamped with id and now.
func AddRecording(st *model.JournalState, r model.VoiceRecording, id string, now time.Time) model.VoiceRecording {
	r.ID = id
	r.Date = now.UTC()
	st.VoiceRecordings = append(st.VoiceRecordings, r)
	return r
}

// RecordingByID looks a recording up.
func RecordingByID(st *model.JournalState, id string) (model.VoiceRecording, bool) {
	for _, r := range st.VoiceRecordings {
		if r.ID == id {
			return r, true
		}
	}
	return model.VoiceRecording{}, false
}

// RecentRecordings returns up to limit recordings, newest first. limit <= 0 means DefaultLimit.
func RecentRecordings(st *model.JournalState, limit int) []model.VoiceRecording {
	return newest(st.VoiceRecordings, limit, func(model.VoiceRecording) bool { return true })
}

// PositiveAffirmations returns up to limit affirmation recordings, newest first.
func PositiveAffirmations(st *model.JournalState, limit int) []model.VoiceRecording {
	return newest(st.VoiceRecordings, limit, func(r model.VoiceRecording) bool { return r.IsPositiveAffirmation })
}

func newest(all []model.VoiceRecording, limit int, keep func(model.VoiceRecording) bool) []model.VoiceRecording {
	if limit <= 0 {
		limit = DefaultLimit
	}
	var out []model.VoiceRecording
	for _, r := range all {
		if keep(r) {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b model.VoiceRecording) int { return b.Date.Compare(a.Date) })
	return out[:min(limit, len(out))]
}

// DeleteRecording removes a recording and clears references to it from entries.
func DeleteRecording(st *model.JournalState, id string) bool {
	n := len(st.VoiceRecordings)
	st.VoiceRecordings = slices.DeleteFunc(st.VoiceRecordings, func(r model.VoiceRecording) bool { return r.ID == id })
	for i := range st.Entries {
		if st.Entries[i].VoiceRecordingID == id {
			st.Entries[i].VoiceRecordingID = ""
		}
	}
	return len(st.VoiceRecordings) != n
}

// ClearAll wipes entries, mood history, the current mood and recordings.
func ClearAll(st *model.JournalState) { *st = NewState() }
