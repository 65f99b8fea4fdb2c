package service

import (
	"context"
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/mindmates/internal/ai"
	"github.com/and161185/mindmates/internal/journal"
	"github.com/and161185/mindmates/internal/model"
	"github.com/and161185/mindmates/internal/progression"
)

// TextGenerator produces personalized text with local fallbacks. Implemented by *ai.Generator.
type TextGenerator interface {
	JournalPrompt(ctx context.Context, userID string, p model.UserProfile, mood *model.Mood, now time.Time) ai.Outcome[string]
	FriendRecommendations(ctx context.Context, p model.UserProfile) ai.Outcome[[]model.Friend]
}

// JournalService covers moods, journal entries and voice recordings.
type JournalService interface {
	SetMood(ctx context.Context, userID uuid.UUID, moodID string) (model.Mood, Rewards, error)
	MoodByDate(ctx context.Context, userID uuid.UUID, date string) (model.Mood, bool, error)
	MoodTrend(ctx context.Context, userID uuid.UUID, days int) ([]model.MoodRecord, error)
	AddEntry(ctx context.Context, userID uuid.UUID, e model.JournalEntry) (EntryResult, error)
	UpdateEntry(ctx context.Context, userID uuid.UUID, id string, p journal.EntryPatch) (model.JournalEntry, bool, error)
	DeleteEntry(ctx context.Context, userID uuid.UUID, id string) (bool, error)
	ListEntries(ctx context.Context, userID uuid.UUID, date, moodID string) ([]model.JournalEntry, error)
	AddRecording(ctx context.Context, userID uuid.UUID, r model.VoiceRecording) (RecordingResult, error)
	Recording(ctx context.Context, userID uuid.UUID, id string) (model.VoiceRecording, bool, error)
	ListRecordings(ctx context.Context, userID uuid.UUID, limit int, affirmationsOnly bool) ([]model.VoiceRecording, error)
	DeleteRecording(ctx context.Context, userID uuid.UUID, id string) (bool, error)
	ClearAll(ctx context.Context, userID uuid.UUID) error
	JournalPrompt(ctx context.Context, userID uuid.UUID) (ai.Outcome[string], error)
}

// EntryResult is the outcome of AddEntry.
type EntryResult struct {
	Entry   model.JournalEntry
	Stats   model.UserStats
	Rewards Rewards
}

// RecordingResult is the outcome of AddRecording.
type RecordingResult struct {
	Recording model.VoiceRecording
	Stats     model.UserStats
	Rewards   Rewards
}

type JournalServiceImpl struct {
	store *StateStore
	gen   TextGenerator
	env   Env
}

// NewJournalService constructs JournalService.
func NewJournalService(store *StateStore, gen TextGenerator, env Env) *JournalServiceImpl {
	return &JournalServiceImpl{store: store, gen: gen, env: env.withDefaults()}
}

func lookupMood(id string) (model.Mood, error) {
	m, ok := journal.MoodByID(id)
	if !ok {
		return model.Mood{}, validationError(errUnknownMood(id))
	}
	return m, nil
}

// SetMood sets today's mood and re-evaluates achievements.
func (s *JournalServiceImpl) SetMood(ctx context.Context, userID uuid.UUID, moodID string) (model.Mood, Rewards, error) {
	m, err := lookupMood(moodID)
	if err != nil {
		return model.Mood{}, Rewards{}, err
	}
	var r Rewards
	_, err = s.store.Update(ctx, userID, allKinds, func(d *Docs) error {
		r = Rewards{}
		journal.SetCurrentMood(&d.Journal, m, s.env.Now())
		s.env.settle(d, &r)
		return nil
	})
	if err != nil {
		return model.Mood{}, Rewards{}, err
	}
	s.env.record(r)
	return m, r, nil
}

// MoodByDate returns the mood recorded for a UTC date.
func (s *JournalServiceImpl) MoodByDate(ctx context.Context, userID uuid.UUID, date string) (model.Mood, bool, error) {
	if err := checkVar("date", date, "required,datetime=2006-01-02"); err != nil {
		return model.Mood{}, false, err
	}
	d, err := s.store.Load(ctx, userID, model.KindJournal)
	if err != nil {
		return model.Mood{}, false, err
	}
	m, ok := journal.MoodByDate(&d.Journal, date)
	return m, ok, nil
}

// MoodTrend returns the moods of the last days, oldest first.
func (s *JournalServiceImpl) MoodTrend(ctx context.Context, userID uuid.UUID, days int) ([]model.MoodRecord, error) {
	if err := checkVar("days", days, "gte=1,lte=366"); err != nil {
		return nil, err
	}
	d, err := s.store.Load(ctx, userID, model.KindJournal)
	if err != nil {
		return nil, err
	}
	return journal.MoodTrend(&d.Journal, days, s.env.Now()), nil
}

// AddEntry stores an entry, grants journal.EntryXP and bumps the entry counter.
func (s *JournalServiceImpl) AddEntry(ctx context.Context, userID uuid.UUID, e model.JournalEntry) (EntryResult, error) {
	if err := check(e); err != nil {
		return EntryResult{}, err
	}
	if e.Mood.ID != "" {
		m, err := lookupMood(e.Mood.ID)
		if err != nil {
			return EntryResult{}, err
		}
		e.Mood = m
	}
	var out EntryResult
	id := s.env.NewID()
	d, err := s.store.Update(ctx, userID, allKinds, func(d *Docs) error {
		out = EntryResult{}
		entry := e
		if entry.Mood.ID == "" && d.Journal.CurrentMood != nil {
			entry.Mood = *d.Journal.CurrentMood
		}
		out.Entry = journal.AddEntry(&d.Journal, entry, id, s.env.Now())
		d.Profile.Stats.TotalJournalEntries++
		out.Rewards.add(progression.AwardXP(&d.Profile.Stats, journal.EntryXP))
		s.env.settle(d, &out.Rewards)
		return nil
	})
	if err != nil {
		return EntryResult{}, err
	}
	s.env.record(out.Rewards)
	out.Stats = d.Profile.Stats
	return out, nil
}

// UpdateEntry applies a partial update. Unknown ids report false.
func (s *JournalServiceImpl) UpdateEntry(ctx context.Context, userID uuid.UUID, id string, p journal.EntryPatch) (model.JournalEntry, bool, error) {
	if p.Content != nil {
		if err := checkVar("content", *p.Content, "required,max=10000"); err != nil {
			return model.JournalEntry{}, false, err
		}
	}
	if p.Tags != nil {
		if err := checkVar("tags", p.Tags, "max=20,dive,max=32"); err != nil {
			return model.JournalEntry{}, false, err
		}
	}
	if p.Mood != nil {
		m, err := lookupMood(p.Mood.ID)
		if err != nil {
			return model.JournalEntry{}, false, err
		}
		p.Mood = &m
	}
	var (
		entry model.JournalEntry
		found bool
	)
	_, err := s.store.Update(ctx, userID, []model.StateKind{model.KindJournal}, func(d *Docs) error {
		entry, found = journal.UpdateEntry(&d.Journal, id, p)
		return nil
	})
	return entry, found, err
}

// DeleteEntry removes an entry.
func (s *JournalServiceImpl) DeleteEntry(ctx context.Context, userID uuid.UUID, id string) (bool, error) {
	var found bool
	_, err := s.store.Update(ctx, userID, []model.StateKind{model.KindJournal}, func(d *Docs) error {
		found = journal.DeleteEntry(&d.Journal, id)
		return nil
	})
	return found, err
}

// ListEntries returns entries, newest first, filtered by date and mood when set.
func (s *JournalServiceImpl) ListEntries(ctx context.Context, userID uuid.UUID, date, moodID string) ([]model.JournalEntry, error) {
	if err := checkVar("date", date, "omitempty,datetime=2006-01-02"); err != nil {
		return nil, err
	}
	d, err := s.store.Load(ctx, userID, model.KindJournal)
	if err != nil {
		return nil, err
	}
	out := d.Journal.Entries
	if date != "" {
		out = journal.EntriesByDate(&d.Journal, date)
	}
	if moodID != "" {
		out = slices.DeleteFunc(slices.Clone(out), func(e model.JournalEntry) bool { return e.Mood.ID != moodID })
	}
	out = slices.Clone(out)
	slices.SortStableFunc(out, func(a, b model.JournalEntry) int { return b.Date.Compare(a.Date) })
	return out, nil
}

// AddRecording stores a recording. Positive affirmations grant journal.AffirmationXP.
func (s *JournalServiceImpl) AddRecording(ctx context.Context, userID uuid.UUID, r model.VoiceRecording) (RecordingResult, error) {
	if err := check(r); err != nil {
		return RecordingResult{}, err
	}
	if r.MoodID != "" {
		if _, err := lookupMood(r.MoodID); err != nil {
			return RecordingResult{}, err
		}
	}
	var out RecordingResult
	id := s.env.NewID()
	d, err := s.store.Update(ctx, userID, allKinds, func(d *Docs) error {
		out = RecordingResult{}
		out.Recording = journal.AddRecording(&d.Journal, r, id, s.env.Now())
		if r.IsPositiveAffirmation {
			out.Rewards.add(progression.AwardXP(&d.Profile.Stats, journal.AffirmationXP))
			s.env.settle(d, &out.Rewards)
		}
		return nil
	})
	if err != nil {
		return RecordingResult{}, err
	}
	s.env.record(out.Rewards)
	out.Stats = d.Profile.Stats
	return out, nil
}

// Recording looks a recording up by id.
func (s *JournalServiceImpl) Recording(ctx context.Context, userID uuid.UUID, id string) (model.VoiceRecording, bool, error) {
	d, err := s.store.Load(ctx, userID, model.KindJournal)
	if err != nil {
		return model.VoiceRecording{}, false, err
	}
	r, ok := journal.RecordingByID(&d.Journal, id)
	return r, ok, nil
}

// ListRecordings returns the newest recordings, optionally only affirmations.
func (s *JournalServiceImpl) ListRecordings(ctx context.Context, userID uuid.UUID, limit int, affirmationsOnly bool) ([]model.VoiceRecording, error) {
	d, err := s.store.Load(ctx, userID, model.KindJournal)
	if err != nil {
		return nil, err
	}
	if affirmationsOnly {
		return journal.PositiveAffirmations(&d.Journal, limit), nil
	}
	return journal.RecentRecordings(&d.Journal, limit), nil
}

// DeleteRecording removes a recording and detaches it from entries.
func (s *JournalServiceImpl) DeleteRecording(ctx context.Context, userID uuid.UUID, id string) (bool, error) {
	var found bool
	_, err := s.store.Update(ctx, userID, []model.StateKind{model.KindJournal}, func(d *Docs) error {
		found = journal.DeleteRecording(&d.Journal, id)
		return nil
	})
	return found, err
}

// ClearAll wipes the journal document.
func (s *JournalServiceImpl) ClearAll(ctx context.Context, userID uuid.UUID) error {
	_, err := s.store.Update(ctx, userID, []model.StateKind{model.KindJournal}, func(d *Docs) error {
		journal.ClearAll(&d.Journal)
		return nil
	})
	return err
}

// JournalPrompt generates a prompt for the user's profile and current mood.
func (s *JournalServiceImpl) JournalPrompt(ctx context.Context, userID uuid.UUID) (ai.Outcome[string], error) {
	d, err := s.store.Load(ctx, userID, model.KindProfile, model.KindJournal)
	if err != nil {
		return ai.Outcome[string]{}, err
	}
	out := s.gen.JournalPrompt(ctx, userID.String(), d.Profile.Profile, d.Journal.CurrentMood, s.env.Now())
	s.env.Metrics.TextGenerated("journal_prompt", string(out.Source))
	return out, nil
}
