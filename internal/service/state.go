package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sethvargo/go-retry"

	"github.com/and161185/mindmates/internal/catalog"
	"github.com/and161185/mindmates/internal/errs"
	"github.com/and161185/mindmates/internal/journal"
	"github.com/and161185/mindmates/internal/model"
	"github.com/and161185/mindmates/internal/progression"
	"github.com/and161185/mindmates/internal/repository"
)

var allKinds = []model.StateKind{model.KindProfile, model.KindJournal, model.KindGame}

// Docs holds the decoded documents of one user for the duration of an operation.
// Only the kinds passed to Load are meaningful.
type Docs struct {
	Profile model.ProfileState
	Journal model.JournalState
	Game    model.GameState

	vers     map[model.StateKind]int64
	baseline map[model.StateKind][]byte
}

// StateStore loads and saves Docs through a StateRepository.
type StateStore struct {
	repo repository.StateRepository
}

// NewStateStore constructs a StateStore.
func NewStateStore(repo repository.StateRepository) *StateStore {
	return &StateStore{repo: repo}
}

// Load reads and decodes the requested documents. Never-saved documents decode to defaults.
func (s *StateStore) Load(ctx context.Context, userID uuid.UUID, kinds ...model.StateKind) (*Docs, error) {
	raw, err := s.repo.Load(ctx, userID, kinds...)
	if err != nil {
		return nil, err
	}
	d := &Docs{
		vers:     make(map[model.StateKind]int64, len(kinds)),
		baseline: make(map[model.StateKind][]byte, len(kinds)),
	}
	for _, k := range kinds {
		doc := raw[k]
		if err := d.decode(k, doc.Data); err != nil {
			return nil, fmt.Errorf("decode %s: %w", k, err)
		}
		d.vers[k] = doc.Ver
		enc, err := d.encode(k)
		if err != nil {
			return nil, err
		}
		d.baseline[k] = enc
	}
	return d, nil
}

// Update loads kinds, applies fn and saves the documents fn changed in one atomic write.
// Documents that still equal their loaded (or default) form are not written.
// An error from fn aborts without saving. When another writer got in between the load
// and the save, the documents are reloaded and fn runs again, up to conflictRetries times,
// so fn must not keep state across calls.
func (s *StateStore) Update(
	ctx context.Context, userID uuid.UUID, kinds []model.StateKind, fn func(*Docs) error,
) (*Docs, error) {
	var out *Docs
	b := retry.WithMaxRetries(conflictRetries, retry.WithJitter(conflictJitter, retry.NewExponential(conflictBackoff)))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		d, err := s.update(ctx, userID, kinds, fn)
		if errors.Is(err, errs.ErrVersionConflict) {
			return retry.RetryableError(err)
		}
		out = d
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Retry schedule for version conflicts.
const (
	conflictRetries = 4
	conflictBackoff = 5 * time.Millisecond
	conflictJitter  = 3 * time.Millisecond
)

func (s *StateStore) update(
	ctx context.Context, userID uuid.UUID, kinds []model.StateKind, fn func(*Docs) error,
) (*Docs, error) {
	d, err := s.Load(ctx, userID, kinds...)
	if err != nil {
		return nil, err
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	var writes []model.StateWrite
	for _, k := range allKinds {
		ver, ok := d.vers[k]
		if !ok {
			continue
		}
		enc, err := d.encode(k)
		if err != nil {
			return nil, err
		}
		if bytes.Equal(enc, d.baseline[k]) {
			continue
		}
		writes = append(writes, model.StateWrite{Kind: k, BaseVer: ver, Data: enc})
	}
	if len(writes) == 0 {
		return d, nil
	}
	saved, err := s.repo.Save(ctx, userID, writes)
	if err != nil {
		return nil, err
	}
	for _, doc := range saved {
		d.vers[doc.Kind] = doc.Ver
		d.baseline[doc.Kind] = doc.Data
	}
	return d, nil
}

func (d *Docs) decode(k model.StateKind, data []byte) error {
	switch k {
	case model.KindProfile:
		d.Profile = progression.NewProfileState()
		if len(data) > 0 {
			if err := json.Unmarshal(data, &d.Profile); err != nil {
				return err
			}
		}
		normalizeProfile(&d.Profile)
	case model.KindJournal:
		d.Journal = journal.NewState()
		if len(data) > 0 {
			if err := json.Unmarshal(data, &d.Journal); err != nil {
				return err
			}
		}
		normalizeJournal(&d.Journal)
	case model.KindGame:
		d.Game = catalog.NewGameState()
		if len(data) > 0 {
			if err := json.Unmarshal(data, &d.Game); err != nil {
				return err
			}
		}
		normalizeGame(&d.Game)
	default:
		return fmt.Errorf("unknown document kind %q", k)
	}
	return nil
}

func (d *Docs) encode(k model.StateKind) ([]byte, error) {
	switch k {
	case model.KindProfile:
		return json.Marshal(d.Profile)
	case model.KindJournal:
		return json.Marshal(d.Journal)
	case model.KindGame:
		return json.Marshal(d.Game)
	}
	return nil, fmt.Errorf("unknown document kind %q", k)
}

func normalizeProfile(p *model.ProfileState) {
	if p.Friends == nil {
		p.Friends = []model.Friend{}
	}
	if p.RecommendedFriends == nil {
		p.RecommendedFriends = []model.Friend{}
	}
	if p.Stats.Level < progression.StartLevel {
		p.Stats.Level = progression.StartLevel
	}
	if p.Stats.XPToNextLevel <= 0 {
		p.Stats.XPToNextLevel = progression.StartThreshold
	}
}

func normalizeJournal(j *model.JournalState) {
	if j.Entries == nil {
		j.Entries = []model.JournalEntry{}
	}
	if j.MoodHistory == nil {
		j.MoodHistory = []model.MoodRecord{}
	}
	if j.VoiceRecordings == nil {
		j.VoiceRecordings = []model.VoiceRecording{}
	}
}

func normalizeGame(g *model.GameState) {
	if g.DailyChallenges == nil {
		g.DailyChallenges = []model.Challenge{}
	}
	if g.CategoryCompletions == nil {
		g.CategoryCompletions = map[model.ChallengeCategory]int{}
	}
}

func journalDistinctMoods(d *Docs) int { return journal.DistinctMoods(&d.Journal) }
