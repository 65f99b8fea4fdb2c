// Package memory contains in-process repository implementations used when no database is configured.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/mindmates/internal/errs"
	"github.com/and161185/mindmates/internal/model"
)

// UserRepo keeps users in a map.
type UserRepo struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]model.User
	byName map[string]uuid.UUID
	order  []uuid.UUID
	now    func() time.Time
}

// NewUserRepo constructs an empty user repository.
func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:   make(map[uuid.UUID]model.User),
		byName: make(map[string]uuid.UUID),
		now:    time.Now,
	}
}

func (r *UserRepo) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[u.Username]; ok {
		return errs.ErrAlreadyExists
	}
	if _, ok := r.byID[u.ID]; ok {
		return errs.ErrAlreadyExists
	}
	cp := *u
	cp.CreatedAt = r.now().UTC()
	r.byID[u.ID] = cp
	r.byName[u.Username] = u.ID
	r.order = append(r.order, u.ID)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	id, ok := r.byName[username]
	r.mu.RUnlock()
	if !ok {
		return nil, errs.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepo) ListIDs(context.Context) ([]uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order), nil
}

type docKey struct {
	user uuid.UUID
	kind model.StateKind
}

// StateRepo keeps documents in a map guarded by a single lock, which makes Save atomic.
type StateRepo struct {
	mu   sync.Mutex
	docs map[docKey]model.StateDoc
	now  func() time.Time
}

// NewStateRepo constructs an empty state repository.
func NewStateRepo() *StateRepo {
	return &StateRepo{docs: make(map[docKey]model.StateDoc), now: time.Now}
}

func (r *StateRepo) Load(
	_ context.Context, userID uuid.UUID, kinds ...model.StateKind,
) (map[model.StateKind]model.StateDoc, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[model.StateKind]model.StateDoc, len(kinds))
	for _, k := range kinds {
		d, ok := r.docs[docKey{userID, k}]
		if !ok {
			d = model.StateDoc{Kind: k}
		}
		d.Data = slices.Clone(d.Data)
		out[k] = d
	}
	return out, nil
}

func (r *StateRepo) Save(
	_ context.Context, userID uuid.UUID, writes []model.StateWrite,
) ([]model.StateDoc, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range writes {
		if cur := r.docs[docKey{userID, w.Kind}].Ver; cur != w.BaseVer {
			return nil, fmt.Errorf("%s: %w", w.Kind, errs.ErrVersionConflict)
		}
	}
	ts := r.now().UTC()
	out := make([]model.StateDoc, 0, len(writes))
	for _, w := range writes {
		d := model.StateDoc{Kind: w.Kind, Data: slices.Clone(w.Data), Ver: w.BaseVer + 1, UpdatedAt: ts}
		r.docs[docKey{userID, w.Kind}] = d
		out = append(out, d)
	}
	return out, nil
}
