package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/mindmates/internal/model"
)

// StateRepository stores the per-user JSON documents with optimistic versions.
type StateRepository interface {
	// Load returns the requested documents. Kinds never saved come back with Ver 0 and nil Data.
	Load(ctx context.Context, userID uuid.UUID, kinds ...model.StateKind) (map[model.StateKind]model.StateDoc, error)

	// Save writes all documents atomically. Any base version mismatch aborts the whole
	// batch with errs.ErrVersionConflict.
	Save(ctx context.Context, userID uuid.UUID, writes []model.StateWrite) ([]model.StateDoc, error)
}
