package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/and161185/mindmates/internal/errs"
	"github.com/and161185/mindmates/internal/model"
)

// StateRepo implements StateRepository using PostgreSQL.
type StateRepo struct{ db *DB }

// NewStateRepo constructs a state repository.
func NewStateRepo(db *DB) *StateRepo { return &StateRepo{db: db} }

// Load returns the requested documents, filling absent kinds with zero versions.
func (r *StateRepo) Load(
	ctx context.Context, userID uuid.UUID, kinds ...model.StateKind,
) (map[model.StateKind]model.StateDoc, error) {
	names := make([]string, len(kinds))
	out := make(map[model.StateKind]model.StateDoc, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
		out[k] = model.StateDoc{Kind: k}
	}

	const q = `
SELECT kind, doc, ver, updated_at
FROM user_state
WHERE user_id=$1 AND kind = ANY($2)`
	rows, err := r.db.Pool.Query(ctx, q, userID, names)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind string
			doc  []byte
			ver  int64
			ts   time.Time
		)
		if err = rows.Scan(&kind, &doc, &ver, &ts); err != nil {
			return nil, err
		}
		k := model.StateKind(kind)
		out[k] = model.StateDoc{Kind: k, Data: doc, Ver: ver, UpdatedAt: ts}
	}
	return out, rows.Err()
}

// Save writes documents in one transaction with optimistic concurrency.
func (r *StateRepo) Save(
	ctx context.Context, userID uuid.UUID, writes []model.StateWrite,
) ([]model.StateDoc, error) {
	results := make([]model.StateDoc, 0, len(writes))
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		for _, w := range writes {
			doc, err := saveDoc(ctx, tx, userID, w)
			if err != nil {
				return err
			}
			results = append(results, doc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func saveDoc(ctx context.Context, tx pgx.Tx, userID uuid.UUID, w model.StateWrite) (model.StateDoc, error) {
	const sel = `SELECT ver FROM user_state WHERE user_id=$1 AND kind=$2 FOR UPDATE`
	const ins = `
INSERT INTO user_state (user_id, kind, doc, ver)
VALUES ($1, $2, $3, $4)
RETURNING updated_at`
	const upd = `
UPDATE user_state SET doc=$3, ver=$4, updated_at=now()
WHERE user_id=$1 AND kind=$2
RETURNING updated_at`

	var (
		curVer int64
		ts     time.Time
	)
	err := tx.QueryRow(ctx, sel, userID, string(w.Kind)).Scan(&curVer)
	switch {
	case err == nil:
		if curVer != w.BaseVer {
			return model.StateDoc{}, fmt.Errorf("%s: %w", w.Kind, errs.ErrVersionConflict)
		}
		if err = tx.QueryRow(ctx, upd, userID, string(w.Kind), w.Data, curVer+1).Scan(&ts); err != nil {
			return model.StateDoc{}, err
		}
	case errors.Is(err, pgx.ErrNoRows):
		if w.BaseVer != 0 {
			return model.StateDoc{}, fmt.Errorf("%s: %w", w.Kind, errs.ErrVersionConflict)
		}
		if err = tx.QueryRow(ctx, ins, userID, string(w.Kind), w.Data, int64(1)).Scan(&ts); err != nil {
			if isUniqueViolation(err) {
				return model.StateDoc{}, fmt.Errorf("%s: %w", w.Kind, errs.ErrVersionConflict)
			}
			return model.StateDoc{}, err
		}
	default:
		return model.StateDoc{}, err
	}
	return model.StateDoc{Kind: w.Kind, Data: w.Data, Ver: curVer + 1, UpdatedAt: ts}, nil
}
