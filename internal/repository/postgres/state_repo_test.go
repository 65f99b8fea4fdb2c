package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/and161185/mindmates/internal/errs"
	"github.com/and161185/mindmates/internal/model"
)

const (
	selVer = `SELECT ver FROM user_state WHERE user_id=\$1 AND kind=\$2 FOR UPDATE`
	insDoc = `INSERT INTO user_state \(user_id, kind, doc, ver\) VALUES \(\$1, \$2, \$3, \$4\) RETURNING updated_at`
	updDoc = `UPDATE user_state SET doc=\$3, ver=\$4, updated_at=now\(\) WHERE user_id=\$1 AND kind=\$2 RETURNING updated_at`
)

func TestStateRepo_Load_FillsMissing(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewStateRepo(db)
	userID := uuid.Must(uuid.NewV4())
	ts := time.Now().UTC()

	mock.ExpectQuery(`SELECT kind, doc, ver, updated_at FROM user_state WHERE user_id=\$1 AND kind = ANY\(\$2\)`).
		WithArgs(userID, []string{"profile", "game"}).
		WillReturnRows(pgxmock.NewRows([]string{"kind", "doc", "ver", "updated_at"}).
			AddRow("profile", []byte(`{"onboarded":true}`), int64(4), ts))

	docs, err := r.Load(context.Background(), userID, model.KindProfile, model.KindGame)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, int64(4), docs[model.KindProfile].Ver)
	require.JSONEq(t, `{"onboarded":true}`, string(docs[model.KindProfile].Data))
	require.Equal(t, model.StateDoc{Kind: model.KindGame}, docs[model.KindGame])
}

func TestStateRepo_Save_UpdateAndCreate(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewStateRepo(db)
	userID := uuid.Must(uuid.NewV4())
	ts := time.Now().UTC()
	prof := []byte(`{"a":1}`)
	game := []byte(`{"b":2}`)

	mock.ExpectBegin()
	mock.ExpectQuery(selVer).WithArgs(userID, "profile").
		WillReturnRows(pgxmock.NewRows([]string{"ver"}).AddRow(int64(3)))
	mock.ExpectQuery(updDoc).WithArgs(userID, "profile", prof, int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(ts))
	mock.ExpectQuery(selVer).WithArgs(userID, "game").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(insDoc).WithArgs(userID, "game", game, int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(ts))
	mock.ExpectCommit()

	res, err := r.Save(context.Background(), userID, []model.StateWrite{
		{Kind: model.KindProfile, BaseVer: 3, Data: prof},
		{Kind: model.KindGame, BaseVer: 0, Data: game},
	})
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, int64(4), res[0].Ver)
	require.Equal(t, int64(1), res[1].Ver)
	require.Equal(t, ts, res[1].UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_Save_ConflictRollsBackBatch(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewStateRepo(db)
	userID := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectQuery(selVer).WithArgs(userID, "profile").
		WillReturnRows(pgxmock.NewRows([]string{"ver"}).AddRow(int64(1)))
	mock.ExpectQuery(updDoc).WithArgs(userID, "profile", []byte(`{}`), int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))
	mock.ExpectQuery(selVer).WithArgs(userID, "journal").
		WillReturnRows(pgxmock.NewRows([]string{"ver"}).AddRow(int64(5)))
	mock.ExpectRollback()

	_, err := r.Save(context.Background(), userID, []model.StateWrite{
		{Kind: model.KindProfile, BaseVer: 1, Data: []byte(`{}`)},
		{Kind: model.KindJournal, BaseVer: 4, Data: []byte(`{}`)},
	})
	require.ErrorIs(t, err, errs.ErrVersionConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_Save_ConflictOnCreate(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewStateRepo(db)
	userID := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectQuery(selVer).WithArgs(userID, "game").WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()
	_, err := r.Save(context.Background(), userID, []model.StateWrite{{Kind: model.KindGame, BaseVer: 2}})
	require.ErrorIs(t, err, errs.ErrVersionConflict)

	// concurrent first insert
	mock.ExpectBegin()
	mock.ExpectQuery(selVer).WithArgs(userID, "game").WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(insDoc).WithArgs(userID, "game", []byte(`{}`), int64(1)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()
	_, err = r.Save(context.Background(), userID, []model.StateWrite{{Kind: model.KindGame, Data: []byte(`{}`)}})
	require.ErrorIs(t, err, errs.ErrVersionConflict)
}

func TestStateRepo_Save_BeginError(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewStateRepo(db)

	mock.ExpectBegin().WillReturnError(errors.New("down"))
	_, err := r.Save(context.Background(), uuid.Must(uuid.NewV4()), nil)
	require.EqualError(t, err, "down")
}
