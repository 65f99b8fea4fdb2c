package limiter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct{ scan func(dest ...any) error }

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

// fakeDB answers the limiter's two QueryRow shapes and records Exec calls.
type fakeDB struct {
	rowErr       error
	blockedUntil time.Time
	fails        int

	execSQL  []string
	execArgs [][]any
	execErr  error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execSQL = append(f.execSQL, sql)
	f.execArgs = append(f.execArgs, args)
	return pgconn.CommandTag{}, f.execErr
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	return fakeRow{scan: func(dest ...any) error {
		if f.rowErr != nil {
			return f.rowErr
		}
		switch {
		case strings.Contains(sql, "SELECT blocked_until"):
			*(dest[0].(*time.Time)) = f.blockedUntil
		case strings.Contains(sql, "RETURNING fail_count"):
			*(dest[0].(*int)) = f.fails
		default:
			return errors.New("unexpected query")
		}
		return nil
	}}
}

var testPolicy = Policy{Window: 5 * time.Minute, MaxFails: 3, BlockFor: 10 * time.Minute}

func newTestPG(db *fakeDB, now time.Time) *PG {
	l := NewPG(db, testPolicy)
	l.now = func() time.Time { return now }
	return l
}

func TestPG_Allow(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	l := newTestPG(&fakeDB{rowErr: pgx.ErrNoRows}, now)
	if ok, wait, err := l.Allow(ctx, "ann", []byte("h")); err != nil || !ok || wait != 0 {
		t.Fatalf("no row: ok=%v wait=%v err=%v", ok, wait, err)
	}

	l = newTestPG(&fakeDB{blockedUntil: now.Add(4 * time.Minute)}, now)
	if ok, wait, err := l.Allow(ctx, "ann", []byte("h")); err != nil || ok || wait != 4*time.Minute {
		t.Fatalf("blocked: ok=%v wait=%v err=%v", ok, wait, err)
	}

	l = newTestPG(&fakeDB{blockedUntil: time.Unix(0, 0)}, now)
	if ok, _, err := l.Allow(ctx, "ann", []byte("h")); err != nil || !ok {
		t.Fatalf("epoch: ok=%v err=%v", ok, err)
	}

	l = newTestPG(&fakeDB{rowErr: errors.New("db down")}, now)
	if ok, _, err := l.Allow(ctx, "ann", []byte("h")); err == nil || ok {
		t.Fatalf("want error, got ok=%v err=%v", ok, err)
	}
}

func TestPG_Success(t *testing.T) {
	db := &fakeDB{}
	l := newTestPG(db, time.Now())
	if err := l.Success(context.Background(), "ann", []byte("h")); err != nil {
		t.Fatalf("Success: %v", err)
	}
	if len(db.execSQL) != 1 || !strings.Contains(db.execSQL[0], "INSERT INTO auth_limiter") {
		t.Fatalf("unexpected exec: %v", db.execSQL)
	}

	db = &fakeDB{execErr: errors.New("exec fail")}
	if err := newTestPG(db, time.Now()).Success(context.Background(), "ann", []byte("h")); err == nil {
		t.Fatalf("want exec error")
	}
}

func TestPG_Failure(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	db := &fakeDB{fails: 2}
	blocked, wait, err := newTestPG(db, now).Failure(ctx, "ann", []byte("h"))
	if err != nil || blocked || wait != 0 || len(db.execSQL) != 0 {
		t.Fatalf("below threshold: blocked=%v wait=%v err=%v exec=%v", blocked, wait, err, db.execSQL)
	}

	db = &fakeDB{fails: 3}
	blocked, wait, err = newTestPG(db, now).Failure(ctx, "ann", []byte("h"))
	if err != nil || !blocked || wait != 10*time.Minute {
		t.Fatalf("at threshold: blocked=%v wait=%v err=%v", blocked, wait, err)
	}
	if len(db.execSQL) != 1 || !strings.Contains(db.execSQL[0], "SET blocked_until") {
		t.Fatalf("must store blocked_until, exec=%v", db.execSQL)
	}
	if got := db.execArgs[0][2].(time.Time); !got.Equal(now.Add(10 * time.Minute)) {
		t.Fatalf("blocked_until=%v", got)
	}

	db = &fakeDB{rowErr: errors.New("query error")}
	if _, _, err := newTestPG(db, now).Failure(ctx, "ann", []byte("h")); err == nil {
		t.Fatalf("want error from RETURNING fail_count")
	}
}

func TestHashIP(t *testing.T) {
	a := HashIP("10.0.0.1")
	b := HashIP("10.0.0.1")
	c := HashIP("10.0.0.2")
	if string(a) != string(b) || string(a) == string(c) || len(a) != 32 {
		t.Fatalf("hash mismatch or length %d", len(a))
	}
}
