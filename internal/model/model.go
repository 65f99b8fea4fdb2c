// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// DateLayout is the calendar-date format used for check-ins, mood history and the daily rotation.
const DateLayout = time.DateOnly

// DateOf returns the UTC calendar date of t.
func DateOf(t time.Time) string { return t.UTC().Format(DateLayout) }

// Tokens collects issued access tokens.
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time // access token expiry (for diagnostics)
}

// User represents an account stored on the server.
type User struct {
	ID        uuid.UUID // PK
	Username  string    // unique
	PwdHash   string    // encoded argon2id hash, salt included
	CreatedAt time.Time
}

// StateKind names one of the per-user documents.
type StateKind string

const (
	KindProfile StateKind = "profile"
	KindJournal StateKind = "journal"
	KindGame    StateKind = "game"
)

// StateDoc is a persisted per-user document with optimistic concurrency metadata.
type StateDoc struct {
	Kind      StateKind
	Data      []byte // JSON document
	Ver       int64  // 0 when the document was never saved
	UpdatedAt time.Time
}

// StateWrite is a document change intent with optimistic concurrency base version.
type StateWrite struct {
	Kind    StateKind
	BaseVer int64
	Data    []byte
}
