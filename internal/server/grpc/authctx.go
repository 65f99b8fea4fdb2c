package grpcserver

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// callerKey marks the account the auth interceptor resolved from the bearer token.
type callerKey struct{}

// WithUserID attaches the calling account to ctx.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, callerKey{}, id)
}

// UserIDFromCtx returns the calling account, or false on public RPCs.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(callerKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
