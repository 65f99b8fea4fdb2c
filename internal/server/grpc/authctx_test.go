package grpcserver

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
)

func TestUserIDFromCtx(t *testing.T) {
	t.Parallel()

	ann := uuid.Must(uuid.NewV4())
	cases := []struct {
		name   string
		ctx    context.Context
		want   uuid.UUID
		wantOK bool
	}{
		{"public call", context.Background(), uuid.Nil, false},
		{"caller set", WithUserID(context.Background(), ann), ann, true},
		{"nil caller", WithUserID(context.Background(), uuid.Nil), uuid.Nil, false},
		{"string under other key", context.WithValue(context.Background(), struct{}{}, ann.String()), uuid.Nil, false},
		{"inner caller wins", WithUserID(WithUserID(context.Background(), uuid.Must(uuid.NewV4())), ann), ann, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := UserIDFromCtx(tc.ctx)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("got (%s, %v), want (%s, %v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}
