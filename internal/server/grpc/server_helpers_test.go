package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/and161185/mindmates/internal/errs"
	"github.com/and161185/mindmates/internal/service"
)

func makeJWT(t *testing.T, sub string, key []byte, method jwt.SigningMethod, iat time.Time, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(iat),
		NotBefore: jwt.NewNumericDate(iat),
		ExpiresAt: jwt.NewNumericDate(iat.Add(ttl)),
	}
	token := jwt.NewWithClaims(method, claims)
	s, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return s
}

var testKey = []byte("secret")

func newAuthServer() *Server {
	return New(Services{Auth: service.NewAuthService(nil, nil, testKey, time.Hour, service.Env{})})
}

func ctxWithAuth(token string) context.Context {
	md := metadata.New(map[string]string{
		"authorization": "Bearer " + token,
	})
	return metadata.NewIncomingContext(context.Background(), md)
}

func Test_bearerTokenFromMD_OkAndErrors(t *testing.T) {
	t.Parallel()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer abc.def.ghi"))
	got, err := bearerTokenFromMD(ctx)
	if err != nil || got != "abc.def.ghi" {
		t.Fatalf("ok: got=%q err=%v", got, err)
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Basic foo"))
	if _, err := bearerTokenFromMD(ctx); err == nil {
		t.Fatalf("want error on non-bearer")
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer   "))
	if _, err := bearerTokenFromMD(ctx); err == nil {
		t.Fatalf("want error on empty token")
	}

	if _, err := bearerTokenFromMD(context.Background()); err == nil {
		t.Fatalf("want error on no metadata")
	}
}

func Test_userIDFromCtx_Valid(t *testing.T) {
	t.Parallel()

	s := newAuthServer()
	sub := uuid.Must(uuid.NewV4()).String()
	j := makeJWT(t, sub, testKey, jwt.SigningMethodHS256, time.Now().UTC().Add(-time.Minute), 10*time.Minute)
	ctx := ctxWithAuth(j)

	id, err := s.userIDFromCtx(ctx)
	if err != nil {
		t.Fatalf("userIDFromCtx: %v", err)
	}
	if id.String() != sub {
		t.Fatalf("uuid mismatch: %s vs %s", id, sub)
	}
}

func Test_userIDFromCtx_NoMetadata(t *testing.T) {
	t.Parallel()

	s := newAuthServer()
	if _, err := s.userIDFromCtx(context.Background()); err == nil {
		t.Fatalf("want error on missing metadata")
	}
}

func Test_userIDFromCtx_Expired(t *testing.T) {
	t.Parallel()

	s := newAuthServer()
	sub := uuid.Must(uuid.NewV4()).String()

	j := makeJWT(t, sub, testKey, jwt.SigningMethodHS256, time.Now().UTC().Add(-2*time.Hour), -time.Hour)
	ctx := ctxWithAuth(j)

	if _, err := s.userIDFromCtx(ctx); err == nil {
		t.Fatalf("want error on expired token")
	}
}

func Test_userIDFromCtx_BadSubject(t *testing.T) {
	t.Parallel()

	s := newAuthServer()
	j := makeJWT(t, "not-a-uuid", testKey, jwt.SigningMethodHS256, time.Now().UTC(), time.Hour)
	ctx := ctxWithAuth(j)

	if _, err := s.userIDFromCtx(ctx); err == nil {
		t.Fatalf("want error on bad subject")
	}
}

func Test_userIDFromCtx_WrongAlg(t *testing.T) {
	t.Parallel()

	s := newAuthServer()
	sub := uuid.Must(uuid.NewV4()).String()

	j := makeJWT(t, sub, testKey, jwt.SigningMethodHS384, time.Now().UTC(), time.Hour)
	ctx := ctxWithAuth(j)

	if _, err := s.userIDFromCtx(ctx); err == nil {
		t.Fatalf("want error on wrong alg")
	}
}

func Test_userIDFromCtx_InvalidTokenString(t *testing.T) {
	t.Parallel()

	s := newAuthServer()
	ctx := ctxWithAuth("this-is-not-a-jwt")

	if _, err := s.userIDFromCtx(ctx); err == nil {
		t.Fatalf("want error on invalid token string")
	}
}

func Test_userIDFromCtx_PrefersContextValue(t *testing.T) {
	t.Parallel()

	s := newAuthServer()
	want := uuid.Must(uuid.NewV4())
	ctx := WithUserID(ctxWithAuth("this-is-not-a-jwt"), want)

	id, err := s.userIDFromCtx(ctx)
	if err != nil || id != want {
		t.Fatalf("got %s, %v", id, err)
	}
}

func Test_toStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want codes.Code
	}{
		{fmt.Errorf("%w: bad mood", errs.ErrValidation), codes.InvalidArgument},
		{errs.ErrUnauthorized, codes.Unauthenticated},
		{errs.ErrAlreadyExists, codes.AlreadyExists},
		{errs.ErrRateLimited, codes.ResourceExhausted},
		{fmt.Errorf("save: %w", errs.ErrVersionConflict), codes.Aborted},
		{errs.ErrNotFound, codes.NotFound},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errors.New("disk on fire"), codes.Internal},
	}
	for _, c := range cases {
		if got := status.Code(toStatus("op", c.err)); got != c.want {
			t.Fatalf("%v: got %s, want %s", c.err, got, c.want)
		}
	}
}
