package grpcserver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/and161185/mindmates/internal/api"
	"github.com/and161185/mindmates/internal/metrics"
	"github.com/and161185/mindmates/internal/service"
)

type fakeAddr struct{}

func (fakeAddr) Network() string { return "tcp" }
func (fakeAddr) String() string  { return "127.0.0.1:12345" }

func TestLoggingUnary_Passthrough(t *testing.T) {
	t.Parallel()

	log := zaptest.NewLogger(t)
	ic := LoggingUnary(log)

	ctx := context.Background()

	ctx = peer.NewContext(ctx, &peer.Peer{Addr: fakeAddr{}})

	h := func(ctx context.Context, req any) (any, error) { return "ok", nil }
	info := &grpc.UnaryServerInfo{FullMethod: "/mindmates.v1.MindMates/Method"}

	resp, err := ic(ctx, "req", info, h)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s, _ := resp.(string); s != "ok" {
		t.Fatalf("resp mismatch: %v", resp)
	}

	wantErr := errors.New("boom")
	hErr := func(ctx context.Context, req any) (any, error) { return nil, wantErr }
	_, err = ic(ctx, "req", info, hErr)
	if !errors.Is(err, wantErr) {
		t.Fatalf("want original error, got: %v", err)
	}
}

func TestRecoverUnary_CatchesPanic(t *testing.T) {
	t.Parallel()

	log := zaptest.NewLogger(t)
	ic := RecoverUnary(log)

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: "/mindmates.v1.MindMates/Panic"}

	panicH := func(ctx context.Context, req any) (any, error) {
		panic("oh no")
	}

	_, err := ic(ctx, "req", info, panicH)
	if err == nil {
		t.Fatalf("expected error from panic")
	}
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Internal {
		t.Fatalf("want codes.Internal, got: %v", err)
	}
}

func TestRecoverUnary_NoPanicPassThrough(t *testing.T) {
	t.Parallel()

	log := zaptest.NewLogger(t)
	ic := RecoverUnary(log)

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: "/mindmates.v1.MindMates/Ok"}

	h := func(ctx context.Context, req any) (any, error) { return 42, nil }

	resp, err := ic(ctx, "req", info, h)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.(int) != 42 {
		t.Fatalf("resp mismatch: %v", resp)
	}
}

func TestLoggingUnary_DurationFieldDoesNotBlock(t *testing.T) {
	t.Parallel()

	log := zaptest.NewLogger(t)
	ic := LoggingUnary(log)

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: "/mindmates.v1.MindMates/Sleep"}
	h := func(ctx context.Context, req any) (any, error) {
		time.Sleep(5 * time.Millisecond)
		return "done", nil
	}

	start := time.Now()
	resp, err := ic(ctx, "req", info, h)
	if err != nil || resp.(string) != "done" {
		t.Fatalf("unexpected result: %v, %v", resp, err)
	}
	if time.Since(start) < 5*time.Millisecond {
		t.Fatalf("duration should reflect handler time")
	}
}

func TestMetricsUnary_Records(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	ic := MetricsUnary(metrics.MustNewMetrics(reg))
	info := &grpc.UnaryServerInfo{FullMethod: "/mindmates.v1.MindMates/CheckIn"}

	_, _ = ic(context.Background(), "req", info, func(context.Context, any) (any, error) { return "ok", nil })
	_, _ = ic(context.Background(), "req", info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.Aborted, "conflict")
	})

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	codesSeen := map[string]bool{}
	for _, f := range families {
		if f.GetName() != "mindmates_rpc_requests_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "method" && l.GetValue() != "CheckIn" {
					t.Fatalf("method label = %q", l.GetValue())
				}
				if l.GetName() == "code" {
					codesSeen[l.GetValue()] = true
				}
			}
		}
	}
	if !codesSeen["OK"] || !codesSeen["Aborted"] {
		t.Fatalf("codes not recorded: %v", codesSeen)
	}

	// nil metrics is a no-op
	_, err = MetricsUnary(nil)(context.Background(), "req", info, func(context.Context, any) (any, error) { return 1, nil })
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestAuthUnary(t *testing.T) {
	t.Parallel()

	key := []byte("secret")
	s := New(Services{Auth: service.NewAuthService(nil, nil, key, time.Minute, service.Env{})})
	ic := AuthUnary(s)

	sub := uuid.Must(uuid.NewV4())
	var got uuid.UUID
	h := func(ctx context.Context, req any) (any, error) {
		got, _ = UserIDFromCtx(ctx)
		return "ok", nil
	}

	private := &grpc.UnaryServerInfo{FullMethod: api.FullMethod("GetProfile")}
	tok := makeJWT(t, sub.String(), key, jwt.SigningMethodHS256, time.Now(), time.Minute)
	if _, err := ic(ctxWithAuth(tok), "req", private, h); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != sub {
		t.Fatalf("user id = %s, want %s", got, sub)
	}

	_, err := ic(context.Background(), "req", private, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}

	for _, m := range []string{api.FullMethod("Login"), api.FullMethod("ListMoods"), "/grpc.health.v1.Health/Check"} {
		if _, err := ic(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: m}, h); err != nil {
			t.Fatalf("%s: unexpected err: %v", m, err)
		}
	}
}
