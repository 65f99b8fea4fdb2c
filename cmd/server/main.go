// Command mindmates-server starts the MindMates gRPC server.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/and161185/mindmates/internal/ai"
	"github.com/and161185/mindmates/internal/api"
	"github.com/and161185/mindmates/internal/cache"
	"github.com/and161185/mindmates/internal/config"
	"github.com/and161185/mindmates/internal/jobs"
	"github.com/and161185/mindmates/internal/limiter"
	"github.com/and161185/mindmates/internal/metrics"
	"github.com/and161185/mindmates/internal/migrate"
	"github.com/and161185/mindmates/internal/repository"
	"github.com/and161185/mindmates/internal/repository/memory"
	"github.com/and161185/mindmates/internal/repository/postgres"
	grpcserver "github.com/and161185/mindmates/internal/server/grpc"
	"github.com/and161185/mindmates/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main parses configuration, prepares storage, and serves gRPC, metrics and the daily job
// until SIGINT/SIGTERM.
func main() {
	cfg, err := config.Load(os.Args[1:], ".env")
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Repositories
	users, states, lim, closeRepos, err := openRepos(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("storage", zap.Error(err))
	}
	defer closeRepos()

	// Prompt cache
	promptCache, closeCache, err := openCache(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("prompt cache", zap.Error(err))
	}
	defer closeCache()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.MustNewMetrics(reg)

	// Services
	env := service.Env{Log: logger, Metrics: m}
	store := service.NewStateStore(states)
	gen := ai.NewGenerator(ai.NewClient(cfg.LLMEndpoint, cfg.LLMTimeout), promptCache, logger.Named("ai"))
	games := service.NewGameService(store, env, cfg.DailyCount)
	app := grpcserver.New(grpcserver.Services{
		Auth:     service.NewAuthService(users, lim, []byte(cfg.JWTKey), cfg.AccessTTL, env),
		Progress: service.NewProgressService(store, env),
		Games:    games,
		Journal:  service.NewJournalService(store, gen, env),
		Social:   service.NewSocialService(store, gen, env),
	})

	sched, err := jobs.NewScheduler(ctx, cfg.DailyCron, jobs.NewDailyRefresh(users, games, logger.Named("jobs")), logger.Named("cron"))
	if err != nil {
		logger.Fatal("scheduler", zap.Error(err))
	}

	// gRPC server with interceptors
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.MetricsUnary(m),
			grpcserver.LoggingUnary(logger),
			grpcserver.AuthUnary(app),
		),
	}
	if cfg.TLS() {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			logger.Fatal("failed to load TLS cert/key", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	} else {
		logger.Warn("TLS disabled, serving plaintext")
	}
	s := grpc.NewServer(opts...)
	api.RegisterMindMatesServer(s, app)

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	hs.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)
	if cfg.Dev {
		reflection.Register(s)
	}

	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", cfg.Addr), zap.Bool("tls", cfg.TLS()))
		return s.Serve(lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		hs.Shutdown()
		gracefulStop(s, 5*time.Second)
		return nil
	})
	g.Go(func() error { return sched.Run(gctx) })
	if cfg.MetricsAddr != "" {
		ms := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			logger.Info("metrics listening", zap.String("addr", cfg.MetricsAddr))
			if err := ms.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return ms.Shutdown(sctx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}

// openRepos returns Postgres repositories and login limiter after running migrations,
// or in-memory ones when no DSN is set.
func openRepos(ctx context.Context, cfg config.Config, log *zap.Logger) (
	repository.UserRepository, repository.StateRepository, limiter.Limiter, func(), error,
) {
	if cfg.DSN == "" {
		log.Warn("no DSN configured, using in-memory storage")
		return memory.NewUserRepo(), memory.NewStateRepo(), limiter.NewMemory(limiter.DefaultPolicy), func() {}, nil
	}
	v, err := migrate.Up(ctx, cfg.DSN)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	log.Info("schema ready", zap.Int64("version", v))
	db, err := postgres.New(ctx, cfg.DSN)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	lim := limiter.NewPG(db.Pool, limiter.DefaultPolicy)
	return postgres.NewUserRepo(db), postgres.NewStateRepo(db), lim, db.Close, nil
}

// openCache returns the Redis prompt cache when configured, otherwise an in-process LRU.
func openCache(ctx context.Context, cfg config.Config, log *zap.Logger) (ai.PromptCache, func(), error) {
	if cfg.RedisAddr == "" {
		return cache.NewLRU(cfg.CacheSize), func() {}, nil
	}
	rc, err := cache.NewRedis(ctx, cfg.RedisAddr, os.Getenv("MINDMATES_REDIS_PASSWORD"), 0)
	if err != nil {
		return nil, nil, err
	}
	log.Info("prompt cache on redis", zap.String("addr", cfg.RedisAddr))
	return rc, func() { _ = rc.Close() }, nil
}

func gracefulStop(s *grpc.Server, timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		s.Stop()
	}
}
