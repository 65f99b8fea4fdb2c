package grpcserver

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/and161185/mindmates/internal/ai"
	"github.com/and161185/mindmates/internal/api"
	"github.com/and161185/mindmates/internal/cache"
	"github.com/and161185/mindmates/internal/limiter"
	"github.com/and161185/mindmates/internal/model"
	"github.com/and161185/mindmates/internal/repository/memory"
	"github.com/and161185/mindmates/internal/service"
)

type downLLM struct{}

func (downLLM) Complete(context.Context, string, string) (string, error) {
	return "", errors.New("model offline")
}

const bufSize = 1 << 20

func newTestServer(t *testing.T) *Server {
	t.Helper()
	log := zaptest.NewLogger(t)
	env := service.Env{Log: log}
	store := service.NewStateStore(memory.NewStateRepo())
	gen := ai.NewGenerator(downLLM{}, cache.NewLRU(16), log)
	return New(Services{
		Auth:     service.NewAuthService(memory.NewUserRepo(), nil, testKey, time.Hour, env),
		Progress: service.NewProgressService(store, env),
		Games:    service.NewGameService(store, env, 3),
		Journal:  service.NewJournalService(store, gen, env),
		Social:   service.NewSocialService(store, gen, env),
	})
}

func startBufGRPC(t *testing.T, srv *Server) (*api.Client, func()) {
	t.Helper()
	lis := bufconn.Listen(bufSize)
	log := zaptest.NewLogger(t)
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(
		RecoverUnary(log),
		LoggingUnary(log),
		AuthUnary(srv),
	))
	api.RegisterMindMatesServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	stop := func() { _ = cc.Close(); gs.Stop(); _ = lis.Close() }
	return api.NewClient(cc), stop
}

// login registers a fresh user and returns an authenticated context.
func login(t *testing.T, c *api.Client, username string) context.Context {
	t.Helper()
	ctx := context.Background()
	if _, err := c.Register(ctx, &api.RegisterRequest{Username: username, Password: "secret123"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	lr, err := c.Login(ctx, &api.LoginRequest{Username: username, Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if lr.AccessToken == "" || lr.UserID == "" {
		t.Fatalf("empty login response: %+v", lr)
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+lr.AccessToken)
}

func TestE2E_AuthErrors(t *testing.T) {
	t.Parallel()

	c, stop := startBufGRPC(t, newTestServer(t))
	defer stop()
	ctx := context.Background()

	if _, err := c.GetProfile(ctx, &api.Empty{}); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}
	if _, err := c.Register(ctx, &api.RegisterRequest{}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", err)
	}
	if _, err := c.Register(ctx, &api.RegisterRequest{Username: "ann", Password: "secret123"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := c.Register(ctx, &api.RegisterRequest{Username: "ann", Password: "secret123"}); status.Code(err) != codes.AlreadyExists {
		t.Fatalf("want AlreadyExists, got %v", err)
	}
	if _, err := c.Login(ctx, &api.LoginRequest{Username: "ann", Password: "wrong-pass"}); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}
	var lastErr error
	for range limiter.DefaultPolicy.MaxFails - 1 {
		_, lastErr = c.Login(ctx, &api.LoginRequest{Username: "ann", Password: "wrong-pass"})
	}
	if status.Code(lastErr) != codes.ResourceExhausted {
		t.Fatalf("want ResourceExhausted after repeated failures, got %v", lastErr)
	}
	if _, err := c.Login(ctx, &api.LoginRequest{Username: "ann", Password: "secret123"}); status.Code(err) != codes.ResourceExhausted {
		t.Fatalf("want locked login to stay ResourceExhausted, got %v", err)
	}

	moods, err := c.ListMoods(ctx, &api.Empty{})
	if err != nil {
		t.Fatalf("list moods: %v", err)
	}
	if len(moods.Moods) != 12 {
		t.Fatalf("want 12 moods, got %d", len(moods.Moods))
	}
}

func TestE2E_ProgressionFlow(t *testing.T) {
	t.Parallel()

	c, stop := startBufGRPC(t, newTestServer(t))
	defer stop()
	ctx := login(t, c, "bob")

	p, err := c.GetProfile(ctx, &api.Empty{})
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.State.Stats.Level != 1 || p.State.Stats.XP != 0 || p.State.Stats.XPToNextLevel != 100 {
		t.Fatalf("unexpected initial stats: %+v", p.State.Stats)
	}

	cr, err := c.CompleteChallenge(ctx, &api.IDRequest{ID: "breathing_1"})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !cr.Found || cr.Challenge == nil || !cr.Challenge.Completed || len(cr.Challenge.Walkthrough) == 0 {
		t.Fatalf("unexpected completion: %+v", cr)
	}
	if cr.Rewards.XP < 10 {
		t.Fatalf("rewards xp = %d", cr.Rewards.XP)
	}

	unknown, err := c.CompleteChallenge(ctx, &api.IDRequest{ID: "nope"})
	if err != nil || unknown.Found {
		t.Fatalf("unknown challenge: %+v, %v", unknown, err)
	}

	aw, err := c.AwardXP(ctx, &api.AwardXPRequest{Amount: 500})
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if aw.Rewards == nil || aw.Rewards.Level-aw.Rewards.FromLevel != 1 {
		t.Fatalf("want exactly one level-up, got %+v", aw.Rewards)
	}

	if _, err := c.AwardXP(ctx, &api.AwardXPRequest{Amount: -5}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", err)
	}

	ci, err := c.CheckIn(ctx, &api.CheckInRequest{})
	if err != nil || ci.Streak.CurrentStreak < 1 {
		t.Fatalf("check in: %+v, %v", ci, err)
	}

	reset, err := c.ResetProgress(ctx, &api.Empty{})
	if err != nil || reset.State.Stats.Level != 1 || reset.State.Stats.XP != 0 {
		t.Fatalf("reset: %+v, %v", reset, err)
	}
}

func TestE2E_GamesAndAchievements(t *testing.T) {
	t.Parallel()

	c, stop := startBufGRPC(t, newTestServer(t))
	defer stop()
	ctx := login(t, c, "cat")

	hs, err := c.SetHighScore(ctx, &api.SetHighScoreRequest{GameID: "memory_match", Score: 50})
	if err != nil || !hs.Found || !hs.NewBest || hs.Game.HighScore != 50 {
		t.Fatalf("first score: %+v, %v", hs, err)
	}
	hs, err = c.SetHighScore(ctx, &api.SetHighScoreRequest{GameID: "memory_match", Score: 20})
	if err != nil || hs.NewBest || hs.Game.HighScore != 50 || hs.Rewards.XP < 10 {
		t.Fatalf("lower score: %+v, %v", hs, err)
	}

	d1, err := c.DailyChallenges(ctx, &api.Empty{})
	if err != nil || len(d1.Challenges) != 3 {
		t.Fatalf("daily: %+v, %v", d1, err)
	}
	rf, err := c.RefreshDailyChallenges(ctx, &api.RefreshDailyRequest{})
	if err != nil || rf.Refreshed || len(rf.Challenges) != 3 {
		t.Fatalf("second refresh same day: %+v, %v", rf, err)
	}

	unlocked, err := c.ListAchievements(ctx, &api.ListAchievementsRequest{Filter: api.FilterUnlocked})
	if err != nil {
		t.Fatalf("achievements: %v", err)
	}
	for _, a := range unlocked.Achievements {
		if !a.Unlocked {
			t.Fatalf("filter leaked locked achievement %s", a.ID)
		}
	}

	if _, err := c.ResetGameProgress(ctx, &api.Empty{}); err != nil {
		t.Fatalf("reset game: %v", err)
	}
	games, err := c.ListMiniGames(ctx, &api.ListMiniGamesRequest{})
	if err != nil {
		t.Fatalf("games: %v", err)
	}
	for _, g := range games.Games {
		if g.HighScore != 0 {
			t.Fatalf("%s high score survived reset", g.ID)
		}
	}
}

func TestE2E_JournalAndSocial(t *testing.T) {
	t.Parallel()

	c, stop := startBufGRPC(t, newTestServer(t))
	defer stop()
	ctx := login(t, c, "dan")

	if _, err := c.SetMood(ctx, &api.SetMoodRequest{MoodID: "calm"}); err != nil {
		t.Fatalf("set mood: %v", err)
	}
	if _, err := c.SetMood(ctx, &api.SetMoodRequest{MoodID: "sleepy-ish"}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", err)
	}

	ae, err := c.AddEntry(ctx, &api.AddEntryRequest{Content: "walked in the park", Tags: []string{"outdoors"}})
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if ae.Entry.Mood.ID != "calm" || ae.Stats.TotalJournalEntries != 1 {
		t.Fatalf("unexpected entry: %+v", ae)
	}

	list, err := c.ListEntries(ctx, &api.ListEntriesRequest{MoodID: "calm"})
	if err != nil || len(list.Entries) != 1 {
		t.Fatalf("list entries: %+v, %v", list, err)
	}

	content := "walked by the river"
	up, err := c.UpdateEntry(ctx, &api.UpdateEntryRequest{ID: ae.Entry.ID, Content: &content})
	if err != nil || !up.Found || up.Entry.Content != content {
		t.Fatalf("update entry: %+v, %v", up, err)
	}

	pr, err := c.JournalPrompt(ctx, &api.Empty{})
	if err != nil || !pr.Fallback || pr.Prompt == "" {
		t.Fatalf("prompt: %+v, %v", pr, err)
	}

	rec, err := c.RecommendFriends(ctx, &api.Empty{})
	if err != nil || !rec.Fallback || len(rec.Friends) == 0 {
		t.Fatalf("recommend: %+v, %v", rec, err)
	}
	id := rec.Friends[0].ID

	acc, err := c.AcceptFriend(ctx, &api.IDRequest{ID: id})
	if err != nil || !acc.Found {
		t.Fatalf("accept: %+v, %v", acc, err)
	}
	msg, err := c.SendMessage(ctx, &api.SendMessageRequest{FriendID: id, Content: "hi!"})
	if err != nil || !msg.Found {
		t.Fatalf("send: %+v, %v", msg, err)
	}
	th, err := c.Thread(ctx, &api.IDRequest{ID: id})
	if err != nil || !th.Found || len(th.Messages) != 1 || th.Messages[0].Sender != model.SenderUser {
		t.Fatalf("thread: %+v, %v", th, err)
	}

	del, err := c.DeleteEntry(ctx, &api.IDRequest{ID: ae.Entry.ID})
	if err != nil || !del.Found {
		t.Fatalf("delete entry: %+v, %v", del, err)
	}
}
