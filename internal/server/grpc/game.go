package grpcserver

import (
	"context"

	"github.com/and161185/mindmates/internal/api"
	"github.com/and161185/mindmates/internal/convert"
)

func (s *Server) ListChallenges(ctx context.Context, req *api.ListChallengesRequest) (*api.ChallengesResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	cs, err := s.games.ListChallenges(ctx, userID, req.Category)
	if err != nil {
		return nil, toStatus("list challenges", err)
	}
	return &api.ChallengesResponse{Challenges: convert.ToChallenges(cs)}, nil
}

func (s *Server) ListMiniGames(ctx context.Context, req *api.ListMiniGamesRequest) (*api.MiniGamesResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	gs, err := s.games.ListMiniGames(ctx, userID, req.Category, req.Difficulty)
	if err != nil {
		return nil, toStatus("list mini games", err)
	}
	return &api.MiniGamesResponse{Games: convert.NonNil(gs)}, nil
}

// CompleteChallenge marks a challenge completed and awards its points. Unknown ids report found=false.
func (s *Server) CompleteChallenge(ctx context.Context, req *api.IDRequest) (*api.CompleteChallengeResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.games.CompleteChallenge(ctx, userID, req.ID)
	if err != nil {
		return nil, toStatus("complete challenge", err)
	}
	return convert.ToCompleteChallengeResponse(res), nil
}

func (s *Server) UnlockChallenge(ctx context.Context, req *api.IDRequest) (*api.FoundResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	ok, err := s.games.UnlockChallenge(ctx, userID, req.ID)
	if err != nil {
		return nil, toStatus("unlock challenge", err)
	}
	return &api.FoundResponse{Found: ok}, nil
}

func (s *Server) UnlockMiniGame(ctx context.Context, req *api.IDRequest) (*api.FoundResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	ok, err := s.games.UnlockMiniGame(ctx, userID, req.ID)
	if err != nil {
		return nil, toStatus("unlock mini game", err)
	}
	return &api.FoundResponse{Found: ok}, nil
}

// SetHighScore records a score; only a higher score replaces the stored one.
func (s *Server) SetHighScore(ctx context.Context, req *api.SetHighScoreRequest) (*api.SetHighScoreResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.games.SetHighScore(ctx, userID, req.GameID, req.Score)
	if err != nil {
		return nil, toStatus("set high score", err)
	}
	return convert.ToSetHighScoreResponse(res), nil
}

func (s *Server) DailyChallenges(ctx context.Context, _ *api.Empty) (*api.ChallengesResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	cs, err := s.games.DailyChallenges(ctx, userID)
	if err != nil {
		return nil, toStatus("daily challenges", err)
	}
	return &api.ChallengesResponse{Challenges: convert.ToChallenges(cs)}, nil
}

// RefreshDailyChallenges draws a new rotation unless one was drawn today.
func (s *Server) RefreshDailyChallenges(ctx context.Context, req *api.RefreshDailyRequest) (*api.RefreshDailyResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	refreshed, err := s.games.RefreshDailyChallenges(ctx, userID, req.Count)
	if err != nil {
		return nil, toStatus("refresh daily challenges", err)
	}
	cs, err := s.games.DailyChallenges(ctx, userID)
	if err != nil {
		return nil, toStatus("daily challenges", err)
	}
	return &api.RefreshDailyResponse{Refreshed: refreshed, Challenges: convert.ToChallenges(cs)}, nil
}

func (s *Server) ListAchievements(ctx context.Context, req *api.ListAchievementsRequest) (*api.AchievementsResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	as, err := s.games.Achievements(ctx, userID)
	if err != nil {
		return nil, toStatus("list achievements", err)
	}
	return &api.AchievementsResponse{Achievements: convert.FilterAchievements(as, req.Filter)}, nil
}

func (s *Server) CheckAchievements(ctx context.Context, _ *api.Empty) (*api.RewardsResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	r, err := s.games.CheckAchievements(ctx, userID)
	if err != nil {
		return nil, toStatus("check achievements", err)
	}
	return &api.RewardsResponse{Rewards: convert.ToRewards(r)}, nil
}

func (s *Server) ResetGameProgress(ctx context.Context, _ *api.Empty) (*api.Empty, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.games.ResetGameProgress(ctx, userID); err != nil {
		return nil, toStatus("reset game progress", err)
	}
	return &api.Empty{}, nil
}
