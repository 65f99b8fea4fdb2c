package grpcserver

import (
	"context"

	"github.com/and161185/mindmates/internal/api"
	"github.com/and161185/mindmates/internal/convert"
)

// GetProfile returns the caller's profile document.
func (s *Server) GetProfile(ctx context.Context, _ *api.Empty) (*api.ProfileResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	st, err := s.progress.GetProfile(ctx, userID)
	if err != nil {
		return nil, toStatus("get profile", err)
	}
	return &api.ProfileResponse{State: st}, nil
}

func (s *Server) CompleteOnboarding(ctx context.Context, req *api.ProfileRequest) (*api.ProfileResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	st, err := s.progress.CompleteOnboarding(ctx, userID, req.Profile)
	if err != nil {
		return nil, toStatus("complete onboarding", err)
	}
	return &api.ProfileResponse{State: st}, nil
}

func (s *Server) UpdateProfile(ctx context.Context, req *api.ProfileRequest) (*api.ProfileResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	st, err := s.progress.UpdateProfile(ctx, userID, req.Profile)
	if err != nil {
		return nil, toStatus("update profile", err)
	}
	return &api.ProfileResponse{State: st}, nil
}

func (s *Server) UpdatePreferences(ctx context.Context, req *api.PreferencesRequest) (*api.ProfileResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	st, err := s.progress.UpdatePreferences(ctx, userID, req.Preferences)
	if err != nil {
		return nil, toStatus("update preferences", err)
	}
	return &api.ProfileResponse{State: st}, nil
}

// AwardXP grants XP directly, with at most one level-up.
func (s *Server) AwardXP(ctx context.Context, req *api.AwardXPRequest) (*api.StatsResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	stats, r, err := s.progress.AwardXP(ctx, userID, req.Amount)
	if err != nil {
		return nil, toStatus("award xp", err)
	}
	return &api.StatsResponse{Stats: stats, Rewards: convert.ToRewardsPtr(r)}, nil
}

func (s *Server) UpdateStats(ctx context.Context, req *api.UpdateStatsRequest) (*api.StatsResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.progress.UpdateStats(ctx, userID, convert.FromUpdateStatsRequest(req))
	if err != nil {
		return nil, toStatus("update stats", err)
	}
	return &api.StatsResponse{Stats: stats}, nil
}

// CheckIn records today's visit and advances the streak.
func (s *Server) CheckIn(ctx context.Context, req *api.CheckInRequest) (*api.CheckInResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.progress.CheckIn(ctx, userID, req.MoodID)
	if err != nil {
		return nil, toStatus("check in", err)
	}
	return convert.ToCheckInResponse(res), nil
}

func (s *Server) ResetProgress(ctx context.Context, _ *api.Empty) (*api.ProfileResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	st, err := s.progress.ResetProgress(ctx, userID)
	if err != nil {
		return nil, toStatus("reset progress", err)
	}
	return &api.ProfileResponse{State: st}, nil
}

// ResetAll drops every document of the caller.
func (s *Server) ResetAll(ctx context.Context, _ *api.Empty) (*api.Empty, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.progress.ResetAll(ctx, userID); err != nil {
		return nil, toStatus("reset all", err)
	}
	return &api.Empty{}, nil
}
