package grpcserver

import (
	"context"

	"github.com/and161185/mindmates/internal/api"
	"github.com/and161185/mindmates/internal/convert"
)

// RecommendFriends asks the text model for matches, falling back to the built-in list.
func (s *Server) RecommendFriends(ctx context.Context, _ *api.Empty) (*api.RecommendResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	o, err := s.social.Recommend(ctx, userID)
	if err != nil {
		return nil, toStatus("recommend friends", err)
	}
	return convert.ToRecommendResponse(o), nil
}

func (s *Server) ListFriends(ctx context.Context, _ *api.Empty) (*api.FriendsResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	friends, recommended, err := s.social.ListFriends(ctx, userID)
	if err != nil {
		return nil, toStatus("list friends", err)
	}
	return &api.FriendsResponse{Friends: convert.NonNil(friends), Recommended: convert.NonNil(recommended)}, nil
}

func (s *Server) AcceptFriend(ctx context.Context, req *api.IDRequest) (*api.FriendResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	f, ok, err := s.social.Accept(ctx, userID, req.ID)
	if err != nil {
		return nil, toStatus("accept friend", err)
	}
	return convert.ToFriendResponse(f, ok), nil
}

func (s *Server) RemoveFriend(ctx context.Context, req *api.IDRequest) (*api.FoundResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	ok, err := s.social.Remove(ctx, userID, req.ID)
	if err != nil {
		return nil, toStatus("remove friend", err)
	}
	return &api.FoundResponse{Found: ok}, nil
}

func (s *Server) Poke(ctx context.Context, req *api.IDRequest) (*api.FriendResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	f, ok, err := s.social.Poke(ctx, userID, req.ID)
	if err != nil {
		return nil, toStatus("poke", err)
	}
	return convert.ToFriendResponse(f, ok), nil
}

func (s *Server) SendMessage(ctx context.Context, req *api.SendMessageRequest) (*api.MessageResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	m, ok, err := s.social.SendMessage(ctx, userID, req.FriendID, convert.FromSendMessageRequest(req))
	if err != nil {
		return nil, toStatus("send message", err)
	}
	return convert.ToMessageResponse(m, ok), nil
}

func (s *Server) Thread(ctx context.Context, req *api.IDRequest) (*api.ThreadResponse, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}
	ms, ok, err := s.social.Thread(ctx, userID, req.ID)
	if err != nil {
		return nil, toStatus("thread", err)
	}
	return convert.ToThreadResponse(ms, ok), nil
}
