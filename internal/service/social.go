package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/mindmates/internal/ai"
	"github.com/and161185/mindmates/internal/model"
	"github.com/and161185/mindmates/internal/social"
)

// SocialService covers friends, recommendations, pokes and message threads.
type SocialService interface {
	Recommend(ctx context.Context, userID uuid.UUID) (ai.Outcome[[]model.Friend], error)
	ListFriends(ctx context.Context, userID uuid.UUID) (friends, recommended []model.Friend, err error)
	Accept(ctx context.Context, userID uuid.UUID, id string) (model.Friend, bool, error)
	Remove(ctx context.Context, userID uuid.UUID, id string) (bool, error)
	Poke(ctx context.Context, userID uuid.UUID, id string) (model.Friend, bool, error)
	SendMessage(ctx context.Context, userID uuid.UUID, friendID string, msg model.Message) (model.Message, bool, error)
	Thread(ctx context.Context, userID uuid.UUID, friendID string) ([]model.Message, bool, error)
}

type SocialServiceImpl struct {
	store *StateStore
	gen   TextGenerator
	env   Env
}

// NewSocialService constructs SocialService.
func NewSocialService(store *StateStore, gen TextGenerator, env Env) *SocialServiceImpl {
	return &SocialServiceImpl{store: store, gen: gen, env: env.withDefaults()}
}

// Recommend generates a new recommendation pool from the profile and stores it.
// The text-generation call runs outside the document transaction.
func (s *SocialServiceImpl) Recommend(ctx context.Context, userID uuid.UUID) (ai.Outcome[[]model.Friend], error) {
	d, err := s.store.Load(ctx, userID, model.KindProfile)
	if err != nil {
		return ai.Outcome[[]model.Friend]{}, err
	}
	out := s.gen.FriendRecommendations(ctx, d.Profile.Profile)
	s.env.Metrics.TextGenerated("friend_recommendations", string(out.Source))

	d, err = s.store.Update(ctx, userID, []model.StateKind{model.KindProfile}, func(d *Docs) error {
		social.SetRecommendations(&d.Profile, out.Value)
		return nil
	})
	if err != nil {
		return ai.Outcome[[]model.Friend]{}, err
	}
	out.Value = d.Profile.RecommendedFriends
	return out, nil
}

// ListFriends returns accepted friends and pending recommendations.
func (s *SocialServiceImpl) ListFriends(ctx context.Context, userID uuid.UUID) ([]model.Friend, []model.Friend, error) {
	d, err := s.store.Load(ctx, userID, model.KindProfile)
	if err != nil {
		return nil, nil, err
	}
	return d.Profile.Friends, d.Profile.RecommendedFriends, nil
}

// Accept moves a recommendation into the friend list.
func (s *SocialServiceImpl) Accept(ctx context.Context, userID uuid.UUID, id string) (model.Friend, bool, error) {
	return s.friendOp(ctx, userID, func(st *model.ProfileState) (model.Friend, bool) { return social.Accept(st, id) })
}

// Remove drops a friend.
func (s *SocialServiceImpl) Remove(ctx context.Context, userID uuid.UUID, id string) (bool, error) {
	_, found, err := s.friendOp(ctx, userID, func(st *model.ProfileState) (model.Friend, bool) {
		return model.Friend{}, social.Remove(st, id)
	})
	return found, err
}

// Poke stamps the friend's last poke time.
func (s *SocialServiceImpl) Poke(ctx context.Context, userID uuid.UUID, id string) (model.Friend, bool, error) {
	return s.friendOp(ctx, userID, func(st *model.ProfileState) (model.Friend, bool) {
		return social.Poke(st, id, s.env.Now())
	})
}

// SendMessage appends a message to a friend's thread.
func (s *SocialServiceImpl) SendMessage(ctx context.Context, userID uuid.UUID, friendID string, msg model.Message) (model.Message, bool, error) {
	if err := check(msg); err != nil {
		return model.Message{}, false, err
	}
	msg.ID = s.env.NewID()
	var (
		sent  model.Message
		found bool
	)
	_, err := s.store.Update(ctx, userID, []model.StateKind{model.KindProfile}, func(d *Docs) error {
		sent, found = social.Send(&d.Profile, friendID, msg, s.env.Now())
		return nil
	})
	return sent, found, err
}

// Thread returns the messages exchanged with a friend.
func (s *SocialServiceImpl) Thread(ctx context.Context, userID uuid.UUID, friendID string) ([]model.Message, bool, error) {
	d, err := s.store.Load(ctx, userID, model.KindProfile)
	if err != nil {
		return nil, false, err
	}
	msgs, ok := social.Thread(&d.Profile, friendID)
	return msgs, ok, nil
}

func (s *SocialServiceImpl) friendOp(
	ctx context.Context, userID uuid.UUID, op func(*model.ProfileState) (model.Friend, bool),
) (model.Friend, bool, error) {
	var (
		f     model.Friend
		found bool
	)
	_, err := s.store.Update(ctx, userID, []model.StateKind{model.KindProfile}, func(d *Docs) error {
		f, found = op(&d.Profile)
		return nil
	})
	return f, found, err
}
