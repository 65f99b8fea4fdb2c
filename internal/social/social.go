// Package social manages friends, recommendations, pokes and message threads in the profile document.
package social

import (
	"slices"
	"time"

	"github.com/and161185/mindmates/internal/model"
)

// SetRecommendations replaces the recommendation pool. Ids already in the friend list are dropped.
func SetRecommendations(st *model.ProfileState, recs []model.Friend) {
	out := make([]model.Friend, 0, len(recs))
	for _, r := range recs {
		if indexFriend(st.Friends, r.ID) >= 0 {
			continue
		}
		if r.Messages == nil {
			r.Messages = []model.Message{}
		}
		out = append(out, r)
	}
	st.RecommendedFriends = out
}

// Accept moves a recommendation into the friend list. Unknown ids are ignored.
func Accept(st *model.ProfileState, id string) (model.Friend, bool) {
	idx := indexFriend(st.RecommendedFriends, id)
	if idx < 0 {
		return model.Friend{}, false
	}
	f := st.RecommendedFriends[idx]
	st.RecommendedFriends = slices.Delete(st.RecommendedFriends, idx, idx+1)
	st.Friends = append(st.Friends, f)
	return f, true
}

// Remove drops a friend.
func Remove(st *model.ProfileState, id string) bool {
	n := len(st.Friends)
	st.Friends = slices.DeleteFunc(st.Friends, func(f model.Friend) bool { return f.ID == id })
	return len(st.Friends) != n
}

// Poke stamps the friend's last poke time.
func Poke(st *model.ProfileState, id string, now time.Time) (model.Friend, bool) {
	idx := indexFriend(st.Friends, id)
	if idx < 0 {
		return model.Friend{}, false
	}
	at := now.UTC()
	st.Friends[idx].LastPokeTime = &at
	return st.Friends[idx], true
}

// Send appends a message to a friend's thread.
func Send(st *model.ProfileState, friendID string, msg model.Message, now time.Time) (model.Message, bool) {
	idx := indexFriend(st.Friends, friendID)
	if idx < 0 {
		return model.Message{}, false
	}
	if msg.Sender == "" {
		msg.Sender = model.SenderUser
	}
	msg.Timestamp = now.UTC()
	st.Friends[idx].Messages = append(st.Friends[idx].Messages, msg)
	return msg, true
}

// Thread returns the messages exchanged with a friend in send order.
func Thread(st *model.ProfileState, friendID string) ([]model.Message, bool) {
	idx := indexFriend(st.Friends, friendID)
	if idx < 0 {
		return nil, false
	}
	return st.Friends[idx].Messages, true
}

func indexFriend(list []model.Friend, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
