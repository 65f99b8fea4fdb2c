package social

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/and161185/mindmates/internal/model"
	"github.com/and161185/mindmates/internal/progression"
)

var now = time.Date(2024, 7, 1, 8, 30, 0, 0, time.UTC)

func profile() model.UserProfile {
	p := progression.DefaultProfile()
	p.Name = "Sam"
	p.AgeRange = "25-34"
	p.Hobbies = []string{"Reading", "Yoga"}
	p.Personality = []string{"Creative"}
	return p
}

func TestFallbackRecommendations_Deterministic(t *testing.T) {
	t.Parallel()

	a := FallbackRecommendations(profile())
	b := FallbackRecommendations(profile())
	require.Len(t, a, RecommendationCount)
	require.Equal(t, a, b)

	for i, f := range a {
		require.Equal(t, "25-34", f.AgeRange)
		require.GreaterOrEqual(t, len(f.Personality), 2)
		require.LessOrEqual(t, len(f.Personality), 3)
		require.GreaterOrEqual(t, len(f.Hobbies), 2)
		require.Contains(t, []string{"Reading", "Yoga"}, f.Hobbies[0], "friend %d", i)
		require.Contains(t, f.MatchReason, "You both enjoy")
	}

	other := profile()
	other.Name = "Kim"
	require.NotEqual(t, a, FallbackRecommendations(other))
}

func TestMatchReason_Order(t *testing.T) {
	t.Parallel()

	p := profile()
	require.Equal(t, "You both enjoy Yoga", MatchReason(p, []string{"Creative"}, []string{"Art", "Yoga"}))
	require.Equal(t, "You're both Creative", MatchReason(p, []string{"Creative"}, []string{"Art"}))
	require.Equal(t, "Similar 25-34 age group", MatchReason(p, []string{"Logical"}, []string{"Art"}))
}

func TestAccept_MovesFromRecommended(t *testing.T) {
	t.Parallel()

	st := progression.NewProfileState()
	SetRecommendations(&st, FallbackRecommendations(profile()))

	f, ok := Accept(&st, "rec2")
	require.True(t, ok)
	require.Equal(t, "rec2", f.ID)
	require.Len(t, st.Friends, 1)
	require.Len(t, st.RecommendedFriends, RecommendationCount-1)

	_, ok = Accept(&st, "rec2")
	require.False(t, ok)
	require.Len(t, st.Friends, 1)

	// regenerated pool skips existing friends
	SetRecommendations(&st, FallbackRecommendations(profile()))
	require.Len(t, st.RecommendedFriends, RecommendationCount-1)
}

func TestPokeAndMessages(t *testing.T) {
	t.Parallel()

	st := progression.NewProfileState()
	st.Friends = []model.Friend{{ID: "f1", Name: "Alex"}}

	f, ok := Poke(&st, "f1", now)
	require.True(t, ok)
	require.True(t, f.LastPokeTime.Equal(now))
	_, ok = Poke(&st, "nobody", now)
	require.False(t, ok)

	_, ok = Send(&st, "f1", model.Message{ID: "m1", Content: "hi"}, now)
	require.True(t, ok)
	_, ok = Send(&st, "f1", model.Message{ID: "m2", Content: "hey", Sender: model.SenderFriend}, now.Add(time.Second))
	require.True(t, ok)
	_, ok = Send(&st, "nobody", model.Message{ID: "m3"}, now)
	require.False(t, ok)

	th, ok := Thread(&st, "f1")
	require.True(t, ok)
	require.Len(t, th, 2)
	require.Equal(t, "m1", th[0].ID)
	require.Equal(t, model.SenderUser, th[0].Sender)
	require.Equal(t, model.SenderFriend, th[1].Sender)

	require.True(t, Remove(&st, "f1"))
	require.False(t, Remove(&st, "f1"))
}
