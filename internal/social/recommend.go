package social

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/and161185/mindmates/internal/model"
)

// RecommendationCount is how many friends a generation produces.
const RecommendationCount = 5

var (
	avatars = []string{
		"https://images.unsplash.com/photo-1494790108377-be9c29b29330?q=80&w=100&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?q=80&w=100&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1438761681033-6461ffad8d80?q=80&w=100&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1500648767791-00dcc994a43e?q=80&w=100&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1534528741775-53994a69daeb?q=80&w=100&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1539571696357-5a69c17a67c6?q=80&w=100&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1517841905240-472988babdf9?q=80&w=100&auto=format&fit=crop",
	}
	names = []string{
		"Alex", "Jordan", "Taylor", "Riley", "Casey", "Morgan", "Jamie",
		"Avery", "Quinn", "Skyler", "Dakota", "Reese", "Parker", "Hayden",
	}
	personalities = []string{
		"Introverted", "Extroverted", "Creative", "Analytical",
		"Adventurous", "Cautious", "Organized", "Spontaneous",
		"Empathetic", "Logical", "Ambitious", "Relaxed",
	}
	hobbies = []string{
		"Reading", "Gaming", "Sports", "Music", "Art", "Cooking",
		"Hiking", "Travel", "Photography", "Writing", "Dancing", "Yoga",
		"Meditation", "Gardening", "Coding", "Crafting",
	}
	lastActive = []string{
		"Just now", "5 minutes ago", "30 minutes ago", "1 hour ago",
		"2 hours ago", "Today", "Yesterday",
	}
)

// FallbackRecommendations generates recommendations locally. The same profile always yields the
// same friends, so a failed remote call does not reshuffle the list on every retry.
func FallbackRecommendations(p model.UserProfile) []model.Friend {
	r := rand.New(rand.NewPCG(profileSeed(p)))
	out := make([]model.Friend, 0, RecommendationCount)
	for i := range RecommendationCount {
		traits := pickDistinct(r, personalities, nil, 2+r.IntN(2))
		var seed []string
		if len(p.Hobbies) > 0 {
			seed = []string{p.Hobbies[r.IntN(len(p.Hobbies))]}
		}
		hs := pickDistinct(r, hobbies, seed, 2+r.IntN(2))
		out = append(out, model.Friend{
			ID:          fmt.Sprintf("rec%d", i+1),
			Name:        names[r.IntN(len(names))],
			Avatar:      avatars[r.IntN(len(avatars))],
			AgeRange:    p.AgeRange,
			Personality: traits,
			Hobbies:     hs,
			MatchReason: MatchReason(p, traits, hs),
			LastActive:  lastActive[r.IntN(len(lastActive))],
			Messages:    []model.Message{},
		})
	}
	return out
}

// MatchReason explains a recommendation: a shared hobby first, then a shared trait, then age.
func MatchReason(p model.UserProfile, traits, hs []string) string {
	for _, h := range hs {
		if slices.Contains(p.Hobbies, h) {
			return "You both enjoy " + h
		}
	}
	for _, t := range p.Personality {
		if slices.Contains(traits, t) {
			return "You're both " + t
		}
	}
	return fmt.Sprintf("Similar %s age group", p.AgeRange)
}

func pickDistinct(r *rand.Rand, pool, start []string, n int) []string {
	out := append([]string(nil), start...)
	for len(out) < n {
		v := pool[r.IntN(len(pool))]
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func profileSeed(p model.UserProfile) (uint64, uint64) {
	h := fnv.New64a()
	for _, part := range [][]string{
		{p.Name, p.AgeRange},
		p.Personality, p.Hobbies, p.MusicTaste, p.EmotionalNeeds, p.CommonMoods, p.LearningStyle,
	} {
		_, _ = h.Write([]byte(strings.Join(part, "\x1f")))
		_, _ = h.Write([]byte{0})
	}
	s := h.Sum64()
	return s, s ^ 0x9e3779b97f4a7c15
}
