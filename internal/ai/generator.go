package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"
	"go.uber.org/zap"

	"github.com/and161185/mindmates/internal/journal"
	"github.com/and161185/mindmates/internal/model"
	"github.com/and161185/mindmates/internal/social"
)

// PromptCache stores generated prompts. Implementations must be safe for concurrent use.
type PromptCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// PromptTTL bounds how long a generated prompt is reused.
const PromptTTL = 24 * time.Hour

// Generator produces personalized content with local fallbacks.
type Generator struct {
	llm   Completer
	cache PromptCache
	log   *zap.Logger
}

// NewGenerator constructs a Generator. cache and log may be nil.
func NewGenerator(llm Completer, cache PromptCache, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{llm: llm, cache: cache, log: log}
}

// JournalPrompt returns a personalized prompt, reusing one generated earlier the same day for
// the same mood. Failures fall back to a random static prompt.
func (g *Generator) JournalPrompt(ctx context.Context, userID string, p model.UserProfile, mood *model.Mood, now time.Time) Outcome[string] {
	key := promptKey(userID, now, mood)
	if g.cache != nil {
		if v, ok, err := g.cache.Get(ctx, key); err == nil && ok {
			return Outcome[string]{Value: v, Source: SourceModel}
		} else if err != nil {
			g.log.Warn("prompt cache get", zap.Error(err))
		}
	}

	text, err := g.llm.Complete(ctx, promptSystem, personalizedPrompt(p, mood))
	out := Resolve(text, err, journal.RandomPrompt)
	if out.Fallback() {
		g.log.Warn("journal prompt fallback", zap.Error(out.Err))
		return out
	}
	if g.cache != nil {
		if err := g.cache.Set(ctx, key, out.Value, PromptTTL); err != nil {
			g.log.Warn("prompt cache set", zap.Error(err))
		}
	}
	return out
}

// FriendRecommendations asks the model for a JSON array of friends. Malformed JSON is repaired
// before decoding; anything unusable falls back to the deterministic local generator.
func (g *Generator) FriendRecommendations(ctx context.Context, p model.UserProfile) Outcome[[]model.Friend] {
	text, err := g.llm.Complete(ctx, recommendSystem, recommendPrompt(p))
	var friends []model.Friend
	if err == nil {
		friends, err = decodeFriends(text, p)
	}
	out := Resolve(friends, err, func() []model.Friend { return social.FallbackRecommendations(p) })
	if out.Fallback() {
		g.log.Warn("friend recommendations fallback", zap.Error(out.Err))
	}
	return out
}

func decodeFriends(text string, p model.UserProfile) ([]model.Friend, error) {
	raw := extractJSONArray(text)
	var friends []model.Friend
	if err := json.Unmarshal([]byte(raw), &friends); err != nil {
		fixed, rerr := jsonrepair.JSONRepair(raw)
		if rerr != nil {
			return nil, fmt.Errorf("repair recommendations: %w", rerr)
		}
		if err := json.Unmarshal([]byte(fixed), &friends); err != nil {
			return nil, fmt.Errorf("decode recommendations: %w", err)
		}
	}
	out := make([]model.Friend, 0, len(friends))
	for i, f := range friends {
		if strings.TrimSpace(f.Name) == "" {
			continue
		}
		if f.ID == "" {
			f.ID = fmt.Sprintf("rec%d", i+1)
		}
		if f.AgeRange == "" {
			f.AgeRange = p.AgeRange
		}
		if f.MatchReason == "" {
			f.MatchReason = social.MatchReason(p, f.Personality, f.Hobbies)
		}
		f.LastPokeTime = nil
		f.Messages = []model.Message{}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("decode recommendations: no usable friends")
	}
	return out, nil
}

// extractJSONArray cuts the outermost [...] out of a chatty completion.
func extractJSONArray(s string) string {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 {
		return s
	}
	if end < start {
		return s[start:]
	}
	return s[start : end+1]
}

func promptKey(userID string, now time.Time, mood *model.Mood) string {
	moodID := "none"
	if mood != nil {
		moodID = mood.ID
	}
	return "prompt:" + userID + ":" + model.DateOf(now) + ":" + moodID
}
