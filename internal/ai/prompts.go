package ai

import (
	"fmt"
	"strings"

	"github.com/and161185/mindmates/internal/model"
)

const promptSystem = `You are a thoughtful mental health assistant that creates personalized journal prompts.
Create a single, specific journal prompt that feels personal and relevant to the user based on their profile data.
The prompt should be concise (1-2 sentences), thought-provoking, and encouraging.
Do not include any explanations, just return the prompt itself.`

const recommendSystem = `You match people who could support each other's wellbeing.
Answer with a JSON array only, no prose.`

func orDefault(v []string, def string) string {
	if len(v) == 0 {
		return def
	}
	return strings.Join(v, ", ")
}

func personalizedPrompt(p model.UserProfile, mood *model.Mood) string {
	name := p.Name
	if name == "" {
		name = "User"
	}
	age := p.AgeRange
	if age == "" {
		age = "Adult"
	}
	var b strings.Builder
	b.WriteString("Based on this user profile, create a personalized journal prompt:\n")
	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Age Range: %s\n", age)
	fmt.Fprintf(&b, "Personality: %s\n", orDefault(p.Personality, "Unknown"))
	fmt.Fprintf(&b, "Hobbies: %s\n", orDefault(p.Hobbies, "Various activities"))
	fmt.Fprintf(&b, "Music Taste: %s\n", orDefault(p.MusicTaste, "Various genres"))
	fmt.Fprintf(&b, "Emotional Needs: %s\n", orDefault(p.EmotionalNeeds, "Balance and growth"))
	fmt.Fprintf(&b, "Common Moods: %s\n", orDefault(p.CommonMoods, "Various moods"))
	fmt.Fprintf(&b, "Learning Style: %s\n", orDefault(p.LearningStyle, "Mixed"))

	if mood != nil {
		fmt.Fprintf(&b, "Current Mood: %s (%s)\n", mood.Name, mood.Emoji)
		b.WriteString(moodGuidance(mood.ID))
	}
	b.WriteString("Make the prompt personal by incorporating their specific interests, personality traits, or emotional needs.")
	return b.String()
}

func moodGuidance(id string) string {
	switch id {
	case "sad", "anxious":
		return "The user is feeling down or anxious, so create a gentle, supportive prompt that acknowledges " +
			"these feelings while encouraging reflection on small positives or sources of strength.\n"
	case "happy", "excited":
		return "The user is feeling positive, so create a prompt that helps them explore and build on these good feelings.\n"
	case "neutral":
		return "The user is feeling neutral, so create a prompt that helps them explore their current state of mind with curiosity.\n"
	}
	return ""
}

func recommendPrompt(p model.UserProfile) string {
	var b strings.Builder
	b.WriteString("Generate 5 friend recommendations for a user with the following profile:\n")
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Age Range: %s\n", p.AgeRange)
	fmt.Fprintf(&b, "Personality: %s\n", strings.Join(p.Personality, ", "))
	fmt.Fprintf(&b, "Hobbies: %s\n", strings.Join(p.Hobbies, ", "))
	fmt.Fprintf(&b, "Music Taste: %s\n", strings.Join(p.MusicTaste, ", "))
	fmt.Fprintf(&b, "Emotional Needs: %s\n", strings.Join(p.EmotionalNeeds, ", "))
	fmt.Fprintf(&b, "Common Moods: %s\n", strings.Join(p.CommonMoods, ", "))
	fmt.Fprintf(&b, "Learning Style: %s\n\n", strings.Join(p.LearningStyle, ", "))
	b.WriteString(`For each friend provide an object with keys "id", "name", "ageRange" (similar to the user's), ` +
		`"personality" (2-3 traits), "hobbies" (2-3), "matchReason" (why they are a good match) ` +
		`and "lastActive" (e.g. "2 hours ago", "Just now").`)
	return b.String()
}
