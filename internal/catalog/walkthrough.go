package catalog

import (
	"fmt"

	"github.com/and161185/mindmates/internal/model"
)

// Walkthrough renders interactive content as ordered instruction lines.
// The final line is always the benefit statement.
func Walkthrough(c model.InteractiveContent) []string {
	var lines []string
	var benefits string
	switch v := c.(type) {
	case model.BreathingExercise:
		lines = append(lines, fmt.Sprintf("Pattern: %s", v.Pattern), v.Instructions)
		benefits = v.Benefits
	case model.SensoryAwareness:
		for _, s := range v.Steps {
			lines = append(lines, fmt.Sprintf("%s (%d): %s", s.Sense, s.Count, s.Instruction))
		}
		benefits = v.Benefits
	case model.JournalPrompt:
		lines = append(lines, v.Prompts...)
		benefits = v.Benefits
	case model.GuidedMovement:
		for _, s := range v.Steps {
			lines = append(lines, fmt.Sprintf("%s, %ds: %s", s.Position, s.Duration, s.Instruction))
		}
		benefits = v.Benefits
	case model.GuidedMeditation:
		for _, s := range v.Steps {
			lines = append(lines, fmt.Sprintf("%s, %ds: %s", s.BodyPart, s.Duration, s.Instruction))
		}
		benefits = v.Benefits
	case model.WordGame:
		lines = append(lines, v.Instructions)
		for _, w := range v.StartWords {
			lines = append(lines, "Start with: "+w)
		}
		benefits = v.Benefits
	case model.MessagePrompt:
		lines = append(lines, v.Prompts...)
		benefits = v.Benefits
	case model.WritingExercise:
		lines = append(lines, v.Prompts...)
		lines = append(lines, v.Template)
		benefits = v.Benefits
	case nil:
		return nil
	default:
		panic(fmt.Sprintf("catalog: unhandled content %T", c))
	}
	return append(lines, "Why it helps: "+benefits)
}
