// Package catalog holds the static challenge, mini-game and achievement catalogs and the
// operations that mutate a user's game document.
package catalog

import "github.com/and161185/mindmates/internal/model"

// Challenges returns a fresh copy of the challenge catalog.
func Challenges() []model.Challenge {
	return []model.Challenge{
		{
			ID:          "breathing_1",
			Title:       "Deep Breathing",
			Description: "Practice deep breathing for 2 minutes to calm your mind",
			Category:    model.CategoryBreathing,
			Duration:    2,
			Points:      10,
			Unlocked:    true,
			Icon:        "wind",
			Content: model.Content{Value: model.BreathingExercise{
				Pattern:      "4-7-8",
				Instructions: "Inhale for 4 seconds, hold for 7 seconds, exhale for 8 seconds. Repeat 5 times.",
				Benefits:     "Reduces anxiety and helps you fall asleep faster",
			}},
		},
		{
			ID:          "mindfulness_1",
			Title:       "Present Moment",
			Description: "Focus on your surroundings and notice 5 things you can see, 4 things you can touch, 3 things you can hear, 2 things you can smell, and 1 thing you can taste",
			Category:    model.CategoryMindfulness,
			Duration:    5,
			Points:      15,
			Unlocked:    true,
			Icon:        "eye",
			Content: model.Content{Value: model.SensoryAwareness{
				Steps: []model.SenseStep{
					{Sense: "see", Count: 5, Instruction: "Find 5 things you can see right now"},
					{Sense: "touch", Count: 4, Instruction: "Notice 4 things you can feel"},
					{Sense: "hear", Count: 3, Instruction: "Listen for 3 distinct sounds"},
					{Sense: "smell", Count: 2, Instruction: "Identify 2 scents around you"},
					{Sense: "taste", Count: 1, Instruction: "Notice 1 taste in your mouth"},
				},
				Benefits: "Grounds you in the present moment and reduces anxiety",
			}},
		},
		{
			ID:          "gratitude_1",
			Title:       "Gratitude Journal",
			Description: "Write down 3 things you're grateful for today",
			Category:    model.CategoryGratitude,
			Duration:    3,
			Points:      10,
			Unlocked:    true,
			Icon:        "heart",
			Content: model.Content{Value: model.JournalPrompt{
				Prompts: []string{
					"What's something small that brought you joy today?",
					"Who is someone you're thankful to have in your life?",
					"What's something about your body or health you appreciate?",
				},
				Benefits: "Increases positive emotions and improves outlook on life",
			}},
		},
		{
			ID:          "physical_1",
			Title:       "Quick Stretch",
			Description: "Do a quick full-body stretch to release tension",
			Category:    model.CategoryPhysical,
			Duration:    3,
			Points:      10,
			Unlocked:    true,
			Icon:        "activity",
			Content: model.Content{Value: model.GuidedMovement{
				Steps: []model.MovementStep{
					{Position: "Neck Rolls", Duration: 30, Instruction: "Gently roll your neck in circles, 5 times each direction"},
					{Position: "Shoulder Stretch", Duration: 30, Instruction: "Roll shoulders back and forth, then stretch arms overhead"},
					{Position: "Side Stretch", Duration: 30, Instruction: "Reach arm overhead and lean to each side"},
					{Position: "Forward Fold", Duration: 30, Instruction: "Bend forward from hips, letting arms hang down"},
					{Position: "Gentle Twist", Duration: 30, Instruction: "Sitting or standing, gently twist torso to each side"},
				},
				Benefits: "Releases physical tension which helps reduce mental stress",
			}},
		},
		{
			ID:          "cognitive_1",
			Title:       "Word Association",
			Description: "Play a quick word association game to stimulate your brain",
			Category:    model.CategoryCognitive,
			Duration:    2,
			Points:      10,
			Unlocked:    true,
			Icon:        "brain",
			Content: model.Content{Value: model.WordGame{
				StartWords:   []string{"blue", "happy", "tree", "music", "dream", "water", "light"},
				Instructions: "For each word, quickly think of a related word. Try to create a chain of 10 associated words.",
				Benefits:     "Activates creative thinking and improves cognitive flexibility",
			}},
		},
		{
			ID:          "social_1",
			Title:       "Reach Out",
			Description: "Send a positive message to a friend or family member",
			Category:    model.CategorySocial,
			Duration:    2,
			Points:      15,
			Unlocked:    true,
			Icon:        "message-circle",
			Content: model.Content{Value: model.MessagePrompt{
				Prompts: []string{
					"Share a memory that made you smile",
					"Tell someone why you appreciate them",
					"Ask how someone is doing and really listen",
					"Share something interesting you learned recently",
					"Send an encouraging note to someone who might need it",
				},
				Benefits: "Strengthens social connections which are vital for mental health",
			}},
		},
		{
			ID:          "breathing_2",
			Title:       "Box Breathing",
			Description: "Practice box breathing: inhale for 4 counts, hold for 4, exhale for 4, hold for 4",
			Category:    model.CategoryBreathing,
			Duration:    4,
			Points:      15,
			Icon:        "square",
			Content: model.Content{Value: model.BreathingExercise{
				Pattern:      "box",
				Instructions: "Inhale for 4 seconds, hold for 4 seconds, exhale for 4 seconds, hold for 4 seconds. Repeat 6 times.",
				Benefits:     "Used by Navy SEALs to remain calm under pressure and improve focus",
			}},
		},
		{
			ID:          "mindfulness_2",
			Title:       "Body Scan",
			Description: "Perform a body scan meditation, focusing on each part of your body",
			Category:    model.CategoryMindfulness,
			Duration:    7,
			Points:      20,
			Icon:        "scan",
			Content: model.Content{Value: model.GuidedMeditation{
				Steps: []model.MeditationStep{
					{BodyPart: "Feet", Duration: 30, Instruction: "Notice any sensations in your feet without judgment"},
					{BodyPart: "Legs", Duration: 30, Instruction: "Bring awareness to your legs, noticing any tension"},
					{BodyPart: "Torso", Duration: 30, Instruction: "Feel your breath in your chest and abdomen"},
					{BodyPart: "Arms", Duration: 30, Instruction: "Notice sensations in your arms and hands"},
					{BodyPart: "Shoulders", Duration: 30, Instruction: "Release any tension in your shoulders"},
					{BodyPart: "Neck", Duration: 30, Instruction: "Gently notice your neck and throat"},
					{BodyPart: "Face", Duration: 30, Instruction: "Relax all the muscles in your face"},
					{BodyPart: "Whole Body", Duration: 60, Instruction: "Feel your entire body as one"},
				},
				Benefits: "Reduces stress by bringing awareness to physical sensations without judgment",
			}},
		},
		{
			ID:          "gratitude_2",
			Title:       "Thank You Note",
			Description: "Write a thank you note to someone who has helped you recently",
			Category:    model.CategoryGratitude,
			Duration:    5,
			Points:      20,
			Icon:        "pen",
			Content: model.Content{Value: model.WritingExercise{
				Prompts: []string{
					"Who has helped you recently that you haven't properly thanked?",
					"What specifically did they do that you appreciate?",
					"How did their action affect you?",
					"What qualities do you value in this person?",
				},
				Template: "Dear [Name],\n\nI wanted to take a moment to thank you for [what they did]. " +
					"When you [specific action], it made me feel [how it affected you]. " +
					"I really appreciate your [quality] and wanted you to know the difference you've made.\n\n" +
					"Thank you,\n[Your Name]",
				Benefits: "Expressing gratitude increases happiness for both the giver and receiver",
			}},
		},
		{
			ID:          "physical_2",
			Title:       "Power Pose",
			Description: "Stand in a power pose for 2 minutes to boost confidence",
			Category:    model.CategoryPhysical,
			Duration:    2,
			Points:      10,
			Icon:        "user",
			Content: model.Content{Value: model.GuidedMovement{
				Steps: []model.MovementStep{
					{Position: "Wonder Woman", Duration: 60, Instruction: "Stand with feet hip-width apart, hands on hips, chest open"},
					{Position: "Victory", Duration: 60, Instruction: "Stand tall with arms raised in a V shape above your head"},
				},
				Benefits: "Research suggests power poses can increase confidence and reduce stress hormones",
			}},
		},
	}
}
