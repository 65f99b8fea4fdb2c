package catalog

import "github.com/and161185/mindmates/internal/model"

// MiniGames returns a fresh copy of the mini-game catalog.
func MiniGames() []model.MiniGame {
	return []model.MiniGame{
		{ID: "memory_match", Name: "Memory Match", Description: "Match pairs of cards to test your memory",
			Category: model.GameMemory, Difficulty: model.DifficultyEasy, Duration: 3, Points: 15, Icon: "grid", Unlocked: true},
		{ID: "focus_flow", Name: "Focus Flow", Description: "Follow the moving object and avoid distractions to improve concentration",
			Category: model.GameFocus, Difficulty: model.DifficultyMedium, Duration: 2, Points: 15, Icon: "target", Unlocked: true},
		{ID: "word_builder", Name: "Word Builder", Description: "Create as many words as possible from a set of letters",
			Category: model.GameCreativity, Difficulty: model.DifficultyMedium, Duration: 3, Points: 20, Icon: "type", Unlocked: true},
		{ID: "logic_puzzles_easy", Name: "Logic Puzzles: Easy", Description: "Solve simple logic puzzles to train your reasoning skills",
			Category: model.GameProblemSolving, Difficulty: model.DifficultyEasy, Duration: 2, Points: 15, Icon: "puzzle", Unlocked: true},
		{ID: "logic_puzzles_medium", Name: "Logic Puzzles: Medium", Description: "Challenge yourself with intermediate logic puzzles",
			Category: model.GameProblemSolving, Difficulty: model.DifficultyMedium, Duration: 4, Points: 25, Icon: "puzzle", Unlocked: true},
		{ID: "logic_puzzles_hard", Name: "Logic Puzzles: Hard", Description: "Test your limits with complex logic puzzles",
			Category: model.GameProblemSolving, Difficulty: model.DifficultyHard, Duration: 6, Points: 40, Icon: "puzzle"},
		{ID: "breathing_game", Name: "Breath Pacer", Description: "Follow the animated breathing guide to reduce stress and increase calm",
			Category: model.GameFocus, Difficulty: model.DifficultyEasy, Duration: 3, Points: 15, Icon: "wind", Unlocked: true},
		{ID: "gratitude_garden", Name: "Gratitude Garden", Description: "Grow a virtual garden by adding things you're grateful for",
			Category: model.GameEmotional, Difficulty: model.DifficultyEasy, Duration: 2, Points: 10, Icon: "flower", Unlocked: true},
	}
}
