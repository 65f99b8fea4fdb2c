package model

import "time"

// ChallengeCategory groups challenges.
type ChallengeCategory string

const (
	CategoryBreathing   ChallengeCategory = "breathing"
	CategoryMindfulness ChallengeCategory = "mindfulness"
	CategoryGratitude   ChallengeCategory = "gratitude"
	CategoryPhysical    ChallengeCategory = "physical"
	CategoryCognitive   ChallengeCategory = "cognitive"
	CategorySocial      ChallengeCategory = "social"
)

// GameCategory groups mini-games.
type GameCategory string

const (
	GameFocus          GameCategory = "focus"
	GameMemory         GameCategory = "memory"
	GameCreativity     GameCategory = "creativity"
	GameProblemSolving GameCategory = "problem-solving"
	GameEmotional      GameCategory = "emotional"
)

// Difficulty of a mini-game.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Challenge is a short wellness activity. Duration is in minutes.
type Challenge struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    ChallengeCategory `json:"type"`
	Duration    int               `json:"duration"`
	Points      int               `json:"points"`
	Completed   bool              `json:"completed"`
	Unlocked    bool              `json:"unlocked"`
	Icon        string            `json:"icon"`
	Content     Content           `json:"interactiveContent,omitzero"`
}

// MiniGame is a scored game. HighScore never decreases outside of a reset.
type MiniGame struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    GameCategory `json:"type"`
	Difficulty  Difficulty   `json:"difficulty"`
	Duration    int          `json:"duration"`
	Points      int          `json:"points"`
	HighScore   int          `json:"highScore"`
	Icon        string       `json:"icon"`
	Unlocked    bool         `json:"unlocked"`
}

// Achievement tracks progress toward a milestone. Once unlocked it stays unlocked.
type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Unlocked    bool       `json:"unlocked"`
	Progress    int        `json:"progress"`
	Total       int        `json:"total"`
	Date        *time.Time `json:"date,omitempty"`
}

// GameState is the persisted "game" document.
type GameState struct {
	Challenges             []Challenge               `json:"challenges"`
	MiniGames              []MiniGame                `json:"miniGames"`
	Achievements           []Achievement             `json:"achievements"`
	DailyChallenges        []Challenge               `json:"dailyChallenges"`
	LastDailyChallengeDate string                    `json:"lastDailyChallengeDate,omitempty"`
	CategoryCompletions    map[ChallengeCategory]int `json:"categoryCompletions,omitempty"`
}
