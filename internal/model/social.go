package model

import "time"

// Sender identifies the author of a message in a friend thread.
type Sender string

const (
	SenderUser   Sender = "user"
	SenderFriend Sender = "friend"
)

// Message is a single entry of an append-only thread.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content" validate:"required,max=4000"`
	IsAudio   bool      `json:"isAudio"`
	Timestamp time.Time `json:"timestamp"`
	Sender    Sender    `json:"sender" validate:"omitempty,oneof=user friend"`
}

// Friend is either an accepted friend or a recommendation.
type Friend struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Avatar       string     `json:"avatar"`
	AgeRange     string     `json:"ageRange"`
	Personality  []string   `json:"personality"`
	Hobbies      []string   `json:"hobbies"`
	MatchReason  string     `json:"matchReason"`
	LastActive   string     `json:"lastActive,omitempty"`
	LastPokeTime *time.Time `json:"lastPokeTime,omitempty"`
	Messages     []Message  `json:"messages"`
}
