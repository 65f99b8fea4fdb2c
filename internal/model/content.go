package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ContentType is the discriminator of interactive challenge content.
type ContentType string

const (
	ContentBreathingExercise ContentType = "breathing-exercise"
	ContentSensoryAwareness  ContentType = "sensory-awareness"
	ContentJournalPrompt     ContentType = "journal-prompt"
	ContentGuidedMovement    ContentType = "guided-movement"
	ContentGuidedMeditation  ContentType = "guided-meditation"
	ContentWordGame          ContentType = "word-game"
	ContentMessagePrompt     ContentType = "message-prompt"
	ContentWritingExercise   ContentType = "writing-exercise"
)

// InteractiveContent is implemented only by the content variants of this package.
type InteractiveContent interface {
	ContentType() ContentType
	isInteractiveContent()
}

// BreathingExercise is a paced breathing pattern such as "4-7-8" or "box".
type BreathingExercise struct {
	Pattern      string `json:"pattern"`
	Instructions string `json:"instructions"`
	Benefits     string `json:"benefits"`
}

// SenseStep asks the user to notice Count things with one sense.
type SenseStep struct {
	Sense       string `json:"sense"`
	Count       int    `json:"count"`
	Instruction string `json:"instruction"`
}

// SensoryAwareness is a grounding exercise over the five senses.
type SensoryAwareness struct {
	Steps    []SenseStep `json:"steps"`
	Benefits string      `json:"benefits"`
}

// JournalPrompt is a list of writing prompts.
type JournalPrompt struct {
	Prompts  []string `json:"prompts"`
	Benefits string   `json:"benefits"`
}

// MovementStep is a timed position. Duration is in seconds.
type MovementStep struct {
	Position    string `json:"position"`
	Duration    int    `json:"duration"`
	Instruction string `json:"instruction"`
}

// GuidedMovement is a sequence of timed positions.
type GuidedMovement struct {
	Steps    []MovementStep `json:"steps"`
	Benefits string         `json:"benefits"`
}

// MeditationStep focuses on one body part. Duration is in seconds.
type MeditationStep struct {
	BodyPart    string `json:"bodyPart"`
	Duration    int    `json:"duration"`
	Instruction string `json:"instruction"`
}

// GuidedMeditation is a body scan.
type GuidedMeditation struct {
	Steps    []MeditationStep `json:"steps"`
	Benefits string           `json:"benefits"`
}

// WordGame is a word association game.
type WordGame struct {
	StartWords   []string `json:"startWords"`
	Instructions string   `json:"instructions"`
	Benefits     string   `json:"benefits"`
}

// MessagePrompt suggests messages to send to someone.
type MessagePrompt struct {
	Prompts  []string `json:"prompts"`
	Benefits string   `json:"benefits"`
}

// WritingExercise is a guided letter with a fill-in template.
type WritingExercise struct {
	Prompts  []string `json:"prompts"`
	Template string   `json:"template"`
	Benefits string   `json:"benefits"`
}

func (BreathingExercise) ContentType() ContentType { return ContentBreathingExercise }
func (SensoryAwareness) ContentType() ContentType  { return ContentSensoryAwareness }
func (JournalPrompt) ContentType() ContentType     { return ContentJournalPrompt }
func (GuidedMovement) ContentType() ContentType    { return ContentGuidedMovement }
func (GuidedMeditation) ContentType() ContentType  { return ContentGuidedMeditation }
func (WordGame) ContentType() ContentType          { return ContentWordGame }
func (MessagePrompt) ContentType() ContentType     { return ContentMessagePrompt }
func (WritingExercise) ContentType() ContentType   { return ContentWritingExercise }

func (BreathingExercise) isInteractiveContent() {}
func (SensoryAwareness) isInteractiveContent()  {}
func (JournalPrompt) isInteractiveContent()     {}
func (GuidedMovement) isInteractiveContent()    {}
func (GuidedMeditation) isInteractiveContent()  {}
func (WordGame) isInteractiveContent()          {}
func (MessagePrompt) isInteractiveContent()     {}
func (WritingExercise) isInteractiveContent()   {}

// Content holds optional interactive content and encodes it as a JSON object tagged by "type".
type Content struct {
	Value InteractiveContent
}

// IsZero reports whether no content is attached.
func (c Content) IsZero() bool { return c.Value == nil }

// MarshalJSON writes the variant fields plus the "type" discriminator.
func (c Content) MarshalJSON() ([]byte, error) {
	if c.Value == nil {
		return []byte("null"), nil
	}
	body, err := json.Marshal(c.Value)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	fields["type"] = json.RawMessage(strconv.Quote(string(c.Value.ContentType())))
	return json.Marshal(fields)
}

// UnmarshalJSON selects the variant by the "type" discriminator.
func (c *Content) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		c.Value = nil
		return nil
	}
	var head struct {
		Type ContentType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	v, err := newContent(head.Type)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("content %s: %w", head.Type, err)
	}
	c.Value = derefContent(v)
	return nil
}

func newContent(t ContentType) (any, error) {
	switch t {
	case ContentBreathingExercise:
		return &BreathingExercise{}, nil
	case ContentSensoryAwareness:
		return &SensoryAwareness{}, nil
	case ContentJournalPrompt:
		return &JournalPrompt{}, nil
	case ContentGuidedMovement:
		return &GuidedMovement{}, nil
	case ContentGuidedMeditation:
		return &GuidedMeditation{}, nil
	case ContentWordGame:
		return &WordGame{}, nil
	case ContentMessagePrompt:
		return &MessagePrompt{}, nil
	case ContentWritingExercise:
		return &WritingExercise{}, nil
	default:
		return nil, fmt.Errorf("unknown content type %q", t)
	}
}

func derefContent(v any) InteractiveContent {
	switch p := v.(type) {
	case *BreathingExercise:
		return *p
	case *SensoryAwareness:
		return *p
	case *JournalPrompt:
		return *p
	case *GuidedMovement:
		return *p
	case *GuidedMeditation:
		return *p
	case *WordGame:
		return *p
	case *MessagePrompt:
		return *p
	case *WritingExercise:
		return *p
	}
	return nil
}
