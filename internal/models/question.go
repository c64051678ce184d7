package models

import (
	"encoding/json"
	"fmt"
)

type QuestionType string

const (
	Categorize    QuestionType = "Categorize"
	Cloze         QuestionType = "Cloze"
	Comprehension QuestionType = "Comprehension"
)

// IsValid reports whether t is one of the three supported question types.
func (t QuestionType) IsValid() bool {
	switch t {
	case Categorize, Cloze, Comprehension:
		return true
	}
	return false
}

// QuestionOptions is the type-specific authoring payload of a question.
// Exactly one concrete implementation exists per question type.
type QuestionOptions interface {
	QuestionType() QuestionType
}

// Question is one typed prompt within a form. The Options payload shape
// is determined by Type; decoding rejects unknown type tags.
type Question struct {
	Type     QuestionType    `json:"type"`
	Question string          `json:"question"`
	Image    string          `json:"image,omitempty"`
	Options  QuestionOptions `json:"options"`
}

// NewQuestion returns an empty question of the given type with its
// default options payload, matching what the editor starts from.
func NewQuestion(t QuestionType) (Question, error) {
	opts, err := NewQuestionOptions(t)
	if err != nil {
		return Question{}, err
	}
	return Question{Type: t, Options: opts}, nil
}

// NewQuestionOptions returns the default (empty) options value for the
// given question type.
func NewQuestionOptions(t QuestionType) (QuestionOptions, error) {
	switch t {
	case Categorize:
		return NewCategorizeOptions(), nil
	case Cloze:
		return NewClozeOptions(""), nil
	case Comprehension:
		return NewComprehensionOptions(), nil
	default:
		return nil, fmt.Errorf("unknown question type %q", string(t))
	}
}

func (q *Question) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type     QuestionType    `json:"type"`
		Question string          `json:"question"`
		Image    string          `json:"image"`
		Options  json.RawMessage `json:"options"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !raw.Type.IsValid() {
		return fmt.Errorf("unknown question type %q", string(raw.Type))
	}

	opts, err := decodeOptions(raw.Type, raw.Options)
	if err != nil {
		return fmt.Errorf("decode %s options: %w", raw.Type, err)
	}

	q.Type = raw.Type
	q.Question = raw.Question
	q.Image = raw.Image
	q.Options = opts
	return nil
}

func decodeOptions(t QuestionType, raw json.RawMessage) (QuestionOptions, error) {
	// Freshly added questions carry an empty options object.
	if len(raw) == 0 || string(raw) == "null" {
		return NewQuestionOptions(t)
	}

	switch t {
	case Categorize:
		opts := NewCategorizeOptions()
		if err := json.Unmarshal(raw, opts); err != nil {
			return nil, err
		}
		return opts, nil
	case Cloze:
		opts := &ClozeOptions{}
		if err := json.Unmarshal(raw, opts); err != nil {
			return nil, err
		}
		return opts, nil
	case Comprehension:
		opts := NewComprehensionOptions()
		if err := json.Unmarshal(raw, opts); err != nil {
			return nil, err
		}
		return opts, nil
	default:
		return nil, fmt.Errorf("unknown question type %q", string(t))
	}
}
