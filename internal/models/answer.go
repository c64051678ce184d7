package models

import (
	"encoding/json"
	"fmt"
)

// CategorizeAnswer maps an item to the bucket the respondent placed it
// in. Items still unplaced are absent.
type CategorizeAnswer map[string]string

// ClozeAnswer maps a fillable slot to the word dropped there. Keys are
// indices into the SplitSentence result (the odd, placeholder
// positions), not blank ordinals; unfilled slots are absent.
type ClozeAnswer map[int]string

// ComprehensionAnswer holds one entry per MCQ: the chosen option index
// as text, or an empty string while unanswered.
type ComprehensionAnswer []string

// NewComprehensionAnswer returns an answer of the given length with
// every entry unanswered.
func NewComprehensionAnswer(n int) ComprehensionAnswer {
	return make(ComprehensionAnswer, n)
}

// AnswerSet is a response's raw per-question answers keyed by question
// index. Values are decoded against the referenced form's question
// types via DecodeAnswer.
type AnswerSet map[int]json.RawMessage

// DecodeAnswer decodes a raw answer into the canonical shape for the
// question's type.
func DecodeAnswer(q Question, raw json.RawMessage) (interface{}, error) {
	switch q.Type {
	case Categorize:
		var ans CategorizeAnswer
		if err := json.Unmarshal(raw, &ans); err != nil {
			return nil, fmt.Errorf("categorize answer: %w", err)
		}
		return ans, nil
	case Cloze:
		var ans ClozeAnswer
		if err := json.Unmarshal(raw, &ans); err != nil {
			return nil, fmt.Errorf("cloze answer: %w", err)
		}
		return ans, nil
	case Comprehension:
		var ans ComprehensionAnswer
		if err := json.Unmarshal(raw, &ans); err != nil {
			return nil, fmt.Errorf("comprehension answer: %w", err)
		}
		return ans, nil
	default:
		return nil, fmt.Errorf("unknown question type %q", string(q.Type))
	}
}
