package models

import "time"

// Form is the unit of authoring and distribution: a titled, ordered
// collection of questions. ID is assigned by the repository on first
// save and is zero before that. Question order is semantically
// meaningful (answers are keyed by position) and must survive
// save/load exactly.
type Form struct {
	ID          uint       `json:"id,omitempty"`
	Title       string     `json:"title"`
	HeaderImage string     `json:"headerImage,omitempty"`
	Questions   []Question `json:"questions"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// MoveQuestion swaps the question at index with its neighbor in the
// given direction and returns the reordered slice. It is a pure
// positional swap: moving the first question up or the last question
// down (or passing an out-of-range index) returns the input unchanged.
func MoveQuestion(questions []Question, index int, direction MoveDirection) []Question {
	if index < 0 || index >= len(questions) {
		return questions
	}

	var target int
	switch direction {
	case MoveUp:
		target = index - 1
	case MoveDown:
		target = index + 1
	default:
		return questions
	}
	if target < 0 || target >= len(questions) {
		return questions
	}

	out := make([]Question, len(questions))
	copy(out, questions)
	out[index], out[target] = out[target], out[index]
	return out
}

// MoveQuestion reorders the form's questions in place.
func (f *Form) MoveQuestion(index int, direction MoveDirection) {
	f.Questions = MoveQuestion(f.Questions, index, direction)
}

// AddQuestion appends an empty question of the given type.
func (f *Form) AddQuestion(t QuestionType) error {
	q, err := NewQuestion(t)
	if err != nil {
		return err
	}
	f.Questions = append(f.Questions, q)
	return nil
}
