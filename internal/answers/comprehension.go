package answers

import (
	"fmt"
	"strconv"

	"github.com/AshishSharma-0610/form-builder/internal/models"
)

// ComprehensionSelection tracks the chosen option per MCQ. The answer
// slice always has one entry per MCQ, initialized to empty strings, so
// its length never depends on how many questions were answered.
type ComprehensionSelection struct {
	mcqs   []models.MCQQuestion
	answer models.ComprehensionAnswer
}

func NewComprehensionSelection(opts models.ComprehensionOptions) *ComprehensionSelection {
	return &ComprehensionSelection{
		mcqs:   append([]models.MCQQuestion{}, opts.MCQQuestions...),
		answer: models.NewComprehensionAnswer(len(opts.MCQQuestions)),
	}
}

// Select records option choice for the MCQ at index i, overwriting any
// previous choice. Single select, no confirmation step.
func (s *ComprehensionSelection) Select(i, option int) error {
	if i < 0 || i >= len(s.mcqs) {
		return fmt.Errorf("mcq index %d out of range", i)
	}
	if option < 0 || option >= len(s.mcqs[i].Options) {
		return fmt.Errorf("option index %d out of range for mcq %d", option, i)
	}
	s.answer[i] = strconv.Itoa(option)
	return nil
}

// Answer returns the canonical answer slice, one entry per MCQ.
func (s *ComprehensionSelection) Answer() models.ComprehensionAnswer {
	return append(models.ComprehensionAnswer{}, s.answer...)
}
