package validator

import (
	"fmt"

	apperrors "github.com/AshishSharma-0610/form-builder/internal/errors"
	"github.com/AshishSharma-0610/form-builder/internal/models"
)

// ValidateAnswers checks a submitted answer set against the form it
// answers: every key must address a question, and every value must
// decode to the canonical shape for that question's type and reference
// only items, categories, slots and options the question defines.
// Questions left unanswered are fine.
func (v *QuestionValidator) ValidateAnswers(form *models.Form, answers models.AnswerSet) error {
	var errs apperrors.ValidationErrors

	for index, raw := range answers {
		field := fmt.Sprintf("answers[%d]", index)
		if index < 0 || index >= len(form.Questions) {
			errs = append(errs, *apperrors.NewValidationError(field, "does not address a question in this form", index))
			continue
		}

		question := form.Questions[index]
		decoded, err := models.DecodeAnswer(question, raw)
		if err != nil {
			errs = append(errs, *apperrors.NewValidationError(field, err.Error(), nil))
			continue
		}

		switch answer := decoded.(type) {
		case models.CategorizeAnswer:
			errs = append(errs, validateCategorizeAnswer(field, question, answer)...)
		case models.ClozeAnswer:
			errs = append(errs, validateClozeAnswer(field, question, answer)...)
		case models.ComprehensionAnswer:
			errs = append(errs, validateComprehensionAnswer(field, question, answer)...)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateCategorizeAnswer(field string, q models.Question, answer models.CategorizeAnswer) apperrors.ValidationErrors {
	opts := q.Options.(*models.CategorizeOptions)

	items := make(map[string]bool, len(opts.Items))
	for _, it := range opts.Items {
		items[it] = true
	}
	categories := make(map[string]bool, len(opts.Categories))
	for _, c := range opts.Categories {
		categories[c] = true
	}

	var errs apperrors.ValidationErrors
	for item, category := range answer {
		if !items[item] {
			errs = append(errs, *apperrors.NewValidationError(field, "placed an item the question does not define", item))
		}
		if !categories[category] {
			errs = append(errs, *apperrors.NewValidationError(field, "placed into a category the question does not define", category))
		}
	}
	return errs
}

func validateClozeAnswer(field string, q models.Question, answer models.ClozeAnswer) apperrors.ValidationErrors {
	opts := q.Options.(*models.ClozeOptions)
	parts := models.SplitSentence(opts.Sentence)

	var errs apperrors.ValidationErrors
	for slot := range answer {
		if !models.IsSlotIndex(parts, slot) {
			errs = append(errs, *apperrors.NewValidationError(field, "keyed by an index that is not a fillable slot", slot))
		}
	}
	return errs
}

func validateComprehensionAnswer(field string, q models.Question, answer models.ComprehensionAnswer) apperrors.ValidationErrors {
	opts := q.Options.(*models.ComprehensionOptions)

	if len(answer) != len(opts.MCQQuestions) {
		return apperrors.ValidationErrors{
			*apperrors.NewValidationError(field,
				fmt.Sprintf("must have one entry per mcq question (%d)", len(opts.MCQQuestions)), len(answer)),
		}
	}

	var errs apperrors.ValidationErrors
	for i, choice := range answer {
		if choice == "" {
			continue
		}
		if !isOptionIndex(choice) {
			errs = append(errs, *apperrors.NewValidationError(
				fmt.Sprintf("%s[%d]", field, i), "must be an option index between 0 and 3 or empty", choice))
		}
	}
	return errs
}

func isOptionIndex(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] < '0'+models.MCQOptionCount
}
