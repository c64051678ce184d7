package validator

import (
	"fmt"
	"strings"

	apperrors "github.com/AshishSharma-0610/form-builder/internal/errors"
	"github.com/AshishSharma-0610/form-builder/internal/models"
)

// MaxImageBytes caps the decoded size of an inline data-URL image.
const MaxImageBytes = 1 << 20 // 1MB

// QuestionValidator validates forms, their per-type option payloads,
// and submitted answer sets against the referenced form.
type QuestionValidator struct{}

func NewQuestionValidator() *QuestionValidator {
	return &QuestionValidator{}
}

// ValidateForm checks a form before it is persisted: image encoding and
// per-type option consistency for every question. A nil return means
// the form is storable.
func (v *QuestionValidator) ValidateForm(form *models.Form) error {
	var errs apperrors.ValidationErrors

	if err := validateImage(form.HeaderImage); err != nil {
		errs = append(errs, *apperrors.NewValidationError("headerImage", err.Error(), nil))
	}

	for i, q := range form.Questions {
		field := fmt.Sprintf("questions[%d]", i)
		if qErrs := v.validateQuestion(field, q); len(qErrs) > 0 {
			errs = append(errs, qErrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (v *QuestionValidator) validateQuestion(field string, q models.Question) apperrors.ValidationErrors {
	var errs apperrors.ValidationErrors

	if !q.Type.IsValid() {
		errs = append(errs, *apperrors.NewValidationError(field+".type", "must be Categorize, Cloze or Comprehension", string(q.Type)))
		return errs
	}
	if err := validateImage(q.Image); err != nil {
		errs = append(errs, *apperrors.NewValidationError(field+".image", err.Error(), nil))
	}
	if q.Options == nil {
		errs = append(errs, *apperrors.NewValidationError(field+".options", "options payload is missing", nil))
		return errs
	}
	if q.Options.QuestionType() != q.Type {
		errs = append(errs, *apperrors.NewValidationError(field+".options", "options payload does not match question type", nil))
		return errs
	}

	switch opts := q.Options.(type) {
	case *models.CategorizeOptions:
		errs = append(errs, validateCategorizeOptions(field, opts)...)
	case *models.ClozeOptions:
		errs = append(errs, validateClozeOptions(field, opts)...)
	case *models.ComprehensionOptions:
		errs = append(errs, validateComprehensionOptions(field, opts)...)
	}
	return errs
}

func validateCategorizeOptions(field string, opts *models.CategorizeOptions) apperrors.ValidationErrors {
	var errs apperrors.ValidationErrors

	seen := make(map[string]bool, len(opts.Categories))
	for _, c := range opts.Categories {
		if seen[c] {
			errs = append(errs, *apperrors.NewValidationError(field+".options.categories", "duplicate category name", c))
		}
		seen[c] = true
	}

	items := make(map[string]bool, len(opts.Items))
	for _, it := range opts.Items {
		items[it] = true
	}
	for item, category := range opts.ItemCategories {
		if !items[item] {
			errs = append(errs, *apperrors.NewValidationError(field+".options.itemCategories", "mapping references unknown item", item))
		}
		if !seen[category] {
			errs = append(errs, *apperrors.NewValidationError(field+".options.itemCategories", "mapping references unknown category", category))
		}
	}
	return errs
}

func validateClozeOptions(field string, opts *models.ClozeOptions) apperrors.ValidationErrors {
	derived := models.DeriveBlanks(opts.Sentence)
	if len(derived) != len(opts.Blanks) {
		return apperrors.ValidationErrors{
			*apperrors.NewValidationError(field+".options.blanks", "blanks are not derived from the sentence", opts.Blanks),
		}
	}
	for i := range derived {
		if derived[i] != opts.Blanks[i] {
			return apperrors.ValidationErrors{
				*apperrors.NewValidationError(field+".options.blanks", "blanks are not derived from the sentence", opts.Blanks),
			}
		}
	}
	return nil
}

func validateComprehensionOptions(field string, opts *models.ComprehensionOptions) apperrors.ValidationErrors {
	var errs apperrors.ValidationErrors
	for i, mcq := range opts.MCQQuestions {
		mcqField := fmt.Sprintf("%s.options.mcqQuestions[%d]", field, i)
		if len(mcq.Options) != models.MCQOptionCount {
			errs = append(errs, *apperrors.NewValidationError(mcqField+".options",
				fmt.Sprintf("must have exactly %d options", models.MCQOptionCount), len(mcq.Options)))
			continue
		}
		if mcq.CorrectOption < 0 || mcq.CorrectOption >= models.MCQOptionCount {
			errs = append(errs, *apperrors.NewValidationError(mcqField+".correctOption",
				"must be between 0 and 3", mcq.CorrectOption))
		}
	}
	return errs
}

// validateImage accepts an empty reference or a base64 data-URL with an
// image MIME type and at most MaxImageBytes of decoded payload.
func validateImage(image string) error {
	if image == "" {
		return nil
	}
	if !strings.HasPrefix(image, "data:image/") {
		return fmt.Errorf("must be a data-URL with an image MIME type")
	}
	marker := ";base64,"
	idx := strings.Index(image, marker)
	if idx < 0 {
		return fmt.Errorf("must be base64 encoded")
	}
	// 4 base64 characters encode 3 bytes.
	payload := len(image) - idx - len(marker)
	if payload/4*3 > MaxImageBytes {
		return fmt.Errorf("image exceeds the %d byte limit", MaxImageBytes)
	}
	return nil
}
