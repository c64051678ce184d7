package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator combines struct-tag validation with the hand-written
// per-variant question and answer checks.
type Validator struct {
	structValidator   *validator.Validate
	questionValidator *QuestionValidator
}

// New creates the centralized validator instance.
func New() *Validator {
	structValidator := validator.New()
	registerTagNameFunc(structValidator)

	return &Validator{
		structValidator:   structValidator,
		questionValidator: NewQuestionValidator(),
	}
}

// ValidateStruct validates struct tags only.
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// GetQuestionValidator returns the question/answer validator.
func (v *Validator) GetQuestionValidator() *QuestionValidator {
	return v.questionValidator
}

// registerTagNameFunc makes error messages report the json field name.
func registerTagNameFunc(validate *validator.Validate) {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
