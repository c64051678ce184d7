package models

import "time"

// Response is one respondent's submission for a form. It references
// the form by id only and is immutable once created.
type Response struct {
	ID          uint      `json:"id,omitempty"`
	FormID      uint      `json:"formId"`
	Answers     AnswerSet `json:"answers"`
	SubmittedAt time.Time `json:"submittedAt"`
}
