package events

import (
	"time"

	"github.com/AshishSharma-0610/form-builder/internal/models"
	"github.com/ThreeDotsLabs/watermill"
)

// EventType represents the form lifecycle events published by the service
type EventType string

const (
	EventFormCreated       EventType = "form.created"
	EventResponseSubmitted EventType = "response.submitted"
)

const (
	eventSource  = "form-builder"
	eventVersion = "1.0"
)

// FormEvent is the envelope for all published events
type FormEvent struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Data      interface{} `json:"data"`
}

// FormCreatedEvent is published after a form is persisted
type FormCreatedEvent struct {
	FormID        uint   `json:"form_id"`
	Title         string `json:"title"`
	QuestionCount int    `json:"question_count"`
}

// ResponseSubmittedEvent is published after a response is persisted
type ResponseSubmittedEvent struct {
	ResponseID  uint `json:"response_id"`
	FormID      uint `json:"form_id"`
	AnswerCount int  `json:"answer_count"`
}

func NewFormCreatedEvent(form *models.Form) *FormEvent {
	return newFormEvent(EventFormCreated, FormCreatedEvent{
		FormID:        form.ID,
		Title:         form.Title,
		QuestionCount: len(form.Questions),
	})
}

func NewResponseSubmittedEvent(response *models.Response) *FormEvent {
	return newFormEvent(EventResponseSubmitted, ResponseSubmittedEvent{
		ResponseID:  response.ID,
		FormID:      response.FormID,
		AnswerCount: len(response.Answers),
	})
}

func newFormEvent(eventType EventType, data interface{}) *FormEvent {
	return &FormEvent{
		ID:        watermill.NewUUID(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}
