package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AshishSharma-0610/form-builder/internal/events"
	"github.com/AshishSharma-0610/form-builder/internal/models"
	"github.com/AshishSharma-0610/form-builder/internal/repositories"
	"github.com/AshishSharma-0610/form-builder/internal/validator"
)

// ResponseService covers the answering side: submitting and listing
// responses for a form.
type ResponseService interface {
	Submit(ctx context.Context, formID uint, req *SubmitResponseRequest) (*models.Response, error)
	ListByForm(ctx context.Context, formID uint, filters repositories.ResponseFilters) ([]*models.Response, int64, error)
}

// SubmitResponseRequest carries the raw per-question answers of one
// submission.
type SubmitResponseRequest struct {
	Answers models.AnswerSet `json:"answers"`
}

type responseService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewResponseService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
	v *validator.Validator,
) ResponseService {
	return &responseService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

func (s *responseService) Submit(ctx context.Context, formID uint, req *SubmitResponseRequest) (*models.Response, error) {
	s.logger.Info("Submitting response", "form_id", formID, "answers", len(req.Answers))

	form, err := s.repo.Form().GetByID(ctx, formID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("failed to load form: %w", err)
	}

	answers := req.Answers
	if answers == nil {
		answers = models.AnswerSet{}
	}
	if err := s.validator.GetQuestionValidator().ValidateAnswers(form, answers); err != nil {
		return nil, err
	}

	response := &models.Response{
		FormID:      form.ID,
		Answers:     answers,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.repo.Response().Create(ctx, response); err != nil {
		return nil, fmt.Errorf("failed to create response: %w", err)
	}

	if err := s.publisher.PublishFormEvent(ctx, events.NewResponseSubmittedEvent(response)); err != nil {
		s.logger.Warn("Failed to publish event", "event_type", events.EventResponseSubmitted, "error", err)
	}

	s.logger.Info("Response submitted", "response_id", response.ID, "form_id", form.ID)
	return response, nil
}

// ListByForm returns one page of a form's responses plus the total
// count, so paginated callers know how many submissions exist beyond
// the page.
func (s *responseService) ListByForm(ctx context.Context, formID uint, filters repositories.ResponseFilters) ([]*models.Response, int64, error) {
	exists, err := s.repo.Form().Exists(ctx, formID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to check form: %w", err)
	}
	if !exists {
		return nil, 0, ErrFormNotFound
	}

	responses, err := s.repo.Response().GetByForm(ctx, formID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list responses: %w", err)
	}

	total, err := s.repo.Response().CountByForm(ctx, formID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count responses: %w", err)
	}
	return responses, total, nil
}
