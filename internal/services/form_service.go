package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/AshishSharma-0610/form-builder/internal/cache"
	"github.com/AshishSharma-0610/form-builder/internal/events"
	"github.com/AshishSharma-0610/form-builder/internal/models"
	"github.com/AshishSharma-0610/form-builder/internal/repositories"
	"github.com/AshishSharma-0610/form-builder/internal/validator"
)

const formCacheTTL = 10 * time.Minute

// FormService covers the authoring side: creating, listing and loading
// forms.
type FormService interface {
	Create(ctx context.Context, req *CreateFormRequest) (*models.Form, error)
	GetByID(ctx context.Context, id uint) (*models.Form, error)
	List(ctx context.Context, filters repositories.FormFilters) ([]*models.Form, error)
}

// CreateFormRequest carries an unsaved form. Title may be empty; every
// question must decode to one of the three supported types before this
// struct is even populated.
type CreateFormRequest struct {
	Title       string            `json:"title" validate:"max=500"`
	HeaderImage string            `json:"headerImage"`
	Questions   []models.Question `json:"questions"`
}

type formService struct {
	repo      repositories.Repository
	cache     cache.CacheService
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewFormService(
	repo repositories.Repository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	v *validator.Validator,
) FormService {
	return &formService{
		repo:      repo,
		cache:     cacheService,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

func (s *formService) Create(ctx context.Context, req *CreateFormRequest) (*models.Form, error) {
	s.logger.Info("Creating form", "title", req.Title, "questions", len(req.Questions))

	form := &models.Form{
		Title:       req.Title,
		HeaderImage: req.HeaderImage,
		Questions:   req.Questions,
	}
	if form.Questions == nil {
		form.Questions = []models.Question{}
	}

	if err := s.validator.GetQuestionValidator().ValidateForm(form); err != nil {
		return nil, err
	}

	if err := s.repo.Form().Create(ctx, form); err != nil {
		return nil, fmt.Errorf("failed to create form: %w", err)
	}

	s.primeCache(ctx, form)
	s.publish(ctx, events.NewFormCreatedEvent(form))

	s.logger.Info("Form created", "form_id", form.ID)
	return form, nil
}

func (s *formService) GetByID(ctx context.Context, id uint) (*models.Form, error) {
	var cached models.Form
	err := s.cache.Get(ctx, formCacheKey(id), &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Form cache lookup failed", "form_id", id, "error", err)
	}

	form, err := s.repo.Form().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("failed to get form: %w", err)
	}

	s.primeCache(ctx, form)
	return form, nil
}

func (s *formService) List(ctx context.Context, filters repositories.FormFilters) ([]*models.Form, error) {
	forms, err := s.repo.Form().List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}
	return forms, nil
}

// primeCache and publish are best-effort: a cache or broker outage must
// never fail the request that already hit storage successfully.
func (s *formService) primeCache(ctx context.Context, form *models.Form) {
	if err := s.cache.Set(ctx, formCacheKey(form.ID), form, formCacheTTL); err != nil {
		s.logger.Warn("Failed to cache form", "form_id", form.ID, "error", err)
	}
}

func (s *formService) publish(ctx context.Context, event *events.FormEvent) {
	if err := s.publisher.PublishFormEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event", "event_type", event.Type, "error", err)
	}
}

func formCacheKey(id uint) string {
	return fmt.Sprintf("form:%d", id)
}
