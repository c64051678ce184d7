package services

import (
	"log/slog"

	"github.com/AshishSharma-0610/form-builder/internal/cache"
	"github.com/AshishSharma-0610/form-builder/internal/events"
	"github.com/AshishSharma-0610/form-builder/internal/repositories"
	"github.com/AshishSharma-0610/form-builder/internal/validator"
)

// ServiceManager hands out the service layer behind one handle.
type ServiceManager interface {
	Form() FormService
	Response() ResponseService
	Export() ExportService
}

type serviceManager struct {
	form     FormService
	response ResponseService
	export   ExportService
}

func NewServiceManager(
	repo repositories.Repository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	v *validator.Validator,
) ServiceManager {
	return &serviceManager{
		form:     NewFormService(repo, cacheService, publisher, logger, v),
		response: NewResponseService(repo, publisher, logger, v),
		export:   NewExportService(repo, logger),
	}
}

func (m *serviceManager) Form() FormService {
	return m.form
}

func (m *serviceManager) Response() ResponseService {
	return m.response
}

func (m *serviceManager) Export() ExportService {
	return m.export
}
