package repositories

import (
	"context"
	"errors"

	"github.com/AshishSharma-0610/form-builder/internal/models"
	"gorm.io/gorm"
)

// ===== SHARED FILTER STRUCTS =====

type FormFilters struct {
	Limit     int    `json:"limit"`
	Offset    int    `json:"offset"`
	SortBy    string `json:"sort_by"`    // "created_at", "title"
	SortOrder string `json:"sort_order"` // "asc", "desc"
}

type ResponseFilters struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ===== REPOSITORY INTERFACES =====

// FormRepository persists forms. Create assigns the durable id; the
// stored question order is the authored order, exactly.
type FormRepository interface {
	Create(ctx context.Context, form *models.Form) error
	GetByID(ctx context.Context, id uint) (*models.Form, error)
	List(ctx context.Context, filters FormFilters) ([]*models.Form, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// ResponseRepository persists responses. Responses are insert-only.
type ResponseRepository interface {
	Create(ctx context.Context, response *models.Response) error
	GetByForm(ctx context.Context, formID uint, filters ResponseFilters) ([]*models.Response, error)
	CountByForm(ctx context.Context, formID uint) (int64, error)
}

// Repository bundles the per-entity repositories behind one handle.
type Repository interface {
	Form() FormRepository
	Response() ResponseRepository
}

// IsNotFoundError reports whether err means the record does not exist.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
