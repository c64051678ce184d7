package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AshishSharma-0610/form-builder/internal/models"
	"github.com/AshishSharma-0610/form-builder/internal/repositories"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// formRow is the storage shape of a form. Questions are stored as a
// single jsonb array so the authored order survives save/load exactly
// and each options variant stays intact.
type formRow struct {
	ID          uint           `gorm:"primaryKey"`
	Title       string         `gorm:"size:500"`
	HeaderImage string         `gorm:"type:text"`
	Questions   datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (formRow) TableName() string {
	return "forms"
}

type FormPostgreSQL struct {
	db *gorm.DB
}

func NewFormPostgreSQL(db *gorm.DB) repositories.FormRepository {
	return &FormPostgreSQL{db: db}
}

// Create stores the form and assigns its id.
func (r *FormPostgreSQL) Create(ctx context.Context, form *models.Form) error {
	row, err := formToRow(form)
	if err != nil {
		return fmt.Errorf("encode form: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create form: %w", err)
	}

	form.ID = row.ID
	form.CreatedAt = row.CreatedAt
	form.UpdatedAt = row.UpdatedAt
	return nil
}

// GetByID retrieves a form by id.
func (r *FormPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Form, error) {
	var row formRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return rowToForm(&row)
}

// List retrieves forms with pagination and ordering.
func (r *FormPostgreSQL) List(ctx context.Context, filters repositories.FormFilters) ([]*models.Form, error) {
	query := r.db.WithContext(ctx).Model(&formRow{})

	sortBy := filters.SortBy
	if sortBy != "title" {
		sortBy = "created_at"
	}
	order := "desc"
	if filters.SortOrder == "asc" {
		order = "asc"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, order))

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var rows []formRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	forms := make([]*models.Form, 0, len(rows))
	for i := range rows {
		form, err := rowToForm(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("decode form %d: %w", rows[i].ID, err)
		}
		forms = append(forms, form)
	}
	return forms, nil
}

// Exists reports whether a form with the given id is stored.
func (r *FormPostgreSQL) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&formRow{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func formToRow(form *models.Form) (*formRow, error) {
	questions := form.Questions
	if questions == nil {
		questions = []models.Question{}
	}
	data, err := json.Marshal(questions)
	if err != nil {
		return nil, err
	}

	return &formRow{
		ID:          form.ID,
		Title:       form.Title,
		HeaderImage: form.HeaderImage,
		Questions:   datatypes.JSON(data),
	}, nil
}

func rowToForm(row *formRow) (*models.Form, error) {
	// Question.UnmarshalJSON rejects unknown type tags and rederives
	// cloze blanks, so a decoded form is always internally consistent.
	var questions []models.Question
	if err := json.Unmarshal(row.Questions, &questions); err != nil {
		return nil, err
	}

	return &models.Form{
		ID:          row.ID,
		Title:       row.Title,
		HeaderImage: row.HeaderImage,
		Questions:   questions,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}
