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

// responseRow is the storage shape of a response; the answer set is a
// jsonb object keyed by question index.
type responseRow struct {
	ID          uint           `gorm:"primaryKey"`
	FormID      uint           `gorm:"not null;index"`
	Answers     datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	SubmittedAt time.Time
}

func (responseRow) TableName() string {
	return "responses"
}

type ResponsePostgreSQL struct {
	db *gorm.DB
}

func NewResponsePostgreSQL(db *gorm.DB) repositories.ResponseRepository {
	return &ResponsePostgreSQL{db: db}
}

// Create stores the response and assigns its id.
func (r *ResponsePostgreSQL) Create(ctx context.Context, response *models.Response) error {
	answers := response.Answers
	if answers == nil {
		answers = models.AnswerSet{}
	}
	data, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}

	row := &responseRow{
		FormID:      response.FormID,
		Answers:     datatypes.JSON(data),
		SubmittedAt: response.SubmittedAt,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create response: %w", err)
	}

	response.ID = row.ID
	return nil
}

// GetByForm retrieves the responses submitted for a form, oldest first.
func (r *ResponsePostgreSQL) GetByForm(ctx context.Context, formID uint, filters repositories.ResponseFilters) ([]*models.Response, error) {
	query := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("submitted_at ASC")

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var rows []responseRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	responses := make([]*models.Response, 0, len(rows))
	for i := range rows {
		response, err := rowToResponse(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("decode response %d: %w", rows[i].ID, err)
		}
		responses = append(responses, response)
	}
	return responses, nil
}

// CountByForm returns how many responses a form has received.
func (r *ResponsePostgreSQL) CountByForm(ctx context.Context, formID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&responseRow{}).Where("form_id = ?", formID).Count(&count).Error
	return count, err
}

func rowToResponse(row *responseRow) (*models.Response, error) {
	var answers models.AnswerSet
	if err := json.Unmarshal(row.Answers, &answers); err != nil {
		return nil, err
	}

	return &models.Response{
		ID:          row.ID,
		FormID:      row.FormID,
		Answers:     answers,
		SubmittedAt: row.SubmittedAt,
	}, nil
}
