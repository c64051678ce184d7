package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/AshishSharma-0610/form-builder/internal/models"
	"github.com/AshishSharma-0610/form-builder/internal/repositories"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Responses"

// ExportService renders a form's responses into a spreadsheet for the
// author: one column per question, one row per submission.
type ExportService interface {
	ExportResponses(ctx context.Context, formID uint) (*excelize.File, error)
}

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

func (s *exportService) ExportResponses(ctx context.Context, formID uint) (*excelize.File, error) {
	form, err := s.repo.Form().GetByID(ctx, formID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("failed to load form: %w", err)
	}

	responses, err := s.repo.Response().GetByForm(ctx, formID, repositories.ResponseFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", err)
	}

	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	if err := writeHeaderRow(file, form); err != nil {
		return nil, err
	}
	for i, response := range responses {
		if err := writeResponseRow(file, form, response, i+2); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Exported responses", "form_id", formID, "responses", len(responses))
	return file, nil
}

func writeHeaderRow(file *excelize.File, form *models.Form) error {
	headers := []string{"Response ID", "Submitted At"}
	for i, q := range form.Questions {
		label := q.Question
		if label == "" {
			label = string(q.Type)
		}
		headers = append(headers, fmt.Sprintf("Q%d: %s", i+1, label))
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(exportSheet, cell, header); err != nil {
			return err
		}
	}
	return nil
}

func writeResponseRow(file *excelize.File, form *models.Form, response *models.Response, row int) error {
	values := []interface{}{
		response.ID,
		response.SubmittedAt.Format("2006-01-02 15:04:05"),
	}
	for i, q := range form.Questions {
		values = append(values, formatAnswer(q, response.Answers[i]))
	}

	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(exportSheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

// formatAnswer renders a stored answer as a single readable cell.
// Malformed answers render as an error marker rather than failing the
// whole export.
func formatAnswer(q models.Question, raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	decoded, err := models.DecodeAnswer(q, raw)
	if err != nil {
		return "<unreadable answer>"
	}

	switch answer := decoded.(type) {
	case models.CategorizeAnswer:
		return formatCategorizeAnswer(answer)
	case models.ClozeAnswer:
		return formatClozeAnswer(answer)
	case models.ComprehensionAnswer:
		return formatComprehensionAnswer(q, answer)
	default:
		return ""
	}
}

func formatCategorizeAnswer(answer models.CategorizeAnswer) string {
	items := make([]string, 0, len(answer))
	for item := range answer {
		items = append(items, item)
	}
	sort.Strings(items)

	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s: %s", item, answer[item]))
	}
	return strings.Join(parts, "; ")
}

func formatClozeAnswer(answer models.ClozeAnswer) string {
	slots := make([]int, 0, len(answer))
	for slot := range answer {
		slots = append(slots, slot)
	}
	sort.Ints(slots)

	parts := make([]string, 0, len(slots))
	for _, slot := range slots {
		parts = append(parts, answer[slot])
	}
	return strings.Join(parts, ", ")
}

func formatComprehensionAnswer(q models.Question, answer models.ComprehensionAnswer) string {
	opts, ok := q.Options.(*models.ComprehensionOptions)
	if !ok {
		return ""
	}

	parts := make([]string, 0, len(answer))
	for i, choice := range answer {
		if choice == "" {
			parts = append(parts, "-")
			continue
		}
		idx, err := strconv.Atoi(choice)
		if err != nil || i >= len(opts.MCQQuestions) || idx < 0 || idx >= len(opts.MCQQuestions[i].Options) {
			parts = append(parts, "<invalid>")
			continue
		}
		parts = append(parts, opts.MCQQuestions[i].Options[idx])
	}
	return strings.Join(parts, "; ")
}
