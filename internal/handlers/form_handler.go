package handlers

import (
	"fmt"
	"net/http"

	apperrors "github.com/AshishSharma-0610/form-builder/internal/errors"
	"github.com/AshishSharma-0610/form-builder/internal/models"
	"github.com/AshishSharma-0610/form-builder/internal/repositories"
	"github.com/AshishSharma-0610/form-builder/internal/services"
	"github.com/AshishSharma-0610/form-builder/internal/utils"
	"github.com/AshishSharma-0610/form-builder/internal/validator"
	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	BaseHandler
	formService     services.FormService
	responseService services.ResponseService
	exportService   services.ExportService
	validator       *validator.Validator
}

func NewFormHandler(
	formService services.FormService,
	responseService services.ResponseService,
	exportService services.ExportService,
	v *validator.Validator,
	logger utils.Logger,
) *FormHandler {
	return &FormHandler{
		BaseHandler:     NewBaseHandler(logger),
		formService:     formService,
		responseService: responseService,
		exportService:   exportService,
		validator:       v,
	}
}

// CreateForm persists a new form and returns it with its assigned id.
func (h *FormHandler) CreateForm(c *gin.Context) {
	h.LogRequest(c, "Creating form")

	var req services.CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: apperrors.ToValidationErrors(err),
		})
		return
	}

	form, err := h.formService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, form)
}

// ListForms returns all stored forms.
func (h *FormHandler) ListForms(c *gin.Context) {
	h.LogRequest(c, "Listing forms")

	forms, err := h.formService.List(c.Request.Context(), repositories.FormFilters{})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, forms)
}

// GetForm returns a single form by id.
func (h *FormHandler) GetForm(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	h.LogRequest(c, "Getting form", "form_id", id)

	form, err := h.formService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, form)
}

// SubmitResponse stores one respondent's answers for a form.
func (h *FormHandler) SubmitResponse(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	h.LogRequest(c, "Submitting response", "form_id", id)

	var req services.SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	response, err := h.responseService.Submit(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListResponsesResponse wraps a page of responses with the form's
// total submission count.
type ListResponsesResponse struct {
	Responses []*models.Response `json:"responses"`
	Total     int64              `json:"total"`
}

// ListResponses returns a form's submitted responses.
func (h *FormHandler) ListResponses(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	h.LogRequest(c, "Listing responses", "form_id", id)

	responses, total, err := h.responseService.ListByForm(c.Request.Context(), id, repositories.ResponseFilters{})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponsesResponse{
		Responses: responses,
		Total:     total,
	})
}

// ExportResponses streams a form's responses as an xlsx workbook.
func (h *FormHandler) ExportResponses(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	h.LogRequest(c, "Exporting responses", "form_id", id)

	file, err := h.exportService.ExportResponses(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="form-%d-responses.xlsx"`, id))
	if err := file.Write(c.Writer); err != nil {
		h.LogError(c, err, "Failed to stream export", "form_id", id)
	}
}

// handleServiceError maps service errors onto the status codes of the
// public surface: validation 400, unknown form 404, everything else 500.
func (h *FormHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		h.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
	case services.IsNotFound(err):
		h.RespondWithError(c, http.StatusNotFound, err.Error(), err)
	default:
		h.RespondWithError(c, http.StatusInternalServerError, "internal server error", err)
	}
}
