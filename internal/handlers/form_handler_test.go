package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/AshishSharma-0610/form-builder/internal/errors"
	"github.com/AshishSharma-0610/form-builder/internal/models"
	"github.com/AshishSharma-0610/form-builder/internal/repositories"
	"github.com/AshishSharma-0610/form-builder/internal/services"
	"github.com/AshishSharma-0610/form-builder/internal/utils"
	"github.com/AshishSharma-0610/form-builder/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// MockFormService is a mock implementation of FormService
type MockFormService struct {
	mock.Mock
}

func (m *MockFormService) Create(ctx context.Context, req *services.CreateFormRequest) (*models.Form, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Form), args.Error(1)
}

func (m *MockFormService) GetByID(ctx context.Context, id uint) (*models.Form, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Form), args.Error(1)
}

func (m *MockFormService) List(ctx context.Context, filters repositories.FormFilters) ([]*models.Form, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Form), args.Error(1)
}

// MockResponseService is a mock implementation of ResponseService
type MockResponseService struct {
	mock.Mock
}

func (m *MockResponseService) Submit(ctx context.Context, formID uint, req *services.SubmitResponseRequest) (*models.Response, error) {
	args := m.Called(ctx, formID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Response), args.Error(1)
}

func (m *MockResponseService) ListByForm(ctx context.Context, formID uint, filters repositories.ResponseFilters) ([]*models.Response, int64, error) {
	args := m.Called(ctx, formID, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Response), args.Get(1).(int64), args.Error(2)
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportResponses(ctx context.Context, formID uint) (*excelize.File, error) {
	args := m.Called(ctx, formID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*excelize.File), args.Error(1)
}

func setupRouter(forms *MockFormService, responses *MockResponseService, exports *MockExportService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewFormHandler(forms, responses, exports, validator.New(), utils.NewDefaultLogger())
	router := gin.New()

	api := router.Group("/api")
	formsGroup := api.Group("/forms")
	formsGroup.POST("", handler.CreateForm)
	formsGroup.GET("", handler.ListForms)
	formsGroup.GET("/:id", handler.GetForm)
	formsGroup.POST("/:id/submit", handler.SubmitResponse)
	formsGroup.GET("/:id/responses", handler.ListResponses)
	formsGroup.GET("/:id/export", handler.ExportResponses)

	return router
}

func TestCreateForm(t *testing.T) {
	t.Run("returns the created form", func(t *testing.T) {
		forms := &MockFormService{}
		router := setupRouter(forms, &MockResponseService{}, &MockExportService{})

		forms.On("Create", mock.Anything, mock.AnythingOfType("*services.CreateFormRequest")).
			Return(&models.Form{ID: 1, Title: "Quiz", Questions: []models.Question{}}, nil)

		body := `{"title": "Quiz", "questions": []}`
		req := httptest.NewRequest(http.MethodPost, "/api/forms", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var created models.Form
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, uint(1), created.ID)
		assert.Equal(t, "Quiz", created.Title)
	})

	t.Run("overlong title reports structured field errors", func(t *testing.T) {
		forms := &MockFormService{}
		router := setupRouter(forms, &MockResponseService{}, &MockExportService{})

		body := `{"title": "` + strings.Repeat("a", 501) + `", "questions": []}`
		req := httptest.NewRequest(http.MethodPost, "/api/forms", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		forms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

		var resp struct {
			Message string                     `json:"message"`
			Details apperrors.ValidationErrors `json:"details"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Validation failed", resp.Message)
		require.Len(t, resp.Details, 1)
		assert.Equal(t, "title", resp.Details[0].Field)
		assert.Equal(t, "must be at most 500", resp.Details[0].Message)
		assert.Equal(t, "max", resp.Details[0].Rule)
	})

	t.Run("unknown question type is a 400", func(t *testing.T) {
		forms := &MockFormService{}
		router := setupRouter(forms, &MockResponseService{}, &MockExportService{})

		body := `{"title": "Quiz", "questions": [{"type": "Essay", "question": "Write"}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/forms", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		forms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("validation failure from the service is a 400", func(t *testing.T) {
		forms := &MockFormService{}
		router := setupRouter(forms, &MockResponseService{}, &MockExportService{})

		forms.On("Create", mock.Anything, mock.Anything).
			Return(nil, services.ErrValidationFailed)

		body := `{"title": "Quiz", "questions": []}`
		req := httptest.NewRequest(http.MethodPost, "/api/forms", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetForm(t *testing.T) {
	t.Run("returns the form", func(t *testing.T) {
		forms := &MockFormService{}
		router := setupRouter(forms, &MockResponseService{}, &MockExportService{})

		forms.On("GetByID", mock.Anything, uint(1)).
			Return(&models.Form{ID: 1, Title: "Quiz"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/forms/1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown form is a 404", func(t *testing.T) {
		forms := &MockFormService{}
		router := setupRouter(forms, &MockResponseService{}, &MockExportService{})

		forms.On("GetByID", mock.Anything, uint(99)).
			Return(nil, services.ErrFormNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/forms/99", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "form not found", resp.Message)
	})

	t.Run("non-numeric id is a 400", func(t *testing.T) {
		forms := &MockFormService{}
		router := setupRouter(forms, &MockResponseService{}, &MockExportService{})

		req := httptest.NewRequest(http.MethodGet, "/api/forms/abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		forms.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestSubmitResponse(t *testing.T) {
	t.Run("returns the stored response", func(t *testing.T) {
		responses := &MockResponseService{}
		router := setupRouter(&MockFormService{}, responses, &MockExportService{})

		responses.On("Submit", mock.Anything, uint(1), mock.AnythingOfType("*services.SubmitResponseRequest")).
			Return(&models.Response{ID: 10, FormID: 1, Answers: models.AnswerSet{}}, nil)

		body := `{"answers": {"0": {"Apple": "Fruit"}}}`
		req := httptest.NewRequest(http.MethodPost, "/api/forms/1/submit", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var stored models.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
		assert.Equal(t, uint(10), stored.ID)
		assert.Equal(t, uint(1), stored.FormID)
	})

	t.Run("submission to an unknown form is a 404, never a 200", func(t *testing.T) {
		responses := &MockResponseService{}
		router := setupRouter(&MockFormService{}, responses, &MockExportService{})

		responses.On("Submit", mock.Anything, uint(99), mock.Anything).
			Return(nil, services.ErrFormNotFound)

		body := `{"answers": {}}`
		req := httptest.NewRequest(http.MethodPost, "/api/forms/99/submit", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed answers are a 400", func(t *testing.T) {
		responses := &MockResponseService{}
		router := setupRouter(&MockFormService{}, responses, &MockExportService{})

		responses.On("Submit", mock.Anything, uint(1), mock.Anything).
			Return(nil, apperrors.ValidationErrors{
				*apperrors.NewValidationError("answers[0]", "keyed by an index that is not a fillable slot", 2),
			})

		body := `{"answers": {"0": {"2": "cat"}}}`
		req := httptest.NewRequest(http.MethodPost, "/api/forms/1/submit", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListResponses(t *testing.T) {
	responses := &MockResponseService{}
	router := setupRouter(&MockFormService{}, responses, &MockExportService{})

	stored := []*models.Response{{ID: 1, FormID: 1}}
	responses.On("ListByForm", mock.Anything, uint(1), repositories.ResponseFilters{}).
		Return(stored, int64(3), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/forms/1/responses", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var listed ListResponsesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed.Responses, 1)
	assert.Equal(t, int64(3), listed.Total)
}

func TestExportResponses(t *testing.T) {
	t.Run("streams an xlsx attachment", func(t *testing.T) {
		exports := &MockExportService{}
		router := setupRouter(&MockFormService{}, &MockResponseService{}, exports)

		exports.On("ExportResponses", mock.Anything, uint(1)).
			Return(excelize.NewFile(), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/forms/1/export", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "form-1-responses.xlsx")
		assert.NotZero(t, rec.Body.Len())
	})

	t.Run("unknown form is a 404", func(t *testing.T) {
		exports := &MockExportService{}
		router := setupRouter(&MockFormService{}, &MockResponseService{}, exports)

		exports.On("ExportResponses", mock.Anything, uint(99)).
			Return(nil, services.ErrFormNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/forms/99/export", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
