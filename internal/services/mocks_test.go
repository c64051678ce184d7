package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/AshishSharma-0610/form-builder/internal/cache"
	"github.com/AshishSharma-0610/form-builder/internal/models"
	"github.com/AshishSharma-0610/form-builder/internal/repositories"
	"github.com/stretchr/testify/mock"
)

// MockFormRepository is a mock implementation of FormRepository
type MockFormRepository struct {
	mock.Mock
}

func (m *MockFormRepository) Create(ctx context.Context, form *models.Form) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *MockFormRepository) GetByID(ctx context.Context, id uint) (*models.Form, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Form), args.Error(1)
}

func (m *MockFormRepository) List(ctx context.Context, filters repositories.FormFilters) ([]*models.Form, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Form), args.Error(1)
}

func (m *MockFormRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockResponseRepository is a mock implementation of ResponseRepository
type MockResponseRepository struct {
	mock.Mock
}

func (m *MockResponseRepository) Create(ctx context.Context, response *models.Response) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

func (m *MockResponseRepository) GetByForm(ctx context.Context, formID uint, filters repositories.ResponseFilters) ([]*models.Response, error) {
	args := m.Called(ctx, formID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Response), args.Error(1)
}

func (m *MockResponseRepository) CountByForm(ctx context.Context, formID uint) (int64, error) {
	args := m.Called(ctx, formID)
	return args.Get(0).(int64), args.Error(1)
}

// mockRepository bundles the mocks behind the Repository interface
type mockRepository struct {
	forms     *MockFormRepository
	responses *MockResponseRepository
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		forms:     &MockFormRepository{},
		responses: &MockResponseRepository{},
	}
}

func (m *mockRepository) Form() repositories.FormRepository {
	return m.forms
}

func (m *mockRepository) Response() repositories.ResponseRepository {
	return m.responses
}

// fakeCache is an in-memory CacheService for tests
type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = payload
	return nil
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	payload, ok := f.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

