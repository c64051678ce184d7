package postgres

import (
	"github.com/AshishSharma-0610/form-builder/internal/repositories"
	"gorm.io/gorm"
)

type store struct {
	forms     repositories.FormRepository
	responses repositories.ResponseRepository
}

// NewStore bundles the postgres-backed repositories.
func NewStore(db *gorm.DB) repositories.Repository {
	return &store{
		forms:     NewFormPostgreSQL(db),
		responses: NewResponsePostgreSQL(db),
	}
}

func (s *store) Form() repositories.FormRepository {
	return s.forms
}

func (s *store) Response() repositories.ResponseRepository {
	return s.responses
}

// AutoMigrate creates or updates the forms and responses tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&formRow{}, &responseRow{})
}
