package gorm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rayrc/keywhiz/pkg/model"
	"github.com/rayrc/keywhiz/pkg/server/store"
)

// Ensure SecretSeriesStore implements store.SecretSeriesStore
var _ store.SecretSeriesStore = (*SecretSeriesStore)(nil)

// SecretSeriesStore implements store.SecretSeriesStore using GORM
type SecretSeriesStore struct {
	db *gorm.DB
}

// NewSecretSeriesStore creates a new SecretSeriesStore
func NewSecretSeriesStore(db *gorm.DB) *SecretSeriesStore {
	return &SecretSeriesStore{db: db}
}

// CreateSecretSeries creates a secret series
func (s *SecretSeriesStore) CreateSecretSeries(name, description, createdBy string) (*store.SecretSeries, error) {
	series := model.SecretSeries{
		Name:        name,
		Description: description,
		CreatedBy:   createdBy,
		UpdatedBy:   createdBy,
	}
	if err := s.db.Create(&series).Error; err != nil {
		return nil, fmt.Errorf("failed to create secret series: %w", err)
	}
	return secretSeriesFromModel(series), nil
}

// GetSecretSeries retrieves a secret series by name, nil if absent
func (s *SecretSeriesStore) GetSecretSeries(name string) (*store.SecretSeries, error) {
	var series model.SecretSeries
	err := s.db.Where("name = ?", name).First(&series).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return secretSeriesFromModel(series), nil
}

// GetSecretSeriesByID retrieves a secret series by id, nil if absent
func (s *SecretSeriesStore) GetSecretSeriesByID(id int64) (*store.SecretSeries, error) {
	var series model.SecretSeries
	err := s.db.Where("id = ?", id).First(&series).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return secretSeriesFromModel(series), nil
}

// ListSecretSeries returns all secret series ordered by id
func (s *SecretSeriesStore) ListSecretSeries() ([]store.SecretSeries, error) {
	var models []model.SecretSeries
	if err := s.db.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	series := make([]store.SecretSeries, 0, len(models))
	for _, m := range models {
		series = append(series, *secretSeriesFromModel(m))
	}
	return series, nil
}

// DeleteSecretSeries removes a secret series. Its grants go with it via the
// schema's ON DELETE CASCADE, atomically with the row.
func (s *SecretSeriesStore) DeleteSecretSeries(id int64) error {
	return s.db.Exec(`DELETE FROM secrets WHERE id = ?`, id).Error
}

func secretSeriesFromModel(m model.SecretSeries) *store.SecretSeries {
	return &store.SecretSeries{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		CreatedBy:   m.CreatedBy,
		UpdatedBy:   m.UpdatedBy,
	}
}
