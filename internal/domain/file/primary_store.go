package file

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// PrimaryStore is the schema-typed client for the primary backend's files
// table (the one with the drifted lowercase column names).
type PrimaryStore struct {
	db *gorm.DB
}

func NewPrimaryStore(db *gorm.DB) *PrimaryStore {
	return &PrimaryStore{db: db}
}

func (s *PrimaryStore) List(ctx context.Context) ([]PrimaryFile, error) {
	var rows []PrimaryFile
	err := s.db.WithContext(ctx).Order("date DESC").Find(&rows).Error
	return rows, err
}

func (s *PrimaryStore) Get(ctx context.Context, id string) (*PrimaryFile, error) {
	var row PrimaryFile
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *PrimaryStore) ListByCategory(ctx context.Context, category string) ([]PrimaryFile, error) {
	var rows []PrimaryFile
	err := s.db.WithContext(ctx).
		Where("category = ?", category).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (s *PrimaryStore) ListFeatured(ctx context.Context, limit int) ([]PrimaryFile, error) {
	var rows []PrimaryFile
	err := s.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("date DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (s *PrimaryStore) Create(ctx context.Context, row *PrimaryFile) error {
	return s.db.WithContext(ctx).Create(row).Error
}

// Update applies a partial update. The keys of patch are the primary store's
// own column names (titlear, downloadurl, ...), not the API field names.
func (s *PrimaryStore) Update(ctx context.Context, id string, patch map[string]interface{}) error {
	res := s.db.WithContext(ctx).
		Model(&PrimaryFile{}).
		Where("id = ?", id).
		Updates(patch)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrFileNotFound
	}
	return nil
}

func (s *PrimaryStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&PrimaryFile{}, "id = ?", id).Error
}
