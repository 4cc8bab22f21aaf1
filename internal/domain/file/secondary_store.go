package file

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SecondaryStore executes queries against the secondary relational backend
// (the SQLite file catalogue): RawFile rows joined with their FileFeature
// metadata, plus the append-only download audit table.
type SecondaryStore struct {
	db *gorm.DB
}

func NewSecondaryStore(db *gorm.DB) *SecondaryStore {
	return &SecondaryStore{db: db}
}

// catalogueRow is the shape produced by the files ⋈ file_features join.
type catalogueRow struct {
	ID            int64     `gorm:"column:id"`
	Name          string    `gorm:"column:name"`
	OriginalName  string    `gorm:"column:original_name"`
	MimeType      string    `gorm:"column:mime_type"`
	Size          int64     `gorm:"column:size"`
	Path          string    `gorm:"column:path"`
	URL           string    `gorm:"column:url"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	Title         string    `gorm:"column:title"`
	TitleAr       string    `gorm:"column:title_ar"`
	Description   string    `gorm:"column:description"`
	DescriptionAr string    `gorm:"column:description_ar"`
	Category      string    `gorm:"column:category"`
	Featured      bool      `gorm:"column:featured"`
}

const catalogueSelect = `files.id, files.name, files.original_name, files.mime_type,
	files.size, files.path, files.url, files.created_at,
	file_features.title, file_features.title_ar,
	file_features.description, file_features.description_ar,
	file_features.category, file_features.featured`

func (s *SecondaryStore) joined(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("files").
		Select(catalogueSelect).
		Joins("LEFT JOIN file_features ON file_features.file_id = files.id")
}

func (s *SecondaryStore) List(ctx context.Context) ([]catalogueRow, error) {
	var rows []catalogueRow
	err := s.joined(ctx).Order("files.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (s *SecondaryStore) Get(ctx context.Context, id int64) (*catalogueRow, error) {
	var row catalogueRow
	res := s.joined(ctx).Where("files.id = ?", id).Limit(1).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrFileNotFound
	}
	return &row, nil
}

func (s *SecondaryStore) ListByCategory(ctx context.Context, category string) ([]catalogueRow, error) {
	var rows []catalogueRow
	err := s.joined(ctx).
		Where("file_features.category = ?", category).
		Order("files.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (s *SecondaryStore) ListFeatured(ctx context.Context, limit int) ([]catalogueRow, error) {
	var rows []catalogueRow
	err := s.joined(ctx).
		Where("file_features.featured = ?", true).
		Order("files.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// FindRawByNameOrPath locates the physical row behind an already-uploaded
// blob when a catalogue entry is created for it.
func (s *SecondaryStore) FindRawByNameOrPath(ctx context.Context, name, path string) (*RawFile, error) {
	var raw RawFile
	err := s.db.WithContext(ctx).
		Where("name = ? OR path = ?", name, path).
		First(&raw).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &raw, nil
}

func (s *SecondaryStore) CreateRaw(ctx context.Context, raw *RawFile) error {
	return s.db.WithContext(ctx).Create(raw).Error
}

// UpsertFeature inserts or overwrites the metadata row for a file_id.
func (s *SecondaryStore) UpsertFeature(ctx context.Context, f *FileFeature) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "file_id"}},
			UpdateAll: true,
		}).
		Create(f).Error
}

// DeleteCatalogued removes the metadata row first, then the physical row,
// respecting the foreign key.
func (s *SecondaryStore) DeleteCatalogued(ctx context.Context, fileID int64) error {
	if err := s.db.WithContext(ctx).Delete(&FileFeature{}, "file_id = ?", fileID).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&RawFile{}, fileID).Error
}

// InsertDownload appends an audit row. Callers are expected to treat failures
// as non-fatal.
func (s *SecondaryStore) InsertDownload(ctx context.Context, d *FileDownload) error {
	return s.db.WithContext(ctx).Create(d).Error
}
