package profile

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetProfile returns the singleton row, creating an empty one if the table
// is still empty.
func (r *Repository) GetProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = Profile{}
		if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
			return nil, err
		}
		return &p, nil
	}
	return &p, err
}

func (r *Repository) SaveProfile(ctx context.Context, p *Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *Repository) ListEducation(ctx context.Context) ([]Education, error) {
	var rows []Education
	err := r.db.WithContext(ctx).Order("sort_order ASC, start_year DESC").Find(&rows).Error
	return rows, err
}

func (r *Repository) CreateEducation(ctx context.Context, e *Education) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *Repository) UpdateEducation(ctx context.Context, e *Education) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *Repository) GetEducation(ctx context.Context, id int64) (*Education, error) {
	var e Education
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	return &e, err
}

func (r *Repository) DeleteEducation(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Education{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *Repository) ListExperience(ctx context.Context) ([]Experience, error) {
	var rows []Experience
	err := r.db.WithContext(ctx).Order("sort_order ASC, start_year DESC").Find(&rows).Error
	return rows, err
}

func (r *Repository) CreateExperience(ctx context.Context, e *Experience) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *Repository) UpdateExperience(ctx context.Context, e *Experience) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *Repository) GetExperience(ctx context.Context, id int64) (*Experience, error) {
	var e Experience
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	return &e, err
}

func (r *Repository) DeleteExperience(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Experience{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
