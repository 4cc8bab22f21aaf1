package course

import (
	"errors"
	"time"
)

var ErrCourseNotFound = errors.New("course not found")

// Course is a taught or completed course shown on the portfolio.
type Course struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"size:300;not null"`
	TitleAr       string    `json:"titleAr" gorm:"column:title_ar;size:300"`
	Description   string    `json:"description" gorm:"type:text"`
	DescriptionAr string    `json:"descriptionAr" gorm:"column:description_ar;type:text"`
	Provider      string    `json:"provider" gorm:"size:200"`
	URL           string    `json:"url" gorm:"size:1024"`
	Date          time.Time `json:"date"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Course) TableName() string { return "courses" }
