package project

import (
	"errors"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")

// Project is a bilingual portfolio entry.
type Project struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"size:300;not null"`
	TitleAr       string    `json:"titleAr" gorm:"column:title_ar;size:300"`
	Description   string    `json:"description" gorm:"type:text"`
	DescriptionAr string    `json:"descriptionAr" gorm:"column:description_ar;type:text"`
	Tech          string    `json:"tech" gorm:"size:500"` // comma-separated
	Image         string    `json:"image" gorm:"size:1024"`
	LiveURL       string    `json:"liveUrl" gorm:"column:live_url;size:1024"`
	SourceURL     string    `json:"sourceUrl" gorm:"column:source_url;size:1024"`
	Featured      bool      `json:"featured"`
	SortOrder     int       `json:"sortOrder" gorm:"column:sort_order;index"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Project) TableName() string { return "projects" }
