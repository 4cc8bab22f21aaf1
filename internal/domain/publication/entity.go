package publication

import (
	"errors"
	"time"
)

var ErrPublicationNotFound = errors.New("publication not found")

// Publication is an academic or professional publication reference.
type Publication struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"size:500;not null"`
	TitleAr    string    `json:"titleAr" gorm:"column:title_ar;size:500"`
	Abstract   string    `json:"abstract" gorm:"type:text"`
	AbstractAr string    `json:"abstractAr" gorm:"column:abstract_ar;type:text"`
	Venue      string    `json:"venue" gorm:"size:300"`
	Year       int       `json:"year" gorm:"index"`
	Link       string    `json:"link" gorm:"size:1024"`
	Featured   bool      `json:"featured"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Publication) TableName() string { return "publications" }
