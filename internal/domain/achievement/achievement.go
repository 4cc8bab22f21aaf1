package achievement

import (
	"errors"
	"time"
)

var ErrAchievementNotFound = errors.New("achievement not found")

// Achievement is an award or milestone shown on the portfolio.
type Achievement struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"size:300;not null"`
	TitleAr       string    `json:"titleAr" gorm:"column:title_ar;size:300"`
	Description   string    `json:"description" gorm:"type:text"`
	DescriptionAr string    `json:"descriptionAr" gorm:"column:description_ar;type:text"`
	Image         string    `json:"image" gorm:"size:1024"`
	Date          time.Time `json:"date"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Achievement) TableName() string { return "achievements" }
