package post

import "time"

// Post is a bilingual blog entry on the primary store.
type Post struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;size:200;not null"`
	Title     string    `json:"title" gorm:"size:300;not null"`
	TitleAr   string    `json:"titleAr" gorm:"column:title_ar;size:300"`
	Excerpt   string    `json:"excerpt" gorm:"type:text"`
	ExcerptAr string    `json:"excerptAr" gorm:"column:excerpt_ar;type:text"`
	Content   string    `json:"content" gorm:"type:text"`
	ContentAr string    `json:"contentAr" gorm:"column:content_ar;type:text"`
	Tags      string    `json:"tags" gorm:"size:500"` // comma-separated
	Image     string    `json:"image" gorm:"size:1024"`
	Featured  bool      `json:"featured"`
	Published bool      `json:"published" gorm:"index"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Post) TableName() string { return "posts" }
