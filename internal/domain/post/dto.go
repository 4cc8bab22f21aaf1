package post

import "time"

type CreatePostRequest struct {
	Slug      string `json:"slug" binding:"required"`
	Title     string `json:"title" binding:"required"`
	TitleAr   string `json:"titleAr"`
	Excerpt   string `json:"excerpt"`
	ExcerptAr string `json:"excerptAr"`
	Content   string `json:"content"`
	ContentAr string `json:"contentAr"`
	Tags      string `json:"tags"`
	Image     string `json:"image"`
	Featured  bool   `json:"featured"`
	Published bool   `json:"published"`
	Date      string `json:"date"` // ISO date, defaults to today
}

type UpdatePostRequest struct {
	Slug      *string `json:"slug"`
	Title     *string `json:"title"`
	TitleAr   *string `json:"titleAr"`
	Excerpt   *string `json:"excerpt"`
	ExcerptAr *string `json:"excerptAr"`
	Content   *string `json:"content"`
	ContentAr *string `json:"contentAr"`
	Tags      *string `json:"tags"`
	Image     *string `json:"image"`
	Featured  *bool   `json:"featured"`
	Published *bool   `json:"published"`
	Date      *string `json:"date"`
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", s)
}
