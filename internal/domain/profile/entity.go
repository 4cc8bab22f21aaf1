package profile

import (
	"errors"
	"time"
)

var ErrEntryNotFound = errors.New("entry not found")

// Profile is the owner's public profile. The table holds a single row that
// is created on first read and updated in place afterwards.
type Profile struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:255"`
	NameAr   string `json:"nameAr" gorm:"column:name_ar;size:255"`
	Title    string `json:"title" gorm:"size:255"`
	TitleAr  string `json:"titleAr" gorm:"column:title_ar;size:255"`
	Bio      string `json:"bio" gorm:"type:text"`
	BioAr    string `json:"bioAr" gorm:"column:bio_ar;type:text"`
	Avatar   string `json:"avatar" gorm:"size:1024"`
	Email    string `json:"email" gorm:"size:255"`
	Location string `json:"location" gorm:"size:255"`

	// Social links
	GitHub   string `json:"github" gorm:"size:512"`
	LinkedIn string `json:"linkedin" gorm:"size:512"`
	Twitter  string `json:"twitter" gorm:"size:512"`
	Website  string `json:"website" gorm:"size:512"`

	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Profile) TableName() string { return "profiles" }

// Education is one row of the profile's education history.
type Education struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Institution   string    `json:"institution" gorm:"size:300;not null"`
	InstitutionAr string    `json:"institutionAr" gorm:"column:institution_ar;size:300"`
	Degree        string    `json:"degree" gorm:"size:300"`
	DegreeAr      string    `json:"degreeAr" gorm:"column:degree_ar;size:300"`
	StartYear     int       `json:"startYear" gorm:"column:start_year"`
	EndYear       int       `json:"endYear" gorm:"column:end_year"` // 0 = ongoing
	SortOrder     int       `json:"sortOrder" gorm:"column:sort_order;index"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Education) TableName() string { return "education" }

// Experience is one row of the profile's work history.
type Experience struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Company       string    `json:"company" gorm:"size:300;not null"`
	CompanyAr     string    `json:"companyAr" gorm:"column:company_ar;size:300"`
	Role          string    `json:"role" gorm:"size:300"`
	RoleAr        string    `json:"roleAr" gorm:"column:role_ar;size:300"`
	Summary       string    `json:"summary" gorm:"type:text"`
	SummaryAr     string    `json:"summaryAr" gorm:"column:summary_ar;type:text"`
	StartYear     int       `json:"startYear" gorm:"column:start_year"`
	EndYear       int       `json:"endYear" gorm:"column:end_year"` // 0 = current
	SortOrder     int       `json:"sortOrder" gorm:"column:sort_order;index"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Experience) TableName() string { return "experience" }
