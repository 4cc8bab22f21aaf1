package file

import "time"

// Category labels for catalogued files.
const (
	CategoryDocument     = "Document"
	CategoryPresentation = "Presentation"
	CategorySpreadsheet  = "Spreadsheet"
	CategoryArchive      = "Archive"
	CategoryTemplate     = "Template"
	CategoryOther        = "Other"
)

// Categories lists every accepted category label.
var Categories = []string{
	CategoryDocument,
	CategoryPresentation,
	CategorySpreadsheet,
	CategoryArchive,
	CategoryTemplate,
	CategoryOther,
}

func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// File is the user-facing catalogue record. Its ID is a string on purpose:
// numeric-looking ids belong to the secondary store, UUID-shaped ids to the
// primary store. Callers never see which store a record came from.
type File struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TitleAr       string `json:"titleAr"`
	Description   string `json:"description"`
	DescriptionAr string `json:"descriptionAr"`
	Category      string `json:"category"`
	FileType      string `json:"fileType"`
	Size          int64  `json:"size"`
	Date          string `json:"date"`
	DownloadURL   string `json:"downloadUrl"`
	FullPath      string `json:"fullPath"`
	Featured      bool   `json:"featured"`
}

// RawFile is the secondary store's physical record: one row per uploaded
// blob. Path is unique; ID is the join key for FileFeature and FileDownload.
type RawFile struct {
	ID           int64     `json:"id" gorm:"column:id;primaryKey"`
	Name         string    `json:"name" gorm:"column:name;uniqueIndex;size:255;not null"`
	OriginalName string    `json:"original_name" gorm:"column:original_name;size:255"`
	MimeType     string    `json:"mime_type" gorm:"column:mime_type;size:127"`
	Size         int64     `json:"size" gorm:"column:size"`
	Path         string    `json:"path" gorm:"column:path;uniqueIndex;size:512;not null"`
	URL          string    `json:"url" gorm:"column:url;size:1024"`
	Folder       string    `json:"folder" gorm:"column:folder;size:255"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (RawFile) TableName() string { return "files" }

// FileFeature is the 1:1 metadata extension of a RawFile. Inserting a row for
// an existing file_id overwrites the previous values (upsert, no versioning).
type FileFeature struct {
	FileID        int64  `json:"file_id" gorm:"column:file_id;primaryKey;autoIncrement:false"`
	Title         string `json:"title" gorm:"column:title;size:300"`
	TitleAr       string `json:"title_ar" gorm:"column:title_ar;size:300"`
	Description   string `json:"description" gorm:"column:description;type:text"`
	DescriptionAr string `json:"description_ar" gorm:"column:description_ar;type:text"`
	Category      string `json:"category" gorm:"column:category;size:64"`
	Featured      bool   `json:"featured" gorm:"column:featured"`

	Raw *RawFile `json:"-" gorm:"foreignKey:FileID;references:ID;constraint:OnDelete:CASCADE"`
}

func (FileFeature) TableName() string { return "file_features" }

// FileDownload is an append-only audit row, cascade-deleted with its RawFile.
type FileDownload struct {
	ID           int64     `json:"id" gorm:"column:id;primaryKey"`
	FileID       int64     `json:"file_id" gorm:"column:file_id;index;not null"`
	DownloadDate time.Time `json:"download_date" gorm:"column:download_date;autoCreateTime"`
	IPAddress    string    `json:"ip_address" gorm:"column:ip_address;size:64"`
	UserAgent    string    `json:"user_agent" gorm:"column:user_agent;size:512"`

	Raw *RawFile `json:"-" gorm:"foreignKey:FileID;references:ID;constraint:OnDelete:CASCADE"`
}

func (FileDownload) TableName() string { return "file_downloads" }

// PrimaryFile is the primary store's files table. Its columns are lowercase
// with no underscores (titlear, downloadurl, ...), which does not match the
// bilingual naming used everywhere else; the two namings are two independent
// schemas and this struct is the explicit mapping layer between them.
type PrimaryFile struct {
	ID            string `gorm:"column:id;primaryKey;size:64"`
	Title         string `gorm:"column:title;size:300"`
	TitleAr       string `gorm:"column:titlear;size:300"`
	Description   string `gorm:"column:description;type:text"`
	DescriptionAr string `gorm:"column:descriptionar;type:text"`
	Category      string `gorm:"column:category;size:64"`
	FileType      string `gorm:"column:filetype;size:127"`
	Size          int64  `gorm:"column:size"`
	Date          string `gorm:"column:date;size:32"`
	DownloadURL   string `gorm:"column:downloadurl;size:1024"`
	FullPath      string `gorm:"column:fullpath;size:512"`
	Featured      bool   `gorm:"column:featured"`
}

func (PrimaryFile) TableName() string { return "files" }
