package file

// CreateFileRequest catalogues a blob. FullPath decides the store: a
// "files/" prefix targets the secondary catalogue, anything else lands in
// the primary store.
type CreateFileRequest struct {
	Title         string `json:"title" binding:"required"`
	TitleAr       string `json:"titleAr"`
	Description   string `json:"description"`
	DescriptionAr string `json:"descriptionAr"`
	Category      string `json:"category"`
	FileType      string `json:"fileType"`
	Size          int64  `json:"size"`
	Date          string `json:"date"`
	DownloadURL   string `json:"downloadUrl" binding:"required"`
	FullPath      string `json:"fullPath"`
	Featured      bool   `json:"featured"`
}

// UpdateFileRequest is a partial metadata patch; nil fields are left alone.
type UpdateFileRequest struct {
	Title         *string `json:"title"`
	TitleAr       *string `json:"titleAr"`
	Description   *string `json:"description"`
	DescriptionAr *string `json:"descriptionAr"`
	Category      *string `json:"category"`
	Featured      *bool   `json:"featured"`
}
