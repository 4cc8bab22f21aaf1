package media

import (
	"io"
	"time"
)

// MediaItem describes one blob in the object store. It is rebuilt from the
// store's own metadata on every listing and has no lifecycle of its own.
type MediaItem struct {
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	FullPath    string    `json:"fullPath"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	TimeCreated time.Time `json:"timeCreated"`
}

// Store is the folder-scoped object store contract. Listing produces a
// snapshot with no pagination, so it suits folders with bounded object
// counts only. Errors propagate to the caller; there is no retry and no
// second object store to fall back to.
type Store interface {
	List(folder string) ([]MediaItem, error)
	Save(r io.Reader, size int64, filename, folder string, progress func(percent int)) (*MediaItem, error)
	Delete(fullPath string) error
}
