package media

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxFileSize caps a single upload.
	MaxFileSize = 50 * 1024 * 1024 // 50 MB

	copyChunkSize = 32 * 1024
)

// DiskStore keeps blobs on the local filesystem under baseDir, one
// subdirectory per folder, and serves them under baseURL.
type DiskStore struct {
	baseDir string
	baseURL string
}

func NewDiskStore(baseDir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media directory %s: %w", baseDir, err)
	}
	return &DiskStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// List returns a snapshot of every blob directly under folder.
func (s *DiskStore) List(folder string) ([]MediaItem, error) {
	dir, err := s.resolve(folder)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []MediaItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	items := make([]MediaItem, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		items = append(items, s.item(folder, entry.Name(), info.Size(), info.ModTime()))
	}
	return items, nil
}

// Save writes a blob under a generated unique key and reports fractional
// progress from 0 to 100 while copying.
func (s *DiskStore) Save(r io.Reader, size int64, filename, folder string, progress func(int)) (*MediaItem, error) {
	if size == 0 {
		return nil, ErrEmptyFile
	}
	if size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	dir, err := s.resolve(folder)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	name := blobKey(filename)
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	written, err := copyWithProgress(dst, r, size, progress)
	if err != nil {
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to write blob: %w", err)
	}

	item := s.item(folder, name, written, time.Now())
	return &item, nil
}

// Delete removes the blob at fullPath. It does not know about, or touch, any
// catalogue entry still referencing the blob.
func (s *DiskStore) Delete(fullPath string) error {
	p, err := s.resolve(fullPath)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return ErrBlobNotFound
		}
		return err
	}
	return nil
}

func (s *DiskStore) item(folder, name string, size int64, created time.Time) MediaItem {
	fullPath := name
	if folder != "" {
		fullPath = folder + "/" + name
	}
	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return MediaItem{
		Name:        name,
		URL:         s.baseURL + "/" + fullPath,
		FullPath:    fullPath,
		ContentType: contentType,
		Size:        size,
		TimeCreated: created,
	}
}

// resolve maps a folder-scoped key onto the disk and rejects traversal.
func (s *DiskStore) resolve(rel string) (string, error) {
	cleaned := filepath.Clean("/" + filepath.FromSlash(rel))
	full := filepath.Join(s.baseDir, cleaned)
	base := filepath.Clean(s.baseDir)
	if full != base && !strings.HasPrefix(full, base+string(filepath.Separator)) {
		return "", ErrBadPath
	}
	return full, nil
}

// blobKey generates the unique storage key: timestamp-originalName, or
// timestamp-uuid.ext when the original name sanitizes away to nothing.
func blobKey(filename string) string {
	ext := filepath.Ext(filename)
	base := sanitizeName(strings.TrimSuffix(filepath.Base(filename), ext))
	ts := time.Now().Unix()
	if base == "" {
		return fmt.Sprintf("%d-%s%s", ts, uuid.NewString(), ext)
	}
	return fmt.Sprintf("%d-%s%s", ts, base, ext)
}

func sanitizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return -1
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	return name
}

func copyWithProgress(dst io.Writer, src io.Reader, total int64, progress func(int)) (int64, error) {
	if progress == nil {
		progress = func(int) {}
	}

	buf := make([]byte, copyChunkSize)
	var written int64
	last := -1
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return written, werr
			}
			written += int64(n)

			pct := int(written * 100 / total)
			if pct > 100 {
				pct = 100
			}
			if pct != last {
				progress(pct)
				last = pct
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return written, err
		}
	}

	if last != 100 {
		progress(100)
	}
	return written, nil
}
