package file

import (
	"context"
	"log"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service presents a single File CRUD contract and transparently routes each
// call to one of the two backing stores. Reads try the secondary catalogue
// first and fall back to the primary store on any error; they never merge
// partial results. Which store a write targets is decided purely by the
// shape of the identifier (numeric string) or the path ("files/" prefix).
// That is a heuristic, not a guarantee: a primary record with a
// coincidentally numeric id would be misrouted, and this behavior is kept
// deliberately.
type Service struct {
	secondary *SecondaryStore
	primary   *PrimaryStore
}

func NewService(secondary *SecondaryStore, primary *PrimaryStore) *Service {
	return &Service{secondary: secondary, primary: primary}
}

func isNumericID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	return n, err == nil
}

// GetFiles lists the whole catalogue: secondary join first, primary on error.
func (s *Service) GetFiles(ctx context.Context) ([]File, error) {
	rows, err := s.secondary.List(ctx)
	if err == nil {
		return mapRows(rows), nil
	}
	log.Printf("file: secondary list failed, falling back to primary: %v", err)

	primaries, err := s.primary.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapPrimaries(primaries), nil
}

// GetFile resolves a single record. Numeric ids try the secondary store
// first; everything else (and every secondary failure) goes to the primary
// store.
func (s *Service) GetFile(ctx context.Context, id string) (*File, error) {
	if n, ok := isNumericID(id); ok {
		row, err := s.secondary.Get(ctx, n)
		if err == nil {
			f := mapRow(*row)
			applyArabicDefaults(&f)
			return &f, nil
		}
		log.Printf("file: secondary get %q failed, falling back to primary: %v", id, err)
	}

	p, err := s.primary.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	f := mapPrimary(*p)
	return &f, nil
}

// CreateFile catalogues a blob. A "files/" path means "catalogue an existing
// secondary-store blob": reuse (or insert) the RawFile row, then upsert its
// FileFeature. Any exception on that path falls through to a plain insert in
// the primary store with a fresh UUID id.
func (s *Service) CreateFile(ctx context.Context, req *CreateFileRequest) (*File, error) {
	if req.Category == "" {
		req.Category = CategoryDocument
	}
	if !ValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	if strings.HasPrefix(req.FullPath, "files/") {
		f, err := s.createCatalogued(ctx, req)
		if err == nil {
			return f, nil
		}
		log.Printf("file: secondary create for %q failed, falling back to primary: %v", req.FullPath, err)
	}

	return s.createPrimary(ctx, req)
}

func (s *Service) createCatalogued(ctx context.Context, req *CreateFileRequest) (*File, error) {
	name := path.Base(req.FullPath)

	raw, err := s.secondary.FindRawByNameOrPath(ctx, name, req.FullPath)
	if err == ErrFileNotFound {
		raw = &RawFile{
			Name:         name,
			OriginalName: name,
			MimeType:     req.FileType,
			Size:         req.Size,
			Path:         req.FullPath,
			URL:          req.DownloadURL,
			Folder:       path.Dir(req.FullPath),
		}
		err = s.secondary.CreateRaw(ctx, raw)
	}
	if err != nil {
		return nil, err
	}

	feature := &FileFeature{
		FileID:        raw.ID,
		Title:         req.Title,
		TitleAr:       req.TitleAr,
		Description:   req.Description,
		DescriptionAr: req.DescriptionAr,
		Category:      req.Category,
		Featured:      req.Featured,
	}
	if err := s.secondary.UpsertFeature(ctx, feature); err != nil {
		return nil, err
	}

	return &File{
		ID:            strconv.FormatInt(raw.ID, 10),
		Title:         req.Title,
		TitleAr:       req.TitleAr,
		Description:   req.Description,
		DescriptionAr: req.DescriptionAr,
		Category:      req.Category,
		FileType:      raw.MimeType,
		Size:          raw.Size,
		Date:          raw.CreatedAt.Format("2006-01-02"),
		DownloadURL:   raw.URL,
		FullPath:      raw.Path,
		Featured:      req.Featured,
	}, nil
}

func (s *Service) createPrimary(ctx context.Context, req *CreateFileRequest) (*File, error) {
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	row := &PrimaryFile{
		ID:            uuid.NewString(),
		Title:         req.Title,
		TitleAr:       req.TitleAr,
		Description:   req.Description,
		DescriptionAr: req.DescriptionAr,
		Category:      req.Category,
		FileType:      req.FileType,
		Size:          req.Size,
		Date:          date,
		DownloadURL:   req.DownloadURL,
		FullPath:      req.FullPath,
		Featured:      req.Featured,
	}
	if err := s.primary.Create(ctx, row); err != nil {
		return nil, err
	}

	f := mapPrimary(*row)
	return &f, nil
}

// UpdateFile patches metadata. Numeric ids upsert the FileFeature row and
// re-read; anything else (or a secondary failure) becomes a primary-store
// partial update.
func (s *Service) UpdateFile(ctx context.Context, id string, patch *UpdateFileRequest) (*File, error) {
	if patch.Category != nil && !ValidCategory(*patch.Category) {
		return nil, ErrInvalidCategory
	}

	if n, ok := isNumericID(id); ok {
		f, err := s.updateSecondary(ctx, n, patch)
		if err == nil {
			return f, nil
		}
		log.Printf("file: secondary update %q failed, falling back to primary: %v", id, err)
	}

	if err := s.primary.Update(ctx, id, primaryPatch(patch)); err != nil {
		return nil, err
	}
	return s.GetFile(ctx, id)
}

func (s *Service) updateSecondary(ctx context.Context, id int64, patch *UpdateFileRequest) (*File, error) {
	row, err := s.secondary.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	feature := &FileFeature{
		FileID:        row.ID,
		Title:         row.Title,
		TitleAr:       row.TitleAr,
		Description:   row.Description,
		DescriptionAr: row.DescriptionAr,
		Category:      row.Category,
		Featured:      row.Featured,
	}
	if patch.Title != nil {
		feature.Title = *patch.Title
	}
	if patch.TitleAr != nil {
		feature.TitleAr = *patch.TitleAr
	}
	if patch.Description != nil {
		feature.Description = *patch.Description
	}
	if patch.DescriptionAr != nil {
		feature.DescriptionAr = *patch.DescriptionAr
	}
	if patch.Category != nil {
		feature.Category = *patch.Category
	}
	if patch.Featured != nil {
		feature.Featured = *patch.Featured
	}
	if feature.Category == "" {
		feature.Category = CategoryDocument
	}

	if err := s.secondary.UpsertFeature(ctx, feature); err != nil {
		return nil, err
	}

	return s.GetFile(ctx, strconv.FormatInt(id, 10))
}

// primaryPatch translates API field names to the primary store's own
// lowercase column names.
func primaryPatch(patch *UpdateFileRequest) map[string]interface{} {
	out := map[string]interface{}{}
	if patch.Title != nil {
		out["title"] = *patch.Title
	}
	if patch.TitleAr != nil {
		out["titlear"] = *patch.TitleAr
	}
	if patch.Description != nil {
		out["description"] = *patch.Description
	}
	if patch.DescriptionAr != nil {
		out["descriptionar"] = *patch.DescriptionAr
	}
	if patch.Category != nil {
		out["category"] = *patch.Category
	}
	if patch.Featured != nil {
		out["featured"] = *patch.Featured
	}
	return out
}

// DeleteFile removes the catalogue entry only; the blob in the object store
// is untouched and must be deleted through the media store explicitly.
func (s *Service) DeleteFile(ctx context.Context, id string) error {
	if n, ok := isNumericID(id); ok {
		err := s.secondary.DeleteCatalogued(ctx, n)
		if err == nil {
			return nil
		}
		log.Printf("file: secondary delete %q failed, falling back to primary: %v", id, err)
	}
	return s.primary.Delete(ctx, id)
}

func (s *Service) GetFilesByCategory(ctx context.Context, category string) ([]File, error) {
	rows, err := s.secondary.ListByCategory(ctx, category)
	if err == nil {
		return mapRows(rows), nil
	}
	log.Printf("file: secondary list by category failed, falling back to primary: %v", err)

	primaries, err := s.primary.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return mapPrimaries(primaries), nil
}

func (s *Service) GetFeaturedFiles(ctx context.Context, limit int) ([]File, error) {
	rows, err := s.secondary.ListFeatured(ctx, limit)
	if err == nil {
		return mapRows(rows), nil
	}
	log.Printf("file: secondary featured list failed, falling back to primary: %v", err)

	primaries, err := s.primary.ListFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}
	return mapPrimaries(primaries), nil
}

// TrackDownload records a download in the audit table. Best effort: download
// counting must never block or fail the download itself, so every error is
// swallowed.
func (s *Service) TrackDownload(ctx context.Context, id, ip, userAgent string) {
	n, ok := isNumericID(id)
	if !ok {
		return
	}
	err := s.secondary.InsertDownload(ctx, &FileDownload{
		FileID:    n,
		IPAddress: ip,
		UserAgent: userAgent,
	})
	if err != nil {
		log.Printf("file: download tracking failed for %q: %v", id, err)
	}
}

func mapRow(row catalogueRow) File {
	title := row.Title
	if title == "" {
		title = row.OriginalName
	}
	return File{
		ID:            strconv.FormatInt(row.ID, 10),
		Title:         title,
		TitleAr:       row.TitleAr,
		Description:   row.Description,
		DescriptionAr: row.DescriptionAr,
		Category:      row.Category,
		FileType:      row.MimeType,
		Size:          row.Size,
		Date:          row.CreatedAt.Format("2006-01-02"),
		DownloadURL:   row.URL,
		FullPath:      row.Path,
		Featured:      row.Featured,
	}
}

func mapRows(rows []catalogueRow) []File {
	out := make([]File, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapRow(row))
	}
	return out
}

func mapPrimary(p PrimaryFile) File {
	return File{
		ID:            p.ID,
		Title:         p.Title,
		TitleAr:       p.TitleAr,
		Description:   p.Description,
		DescriptionAr: p.DescriptionAr,
		Category:      p.Category,
		FileType:      p.FileType,
		Size:          p.Size,
		Date:          p.Date,
		DownloadURL:   p.DownloadURL,
		FullPath:      p.FullPath,
		Featured:      p.Featured,
	}
}

func mapPrimaries(rows []PrimaryFile) []File {
	out := make([]File, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapPrimary(row))
	}
	return out
}

func applyArabicDefaults(f *File) {
	if f.TitleAr == "" {
		f.TitleAr = f.Title
	}
	if f.DescriptionAr == "" {
		f.DescriptionAr = f.Description
	}
}
