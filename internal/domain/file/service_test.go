package file

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolio/internal/database"
)

func setupService(t *testing.T) (*Service, *gorm.DB, *gorm.DB) {
	t.Helper()

	secondaryDB, err := database.ConnectSecondary(":memory:")
	require.NoError(t, err)
	require.NoError(t, secondaryDB.AutoMigrate(&RawFile{}, &FileFeature{}, &FileDownload{}))

	primaryDB, err := database.ConnectPrimary(":memory:")
	require.NoError(t, err)
	require.NoError(t, primaryDB.AutoMigrate(&PrimaryFile{}))

	svc := NewService(NewSecondaryStore(secondaryDB), NewPrimaryStore(primaryDB))
	return svc, secondaryDB, primaryDB
}

func TestCreateFile_FilesPathGoesToSecondary(t *testing.T) {
	svc, secondaryDB, primaryDB := setupService(t)
	ctx := context.Background()

	f, err := svc.CreateFile(ctx, &CreateFileRequest{
		Title:       "Annual Report",
		TitleAr:     "التقرير السنوي",
		Category:    CategoryDocument,
		FileType:    "application/pdf",
		Size:        2048,
		DownloadURL: "/static/media/files/report.pdf",
		FullPath:    "files/report.pdf",
	})
	require.NoError(t, err)

	// numeric id means the row landed in the catalogue
	_, err = strconv.ParseInt(f.ID, 10, 64)
	require.NoError(t, err)
	assert.Equal(t, "Annual Report", f.Title)
	assert.Equal(t, "files/report.pdf", f.FullPath)

	var rawCount, primaryCount int64
	secondaryDB.Model(&RawFile{}).Count(&rawCount)
	primaryDB.Model(&PrimaryFile{}).Count(&primaryCount)
	assert.EqualValues(t, 1, rawCount)
	assert.EqualValues(t, 0, primaryCount)

	got, err := svc.GetFile(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Annual Report", got.Title)
	assert.Equal(t, "التقرير السنوي", got.TitleAr)
}

func TestCreateFile_ExternalPathGoesToPrimary(t *testing.T) {
	svc, secondaryDB, primaryDB := setupService(t)
	ctx := context.Background()

	f, err := svc.CreateFile(ctx, &CreateFileRequest{
		Title:       "External Report",
		Category:    CategoryDocument,
		DownloadURL: "https://example.com/report.pdf",
		FullPath:    "external/report.pdf",
	})
	require.NoError(t, err)

	_, numeric := isNumericID(f.ID)
	assert.False(t, numeric, "primary-store ids must not look numeric")
	assert.Len(t, f.ID, 36)

	var rawCount, primaryCount int64
	secondaryDB.Model(&RawFile{}).Count(&rawCount)
	primaryDB.Model(&PrimaryFile{}).Count(&primaryCount)
	assert.EqualValues(t, 0, rawCount)
	assert.EqualValues(t, 1, primaryCount)

	got, err := svc.GetFile(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "External Report", got.Title)
}

func TestCreateFile_ReusesExistingRawRow(t *testing.T) {
	svc, secondaryDB, _ := setupService(t)
	ctx := context.Background()

	require.NoError(t, secondaryDB.Create(&RawFile{
		Name:     "cv.pdf",
		MimeType: "application/pdf",
		Size:     100,
		Path:     "files/cv.pdf",
		URL:      "/static/media/files/cv.pdf",
	}).Error)

	f, err := svc.CreateFile(ctx, &CreateFileRequest{
		Title:       "CV",
		Category:    CategoryDocument,
		DownloadURL: "/static/media/files/cv.pdf",
		FullPath:    "files/cv.pdf",
	})
	require.NoError(t, err)

	var rawCount int64
	secondaryDB.Model(&RawFile{}).Count(&rawCount)
	assert.EqualValues(t, 1, rawCount, "cataloguing an uploaded blob must not duplicate its row")
	assert.Equal(t, "1", f.ID)
}

func TestCreateFile_InvalidCategory(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.CreateFile(context.Background(), &CreateFileRequest{
		Title:       "Bad",
		Category:    "Screenplay",
		DownloadURL: "x",
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestUpdateFile_UpsertIsIdempotent(t *testing.T) {
	svc, secondaryDB, _ := setupService(t)
	ctx := context.Background()

	f, err := svc.CreateFile(ctx, &CreateFileRequest{
		Title:       "Draft",
		Category:    CategoryDocument,
		DownloadURL: "/static/media/files/draft.pdf",
		FullPath:    "files/draft.pdf",
	})
	require.NoError(t, err)

	title := "Final"
	featured := true
	_, err = svc.UpdateFile(ctx, f.ID, &UpdateFileRequest{Title: &title})
	require.NoError(t, err)
	got, err := svc.UpdateFile(ctx, f.ID, &UpdateFileRequest{Featured: &featured})
	require.NoError(t, err)

	assert.Equal(t, "Final", got.Title)
	assert.True(t, got.Featured)

	var featureCount int64
	secondaryDB.Model(&FileFeature{}).Count(&featureCount)
	assert.EqualValues(t, 1, featureCount, "repeated updates must overwrite the single metadata row")
}

func TestUpdateFile_PrimaryPatch(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	f, err := svc.CreateFile(ctx, &CreateFileRequest{
		Title:       "Before",
		Category:    CategoryTemplate,
		DownloadURL: "https://example.com/t.docx",
		FullPath:    "external/t.docx",
	})
	require.NoError(t, err)

	titleAr := "بعد"
	got, err := svc.UpdateFile(ctx, f.ID, &UpdateFileRequest{TitleAr: &titleAr})
	require.NoError(t, err)
	assert.Equal(t, "Before", got.Title)
	assert.Equal(t, "بعد", got.TitleAr)
}

func TestUpdateFile_NotFound(t *testing.T) {
	svc, _, _ := setupService(t)

	title := "x"
	_, err := svc.UpdateFile(context.Background(), "no-such-id", &UpdateFileRequest{Title: &title})
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestListFallsBackToPrimary(t *testing.T) {
	svc, secondaryDB, primaryDB := setupService(t)
	ctx := context.Background()

	require.NoError(t, primaryDB.Create(&PrimaryFile{
		ID:       "legacy-1",
		Title:    "Legacy",
		Category: CategoryDocument,
		Date:     "2020-01-01",
	}).Error)

	// breaking the catalogue forces every read down the primary path
	require.NoError(t, secondaryDB.Migrator().DropTable("file_features"))
	require.NoError(t, secondaryDB.Migrator().DropTable("files"))

	files, err := svc.GetFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "Legacy", files[0].Title)

	got, err := svc.GetFile(ctx, "legacy-1")
	require.NoError(t, err)
	assert.Equal(t, "Legacy", got.Title)
}

func TestGetFile_ArabicDefaults(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	f, err := svc.CreateFile(ctx, &CreateFileRequest{
		Title:       "English only",
		Description: "No Arabic provided",
		Category:    CategoryDocument,
		DownloadURL: "/static/media/files/en.pdf",
		FullPath:    "files/en.pdf",
	})
	require.NoError(t, err)

	got, err := svc.GetFile(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "English only", got.TitleAr)
	assert.Equal(t, "No Arabic provided", got.DescriptionAr)
}

func TestGetFilesByCategoryAndFeatured(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	for _, req := range []*CreateFileRequest{
		{Title: "Doc", Category: CategoryDocument, DownloadURL: "a", FullPath: "files/a.pdf", Featured: true},
		{Title: "Deck", Category: CategoryPresentation, DownloadURL: "b", FullPath: "files/b.pptx"},
	} {
		_, err := svc.CreateFile(ctx, req)
		require.NoError(t, err)
	}

	docs, err := svc.GetFilesByCategory(ctx, CategoryDocument)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Doc", docs[0].Title)

	featured, err := svc.GetFeaturedFiles(ctx, 6)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Doc", featured[0].Title)
}

func TestDeleteFile_RemovesFeatureAndRaw(t *testing.T) {
	svc, secondaryDB, _ := setupService(t)
	ctx := context.Background()

	f, err := svc.CreateFile(ctx, &CreateFileRequest{
		Title:       "Gone soon",
		Category:    CategoryArchive,
		DownloadURL: "/static/media/files/old.zip",
		FullPath:    "files/old.zip",
	})
	require.NoError(t, err)

	svc.TrackDownload(ctx, f.ID, "127.0.0.1", "test-agent")

	require.NoError(t, svc.DeleteFile(ctx, f.ID))

	var rawCount, featureCount, downloadCount int64
	secondaryDB.Model(&RawFile{}).Count(&rawCount)
	secondaryDB.Model(&FileFeature{}).Count(&featureCount)
	secondaryDB.Model(&FileDownload{}).Count(&downloadCount)
	assert.EqualValues(t, 0, rawCount)
	assert.EqualValues(t, 0, featureCount)
	assert.EqualValues(t, 0, downloadCount, "download audit rows cascade with their file")
}

func TestTrackDownload_RecordsAndSwallows(t *testing.T) {
	svc, secondaryDB, _ := setupService(t)
	ctx := context.Background()

	f, err := svc.CreateFile(ctx, &CreateFileRequest{
		Title:       "Counted",
		Category:    CategoryDocument,
		DownloadURL: "/static/media/files/c.pdf",
		FullPath:    "files/c.pdf",
	})
	require.NoError(t, err)

	svc.TrackDownload(ctx, f.ID, "10.0.0.1", "agent")

	var count int64
	secondaryDB.Model(&FileDownload{}).Count(&count)
	assert.EqualValues(t, 1, count)

	// non-numeric and unknown ids must not panic or surface errors
	svc.TrackDownload(ctx, "not-a-number", "10.0.0.1", "agent")
	svc.TrackDownload(ctx, "999999", "10.0.0.1", "agent")
}
