package file

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio/internal/pkg/response"
)

// BlobStore is the slice of the media object store the file manager needs
// for "delete completely".
type BlobStore interface {
	Delete(fullPath string) error
}

type Handler struct {
	service *Service
	blobs   BlobStore
}

func NewHandler(service *Service, blobs BlobStore) *Handler {
	return &Handler{service: service, blobs: blobs}
}

// List godoc
// @Summary List catalogued files
// @Tags Files
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /files [get]
func (h *Handler) List(c *gin.Context) {
	files, err := h.service.GetFiles(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to list files")
		return
	}
	response.Success(c, http.StatusOK, files)
}

// Featured godoc
// @Summary Featured files
// @Tags Files
// @Produce json
// @Param limit query int false "Max rows" default(6)
// @Success 200 {object} map[string]interface{}
// @Router /files/featured [get]
func (h *Handler) Featured(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if err != nil || limit <= 0 {
		limit = 6
	}

	files, err := h.service.GetFeaturedFiles(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to list featured files")
		return
	}
	response.Success(c, http.StatusOK, files)
}

// ByCategory godoc
// @Summary Files in a category
// @Tags Files
// @Produce json
// @Param category path string true "Category label"
// @Success 200 {object} map[string]interface{}
// @Router /files/category/{category} [get]
func (h *Handler) ByCategory(c *gin.Context) {
	category := c.Param("category")
	if !ValidCategory(category) {
		response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", ErrInvalidCategory.Error())
		return
	}

	files, err := h.service.GetFilesByCategory(c.Request.Context(), category)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to list files")
		return
	}
	response.Success(c, http.StatusOK, files)
}

// Get godoc
// @Summary Get one file
// @Tags Files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /files/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	f, err := h.service.GetFile(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "file not found")
		return
	}
	response.Success(c, http.StatusOK, f)
}

// Download godoc
// @Summary Resolve a download URL and record the download
// @Description Tracking is best effort and never blocks the download.
// @Tags Files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /files/{id}/download [post]
func (h *Handler) Download(c *gin.Context) {
	id := c.Param("id")
	f, err := h.service.GetFile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "file not found")
		return
	}

	h.service.TrackDownload(c.Request.Context(), id, c.ClientIP(), c.Request.UserAgent())

	response.Success(c, http.StatusOK, gin.H{"downloadUrl": f.DownloadURL})
}

// Create godoc
// @Summary Catalogue a file
// @Tags Files
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateFileRequest true "File metadata"
// @Success 201 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]interface{}
// @Router /admin/files [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	f, err := h.service.CreateFile(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCategory) {
			response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to create file")
		return
	}
	response.Success(c, http.StatusCreated, f)
}

// Update godoc
// @Summary Update file metadata
// @Tags Files
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "File ID"
// @Param body body UpdateFileRequest true "Partial patch"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404 {object} map[string]interface{}
// @Router /admin/files/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var patch UpdateFileRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	f, err := h.service.UpdateFile(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCategory):
			response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", err.Error())
		case errors.Is(err, ErrFileNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "file not found")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to update file")
		}
		return
	}
	response.Success(c, http.StatusOK, f)
}

// Delete godoc
// @Summary Delete the catalogue entry only
// @Description The blob in the object store is left in place.
// @Tags Files
// @Produce json
// @Security BearerAuth
// @Param id path string true "File ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/files/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.DeleteFile(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to delete file")
		return
	}
	response.Message(c, http.StatusOK, "deleted")
}

// DeleteComplete godoc
// @Summary Delete the blob and the catalogue entry
// @Description Blob first, catalogue row second. If the blob delete fails
// the catalogue row is kept so the reference stays findable.
// @Tags Files
// @Produce json
// @Security BearerAuth
// @Param id path string true "File ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404,502 {object} map[string]interface{}
// @Router /admin/files/{id}/complete [delete]
func (h *Handler) DeleteComplete(c *gin.Context) {
	id := c.Param("id")
	f, err := h.service.GetFile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "file not found")
		return
	}

	if f.FullPath != "" {
		if err := h.blobs.Delete(f.FullPath); err != nil {
			response.Error(c, http.StatusBadGateway, "BLOB_DELETE_FAILED", "object store delete failed; catalogue entry kept")
			return
		}
	}

	if err := h.service.DeleteFile(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "blob removed but catalogue delete failed")
		return
	}
	response.Message(c, http.StatusOK, "deleted completely")
}
