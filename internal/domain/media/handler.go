package media

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/pkg/response"
)

const DefaultFolder = "media"

type Handler struct {
	store Store
	hub   *Hub
}

func NewHandler(store Store, hub *Hub) *Handler {
	return &Handler{store: store, hub: hub}
}

// List godoc
// @Summary List blobs in a folder
// @Tags Media
// @Produce json
// @Security BearerAuth
// @Param folder query string false "Folder" default(media)
// @Success 200 {object} map[string]interface{}
// @Router /admin/media [get]
func (h *Handler) List(c *gin.Context) {
	folder := c.DefaultQuery("folder", DefaultFolder)

	items, err := h.store.List(folder)
	if err != nil {
		if errors.Is(err, ErrBadPath) {
			response.Error(c, http.StatusBadRequest, "BAD_PATH", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to list media")
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Upload godoc
// @Summary Upload a blob
// @Description Multipart upload. When a "ticket" field is sent, progress is
// pushed to the media progress websocket under that ticket.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Param folder formData string false "Folder"
// @Param ticket formData string false "Progress ticket"
// @Success 201 {object} map[string]interface{}
// @Failure 400,413,500 {object} map[string]interface{}
// @Router /admin/media/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "no file provided")
		return
	}
	folder := c.DefaultPostForm("folder", DefaultFolder)
	ticket := c.PostForm("ticket")

	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_FILE", "failed to open uploaded file")
		return
	}
	defer src.Close()

	var progress func(int)
	if ticket != "" {
		progress = func(pct int) {
			h.hub.Broadcast(&ProgressEvent{Ticket: ticket, Percent: pct, Done: pct == 100})
		}
	}

	item, err := h.store.Save(src, fileHeader.Size, fileHeader.Filename, folder, progress)
	if err != nil {
		if ticket != "" {
			h.hub.Broadcast(&ProgressEvent{Ticket: ticket, Error: err.Error()})
		}
		switch {
		case errors.Is(err, ErrEmptyFile), errors.Is(err, ErrBadPath):
			response.Error(c, http.StatusBadRequest, "BAD_UPLOAD", err.Error())
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "upload failed")
		}
		return
	}

	response.Success(c, http.StatusCreated, item)
}

type deleteRequest struct {
	FullPath string `json:"fullPath" binding:"required"`
}

// Delete godoc
// @Summary Delete a blob
// @Description Removes only the blob; catalogue entries pointing at it are
// not checked or updated.
// @Tags Media
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body deleteRequest true "Blob path"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404 {object} map[string]interface{}
// @Router /admin/media [delete]
func (h *Handler) Delete(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.store.Delete(req.FullPath); err != nil {
		switch {
		case errors.Is(err, ErrBlobNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrBadPath):
			response.Error(c, http.StatusBadRequest, "BAD_PATH", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "delete failed")
		}
		return
	}
	response.Message(c, http.StatusOK, "deleted")
}

// Progress upgrades to the websocket that streams ProgressEvent frames.
func (h *Handler) Progress(c *gin.Context) {
	h.hub.ServeWS(c.Writer, c.Request)
}
