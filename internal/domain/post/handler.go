package post

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListPublic returns published posts only.
func (h *Handler) ListPublic(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context(), false)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to list posts")
		return
	}
	response.Success(c, http.StatusOK, posts)
}

// GetBySlug returns a single published post.
func (h *Handler) GetBySlug(c *gin.Context) {
	p, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "post not found")
		return
	}
	response.Success(c, http.StatusOK, p)
}

// ListAdmin returns every post, drafts included.
func (h *Handler) ListAdmin(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context(), true)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to list posts")
		return
	}
	response.Success(c, http.StatusOK, posts)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	p, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			response.Error(c, http.StatusConflict, "SLUG_TAKEN", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to create post")
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid post id")
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "post not found")
		case errors.Is(err, ErrSlugTaken):
			response.Error(c, http.StatusConflict, "SLUG_TAKEN", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to update post")
		}
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid post id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to delete post")
		return
	}
	response.Message(c, http.StatusOK, "deleted")
}
