package publication

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio/internal/pkg/response"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) List(c *gin.Context) {
	var pubs []Publication
	err := h.db.WithContext(c.Request.Context()).
		Order("year DESC, created_at DESC").
		Find(&pubs).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to list publications")
		return
	}
	response.Success(c, http.StatusOK, pubs)
}

func (h *Handler) Create(c *gin.Context) {
	var p Publication
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if p.Title == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "title is required")
		return
	}
	p.ID = 0

	if err := h.db.WithContext(c.Request.Context()).Create(&p).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to create publication")
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid publication id")
		return
	}

	var existing Publication
	err = h.db.WithContext(c.Request.Context()).First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "publication not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to load publication")
		return
	}

	var p Publication
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt

	if err := h.db.WithContext(c.Request.Context()).Save(&p).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to update publication")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid publication id")
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&Publication{}, id)
	if res.Error != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to delete publication")
		return
	}
	if res.RowsAffected == 0 {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", ErrPublicationNotFound.Error())
		return
	}
	response.Message(c, http.StatusOK, "deleted")
}
