package achievement

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
	var items []Achievement
	err := h.db.WithContext(c.Request.Context()).Order("date DESC").Find(&items).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to list achievements")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var a Achievement
	if err := c.ShouldBindJSON(&a); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if a.Title == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "title is required")
		return
	}
	a.ID = 0

	if err := h.db.WithContext(c.Request.Context()).Create(&a).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to create achievement")
		return
	}
	response.Success(c, http.StatusCreated, a)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid achievement id")
		return
	}

	var existing Achievement
	err = h.db.WithContext(c.Request.Context()).First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", ErrAchievementNotFound.Error())
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to load achievement")
		return
	}

	var a Achievement
	if err := c.ShouldBindJSON(&a); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	a.ID = existing.ID
	a.CreatedAt = existing.CreatedAt

	if err := h.db.WithContext(c.Request.Context()).Save(&a).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to update achievement")
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid achievement id")
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&Achievement{}, id)
	if res.Error != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to delete achievement")
		return
	}
	if res.RowsAffected == 0 {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", ErrAchievementNotFound.Error())
		return
	}
	response.Message(c, http.StatusOK, "deleted")
}
