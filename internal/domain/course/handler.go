package course

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
	var courses []Course
	err := h.db.WithContext(c.Request.Context()).Order("date DESC").Find(&courses).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to list courses")
		return
	}
	response.Success(c, http.StatusOK, courses)
}

func (h *Handler) Create(c *gin.Context) {
	var course Course
	if err := c.ShouldBindJSON(&course); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if course.Title == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "title is required")
		return
	}
	course.ID = 0

	if err := h.db.WithContext(c.Request.Context()).Create(&course).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to create course")
		return
	}
	response.Success(c, http.StatusCreated, course)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid course id")
		return
	}

	var existing Course
	err = h.db.WithContext(c.Request.Context()).First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", ErrCourseNotFound.Error())
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to load course")
		return
	}

	var course Course
	if err := c.ShouldBindJSON(&course); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	course.ID = existing.ID
	course.CreatedAt = existing.CreatedAt

	if err := h.db.WithContext(c.Request.Context()).Save(&course).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to update course")
		return
	}
	response.Success(c, http.StatusOK, course)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid course id")
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&Course{}, id)
	if res.Error != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to delete course")
		return
	}
	if res.RowsAffected == 0 {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", ErrCourseNotFound.Error())
		return
	}
	response.Message(c, http.StatusOK, "deleted")
}
