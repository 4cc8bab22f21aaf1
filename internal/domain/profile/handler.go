package profile

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio/internal/pkg/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Get returns the profile together with education and experience rows, which
// is what the public home page renders.
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.repo.GetProfile(ctx)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to load profile")
		return
	}
	education, err := h.repo.ListEducation(ctx)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to load education")
		return
	}
	experience, err := h.repo.ListExperience(ctx)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to load experience")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"profile":    p,
		"education":  education,
		"experience": experience,
	})
}

// Update overwrites the singleton profile row.
func (h *Handler) Update(c *gin.Context) {
	existing, err := h.repo.GetProfile(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to load profile")
		return
	}

	var p Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	p.ID = existing.ID

	if err := h.repo.SaveProfile(c.Request.Context(), &p); err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to save profile")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) CreateEducation(c *gin.Context) {
	var e Education
	if err := c.ShouldBindJSON(&e); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if e.Institution == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "institution is required")
		return
	}
	e.ID = 0

	if err := h.repo.CreateEducation(c.Request.Context(), &e); err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to create entry")
		return
	}
	response.Success(c, http.StatusCreated, e)
}

func (h *Handler) UpdateEducation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid entry id")
		return
	}

	existing, err := h.repo.GetEducation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "entry not found")
		return
	}

	var e Education
	if err := c.ShouldBindJSON(&e); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	e.ID = existing.ID
	e.CreatedAt = existing.CreatedAt

	if err := h.repo.UpdateEducation(c.Request.Context(), &e); err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to update entry")
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) DeleteEducation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid entry id")
		return
	}

	if err := h.repo.DeleteEducation(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "entry not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to delete entry")
		return
	}
	response.Message(c, http.StatusOK, "deleted")
}

func (h *Handler) CreateExperience(c *gin.Context) {
	var e Experience
	if err := c.ShouldBindJSON(&e); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if e.Company == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "company is required")
		return
	}
	e.ID = 0

	if err := h.repo.CreateExperience(c.Request.Context(), &e); err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to create entry")
		return
	}
	response.Success(c, http.StatusCreated, e)
}

func (h *Handler) UpdateExperience(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid entry id")
		return
	}

	existing, err := h.repo.GetExperience(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "entry not found")
		return
	}

	var e Experience
	if err := c.ShouldBindJSON(&e); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	e.ID = existing.ID
	e.CreatedAt = existing.CreatedAt

	if err := h.repo.UpdateExperience(c.Request.Context(), &e); err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to update entry")
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) DeleteExperience(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid entry id")
		return
	}

	if err := h.repo.DeleteExperience(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "entry not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "failed to delete entry")
		return
	}
	response.Message(c, http.StatusOK, "deleted")
}
