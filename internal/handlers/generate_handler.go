package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/infinitystack/job-application-tracker/internal/dtos"
	"github.com/infinitystack/job-application-tracker/internal/services"
)

type GenerateHandler struct {
	LLMService     *services.LLMService
	ProfileService *services.ProfileService
}

func NewGenerateHandler(llm *services.LLMService, profiles *services.ProfileService) *GenerateHandler {
	return &GenerateHandler{LLMService: llm, ProfileService: profiles}
}

// Resume is the POST /generateResume endpoint
func (h *GenerateHandler) Resume(c *gin.Context) {
	profile, req, ok := h.loadProfile(c)
	if !ok {
		return
	}

	resume, err := h.LLMService.GenerateResume(c.Request.Context(), profile, req.JobDescription)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI generation failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Resume": resume})
}

// CoverLetter is the POST /generateCoverLetter endpoint
func (h *GenerateHandler) CoverLetter(c *gin.Context) {
	profile, req, ok := h.loadProfile(c)
	if !ok {
		return
	}

	letter, err := h.LLMService.GenerateCoverLetter(c.Request.Context(), profile, req.JobDescription)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI generation failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cover_letter": letter})
}

// loadProfile binds the request and fetches the caller's stored profile.
// Writes the error response itself when something is off.
func (h *GenerateHandler) loadProfile(c *gin.Context) (*dtos.ProfileData, *dtos.GenerateRequest, bool) {
	var req dtos.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Job description and email are required"})
		return nil, nil, false
	}

	profile, err := h.ProfileService.Get(req.Email)
	if errors.Is(err, services.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No user found with that email"})
		return nil, nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
		return nil, nil, false
	}
	return profile, &req, true
}
