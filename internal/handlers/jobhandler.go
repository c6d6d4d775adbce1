package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/infinitystack/job-application-tracker/internal/dtos"
	"github.com/infinitystack/job-application-tracker/internal/services"
)

// Dependency injection so handlers stay thin over the job service
type JobHandler struct {
	JobService *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{JobService: j}
}

// CreateJob is the POST /createJob endpoint
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	id, err := h.JobService.CreateJob(&req)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Job entry created successfully!", "id": id})
}

// GetUserJobs is the GET /getuserJobs endpoint
func (h *JobHandler) GetUserJobs(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	rows, err := h.JobService.UserJobs(email)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": rows})
}

// GetAllJobs is the GET /getAllJobs endpoint (the shared catalog)
func (h *JobHandler) GetAllJobs(c *gin.Context) {
	jobs, err := h.JobService.AllJobs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// EditJob is the POST /editJob endpoint
func (h *JobHandler) EditJob(c *gin.Context) {
	var req dtos.JobUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if req.JobID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Job ID is required"})
		return
	}

	err := h.JobService.EditJob(&req)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, services.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Job updated successfully!"})
	}
}

// DeleteJob is the POST /deleteJob endpoint
func (h *JobHandler) DeleteJob(c *gin.Context) {
	var req dtos.JobDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	err := h.JobService.DeleteJob(req.JobsID, req.Email)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, services.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully!"})
	}
}
