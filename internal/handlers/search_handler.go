package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/infinitystack/job-application-tracker/internal/services"
)

type SearchHandler struct {
	SearchService *services.SearchService
}

func NewSearchHandler(search *services.SearchService) *SearchHandler {
	return &SearchHandler{SearchService: search}
}

// Adzuna is the GET /jobsearchapi endpoint
func (h *SearchHandler) Adzuna(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("keyword"))
	country := strings.ToLower(strings.TrimSpace(c.DefaultQuery("country", "us")))
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	resp, err := h.SearchService.SearchAdzuna(c.Request.Context(), keyword, country, page)
	if errors.Is(err, services.ErrInvalidCountry) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid country. Choose 'us' or 'ca'."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jobs", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Jooble is the GET /jooblejobsearchapi endpoint
func (h *SearchHandler) Jooble(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("keyword"))
	location := strings.TrimSpace(c.Query("location"))

	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Keyword is required"})
		return
	}

	resp, err := h.SearchService.SearchJooble(c.Request.Context(), keyword, location)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
