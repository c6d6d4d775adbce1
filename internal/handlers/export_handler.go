package handlers

import (
	"bytes"
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/infinitystack/job-application-tracker/internal/dtos"
	"github.com/infinitystack/job-application-tracker/internal/export"
)

type ExportHandler struct{}

func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// Export is the POST /exportDocument endpoint. DOCX is built from the text
// content; PDF paginates the base64 PNG snapshot the caller rendered.
func (h *ExportHandler) Export(c *gin.Context) {
	var req dtos.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	var buf bytes.Buffer
	switch req.Format {
	case "docx":
		if req.Content == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required for docx export"})
			return
		}
		if err := export.WriteDOCX(&buf, req.Content); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed: " + err.Error()})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="document.docx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", buf.Bytes())

	case "pdf":
		if req.Snapshot == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Snapshot is required for pdf export"})
			return
		}
		snapshot, err := base64.StdEncoding.DecodeString(req.Snapshot)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Snapshot must be base64-encoded PNG"})
			return
		}
		if err := export.WritePDF(&buf, snapshot); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed: " + err.Error()})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="document.pdf"`)
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format must be pdf or docx"})
	}
}
