package dtos

type GenerateRequest struct {
	JobDescription string `json:"job_description" binding:"required"`
	Email          string `json:"email" binding:"required"`
}

// ExportRequest feeds /exportDocument. Snapshot carries a base64-encoded PNG
// of the rendered content and is only consulted for the pdf format.
type ExportRequest struct {
	Content  string `json:"content"`
	Format   string `json:"format" binding:"required,oneof=pdf docx"`
	Snapshot string `json:"snapshot"`
}
