package dtos

// JobUpsertRequest covers /createJob and /editJob. Field names mirror the wire
// format the frontend has always sent, so they stay snake_case.
type JobUpsertRequest struct {
	JobTitle       string `json:"job_title" binding:"required"`
	CompanyName    string `json:"company_name" binding:"required"`
	JobLocation    string `json:"job_location"`
	JobType        string `json:"job_type"`
	JobStatus      string `json:"job_status"` // Defaults to "Applied" if empty
	DateApplied    string `json:"date_applied"`
	JobLink        string `json:"job_link"`
	JobDescription string `json:"job_description"`
	Email          string `json:"email" binding:"required"`
	// Empty on create unless the entry links an existing catalog job
	JobID uint `json:"job_id"`
}

type JobDeleteRequest struct {
	JobsID uint   `json:"jobs_id" binding:"required"`
	Email  string `json:"email" binding:"required"`
}

// UserJobRow is one row of /getuserJobs: catalog fields joined with the
// per-user status and application date.
type UserJobRow struct {
	JobsID         uint   `json:"jobs_id"`
	JobTitle       string `json:"job_title"`
	CompanyName    string `json:"company_name"`
	JobLocation    string `json:"job_location"`
	JobType        string `json:"job_type"`
	JobLink        string `json:"job_link"`
	JobDescription string `json:"job_description"`
	DateApplied    string `json:"date_applied"`
	JobStatus      string `json:"job_status"`
}
