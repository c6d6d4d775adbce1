// Package tracker holds the client-side state of the job application list:
// the filtered/sorted view over the cached records and the form controller
// that drives create/edit/delete against the remote store.
package tracker

import "context"

// JobApplication is one tracked application, in the client-side field shape.
type JobApplication struct {
	ID             uint   `json:"id"`
	JobTitle       string `json:"jobTitle"`
	Company        string `json:"company"`
	JobLocation    string `json:"jobLocation"`
	JobType        string `json:"jobType"`
	JobStatus      string `json:"jobStatus"`
	DateApplied    string `json:"dateApplied"` // ISO date, YYYY-MM-DD
	JobLink        string `json:"jobLink"`
	JobDescription string `json:"jobDescription"`
}

// Statuses an application can be in.
const (
	StatusApplied   = "Applied"
	StatusInterview = "Interview"
	StatusOffer     = "Offer"
	StatusRejected  = "Rejected"
)

// CatalogJob is a shared, read-only posting usable as a prefill template.
type CatalogJob struct {
	ID             uint   `json:"jobs_id"`
	JobTitle       string `json:"job_title"`
	Company        string `json:"company_name"`
	JobLocation    string `json:"job_location"`
	JobType        string `json:"job_type"`
	JobLink        string `json:"job_link"`
	JobDescription string `json:"job_description"`
}

// JobStore is the remote side of the form controller. The REST client
// implements it; tests use a fake.
type JobStore interface {
	// CreateJob persists a new application and returns the server-assigned id.
	// catalogID links an existing catalog row when non-zero.
	CreateJob(ctx context.Context, draft JobApplication, catalogID uint) (uint, error)
	EditJob(ctx context.Context, draft JobApplication) error
	DeleteJob(ctx context.Context, id uint) error
}
