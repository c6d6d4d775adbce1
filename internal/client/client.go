// Package client is the typed REST client for the tracker backend. It speaks
// the backend's snake_case wire format and normalizes records into the
// client-side shapes the tracker package works with.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/infinitystack/job-application-tracker/internal/dtos"
	"github.com/infinitystack/job-application-tracker/internal/tracker"
)

// APIError carries the backend's message for a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Session *Session
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		Session: NewSession(),
	}
}

// SignIn exchanges credentials for a token and publishes the auth change.
func (c *Client) SignIn(ctx context.Context, email, password string) error {
	var resp struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}
	err := c.post(ctx, "/signin", map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return err
	}
	c.Session.SignIn(email, resp.Token)
	return nil
}

// UserJobs fetches the signed-in user's applications and normalizes the
// backend field names into the client-side record shape.
func (c *Client) UserJobs(ctx context.Context) ([]tracker.JobApplication, error) {
	var resp struct {
		Jobs []dtos.UserJobRow `json:"jobs"`
	}
	query := url.Values{"email": {c.Session.Email()}}
	if err := c.get(ctx, "/getuserJobs?"+query.Encode(), &resp); err != nil {
		return nil, err
	}

	jobs := make([]tracker.JobApplication, 0, len(resp.Jobs))
	for _, row := range resp.Jobs {
		jobs = append(jobs, tracker.JobApplication{
			ID:             row.JobsID,
			JobTitle:       row.JobTitle,
			Company:        row.CompanyName,
			JobLocation:    row.JobLocation,
			JobType:        row.JobType,
			JobStatus:      row.JobStatus,
			DateApplied:    isoDate(row.DateApplied),
			JobLink:        row.JobLink,
			JobDescription: row.JobDescription,
		})
	}
	return jobs, nil
}

// AllJobs fetches the shared catalog for the prefill flow.
func (c *Client) AllJobs(ctx context.Context) ([]tracker.CatalogJob, error) {
	var resp struct {
		Jobs []tracker.CatalogJob `json:"jobs"`
	}
	if err := c.get(ctx, "/getAllJobs", &resp); err != nil {
		return nil, err
	}
	if resp.Jobs == nil {
		resp.Jobs = []tracker.CatalogJob{}
	}
	return resp.Jobs, nil
}

// CreateJob implements tracker.JobStore.
func (c *Client) CreateJob(ctx context.Context, draft tracker.JobApplication, catalogID uint) (uint, error) {
	payload := c.jobPayload(draft)
	payload.JobID = catalogID

	var resp struct {
		ID      uint   `json:"id"`
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/createJob", payload, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// EditJob implements tracker.JobStore.
func (c *Client) EditJob(ctx context.Context, draft tracker.JobApplication) error {
	payload := c.jobPayload(draft)
	payload.JobID = draft.ID
	return c.post(ctx, "/editJob", payload, &struct{}{})
}

// DeleteJob implements tracker.JobStore.
func (c *Client) DeleteJob(ctx context.Context, id uint) error {
	body := dtos.JobDeleteRequest{JobsID: id, Email: c.Session.Email()}
	return c.post(ctx, "/deleteJob", body, &struct{}{})
}

// GenerateResume asks the backend for a tailored resume. The model sometimes
// decorates output with horizontal rules; those are stripped here.
func (c *Client) GenerateResume(ctx context.Context, jobDescription string) (string, error) {
	var resp struct {
		Resume string `json:"Resume"`
	}
	body := dtos.GenerateRequest{JobDescription: jobDescription, Email: c.Session.Email()}
	if err := c.post(ctx, "/generateResume", body, &resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.ReplaceAll(resp.Resume, "---", "")), nil
}

// GenerateCoverLetter asks the backend for a cover letter.
func (c *Client) GenerateCoverLetter(ctx context.Context, jobDescription string) (string, error) {
	var resp struct {
		CoverLetter string `json:"cover_letter"`
	}
	body := dtos.GenerateRequest{JobDescription: jobDescription, Email: c.Session.Email()}
	if err := c.post(ctx, "/generateCoverLetter", body, &resp); err != nil {
		return "", err
	}
	return resp.CoverLetter, nil
}

func (c *Client) jobPayload(draft tracker.JobApplication) *dtos.JobUpsertRequest {
	return &dtos.JobUpsertRequest{
		JobTitle:       draft.JobTitle,
		CompanyName:    draft.Company,
		JobLocation:    draft.JobLocation,
		JobType:        draft.JobType,
		JobStatus:      draft.JobStatus,
		DateApplied:    draft.DateApplied,
		JobLink:        draft.JobLink,
		JobDescription: draft.JobDescription,
		Email:          c.Session.Email(),
	}
}

func (c *Client) get(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, dest)
}

func (c *Client) post(ctx context.Context, path string, body, dest interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, dest)
}

func (c *Client) do(req *http.Request, dest interface{}) error {
	if token := c.Session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: serverMessage(raw)}
	}
	if dest == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}

// serverMessage digs the human-readable message out of an error body.
func serverMessage(raw []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}

// isoDate trims timestamps down to YYYY-MM-DD.
func isoDate(value string) string {
	if idx := strings.IndexByte(value, 'T'); idx > 0 {
		return value[:idx]
	}
	return value
}
