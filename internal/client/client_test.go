package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infinitystack/job-application-tracker/internal/tracker"
)

func newTestClient(srv *httptest.Server) *Client {
	c := New(srv.URL)
	c.HTTP = srv.Client()
	return c
}

func TestSignInStoresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/signin", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user@example.com", body["email"])
		json.NewEncoder(w).Encode(map[string]string{"message": "Sign in successful!", "token": "tok-123"})
	}))
	defer srv.Close()

	c := newTestClient(srv)
	require.NoError(t, c.SignIn(context.Background(), "user@example.com", "hunter22"))

	assert.True(t, c.Session.SignedIn())
	assert.Equal(t, "tok-123", c.Session.Token())
	assert.Equal(t, "user@example.com", c.Session.Email())
}

func TestSignInBadPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid password"})
	}))
	defer srv.Close()

	c := newTestClient(srv)
	err := c.SignIn(context.Background(), "user@example.com", "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid password", apiErr.Error())
	assert.False(t, c.Session.SignedIn())
}

func TestUserJobsNormalizesRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getuserJobs", r.URL.Path)
		assert.Equal(t, "user@example.com", r.URL.Query().Get("email"))
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"jobs": []map[string]interface{}{
				{
					"jobs_id":      7,
					"job_title":    "Backend Engineer",
					"company_name": "Acme",
					"job_location": "Toronto",
					"job_type":     "Full-time",
					"job_status":   "Applied",
					"date_applied": "2024-01-10T00:00:00Z",
					"job_link":     "https://example.com/7",
				},
			},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv)
	c.Session.SignIn("user@example.com", "tok-123")

	jobs, err := c.UserJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	job := jobs[0]
	assert.Equal(t, uint(7), job.ID)
	assert.Equal(t, "Backend Engineer", job.JobTitle)
	assert.Equal(t, "Acme", job.Company)
	// Timestamps collapse to the bare ISO date
	assert.Equal(t, "2024-01-10", job.DateApplied)
}

func TestCreateJobSendsCatalogID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/createJob", r.URL.Path)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Backend Engineer", body["job_title"])
		assert.Equal(t, "user@example.com", body["email"])
		assert.EqualValues(t, 55, body["job_id"])
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{"message": "Job added successfully", "id": 9})
	}))
	defer srv.Close()

	c := newTestClient(srv)
	c.Session.SignIn("user@example.com", "tok-123")

	id, err := c.CreateJob(context.Background(), draft("Backend Engineer", "Acme"), 55)
	require.NoError(t, err)
	assert.Equal(t, uint(9), id)
}

func TestEditJobSendsRecordID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/editJob", r.URL.Path)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 7, body["job_id"])
		json.NewEncoder(w).Encode(map[string]string{"message": "Job updated successfully"})
	}))
	defer srv.Close()

	c := newTestClient(srv)
	record := draft("Backend Engineer", "Acme")
	record.ID = 7
	require.NoError(t, c.EditJob(context.Background(), record))
}

func TestDeleteJobNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/deleteJob", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Job not found"})
	}))
	defer srv.Close()

	c := newTestClient(srv)
	err := c.DeleteJob(context.Background(), 99)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Job not found", apiErr.Error())
}

func TestGenerateResumeStripsRules(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generateResume", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"Resume": "---\n# Jane Doe\n## Skills\n---"})
	}))
	defer srv.Close()

	c := newTestClient(srv)
	resume, err := c.GenerateResume(context.Background(), "desc")
	require.NoError(t, err)
	assert.Equal(t, "# Jane Doe\n## Skills", resume)
	assert.NotContains(t, resume, "---")
}

func TestSessionSubscribe(t *testing.T) {
	s := NewSession()
	ch := s.Subscribe()

	s.SignIn("user@example.com", "tok")
	assert.True(t, <-ch)

	s.SignOut()
	assert.False(t, <-ch)
	assert.False(t, s.SignedIn())
	assert.Empty(t, s.Email())
}

func draft(title, company string) tracker.JobApplication {
	return tracker.JobApplication{
		JobTitle:    title,
		Company:     company,
		JobStatus:   "Applied",
		DateApplied: "2024-01-10",
	}
}
