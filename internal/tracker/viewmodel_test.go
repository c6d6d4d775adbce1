package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleJobs() []JobApplication {
	return []JobApplication{
		{ID: 1, JobTitle: "Backend Engineer", Company: "Acme", JobLocation: "Toronto", JobType: "Full-time", JobStatus: StatusApplied, DateApplied: "2024-01-10"},
		{ID: 2, JobTitle: "Data Analyst", Company: "Globex", JobLocation: "Remote", JobType: "Contract", JobStatus: StatusInterview, DateApplied: "2024-02-01"},
		{ID: 3, JobTitle: "Cloud Engineer", Company: "Initech", JobLocation: "Vancouver", JobType: "Full-time", JobStatus: StatusApplied, DateApplied: "2024-01-20"},
		{ID: 4, JobTitle: "SRE", Company: "Acme", JobLocation: "Toronto", JobType: "Internship", JobStatus: StatusRejected, DateApplied: "2023-12-05"},
	}
}

func TestViewFilterAll(t *testing.T) {
	out := View(sampleJobs(), FilterAll, "", Newest)
	assert.Len(t, out, 4)
}

func TestViewStatusFilter(t *testing.T) {
	out := View(sampleJobs(), StatusApplied, "", Newest)
	require.Len(t, out, 2)
	for _, job := range out {
		assert.Equal(t, StatusApplied, job.JobStatus)
	}
}

func TestViewSearchIsCaseInsensitive(t *testing.T) {
	out := View(sampleJobs(), FilterAll, "  ACME ", Newest)
	require.Len(t, out, 2)
	assert.Equal(t, uint(1), out[0].ID)
	assert.Equal(t, uint(4), out[1].ID)
}

func TestViewSearchCoversAllFields(t *testing.T) {
	// location
	assert.Len(t, View(sampleJobs(), FilterAll, "remote", Newest), 1)
	// type
	assert.Len(t, View(sampleJobs(), FilterAll, "internship", Newest), 1)
	// title
	assert.Len(t, View(sampleJobs(), FilterAll, "engineer", Newest), 2)
	// no match
	assert.Empty(t, View(sampleJobs(), FilterAll, "zzz", Newest))
}

func TestViewSortNewest(t *testing.T) {
	out := View(sampleJobs(), FilterAll, "", Newest)
	require.Len(t, out, 4)
	assert.Equal(t, []uint{2, 3, 1, 4}, ids(out))
}

func TestViewSortOldest(t *testing.T) {
	out := View(sampleJobs(), FilterAll, "", Oldest)
	require.Len(t, out, 4)
	assert.Equal(t, []uint{4, 1, 3, 2}, ids(out))
}

func TestViewSortIsStableOnTies(t *testing.T) {
	jobs := []JobApplication{
		{ID: 1, JobTitle: "A", DateApplied: "2024-03-01"},
		{ID: 2, JobTitle: "B", DateApplied: "2024-03-01"},
		{ID: 3, JobTitle: "C", DateApplied: "2024-03-01"},
	}
	out := View(jobs, FilterAll, "", Newest)
	assert.Equal(t, []uint{1, 2, 3}, ids(out))
}

func TestViewCombinesFilterSearchSort(t *testing.T) {
	out := View(sampleJobs(), StatusApplied, "engineer", Oldest)
	require.Len(t, out, 2)
	assert.Equal(t, []uint{1, 3}, ids(out))
}

func TestViewDoesNotMutateInput(t *testing.T) {
	jobs := sampleJobs()
	View(jobs, FilterAll, "", Oldest)
	assert.Equal(t, uint(1), jobs[0].ID)
}

func TestViewEmptyInput(t *testing.T) {
	assert.Empty(t, View(nil, FilterAll, "", Newest))
}

func ids(jobs []JobApplication) []uint {
	out := make([]uint, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}
