package tracker

import (
	"sort"
	"strings"
	"time"
)

// SortOrder controls the dateApplied ordering of the rendered list.
type SortOrder string

const (
	Newest SortOrder = "newest"
	Oldest SortOrder = "oldest"
)

// FilterAll disables the status filter.
const FilterAll = "All"

// View derives the row set to render: status filter, then case-insensitive
// substring search over title/company/location/type, then a stable sort by
// date applied. The input slice is never mutated; the whole view is
// recomputed from scratch on every call.
func View(jobs []JobApplication, statusFilter, query string, order SortOrder) []JobApplication {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]JobApplication, 0, len(jobs))
	for _, job := range jobs {
		if statusFilter != FilterAll && statusFilter != "" && job.JobStatus != statusFilter {
			continue
		}
		if query != "" && !matchesQuery(job, query) {
			continue
		}
		out = append(out, job)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a := parseISODate(out[i].DateApplied)
		b := parseISODate(out[j].DateApplied)
		if order == Oldest {
			return a.Before(b)
		}
		return b.Before(a)
	})

	return out
}

func matchesQuery(job JobApplication, query string) bool {
	return strings.Contains(strings.ToLower(job.JobTitle), query) ||
		strings.Contains(strings.ToLower(job.Company), query) ||
		strings.Contains(strings.ToLower(job.JobLocation), query) ||
		strings.Contains(strings.ToLower(job.JobType), query)
}

// parseISODate tolerates bad dates; they sort as the zero time.
func parseISODate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}
	}
	return t
}
