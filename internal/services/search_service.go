package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
)

var ErrInvalidCountry = errors.New("invalid country. Choose 'us' or 'ca'")

const adzunaResultsPerPage = 20

// SearchService proxies the two external job boards. Base URLs are fields so
// tests can point them at a local server.
type SearchService struct {
	HTTP *http.Client

	AdzunaBaseURL string
	AdzunaAppID   string
	AdzunaAppKey  string

	JoobleBaseURL string
	JoobleAPIKey  string
}

func NewSearchService(adzunaAppID, adzunaAppKey, joobleHost, joobleAPIKey string) *SearchService {
	return &SearchService{
		HTTP:          &http.Client{Timeout: 15 * time.Second},
		AdzunaBaseURL: "http://api.adzuna.com/v1/api/jobs",
		AdzunaAppID:   adzunaAppID,
		AdzunaAppKey:  adzunaAppKey,
		JoobleBaseURL: "https://" + joobleHost,
		JoobleAPIKey:  joobleAPIKey,
	}
}

// AdzunaResult keeps the upstream result objects opaque; the frontend renders
// whatever fields Adzuna ships.
type AdzunaResult map[string]interface{}

type AdzunaResponse struct {
	JobsData   []AdzunaResult `json:"jobs_data"`
	TotalPages int            `json:"total_pages"`
}

// SearchAdzuna fetches one page of postings, max 3 days old.
func (s *SearchService) SearchAdzuna(ctx context.Context, keyword, country string, page int) (*AdzunaResponse, error) {
	if country != "us" && country != "ca" {
		return nil, ErrInvalidCountry
	}
	if page < 1 {
		page = 1
	}

	endpoint := fmt.Sprintf("%s/%s/search/%d", s.AdzunaBaseURL, country, page)
	params := url.Values{}
	params.Set("app_id", s.AdzunaAppID)
	params.Set("app_key", s.AdzunaAppKey)
	params.Set("what", keyword)
	params.Set("max_days_old", "3")
	params.Set("results_per_page", fmt.Sprint(adzunaResultsPerPage))

	var parsed struct {
		Count   int            `json:"count"`
		Results []AdzunaResult `json:"results"`
	}
	err := s.getJSON(ctx, endpoint+"?"+params.Encode(), &parsed)
	if err != nil {
		return nil, err
	}

	totalPages := parsed.Count / adzunaResultsPerPage
	if parsed.Count%adzunaResultsPerPage > 0 {
		totalPages++
	}
	if parsed.Results == nil {
		parsed.Results = []AdzunaResult{}
	}

	return &AdzunaResponse{JobsData: parsed.Results, TotalPages: totalPages}, nil
}

// JoobleJob is the normalized shape handed to the frontend.
type JoobleJob struct {
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	DatePosted string `json:"date_posted"`
	JobType    string `json:"job_type"`
	Salary     string `json:"salary"`
	Link       string `json:"link"`
}

type JoobleResponse struct {
	TotalJobs int         `json:"total_jobs"`
	Jobs      []JoobleJob `json:"jobs"`
}

// SearchJooble posts the keyword/location query and cleans up the response.
func (s *SearchService) SearchJooble(ctx context.Context, keyword, location string) (*JoobleResponse, error) {
	body, err := json.Marshal(map[string]string{"keywords": keyword, "location": location})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/api/%s", s.JoobleBaseURL, s.JoobleAPIKey)

	var parsed struct {
		Jobs []struct {
			Title    string `json:"title"`
			Company  string `json:"company"`
			Location string `json:"location"`
			Updated  string `json:"updated"`
			Type     string `json:"type"`
			Salary   string `json:"salary"`
			Link     string `json:"link"`
		} `json:"jobs"`
	}
	err = s.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}, &parsed)
	if err != nil {
		return nil, err
	}

	out := &JoobleResponse{Jobs: []JoobleJob{}}
	for _, j := range parsed.Jobs {
		out.Jobs = append(out.Jobs, JoobleJob{
			Title:      defaultString(j.Title, "N/A"),
			Company:    defaultString(j.Company, "N/A"),
			Location:   defaultString(j.Location, "N/A"),
			DatePosted: defaultString(j.Updated, "N/A"),
			JobType:    defaultString(j.Type, "N/A"),
			Salary:     defaultString(j.Salary, "Not Specified"),
			Link:       defaultString(j.Link, "#"),
		})
	}
	out.TotalJobs = len(out.Jobs)
	return out, nil
}

func (s *SearchService) getJSON(ctx context.Context, rawURL string, dest interface{}) error {
	return s.doWithRetry(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	}, dest)
}

// doWithRetry retries transient upstream failures with exponential backoff.
// 4xx responses are permanent and fail immediately.
func (s *SearchService) doWithRetry(ctx context.Context, build func() (*http.Request, error), dest interface{}) error {
	op := func() error {
		req, err := build()
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := s.HTTP.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return backoff.Permanent(fmt.Errorf("upstream returned %d", resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("upstream returned %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(dest)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	return backoff.Retry(op, policy)
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
