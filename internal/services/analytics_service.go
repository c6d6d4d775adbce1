package services

import (
	"gorm.io/gorm"
)

type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

type CountRow struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type TitleCount struct {
	JobTitle string `json:"job_title"`
	Count    int64  `json:"count"`
}

type MonthCount struct {
	Month             string `json:"month"`
	TotalApplications int64  `json:"total_applications"`
}

type TypeCount struct {
	JobType   string `json:"job_type"`
	TotalJobs int64  `json:"total_jobs"`
}

type CompanyCount struct {
	CompanyName string `json:"company_name"`
	Count       int64  `json:"count"`
}

type LocationCount struct {
	JobLocation string `json:"job_location"`
	Count       int64  `json:"count"`
}

// UserAnalytics is the /analytics payload for one user's dashboard.
type UserAnalytics struct {
	Jobs                 []StatusCount `json:"jobs"`
	JobTitles            []TitleCount  `json:"job_titles"`
	ApplicationsPerMonth []MonthCount  `json:"applications_per_month"`
	JobTypeDistribution  []TypeCount   `json:"job_type_distribution"`
}

// GeneralAnalytics is the /generalanalytics payload aggregated over everyone.
type GeneralAnalytics struct {
	CompanyData          []CompanyCount  `json:"company_data"`
	JobTitleData         []TitleCount    `json:"job_title_data"`
	JobLocationData      []LocationCount `json:"job_location_data"`
	OffersRejectionsData []StatusCount   `json:"offers_rejections_data"`
}

func (s *AnalyticsService) ForUser(email string) (*UserAnalytics, error) {
	var userID uint
	err := s.DB.Raw("SELECT id FROM users WHERE email = ? AND deleted_at IS NULL", email).Scan(&userID).Error
	if err != nil {
		return nil, err
	}
	if userID == 0 {
		return nil, ErrUserNotFound
	}

	out := &UserAnalytics{
		Jobs:                 []StatusCount{},
		JobTitles:            []TitleCount{},
		ApplicationsPerMonth: []MonthCount{},
		JobTypeDistribution:  []TypeCount{},
	}

	if err := s.DB.Raw(`
		SELECT status, COUNT(*) AS count
		FROM user_jobs
		WHERE user_id = ?
		GROUP BY status`, userID).Scan(&out.Jobs).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Raw(`
		SELECT j.job_title, COUNT(*) AS count
		FROM user_jobs uj
		JOIN jobs j ON uj.job_id = j.id
		WHERE uj.user_id = ?
		GROUP BY j.job_title`, userID).Scan(&out.JobTitles).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Raw(`
		SELECT to_char(date_applied, 'YYYY-MM') AS month, COUNT(*) AS total_applications
		FROM user_jobs
		WHERE user_id = ?
		GROUP BY month
		ORDER BY month`, userID).Scan(&out.ApplicationsPerMonth).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Raw(`
		SELECT j.job_type, COUNT(*) AS total_jobs
		FROM user_jobs uj
		JOIN jobs j ON uj.job_id = j.id
		WHERE uj.user_id = ?
		GROUP BY j.job_type
		ORDER BY total_jobs DESC`, userID).Scan(&out.JobTypeDistribution).Error; err != nil {
		return nil, err
	}

	return out, nil
}

func (s *AnalyticsService) General() (*GeneralAnalytics, error) {
	out := &GeneralAnalytics{
		CompanyData:          []CompanyCount{},
		JobTitleData:         []TitleCount{},
		JobLocationData:      []LocationCount{},
		OffersRejectionsData: []StatusCount{},
	}

	if err := s.DB.Raw(`
		SELECT j.company_name, COUNT(*) AS count
		FROM user_jobs uj
		JOIN jobs j ON uj.job_id = j.id
		GROUP BY j.company_name
		ORDER BY count DESC`).Scan(&out.CompanyData).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Raw(`
		SELECT j.job_title, COUNT(*) AS count
		FROM user_jobs uj
		JOIN jobs j ON uj.job_id = j.id
		GROUP BY j.job_title
		ORDER BY count DESC`).Scan(&out.JobTitleData).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Raw(`
		SELECT j.job_location, COUNT(*) AS count
		FROM user_jobs uj
		JOIN jobs j ON uj.job_id = j.id
		GROUP BY j.job_location
		ORDER BY count DESC`).Scan(&out.JobLocationData).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Raw(`
		SELECT status, COUNT(*) AS count
		FROM user_jobs
		WHERE status IN ('Offer', 'Rejected')
		GROUP BY status`).Scan(&out.OffersRejectionsData).Error; err != nil {
		return nil, err
	}

	return out, nil
}
