package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/infinitystack/job-application-tracker/internal/dtos"
	"github.com/infinitystack/job-application-tracker/internal/models"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// CreateJob records an application. With no job_id a new catalog row is
// created; with one, the entry links the existing catalog job (the
// select-from-catalog flow). The per-user row is upserted either way.
func (s *JobService) CreateJob(req *dtos.JobUpsertRequest) (uint, error) {
	user, err := s.findUser(req.Email)
	if err != nil {
		return 0, err
	}

	jobID := req.JobID
	if jobID == 0 {
		job := models.Job{
			JobTitle:       req.JobTitle,
			CompanyName:    req.CompanyName,
			JobLocation:    req.JobLocation,
			JobType:        req.JobType,
			JobLink:        req.JobLink,
			JobDescription: req.JobDescription,
		}
		if err := s.DB.Create(&job).Error; err != nil {
			return 0, err
		}
		jobID = job.ID
	}

	status := req.JobStatus
	if status == "" {
		status = "Applied"
	}

	userJob := models.UserJob{
		JobID:       jobID,
		UserID:      user.ID,
		Status:      status,
		DateApplied: parseDate(req.DateApplied),
	}
	// Re-applying to a linked catalog job refreshes status and date
	err = s.DB.Where(models.UserJob{JobID: jobID, UserID: user.ID}).
		Assign(map[string]interface{}{"status": status, "date_applied": userJob.DateApplied}).
		FirstOrCreate(&userJob).Error
	if err != nil {
		return 0, err
	}

	s.recordEvent(jobID, user.ID, "CREATED", fmt.Sprintf("Application created with status %s", status))
	return jobID, nil
}

// UserJobs returns the signed-in user's applications joined with catalog data.
func (s *JobService) UserJobs(email string) ([]dtos.UserJobRow, error) {
	user, err := s.findUser(email)
	if err != nil {
		return nil, err
	}

	var joined []struct {
		models.Job
		Status      string
		DateApplied time.Time
	}
	err = s.DB.Model(&models.UserJob{}).
		Select("jobs.*, user_jobs.status, user_jobs.date_applied").
		Joins("INNER JOIN jobs ON jobs.id = user_jobs.job_id").
		Where("user_jobs.user_id = ?", user.ID).
		Scan(&joined).Error
	if err != nil {
		return nil, err
	}

	rows := make([]dtos.UserJobRow, 0, len(joined))
	for _, j := range joined {
		status := j.Status
		if status == "" {
			status = "Applied"
		}
		rows = append(rows, dtos.UserJobRow{
			JobsID:         j.Job.ID,
			JobTitle:       j.JobTitle,
			CompanyName:    j.CompanyName,
			JobLocation:    j.JobLocation,
			JobType:        j.JobType,
			JobLink:        j.JobLink,
			JobDescription: j.JobDescription,
			DateApplied:    j.DateApplied.Format(dateLayout),
			JobStatus:      status,
		})
	}
	return rows, nil
}

// AllJobs returns the shared catalog used to prefill new applications.
func (s *JobService) AllJobs() ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// EditJob is a full replace of the catalog fields plus the user's status/date.
func (s *JobService) EditJob(req *dtos.JobUpsertRequest) error {
	if req.JobID == 0 {
		return ErrJobNotFound
	}
	user, err := s.findUser(req.Email)
	if err != nil {
		return err
	}

	status := req.JobStatus
	if status == "" {
		status = "Applied"
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Job{}).Where("id = ?", req.JobID).Updates(map[string]interface{}{
			"job_title":       req.JobTitle,
			"company_name":    req.CompanyName,
			"job_location":    req.JobLocation,
			"job_type":        req.JobType,
			"job_link":        req.JobLink,
			"job_description": req.JobDescription,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrJobNotFound
		}

		err := tx.Model(&models.UserJob{}).
			Where("job_id = ? AND user_id = ?", req.JobID, user.ID).
			Updates(map[string]interface{}{"status": status, "date_applied": parseDate(req.DateApplied)}).Error
		if err != nil {
			return err
		}

		event := models.JobEvent{
			JobID:     req.JobID,
			UserID:    user.ID,
			EventType: "EDITED",
			Details:   fmt.Sprintf("Application updated, status %s", status),
		}
		return tx.Create(&event).Error
	})
}

// DeleteJob removes the user's application, never the catalog row.
func (s *JobService) DeleteJob(jobID uint, email string) error {
	user, err := s.findUser(email)
	if err != nil {
		return err
	}

	res := s.DB.Where("job_id = ? AND user_id = ?", jobID, user.ID).Delete(&models.UserJob{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrJobNotFound
	}

	s.recordEvent(jobID, user.ID, "DELETED", "Application removed")
	return nil
}

func (s *JobService) findUser(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *JobService) recordEvent(jobID, userID uint, eventType, details string) {
	event := models.JobEvent{JobID: jobID, UserID: userID, EventType: eventType, Details: details}
	s.DB.Create(&event)
}

func parseDate(value string) time.Time {
	if value == "" {
		return time.Now()
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Now()
	}
	return t
}
