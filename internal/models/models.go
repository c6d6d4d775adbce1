package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	// Never serialize the hash
	Password string `gorm:"not null" json:"-"`
	Phone    string `json:"phone"`
	Linkedin string `json:"linkedin"`
	City     string `json:"city"`
}

// Profile holds the free-form career data attached to a user.
// Skills and certifications are stored comma-joined, same as the wire format.
type Profile struct {
	UserID         uint      `gorm:"primaryKey" json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Skills         string    `gorm:"type:text" json:"skills"`
	Certifications string    `gorm:"type:text" json:"certifications"`
}

type WorkExperience struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	ProfileID         uint   `gorm:"index;not null" json:"profile_id"`
	CompanyName       string `json:"company_name"`
	Position          string `json:"position"`
	YearsOfExperience int    `json:"years_of_experience"`
	JobDescription    string `gorm:"type:text" json:"job_description"`
}

type Education struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	ProfileID      uint    `gorm:"index;not null" json:"profile_id"`
	Degree         string  `json:"degree"`
	School         string  `json:"school"`
	GPA            float64 `json:"gpa"`
	FieldOfStudy   string  `json:"field_of_study"`
	GraduationYear int     `json:"graduation_year"`
}

// Job is a shared catalog row. Which user applied, when, and with what outcome
// lives in UserJob so the same posting can be tracked by many users.
type Job struct {
	ID        uint           `gorm:"primaryKey" json:"jobs_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	JobTitle       string `gorm:"not null" json:"job_title"`
	CompanyName    string `gorm:"not null" json:"company_name"`
	JobLocation    string `json:"job_location"`
	JobType        string `json:"job_type"`
	JobLink        string `json:"job_link"`
	JobDescription string `gorm:"type:text" json:"job_description"`
}

type UserJob struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	JobID       uint      `gorm:"uniqueIndex:idx_user_job;not null" json:"job_id"`
	UserID      uint      `gorm:"uniqueIndex:idx_user_job;not null" json:"user_id"`
	Status      string    `gorm:"default:'Applied'" json:"status"`
	DateApplied time.Time `gorm:"type:date" json:"date_applied"`
}

// JobEvent is an append-only audit trail of application changes.
type JobEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	JobID     uint      `json:"job_id"`
	UserID    uint      `json:"user_id"`
	EventType string    `json:"event_type"`
	Details   string    `gorm:"type:text" json:"details"`
}
