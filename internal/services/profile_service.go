package services

import (
	"errors"
	"strings"

	"github.com/infinitystack/job-application-tracker/internal/dtos"
	"github.com/infinitystack/job-application-tracker/internal/models"
	"gorm.io/gorm"
)

type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

// Get assembles the aggregate profile view: user row plus skills,
// certifications, work experience and education.
func (s *ProfileService) Get(email string) (*dtos.ProfileData, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	data := &dtos.ProfileData{
		UserID:         user.ID,
		Email:          user.Email,
		Firstname:      user.Firstname,
		Lastname:       user.Lastname,
		Phone:          user.Phone,
		Linkedin:       user.Linkedin,
		City:           user.City,
		Skills:         []string{},
		Certifications: []string{},
		WorkExperience: []dtos.WorkExperience{},
		Education:      []dtos.Education{},
	}

	var profile models.Profile
	if err := s.DB.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
		data.Skills = splitList(profile.Skills)
		data.Certifications = splitList(profile.Certifications)
	}

	var work []models.WorkExperience
	s.DB.Where("profile_id = ?", user.ID).Find(&work)
	for _, w := range work {
		data.WorkExperience = append(data.WorkExperience, dtos.WorkExperience{
			Company:           w.CompanyName,
			Position:          w.Position,
			YearsOfExperience: w.YearsOfExperience,
			Responsibilities:  w.JobDescription,
		})
	}

	var education []models.Education
	s.DB.Where("profile_id = ?", user.ID).Find(&education)
	for _, e := range education {
		data.Education = append(data.Education, dtos.Education{
			Degree:      e.Degree,
			Institution: e.School,
			GPA:         e.GPA,
			Field:       e.FieldOfStudy,
			EndYear:     e.GraduationYear,
		})
	}

	return data, nil
}

// Upsert replaces the profile wholesale: basic info on the user row, skills
// and certifications comma-joined, and child rows cleared and re-inserted.
// /createProfile and /editProfile have always shared this behavior.
func (s *ProfileService) Upsert(req *dtos.ProfileRequest) error {
	originalEmail := req.OriginalEmail
	if originalEmail == "" {
		originalEmail = req.Email
	}

	var user models.User
	err := s.DB.Where("email = ?", originalEmail).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"firstname": req.Firstname,
			"lastname":  req.Lastname,
			"phone":     req.Phone,
			"city":      req.City,
			"linkedin":  req.Linkedin,
		}
		// Email change is allowed when the new address differs
		if req.Email != "" && req.Email != originalEmail {
			updates["email"] = req.Email
		}
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
			return err
		}

		profile := models.Profile{
			UserID:         user.ID,
			Skills:         strings.Join(req.Skills, ", "),
			Certifications: strings.Join(req.Certifications, ", "),
		}
		if err := tx.Save(&profile).Error; err != nil {
			return err
		}

		// Clear old experience/education, then re-insert
		if err := tx.Where("profile_id = ?", user.ID).Delete(&models.WorkExperience{}).Error; err != nil {
			return err
		}
		if err := tx.Where("profile_id = ?", user.ID).Delete(&models.Education{}).Error; err != nil {
			return err
		}

		for _, w := range req.WorkExperience {
			row := models.WorkExperience{
				ProfileID:         user.ID,
				CompanyName:       w.Company,
				Position:          w.Position,
				YearsOfExperience: w.YearsOfExperience,
				JobDescription:    w.Responsibilities,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		for _, e := range req.Education {
			row := models.Education{
				ProfileID:      user.ID,
				Degree:         e.Degree,
				School:         e.Institution,
				GPA:            e.GPA,
				FieldOfStudy:   e.Field,
				GraduationYear: e.EndYear,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func splitList(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return []string{}
	}
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
