package services

import (
	"errors"

	"github.com/infinitystack/job-application-tracker/internal/auth"
	"github.com/infinitystack/job-application-tracker/internal/dtos"
	"github.com/infinitystack/job-application-tracker/internal/models"
	"gorm.io/gorm"
)

type UserService struct {
	DB        *gorm.DB
	JWTSecret string
}

func NewUserService(db *gorm.DB, secret string) *UserService {
	return &UserService{DB: db, JWTSecret: secret}
}

func (s *UserService) Signup(req *dtos.SignupRequest) error {
	var existing models.User
	err := s.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := models.User{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Password:  hash,
	}
	return s.DB.Create(&user).Error
}

// Signin checks the password and returns a fresh access token.
func (s *UserService) Signin(req *dtos.SigninRequest) (string, error) {
	var user models.User
	err := s.DB.Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return "", ErrInvalidPassword
	}

	return auth.IssueToken(s.JWTSecret, user.ID, user.Email)
}

// ResetPassword replaces the stored hash. The caller is trusted to have
// verified an OTP first; the old backend worked the same way.
func (s *UserService) ResetPassword(email, newPassword string) error {
	if len(newPassword) < 6 {
		return ErrPasswordTooWeak
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.DB.Model(&models.User{}).Where("email = ?", email).Update("password", hash).Error
}

// FindByEmail is shared by the OTP and profile flows.
func (s *UserService) FindByEmail(email string) (*models.User, error) {
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
