package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/infinitystack/job-application-tracker/internal/dtos"
	"github.com/infinitystack/job-application-tracker/internal/services"
)

type AuthHandler struct {
	UserService *services.UserService
	OTPService  *services.OTPService
	MailService *services.MailService
}

func NewAuthHandler(users *services.UserService, otp *services.OTPService, mail *services.MailService) *AuthHandler {
	return &AuthHandler{UserService: users, OTPService: otp, MailService: mail}
}

// Signup is the POST /signup endpoint
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dtos.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	err := h.UserService.Signup(&req)
	if errors.Is(err, services.ErrEmailTaken) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists!"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully!"})
}

// Signin is the POST /signin endpoint
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dtos.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	token, err := h.UserService.Signin(&req)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
	case errors.Is(err, services.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password."})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Sign-in successful!", "token": token})
	}
}

// GenerateOTP issues a reset code and mails it to the user.
func (h *AuthHandler) GenerateOTP(c *gin.Context) {
	var req dtos.GenerateOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := h.UserService.FindByEmail(email); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Email not registered"})
		return
	}

	code, err := h.OTPService.Generate(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
		return
	}

	if err := h.MailService.SendOTP(c.Request.Context(), email, code); err != nil {
		log.Printf("❌ Error sending OTP to %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP Sent Successfully"})
}

// VerifyOTP checks the submitted code.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dtos.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	err := h.OTPService.Verify(c.Request.Context(), email, req.OTP)
	switch {
	case errors.Is(err, services.ErrOTPNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "No OTP found for this email"})
	case errors.Is(err, services.ErrOTPExpired):
		c.JSON(http.StatusBadRequest, gin.H{"message": "OTP expired"})
	case errors.Is(err, services.ErrInvalidOTP):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid OTP"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "OTP Verified Successfully"})
	}
}

// ResetPassword replaces the password after OTP verification.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dtos.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	err := h.UserService.ResetPassword(email, req.Password)
	if errors.Is(err, services.ErrPasswordTooWeak) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 6 characters long."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password Updated Successfully"})
}
