package services

import "errors"

var (
	ErrEmailTaken      = errors.New("email already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrPasswordTooWeak = errors.New("password must be at least 6 characters long")

	ErrOTPNotFound = errors.New("no OTP found for this email")
	ErrOTPExpired  = errors.New("OTP expired")
	ErrInvalidOTP  = errors.New("invalid OTP")

	ErrJobNotFound     = errors.New("job not found")
	ErrProfileNotFound = errors.New("no data found for the given email")
)
