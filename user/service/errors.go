package service

import "errors"

var (
	ErrUIDRequired      = errors.New("uid is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrOTPRequired      = errors.New("otp is required")
	ErrInvalidRole      = errors.New("invalid role")
	ErrEmailExists      = errors.New("a user with this email already exists")
)
