package dto

import "github.com/myjobsapp/myjobs-api/internal/auth"

type FacultyRegistrationRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	// work_preference is read from the raw body so every accepted shape
	// (list, JSON string, comma string) goes through the same normalizer.
}

type RecruiterRegistrationRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	College   string `json:"college" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginUser struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	IsFaculty   bool   `json:"is_faculty"`
	IsRecruiter bool   `json:"is_recruiter"`
}

type LoginResponse struct {
	Message string          `json:"message"`
	User    LoginUser       `json:"user"`
	Token   *auth.TokenPair `json:"token"`
}
