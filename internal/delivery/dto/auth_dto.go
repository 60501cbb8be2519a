package dto

import "github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"

// Request DTOs

// SignUpRequest registers a doctor together with the doctor's cabinet
type SignUpRequest struct {
	FirstName      string                 `json:"firstName" validate:"required"`
	LastName       string                 `json:"lastName" validate:"required"`
	Email          string                 `json:"email" validate:"required,email_strict"`
	Password       string                 `json:"password" validate:"required,strong_password"`
	Phone          string                 `json:"phone" validate:"required"`
	Specialty      string                 `json:"specialty"`
	CabinetName    string                 `json:"cabinetName" validate:"required"`
	CabinetAddress string                 `json:"cabinetAddress" validate:"required"`
	Schedule       *entity.WeeklySchedule `json:"schedule"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

