package dto

import "github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"

type UpdateProfileRequest struct {
	Email     string `json:"email" validate:"required,email_strict"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required,min=10"`
	Specialty string `json:"specialty" validate:"required"`
}

// UpdateCabinetRequest creates or updates the doctor's cabinet; a nil
// schedule keeps the stored one, or the default on creation
type UpdateCabinetRequest struct {
	CabinetName    string                 `json:"cabinetName" validate:"required"`
	CabinetAddress string                 `json:"cabinetAddress" validate:"required"`
	Schedule       *entity.WeeklySchedule `json:"schedule"`
}

type ProfileResponse struct {
	DoctorID  int64  `json:"doctorId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
}

type CabinetResponse struct {
	CabinetID      int64                 `json:"cabinetId"`
	CabinetName    string                `json:"cabinetName"`
	CabinetAddress string                `json:"cabinetAddress"`
	Schedule       entity.WeeklySchedule `json:"schedule"`
}
