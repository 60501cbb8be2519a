package dto

import (
	"time"

	"github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"
)

// DoctorResponse is the authenticated doctor with cabinet details flattened in.
// Cabinet fields are null when the doctor has no cabinet.
type DoctorResponse struct {
	DoctorID       int64                  `json:"doctorId"`
	Email          string                 `json:"email"`
	FirstName      string                 `json:"firstName"`
	LastName       string                 `json:"lastName"`
	Phone          string                 `json:"phone"`
	Specialty      string                 `json:"specialty"`
	CabinetName    *string                `json:"cabinetName"`
	CabinetAddress *string                `json:"cabinetAddress"`
	Schedule       *entity.WeeklySchedule `json:"schedule"`
	CreatedAt      *time.Time             `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time             `json:"updatedAt,omitempty"`
	Token          string                 `json:"token,omitempty"`
}

// HomeResponse is the body of the index route
type HomeResponse struct {
	Status        string          `json:"status"`
	Authenticated bool            `json:"authenticated"`
	Doctor        *DoctorResponse `json:"doctor,omitempty"`
}
