package dto

import "time"

type CreateAppointmentRequest struct {
	PatientID       int64   `json:"patient_id" validate:"required,gt=0"`
	DoctorID        int64   `json:"doctor_id" validate:"required,gt=0"`
	CabinetID       int64   `json:"cabinet_id" validate:"required,gt=0"`
	AppointmentDate string  `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	VisitType       string  `json:"visit_type" validate:"required"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes"`
}

// UpdateAppointmentRequest is a partial update. Empty date, visit type and
// status count as absent; notes may be set to the empty string.
type UpdateAppointmentRequest struct {
	AppointmentDate *string `json:"appointment_date"`
	VisitType       *string `json:"visit_type"`
	Status          *string `json:"status"`
	Notes           *string `json:"notes"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AppointmentResponse struct {
	ID              int64     `json:"id"`
	DoctorID        int64     `json:"doctor_id"`
	PatientID       int64     `json:"patient_id"`
	CabinetID       int64     `json:"cabinet_id"`
	AppointmentDate string    `json:"appointment_date"`
	Status          string    `json:"status"`
	VisitType       string    `json:"visit_type"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`

	// Set on listings by doctor
	PatientFirstName *string `json:"patient_first_name,omitempty"`
	PatientLastName  *string `json:"patient_last_name,omitempty"`
	PatientPhone     *string `json:"patient_phone,omitempty"`
	PatientEmail     *string `json:"patient_email,omitempty"`
}
