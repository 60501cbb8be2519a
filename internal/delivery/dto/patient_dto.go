package dto

import "time"

// CreatePatientRequest adds a patient. DoctorID defaults to the authenticated doctor.
type CreatePatientRequest struct {
	DoctorID  int64  `json:"doctorId" validate:"omitempty,gt=0"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email_strict"`
	Phone     string `json:"phone" validate:"required,patient_phone"`
	Birthday  string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Gender    string `json:"gender" validate:"omitempty,oneof=M F"`
}

// UpdatePatientRequest is a partial update; absent fields are left unchanged.
// An empty email or birthday clears the stored value, other empty strings count
// as absent. Phone, birthday and gender are checked when patching.
type UpdatePatientRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Birthday  *string `json:"birthday"`
	Gender    *string `json:"gender"`
	Status    *string `json:"status"`
}

type PatientResponse struct {
	ID        int64     `json:"id"`
	DoctorID  int64     `json:"doctor_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     *string   `json:"email"`
	Phone     string    `json:"phone"`
	BirthDate *string   `json:"birth_date"`
	Gender    string    `json:"gender"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// PatientListItem is a patient row with appointment aggregates
type PatientListItem struct {
	PatientResponse
	LastVisit   *string `json:"last_visit"`
	NextVisit   *string `json:"next_visit"`
	TotalPast   int64   `json:"total_past"`
	TotalFuture int64   `json:"total_future"`
	NRPCount    int64   `json:"nrp_count"`
}
