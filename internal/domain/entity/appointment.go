package entity

import "time"

// AppointmentStatus is the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusNew         AppointmentStatus = "nouveau"
	AppointmentStatusConfirmed   AppointmentStatus = "confirme"
	AppointmentStatusNoAnswer    AppointmentStatus = "ne_repond_pas"
	AppointmentStatusRescheduled AppointmentStatus = "reprogramme"
	AppointmentStatusAbsent      AppointmentStatus = "absent"
	AppointmentStatusFollowUp    AppointmentStatus = "suivi"
	AppointmentStatusCompleted   AppointmentStatus = "termine"
)

var validAppointmentStatuses = map[AppointmentStatus]struct{}{
	AppointmentStatusNew:         {},
	AppointmentStatusConfirmed:   {},
	AppointmentStatusNoAnswer:    {},
	AppointmentStatusRescheduled: {},
	AppointmentStatusAbsent:      {},
	AppointmentStatusFollowUp:    {},
	AppointmentStatusCompleted:   {},
}

// IsValid reports whether s is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	_, ok := validAppointmentStatuses[s]
	return ok
}

// IsNoShow reports statuses counted in nrp_count and excluded from visit aggregates
func (s AppointmentStatus) IsNoShow() bool {
	return s == AppointmentStatusNoAnswer || s == AppointmentStatusRescheduled
}

// NoShowStatuses lists the statuses excluded from visit aggregates
func NoShowStatuses() []string {
	return []string{string(AppointmentStatusNoAnswer), string(AppointmentStatusRescheduled)}
}

// StatusOrDefault falls back to nouveau for empty or unknown values
func StatusOrDefault(raw string) AppointmentStatus {
	s := AppointmentStatus(raw)
	if s.IsValid() {
		return s
	}
	return AppointmentStatusNew
}

// Appointment is a scheduled visit between a doctor and a patient at a cabinet
type Appointment struct {
	ID              int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID        int64             `gorm:"not null;index" json:"doctor_id"`
	PatientID       int64             `gorm:"not null;index" json:"patient_id"`
	CabinetID       int64             `gorm:"not null" json:"cabinet_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	Status          AppointmentStatus `gorm:"type:varchar(30);not null;default:'nouveau'" json:"status"`
	VisitType       string            `gorm:"type:varchar(100);not null" json:"visit_type"`
	Notes           string            `gorm:"type:text;not null;default:''" json:"notes"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentPatch holds the fields of a partial update; nil means leave unchanged
type AppointmentPatch struct {
	AppointmentDate *time.Time
	VisitType       *string
	Status          *AppointmentStatus
	Notes           *string
}

func (p AppointmentPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.AppointmentDate != nil {
		cols["appointment_date"] = *p.AppointmentDate
	}
	if p.VisitType != nil {
		cols["visit_type"] = *p.VisitType
	}
	if p.Status != nil {
		cols["status"] = string(*p.Status)
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	return cols
}

func (p AppointmentPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}
