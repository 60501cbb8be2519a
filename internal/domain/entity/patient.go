package entity

import "time"

// Patient status and gender defaults
const (
	PatientStatusActive = "active"

	GenderMale   = "M"
	GenderFemale = "F"
)

// Patient is a person under a doctor's care; email and phone are unique per doctor
type Patient struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  int64      `gorm:"not null;index" json:"doctor_id"`
	FirstName string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Email     *string    `gorm:"type:varchar(255)" json:"email"`
	Phone     string     `gorm:"type:varchar(20);not null" json:"phone"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date"`
	Gender    string     `gorm:"type:char(1);not null;default:'M'" json:"gender"`
	Status    string     `gorm:"type:varchar(30);not null;default:'active'" json:"status"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// PatientWithStats is a patient row enriched with appointment aggregates
type PatientWithStats struct {
	Patient
	LastVisit   *time.Time
	NextVisit   *time.Time
	TotalPast   int64
	TotalFuture int64
	NRPCount    int64 `gorm:"column:nrp_count"`
}

// PatientPatch holds the fields of a partial update; nil means leave unchanged.
// ClearEmail and ClearBirthDate set the column to NULL.
type PatientPatch struct {
	FirstName      *string
	LastName       *string
	Email          *string
	ClearEmail     bool
	Phone          *string
	BirthDate      *time.Time
	ClearBirthDate bool
	Gender         *string
	Status         *string
}

// Columns returns the column assignments of the present fields
func (p PatientPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.FirstName != nil {
		cols["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		cols["last_name"] = *p.LastName
	}
	if p.ClearEmail {
		cols["email"] = nil
	} else if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.Phone != nil {
		cols["phone"] = *p.Phone
	}
	if p.ClearBirthDate {
		cols["birth_date"] = nil
	} else if p.BirthDate != nil {
		cols["birth_date"] = *p.BirthDate
	}
	if p.Gender != nil {
		cols["gender"] = *p.Gender
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	return cols
}

func (p PatientPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}
