package repository

import (
	"github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int64) (*entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID int64) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Appointment, error)
	UpdateStatus(db *gorm.DB, id int64, status entity.AppointmentStatus) (int64, error)
	Update(db *gorm.DB, id int64, patch entity.AppointmentPatch) (int64, error)
	Delete(db *gorm.DB, id int64) (int64, error)
}
