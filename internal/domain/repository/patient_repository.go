package repository

import (
	"time"

	"github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int64) (*entity.Patient, error)
	FindByDoctorWithStats(db *gorm.DB, doctorID int64, search string, today time.Time) ([]entity.PatientWithStats, error)
	ExistsByEmailOrPhone(db *gorm.DB, doctorID int64, email, phone string) (bool, error)
	Update(db *gorm.DB, id int64, patch entity.PatientPatch) (int64, error)
	Delete(db *gorm.DB, id int64) (int64, error)
}
