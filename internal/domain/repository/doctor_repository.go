package repository

import (
	"github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id int64) (*entity.Doctor, error)
	FindByIDWithCabinet(db *gorm.DB, id int64) (*entity.Doctor, error)
	FindByEmailWithCabinet(db *gorm.DB, email string) (*entity.Doctor, error)
	ExistsByEmail(db *gorm.DB, email string, excludeID int64) (bool, error)
	UpdateProfile(db *gorm.DB, id int64, doctor *entity.Doctor) (int64, error)
}
