package repository

import (
	"github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"

	"gorm.io/gorm"
)

type CabinetRepository interface {
	Create(db *gorm.DB, cabinet *entity.Cabinet) error
	FindByDoctorID(db *gorm.DB, doctorID int64) (*entity.Cabinet, error)
	Update(db *gorm.DB, cabinet *entity.Cabinet) error
}
