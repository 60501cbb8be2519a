package repository

import (
	"errors"

	"github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"
	domainRepo "github.com/issamkebdani780/Doctor-BackEnd/internal/domain/repository"

	"gorm.io/gorm"
)

type cabinetRepository struct{}

func NewCabinetRepository() domainRepo.CabinetRepository {
	return &cabinetRepository{}
}

func (r *cabinetRepository) Create(db *gorm.DB, cabinet *entity.Cabinet) error {
	return db.Create(cabinet).Error
}

func (r *cabinetRepository) FindByDoctorID(db *gorm.DB, doctorID int64) (*entity.Cabinet, error) {
	var cabinet entity.Cabinet
	err := db.Where("doctor_id = ?", doctorID).Take(&cabinet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cabinet, nil
}

func (r *cabinetRepository) Update(db *gorm.DB, cabinet *entity.Cabinet) error {
	return db.Model(&entity.Cabinet{}).
		Where("id = ?", cabinet.ID).
		Updates(map[string]interface{}{
			"name":     cabinet.Name,
			"address":  cabinet.Address,
			"schedule": cabinet.Schedule,
		}).Error
}
