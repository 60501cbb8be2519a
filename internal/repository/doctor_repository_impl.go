package repository

import (
	"errors"

	"github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"
	domainRepo "github.com/issamkebdani780/Doctor-BackEnd/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("Cabinet").Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id int64) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("id = ?", id).Take(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByIDWithCabinet(db *gorm.DB, id int64) (*entity.Doctor, error) {
	return r.findWithCabinet(db, "doctors.id = ?", id)
}

func (r *doctorRepository) FindByEmailWithCabinet(db *gorm.DB, email string) (*entity.Doctor, error) {
	return r.findWithCabinet(db, "doctors.email = ?", email)
}

// findWithCabinet left-joins the doctor's cabinet; Cabinet stays nil when the doctor has none
func (r *doctorRepository) findWithCabinet(db *gorm.DB, query string, arg interface{}) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Joins("Cabinet").Where(query, arg).Take(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if doctor.Cabinet != nil && doctor.Cabinet.ID == 0 {
		doctor.Cabinet = nil
	}
	return &doctor, nil
}

// ExistsByEmail ignores the doctor identified by excludeID; pass 0 to check every doctor
func (r *doctorRepository) ExistsByEmail(db *gorm.DB, email string, excludeID int64) (bool, error) {
	var count int64
	query := db.Model(&entity.Doctor{}).Where("email = ?", email)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *doctorRepository) UpdateProfile(db *gorm.DB, id int64, doctor *entity.Doctor) (int64, error) {
	result := db.Model(&entity.Doctor{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"email":      doctor.Email,
			"first_name": doctor.FirstName,
			"last_name":  doctor.LastName,
			"phone":      doctor.Phone,
			"specialty":  doctor.Specialty,
		})
	return result.RowsAffected, result.Error
}
