package repository

import (
	"errors"
	"time"

	"github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"
	domainRepo "github.com/issamkebdani780/Doctor-BackEnd/internal/domain/repository"

	"gorm.io/gorm"
)

// Aggregates over each patient's appointments. Past and future split at the
// bound "today" date; no-show statuses only feed nrp_count.
const patientStatsSelect = `p.*,
	(SELECT MAX(a.appointment_date) FROM appointments a
		WHERE a.patient_id = p.id AND a.appointment_date < ? AND a.status NOT IN ?) AS last_visit,
	(SELECT MIN(a.appointment_date) FROM appointments a
		WHERE a.patient_id = p.id AND a.appointment_date >= ? AND a.status NOT IN ?) AS next_visit,
	(SELECT COUNT(*) FROM appointments a
		WHERE a.patient_id = p.id AND a.appointment_date < ? AND a.status NOT IN ?) AS total_past,
	(SELECT COUNT(*) FROM appointments a
		WHERE a.patient_id = p.id AND a.appointment_date >= ? AND a.status NOT IN ?) AS total_future,
	(SELECT COUNT(*) FROM appointments a
		WHERE a.patient_id = p.id AND a.status IN ?) AS nrp_count`

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).Take(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// FindByDoctorWithStats lists a doctor's patients, optionally filtered by a
// case-insensitive substring over name, email and phone.
func (r *patientRepository) FindByDoctorWithStats(db *gorm.DB, doctorID int64, search string, today time.Time) ([]entity.PatientWithStats, error) {
	noShow := entity.NoShowStatuses()

	query := db.Table("patients AS p").
		Select(patientStatsSelect,
			today, noShow,
			today, noShow,
			today, noShow,
			today, noShow,
			noShow,
		).
		Where("p.doctor_id = ?", doctorID)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"(p.first_name ILIKE ? OR p.last_name ILIKE ? OR p.email ILIKE ? OR p.phone ILIKE ?)",
			pattern, pattern, pattern, pattern,
		)
	}

	var patients []entity.PatientWithStats
	if err := query.Order("p.id ASC").Scan(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

// ExistsByEmailOrPhone checks the per-doctor uniqueness of email and phone; an empty email is not compared
func (r *patientRepository) ExistsByEmailOrPhone(db *gorm.DB, doctorID int64, email, phone string) (bool, error) {
	var count int64
	query := db.Model(&entity.Patient{}).Where("doctor_id = ?", doctorID)
	if email != "" {
		query = query.Where("(email = ? OR phone = ?)", email, phone)
	} else {
		query = query.Where("phone = ?", phone)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *patientRepository) Update(db *gorm.DB, id int64, patch entity.PatientPatch) (int64, error) {
	result := db.Model(&entity.Patient{}).Where("id = ?", id).Updates(patch.Columns())
	return result.RowsAffected, result.Error
}

func (r *patientRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}
