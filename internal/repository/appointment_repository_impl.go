package repository

import (
	"errors"

	"github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"
	domainRepo "github.com/issamkebdani780/Doctor-BackEnd/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Patient").Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).Take(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindByDoctorID returns the doctor's appointments, most recent first, with patient identity joined in
func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID int64) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.InnerJoins("Patient").
		Where("appointments.doctor_id = ?", doctorID).
		Order("appointments.appointment_date DESC, appointments.created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("patient_id = ?", patientID).
		Order("appointment_date DESC, created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id int64, status entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).Where("id = ?", id).Update("status", string(status))
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Update(db *gorm.DB, id int64, patch entity.AppointmentPatch) (int64, error) {
	result := db.Model(&entity.Appointment{}).Where("id = ?", id).Updates(patch.Columns())
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
