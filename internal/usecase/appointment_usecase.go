package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/issamkebdani780/Doctor-BackEnd/internal/converter"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/dto"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"
	domainRepo "github.com/issamkebdani780/Doctor-BackEnd/internal/domain/repository"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid appointment status")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]dto.AppointmentResponse, error)
	ListByPatient(ctx context.Context, patientID int64) ([]dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	UpdateAppointment(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id int64) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo domainRepo.AppointmentRepository
	patientRepo     domainRepo.PatientRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo domainRepo.AppointmentRepository,
	patientRepo domainRepo.PatientRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse(converter.DateLayout, req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	db := u.db.WithContext(ctx)

	// The patient must belong to the doctor the appointment is booked with
	patient, err := u.patientRepo.FindByID(db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil || patient.DoctorID != req.DoctorID {
		return nil, ErrPatientNotFound
	}

	notes := ""
	if req.Notes != nil {
		notes = *req.Notes
	}

	appointment := &entity.Appointment{
		DoctorID:        req.DoctorID,
		PatientID:       req.PatientID,
		CabinetID:       req.CabinetID,
		AppointmentDate: date,
		Status:          entity.StatusOrDefault(req.Status),
		VisitType:       req.VisitType,
		Notes:           notes,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		if repository.IsForeignKeyError(err, repository.ConstraintAppointmentPatient) {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListByDoctor(ctx context.Context, doctorID int64) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list doctor appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) ListByPatient(ctx context.Context, patientID int64) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list patient appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id int64, status string) error {
	s := entity.AppointmentStatus(status)
	if !s.IsValid() {
		return ErrInvalidStatus
	}

	affected, err := u.appointmentRepo.UpdateStatus(u.db.WithContext(ctx), id, s)
	if err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// UpdateAppointment looks the appointment up before inspecting the patch,
// so an unknown id is reported even for an empty body
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	existing, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrAppointmentNotFound
	}

	patch, err := appointmentPatchFromRequest(req)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}

	if _, err := u.appointmentRepo.Update(db, id, patch); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	updated, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to reload appointment: %+v", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(updated), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id int64) error {
	affected, err := u.appointmentRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func appointmentPatchFromRequest(req *dto.UpdateAppointmentRequest) (entity.AppointmentPatch, error) {
	var patch entity.AppointmentPatch

	if raw := nonEmpty(req.AppointmentDate); raw != nil {
		date, err := time.Parse(converter.DateLayout, *raw)
		if err != nil {
			return patch, ErrInvalidDateFormat
		}
		patch.AppointmentDate = &date
	}

	if raw := nonEmpty(req.Status); raw != nil {
		status := entity.AppointmentStatus(*raw)
		if !status.IsValid() {
			return patch, ErrInvalidStatus
		}
		patch.Status = &status
	}

	patch.VisitType = nonEmpty(req.VisitType)
	patch.Notes = req.Notes

	return patch, nil
}
