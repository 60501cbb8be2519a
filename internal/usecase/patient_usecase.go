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
	"github.com/issamkebdani780/Doctor-BackEnd/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrPatientAlreadyExists = errors.New("a patient with this email or phone already exists")
	ErrInvalidPhone         = errors.New("phone must contain 10 digits and start with 05, 06 or 07")
	ErrInvalidGender        = errors.New("gender must be one of M F")
)

type PatientUsecase interface {
	ListPatients(ctx context.Context, doctorID int64, search string) ([]dto.PatientListItem, error)
	CreatePatient(ctx context.Context, authDoctorID int64, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, patientID int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, patientID int64) error
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo domainRepo.PatientRepository
	now         func() time.Time
}

func NewPatientUsecase(db *gorm.DB, log *logrus.Logger, patientRepo domainRepo.PatientRepository) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		now:         time.Now,
	}
}

func (u *patientUsecase) ListPatients(ctx context.Context, doctorID int64, search string) ([]dto.PatientListItem, error) {
	patients, err := u.patientRepo.FindByDoctorWithStats(u.db.WithContext(ctx), doctorID, search, u.today())
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return converter.PatientsWithStatsToListItems(patients), nil
}

// CreatePatient files the patient under the requested doctor, or the caller when none is given
func (u *patientUsecase) CreatePatient(ctx context.Context, authDoctorID int64, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	doctorID := req.DoctorID
	if doctorID == 0 {
		doctorID = authDoctorID
	}

	var birthDate *time.Time
	if req.Birthday != "" {
		parsed, err := time.Parse(converter.DateLayout, req.Birthday)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		birthDate = &parsed
	}

	db := u.db.WithContext(ctx)

	exists, err := u.patientRepo.ExistsByEmailOrPhone(db, doctorID, req.Email, req.Phone)
	if err != nil {
		u.log.Warnf("Failed to check patient uniqueness: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrPatientAlreadyExists
	}

	gender := req.Gender
	if gender == "" {
		gender = entity.GenderMale
	}
	email := req.Email

	patient := &entity.Patient{
		DoctorID:  doctorID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     &email,
		Phone:     req.Phone,
		BirthDate: birthDate,
		Gender:    gender,
		Status:    entity.PatientStatusActive,
	}

	if err := u.patientRepo.Create(db, patient); err != nil {
		if repository.IsDuplicateKeyError(err, repository.ConstraintPatientEmail) ||
			repository.IsDuplicateKeyError(err, repository.ConstraintPatientPhone) {
			return nil, ErrPatientAlreadyExists
		}
		if repository.IsForeignKeyError(err, repository.ConstraintPatientDoctor) {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, patientID int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patch, err := patientPatchFromRequest(req)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}

	db := u.db.WithContext(ctx)

	existing, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrPatientNotFound
	}

	if _, err := u.patientRepo.Update(db, patientID, patch); err != nil {
		if repository.IsDuplicateKeyError(err, repository.ConstraintPatientEmail) ||
			repository.IsDuplicateKeyError(err, repository.ConstraintPatientPhone) {
			return nil, ErrPatientAlreadyExists
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	updated, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to reload patient: %+v", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(updated), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, patientID int64) error {
	affected, err := u.patientRepo.Delete(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}
	return nil
}

// today is the current calendar date in UTC, the boundary between past and future visits
func (u *patientUsecase) today() time.Time {
	y, m, d := u.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// patientPatchFromRequest keeps non-empty fields; an empty email or birthday clears the column
func patientPatchFromRequest(req *dto.UpdatePatientRequest) (entity.PatientPatch, error) {
	var patch entity.PatientPatch

	patch.FirstName = nonEmpty(req.FirstName)
	patch.LastName = nonEmpty(req.LastName)
	patch.Phone = nonEmpty(req.Phone)
	patch.Gender = nonEmpty(req.Gender)
	patch.Status = nonEmpty(req.Status)

	if patch.Phone != nil && !validator.IsPatientPhone(*patch.Phone) {
		return patch, ErrInvalidPhone
	}
	if patch.Gender != nil && *patch.Gender != entity.GenderMale && *patch.Gender != entity.GenderFemale {
		return patch, ErrInvalidGender
	}

	if req.Email != nil {
		if *req.Email == "" {
			patch.ClearEmail = true
		} else {
			patch.Email = req.Email
		}
	}

	if req.Birthday != nil {
		if *req.Birthday == "" {
			patch.ClearBirthDate = true
		} else {
			parsed, err := time.Parse(converter.DateLayout, *req.Birthday)
			if err != nil {
				return patch, ErrInvalidDateFormat
			}
			patch.BirthDate = &parsed
		}
	}

	return patch, nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
