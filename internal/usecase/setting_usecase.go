package usecase

import (
	"context"
	"errors"

	"github.com/issamkebdani780/Doctor-BackEnd/internal/converter"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/dto"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"
	domainRepo "github.com/issamkebdani780/Doctor-BackEnd/internal/domain/repository"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrEmailUsedByAnotherDoctor = errors.New("email already used by another doctor")

type SettingUsecase interface {
	UpdateProfile(ctx context.Context, doctorID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	// UpdateCabinet reports created=true when the doctor had no cabinet yet
	UpdateCabinet(ctx context.Context, doctorID int64, req *dto.UpdateCabinetRequest) (resp *dto.CabinetResponse, created bool, err error)
}

type settingUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	doctorRepo  domainRepo.DoctorRepository
	cabinetRepo domainRepo.CabinetRepository
}

func NewSettingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo domainRepo.DoctorRepository,
	cabinetRepo domainRepo.CabinetRepository,
) SettingUsecase {
	return &settingUsecase{
		db:          db,
		log:         log,
		doctorRepo:  doctorRepo,
		cabinetRepo: cabinetRepo,
	}
}

func (u *settingUsecase) UpdateProfile(ctx context.Context, doctorID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	db := u.db.WithContext(ctx)

	taken, err := u.doctorRepo.ExistsByEmail(db, req.Email, doctorID)
	if err != nil {
		u.log.Warnf("Failed to check doctor email: %+v", err)
		return nil, err
	}
	if taken {
		return nil, ErrEmailUsedByAnotherDoctor
	}

	affected, err := u.doctorRepo.UpdateProfile(db, doctorID, &entity.Doctor{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Specialty: req.Specialty,
	})
	if err != nil {
		if repository.IsDuplicateKeyError(err, repository.ConstraintDoctorEmail) {
			return nil, ErrEmailUsedByAnotherDoctor
		}
		u.log.Warnf("Failed to update profile: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrDoctorNotFound
	}

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to reload doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToProfileResponse(doctor), nil
}

func (u *settingUsecase) UpdateCabinet(ctx context.Context, doctorID int64, req *dto.UpdateCabinetRequest) (*dto.CabinetResponse, bool, error) {
	if req.Schedule != nil {
		if err := req.Schedule.Validate(); err != nil {
			return nil, false, err
		}
	}

	db := u.db.WithContext(ctx)

	cabinet, err := u.cabinetRepo.FindByDoctorID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find cabinet: %+v", err)
		return nil, false, err
	}

	if cabinet != nil {
		cabinet.Name = req.CabinetName
		cabinet.Address = req.CabinetAddress
		if req.Schedule != nil {
			cabinet.Schedule = *req.Schedule
		}
		if err := u.cabinetRepo.Update(db, cabinet); err != nil {
			u.log.Warnf("Failed to update cabinet: %+v", err)
			return nil, false, err
		}
		return converter.CabinetToResponse(cabinet), false, nil
	}

	schedule := entity.DefaultSchedule()
	if req.Schedule != nil {
		schedule = *req.Schedule
	}
	cabinet = &entity.Cabinet{
		DoctorID: doctorID,
		Name:     req.CabinetName,
		Address:  req.CabinetAddress,
		Schedule: schedule,
	}
	if err := u.cabinetRepo.Create(db, cabinet); err != nil {
		u.log.Warnf("Failed to create cabinet: %+v", err)
		return nil, false, err
	}

	return converter.CabinetToResponse(cabinet), true, nil
}
