package usecase

import (
	"context"
	"errors"

	"github.com/issamkebdani780/Doctor-BackEnd/internal/converter"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/dto"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"
	domainRepo "github.com/issamkebdani780/Doctor-BackEnd/internal/domain/repository"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/repository"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/service"
	"github.com/issamkebdani780/Doctor-BackEnd/pkg/jwt"
	"github.com/issamkebdani780/Doctor-BackEnd/pkg/password"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrNoFieldsToUpdate   = errors.New("no data to update")
	ErrInvalidSchedule    = entity.ErrInvalidSchedule
)

type AuthUsecase interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.DoctorResponse, error)
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.DoctorResponse, error)
	SignOut(ctx context.Context, doctorID int64, tokenID string) error
	GetCurrentDoctor(ctx context.Context, doctorID int64) (*dto.DoctorResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   domainRepo.DoctorRepository
	cabinetRepo  domainRepo.CabinetRepository
	jwtService   *jwt.JWTService
	sessionStore service.SessionStore
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo domainRepo.DoctorRepository,
	cabinetRepo domainRepo.CabinetRepository,
	jwtService *jwt.JWTService,
	sessionStore service.SessionStore,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		cabinetRepo:  cabinetRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
	}
}

// SignUp creates the doctor and the cabinet in one transaction, then opens a session
func (u *authUsecase) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.DoctorResponse, error) {
	schedule := entity.DefaultSchedule()
	if req.Schedule != nil {
		if err := req.Schedule.Validate(); err != nil {
			return nil, err
		}
		schedule = *req.Schedule
	}

	exists, err := u.doctorRepo.ExistsByEmail(u.db.WithContext(ctx), req.Email, 0)
	if err != nil {
		u.log.Warnf("Failed to check doctor email: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	doctor := &entity.Doctor{
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Specialty: req.Specialty,
	}
	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		if repository.IsDuplicateKeyError(err, repository.ConstraintDoctorEmail) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	cabinet := &entity.Cabinet{
		DoctorID: doctor.ID,
		Name:     req.CabinetName,
		Address:  req.CabinetAddress,
		Schedule: schedule,
	}
	if err := u.cabinetRepo.Create(tx, cabinet); err != nil {
		u.log.Warnf("Failed to create cabinet: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	doctor.Cabinet = cabinet
	return u.openSession(ctx, doctor)
}

func (u *authUsecase) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByEmailWithCabinet(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find doctor by email: %+v", err)
		return nil, err
	}

	// Unknown email and wrong password are indistinguishable to the caller
	if doctor == nil || !password.Verify(req.Password, doctor.Password) {
		return nil, ErrInvalidCredentials
	}

	return u.openSession(ctx, doctor)
}

func (u *authUsecase) SignOut(ctx context.Context, doctorID int64, tokenID string) error {
	if err := u.sessionStore.Revoke(ctx, doctorID, tokenID); err != nil {
		u.log.Warnf("Failed to revoke session: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) GetCurrentDoctor(ctx context.Context, doctorID int64) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByIDWithCabinet(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *authUsecase) openSession(ctx context.Context, doctor *entity.Doctor) (*dto.DoctorResponse, error) {
	token, tokenID, err := u.jwtService.GenerateToken(doctor.ID, doctor.Email)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	if err := u.sessionStore.Save(ctx, doctor.ID, tokenID, u.jwtService.GetExpiry()); err != nil {
		u.log.Warnf("Failed to store session: %+v", err)
		return nil, err
	}

	resp := converter.DoctorToResponse(doctor)
	resp.Token = token
	return resp, nil
}
