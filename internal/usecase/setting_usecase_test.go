package usecase

import (
	"context"
	"testing"

	"github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/dto"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSettingUsecaseForTest(t *testing.T) (SettingUsecase, *mockDoctorRepository, *mockCabinetRepository) {
	db, _ := newMockDB(t)
	doctorRepo := &mockDoctorRepository{}
	cabinetRepo := &mockCabinetRepository{}
	return NewSettingUsecase(db, newTestLogger(), doctorRepo, cabinetRepo), doctorRepo, cabinetRepo
}

func profileRequest() *dto.UpdateProfileRequest {
	return &dto.UpdateProfileRequest{
		Email:     "new@example.com",
		FirstName: "Amine",
		LastName:  "Haddad",
		Phone:     "0550000000",
		Specialty: "Cardiology",
	}
}

func TestUpdateProfile_EmailOwnedByAnotherDoctor(t *testing.T) {
	uc, doctorRepo, _ := newSettingUsecaseForTest(t)
	doctorRepo.On("ExistsByEmail", mock.Anything, "new@example.com", int64(3)).Return(true, nil)

	_, err := uc.UpdateProfile(context.Background(), 3, profileRequest())
	assert.ErrorIs(t, err, ErrEmailUsedByAnotherDoctor)
	doctorRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProfile_MissingDoctor(t *testing.T) {
	uc, doctorRepo, _ := newSettingUsecaseForTest(t)
	doctorRepo.On("ExistsByEmail", mock.Anything, mock.Anything, int64(3)).Return(false, nil)
	doctorRepo.On("UpdateProfile", mock.Anything, int64(3), mock.Anything).Return(int64(0), nil)

	_, err := uc.UpdateProfile(context.Background(), 3, profileRequest())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestUpdateProfile_ReturnsRefreshedProfile(t *testing.T) {
	uc, doctorRepo, _ := newSettingUsecaseForTest(t)
	doctorRepo.On("ExistsByEmail", mock.Anything, mock.Anything, int64(3)).Return(false, nil)
	doctorRepo.On("UpdateProfile", mock.Anything, int64(3), mock.MatchedBy(func(d *entity.Doctor) bool {
		return d.Email == "new@example.com" && d.Specialty == "Cardiology"
	})).Return(int64(1), nil)
	doctorRepo.On("FindByID", mock.Anything, int64(3)).
		Return(&entity.Doctor{ID: 3, Email: "new@example.com", FirstName: "Amine", Specialty: "Cardiology"}, nil)

	resp, err := uc.UpdateProfile(context.Background(), 3, profileRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.DoctorID)
	assert.Equal(t, "new@example.com", resp.Email)
	doctorRepo.AssertExpectations(t)
}

func TestUpdateCabinet_UpdateKeepsScheduleWhenAbsent(t *testing.T) {
	uc, _, cabinetRepo := newSettingUsecaseForTest(t)
	stored := entity.DefaultSchedule()
	stored.Sunday = entity.DaySchedule{IsOpen: true, Start: "10:00", End: "13:00"}

	cabinetRepo.On("FindByDoctorID", mock.Anything, int64(3)).
		Return(&entity.Cabinet{ID: 8, DoctorID: 3, Name: "Old", Address: "Old st", Schedule: stored}, nil)
	cabinetRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *entity.Cabinet) bool {
		return c.ID == 8 && c.Name == "New" && c.Schedule == stored
	})).Return(nil)

	resp, created, err := uc.UpdateCabinet(context.Background(), 3, &dto.UpdateCabinetRequest{
		CabinetName:    "New",
		CabinetAddress: "New st",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "New st", resp.CabinetAddress)
	assert.Equal(t, stored, resp.Schedule)
	cabinetRepo.AssertExpectations(t)
}

func TestUpdateCabinet_CreatesWithDefaultSchedule(t *testing.T) {
	uc, _, cabinetRepo := newSettingUsecaseForTest(t)
	cabinetRepo.On("FindByDoctorID", mock.Anything, int64(3)).Return(nil, nil)
	cabinetRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Cabinet) bool {
		return c.DoctorID == 3 && c.Schedule == entity.DefaultSchedule()
	})).Return(nil)

	resp, created, err := uc.UpdateCabinet(context.Background(), 3, &dto.UpdateCabinetRequest{
		CabinetName:    "Cabinet",
		CabinetAddress: "Blida",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Cabinet", resp.CabinetName)
}

func TestUpdateCabinet_RejectsInvalidSchedule(t *testing.T) {
	uc, _, cabinetRepo := newSettingUsecaseForTest(t)
	schedule := entity.DefaultSchedule()
	schedule.Friday.Start = "9h"

	_, _, err := uc.UpdateCabinet(context.Background(), 3, &dto.UpdateCabinetRequest{
		CabinetName:    "Cabinet",
		CabinetAddress: "Blida",
		Schedule:       &schedule,
	})
	assert.ErrorIs(t, err, ErrInvalidSchedule)
	cabinetRepo.AssertNotCalled(t, "FindByDoctorID", mock.Anything, mock.Anything)
}
