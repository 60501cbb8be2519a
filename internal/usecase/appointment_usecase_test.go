package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/dto"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAppointmentUsecaseForTest(t *testing.T) (AppointmentUsecase, *mockAppointmentRepository, *mockPatientRepository) {
	db, _ := newMockDB(t)
	appointmentRepo := &mockAppointmentRepository{}
	patientRepo := &mockPatientRepository{}
	return NewAppointmentUsecase(db, newTestLogger(), appointmentRepo, patientRepo), appointmentRepo, patientRepo
}

func validAppointment() *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		PatientID:       4,
		DoctorID:        3,
		CabinetID:       8,
		AppointmentDate: "2026-07-01",
		VisitType:       "consultation",
	}
}

func TestCreateAppointment_UnknownStatusFallsBackToNew(t *testing.T) {
	uc, appointmentRepo, patientRepo := newAppointmentUsecaseForTest(t)
	req := validAppointment()
	req.Status = "bogus"

	patientRepo.On("FindByID", mock.Anything, int64(4)).Return(&entity.Patient{ID: 4, DoctorID: 3}, nil)
	appointmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.Appointment) bool {
		return a.Status == entity.AppointmentStatusNew && a.Notes == "" &&
			a.AppointmentDate.Equal(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	})).Run(func(args mock.Arguments) { args.Get(1).(*entity.Appointment).ID = 30 }).Return(nil)

	resp, err := uc.CreateAppointment(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(30), resp.ID)
	assert.Equal(t, "nouveau", resp.Status)
	assert.Equal(t, "2026-07-01", resp.AppointmentDate)
	assert.Equal(t, "", resp.Notes)
	appointmentRepo.AssertExpectations(t)
}

func TestCreateAppointment_KeepsKnownStatusAndNotes(t *testing.T) {
	uc, appointmentRepo, patientRepo := newAppointmentUsecaseForTest(t)
	req := validAppointment()
	req.Status = "confirme"
	req.Notes = strPtr("fasting")

	patientRepo.On("FindByID", mock.Anything, int64(4)).Return(&entity.Patient{ID: 4, DoctorID: 3}, nil)
	appointmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.Appointment) bool {
		return a.Status == entity.AppointmentStatusConfirmed && a.Notes == "fasting"
	})).Return(nil)

	_, err := uc.CreateAppointment(context.Background(), req)
	require.NoError(t, err)
}

func TestCreateAppointment_PatientMustBelongToDoctor(t *testing.T) {
	uc, appointmentRepo, patientRepo := newAppointmentUsecaseForTest(t)

	patientRepo.On("FindByID", mock.Anything, int64(4)).Return(&entity.Patient{ID: 4, DoctorID: 77}, nil)

	_, err := uc.CreateAppointment(context.Background(), validAppointment())
	assert.ErrorIs(t, err, ErrPatientNotFound)
	appointmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateAppointment_UnknownPatient(t *testing.T) {
	uc, _, patientRepo := newAppointmentUsecaseForTest(t)
	patientRepo.On("FindByID", mock.Anything, int64(4)).Return(nil, nil)

	_, err := uc.CreateAppointment(context.Background(), validAppointment())
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestListByDoctor_IncludesPatientIdentity(t *testing.T) {
	uc, appointmentRepo, _ := newAppointmentUsecaseForTest(t)
	appointmentRepo.On("FindByDoctorID", mock.Anything, int64(3)).Return([]entity.Appointment{
		{
			ID:              1,
			DoctorID:        3,
			PatientID:       4,
			AppointmentDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			Status:          entity.AppointmentStatusNew,
			Patient:         &entity.Patient{ID: 4, FirstName: "Sara", LastName: "Benali", Phone: "0551234567"},
		},
	}, nil)

	list, err := uc.ListByDoctor(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].PatientFirstName)
	assert.Equal(t, "Sara", *list[0].PatientFirstName)
	assert.Nil(t, list[0].PatientEmail)
}

func TestUpdateStatus(t *testing.T) {
	uc, appointmentRepo, _ := newAppointmentUsecaseForTest(t)
	appointmentRepo.On("UpdateStatus", mock.Anything, int64(1), entity.AppointmentStatusCompleted).Return(int64(1), nil)
	appointmentRepo.On("UpdateStatus", mock.Anything, int64(2), entity.AppointmentStatusCompleted).Return(int64(0), nil)

	assert.NoError(t, uc.UpdateStatus(context.Background(), 1, "termine"))
	assert.ErrorIs(t, uc.UpdateStatus(context.Background(), 2, "termine"), ErrAppointmentNotFound)
	assert.ErrorIs(t, uc.UpdateStatus(context.Background(), 1, "done"), ErrInvalidStatus)
	appointmentRepo.AssertNumberOfCalls(t, "UpdateStatus", 2)
}

func TestUpdateAppointment_UnknownIDIsReportedBeforeEmptyBody(t *testing.T) {
	uc, appointmentRepo, _ := newAppointmentUsecaseForTest(t)
	appointmentRepo.On("FindByID", mock.Anything, int64(50)).Return(nil, nil)

	_, err := uc.UpdateAppointment(context.Background(), 50, &dto.UpdateAppointmentRequest{})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateAppointment_EmptyBody(t *testing.T) {
	uc, appointmentRepo, _ := newAppointmentUsecaseForTest(t)
	appointmentRepo.On("FindByID", mock.Anything, int64(5)).Return(&entity.Appointment{ID: 5}, nil)

	_, err := uc.UpdateAppointment(context.Background(), 5, &dto.UpdateAppointmentRequest{Status: strPtr("")})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
	appointmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateAppointment_EmptyDateIsAbsent(t *testing.T) {
	uc, appointmentRepo, _ := newAppointmentUsecaseForTest(t)
	appointmentRepo.On("FindByID", mock.Anything, int64(3)).Return(&entity.Appointment{ID: 3, Notes: "x"}, nil)
	appointmentRepo.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(p entity.AppointmentPatch) bool {
		cols := p.Columns()
		return len(cols) == 1 && cols["notes"] == "x"
	})).Return(int64(1), nil)

	resp, err := uc.UpdateAppointment(context.Background(), 3, &dto.UpdateAppointmentRequest{
		AppointmentDate: strPtr(""),
		Notes:           strPtr("x"),
	})
	require.NoError(t, err)
	assert.Equal(t, "x", resp.Notes)
	appointmentRepo.AssertExpectations(t)
}

func TestUpdateAppointment_RejectsMalformedDate(t *testing.T) {
	uc, appointmentRepo, _ := newAppointmentUsecaseForTest(t)
	appointmentRepo.On("FindByID", mock.Anything, int64(3)).Return(&entity.Appointment{ID: 3}, nil)

	_, err := uc.UpdateAppointment(context.Background(), 3, &dto.UpdateAppointmentRequest{AppointmentDate: strPtr("2025/01/02")})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
	appointmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateAppointment_RejectsUnknownStatus(t *testing.T) {
	uc, appointmentRepo, _ := newAppointmentUsecaseForTest(t)
	appointmentRepo.On("FindByID", mock.Anything, int64(5)).Return(&entity.Appointment{ID: 5}, nil)

	_, err := uc.UpdateAppointment(context.Background(), 5, &dto.UpdateAppointmentRequest{Status: strPtr("archived")})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateAppointment_NotesMayBeCleared(t *testing.T) {
	uc, appointmentRepo, _ := newAppointmentUsecaseForTest(t)
	appointmentRepo.On("FindByID", mock.Anything, int64(5)).Return(&entity.Appointment{ID: 5, Notes: "old"}, nil).Once()
	appointmentRepo.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(p entity.AppointmentPatch) bool {
		cols := p.Columns()
		return len(cols) == 2 && cols["notes"] == "" && cols["visit_type"] == "control"
	})).Return(int64(1), nil)
	appointmentRepo.On("FindByID", mock.Anything, int64(5)).Return(&entity.Appointment{ID: 5, VisitType: "control"}, nil).Once()

	resp, err := uc.UpdateAppointment(context.Background(), 5, &dto.UpdateAppointmentRequest{
		VisitType: strPtr("control"),
		Notes:     strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "control", resp.VisitType)
	appointmentRepo.AssertExpectations(t)
}

func TestDeleteAppointment(t *testing.T) {
	uc, appointmentRepo, _ := newAppointmentUsecaseForTest(t)
	appointmentRepo.On("Delete", mock.Anything, int64(9)).Return(int64(0), nil)

	assert.ErrorIs(t, uc.DeleteAppointment(context.Background(), 9), ErrAppointmentNotFound)
}
