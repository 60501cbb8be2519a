package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/dto"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/http/middleware"
	"github.com/issamkebdani780/Doctor-BackEnd/pkg/response"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthUsecase struct{ mock.Mock }

func (m *mockAuthUsecase) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.DoctorResponse)
	return resp, args.Error(1)
}

func (m *mockAuthUsecase) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.DoctorResponse)
	return resp, args.Error(1)
}

func (m *mockAuthUsecase) SignOut(ctx context.Context, doctorID int64, tokenID string) error {
	return m.Called(ctx, doctorID, tokenID).Error(0)
}

func (m *mockAuthUsecase) GetCurrentDoctor(ctx context.Context, doctorID int64) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, doctorID)
	resp, _ := args.Get(0).(*dto.DoctorResponse)
	return resp, args.Error(1)
}

type mockPatientUsecase struct{ mock.Mock }

func (m *mockPatientUsecase) ListPatients(ctx context.Context, doctorID int64, search string) ([]dto.PatientListItem, error) {
	args := m.Called(ctx, doctorID, search)
	items, _ := args.Get(0).([]dto.PatientListItem)
	return items, args.Error(1)
}

func (m *mockPatientUsecase) CreatePatient(ctx context.Context, authDoctorID int64, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	args := m.Called(ctx, authDoctorID, req)
	resp, _ := args.Get(0).(*dto.PatientResponse)
	return resp, args.Error(1)
}

func (m *mockPatientUsecase) UpdatePatient(ctx context.Context, patientID int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	args := m.Called(ctx, patientID, req)
	resp, _ := args.Get(0).(*dto.PatientResponse)
	return resp, args.Error(1)
}

func (m *mockPatientUsecase) DeletePatient(ctx context.Context, patientID int64) error {
	return m.Called(ctx, patientID).Error(0)
}

type mockAppointmentUsecase struct{ mock.Mock }

func (m *mockAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.AppointmentResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) ListByDoctor(ctx context.Context, doctorID int64) ([]dto.AppointmentResponse, error) {
	args := m.Called(ctx, doctorID)
	list, _ := args.Get(0).([]dto.AppointmentResponse)
	return list, args.Error(1)
}

func (m *mockAppointmentUsecase) ListByPatient(ctx context.Context, patientID int64) ([]dto.AppointmentResponse, error) {
	args := m.Called(ctx, patientID)
	list, _ := args.Get(0).([]dto.AppointmentResponse)
	return list, args.Error(1)
}

func (m *mockAppointmentUsecase) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockAppointmentUsecase) UpdateAppointment(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*dto.AppointmentResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) DeleteAppointment(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockSettingUsecase struct{ mock.Mock }

func (m *mockSettingUsecase) UpdateProfile(ctx context.Context, doctorID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	args := m.Called(ctx, doctorID, req)
	resp, _ := args.Get(0).(*dto.ProfileResponse)
	return resp, args.Error(1)
}

func (m *mockSettingUsecase) UpdateCabinet(ctx context.Context, doctorID int64, req *dto.UpdateCabinetRequest) (*dto.CabinetResponse, bool, error) {
	args := m.Called(ctx, doctorID, req)
	resp, _ := args.Get(0).(*dto.CabinetResponse)
	return resp, args.Bool(1), args.Error(2)
}

// newRequest builds a JSON request carrying path vars and, when doctorID > 0, an authenticated doctor
func newRequest(t *testing.T, method, target string, body interface{}, vars map[string]string, doctorID int64) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	if doctorID > 0 {
		ctx := context.WithValue(req.Context(), middleware.DoctorIDKey, doctorID)
		ctx = context.WithValue(ctx, middleware.TokenIDKey, "jti-1")
		req = req.WithContext(ctx)
	}
	return req
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
