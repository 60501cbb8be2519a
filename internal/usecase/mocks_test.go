package usecase

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/domain/entity"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, sqlMock
}

func newTestLogger() *logrus.Logger {
	log, _ := test.NewNullLogger()
	return log
}

type mockDoctorRepository struct{ mock.Mock }

func (m *mockDoctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return m.Called(db, doctor).Error(0)
}

func (m *mockDoctorRepository) FindByID(db *gorm.DB, id int64) (*entity.Doctor, error) {
	args := m.Called(db, id)
	doctor, _ := args.Get(0).(*entity.Doctor)
	return doctor, args.Error(1)
}

func (m *mockDoctorRepository) FindByIDWithCabinet(db *gorm.DB, id int64) (*entity.Doctor, error) {
	args := m.Called(db, id)
	doctor, _ := args.Get(0).(*entity.Doctor)
	return doctor, args.Error(1)
}

func (m *mockDoctorRepository) FindByEmailWithCabinet(db *gorm.DB, email string) (*entity.Doctor, error) {
	args := m.Called(db, email)
	doctor, _ := args.Get(0).(*entity.Doctor)
	return doctor, args.Error(1)
}

func (m *mockDoctorRepository) ExistsByEmail(db *gorm.DB, email string, excludeID int64) (bool, error) {
	args := m.Called(db, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockDoctorRepository) UpdateProfile(db *gorm.DB, id int64, doctor *entity.Doctor) (int64, error) {
	args := m.Called(db, id, doctor)
	return args.Get(0).(int64), args.Error(1)
}

type mockCabinetRepository struct{ mock.Mock }

func (m *mockCabinetRepository) Create(db *gorm.DB, cabinet *entity.Cabinet) error {
	return m.Called(db, cabinet).Error(0)
}

func (m *mockCabinetRepository) FindByDoctorID(db *gorm.DB, doctorID int64) (*entity.Cabinet, error) {
	args := m.Called(db, doctorID)
	cabinet, _ := args.Get(0).(*entity.Cabinet)
	return cabinet, args.Error(1)
}

func (m *mockCabinetRepository) Update(db *gorm.DB, cabinet *entity.Cabinet) error {
	return m.Called(db, cabinet).Error(0)
}

type mockPatientRepository struct{ mock.Mock }

func (m *mockPatientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return m.Called(db, patient).Error(0)
}

func (m *mockPatientRepository) FindByID(db *gorm.DB, id int64) (*entity.Patient, error) {
	args := m.Called(db, id)
	patient, _ := args.Get(0).(*entity.Patient)
	return patient, args.Error(1)
}

func (m *mockPatientRepository) FindByDoctorWithStats(db *gorm.DB, doctorID int64, search string, today time.Time) ([]entity.PatientWithStats, error) {
	args := m.Called(db, doctorID, search, today)
	patients, _ := args.Get(0).([]entity.PatientWithStats)
	return patients, args.Error(1)
}

func (m *mockPatientRepository) ExistsByEmailOrPhone(db *gorm.DB, doctorID int64, email, phone string) (bool, error) {
	args := m.Called(db, doctorID, email, phone)
	return args.Bool(0), args.Error(1)
}

func (m *mockPatientRepository) Update(db *gorm.DB, id int64, patch entity.PatientPatch) (int64, error) {
	args := m.Called(db, id, patch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPatientRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockAppointmentRepository struct{ mock.Mock }

func (m *mockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return m.Called(db, appointment).Error(0)
}

func (m *mockAppointmentRepository) FindByID(db *gorm.DB, id int64) (*entity.Appointment, error) {
	args := m.Called(db, id)
	appointment, _ := args.Get(0).(*entity.Appointment)
	return appointment, args.Error(1)
}

func (m *mockAppointmentRepository) FindByDoctorID(db *gorm.DB, doctorID int64) ([]entity.Appointment, error) {
	args := m.Called(db, doctorID)
	appointments, _ := args.Get(0).([]entity.Appointment)
	return appointments, args.Error(1)
}

func (m *mockAppointmentRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Appointment, error) {
	args := m.Called(db, patientID)
	appointments, _ := args.Get(0).([]entity.Appointment)
	return appointments, args.Error(1)
}

func (m *mockAppointmentRepository) UpdateStatus(db *gorm.DB, id int64, status entity.AppointmentStatus) (int64, error) {
	args := m.Called(db, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepository) Update(db *gorm.DB, id int64, patch entity.AppointmentPatch) (int64, error) {
	args := m.Called(db, id, patch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

// memorySessionStore is an in-process allow-list
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]time.Duration
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]time.Duration)}
}

func sessionID(doctorID int64, tokenID string) string {
	return strconv.FormatInt(doctorID, 10) + ":" + tokenID
}

func (s *memorySessionStore) Save(_ context.Context, doctorID int64, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID(doctorID, tokenID)] = ttl
	return nil
}

func (s *memorySessionStore) Exists(_ context.Context, doctorID int64, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[sessionID(doctorID, tokenID)]
	return ok, nil
}

func (s *memorySessionStore) Revoke(_ context.Context, doctorID int64, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID(doctorID, tokenID))
	return nil
}

func (s *memorySessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
