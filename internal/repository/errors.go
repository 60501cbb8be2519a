package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Constraint names from the migrations
const (
	ConstraintDoctorEmail        = "doctors_email_key"
	ConstraintPatientEmail       = "patients_doctor_email_key"
	ConstraintPatientPhone       = "patients_doctor_phone_key"
	ConstraintCabinetDoctor      = "cabinets_doctor_id_key"
	ConstraintPatientDoctor      = "patients_doctor_id_fkey"
	ConstraintAppointmentPatient = "appointments_patient_id_fkey"
)

// IsDuplicateKeyError checks if the error is a PostgreSQL unique violation
// on the named constraint; an empty name matches any unique violation
func IsDuplicateKeyError(err error, constraintName string) bool {
	return isPgError(err, pgUniqueViolation, constraintName)
}

// IsForeignKeyError checks if the error is a PostgreSQL foreign key violation
// on the named constraint; an empty name matches any foreign key violation
func IsForeignKeyError(err error, constraintName string) bool {
	return isPgError(err, pgForeignKeyViolation, constraintName)
}

func isPgError(err error, code, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == code && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
