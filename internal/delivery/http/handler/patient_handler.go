package handler

import (
	"net/http"

	"github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/dto"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/http/middleware"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/usecase"
	"github.com/issamkebdani780/Doctor-BackEnd/pkg/response"
	"github.com/issamkebdani780/Doctor-BackEnd/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// ListPatients returns the doctor's patients with visit aggregates
// @Summary List patients
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Param doctorId path int true "Doctor ID"
// @Param search query string false "Substring of name, email or phone"
// @Success 200 {object} response.Response
// @Router /patient/{doctorId} [get]
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	doctorID, err := pathID(r, "doctorId")
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	patients, err := h.patientUsecase.ListPatients(r.Context(), doctorID, r.URL.Query().Get("search"))
	if err != nil {
		response.InternalServerError(w, "Failed to get patients", err)
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

// CreatePatient adds a patient
// @Summary Add patient
// @Tags Patient
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePatientRequest true "Patient"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patient/add [post]
func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetDoctorIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePatientRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientAlreadyExists:
			response.Conflict(w, "A patient with this email or phone already exists")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to add patient", err)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient added successfully", patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathID(r, "patientId")
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.UpdatePatientRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	patient, err := h.patientUsecase.UpdatePatient(r.Context(), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrNoFieldsToUpdate:
			response.BadRequest(w, "No data to update")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		case usecase.ErrInvalidPhone, usecase.ErrInvalidGender:
			response.BadRequest(w, err.Error())
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrPatientAlreadyExists:
			response.Conflict(w, "A patient with this email or phone already exists")
		default:
			response.InternalServerError(w, "Failed to update patient", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathID(r, "patientId")
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	if err := h.patientUsecase.DeletePatient(r.Context(), patientID); err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to delete patient", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}
