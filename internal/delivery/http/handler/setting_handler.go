package handler

import (
	"errors"
	"net/http"

	"github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/dto"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/http/middleware"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/usecase"
	"github.com/issamkebdani780/Doctor-BackEnd/pkg/response"
	"github.com/issamkebdani780/Doctor-BackEnd/pkg/validator"
)

type SettingHandler struct {
	settingUsecase usecase.SettingUsecase
	validator      *validator.CustomValidator
}

func NewSettingHandler(settingUsecase usecase.SettingUsecase, validator *validator.CustomValidator) *SettingHandler {
	return &SettingHandler{
		settingUsecase: settingUsecase,
		validator:      validator,
	}
}

// UpdateProfile replaces the authenticated doctor's profile fields
// @Summary Update profile
// @Tags Setting
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /setting/handleSendProfilSetting [put]
func (h *SettingHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetDoctorIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateProfileRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	profile, err := h.settingUsecase.UpdateProfile(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailUsedByAnotherDoctor:
			response.BadRequest(w, "Email already used by another doctor")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to update profile", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", profile)
}

// UpdateCabinet creates the cabinet on first use and updates it afterwards
// @Summary Update cabinet
// @Tags Setting
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateCabinetRequest true "Cabinet"
// @Success 200 {object} response.Response
// @Router /setting/handleCabinetSetting [put]
func (h *SettingHandler) UpdateCabinet(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetDoctorIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateCabinetRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	cabinet, created, err := h.settingUsecase.UpdateCabinet(r.Context(), doctorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSchedule):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update cabinet", err)
		}
		return
	}

	message := "Cabinet updated successfully"
	if created {
		message = "Cabinet created successfully"
	}
	response.Success(w, http.StatusOK, message, cabinet)
}
