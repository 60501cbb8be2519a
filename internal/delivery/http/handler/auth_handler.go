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

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// SignUp handles doctor registration together with the doctor's cabinet
// @Summary Register a doctor
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Sign up request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/sign-up [post]
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req dto.SignUpRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	doctor, err := h.authUsecase.SignUp(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			response.Conflict(w, "Email already exists")
		case errors.Is(err, usecase.ErrInvalidSchedule):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to sign up", err)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor registered successfully", doctor)
}

// SignIn handles doctor login
// @Summary Sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Sign in request"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/sign-in [post]
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SignInRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	doctor, err := h.authUsecase.SignIn(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid email or password")
		default:
			response.InternalServerError(w, "Failed to sign in", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Signed in successfully", doctor)
}

// SignOut revokes the session of the presented token
// @Summary Sign out
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/sign-out [post]
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetDoctorIDFromContext(r.Context())
	tokenID, tokenOK := middleware.GetTokenIDFromContext(r.Context())
	if !ok || !tokenOK {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.authUsecase.SignOut(r.Context(), doctorID, tokenID); err != nil {
		response.InternalServerError(w, "Failed to sign out", err)
		return
	}

	response.Success(w, http.StatusOK, "Signed out successfully", nil)
}

// Me returns the authenticated doctor with cabinet and schedule
// @Summary Current doctor
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetDoctorIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	doctor, err := h.authUsecase.GetCurrentDoctor(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// Home reports service status and, when a session is attached, who is signed in
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	body := dto.HomeResponse{Status: "ok"}

	if doctorID, ok := middleware.GetDoctorIDFromContext(r.Context()); ok {
		doctor, err := h.authUsecase.GetCurrentDoctor(r.Context(), doctorID)
		if err == nil {
			body.Authenticated = true
			body.Doctor = doctor
		}
	}

	response.Success(w, http.StatusOK, "Doctor practice API", body)
}
