package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	domainRepo "github.com/issamkebdani780/Doctor-BackEnd/internal/domain/repository"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/service"
	"github.com/issamkebdani780/Doctor-BackEnd/pkg/jwt"
	"github.com/issamkebdani780/Doctor-BackEnd/pkg/response"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type contextKey string

const (
	DoctorIDKey    contextKey = "doctor_id"
	DoctorEmailKey contextKey = "doctor_email"
	TokenIDKey     contextKey = "token_id"
)

var (
	errMissingToken  = errors.New("authentication token is missing")
	errExpiredToken  = errors.New("token has expired")
	errInvalidToken  = errors.New("invalid token")
	errRevokedToken  = errors.New("token has been revoked")
	errUnknownDoctor = errors.New("doctor not found")
)

// Client-facing messages of rejected credentials; any other failure is a 500
var unauthorizedMessages = map[error]string{
	errMissingToken:  "Authentication token is missing",
	errExpiredToken:  "Token has expired",
	errInvalidToken:  "Invalid token",
	errRevokedToken:  "Token has been revoked",
	errUnknownDoctor: "Doctor not found",
}

type identity struct {
	doctorID int64
	email    string
	tokenID  string
}

type AuthMiddleware struct {
	db           *gorm.DB
	log          *logrus.Logger
	jwtService   *jwt.JWTService
	sessionStore service.SessionStore
	doctorRepo   domainRepo.DoctorRepository
}

func NewAuthMiddleware(
	db *gorm.DB,
	log *logrus.Logger,
	jwtService *jwt.JWTService,
	sessionStore service.SessionStore,
	doctorRepo domainRepo.DoctorRepository,
) *AuthMiddleware {
	return &AuthMiddleware{
		db:           db,
		log:          log,
		jwtService:   jwtService,
		sessionStore: sessionStore,
		doctorRepo:   doctorRepo,
	}
}

// Authenticate rejects the request unless it carries a live session of an existing doctor
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := m.resolve(r)
		if err != nil {
			if message, ok := unauthorizedMessages[err]; ok {
				response.Unauthorized(w, message)
				return
			}
			m.log.Warnf("Failed to authenticate request: %+v", err)
			response.InternalServerError(w, "Failed to validate token", err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), id)))
	})
}

// OptionalAuthenticate attaches the identity when the request carries a valid
// session and otherwise lets the request through anonymously
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := m.resolve(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), id)))
	})
}

func (m *AuthMiddleware) resolve(r *http.Request) (*identity, error) {
	authHeader := r.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return nil, errMissingToken
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		if errors.Is(err, jwt.ErrExpired) {
			return nil, errExpiredToken
		}
		return nil, errInvalidToken
	}

	ctx := r.Context()

	exists, err := m.sessionStore.Exists(ctx, claims.DoctorID, claims.TokenID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errRevokedToken
	}

	// The token may outlive its doctor, so the row is looked up on every request
	doctor, err := m.doctorRepo.FindByID(m.db.WithContext(ctx), claims.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, errUnknownDoctor
	}

	return &identity{doctorID: doctor.ID, email: doctor.Email, tokenID: claims.TokenID()}, nil
}

func withIdentity(ctx context.Context, id *identity) context.Context {
	ctx = context.WithValue(ctx, DoctorIDKey, id.doctorID)
	ctx = context.WithValue(ctx, DoctorEmailKey, id.email)
	return context.WithValue(ctx, TokenIDKey, id.tokenID)
}

// GetDoctorIDFromContext extracts doctor ID from context
func GetDoctorIDFromContext(ctx context.Context) (int64, bool) {
	doctorID, ok := ctx.Value(DoctorIDKey).(int64)
	return doctorID, ok
}

// GetDoctorEmailFromContext extracts doctor email from context
func GetDoctorEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(DoctorEmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
