package response

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync/atomic"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

var exposeErrors atomic.Bool

// ExposeErrors controls whether internal error details reach the client.
// Bootstrap enables it for every environment except production.
func ExposeErrors(enabled bool) {
	exposeErrors.Store(enabled)
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, Response{
		Success: false,
		Message: message,
	})
}

// ValidationError joins field messages in a stable order
func ValidationError(w http.ResponseWriter, errors map[string]string) {
	message := "Validation failed"
	if len(errors) > 0 {
		fields := make([]string, 0, len(errors))
		for field := range errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		messages := make([]string, 0, len(fields))
		for _, field := range fields {
			messages = append(messages, errors[field])
		}
		message = strings.Join(messages, "; ")
	}
	Error(w, http.StatusBadRequest, message)
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Bad request"
	}
	Error(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message)
}

func Conflict(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource already exists"
	}
	Error(w, http.StatusConflict, message)
}

// InternalServerError attaches err to the envelope only when ExposeErrors is on
func InternalServerError(w http.ResponseWriter, message string, err error) {
	if message == "" {
		message = "Internal server error"
	}
	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil && exposeErrors.Load() {
		resp.Error = err.Error()
	}
	JSON(w, http.StatusInternalServerError, resp)
}
