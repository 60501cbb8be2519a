package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/issamkebdani780/Doctor-BackEnd/pkg/response"
	"github.com/issamkebdani780/Doctor-BackEnd/pkg/validator"

	"github.com/gorilla/mux"
)

var errInvalidID = errors.New("invalid id")

// pathID reads a positive integer path variable
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// decodeAndValidate writes the 400 response itself and reports whether the handler may continue
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}

	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}
	return true
}
