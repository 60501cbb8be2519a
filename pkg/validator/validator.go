package validator

import (
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	emailRegex        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	patientPhoneRegex = regexp.MustCompile(`^0[567]\d{8}$`)
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON names so messages match the request payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("email_strict", func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	v.RegisterValidation("patient_phone", func(fl validator.FieldLevel) bool {
		return IsPatientPhone(fl.Field().String())
	})
	v.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("15:04", fl.Field().String())
		return err == nil
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email", "email_strict":
				errors[field] = field + " must be a valid email address"
			case "patient_phone":
				errors[field] = field + " must contain 10 digits and start with 05, 06 or 07"
			case "strong_password":
				errors[field] = field + " must contain at least 8 characters, one uppercase letter and one digit"
			case "hhmm":
				errors[field] = field + " must be a time in HH:MM format"
			case "datetime":
				errors[field] = field + " must be a date in YYYY-MM-DD format"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gt", "gte":
				errors[field] = field + " must be greater than " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

func IsPatientPhone(s string) bool {
	return patientPhoneRegex.MatchString(s)
}

// IsStrongPassword requires 8+ characters with an uppercase letter and a digit
func IsStrongPassword(s string) bool {
	if len([]rune(s)) < 8 {
		return false
	}
	var upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && digit
}
