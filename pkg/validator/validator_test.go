package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPatientPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"0512345678", true},
		{"0612345678", true},
		{"0712345678", true},
		{"0412345678", false},
		{"051234567", false},
		{"05123456789", false},
		{"05-2345678", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPatientPhone(tt.phone))
		})
	}
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("doc@cabinet.dz"))
	assert.True(t, IsEmail("a.b@c.d.e"))
	assert.False(t, IsEmail("doc@cabinet"))
	assert.False(t, IsEmail("doc cabinet@x.dz"))
	assert.False(t, IsEmail("@cabinet.dz"))
	assert.False(t, IsEmail("doc@.dz"))
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("Password1"))
	assert.False(t, IsStrongPassword("Pass1"))
	assert.False(t, IsStrongPassword("password1"))
	assert.False(t, IsStrongPassword("Password"))
}

type sample struct {
	Email    string  `json:"email" validate:"required,email_strict"`
	Phone    *string `json:"phone" validate:"omitempty,patient_phone"`
	Password string  `json:"password" validate:"required,strong_password"`
	Start    string  `json:"start" validate:"omitempty,hhmm"`
}

func TestValidate_FormatsJSONFieldNames(t *testing.T) {
	v := NewValidator()
	badPhone := "0412345678"

	err := v.Validate(&sample{Email: "bad", Phone: &badPhone, Password: "weak", Start: "25:00"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "email must be a valid email address", errs["email"])
	assert.Equal(t, "phone must contain 10 digits and start with 05, 06 or 07", errs["phone"])
	assert.Equal(t, "password must contain at least 8 characters, one uppercase letter and one digit", errs["password"])
	assert.Equal(t, "start must be a time in HH:MM format", errs["start"])
}

func TestValidate_NilPointerSkipped(t *testing.T) {
	v := NewValidator()
	phone := "0612345678"

	assert.NoError(t, v.Validate(&sample{Email: "doc@cabinet.dz", Password: "Password1"}))
	assert.NoError(t, v.Validate(&sample{Email: "doc@cabinet.dz", Phone: &phone, Password: "Password1"}))
}
