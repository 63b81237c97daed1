package validation_test

import (
	"testing"

	"job-portal-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type phoneHolder struct {
	Phone string `validate:"valid_phone"`
}

func TestValidPhone(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	valid := []string{"", "5551234567", "+15551234567", "0012345"}
	for _, p := range valid {
		assert.NoError(t, v.Struct(phoneHolder{Phone: p}), p)
	}

	invalid := []string{"123", "phone", "555-123-4567", "+1234567890123456"}
	for _, p := range invalid {
		assert.Error(t, v.Struct(phoneHolder{Phone: p}), p)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	type registerForm struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=6"`
	}

	err := v.Struct(registerForm{Email: "nope", Password: "123"})
	require.Error(t, err)

	messages := validation.FormatValidationErrors(err)
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0], "valid email")
	assert.Contains(t, messages[1], "at least 6 characters")
}
