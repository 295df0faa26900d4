package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidate_ValidStruct(t *testing.T) {
	v := New()

	err := v.Validate(signupForm{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "p4ssw0rd",
	})

	assert.NoError(t, err)
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      signupForm
		wantFields []string
	}{
		{
			name:       "all fields missing",
			input:      signupForm{},
			wantFields: []string{"email", "name", "password"},
		},
		{
			name: "invalid email",
			input: signupForm{
				Name:     "Ada",
				Email:    "not-an-email",
				Password: "p4ssw0rd",
			},
			wantFields: []string{"email"},
		},
		{
			name: "password too short",
			input: signupForm{
				Name:     "Ada",
				Email:    "ada@example.com",
				Password: "short",
			},
			wantFields: []string{"password"},
		},
		{
			name: "name too short",
			input: signupForm{
				Name:     "A",
				Email:    "ada@example.com",
				Password: "p4ssw0rd",
			},
			wantFields: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Validate(tt.input)
			require.Error(t, err)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantFields, vErr.Fields())
		})
	}
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	err := New().Validate(signupForm{Name: "Ada", Password: "p4ssw0rd"})
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Errors, "email")
	assert.NotContains(t, vErr.Errors, "Email")
	assert.Equal(t, "email is required", vErr.Errors["email"])
}

func TestValidationError_Error(t *testing.T) {
	vErr := &ValidationError{Errors: map[string]string{
		"email": "email is required",
		"name":  "name is required",
	}}

	// Fields are reported in sorted order so the message is stable.
	assert.Equal(t, "validation failed: email: email is required, name: name is required", vErr.Error())
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ada@example.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail(""))
}
