package utils

import (
	"testing"

	"biograf/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email  string  `validate:"required,email"`
	Amount float64 `validate:"gt=0"`
	Role   string  `validate:"oneof=admin user"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(sampleRequest{Email: "nope", Amount: 0, Role: "root"})

	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Equal(t, "Must be greater than 0", errs["Amount"])
	assert.Equal(t, "Must be one of: admin, user", errs["Role"])

	assert.Nil(t, ValidateStruct(sampleRequest{Email: "a@b.test", Amount: 1, Role: "user"}))
}

func TestValidateReturnsInvalidInput(t *testing.T) {
	err := Validate(sampleRequest{Email: "a@b.test", Amount: -1, Role: "user"})
	assert.True(t, apperror.Is(err, apperror.KindInvalidInput))
	assert.Contains(t, err.Error(), "Amount: Must be greater than 0")

	assert.NoError(t, Validate(sampleRequest{Email: "a@b.test", Amount: 3, Role: "admin"}))
}

func TestFormatValidationErrorsIsOrdered(t *testing.T) {
	got := FormatValidationErrors(map[string]string{"b": "two", "a": "one"})
	assert.Equal(t, "a: one; b: two", got)
}

func TestValidateRejectsNil(t *testing.T) {
	var req *sampleRequest
	err := Validate(req)
	assert.True(t, apperror.Is(err, apperror.KindInvalidInput))
}
