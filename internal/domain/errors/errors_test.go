package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_Error(t *testing.T) {
	assert.Equal(t, "Input validation failed", ErrValidationFailed.Error())

	withDetails := ErrValidationFailed.WithDetails("register has no entries")
	assert.Equal(t, "Input validation failed: register has no entries", withDetails.Error())
	assert.Equal(t, "register has no entries", withDetails.Details())

	// The sentinel itself stays untouched.
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrClassFull.WithDetails("class 7B").WrapMessage("failed to enroll learner")

	assert.Contains(t, err.Error(), "failed to enroll learner")
	assert.Contains(t, err.Error(), "class 7B")
}
