package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", Clone(ErrNotFound, "semester not found"))

	appErr := FromError(wrapped)

	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "semester not found", appErr.Message)
}

func TestFromErrorWrapsUnknownErrors(t *testing.T) {
	cause := stdErrors.New("boom")

	appErr := FromError(cause)

	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.ErrorIs(t, appErr, cause)
	assert.Nil(t, FromError(nil))
}

func TestCloneDoesNotMutateTemplate(t *testing.T) {
	clone := Clone(ErrValidation, "page must be positive")

	assert.Equal(t, "validation failed", ErrValidation.Message)
	assert.Equal(t, "page must be positive", clone.Message)
	assert.Equal(t, "validation failed: bad", Wrap(stdErrors.New("bad"), ErrValidation.Code, ErrValidation.Status, ErrValidation.Message).Error())
}

func TestErrorsIsMatchesCacheMiss(t *testing.T) {
	err := fmt.Errorf("redis: %w", ErrCacheMiss)
	assert.True(t, stdErrors.Is(err, ErrCacheMiss))
}
