package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("JOB_NOT_FOUND", "job abc not found", ErrNotFound)

	assert.EqualError(t, err, "JOB_NOT_FOUND: job abc not found: resource not found")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrDuplicate)
}

func TestAppErrorNoCause(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "bad config", nil)
	assert.EqualError(t, err, "CONFIG_ERROR: bad config")
	assert.Nil(t, errors.Unwrap(err))
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "context"))

	wrapped := WrapError(ErrDatabase, "insert candidate")
	assert.EqualError(t, wrapped, "insert candidate: database error")
	assert.ErrorIs(t, wrapped, ErrDatabase)
}
