package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalysisErrorMessage(t *testing.T) {
	err := NewAnalysisError("decode", ErrCodeDecoding, "could not open file", errors.New("permission denied"))
	assert.Equal(t, "could not open file: permission denied", err.Error())

	err = NewAnalysisError("extended_features", ErrCodeInsufficientData, "clip too short", nil)
	assert.Equal(t, "clip too short", err.Error())
}

func TestIsCode(t *testing.T) {
	err := NewAnalysisError("config", ErrCodeInvalidConfig, "bad frame size", nil)

	assert.True(t, IsCode(err, ErrCodeInvalidConfig))
	assert.False(t, IsCode(err, ErrCodeDecoding))
	assert.False(t, IsCode(nil, ErrCodeInvalidConfig))
	assert.False(t, IsCode(errors.New("plain"), ErrCodeInvalidConfig))
}

func TestIsCodeWrapped(t *testing.T) {
	inner := NewAnalysisError("decode", ErrCodeDecoding, "bad header", nil)
	wrapped := fmt.Errorf("failed to decode take.wav: %w", inner)

	assert.True(t, IsCode(wrapped, ErrCodeDecoding))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewAnalysisError("decode", ErrCodeDecoding, "outer", cause)

	assert.ErrorIs(t, err, cause)
}
