package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	base := errors.New("boom")
	wrapped := NewError(http.StatusConflict, InvalidState, fmt.Errorf("context: %w", base))

	assert.Equal(t, http.StatusConflict, wrapped.StatusCode)
	assert.Equal(t, InvalidState, wrapped.ErrorCode)
	assert.Equal(t, "context: boom", wrapped.Error())
	require.ErrorIs(t, wrapped, base)
}

func TestErrorWithMsg(t *testing.T) {
	err := NewErrorWithMsg(http.StatusBadRequest, InvalidTitle, "title too long")
	assert.Equal(t, "title too long", err.Error())
}

func TestInternalServiceError(t *testing.T) {
	err := NewInternalServiceError(errors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, InternalServiceError, err.ErrorCode)
}

func TestQualifiedStatesForExecution(t *testing.T) {
	states := QualifiedStatesForExecution()
	require.Len(t, states, 1)
	assert.Equal(t, StatusActive, states[0])
}
