package errors

import (
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aifw-dev/regex-shim/domain/entities"
)

func TestSyntaxError_Unwrap(t *testing.T) {
	inner := stdErrors.New("missing closing )")
	err := &SyntaxError{Err: inner, Pattern: "(ab"}

	assert.Contains(t, err.Error(), `"(ab"`)
	assert.True(t, stdErrors.Is(err, inner))
}

func TestBuildError_Unwrap(t *testing.T) {
	inner := stdErrors.New("too many states")
	err := &BuildError{Err: inner}
	assert.True(t, stdErrors.Is(err, inner))
}

func TestMemoryError_Message(t *testing.T) {
	err := &MemoryError{Requested: 128, Remaining: 16, Capacity: 64}
	assert.Contains(t, err.Error(), "128")
	assert.Contains(t, err.Error(), "16 of 64")
}

func TestIsFatal(t *testing.T) {
	assert.True(t, IsFatal(&FaultError{Reason: "cursor beyond capacity"}))
	assert.False(t, IsFatal(&ValidationError{Argument: "haystack"}))
	assert.False(t, IsFatal(nil))
}

func TestToStatus(t *testing.T) {
	require.Equal(t, entities.StatusNoMatch, ToStatus(nil))
	require.Equal(t, entities.StatusError, ToStatus(&ValidationError{Argument: "out_start"}))
	require.Equal(t, entities.StatusError, ToStatus(stdErrors.New("anything")))
}
