package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownParameterError(t *testing.T) {
	err := NewUnknownParameterError("foo", 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown parameter foo = 42")

	var upe *UnknownParameterError
	require.True(t, As(err, &upe))
	assert.Equal(t, "foo", upe.Param)
	assert.Equal(t, 42, upe.Value)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("gamma", "numeric", "not-a-number")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed for parameter 'gamma'")
	assert.Contains(t, err.Error(), "expected numeric")
	assert.Contains(t, err.Error(), "not-a-number")

	var ve *ValidationError
	require.True(t, As(err, &ve))
	assert.Equal(t, "gamma", ve.Param)
	assert.Equal(t, "numeric", ve.Expected)
}

func TestValueError(t *testing.T) {
	err := NewValueError("Compute", "frame is not a Frame")
	require.Error(t, err)
	assert.Equal(t, "nereid: Compute: frame is not a Frame", err.Error())

	var ve *ValueError
	require.True(t, As(err, &ve))
	assert.Equal(t, "Compute", ve.Op)
}

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("SVMEstimator", "Model")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not fitted yet")

	var nfe *NotFittedError
	require.True(t, As(err, &nfe))
	assert.Equal(t, "SVMEstimator", nfe.ModelName)
}

func TestWrapPreservesType(t *testing.T) {
	base := NewValidationError("seed", "integer", 1.5)
	wrapped := Wrap(base, "constructing estimator")

	var ve *ValidationError
	require.True(t, As(wrapped, &ve))
	assert.Equal(t, "seed", ve.Param)
	assert.Contains(t, wrapped.Error(), "constructing estimator")
}

func TestIsOnSentinel(t *testing.T) {
	sentinel := New("boom")
	wrapped := Wrapf(sentinel, "op %s", "eval")
	assert.True(t, Is(wrapped, sentinel))
}
