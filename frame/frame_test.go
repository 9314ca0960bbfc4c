package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nerrors "github.com/nereid-ml/nereid/pkg/errors"
)

func TestValidateAcceptsFrames(t *testing.T) {
	fr := New("train.hex", "x1", "y")

	got, err := Validate(fr, "training_frame")
	require.NoError(t, err)
	assert.Equal(t, "train.hex", got.Key())

	got, err = Validate(*fr, "training_frame")
	require.NoError(t, err)
	assert.Equal(t, "train.hex", got.Key())
	assert.Equal(t, []string{"x1", "y"}, got.Columns())
}

func TestValidateRejectsNonFrames(t *testing.T) {
	for _, v := range []any{"train.hex", 42, nil, struct{}{}, (*Frame)(nil)} {
		_, err := Validate(v, "validation_frame")
		require.Error(t, err, "value %v should be rejected", v)

		var ve *nerrors.ValueError
		require.True(t, nerrors.As(err, &ve))
		assert.Equal(t, "validation_frame", ve.Op)
	}
}

func TestValidateRejectsEmptyKey(t *testing.T) {
	_, err := Validate(Frame{}, "training_frame")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no key")
}
