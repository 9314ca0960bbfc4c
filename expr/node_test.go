package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nerrors "github.com/nereid-ml/nereid/pkg/errors"
)

type fakeRef struct{ key string }

func (r fakeRef) Key() string { return r.key }

func TestRapidsLiterals(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "strings are quoted",
			node: NewNode("tmp", "mse"),
			want: `(tmp "mse")`,
		},
		{
			name: "numbers",
			node: NewNode("tmp", 1, int64(-1), 0.5),
			want: `(tmp 1 -1 0.5)`,
		},
		{
			name: "bools",
			node: NewNode("tmp", true, false),
			want: `(tmp true false)`,
		},
		{
			name: "string slice",
			node: NewNode("tmp", []string{"a", "b"}),
			want: `(tmp ["a" "b"])`,
		},
		{
			name: "refs serialize as keys",
			node: NewNode("tmp", fakeRef{"model1"}, fakeRef{"frame1"}),
			want: `(tmp model1 frame1)`,
		},
		{
			name: "nested nodes",
			node: NewNode("outer", NewNode("inner", 2)),
			want: `(outer (inner 2))`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.node.Rapids()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRapidsPermutationVarImpShape(t *testing.T) {
	n := NewNode("PermutationVarImp", fakeRef{"psvm_model"}, fakeRef{"train.hex"}, "mse")
	got, err := n.Rapids()
	require.NoError(t, err)
	assert.Equal(t, `(PermutationVarImp psvm_model train.hex "mse")`, got)
	assert.Equal(t, "PermutationVarImp", n.Op())
	assert.Len(t, n.Args(), 3)
}

func TestRapidsUnsupportedOperand(t *testing.T) {
	n := NewNode("tmp", struct{}{})
	_, err := n.Rapids()
	require.Error(t, err)

	var ve *nerrors.ValueError
	assert.True(t, nerrors.As(err, &ve))
}
