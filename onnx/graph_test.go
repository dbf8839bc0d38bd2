package onnx

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph(t *testing.T) {
	g := NewGraph()
	c := must.M1(NewConstantNode("w", []int{2, 3}, []float32{1, 2, 3, 4, 5, 6}))
	assert.Equal(t, 0, must.M1(g.AddNode(c)))
	assert.Equal(t, 1, must.M1(g.AddNode(NewValueNode("x", []Dim{{Name: "batch"}, {Value: 3}}))))

	_, err := g.AddNode(NewValueNode("w", nil))
	require.ErrorIs(t, err, ErrDuplicateNodeName)
	assert.Contains(t, err.Error(), `"w"`)
	assert.Len(t, g.Nodes, 2)

	assert.True(t, g.Has("x"))
	assert.Equal(t, 1, must.M1(g.NodeIndex("x")))
	_, err = g.NodeIndex("y")
	require.ErrorIs(t, err, ErrUnknownReference)

	x := g.Nodes[1].(*ValueNode)
	assert.True(t, x.Shape[0].IsSymbolic())
	assert.False(t, x.Shape[1].IsSymbolic())
}

func TestNewConstantNode(t *testing.T) {
	c, err := NewConstantNode[int32]("scalar", nil, []int32{7})
	require.NoError(t, err)
	assert.Equal(t, []int{}, c.Shape)
	assert.Equal(t, 1, c.Len())

	c, err = NewConstantNode("empty", []int{0, 3}, []float32{})
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	_, err = NewConstantNode("bad", []int{2}, []float32{1, 2, 3})
	require.ErrorIs(t, err, ErrShapeMismatch)
	_, err = NewConstantNode("negative", []int{-1}, []int32{})
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDiagnostics(t *testing.T) {
	diag := quietDiagnostics()
	diag.Warnf("value %d", 1)
	diag.Warnf("value %d", 1)
	diag.Warnf("value %d", 2)
	diag.Errorf("failed %s", "x")
	diag.Errorf("failed %s", "x")
	assert.Equal(t, []string{"value 1", "value 2", "failed x"}, diag.Messages())
	assert.Equal(t, 2, diag.ErrorCount())

	// The zero value is usable too.
	var zero Diagnostics
	zero.Quiet = true
	zero.Warnf("w")
	assert.Equal(t, []string{"w"}, zero.Messages())
}

func TestConversionFailedError(t *testing.T) {
	err := error(&ConversionFailedError{
		Phase: "operators",
		Errors: []error{
			errors.Wrap(ErrUnsupportedOperator, "operator Foo"),
			errors.Wrap(ErrMissingRequiredAttribute, "attribute \"axis\""),
		},
	})
	assert.Equal(t, "conversion failed: errors occurred when converting 2 operators", err.Error())
	assert.ErrorIs(t, err, ErrConversionFailed)
	assert.ErrorIs(t, err, ErrUnsupportedOperator)
	assert.ErrorIs(t, err, ErrMissingRequiredAttribute)
	assert.NotErrorIs(t, err, ErrDuplicateNodeName)

	var failed *ConversionFailedError
	require.ErrorAs(t, errors.WithMessage(err, "model.onnx"), &failed)
	assert.Equal(t, 2, failed.Count())
}
