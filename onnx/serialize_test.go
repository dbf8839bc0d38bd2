package onnx

import (
	"math"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasnn/onnx-wasnn/internal/schema"
)

func TestSerializeRoundTrip(t *testing.T) {
	g, err := convNetModel().Convert(ConvertOptions{Diagnostics: quietDiagnostics()})
	require.NoError(t, err)
	buf, err := g.Serialize()
	require.NoError(t, err)

	decoded, err := Deserialize(buf)
	require.NoError(t, err)
	assert.Equal(t, g, decoded)
}

func TestSerializeFormat(t *testing.T) {
	g := NewGraph()
	must.M1(g.AddNode(must.M1(NewConstantNode("w", []int{2}, []float32{1, 2}))))
	must.M1(g.AddNode(must.M1(NewConstantNode("i", nil, []int32{-5}))))
	must.M1(g.AddNode(NewValueNode("unknown", nil)))
	must.M1(g.AddNode(NewValueNode("scalar", []Dim{})))
	must.M1(g.AddNode(NewValueNode("x", []Dim{{Name: "batch"}, {Value: 3}})))
	axis := int32(1)
	must.M1(g.AddNode(&OperatorNode{
		name:    "argmax",
		OpType:  schema.OperatorTypeArgMax,
		Attrs:   attrsOf(schema.OperatorAttrsArgMaxAttrs, &schema.ArgMaxAttrsT{Axis: &axis, KeepDims: true}),
		Inputs:  []int{4, NoInput},
		Outputs: []int{3},
	}))
	g.Inputs = []int{4}
	g.Outputs = []int{3}

	buf, err := g.Serialize()
	require.NoError(t, err)

	// Check the raw encoding with the generated accessors.
	model := schema.GetRootAsModel(buf, 0)
	assert.Equal(t, int32(schema.SchemaVersion), model.SchemaVersion())
	graph := model.Graph(nil)
	require.NotNil(t, graph)
	require.Equal(t, 6, graph.NodesLength())
	assert.Equal(t, uint32(4), graph.Inputs(0))
	assert.Equal(t, uint32(3), graph.Outputs(0))

	var node schema.Node
	require.True(t, graph.Nodes(&node, 5))
	assert.Equal(t, "argmax", string(node.Name()))
	assert.Equal(t, schema.NodeKindOperatorNode, node.DataType())
	op := node.UnPack().Data.Value.(*schema.OperatorNodeT)
	assert.Equal(t, []int32{4, -1}, op.Inputs)
	assert.Equal(t, []int32{3}, op.Outputs)
	require.NotNil(t, op.Attrs.Value.(*schema.ArgMaxAttrsT).Axis)

	// Absent and empty shapes are different things.
	require.True(t, graph.Nodes(&node, 2))
	assert.Nil(t, node.UnPack().Data.Value.(*schema.ValueNodeT).Shape)
	require.True(t, graph.Nodes(&node, 3))
	shape := node.UnPack().Data.Value.(*schema.ValueNodeT).Shape
	assert.NotNil(t, shape)
	assert.Empty(t, shape)

	decoded, err := Deserialize(buf)
	require.NoError(t, err)
	assert.Equal(t, g, decoded)
}

func TestSerializeInvalidDimensions(t *testing.T) {
	for _, size := range []int{-1, math.MaxUint32 + 5} {
		g := NewGraph()
		must.M1(g.AddNode(NewValueNode("x", []Dim{{Value: 2}, {Value: size}})))
		_, err := g.Serialize()
		require.ErrorIs(t, err, ErrShapeMismatch)
		assert.Contains(t, err.Error(), `"x"`)
	}
}

func TestDeserializeErrors(t *testing.T) {
	_, err := Deserialize([]byte{1})
	require.Error(t, err)

	_, err = Deserialize([]byte{0xff, 0xff, 0xff, 0x7f, 0, 0, 0, 0})
	require.Error(t, err)
}
