package onnx

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasnn/onnx-wasnn/internal/protos"
)

func TestAttrReader(t *testing.T) {
	node := &protos.NodeProto{
		Name:   "node",
		OpType: "Test",
		Attribute: []*protos.AttributeProto{
			intAttr("i", 7),
			floatAttr("f", 0.5),
			stringAttr("s", "hello"),
			intsAttr("empty"),
			intsAttr("ints", 1, 2, 3),
			intAttr("unused", 1),
			floatAttr("also_unused", 1),
		},
	}

	t.Run("Getters", func(t *testing.T) {
		r := testReader(node, NewGraph(), quietDiagnostics())
		assert.Equal(t, int64(7), r.getInt("i", 0))
		assert.Equal(t, int64(3), r.getInt("missing_int", 3))
		assert.Equal(t, float32(0.5), r.getFloat("f", 0))
		assert.Equal(t, "hello", r.getString("s", ""))
		assert.Equal(t, "default", r.getString("missing_string", "default"))
		assert.Equal(t, []int64{1, 2, 3}, r.getInts("ints", nil))
		assert.True(t, r.getBool("i", false))
		assert.Nil(t, r.getOptionalInt("missing_optional"))
		assert.Equal(t, int64(7), *r.getOptionalInt("i"))

		// A present empty list is not the default.
		empty := r.getInts("empty", []int64{1, 1})
		assert.NotNil(t, empty)
		assert.Empty(t, empty)
		assert.Nil(t, r.getInts("missing_ints", nil))
	})

	t.Run("Unhandled", func(t *testing.T) {
		r := testReader(node, NewGraph(), quietDiagnostics())
		r.getInt("i", 0)
		r.getFloat("f", 0)
		r.ignore("s")
		r.getInts("empty", nil)
		r.getInts("ints", nil)
		assert.Equal(t, []string{"unused", "also_unused"}, r.unhandled())
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		r := testReader(node, NewGraph(), quietDiagnostics())
		err := exceptions.TryCatch[error](func() { r.getInt("f", 0) })
		require.ErrorIs(t, err, ErrAttributeTypeMismatch)
		assert.Contains(t, err.Error(), `"f"`)
	})

	t.Run("Required", func(t *testing.T) {
		r := testReader(node, NewGraph(), quietDiagnostics())
		assert.Equal(t, int64(7), r.requireInt("i"))
		err := exceptions.TryCatch[error](func() { r.requireInt("axis") })
		require.ErrorIs(t, err, ErrMissingRequiredAttribute)
	})

	t.Run("Checks", func(t *testing.T) {
		r := testReader(node, NewGraph(), quietDiagnostics())
		require.NoError(t, exceptions.TryCatch[error](func() {
			r.checkInt("i", 7)
			r.checkInt("missing", 0)
			r.checkFloat("f", 0.5)
			r.checkString("s", "hello", "bye")
			r.checkInts("ints", []int64{0}, []int64{1, 2, 3})
			r.checkEmptyList("empty", protos.AttributeProto_INTS)
		}))
		err := exceptions.TryCatch[error](func() { r.checkInt("i", 0) })
		require.ErrorIs(t, err, ErrUnsupportedAttributeValue)
		err = exceptions.TryCatch[error](func() { r.checkString("s", "a", "b") })
		require.ErrorIs(t, err, ErrUnsupportedAttributeValue)
		err = exceptions.TryCatch[error](func() { r.checkEmptyList("ints", protos.AttributeProto_INTS) })
		require.ErrorIs(t, err, ErrUnsupportedAttributeValue)
	})

	t.Run("Uints", func(t *testing.T) {
		assert.Equal(t, []uint32{1, 2}, uints("strides", []int64{1, 2}))
		assert.Nil(t, uints("strides", nil))
		err := exceptions.TryCatch[error](func() { uints("strides", []int64{1, -1}) })
		require.ErrorIs(t, err, ErrUnsupportedAttributeValue)
	})
}

func TestPromoteToInput(t *testing.T) {
	t.Run("FloatScalar", func(t *testing.T) {
		graph := NewGraph()
		input := must.M1(graph.AddNode(NewValueNode("x", nil)))
		node := &protos.NodeProto{Name: "clip", OpType: "Clip", Attribute: []*protos.AttributeProto{floatAttr("min", -1)}}
		r := testReader(node, graph, quietDiagnostics(), input)
		require.NoError(t, exceptions.TryCatch[error](func() { r.promoteToInput(1, "min", protos.AttributeProto_FLOAT) }))

		require.Len(t, r.inputs, 2)
		assert.Equal(t, input, r.inputs[0])
		constant, ok := graph.Nodes[r.inputs[1]].(*ConstantNode)
		require.True(t, ok)
		assert.Equal(t, "clip:wasnn-min", constant.Name())
		assert.Equal(t, []int{}, constant.Shape)
		assert.Equal(t, []float32{-1}, constant.Data)
	})

	t.Run("PadsWithNoInput", func(t *testing.T) {
		graph := NewGraph()
		node := &protos.NodeProto{Name: "clip", OpType: "Clip", Attribute: []*protos.AttributeProto{floatAttr("max", 6)}}
		r := testReader(node, graph, quietDiagnostics(), 0)
		require.NoError(t, exceptions.TryCatch[error](func() { r.promoteToInput(2, "max", protos.AttributeProto_FLOAT) }))
		require.Len(t, r.inputs, 3)
		assert.Equal(t, NoInput, r.inputs[1])
		assert.Equal(t, "clip:wasnn-max", graph.Nodes[r.inputs[2]].Name())
	})

	t.Run("AbsentInputSlotIsFree", func(t *testing.T) {
		graph := NewGraph()
		node := &protos.NodeProto{Name: "clip", OpType: "Clip", Attribute: []*protos.AttributeProto{floatAttr("min", 0)}}
		r := testReader(node, graph, quietDiagnostics(), 0, NoInput)
		require.NoError(t, exceptions.TryCatch[error](func() { r.promoteToInput(1, "min", protos.AttributeProto_FLOAT) }))
		assert.Equal(t, 0, r.inputs[1])
	})

	t.Run("IntsVector", func(t *testing.T) {
		graph := NewGraph()
		node := &protos.NodeProto{Name: "squeeze", OpType: "Squeeze", Attribute: []*protos.AttributeProto{intsAttr("axes", 0, 2)}}
		r := testReader(node, graph, quietDiagnostics(), 0)
		require.NoError(t, exceptions.TryCatch[error](func() { r.promoteToInput(1, "axes", protos.AttributeProto_INTS) }))
		constant := graph.Nodes[r.inputs[1]].(*ConstantNode)
		assert.Equal(t, []int{2}, constant.Shape)
		assert.Equal(t, []int32{0, 2}, constant.Data)
	})

	t.Run("Conflict", func(t *testing.T) {
		graph := NewGraph()
		node := &protos.NodeProto{Name: "clip", OpType: "Clip", Attribute: []*protos.AttributeProto{floatAttr("min", 0)}}
		r := testReader(node, graph, quietDiagnostics(), 0, 1)
		err := exceptions.TryCatch[error](func() { r.promoteToInput(1, "min", protos.AttributeProto_FLOAT) })
		require.ErrorIs(t, err, ErrConflictingAttributeAndInput)
		assert.Empty(t, graph.Nodes)
	})

	t.Run("Absent", func(t *testing.T) {
		graph := NewGraph()
		node := &protos.NodeProto{Name: "clip", OpType: "Clip"}
		r := testReader(node, graph, quietDiagnostics(), 0)
		require.NoError(t, exceptions.TryCatch[error](func() { r.promoteToInput(1, "min", protos.AttributeProto_FLOAT) }))
		assert.Equal(t, []int{0}, r.inputs)
		assert.Empty(t, graph.Nodes)
	})
}
