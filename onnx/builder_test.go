package onnx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasnn/onnx-wasnn/internal/protos"
	"github.com/wasnn/onnx-wasnn/internal/schema"
)

// valueInfo returns a tensor ValueInfoProto. Dimensions are either int (fixed) or string (symbolic).
// A nil dims means the shape is unknown.
func valueInfo(name string, dims ...any) *protos.ValueInfoProto {
	tensorType := &protos.TypeProto_Tensor{ElemType: int32(protos.TensorProto_FLOAT)}
	if dims != nil {
		tensorType.Shape = &protos.TensorShapeProto{Dim: sliceMap(dims, func(d any) *protos.TensorShapeProto_Dimension {
			if s, ok := d.(string); ok {
				return &protos.TensorShapeProto_Dimension{DimParam: s}
			}
			return &protos.TensorShapeProto_Dimension{DimValue: int64(d.(int))}
		})}
	}
	return &protos.ValueInfoProto{Name: name, Type: &protos.TypeProto{TensorType: tensorType}}
}

func newTestModel(opset int64, graph *protos.GraphProto) *Model {
	return &Model{Proto: protos.ModelProto{
		IrVersion:   8,
		OpsetImport: []*protos.OperatorSetIdProto{{Domain: "", Version: opset}},
		Graph:       graph,
	}}
}

// convNetModel: x -> Conv(w, b) -> Relu -> Clip(min=0 attribute) -> y, plus a Constant operator feeding Add.
func convNetModel() *Model {
	return newTestModel(13, &protos.GraphProto{
		Name: "convnet",
		Initializer: []*protos.TensorProto{
			floatTensor("w", []int64{1, 1, 1, 1}, 2),
			floatTensor("b", []int64{1}, 0.5),
		},
		Input: []*protos.ValueInfoProto{valueInfo("x", "batch", 1, 4, 4)},
		Node: []*protos.NodeProto{
			{Name: "conv", OpType: "Conv", Input: []string{"x", "w", "b"}, Output: []string{"conv_out"},
				Attribute: []*protos.AttributeProto{intsAttr("kernel_shape", 1, 1)}},
			{OpType: "Relu", Input: []string{"conv_out"}, Output: []string{"relu_out"}},
			{Name: "clip", OpType: "Clip", Input: []string{"relu_out"}, Output: []string{"clip_out"},
				Attribute: []*protos.AttributeProto{floatAttr("min", 0)}},
			{Name: "one", OpType: "Constant", Output: []string{"one_out"},
				Attribute: []*protos.AttributeProto{tensorAttr("value", floatTensor("", nil, 1))}},
			{Name: "add", OpType: "Add", Input: []string{"clip_out", "one_out"}, Output: []string{"y"}},
		},
		ValueInfo: []*protos.ValueInfoProto{valueInfo("conv_out", "batch", 1, 4, 4)},
		Output:    []*protos.ValueInfoProto{valueInfo("y", "batch", 1, 4, 4)},
	})
}

func nodeNames(g *Graph) []string {
	return sliceMap(g.Nodes, func(n Node) string { return n.Name() })
}

func TestConvert(t *testing.T) {
	diag := quietDiagnostics()
	g, err := convNetModel().Convert(ConvertOptions{Diagnostics: diag})
	require.NoError(t, err)
	assert.Empty(t, diag.Messages())

	// Initializers, Constant operators and inputs first, then each operator after its outputs.
	assert.Equal(t, []string{
		"w", "b", "one_out", "x",
		"conv_out", "conv",
		"relu_out", "Relu_1",
		"clip_out", "clip:wasnn-min", "clip",
		"y", "add",
	}, nodeNames(g))
	assert.Equal(t, []int{3}, g.Inputs)
	assert.Equal(t, []int{11}, g.Outputs)

	x := g.Nodes[3].(*ValueNode)
	assert.Equal(t, []Dim{{Name: "batch"}, {Value: 1}, {Value: 4}, {Value: 4}}, x.Shape)
	assert.Equal(t, x.Shape, g.Nodes[4].(*ValueNode).Shape)
	assert.Nil(t, g.Nodes[6].(*ValueNode).Shape, "shape of relu_out is unknown")

	conv := g.Nodes[5].(*OperatorNode)
	assert.Equal(t, schema.OperatorTypeConv, conv.OpType)
	assert.Equal(t, []int{3, 0, 1}, conv.Inputs)
	assert.Equal(t, []int{4}, conv.Outputs)
	assert.Equal(t, &schema.ConvAttrsT{
		Dilations: []uint32{1, 1},
		Groups:    1,
		PadMode:   schema.PadModeFixed,
		Pads:      []uint32{0, 0, 0, 0},
		Strides:   []uint32{1, 1},
	}, conv.Attrs.Value)

	relu := g.Nodes[7].(*OperatorNode)
	assert.Nil(t, relu.Attrs)

	clip := g.Nodes[10].(*OperatorNode)
	assert.Equal(t, []int{8}, clip.Outputs)
	assert.Equal(t, []int{6, 9}, clip.Inputs)
	assert.Equal(t, []float32{0}, g.Nodes[9].(*ConstantNode).Data)

	one := g.Nodes[2].(*ConstantNode)
	assert.Equal(t, []int{}, one.Shape)
	assert.Equal(t, []int{8, 2}, g.Nodes[12].(*OperatorNode).Inputs)
}

func TestConvertOptionalInputsAndOutputs(t *testing.T) {
	model := newTestModel(13, &protos.GraphProto{
		Input: []*protos.ValueInfoProto{valueInfo("x", 2, 3), valueInfo("max", []any{}...)},
		Node: []*protos.NodeProto{
			{Name: "clip", OpType: "Clip", Input: []string{"x", "", "max"}, Output: []string{"y"}},
			{Name: "lstm", OpType: "LSTM", Input: []string{"x", "x", "x"}, Output: []string{"", "h"},
				Attribute: []*protos.AttributeProto{intAttr("hidden_size", 4)}},
		},
		Output: []*protos.ValueInfoProto{valueInfo("y"), valueInfo("h")},
	})
	g, err := model.Convert(ConvertOptions{Diagnostics: quietDiagnostics()})
	require.NoError(t, err)
	clip := g.Nodes[3].(*OperatorNode)
	assert.Equal(t, []int{0, NoInput, 1}, clip.Inputs)

	lstm := g.Nodes[6].(*OperatorNode)
	assert.Equal(t, []int{4, 5}, lstm.Outputs)
	assert.Equal(t, "lstm:unused-output-0", g.Nodes[4].Name())

	// Declared with an empty dimension list: a scalar, not an unknown shape.
	assert.Equal(t, []Dim{}, g.Nodes[1].(*ValueNode).Shape)
}

func TestConvertErrors(t *testing.T) {
	t.Run("DuplicateAcrossPhases", func(t *testing.T) {
		model := newTestModel(13, &protos.GraphProto{
			Initializer: []*protos.TensorProto{floatTensor("a", []int64{1}, 1)},
			Input:       []*protos.ValueInfoProto{valueInfo("x", 1)},
			Node: []*protos.NodeProto{
				{Name: "relu", OpType: "Relu", Input: []string{"x"}, Output: []string{"a"}},
			},
			Output: []*protos.ValueInfoProto{valueInfo("a", 1)},
		})
		diag := quietDiagnostics()
		_, err := model.Convert(ConvertOptions{Diagnostics: diag})
		require.ErrorIs(t, err, ErrConversionFailed)
		require.ErrorIs(t, err, ErrDuplicateNodeName)
		var failed *ConversionFailedError
		require.ErrorAs(t, err, &failed)
		assert.Equal(t, "operators", failed.Phase)
		assert.Equal(t, 1, diag.ErrorCount())
		assert.Contains(t, diag.Messages()[0], "Error converting Relu operator relu")
	})

	t.Run("ItemErrorsAreCollected", func(t *testing.T) {
		model := newTestModel(13, &protos.GraphProto{
			Input: []*protos.ValueInfoProto{valueInfo("x", 1)},
			Node: []*protos.NodeProto{
				{Name: "nms", OpType: "NonMaxSuppression", Input: []string{"x"}, Output: []string{"a"}},
				{Name: "concat", OpType: "Concat", Input: []string{"x"}, Output: []string{"b"}},
				{Name: "relu", OpType: "Relu", Input: []string{"b"}, Output: []string{"c"}},
				{Name: "neg", OpType: "Neg", Input: []string{"undefined"}, Output: []string{"d"}},
			},
		})
		diag := quietDiagnostics()
		_, err := model.Convert(ConvertOptions{Diagnostics: diag})
		var failed *ConversionFailedError
		require.ErrorAs(t, err, &failed)
		assert.Equal(t, 3, failed.Count())
		assert.Equal(t, 3, diag.ErrorCount())
		require.ErrorIs(t, err, ErrUnsupportedOperator)
		require.ErrorIs(t, err, ErrMissingRequiredAttribute)
		require.ErrorIs(t, err, ErrUnknownReference)
	})

	t.Run("Initializers", func(t *testing.T) {
		model := newTestModel(13, &protos.GraphProto{
			Initializer: []*protos.TensorProto{
				{Name: "s", Dims: []int64{1}, DataType: int32(protos.TensorProto_STRING), StringData: [][]byte{[]byte("a")}},
			},
			Node: []*protos.NodeProto{{Name: "nms", OpType: "NonMaxSuppression"}},
		})
		diag := quietDiagnostics()
		_, err := model.Convert(ConvertOptions{Diagnostics: diag})
		var failed *ConversionFailedError
		require.ErrorAs(t, err, &failed)
		assert.Equal(t, "initializers", failed.Phase)
		require.ErrorIs(t, err, ErrUnsupportedTensorType)
		// Later phases don't run.
		assert.Equal(t, 1, diag.ErrorCount())
		assert.Contains(t, diag.Messages()[0], "Error converting initializer")
	})

	t.Run("ConstantWithoutValue", func(t *testing.T) {
		model := newTestModel(13, &protos.GraphProto{
			Node: []*protos.NodeProto{
				{Name: "c", OpType: "Constant", Output: []string{"c_out"},
					Attribute: []*protos.AttributeProto{stringAttr("value_string", "abc")}},
				{Name: "c2", OpType: "Constant"},
			},
		})
		diag := quietDiagnostics()
		_, err := model.Convert(ConvertOptions{Diagnostics: diag})
		var failed *ConversionFailedError
		require.ErrorAs(t, err, &failed)
		assert.Equal(t, "constants", failed.Phase)
		assert.Equal(t, 2, failed.Count())
		require.ErrorIs(t, err, ErrMissingRequiredAttribute)
		assert.Contains(t, diag.Messages()[0], `Error converting "Constant" operator`)
	})

	t.Run("UnknownOutput", func(t *testing.T) {
		model := newTestModel(13, &protos.GraphProto{
			Input:  []*protos.ValueInfoProto{valueInfo("x", 1)},
			Output: []*protos.ValueInfoProto{valueInfo("nowhere", 1)},
		})
		_, err := model.Convert(ConvertOptions{Diagnostics: quietDiagnostics()})
		require.ErrorIs(t, err, ErrUnknownReference)
	})
}

func TestConvertConstantForms(t *testing.T) {
	model := newTestModel(13, &protos.GraphProto{
		Node: []*protos.NodeProto{
			{OpType: "Constant", Output: []string{"f"}, Attribute: []*protos.AttributeProto{floatAttr("value_float", 1.5)}},
			{OpType: "Constant", Output: []string{"fs"}, Attribute: []*protos.AttributeProto{floatsAttr("value_floats", 1, 2)}},
			{OpType: "Constant", Output: []string{"i"}, Attribute: []*protos.AttributeProto{intAttr("value_int", 1 << 40)}},
			{OpType: "Constant", Output: []string{"is"}, Attribute: []*protos.AttributeProto{intsAttr("value_ints", 3, 4, 5)}},
		},
	})
	diag := quietDiagnostics()
	g, err := model.Convert(ConvertOptions{Diagnostics: diag})
	require.NoError(t, err)
	require.Len(t, g.Nodes, 4)
	assert.Equal(t, []float32{1.5}, g.Nodes[0].(*ConstantNode).Data)
	assert.Equal(t, []int{}, g.Nodes[0].(*ConstantNode).Shape)
	assert.Equal(t, []int{2}, g.Nodes[1].(*ConstantNode).Shape)
	assert.Equal(t, []int32{2147483647}, g.Nodes[2].(*ConstantNode).Data)
	assert.Equal(t, []int32{3, 4, 5}, g.Nodes[3].(*ConstantNode).Data)
	assert.Len(t, diag.Messages(), 1, "clamping warning")
}

func TestConvertUnhandledAttributes(t *testing.T) {
	model := newTestModel(13, &protos.GraphProto{
		Input: []*protos.ValueInfoProto{valueInfo("x", 1)},
		Node: []*protos.NodeProto{
			{Name: "r1", OpType: "Relu", Input: []string{"x"}, Output: []string{"a"},
				Attribute: []*protos.AttributeProto{floatAttr("alpha", 1)}},
			{Name: "r2", OpType: "Relu", Input: []string{"a"}, Output: []string{"b"},
				Attribute: []*protos.AttributeProto{floatAttr("alpha", 1)}},
			{Name: "conv", OpType: "Conv", Input: []string{"b", "x"}, Output: []string{"c"},
				Attribute: []*protos.AttributeProto{stringAttr("auto_pad", "SAME_UPPER"), intsAttr("pads", 1, 1, 1, 1)}},
		},
		Output: []*protos.ValueInfoProto{valueInfo("c")},
	})
	diag := quietDiagnostics()
	_, err := model.Convert(ConvertOptions{Diagnostics: diag})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Unsupported attribute alpha for operator Relu",
		"Unsupported attribute pads for operator Conv",
	}, diag.Messages())
}

func TestOpsetVersion(t *testing.T) {
	m := newTestModel(11, &protos.GraphProto{})
	assert.Equal(t, int64(11), m.OpsetVersion())
	m.Proto.OpsetImport = []*protos.OperatorSetIdProto{{Domain: "com.microsoft", Version: 1}, {Domain: "ai.onnx", Version: 17}}
	assert.Equal(t, int64(17), m.OpsetVersion())
	m.Proto.OpsetImport = nil
	assert.Equal(t, int64(0), m.OpsetVersion())
}

func TestConvertGeneratedNames(t *testing.T) {
	// The unnamed Relu would be "Relu_0", which another operator already uses.
	model := newTestModel(13, &protos.GraphProto{
		Input: []*protos.ValueInfoProto{valueInfo("x", 2)},
		Node: []*protos.NodeProto{
			{OpType: "Relu", Input: []string{"x"}, Output: []string{"a"}},
			{Name: "Relu_0", OpType: "Relu", Input: []string{"a"}, Output: []string{"b"}},
			{OpType: "Relu", Input: []string{"b"}, Output: []string{"Relu_2"}},
		},
		Output: []*protos.ValueInfoProto{valueInfo("Relu_2")},
	})
	g, err := model.Convert(ConvertOptions{Diagnostics: quietDiagnostics()})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "a", "Relu_0_1", "b", "Relu_0", "Relu_2", "Relu_2_1"}, nodeNames(g))
}

func TestConvertInvalidDimensions(t *testing.T) {
	for _, dim := range []int{-1, math.MaxUint32 + 5} {
		model := newTestModel(13, &protos.GraphProto{
			Input:  []*protos.ValueInfoProto{valueInfo("x", dim)},
			Node:   []*protos.NodeProto{{Name: "relu", OpType: "Relu", Input: []string{"x"}, Output: []string{"y"}}},
			Output: []*protos.ValueInfoProto{valueInfo("y")},
		})
		_, err := model.Convert(ConvertOptions{Diagnostics: quietDiagnostics()})
		require.ErrorIs(t, err, ErrShapeMismatch)
		assert.ErrorIs(t, err, ErrConversionFailed)

		// Declared shapes of intermediate values are checked too.
		model.Proto.Graph.Input[0] = valueInfo("x")
		model.Proto.Graph.Output[0] = valueInfo("y", dim)
		_, err = model.Convert(ConvertOptions{Diagnostics: quietDiagnostics()})
		require.ErrorIs(t, err, ErrShapeMismatch)
	}
}
