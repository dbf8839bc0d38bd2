package onnx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasnn/onnx-wasnn/internal/protos"
	"github.com/wasnn/onnx-wasnn/internal/schema"
)

func TestOperatorRegistry(t *testing.T) {
	for onnxOpType := range opRules {
		opType, rule, err := lookupOperator(onnxOpType)
		require.NoErrorf(t, err, "operator %s", onnxOpType)
		require.NotNil(t, rule)
		assert.Equal(t, onnxOpType, opType.String())
	}
	_, _, err := lookupOperator("NonMaxSuppression")
	require.ErrorIs(t, err, ErrUnsupportedOperator)
}

func TestConvertConv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		attrs, r, err := convertOp("Conv", 13)
		require.NoError(t, err)
		require.Equal(t, schema.OperatorAttrsConvAttrs, attrs.Type)
		conv := attrs.Value.(*schema.ConvAttrsT)
		assert.Equal(t, schema.PadModeFixed, conv.PadMode)
		assert.Equal(t, []uint32{0, 0, 0, 0}, conv.Pads)
		assert.Equal(t, []uint32{1, 1}, conv.Strides)
		assert.Equal(t, []uint32{1, 1}, conv.Dilations)
		assert.Equal(t, uint32(1), conv.Groups)
		assert.Empty(t, r.unhandled())
	})

	t.Run("Explicit", func(t *testing.T) {
		attrs, r, err := convertOp("Conv", 13,
			intsAttr("pads", 1, 1, 2, 2), intsAttr("strides", 2, 2), intsAttr("dilations", 1), intAttr("group", 32),
			intsAttr("kernel_shape", 3, 3))
		require.NoError(t, err)
		conv := attrs.Value.(*schema.ConvAttrsT)
		assert.Equal(t, []uint32{1, 1, 2, 2}, conv.Pads)
		assert.Equal(t, []uint32{2, 2}, conv.Strides)
		assert.Equal(t, []uint32{1}, conv.Dilations)
		assert.Equal(t, uint32(32), conv.Groups)
		assert.Empty(t, r.unhandled())
	})

	t.Run("SamePadding", func(t *testing.T) {
		for _, autoPad := range []string{"SAME_UPPER", "SAME_LOWER"} {
			attrs, _, err := convertOp("Conv", 13, stringAttr("auto_pad", autoPad))
			require.NoError(t, err)
			conv := attrs.Value.(*schema.ConvAttrsT)
			assert.Equal(t, schema.PadModeSame, conv.PadMode)
			assert.Nil(t, conv.Pads)
		}
	})

	t.Run("ValidPaddingUnsupported", func(t *testing.T) {
		_, _, err := convertOp("Conv", 13, stringAttr("auto_pad", "VALID"))
		require.ErrorIs(t, err, ErrUnsupportedPadMode)
	})

	t.Run("InvalidLengths", func(t *testing.T) {
		_, _, err := convertOp("Conv", 13, intsAttr("pads", 1, 1, 1))
		require.ErrorIs(t, err, ErrInvalidAttributeLength)
		_, _, err = convertOp("Conv", 13, intsAttr("strides", 1, 1, 1))
		require.ErrorIs(t, err, ErrInvalidAttributeLength)
	})

	t.Run("WrongAttributeType", func(t *testing.T) {
		_, _, err := convertOp("Conv", 13, intAttr("strides", 2))
		require.ErrorIs(t, err, ErrAttributeTypeMismatch)
	})
}

func TestConvertPooling(t *testing.T) {
	attrs, _, err := convertOp("MaxPool", 13, intsAttr("kernel_shape", 2, 2), intsAttr("strides", 2, 2))
	require.NoError(t, err)
	pool := attrs.Value.(*schema.MaxPoolAttrsT)
	assert.Equal(t, []uint32{2, 2}, pool.KernelSize)
	assert.Equal(t, []uint32{2, 2}, pool.Strides)
	assert.Equal(t, schema.PadModeFixed, pool.PadMode)

	_, _, err = convertOp("MaxPool", 13)
	require.ErrorIs(t, err, ErrMissingRequiredAttribute)
	_, _, err = convertOp("AveragePool", 13, intsAttr("kernel_shape", 3))
	require.ErrorIs(t, err, ErrInvalidAttributeLength)
	_, _, err = convertOp("AveragePool", 13, intsAttr("kernel_shape", 3, 3), intAttr("ceil_mode", 1))
	require.ErrorIs(t, err, ErrUnsupportedAttributeValue)
	_, _, err = convertOp("MaxPool", 13, intsAttr("kernel_shape", 3, 3), intsAttr("dilations", 2, 2))
	require.ErrorIs(t, err, ErrUnsupportedAttributeValue)
}

func TestConvertDefaults(t *testing.T) {
	attrs, _, err := convertOp("Gemm", 13)
	require.NoError(t, err)
	assert.Equal(t, &schema.GemmAttrsT{Alpha: 1, Beta: 1}, attrs.Value)

	attrs, _, err = convertOp("Gemm", 13, intAttr("transB", 1), floatAttr("alpha", 0.5))
	require.NoError(t, err)
	assert.Equal(t, &schema.GemmAttrsT{Alpha: 0.5, Beta: 1, TransposeB: true}, attrs.Value)

	attrs, _, err = convertOp("Flatten", 13)
	require.NoError(t, err)
	assert.Equal(t, &schema.FlattenAttrsT{Axis: 1}, attrs.Value)

	attrs, _, err = convertOp("LeakyRelu", 13)
	require.NoError(t, err)
	assert.Equal(t, &schema.LeakyReluAttrsT{Alpha: 0.01}, attrs.Value)

	attrs, _, err = convertOp("HardSigmoid", 13)
	require.NoError(t, err)
	assert.Equal(t, &schema.HardSigmoidAttrsT{Alpha: 0.2, Beta: 0.5}, attrs.Value)

	attrs, _, err = convertOp("TopK", 13)
	require.NoError(t, err)
	assert.Equal(t, &schema.TopKAttrsT{Axis: -1, Largest: true, Sorted: true}, attrs.Value)

	attrs, _, err = convertOp("Trilu", 14)
	require.NoError(t, err)
	assert.Equal(t, &schema.TriluAttrsT{Upper: true}, attrs.Value)

	attrs, _, err = convertOp("BatchNormalization", 13)
	require.NoError(t, err)
	assert.Equal(t, &schema.BatchNormalizationAttrsT{Epsilon: 1e-5}, attrs.Value)

	attrs, _, err = convertOp("Relu", 13)
	require.NoError(t, err)
	assert.Nil(t, attrs)

	_, _, err = convertOp("Concat", 13)
	require.ErrorIs(t, err, ErrMissingRequiredAttribute)
}

func TestConvertArgMax(t *testing.T) {
	attrs, _, err := convertOp("ArgMax", 13)
	require.NoError(t, err)
	argMax := attrs.Value.(*schema.ArgMaxAttrsT)
	assert.Nil(t, argMax.Axis)
	assert.True(t, argMax.KeepDims)

	attrs, _, err = convertOp("ArgMin", 13, intAttr("axis", -1), intAttr("keepdims", 0))
	require.NoError(t, err)
	argMax = attrs.Value.(*schema.ArgMaxAttrsT)
	require.NotNil(t, argMax.Axis)
	assert.Equal(t, int32(-1), *argMax.Axis)
	assert.False(t, argMax.KeepDims)
}

func TestConvertSoftmax(t *testing.T) {
	for _, tc := range []struct {
		opset int64
		axis  int32
	}{{11, 1}, {12, 1}, {13, -1}, {18, -1}, {0, -1}} {
		attrs, _, err := convertOp("Softmax", tc.opset)
		require.NoError(t, err)
		assert.Equalf(t, tc.axis, attrs.Value.(*schema.SoftmaxAttrsT).Axis, "opset %d", tc.opset)
	}
	attrs, _, err := convertOp("LogSoftmax", 11, intAttr("axis", 2))
	require.NoError(t, err)
	assert.Equal(t, int32(2), attrs.Value.(*schema.SoftmaxAttrsT).Axis)
}

func TestConvertCast(t *testing.T) {
	for onnxType, want := range map[protos.TensorProto_DataType]schema.DataType{
		protos.TensorProto_FLOAT: schema.DataTypeFloat,
		protos.TensorProto_INT32: schema.DataTypeInt32,
		protos.TensorProto_INT64: schema.DataTypeInt32,
		protos.TensorProto_BOOL:  schema.DataTypeInt32,
	} {
		attrs, _, err := convertOp("Cast", 13, intAttr("to", int64(onnxType)))
		require.NoError(t, err)
		assert.Equalf(t, want, attrs.Value.(*schema.CastAttrsT).To, "cast to %s", onnxType)
	}
	_, _, err := convertOp("Cast", 13, intAttr("to", int64(protos.TensorProto_DOUBLE)))
	require.ErrorIs(t, err, ErrUnsupportedAttributeValue)
}

func TestConvertReduceAndTranspose(t *testing.T) {
	attrs, _, err := convertOp("ReduceMean", 13)
	require.NoError(t, err)
	reduce := attrs.Value.(*schema.ReduceMeanAttrsT)
	assert.Nil(t, reduce.Axes)
	assert.True(t, reduce.KeepDims)

	attrs, _, err = convertOp("ReduceSum", 11, intsAttr("axes", 1, -1), intAttr("keepdims", 0))
	require.NoError(t, err)
	reduce = attrs.Value.(*schema.ReduceMeanAttrsT)
	assert.Equal(t, []int32{1, -1}, reduce.Axes)
	assert.False(t, reduce.KeepDims)

	attrs, _, err = convertOp("Transpose", 13)
	require.NoError(t, err)
	perm := attrs.Value.(*schema.TransposeAttrsT).Perm
	assert.NotNil(t, perm)
	assert.Empty(t, perm)

	attrs, _, err = convertOp("Transpose", 13, intsAttr("perm", 0, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 2, 1}, attrs.Value.(*schema.TransposeAttrsT).Perm)
}

func TestConvertRecurrent(t *testing.T) {
	_, _, err := convertOp("LSTM", 13)
	require.ErrorIs(t, err, ErrMissingRequiredAttribute)

	attrs, r, err := convertOp("LSTM", 13, intAttr("hidden_size", 64), stringAttr("direction", "bidirectional"),
		stringsAttr("activations"), floatAttr("clip", 0))
	require.NoError(t, err)
	assert.Equal(t, &schema.LSTMAttrsT{Direction: schema.RNNDirectionBidirectional, HiddenSize: 64}, attrs.Value)
	assert.Empty(t, r.unhandled())

	_, _, err = convertOp("LSTM", 13, intAttr("hidden_size", 64), stringsAttr("activations", "Sigmoid", "Tanh", "Tanh"))
	require.ErrorIs(t, err, ErrUnsupportedAttributeValue)
	_, _, err = convertOp("LSTM", 13, intAttr("hidden_size", 64), floatsAttr("activation_alpha", 0.1))
	require.ErrorIs(t, err, ErrUnsupportedAttributeValue)
	_, _, err = convertOp("LSTM", 13, intAttr("hidden_size", 64), intAttr("layout", 1))
	require.ErrorIs(t, err, ErrUnsupportedAttributeValue)

	attrs, _, err = convertOp("GRU", 13, intAttr("hidden_size", 8), intAttr("linear_before_reset", 1))
	require.NoError(t, err)
	assert.Equal(t, &schema.GRUAttrsT{Direction: schema.RNNDirectionForward, HiddenSize: 8, LinearBeforeReset: true}, attrs.Value)

	_, _, err = convertOp("GRU", 13, intAttr("hidden_size", 8), stringAttr("direction", "sideways"))
	require.ErrorIs(t, err, ErrUnsupportedEnumValue)
	_, _, err = convertOp("GRU", 13, intAttr("hidden_size", -8))
	require.ErrorIs(t, err, ErrUnsupportedAttributeValue)
}

func TestConvertResize(t *testing.T) {
	attrs, _, err := convertOp("Resize", 13)
	require.NoError(t, err)
	assert.Equal(t, &schema.ResizeAttrsT{
		Mode:        schema.ResizeModeNearest,
		CoordMode:   schema.CoordTransformModeHalfPixel,
		NearestMode: schema.NearestModeRoundPreferFloor,
	}, attrs.Value)

	attrs, _, err = convertOp("Resize", 13, stringAttr("mode", "linear"),
		stringAttr("coordinate_transformation_mode", "pytorch_half_pixel"), stringAttr("nearest_mode", "floor"),
		intsAttr("axes", 2, 3))
	require.NoError(t, err)
	assert.Equal(t, &schema.ResizeAttrsT{
		Mode:        schema.ResizeModeLinear,
		CoordMode:   schema.CoordTransformModePytorchHalfPixel,
		NearestMode: schema.NearestModeFloor,
	}, attrs.Value)

	_, _, err = convertOp("Resize", 13, stringAttr("mode", "cubic"))
	require.ErrorIs(t, err, ErrUnsupportedEnumValue)
	_, _, err = convertOp("Resize", 13, intsAttr("axes", 0, 1))
	require.ErrorIs(t, err, ErrUnsupportedAttributeValue)
}

func TestConvertScatter(t *testing.T) {
	attrs, _, err := convertOp("ScatterElements", 16)
	require.NoError(t, err)
	assert.Equal(t, &schema.ScatterElementsAttrsT{Reduction: schema.ScatterReductionNone}, attrs.Value)

	attrs, _, err = convertOp("ScatterND", 16, stringAttr("reduction", "add"))
	require.NoError(t, err)
	assert.Equal(t, &schema.ScatterNDAttrsT{Reduction: schema.ScatterReductionAdd}, attrs.Value)
}

func TestConvertConstantOfShape(t *testing.T) {
	attrs, _, err := convertOp("ConstantOfShape", 13, tensorAttr("value", int64Tensor("", []int64{1}, 7)))
	require.NoError(t, err)
	scalar := attrs.Value.(*schema.ConstantOfShapeAttrsT).Value
	require.Equal(t, schema.ScalarIntScalar, scalar.Type)
	assert.Equal(t, int32(7), scalar.Value.(*schema.IntScalarT).Value)

	attrs, _, err = convertOp("ConstantOfShape", 13, tensorAttr("value", floatTensor("", []int64{1}, 0.25)))
	require.NoError(t, err)
	scalar = attrs.Value.(*schema.ConstantOfShapeAttrsT).Value
	require.Equal(t, schema.ScalarFloatScalar, scalar.Type)
	assert.Equal(t, float32(0.25), scalar.Value.(*schema.FloatScalarT).Value)

	_, _, err = convertOp("ConstantOfShape", 13, tensorAttr("value", floatTensor("", []int64{2}, 1, 2)))
	require.ErrorIs(t, err, ErrInvalidScalarShape)
	_, _, err = convertOp("ConstantOfShape", 13)
	require.ErrorIs(t, err, ErrMissingRequiredAttribute)
}

func TestConvertAttributesToInputs(t *testing.T) {
	graph := NewGraph()
	node := &protos.NodeProto{Name: "split", OpType: "Split", Attribute: []*protos.AttributeProto{
		intAttr("axis", 1), intsAttr("split", 2, 2, math.MaxInt64),
	}}
	diag := quietDiagnostics()
	r := testReader(node, graph, diag, 0)
	attrs := convertSplit(r)
	assert.Equal(t, &schema.SplitAttrsT{Axis: 1}, attrs.Value)
	require.Len(t, r.inputs, 2)
	split := graph.Nodes[r.inputs[1]].(*ConstantNode)
	assert.Equal(t, "split:wasnn-split", split.Name())
	assert.Equal(t, []int32{2, 2, math.MaxInt32}, split.Data)
	assert.Len(t, diag.Messages(), 1)

	for _, opType := range []string{"Squeeze", "Unsqueeze"} {
		attrs, r, err := convertOp(opType, 11, intsAttr("axes", 0))
		require.NoError(t, err)
		assert.Nil(t, attrs)
		assert.Len(t, r.inputs, 2)
	}
}
