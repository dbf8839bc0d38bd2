package onnx

import (
	"math"

	"github.com/pkg/errors"
	"github.com/wasnn/onnx-wasnn/internal/protos"
	"github.com/wasnn/onnx-wasnn/internal/schema"
)

// This file implements the translation of ONNX operators into wasnn operators.

// opRule translates the attributes of one ONNX operator. It returns nil for operators without
// an attributes table in the wasnn format.
//
// Rules panic with an error on unsupported values, see attrReader.
type opRule func(r *attrReader) *schema.OperatorAttrsT

// noAttrs is the rule of operators whose attributes, if any, are all reported as unhandled.
func noAttrs(*attrReader) *schema.OperatorAttrsT { return nil }

// opRules maps ONNX operator types to their translation rule. The wasnn operator type has the same
// name as the ONNX one.
var opRules = map[string]opRule{
	"Abs":                   noAttrs,
	"Add":                   noAttrs,
	"And":                   noAttrs,
	"ArgMax":                convertArgMax,
	"ArgMin":                convertArgMax,
	"AveragePool":           convertAveragePool,
	"BatchNormalization":    convertBatchNormalization,
	"Cast":                  convertCast,
	"Ceil":                  noAttrs,
	"Clip":                  convertClip,
	"Concat":                convertConcat,
	"ConstantOfShape":       convertConstantOfShape,
	"Conv":                  convertConv,
	"ConvTranspose":         convertConvTranspose,
	"Cos":                   noAttrs,
	"CumSum":                convertCumSum,
	"Div":                   noAttrs,
	"Equal":                 noAttrs,
	"Erf":                   noAttrs,
	"Exp":                   noAttrs,
	"Expand":                noAttrs,
	"Flatten":               convertFlatten,
	"Floor":                 noAttrs,
	"Gather":                convertGather,
	"Gemm":                  convertGemm,
	"GlobalAveragePool":     noAttrs,
	"Greater":               noAttrs,
	"GreaterOrEqual":        noAttrs,
	"GRU":                   convertGRU,
	"HardSigmoid":           convertHardSigmoid,
	"Identity":              noAttrs,
	"InstanceNormalization": convertBatchNormalization,
	"LeakyRelu":             convertLeakyRelu,
	"Less":                  noAttrs,
	"LessOrEqual":           noAttrs,
	"Log":                   noAttrs,
	"LogSoftmax":            convertSoftmax,
	"LSTM":                  convertLSTM,
	"MatMul":                noAttrs,
	"Max":                   noAttrs,
	"MaxPool":               convertMaxPool,
	"Mean":                  noAttrs,
	"Min":                   noAttrs,
	"Mod":                   convertMod,
	"Mul":                   noAttrs,
	"Neg":                   noAttrs,
	"NonZero":               noAttrs,
	"Not":                   noAttrs,
	"OneHot":                convertOneHot,
	"Or":                    noAttrs,
	"Pad":                   convertPad,
	"Pow":                   noAttrs,
	"Range":                 noAttrs,
	"Reciprocal":            noAttrs,
	"ReduceL2":              convertReduce,
	"ReduceMax":             convertReduce,
	"ReduceMean":            convertReduce,
	"ReduceMin":             convertReduce,
	"ReduceProd":            convertReduce,
	"ReduceSum":             convertReduce,
	"Relu":                  noAttrs,
	"Reshape":               convertReshape,
	"Resize":                convertResize,
	"Round":                 noAttrs,
	"ScatterElements":       convertScatterElements,
	"ScatterND":             convertScatterND,
	"Shape":                 convertShape,
	"Sigmoid":               noAttrs,
	"Sign":                  noAttrs,
	"Sin":                   noAttrs,
	"Size":                  noAttrs,
	"Slice":                 noAttrs,
	"Softmax":               convertSoftmax,
	"Split":                 convertSplit,
	"Sqrt":                  noAttrs,
	"Squeeze":               convertSqueeze,
	"Sub":                   noAttrs,
	"Sum":                   noAttrs,
	"Tan":                   noAttrs,
	"Tanh":                  noAttrs,
	"Tile":                  noAttrs,
	"TopK":                  convertTopK,
	"Transpose":             convertTranspose,
	"Trilu":                 convertTrilu,
	"Unsqueeze":             convertSqueeze,
	"Where":                 noAttrs,
	"Xor":                   noAttrs,
}

// lookupOperator returns the wasnn operator type and translation rule for an ONNX operator type.
func lookupOperator(onnxOpType string) (schema.OperatorType, opRule, error) {
	rule, found := opRules[onnxOpType]
	if !found {
		return 0, nil, errors.Wrapf(ErrUnsupportedOperator, "operator %s", onnxOpType)
	}
	opType, found := schema.EnumValuesOperatorType[onnxOpType]
	if !found {
		return 0, nil, errors.Wrapf(ErrUnsupportedOperator, "operator %s has no wasnn equivalent", onnxOpType)
	}
	return opType, rule, nil
}

func attrsOf(attrsType schema.OperatorAttrs, value any) *schema.OperatorAttrsT {
	return &schema.OperatorAttrsT{Type: attrsType, Value: value}
}

// toInt32 narrows an integer attribute, clamping it to the int32 range.
func (r *attrReader) toInt32(v int64) int32 {
	return r.int32s([]int64{v})[0]
}

// toUint32 converts an integer attribute to uint32. It panics with ErrUnsupportedAttributeValue if
// the value is negative or too large.
func toUint32(name string, v int64) uint32 {
	if v < 0 || v > math.MaxUint32 {
		panic(errors.Wrapf(ErrUnsupportedAttributeValue, "attribute %q has out of range value %d", name, v))
	}
	return uint32(v)
}

// readPads reads the "auto_pad" and "pads" attributes of convolution and pooling operators.
//
// "SAME_UPPER" and "SAME_LOWER" select same padding, without pads. "NOTSET" selects fixed padding
// with "pads", which defaults to zeros. Other values ("VALID") fail with ErrUnsupportedPadMode.
func readPads(r *attrReader) (schema.PadMode, []uint32) {
	switch autoPad := r.getString("auto_pad", "NOTSET"); autoPad {
	case "SAME_UPPER", "SAME_LOWER":
		return schema.PadModeSame, nil
	case "NOTSET":
		pads := r.getInts("pads", []int64{0, 0, 0, 0})
		if len(pads) != 2 && len(pads) != 4 {
			panic(errors.Wrapf(ErrInvalidAttributeLength, "attribute \"pads\" must have 2 or 4 values, got %d", len(pads)))
		}
		return schema.PadModeFixed, uints("pads", pads)
	default:
		panic(errors.Wrapf(ErrUnsupportedPadMode, "auto_pad value %q", autoPad))
	}
}

// readSpatialInts reads "strides" or "dilations": defaults to [1, 1], and must have 1 or 2 values.
func readSpatialInts(r *attrReader, name string) []uint32 {
	values := r.getInts(name, []int64{1, 1})
	if len(values) != 1 && len(values) != 2 {
		panic(errors.Wrapf(ErrInvalidAttributeLength, "attribute %q must have 1 or 2 values, got %d", name, len(values)))
	}
	return uints(name, values)
}

// readKernelShape reads the required 2D "kernel_shape" of pooling operators.
func readKernelShape(r *attrReader) []uint32 {
	kernelShape := r.requireInts("kernel_shape")
	if len(kernelShape) != 2 {
		panic(errors.Wrapf(ErrInvalidAttributeLength, "attribute \"kernel_shape\" must have 2 values, got %d", len(kernelShape)))
	}
	return uints("kernel_shape", kernelShape)
}

// convertArgMax is used for ArgMax and ArgMin.
//
// See ONNX documentation in:
// https://onnx.ai/onnx/operators/onnx__ArgMax.html
func convertArgMax(r *attrReader) *schema.OperatorAttrsT {
	attrs := &schema.ArgMaxAttrsT{}
	if axis := r.getOptionalInt("axis"); axis != nil {
		v := r.toInt32(*axis)
		attrs.Axis = &v
	}
	attrs.KeepDims = r.getBool("keepdims", true)
	r.checkInt("select_last_index", 0)
	return attrsOf(schema.OperatorAttrsArgMaxAttrs, attrs)
}

// convertAveragePool converts AveragePool.
//
// See ONNX documentation in:
// https://onnx.ai/onnx/operators/onnx__AveragePool.html
func convertAveragePool(r *attrReader) *schema.OperatorAttrsT {
	attrs := &schema.AveragePoolAttrsT{KernelSize: readKernelShape(r)}
	attrs.PadMode, attrs.Pads = readPads(r)
	r.checkInt("ceil_mode", 0)
	r.checkInt("count_include_pad", 0)
	attrs.Strides = readSpatialInts(r, "strides")
	return attrsOf(schema.OperatorAttrsAveragePoolAttrs, attrs)
}

// convertBatchNormalization is used for BatchNormalization and InstanceNormalization.
func convertBatchNormalization(r *attrReader) *schema.OperatorAttrsT {
	return attrsOf(schema.OperatorAttrsBatchNormalizationAttrs, &schema.BatchNormalizationAttrsT{
		Epsilon: r.getFloat("epsilon", 1e-5),
	})
}

// convertCast converts Cast. Only casts to float, int32 (and the types stored as int32) are supported.
//
// See ONNX documentation in:
// https://onnx.ai/onnx/operators/onnx__Cast.html
func convertCast(r *attrReader) *schema.OperatorAttrsT {
	to, err := dataTypeForONNX(protos.TensorProto_DataType(r.getInt("to", int64(protos.TensorProto_FLOAT))))
	if err != nil {
		panic(err)
	}
	return attrsOf(schema.OperatorAttrsCastAttrs, &schema.CastAttrsT{To: to})
}

// convertClip converts Clip. Before opset 11, min and max were attributes.
//
// See ONNX documentation in:
// https://onnx.ai/onnx/operators/onnx__Clip.html
func convertClip(r *attrReader) *schema.OperatorAttrsT {
	r.promoteToInput(1, "min", protos.AttributeProto_FLOAT)
	r.promoteToInput(2, "max", protos.AttributeProto_FLOAT)
	return nil
}

func convertConcat(r *attrReader) *schema.OperatorAttrsT {
	return attrsOf(schema.OperatorAttrsConcatAttrs, &schema.ConcatAttrsT{Axis: r.toInt32(r.requireInt("axis"))})
}

// convertConstantOfShape converts ConstantOfShape. The "value" tensor must hold exactly one element,
// and is stored as a scalar of its type.
//
// See ONNX documentation in:
// https://onnx.ai/onnx/operators/onnx__ConstantOfShape.html
func convertConstantOfShape(r *attrReader) *schema.OperatorAttrsT {
	tensor := r.requireTensor("value")
	constant, err := r.normalizer.constant(tensor, tensor.Name, r.name)
	if err != nil {
		panic(errors.WithMessage(err, "attribute \"value\""))
	}
	if constant.Len() != 1 {
		panic(errors.Wrapf(ErrInvalidScalarShape, "ConstantOfShape value must have 1 element, got %d", constant.Len()))
	}
	scalar := &schema.ScalarT{}
	switch data := constant.Data.(type) {
	case []float32:
		scalar.Type, scalar.Value = schema.ScalarFloatScalar, &schema.FloatScalarT{Value: data[0]}
	case []int32:
		scalar.Type, scalar.Value = schema.ScalarIntScalar, &schema.IntScalarT{Value: data[0]}
	}
	return attrsOf(schema.OperatorAttrsConstantOfShapeAttrs, &schema.ConstantOfShapeAttrsT{Value: scalar})
}

// convertConv converts Conv. The kernel shape is inferred at runtime from the weights.
//
// See ONNX documentation in:
// https://onnx.ai/onnx/operators/onnx__Conv.html
func convertConv(r *attrReader) *schema.OperatorAttrsT {
	attrs := &schema.ConvAttrsT{
		Dilations: readSpatialInts(r, "dilations"),
		Groups:    toUint32("group", r.getInt("group", 1)),
	}
	attrs.PadMode, attrs.Pads = readPads(r)
	attrs.Strides = readSpatialInts(r, "strides")
	r.ignore("kernel_shape")
	return attrsOf(schema.OperatorAttrsConvAttrs, attrs)
}

// convertConvTranspose converts ConvTranspose. Only strides are configurable.
//
// See ONNX documentation in:
// https://onnx.ai/onnx/operators/onnx__ConvTranspose.html
func convertConvTranspose(r *attrReader) *schema.OperatorAttrsT {
	attrs := &schema.ConvTransposeAttrsT{Strides: readSpatialInts(r, "strides")}
	r.checkString("auto_pad", "NOTSET")
	r.checkInts("dilations", []int64{1}, []int64{1, 1})
	r.checkInt("group", 1)
	r.ignore("kernel_shape")
	r.checkInts("output_padding", []int64{0, 0, 0, 0})
	r.checkInts("pads", []int64{0, 0, 0, 0})
	return attrsOf(schema.OperatorAttrsConvTransposeAttrs, attrs)
}

func convertCumSum(r *attrReader) *schema.OperatorAttrsT {
	r.checkInt("exclusive", 0)
	r.checkInt("reverse", 0)
	return nil
}

func convertFlatten(r *attrReader) *schema.OperatorAttrsT {
	return attrsOf(schema.OperatorAttrsFlattenAttrs, &schema.FlattenAttrsT{Axis: r.toInt32(r.getInt("axis", 1))})
}

func convertGather(r *attrReader) *schema.OperatorAttrsT {
	return attrsOf(schema.OperatorAttrsGatherAttrs, &schema.GatherAttrsT{Axis: r.toInt32(r.getInt("axis", 0))})
}

// convertGemm converts Gemm.
//
// See ONNX documentation in:
// https://onnx.ai/onnx/operators/onnx__Gemm.html
func convertGemm(r *attrReader) *schema.OperatorAttrsT {
	return attrsOf(schema.OperatorAttrsGemmAttrs, &schema.GemmAttrsT{
		Alpha:      r.getFloat("alpha", 1.0),
		Beta:       r.getFloat("beta", 1.0),
		TransposeA: r.getBool("transA", false),
		TransposeB: r.getBool("transB", false),
	})
}

// convertGRU converts GRU.
//
// See ONNX documentation in:
// https://onnx.ai/onnx/operators/onnx__GRU.html
func convertGRU(r *attrReader) *schema.OperatorAttrsT {
	return attrsOf(schema.OperatorAttrsGRUAttrs, &schema.GRUAttrsT{
		Direction:         getEnum(r, "direction", rnnDirectionDomain, "forward"),
		HiddenSize:        toUint32("hidden_size", r.requireInt("hidden_size")),
		LinearBeforeReset: r.getBool("linear_before_reset", false),
	})
}

func convertHardSigmoid(r *attrReader) *schema.OperatorAttrsT {
	return attrsOf(schema.OperatorAttrsHardSigmoidAttrs, &schema.HardSigmoidAttrsT{
		Alpha: r.getFloat("alpha", 0.2),
		Beta:  r.getFloat("beta", 0.5),
	})
}

func convertLeakyRelu(r *attrReader) *schema.OperatorAttrsT {
	return attrsOf(schema.OperatorAttrsLeakyReluAttrs, &schema.LeakyReluAttrsT{Alpha: r.getFloat("alpha", 0.01)})
}

// convertLSTM converts LSTM. Custom activations, clipping and the batch-major layout are not supported.
//
// See ONNX documentation in:
// https://onnx.ai/onnx/operators/onnx__LSTM.html
func convertLSTM(r *attrReader) *schema.OperatorAttrsT {
	attrs := &schema.LSTMAttrsT{
		Direction:  getEnum(r, "direction", rnnDirectionDomain, "forward"),
		HiddenSize: toUint32("hidden_size", r.requireInt("hidden_size")),
	}
	r.checkEmptyList("activation_alpha", protos.AttributeProto_FLOATS)
	r.checkEmptyList("activation_beta", protos.AttributeProto_FLOATS)
	r.checkEmptyList("activations", protos.AttributeProto_STRINGS)
	r.checkFloat("clip", 0.0)
	r.checkInt("input_forget", 0)
	r.checkInt("layout", 0)
	return attrsOf(schema.OperatorAttrsLSTMAttrs, attrs)
}

// convertMaxPool converts MaxPool.
//
// See ONNX documentation in:
// https://onnx.ai/onnx/operators/onnx__MaxPool.html
func convertMaxPool(r *attrReader) *schema.OperatorAttrsT {
	attrs := &schema.MaxPoolAttrsT{KernelSize: readKernelShape(r)}
	attrs.PadMode, attrs.Pads = readPads(r)
	attrs.Strides = readSpatialInts(r, "strides")
	r.checkInt("ceil_mode", 0)
	r.checkInts("dilations", []int64{1}, []int64{1, 1})
	r.checkInt("storage_order", 0)
	return attrsOf(schema.OperatorAttrsMaxPoolAttrs, attrs)
}

func convertMod(r *attrReader) *schema.OperatorAttrsT {
	return attrsOf(schema.OperatorAttrsModAttrs, &schema.ModAttrsT{Fmod: r.getBool("fmod", false)})
}

func convertOneHot(r *attrReader) *schema.OperatorAttrsT {
	return attrsOf(schema.OperatorAttrsOneHotAttrs, &schema.OneHotAttrsT{Axis: r.toInt32(r.getInt("axis", -1))})
}

func convertPad(r *attrReader) *schema.OperatorAttrsT {
	r.checkString("mode", "constant")
	return nil
}

// convertReduce is used for all the Reduce* operators, which share ReduceMeanAttrs.
// Absent "axes" means reducing over all axes.
func convertReduce(r *attrReader) *schema.OperatorAttrsT {
	attrs := &schema.ReduceMeanAttrsT{
		Axes:     r.int32s(r.getInts("axes", nil)),
		KeepDims: r.getBool("keepdims", true),
	}
	r.checkInt("noop_with_empty_axes", 0)
	return attrsOf(schema.OperatorAttrsReduceMeanAttrs, attrs)
}

func convertReshape(r *attrReader) *schema.OperatorAttrsT {
	return attrsOf(schema.OperatorAttrsReshapeAttrs, &schema.ReshapeAttrsT{AllowZero: r.getBool("allowzero", false)})
}

// convertResize converts Resize. Only resizing the spatial (H, W) axes of NCHW tensors is supported.
//
// See ONNX documentation in:
// https://onnx.ai/onnx/operators/onnx__Resize.html
func convertResize(r *attrReader) *schema.OperatorAttrsT {
	attrs := &schema.ResizeAttrsT{
		Mode: getEnum(r, "mode", resizeModeDomain, "nearest"),
	}
	r.checkInt("antialias", 0)
	r.checkInts("axes", []int64{2, 3})
	attrs.CoordMode = getEnum(r, "coordinate_transformation_mode", coordTransformModeDomain, "half_pixel")
	r.checkFloat("cubic_coeff_a", -0.75)
	r.checkInt("exclude_outside", 0)
	r.checkFloat("extrapolation_value", 0.0)
	r.checkString("keep_aspect_ratio_policy", "stretch")
	attrs.NearestMode = getEnum(r, "nearest_mode", nearestModeDomain, "round_prefer_floor")
	return attrsOf(schema.OperatorAttrsResizeAttrs, attrs)
}

func convertScatterElements(r *attrReader) *schema.OperatorAttrsT {
	return attrsOf(schema.OperatorAttrsScatterElementsAttrs, &schema.ScatterElementsAttrsT{
		Axis:      r.toInt32(r.getInt("axis", 0)),
		Reduction: getEnum(r, "reduction", scatterReductionDomain, "none"),
	})
}

func convertScatterND(r *attrReader) *schema.OperatorAttrsT {
	return attrsOf(schema.OperatorAttrsScatterNDAttrs, &schema.ScatterNDAttrsT{
		Reduction: getEnum(r, "reduction", scatterReductionDomain, "none"),
	})
}

func convertShape(r *attrReader) *schema.OperatorAttrsT {
	r.checkInt("end", 0)
	r.checkInt("start", 0)
	return nil
}

// convertSoftmax is used for Softmax and LogSoftmax. The default axis changed from 1 to -1 in opset 13.
//
// See ONNX documentation in:
// https://onnx.ai/onnx/operators/onnx__Softmax.html
func convertSoftmax(r *attrReader) *schema.OperatorAttrsT {
	defaultAxis := int64(-1)
	if r.opsetVersion > 0 && r.opsetVersion < 13 {
		defaultAxis = 1
	}
	return attrsOf(schema.OperatorAttrsSoftmaxAttrs, &schema.SoftmaxAttrsT{Axis: r.toInt32(r.getInt("axis", defaultAxis))})
}

// convertSplit converts Split. Before opset 13, the split sizes were an attribute.
//
// See ONNX documentation in:
// https://onnx.ai/onnx/operators/onnx__Split.html
func convertSplit(r *attrReader) *schema.OperatorAttrsT {
	attrs := &schema.SplitAttrsT{Axis: r.toInt32(r.getInt("axis", 0))}
	r.checkInt("num_outputs", 0)
	r.promoteToInput(1, "split", protos.AttributeProto_INTS)
	return attrsOf(schema.OperatorAttrsSplitAttrs, attrs)
}

// convertSqueeze is used for Squeeze and Unsqueeze, whose axes became an input in opset 13.
func convertSqueeze(r *attrReader) *schema.OperatorAttrsT {
	r.promoteToInput(1, "axes", protos.AttributeProto_INTS)
	return nil
}

func convertTopK(r *attrReader) *schema.OperatorAttrsT {
	return attrsOf(schema.OperatorAttrsTopKAttrs, &schema.TopKAttrsT{
		Axis:    r.toInt32(r.getInt("axis", -1)),
		Largest: r.getBool("largest", true),
		Sorted:  r.getBool("sorted", true),
	})
}

// convertTranspose converts Transpose. An empty permutation reverses the axes.
func convertTranspose(r *attrReader) *schema.OperatorAttrsT {
	return attrsOf(schema.OperatorAttrsTransposeAttrs, &schema.TransposeAttrsT{
		Perm: uints("perm", r.getInts("perm", []int64{})),
	})
}

func convertTrilu(r *attrReader) *schema.OperatorAttrsT {
	return attrsOf(schema.OperatorAttrsTriluAttrs, &schema.TriluAttrsT{Upper: r.getBool("upper", true)})
}
