package onnx

import (
	"encoding/binary"
	"math"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"github.com/wasnn/onnx-wasnn/internal/protos"
)

// This file converts ONNX tensors into ConstantNodes, narrowing or widening the element type
// to one of the two the wasnn format stores: float32 and int32.

// tensorNormalizer converts ONNX tensors to constants. One is used per conversion run.
type tensorNormalizer struct {
	diag *Diagnostics

	// baseDir and external resolve tensors whose data is stored outside the model file.
	// external may be nil, in which case files are read directly.
	baseDir  string
	external *ExternalDataReader
}

// constant converts tensor into a ConstantNode named name. opName is the operator the tensor
// belongs to, if any, used in error messages.
//
//   - float32 and int32 are kept as is.
//   - bool, int8 and int16 are widened to int32.
//   - int64 is narrowed to int32, clamping out-of-range values with one warning per distinct value.
//
// Other element types fail with ErrUnsupportedTensorType.
func (tn *tensorNormalizer) constant(tensor *protos.TensorProto, name, opName string) (*ConstantNode, error) {
	shape := make([]int, len(tensor.Dims))
	for axis, dim := range tensor.Dims {
		shape[axis] = int(dim)
	}
	numElements, err := tensorSize(tensor)
	if err != nil {
		return nil, err
	}

	dtype := protos.TensorProto_DataType(tensor.DataType)
	elemSize, ok := dtypeByteSize(dtype)
	if !ok || !isNormalizable(dtype) {
		return nil, unsupportedTensorType(tensor, dtype, opName)
	}

	raw := tensor.RawData
	if isExternal(tensor) {
		raw, err = tn.readExternal(tensor, numElements*elemSize)
		if err != nil {
			return nil, err
		}
	}
	if raw != nil && len(raw)%elemSize != 0 {
		return nil, errors.Wrapf(ErrShapeMismatch, "tensor %q has %d bytes of raw data, not a multiple of %d (%s)",
			tensor.Name, len(raw), elemSize, dtype)
	}

	switch dtype {
	case protos.TensorProto_FLOAT:
		var data []float32
		if raw != nil {
			data = make([]float32, len(raw)/4)
			for ii := range data {
				data[ii] = math32.Float32frombits(binary.LittleEndian.Uint32(raw[ii*4:]))
			}
		} else {
			data = tensor.FloatData
		}
		return NewConstantNode(name, shape, data)

	case protos.TensorProto_INT32, protos.TensorProto_BOOL, protos.TensorProto_INT8, protos.TensorProto_INT16:
		var data []int32
		if raw != nil {
			data = make([]int32, len(raw)/elemSize)
			for ii := range data {
				data[ii] = decodeSmallInt(dtype, raw[ii*elemSize:])
			}
		} else {
			// ONNX stores bool, int8 and int16 values in int32_data too.
			data = make([]int32, len(tensor.Int32Data))
			for ii, v := range tensor.Int32Data {
				if dtype == protos.TensorProto_BOOL && v != 0 {
					v = 1
				}
				data[ii] = v
			}
		}
		return NewConstantNode(name, shape, data)

	case protos.TensorProto_INT64:
		values := tensor.Int64Data
		if raw != nil {
			values = make([]int64, len(raw)/8)
			for ii := range values {
				values[ii] = int64(binary.LittleEndian.Uint64(raw[ii*8:]))
			}
		}
		return NewConstantNode(name, shape, tn.clampToInt32(values))
	}
	return nil, unsupportedTensorType(tensor, dtype, opName)
}

func unsupportedTensorType(tensor *protos.TensorProto, dtype protos.TensorProto_DataType, opName string) error {
	if opName == "" {
		return errors.Wrapf(ErrUnsupportedTensorType, "tensor %q has data type %s", tensor.Name, dtype)
	}
	return errors.Wrapf(ErrUnsupportedTensorType, "tensor %q of operator %q has data type %s", tensor.Name, opName, dtype)
}

// clampToInt32 narrows values to int32. Values out of range are clamped, and each distinct
// one is reported once per run.
func (tn *tensorNormalizer) clampToInt32(values []int64) []int32 {
	out := make([]int32, len(values))
	for ii, v := range values {
		switch {
		case v > math.MaxInt32:
			tn.warnClamp(v)
			out[ii] = math.MaxInt32
		case v < math.MinInt32:
			tn.warnClamp(v)
			out[ii] = math.MinInt32
		default:
			out[ii] = int32(v)
		}
	}
	return out
}

// warnClamp reports a clamped value. Some exporters use INT64_MIN/MAX to mean "infinity", for
// instance to slice up to the end of an axis, so this is a warning and not an error.
func (tn *tensorNormalizer) warnClamp(v int64) {
	if tn == nil || tn.diag == nil {
		return
	}
	tn.diag.Warnf("Clamping out-of-range tensor value %d to [%d, %d]", v, math.MinInt32, math.MaxInt32)
}

func (tn *tensorNormalizer) readExternal(tensor *protos.TensorProto, numBytes int) ([]byte, error) {
	info, err := parseExternalDataInfo(tensor)
	if err != nil {
		return nil, err
	}
	raw := make([]byte, numBytes)
	if tn.external != nil {
		err = tn.external.ReadInto(info, raw)
	} else {
		err = readExternalDataDirect(tn.baseDir, info, raw)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "while reading external data of tensor %q", tensor.Name)
	}
	return raw, nil
}

// tensorSize returns the number of elements of the tensor, from its dimensions.
func tensorSize(tensor *protos.TensorProto) (int, error) {
	size := 1
	for _, dim := range tensor.Dims {
		if dim < 0 {
			return 0, errors.Wrapf(ErrShapeMismatch, "tensor %q has negative dimension in %v", tensor.Name, tensor.Dims)
		}
		size *= int(dim)
	}
	return size, nil
}

// decodeSmallInt decodes one little-endian element of an int32, bool, int8 or int16 tensor.
func decodeSmallInt(dtype protos.TensorProto_DataType, b []byte) int32 {
	switch dtype {
	case protos.TensorProto_BOOL:
		if b[0] != 0 {
			return 1
		}
		return 0
	case protos.TensorProto_INT8:
		return int32(int8(b[0]))
	case protos.TensorProto_INT16:
		return int32(int16(binary.LittleEndian.Uint16(b)))
	}
	return int32(binary.LittleEndian.Uint32(b))
}
