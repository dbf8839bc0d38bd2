package onnx

import (
	"github.com/pkg/errors"
	"github.com/wasnn/onnx-wasnn/internal/protos"
	"github.com/wasnn/onnx-wasnn/internal/schema"
)

// dtypeByteSize returns the size in bytes of one element of the given ONNX type, as stored in raw_data.
// It returns false for types without a fixed size (strings) or unknown ones.
func dtypeByteSize(onnxDType protos.TensorProto_DataType) (int, bool) {
	switch onnxDType {
	case protos.TensorProto_BOOL, protos.TensorProto_INT8, protos.TensorProto_UINT8:
		return 1, true
	case protos.TensorProto_INT16, protos.TensorProto_UINT16, protos.TensorProto_FLOAT16, protos.TensorProto_BFLOAT16:
		return 2, true
	case protos.TensorProto_FLOAT, protos.TensorProto_INT32, protos.TensorProto_UINT32:
		return 4, true
	case protos.TensorProto_INT64, protos.TensorProto_UINT64, protos.TensorProto_DOUBLE, protos.TensorProto_COMPLEX64:
		return 8, true
	case protos.TensorProto_COMPLEX128:
		return 16, true
	default:
		return 0, false
	}
}

// isNormalizable returns whether tensors of the ONNX type can be stored as float32 or int32 constants.
func isNormalizable(onnxDType protos.TensorProto_DataType) bool {
	switch onnxDType {
	case protos.TensorProto_FLOAT, protos.TensorProto_INT32, protos.TensorProto_INT64,
		protos.TensorProto_BOOL, protos.TensorProto_INT8, protos.TensorProto_INT16:
		return true
	default:
		return false
	}
}

// dataTypeForONNX maps the target type of a Cast to the wasnn data type.
//
// bool and int64 map to int32, matching how constants of those types are stored.
func dataTypeForONNX(onnxDType protos.TensorProto_DataType) (schema.DataType, error) {
	switch onnxDType {
	case protos.TensorProto_FLOAT:
		return schema.DataTypeFloat, nil
	case protos.TensorProto_BOOL, protos.TensorProto_INT32, protos.TensorProto_INT64:
		return schema.DataTypeInt32, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedAttributeValue, "unsupported target type for cast %s", onnxDType)
	}
}
