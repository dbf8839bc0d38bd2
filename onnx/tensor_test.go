package onnx

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasnn/onnx-wasnn/internal/protos"
)

func TestTensorConstant(t *testing.T) {
	t.Run("Int64Clamped", func(t *testing.T) {
		diag := quietDiagnostics()
		tn := &tensorNormalizer{diag: diag}
		c, err := tn.constant(int64Tensor("t", []int64{4}, 1, math.MinInt64, 2, 3), "t", "")
		require.NoError(t, err)
		assert.Equal(t, []int{4}, c.Shape)
		assert.Equal(t, []int32{1, math.MinInt32, 2, 3}, c.Data)
		require.Len(t, diag.Messages(), 1)
		assert.Contains(t, diag.Messages()[0], "Clamping out-of-range tensor value")

		// Same value again: no new warning.
		_, err = tn.constant(int64Tensor("t2", nil, math.MinInt64), "t2", "")
		require.NoError(t, err)
		assert.Len(t, diag.Messages(), 1)
	})

	t.Run("FloatRaw", func(t *testing.T) {
		tn := &tensorNormalizer{diag: quietDiagnostics()}
		tensor := &protos.TensorProto{Dims: []int64{2, 2}, DataType: int32(protos.TensorProto_FLOAT),
			RawData: float32Bytes(1, 2, -3, 0.5)}
		c, err := tn.constant(tensor, "w", "")
		require.NoError(t, err)
		assert.Equal(t, "w", c.Name())
		assert.Equal(t, []int{2, 2}, c.Shape)
		assert.Equal(t, []float32{1, 2, -3, 0.5}, c.Data)
	})

	t.Run("Int64Raw", func(t *testing.T) {
		tn := &tensorNormalizer{diag: quietDiagnostics()}
		raw := make([]byte, 16)
		binary.LittleEndian.PutUint64(raw, uint64(5))
		binary.LittleEndian.PutUint64(raw[8:], uint64(math.MaxInt64))
		tensor := &protos.TensorProto{Dims: []int64{2}, DataType: int32(protos.TensorProto_INT64), RawData: raw}
		c, err := tn.constant(tensor, "i", "")
		require.NoError(t, err)
		assert.Equal(t, []int32{5, math.MaxInt32}, c.Data)
	})

	t.Run("Widened", func(t *testing.T) {
		tn := &tensorNormalizer{diag: quietDiagnostics()}
		boolTensor := &protos.TensorProto{Dims: []int64{3}, DataType: int32(protos.TensorProto_BOOL), RawData: []byte{0, 1, 2}}
		c, err := tn.constant(boolTensor, "b", "")
		require.NoError(t, err)
		assert.Equal(t, []int32{0, 1, 1}, c.Data)

		int8Tensor := &protos.TensorProto{Dims: []int64{2}, DataType: int32(protos.TensorProto_INT8), RawData: []byte{0xff, 3}}
		c, err = tn.constant(int8Tensor, "i8", "")
		require.NoError(t, err)
		assert.Equal(t, []int32{-1, 3}, c.Data)

		int16Tensor := &protos.TensorProto{Dims: []int64{1}, DataType: int32(protos.TensorProto_INT16), Int32Data: []int32{-300}}
		c, err = tn.constant(int16Tensor, "i16", "")
		require.NoError(t, err)
		assert.Equal(t, []int32{-300}, c.Data)
	})

	t.Run("Scalar", func(t *testing.T) {
		tn := &tensorNormalizer{diag: quietDiagnostics()}
		c, err := tn.constant(floatTensor("s", nil, 3), "s", "")
		require.NoError(t, err)
		assert.Equal(t, []int{}, c.Shape)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		tn := &tensorNormalizer{diag: quietDiagnostics()}
		tensor := &protos.TensorProto{Name: "d", Dims: []int64{1}, DataType: int32(protos.TensorProto_DOUBLE), DoubleData: []float64{1}}
		_, err := tn.constant(tensor, "d", "Mul_0")
		require.ErrorIs(t, err, ErrUnsupportedTensorType)
		assert.Contains(t, err.Error(), "Mul_0")

		// The type is checked before any data is read.
		tensor = &protos.TensorProto{Name: "d", Dims: []int64{1}, DataType: int32(protos.TensorProto_DOUBLE), RawData: []byte{0, 0, 0, 0}}
		_, err = tn.constant(tensor, "d", "")
		require.ErrorIs(t, err, ErrUnsupportedTensorType)
		tensor = &protos.TensorProto{
			Name:         "d",
			Dims:         []int64{1},
			DataType:     int32(protos.TensorProto_UINT8),
			DataLocation: protos.TensorProto_EXTERNAL,
			ExternalData: []*protos.StringStringEntryProto{{Key: "location", Value: "missing.bin"}},
		}
		_, err = tn.constant(tensor, "d", "")
		require.ErrorIs(t, err, ErrUnsupportedTensorType)
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		tn := &tensorNormalizer{diag: quietDiagnostics()}
		_, err := tn.constant(floatTensor("f", []int64{3}, 1, 2), "f", "")
		require.ErrorIs(t, err, ErrShapeMismatch)
		tensor := &protos.TensorProto{Dims: []int64{1}, DataType: int32(protos.TensorProto_FLOAT), RawData: []byte{1, 2, 3}}
		_, err = tn.constant(tensor, "f", "")
		require.ErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("ExternalData", func(t *testing.T) {
		tmpDir := t.TempDir()
		padding := make([]byte, 16)
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "weights.bin"), append(padding, float32Bytes(1.5, 2.5)...), 0644))
		tensor := &protos.TensorProto{
			Name:         "w",
			Dims:         []int64{2},
			DataType:     int32(protos.TensorProto_FLOAT),
			DataLocation: protos.TensorProto_EXTERNAL,
			ExternalData: []*protos.StringStringEntryProto{
				{Key: "location", Value: "weights.bin"},
				{Key: "offset", Value: "16"},
				{Key: "length", Value: "8"},
			},
		}

		// Direct reads.
		tn := &tensorNormalizer{diag: quietDiagnostics(), baseDir: tmpDir}
		c, err := tn.constant(tensor, "w", "")
		require.NoError(t, err)
		assert.Equal(t, []float32{1.5, 2.5}, c.Data)

		// Memory-mapped.
		tn.external = NewExternalDataReader(tmpDir)
		defer func() { require.NoError(t, tn.external.Close()) }()
		c, err = tn.constant(tensor, "w", "")
		require.NoError(t, err)
		assert.Equal(t, []float32{1.5, 2.5}, c.Data)
	})
}

func TestDataTypeForONNX(t *testing.T) {
	_, err := dataTypeForONNX(protos.TensorProto_STRING)
	require.ErrorIs(t, err, ErrUnsupportedAttributeValue)
	size, ok := dtypeByteSize(protos.TensorProto_INT16)
	require.True(t, ok)
	assert.Equal(t, 2, size)
	_, ok = dtypeByteSize(protos.TensorProto_STRING)
	assert.False(t, ok)
}
