package protos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestModelRoundTrip(t *testing.T) {
	model := &ModelProto{
		IrVersion:    8,
		ProducerName: "pytorch",
		OpsetImport:  []*OperatorSetIdProto{{Version: 13}, {Domain: "com.microsoft", Version: 1}},
		MetadataProps: []*StringStringEntryProto{
			{Key: "author", Value: "test"},
		},
		Graph: &GraphProto{
			Name: "main",
			Node: []*NodeProto{{
				Name:   "clip",
				OpType: "Clip",
				Input:  []string{"x", "", "max"},
				Output: []string{"y"},
				Attribute: []*AttributeProto{
					{Name: "min", Type: AttributeProto_FLOAT, F: -1.5},
					{Name: "axes", Type: AttributeProto_INTS, Ints: []int64{-1, 2}},
					{Name: "mode", Type: AttributeProto_STRING, S: []byte("nearest")},
					{Name: "scales", Type: AttributeProto_FLOATS, Floats: []float32{0.5, 2}},
				},
			}},
			Initializer: []*TensorProto{{
				Name:      "w",
				Dims:      []int64{2, 2},
				DataType:  int32(TensorProto_INT64),
				Int64Data: []int64{1, -9999999999, 2, 3},
			}},
			Input: []*ValueInfoProto{{
				Name: "x",
				Type: &TypeProto{TensorType: &TypeProto_Tensor{
					ElemType: int32(TensorProto_FLOAT),
					Shape: &TensorShapeProto{Dim: []*TensorShapeProto_Dimension{
						{DimParam: "batch"}, {DimValue: 3},
					}},
				}},
			}},
			Output: []*ValueInfoProto{{Name: "y"}},
		},
	}

	var decoded ModelProto
	require.NoError(t, Unmarshal(Marshal(model), &decoded))
	require.Equal(t, model, &decoded)
}

func TestTensorRawAndExternalData(t *testing.T) {
	tensor := &TensorProto{
		Name:         "big",
		Dims:         []int64{4},
		DataType:     int32(TensorProto_FLOAT),
		RawData:      []byte{0, 0, 128, 63},
		DataLocation: TensorProto_EXTERNAL,
		ExternalData: []*StringStringEntryProto{
			{Key: "location", Value: "weights.bin"},
			{Key: "offset", Value: "16"},
		},
	}
	var decoded TensorProto
	require.NoError(t, UnmarshalTensor(MarshalTensor(tensor), &decoded))
	require.Equal(t, tensor, &decoded)
	assert.Equal(t, "EXTERNAL", decoded.DataLocation.String())
	assert.Equal(t, "FLOAT", TensorProto_DataType(decoded.DataType).String())
}

func TestUnpackedRepeatedFields(t *testing.T) {
	// Older writers emit repeated scalars unpacked: one tag per element.
	var b []byte
	for _, dim := range []uint64{3, 5} {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, dim)
	}
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(TensorProto_FLOAT))
	for _, bits := range []uint32{0x3f800000, 0x40000000} {
		b = protowire.AppendTag(b, 4, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, bits)
	}
	// Unknown field, to be skipped.
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendString(b, "ignored")

	var tensor TensorProto
	require.NoError(t, UnmarshalTensor(b, &tensor))
	assert.Equal(t, []int64{3, 5}, tensor.Dims)
	assert.Equal(t, []float32{1, 2}, tensor.FloatData)
}

func TestUnmarshalErrors(t *testing.T) {
	t.Run("Truncated", func(t *testing.T) {
		b := Marshal(&ModelProto{ProducerName: "truncated"})
		var m ModelProto
		require.Error(t, Unmarshal(b[:len(b)-2], &m))
	})
	t.Run("WrongWireType", func(t *testing.T) {
		var b []byte
		b = protowire.AppendTag(b, 2, protowire.VarintType) // producer_name must be bytes.
		b = protowire.AppendVarint(b, 1)
		var m ModelProto
		err := Unmarshal(b, &m)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "wire type")
	})
}

func TestNilSafeGetters(t *testing.T) {
	info := &ValueInfoProto{Name: "x"}
	assert.Nil(t, info.Type.GetTensorType().GetShape().GetDim())
	assert.Nil(t, info.GetType().GetTensorType().GetShape().GetDim())
	var missing *ValueInfoProto
	assert.Nil(t, missing.GetType())
	info.Type = &TypeProto{TensorType: &TypeProto_Tensor{Shape: &TensorShapeProto{}}}
	assert.NotNil(t, info.GetType().GetTensorType().GetShape())
	var model *ModelProto
	assert.Nil(t, model.GetGraph())
	var node *NodeProto
	assert.Equal(t, "", node.GetOpType())
}
