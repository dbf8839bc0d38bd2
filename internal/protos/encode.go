package protos

import (
	"math"

	"github.com/chewxy/math32"
	"google.golang.org/protobuf/encoding/protowire"
)

// Marshal serializes m in the protobuf wire format. Repeated numeric fields are packed.
func Marshal(m *ModelProto) []byte {
	return appendModel(nil, m)
}

// MarshalTensor serializes a single TensorProto.
func MarshalTensor(t *TensorProto) []byte {
	return appendTensor(nil, t)
}

func appendStringField(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendMessageField(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func appendPackedVarints[T int32 | int64 | uint64](b []byte, num protowire.Number, values []T) []byte {
	if len(values) == 0 {
		return b
	}
	var packed []byte
	for _, v := range values {
		packed = protowire.AppendVarint(packed, uint64(v))
	}
	return appendMessageField(b, num, packed)
}

func appendModel(b []byte, m *ModelProto) []byte {
	b = appendVarintField(b, 1, uint64(m.IrVersion))
	b = appendStringField(b, 2, m.ProducerName)
	b = appendStringField(b, 3, m.ProducerVersion)
	b = appendStringField(b, 4, m.Domain)
	b = appendVarintField(b, 5, uint64(m.ModelVersion))
	b = appendStringField(b, 6, m.DocString)
	if m.Graph != nil {
		b = appendMessageField(b, 7, appendGraph(nil, m.Graph))
	}
	for _, opset := range m.OpsetImport {
		var msg []byte
		msg = appendStringField(msg, 1, opset.Domain)
		msg = appendVarintField(msg, 2, uint64(opset.Version))
		b = appendMessageField(b, 8, msg)
	}
	for _, entry := range m.MetadataProps {
		b = appendMessageField(b, 14, appendStringStringEntry(nil, entry))
	}
	return b
}

func appendStringStringEntry(b []byte, e *StringStringEntryProto) []byte {
	b = appendStringField(b, 1, e.Key)
	return appendStringField(b, 2, e.Value)
}

func appendGraph(b []byte, g *GraphProto) []byte {
	for _, node := range g.Node {
		b = appendMessageField(b, 1, appendNode(nil, node))
	}
	b = appendStringField(b, 2, g.Name)
	for _, tensor := range g.Initializer {
		b = appendMessageField(b, 5, appendTensor(nil, tensor))
	}
	b = appendStringField(b, 10, g.DocString)
	for _, info := range g.Input {
		b = appendMessageField(b, 11, appendValueInfo(nil, info))
	}
	for _, info := range g.Output {
		b = appendMessageField(b, 12, appendValueInfo(nil, info))
	}
	for _, info := range g.ValueInfo {
		b = appendMessageField(b, 13, appendValueInfo(nil, info))
	}
	return b
}

func appendNode(b []byte, node *NodeProto) []byte {
	// Inputs are positional: empty names mark omitted optional inputs and must be kept.
	for _, input := range node.Input {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, input)
	}
	for _, output := range node.Output {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, output)
	}
	b = appendStringField(b, 3, node.Name)
	b = appendStringField(b, 4, node.OpType)
	for _, attr := range node.Attribute {
		b = appendMessageField(b, 5, appendAttribute(nil, attr))
	}
	b = appendStringField(b, 6, node.DocString)
	b = appendStringField(b, 7, node.Domain)
	return b
}

func appendAttribute(b []byte, attr *AttributeProto) []byte {
	b = appendStringField(b, 1, attr.Name)
	if attr.F != 0 {
		b = protowire.AppendTag(b, 2, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, math32.Float32bits(attr.F))
	}
	b = appendVarintField(b, 3, uint64(attr.I))
	if attr.S != nil {
		b = appendMessageField(b, 4, attr.S)
	}
	if attr.T != nil {
		b = appendMessageField(b, 5, appendTensor(nil, attr.T))
	}
	if attr.G != nil {
		b = appendMessageField(b, 6, appendGraph(nil, attr.G))
	}
	if len(attr.Floats) > 0 {
		var packed []byte
		for _, f := range attr.Floats {
			packed = protowire.AppendFixed32(packed, math32.Float32bits(f))
		}
		b = appendMessageField(b, 7, packed)
	}
	b = appendPackedVarints(b, 8, attr.Ints)
	for _, s := range attr.Strings {
		b = appendMessageField(b, 9, s)
	}
	for _, tensor := range attr.Tensors {
		b = appendMessageField(b, 10, appendTensor(nil, tensor))
	}
	for _, graph := range attr.Graphs {
		b = appendMessageField(b, 11, appendGraph(nil, graph))
	}
	b = appendStringField(b, 13, attr.DocString)
	b = appendVarintField(b, 20, uint64(attr.Type))
	return b
}

func appendTensor(b []byte, t *TensorProto) []byte {
	b = appendPackedVarints(b, 1, t.Dims)
	b = appendVarintField(b, 2, uint64(t.DataType))
	if len(t.FloatData) > 0 {
		var packed []byte
		for _, f := range t.FloatData {
			packed = protowire.AppendFixed32(packed, math32.Float32bits(f))
		}
		b = appendMessageField(b, 4, packed)
	}
	b = appendPackedVarints(b, 5, t.Int32Data)
	for _, s := range t.StringData {
		b = appendMessageField(b, 6, s)
	}
	b = appendPackedVarints(b, 7, t.Int64Data)
	b = appendStringField(b, 8, t.Name)
	if t.RawData != nil {
		b = appendMessageField(b, 9, t.RawData)
	}
	if len(t.DoubleData) > 0 {
		var packed []byte
		for _, f := range t.DoubleData {
			packed = protowire.AppendFixed64(packed, math.Float64bits(f))
		}
		b = appendMessageField(b, 10, packed)
	}
	b = appendPackedVarints(b, 11, t.Uint64Data)
	b = appendStringField(b, 12, t.DocString)
	for _, entry := range t.ExternalData {
		b = appendMessageField(b, 13, appendStringStringEntry(nil, entry))
	}
	b = appendVarintField(b, 14, uint64(t.DataLocation))
	return b
}

func appendValueInfo(b []byte, info *ValueInfoProto) []byte {
	b = appendStringField(b, 1, info.Name)
	if info.Type != nil {
		var typeMsg []byte
		if tt := info.Type.TensorType; tt != nil {
			var ttMsg []byte
			ttMsg = appendVarintField(ttMsg, 1, uint64(tt.ElemType))
			if tt.Shape != nil {
				var shapeMsg []byte
				for _, dim := range tt.Shape.Dim {
					var dimMsg []byte
					dimMsg = appendVarintField(dimMsg, 1, uint64(dim.DimValue))
					dimMsg = appendStringField(dimMsg, 2, dim.DimParam)
					dimMsg = appendStringField(dimMsg, 3, dim.Denotation)
					shapeMsg = appendMessageField(shapeMsg, 1, dimMsg)
				}
				ttMsg = appendMessageField(ttMsg, 2, shapeMsg)
			}
			typeMsg = appendMessageField(typeMsg, 1, ttMsg)
		}
		typeMsg = appendStringField(typeMsg, 6, info.Type.Denotation)
		b = appendMessageField(b, 2, typeMsg)
	}
	b = appendStringField(b, 3, info.DocString)
	return b
}
