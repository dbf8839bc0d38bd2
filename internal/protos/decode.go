package protos

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Unmarshal decodes a serialized ONNX ModelProto into m.
func Unmarshal(b []byte, m *ModelProto) error {
	return errors.Wrap(decodeModel(b, m), "failed to decode ModelProto")
}

// UnmarshalTensor decodes a serialized TensorProto (the format of .pb tensor files shipped with ONNX test data).
func UnmarshalTensor(b []byte, t *TensorProto) error {
	return errors.Wrap(decodeTensor(b, t), "failed to decode TensorProto")
}

// fieldDecoder consumes the value of one field from b and returns the number of bytes used.
// Returning 0 (and no error) means the field is unknown and should be skipped.
type fieldDecoder func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

func decodeFields(b []byte, fn fieldDecoder) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		n, err := fn(num, typ, b)
		if err != nil {
			return errors.WithMessagef(err, "field #%d", num)
		}
		if n == 0 {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return errors.WithMessagef(protowire.ParseError(n), "skipping field #%d", num)
			}
		}
		b = b[n:]
	}
	return nil
}

func wireTypeError(want, got protowire.Type) error {
	return errors.Errorf("invalid wire type %d, expected %d", got, want)
}

func consumeVarint(typ protowire.Type, b []byte) (uint64, int, error) {
	if typ != protowire.VarintType {
		return 0, 0, wireTypeError(protowire.VarintType, typ)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeBytes(typ protowire.Type, b []byte) ([]byte, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, wireTypeError(protowire.BytesType, typ)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeString(typ protowire.Type, b []byte, dst *string) (int, error) {
	v, n, err := consumeBytes(typ, b)
	if err != nil {
		return 0, err
	}
	*dst = string(v)
	return n, nil
}

func consumeInt64(typ protowire.Type, b []byte, dst *int64) (int, error) {
	v, n, err := consumeVarint(typ, b)
	*dst = int64(v)
	return n, err
}

func consumeInt32(typ protowire.Type, b []byte, dst *int32) (int, error) {
	v, n, err := consumeVarint(typ, b)
	*dst = int32(v)
	return n, err
}

// consumeMessage decodes an embedded message with decode, which receives the message bytes.
func consumeMessage(typ protowire.Type, b []byte, decode func([]byte) error) (int, error) {
	v, n, err := consumeBytes(typ, b)
	if err != nil {
		return 0, err
	}
	return n, decode(v)
}

// consumeVarints handles both packed and unpacked encodings of a repeated varint field.
func consumeVarints(typ protowire.Type, b []byte, add func(uint64)) (int, error) {
	switch typ {
	case protowire.VarintType:
		v, n, err := consumeVarint(typ, b)
		if err != nil {
			return 0, err
		}
		add(v)
		return n, nil
	case protowire.BytesType:
		packed, n, err := consumeBytes(typ, b)
		if err != nil {
			return 0, err
		}
		for len(packed) > 0 {
			v, m := protowire.ConsumeVarint(packed)
			if m < 0 {
				return 0, protowire.ParseError(m)
			}
			add(v)
			packed = packed[m:]
		}
		return n, nil
	}
	return 0, wireTypeError(protowire.VarintType, typ)
}

// consumeFixed32s handles both packed and unpacked encodings of a repeated 32-bit field.
func consumeFixed32s(typ protowire.Type, b []byte, add func(uint32)) (int, error) {
	switch typ {
	case protowire.Fixed32Type:
		v, n := protowire.ConsumeFixed32(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		add(v)
		return n, nil
	case protowire.BytesType:
		packed, n, err := consumeBytes(typ, b)
		if err != nil {
			return 0, err
		}
		for len(packed) > 0 {
			v, m := protowire.ConsumeFixed32(packed)
			if m < 0 {
				return 0, protowire.ParseError(m)
			}
			add(v)
			packed = packed[m:]
		}
		return n, nil
	}
	return 0, wireTypeError(protowire.Fixed32Type, typ)
}

// consumeFixed64s handles both packed and unpacked encodings of a repeated 64-bit field.
func consumeFixed64s(typ protowire.Type, b []byte, add func(uint64)) (int, error) {
	switch typ {
	case protowire.Fixed64Type:
		v, n := protowire.ConsumeFixed64(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		add(v)
		return n, nil
	case protowire.BytesType:
		packed, n, err := consumeBytes(typ, b)
		if err != nil {
			return 0, err
		}
		for len(packed) > 0 {
			v, m := protowire.ConsumeFixed64(packed)
			if m < 0 {
				return 0, protowire.ParseError(m)
			}
			add(v)
			packed = packed[m:]
		}
		return n, nil
	}
	return 0, wireTypeError(protowire.Fixed64Type, typ)
}

func decodeModel(b []byte, m *ModelProto) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt64(typ, b, &m.IrVersion)
		case 2:
			return consumeString(typ, b, &m.ProducerName)
		case 3:
			return consumeString(typ, b, &m.ProducerVersion)
		case 4:
			return consumeString(typ, b, &m.Domain)
		case 5:
			return consumeInt64(typ, b, &m.ModelVersion)
		case 6:
			return consumeString(typ, b, &m.DocString)
		case 7:
			m.Graph = &GraphProto{}
			return consumeMessage(typ, b, func(v []byte) error {
				return errors.WithMessage(decodeGraph(v, m.Graph), "graph")
			})
		case 8:
			opset := &OperatorSetIdProto{}
			m.OpsetImport = append(m.OpsetImport, opset)
			return consumeMessage(typ, b, func(v []byte) error { return decodeOperatorSetId(v, opset) })
		case 14:
			entry := &StringStringEntryProto{}
			m.MetadataProps = append(m.MetadataProps, entry)
			return consumeMessage(typ, b, func(v []byte) error { return decodeStringStringEntry(v, entry) })
		}
		return 0, nil
	})
}

func decodeOperatorSetId(b []byte, o *OperatorSetIdProto) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &o.Domain)
		case 2:
			return consumeInt64(typ, b, &o.Version)
		}
		return 0, nil
	})
}

func decodeStringStringEntry(b []byte, e *StringStringEntryProto) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &e.Key)
		case 2:
			return consumeString(typ, b, &e.Value)
		}
		return 0, nil
	})
}

func decodeGraph(b []byte, g *GraphProto) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			node := &NodeProto{}
			g.Node = append(g.Node, node)
			return consumeMessage(typ, b, func(v []byte) error {
				return errors.WithMessagef(decodeNode(v, node), "node #%d", len(g.Node)-1)
			})
		case 2:
			return consumeString(typ, b, &g.Name)
		case 5:
			tensor := &TensorProto{}
			g.Initializer = append(g.Initializer, tensor)
			return consumeMessage(typ, b, func(v []byte) error {
				return errors.WithMessagef(decodeTensor(v, tensor), "initializer #%d", len(g.Initializer)-1)
			})
		case 10:
			return consumeString(typ, b, &g.DocString)
		case 11:
			return consumeValueInfo(typ, b, &g.Input)
		case 12:
			return consumeValueInfo(typ, b, &g.Output)
		case 13:
			return consumeValueInfo(typ, b, &g.ValueInfo)
		}
		return 0, nil
	})
}

func consumeValueInfo(typ protowire.Type, b []byte, dst *[]*ValueInfoProto) (int, error) {
	info := &ValueInfoProto{}
	*dst = append(*dst, info)
	return consumeMessage(typ, b, func(v []byte) error { return decodeValueInfo(v, info) })
}

func decodeNode(b []byte, node *NodeProto) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			var s string
			n, err := consumeString(typ, b, &s)
			node.Input = append(node.Input, s)
			return n, err
		case 2:
			var s string
			n, err := consumeString(typ, b, &s)
			node.Output = append(node.Output, s)
			return n, err
		case 3:
			return consumeString(typ, b, &node.Name)
		case 4:
			return consumeString(typ, b, &node.OpType)
		case 5:
			attr := &AttributeProto{}
			node.Attribute = append(node.Attribute, attr)
			return consumeMessage(typ, b, func(v []byte) error {
				return errors.WithMessagef(decodeAttribute(v, attr), "attribute #%d", len(node.Attribute)-1)
			})
		case 6:
			return consumeString(typ, b, &node.DocString)
		case 7:
			return consumeString(typ, b, &node.Domain)
		}
		return 0, nil
	})
}

func decodeAttribute(b []byte, attr *AttributeProto) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &attr.Name)
		case 2:
			if typ != protowire.Fixed32Type {
				return 0, wireTypeError(protowire.Fixed32Type, typ)
			}
			v, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				return 0, protowire.ParseError(n)
			}
			attr.F = math32.Float32frombits(v)
			return n, nil
		case 3:
			return consumeInt64(typ, b, &attr.I)
		case 4:
			v, n, err := consumeBytes(typ, b)
			attr.S = append([]byte(nil), v...)
			return n, err
		case 5:
			attr.T = &TensorProto{}
			return consumeMessage(typ, b, func(v []byte) error { return decodeTensor(v, attr.T) })
		case 6:
			attr.G = &GraphProto{}
			return consumeMessage(typ, b, func(v []byte) error { return decodeGraph(v, attr.G) })
		case 7:
			return consumeFixed32s(typ, b, func(v uint32) { attr.Floats = append(attr.Floats, math32.Float32frombits(v)) })
		case 8:
			return consumeVarints(typ, b, func(v uint64) { attr.Ints = append(attr.Ints, int64(v)) })
		case 9:
			v, n, err := consumeBytes(typ, b)
			attr.Strings = append(attr.Strings, append([]byte(nil), v...))
			return n, err
		case 10:
			tensor := &TensorProto{}
			attr.Tensors = append(attr.Tensors, tensor)
			return consumeMessage(typ, b, func(v []byte) error { return decodeTensor(v, tensor) })
		case 11:
			graph := &GraphProto{}
			attr.Graphs = append(attr.Graphs, graph)
			return consumeMessage(typ, b, func(v []byte) error { return decodeGraph(v, graph) })
		case 13:
			return consumeString(typ, b, &attr.DocString)
		case 20:
			var v int32
			n, err := consumeInt32(typ, b, &v)
			attr.Type = AttributeProto_AttributeType(v)
			return n, err
		}
		return 0, nil
	})
}

func decodeTensor(b []byte, t *TensorProto) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeVarints(typ, b, func(v uint64) { t.Dims = append(t.Dims, int64(v)) })
		case 2:
			return consumeInt32(typ, b, &t.DataType)
		case 4:
			return consumeFixed32s(typ, b, func(v uint32) { t.FloatData = append(t.FloatData, math32.Float32frombits(v)) })
		case 5:
			return consumeVarints(typ, b, func(v uint64) { t.Int32Data = append(t.Int32Data, int32(v)) })
		case 6:
			v, n, err := consumeBytes(typ, b)
			t.StringData = append(t.StringData, append([]byte(nil), v...))
			return n, err
		case 7:
			return consumeVarints(typ, b, func(v uint64) { t.Int64Data = append(t.Int64Data, int64(v)) })
		case 8:
			return consumeString(typ, b, &t.Name)
		case 9:
			v, n, err := consumeBytes(typ, b)
			t.RawData = append([]byte{}, v...)
			return n, err
		case 10:
			return consumeFixed64s(typ, b, func(v uint64) { t.DoubleData = append(t.DoubleData, math.Float64frombits(v)) })
		case 11:
			return consumeVarints(typ, b, func(v uint64) { t.Uint64Data = append(t.Uint64Data, v) })
		case 12:
			return consumeString(typ, b, &t.DocString)
		case 13:
			entry := &StringStringEntryProto{}
			t.ExternalData = append(t.ExternalData, entry)
			return consumeMessage(typ, b, func(v []byte) error { return decodeStringStringEntry(v, entry) })
		case 14:
			var v int32
			n, err := consumeInt32(typ, b, &v)
			t.DataLocation = TensorProto_DataLocation(v)
			return n, err
		}
		return 0, nil
	})
}

func decodeValueInfo(b []byte, info *ValueInfoProto) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &info.Name)
		case 2:
			info.Type = &TypeProto{}
			return consumeMessage(typ, b, func(v []byte) error { return decodeType(v, info.Type) })
		case 3:
			return consumeString(typ, b, &info.DocString)
		}
		return 0, nil
	})
}

func decodeType(b []byte, tp *TypeProto) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			tp.TensorType = &TypeProto_Tensor{}
			return consumeMessage(typ, b, func(v []byte) error { return decodeTensorType(v, tp.TensorType) })
		case 6:
			return consumeString(typ, b, &tp.Denotation)
		}
		return 0, nil
	})
}

func decodeTensorType(b []byte, tt *TypeProto_Tensor) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt32(typ, b, &tt.ElemType)
		case 2:
			tt.Shape = &TensorShapeProto{}
			return consumeMessage(typ, b, func(v []byte) error { return decodeTensorShape(v, tt.Shape) })
		}
		return 0, nil
	})
}

func decodeTensorShape(b []byte, shape *TensorShapeProto) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		dim := &TensorShapeProto_Dimension{}
		shape.Dim = append(shape.Dim, dim)
		return consumeMessage(typ, b, func(v []byte) error {
			return decodeFields(v, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
				switch num {
				case 1:
					return consumeInt64(typ, b, &dim.DimValue)
				case 2:
					return consumeString(typ, b, &dim.DimParam)
				case 3:
					return consumeString(typ, b, &dim.Denotation)
				}
				return 0, nil
			})
		})
	})
}
