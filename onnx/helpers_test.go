package onnx

import (
	"encoding/binary"
	"math"

	"github.com/gomlx/exceptions"
	"github.com/wasnn/onnx-wasnn/internal/protos"
	"github.com/wasnn/onnx-wasnn/internal/schema"
)

func intAttr(name string, v int64) *protos.AttributeProto {
	return &protos.AttributeProto{Name: name, Type: protos.AttributeProto_INT, I: v}
}

func floatAttr(name string, v float32) *protos.AttributeProto {
	return &protos.AttributeProto{Name: name, Type: protos.AttributeProto_FLOAT, F: v}
}

func stringAttr(name, v string) *protos.AttributeProto {
	return &protos.AttributeProto{Name: name, Type: protos.AttributeProto_STRING, S: []byte(v)}
}

func intsAttr(name string, v ...int64) *protos.AttributeProto {
	return &protos.AttributeProto{Name: name, Type: protos.AttributeProto_INTS, Ints: v}
}

func floatsAttr(name string, v ...float32) *protos.AttributeProto {
	return &protos.AttributeProto{Name: name, Type: protos.AttributeProto_FLOATS, Floats: v}
}

func stringsAttr(name string, v ...string) *protos.AttributeProto {
	return &protos.AttributeProto{Name: name, Type: protos.AttributeProto_STRINGS,
		Strings: sliceMap(v, func(s string) []byte { return []byte(s) })}
}

func tensorAttr(name string, t *protos.TensorProto) *protos.AttributeProto {
	return &protos.AttributeProto{Name: name, Type: protos.AttributeProto_TENSOR, T: t}
}

func int64Tensor(name string, dims []int64, values ...int64) *protos.TensorProto {
	return &protos.TensorProto{Name: name, Dims: dims, DataType: int32(protos.TensorProto_INT64), Int64Data: values}
}

func floatTensor(name string, dims []int64, values ...float32) *protos.TensorProto {
	return &protos.TensorProto{Name: name, Dims: dims, DataType: int32(protos.TensorProto_FLOAT), FloatData: values}
}

// float32Bytes encodes values as little-endian raw tensor data.
func float32Bytes(values ...float32) []byte {
	raw := make([]byte, 4*len(values))
	for ii, v := range values {
		binary.LittleEndian.PutUint32(raw[ii*4:], math.Float32bits(v))
	}
	return raw
}

// testReader returns an attrReader for the node, registering synthesized nodes in graph.
func testReader(node *protos.NodeProto, graph *Graph, diag *Diagnostics, inputs ...int) *attrReader {
	name := node.Name
	if name == "" {
		name = node.OpType
	}
	r := newAttrReader(node, name, inputs, graph.AddNode)
	r.normalizer = &tensorNormalizer{diag: diag}
	return r
}

// quietDiagnostics records messages without logging them.
func quietDiagnostics() *Diagnostics {
	diag := NewDiagnostics()
	diag.Quiet = true
	return diag
}

// convertOp runs the rule of opType on the given attributes, with the given opset version.
func convertOp(opType string, opsetVersion int64, attrs ...*protos.AttributeProto) (*schema.OperatorAttrsT, *attrReader, error) {
	node := &protos.NodeProto{Name: "op", OpType: opType, Attribute: attrs}
	r := testReader(node, NewGraph(), quietDiagnostics())
	r.opsetVersion = opsetVersion
	_, rule, err := lookupOperator(opType)
	if err != nil {
		return nil, r, err
	}
	var result *schema.OperatorAttrsT
	err = exceptions.TryCatch[error](func() { result = rule(r) })
	return result, r, err
}
