package onnx

import (
	"math"

	"github.com/gomlx/exceptions"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/pkg/errors"
	"github.com/wasnn/onnx-wasnn/internal/schema"
)

// Serialize encodes the graph as a wasnn model: a FlatBuffers "Model" table with the current
// schema version.
//
// Nodes keep their graph order, and node references are their indices. Omitted operator inputs
// are written as -1.
func (g *Graph) Serialize() ([]byte, error) {
	graphT, err := g.toSchema()
	if err != nil {
		return nil, err
	}
	model := &schema.ModelT{SchemaVersion: schema.SchemaVersion, Graph: graphT}
	builder := flatbuffers.NewBuilder(1024)
	builder.Finish(model.Pack(builder))
	return builder.FinishedBytes(), nil
}

func (g *Graph) toSchema() (*schema.GraphT, error) {
	graphT := &schema.GraphT{
		Nodes:   make([]*schema.NodeT, len(g.Nodes)),
		Inputs:  toUint32s(g.Inputs),
		Outputs: toUint32s(g.Outputs),
	}
	for ii, node := range g.Nodes {
		nodeT := &schema.NodeT{Name: node.Name()}
		switch n := node.(type) {
		case *ConstantNode:
			constantT, err := n.toSchema()
			if err != nil {
				return nil, err
			}
			nodeT.Data = &schema.NodeKindT{Type: schema.NodeKindConstantNode, Value: constantT}
		case *ValueNode:
			valueT, err := n.toSchema()
			if err != nil {
				return nil, err
			}
			nodeT.Data = &schema.NodeKindT{Type: schema.NodeKindValueNode, Value: valueT}
		case *OperatorNode:
			nodeT.Data = &schema.NodeKindT{Type: schema.NodeKindOperatorNode, Value: n.toSchema()}
		default:
			return nil, errors.Errorf("node #%d %q has unknown node type %T", ii, node.Name(), node)
		}
		graphT.Nodes[ii] = nodeT
	}
	return graphT, nil
}

func (n *ConstantNode) toSchema() (*schema.ConstantNodeT, error) {
	constantT := &schema.ConstantNodeT{Shape: toUint32s(n.Shape)}
	switch data := n.Data.(type) {
	case []float32:
		constantT.Data = &schema.ConstantDataT{Type: schema.ConstantDataFloatData, Value: &schema.FloatDataT{Data: nonNil(data)}}
	case []int32:
		constantT.Data = &schema.ConstantDataT{Type: schema.ConstantDataIntData, Value: &schema.IntDataT{Data: nonNil(data)}}
	default:
		return nil, errors.Errorf("constant %q has unsupported data type %T", n.name, n.Data)
	}
	return constantT, nil
}

func (n *ValueNode) toSchema() (*schema.ValueNodeT, error) {
	if n.Shape == nil {
		return &schema.ValueNodeT{}, nil
	}
	valueT := &schema.ValueNodeT{Shape: make([]*schema.DimT, len(n.Shape))}
	for axis, dim := range n.Shape {
		if dim.IsSymbolic() {
			valueT.Shape[axis] = &schema.DimT{Name: dim.Name}
			continue
		}
		if dim.Value < 0 || int64(dim.Value) > math.MaxUint32 {
			return nil, errors.Wrapf(ErrShapeMismatch, "value %q has invalid size %d for axis %d", n.name, dim.Value, axis)
		}
		valueT.Shape[axis] = &schema.DimT{Value: uint32(dim.Value)}
	}
	return valueT, nil
}

func (n *OperatorNode) toSchema() *schema.OperatorNodeT {
	toInt32s := func(indices []int) []int32 {
		return nonNil(sliceMap(indices, func(idx int) int32 { return int32(idx) }))
	}
	return &schema.OperatorNodeT{
		Type:    n.OpType,
		Attrs:   n.Attrs,
		Inputs:  toInt32s(n.Inputs),
		Outputs: toInt32s(n.Outputs),
	}
}

func toUint32s(values []int) []uint32 {
	return nonNil(sliceMap(values, func(v int) uint32 { return uint32(v) }))
}

// nonNil makes sure a vector is written even when empty.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Deserialize decodes a wasnn model back into a Graph. It is the inverse of Graph.Serialize.
func Deserialize(buf []byte) (graph *Graph, err error) {
	if len(buf) < flatbuffers.SizeUOffsetT {
		return nil, errors.Errorf("wasnn model too short (%d bytes)", len(buf))
	}
	var model *schema.ModelT
	// Malformed buffers make the FlatBuffers accessors panic with out-of-range errors.
	err = exceptions.TryCatch[error](func() { model = schema.GetRootAsModel(buf, 0).UnPack() })
	if err != nil {
		return nil, errors.WithMessage(err, "malformed wasnn model")
	}
	if model.SchemaVersion != schema.SchemaVersion {
		return nil, errors.Errorf("unsupported wasnn schema version %d, expected %d", model.SchemaVersion, schema.SchemaVersion)
	}
	if model.Graph == nil {
		return nil, errors.New("wasnn model has no graph")
	}

	graph = NewGraph()
	for ii, nodeT := range model.Graph.Nodes {
		node, err := nodeFromSchema(nodeT)
		if err != nil {
			return nil, errors.WithMessagef(err, "node #%d", ii)
		}
		if _, err = graph.AddNode(node); err != nil {
			return nil, err
		}
	}
	toInts := func(values []uint32) []int { return sliceMap(values, func(v uint32) int { return int(v) }) }
	graph.Inputs = toInts(model.Graph.Inputs)
	graph.Outputs = toInts(model.Graph.Outputs)
	return graph, nil
}

func nodeFromSchema(nodeT *schema.NodeT) (Node, error) {
	if nodeT == nil || nodeT.Data == nil {
		return nil, errors.New("node has no data")
	}
	switch data := nodeT.Data.Value.(type) {
	case *schema.ConstantNodeT:
		shape := sliceMap(data.Shape, func(d uint32) int { return int(d) })
		if data.Data == nil {
			return nil, errors.Errorf("constant %q has no data", nodeT.Name)
		}
		switch values := data.Data.Value.(type) {
		case *schema.FloatDataT:
			return NewConstantNode(nodeT.Name, shape, nonNil(values.Data))
		case *schema.IntDataT:
			return NewConstantNode(nodeT.Name, shape, nonNil(values.Data))
		}
		return nil, errors.Errorf("constant %q has unsupported data %s", nodeT.Name, data.Data.Type)
	case *schema.ValueNodeT:
		var shape []Dim
		if data.Shape != nil {
			shape = sliceMap(data.Shape, func(d *schema.DimT) Dim { return Dim{Value: int(d.Value), Name: d.Name} })
		}
		return NewValueNode(nodeT.Name, shape), nil
	case *schema.OperatorNodeT:
		toInts := func(values []int32) []int { return sliceMap(values, func(v int32) int { return int(v) }) }
		return &OperatorNode{
			name:    nodeT.Name,
			OpType:  data.Type,
			Attrs:   data.Attrs,
			Inputs:  toInts(data.Inputs),
			Outputs: toInts(data.Outputs),
		}, nil
	}
	return nil, errors.Errorf("node %q has unsupported kind %s", nodeT.Name, nodeT.Data.Type)
}
