package onnx

import (
	"github.com/pkg/errors"
	"github.com/wasnn/onnx-wasnn/internal/schema"
)

// NoInput marks an omitted optional operator input in OperatorNode.Inputs.
const NoInput = -1

// Node is an entry of the converted graph: a *ConstantNode, *ValueNode or *OperatorNode.
//
// Names are unique within a Graph.
type Node interface {
	Name() string
}

// ConstantElement are the element types a ConstantNode can hold.
type ConstantElement interface {
	float32 | int32
}

// ConstantNode holds a constant tensor: weights, biases, or values synthesized from operator attributes.
type ConstantNode struct {
	name  string
	Shape []int

	// Data is either []float32 or []int32, flattened in row-major order.
	Data any
}

// NewConstantNode returns a constant named name. The product of shape must equal len(data),
// otherwise it fails with ErrShapeMismatch.
func NewConstantNode[T ConstantElement](name string, shape []int, data []T) (*ConstantNode, error) {
	size := 1
	for _, dim := range shape {
		if dim < 0 {
			return nil, errors.Wrapf(ErrShapeMismatch, "constant %q has negative dimension in shape %v", name, shape)
		}
		size *= dim
	}
	if size != len(data) {
		return nil, errors.Wrapf(ErrShapeMismatch, "constant %q shape %v product %d does not match data length %d",
			name, shape, size, len(data))
	}
	if shape == nil {
		shape = []int{}
	}
	return &ConstantNode{name: name, Shape: shape, Data: data}, nil
}

// Name implements Node.
func (n *ConstantNode) Name() string { return n.name }

// Len returns the number of elements.
func (n *ConstantNode) Len() int {
	switch data := n.Data.(type) {
	case []float32:
		return len(data)
	case []int32:
		return len(data)
	}
	return 0
}

// Dim is one dimension of a ValueNode shape: a fixed size, or a symbolic one when Name is set.
type Dim struct {
	Value int
	Name  string
}

// IsSymbolic returns whether the dimension size is only known at runtime.
func (d Dim) IsSymbolic() bool { return d.Name != "" }

// ValueNode is a placeholder for a tensor computed at runtime: a model input, or an operator output.
type ValueNode struct {
	name string

	// Shape is nil when unknown. An empty non-nil Shape is a scalar.
	Shape []Dim
}

// NewValueNode returns a value placeholder. Pass a nil shape if it is not known.
func NewValueNode(name string, shape []Dim) *ValueNode {
	return &ValueNode{name: name, Shape: shape}
}

// Name implements Node.
func (n *ValueNode) Name() string { return n.name }

// OperatorNode is an operator of the converted graph.
type OperatorNode struct {
	name   string
	OpType schema.OperatorType

	// Attrs is nil for operators without attributes.
	Attrs *schema.OperatorAttrsT

	// Inputs are node indices in the Graph, NoInput for omitted optional inputs.
	Inputs  []int
	Outputs []int
}

// Name implements Node.
func (n *OperatorNode) Name() string { return n.name }

// Graph is the converted model. Nodes are kept in creation order, which is also the order they
// are serialized in.
type Graph struct {
	Nodes []Node

	// Inputs and Outputs are indices into Nodes.
	Inputs  []int
	Outputs []int

	nameToIndex map[string]int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{nameToIndex: make(map[string]int)}
}

// AddNode appends node and returns its index. It fails with ErrDuplicateNodeName if a node
// with the same name exists.
func (g *Graph) AddNode(node Node) (int, error) {
	if g.nameToIndex == nil {
		g.nameToIndex = make(map[string]int)
	}
	if _, found := g.nameToIndex[node.Name()]; found {
		return 0, errors.Wrapf(ErrDuplicateNodeName, "node name %q conflicts with another node", node.Name())
	}
	idx := len(g.Nodes)
	g.Nodes = append(g.Nodes, node)
	g.nameToIndex[node.Name()] = idx
	return idx, nil
}

// Has returns whether a node with the given name exists.
func (g *Graph) Has(name string) bool {
	_, found := g.nameToIndex[name]
	return found
}

// NodeIndex returns the index of the node with the given name. It fails with ErrUnknownReference.
func (g *Graph) NodeIndex(name string) (int, error) {
	idx, found := g.nameToIndex[name]
	if !found {
		return 0, errors.Wrapf(ErrUnknownReference, "no node named %q", name)
	}
	return idx, nil
}
