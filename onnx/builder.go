package onnx

import (
	"fmt"
	"math"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gomlx/pkg/support/sets"
	"github.com/pkg/errors"
	"github.com/wasnn/onnx-wasnn/internal/protos"
	"k8s.io/klog/v2"
)

// ConvertOptions configure Model.Convert.
type ConvertOptions struct {
	// Diagnostics receives the warnings and item errors of the run. If nil, a new one is used.
	Diagnostics *Diagnostics

	// BaseDir overrides the directory used to resolve tensors stored in external files.
	// It defaults to Model.BaseDir.
	BaseDir string

	// DisableMmap reads external data with plain file reads instead of memory-mapping the files.
	DisableMmap bool
}

// graphBuilder holds the state of one conversion run.
type graphBuilder struct {
	model        *Model
	graph        *Graph
	diag         *Diagnostics
	normalizer   *tensorNormalizer
	opsetVersion int64

	// shapes of values declared in the graph's value_info and outputs, by name.
	shapes map[string][]Dim

	// names given in the source graph, which generated names must avoid.
	names sets.Set[string]
}

// Convert builds the wasnn Graph of the model.
//
// Conversion runs in phases: initializers, "Constant" operators, graph inputs and finally the
// other operators. Errors converting individual items are reported to the Diagnostics and
// collected, and at the end of each phase a *ConversionFailedError with all of them is returned
// if there were any. Errors of the other kinds abort the conversion right away.
func (m *Model) Convert(opts ConvertOptions) (*Graph, error) {
	diag := opts.Diagnostics
	if diag == nil {
		diag = NewDiagnostics()
	}
	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = m.BaseDir
	}
	normalizer := &tensorNormalizer{diag: diag, baseDir: baseDir}
	if !opts.DisableMmap && baseDir != "" {
		normalizer.external = NewExternalDataReader(baseDir)
		// Tensors are copied out of the mappings, nothing references them after conversion.
		defer func() {
			if err := normalizer.external.Close(); err != nil {
				klog.Warningf("closing external data files: %+v", err)
			}
		}()
	}

	b := &graphBuilder{
		model:        m,
		graph:        NewGraph(),
		diag:         diag,
		normalizer:   normalizer,
		opsetVersion: m.OpsetVersion(),
	}
	return b.build()
}

func (b *graphBuilder) build() (*Graph, error) {
	gp := b.model.Proto.Graph
	if gp == nil {
		return nil, errors.New("ONNX model has no graph")
	}
	b.shapes = make(map[string][]Dim)
	for _, infos := range [][]*protos.ValueInfoProto{gp.ValueInfo, gp.Output} {
		for _, info := range infos {
			shape, err := valueShape(info)
			if err != nil {
				return nil, err
			}
			b.shapes[info.Name] = shape
		}
	}
	b.names = sourceNames(gp)

	err := runPhase(b, "initializers", gp.Initializer, func(_ int, tensor *protos.TensorProto) error {
		constant, err := b.normalizer.constant(tensor, tensor.Name, "")
		if err == nil {
			_, err = b.graph.AddNode(constant)
		}
		return errors.WithMessage(err, "Error converting initializer")
	})
	if err != nil {
		return nil, err
	}

	err = runPhase(b, "constants", gp.Node, func(_ int, node *protos.NodeProto) error {
		if node.OpType != "Constant" {
			return nil
		}
		return errors.WithMessage(b.addConstantOperator(node), `Error converting "Constant" operator`)
	})
	if err != nil {
		return nil, err
	}

	err = runPhase(b, "inputs", gp.Input, func(_ int, info *protos.ValueInfoProto) error {
		// Initializers may be listed as inputs too, to allow overriding them.
		if b.graph.Has(info.Name) {
			return nil
		}
		shape, err := valueShape(info)
		if err == nil {
			_, err = b.graph.AddNode(NewValueNode(info.Name, shape))
		}
		return errors.WithMessage(err, "Error converting input")
	})
	if err != nil {
		return nil, err
	}

	err = runPhase(b, "operators", gp.Node, func(idx int, node *protos.NodeProto) error {
		if node.OpType == "Constant" {
			return nil
		}
		name := b.operatorName(node, idx)
		err := b.addOperator(node, name)
		return errors.WithMessagef(err, "Error converting %s operator %s", node.OpType, name)
	})
	if err != nil {
		return nil, err
	}

	if b.graph.Inputs, err = b.resolve(b.model.InputsNames()); err != nil {
		return nil, errors.WithMessage(err, "graph inputs")
	}
	if b.graph.Outputs, err = b.resolve(b.model.OutputsNames()); err != nil {
		return nil, errors.WithMessage(err, "graph outputs")
	}
	klog.V(1).Infof("Converted graph with %d nodes, %d inputs and %d outputs",
		len(b.graph.Nodes), len(b.graph.Inputs), len(b.graph.Outputs))
	return b.graph, nil
}

// runPhase converts each item, collecting the errors. It returns a *ConversionFailedError
// if any item failed.
func runPhase[T any](b *graphBuilder, phase string, items []T, convert func(idx int, item T) error) error {
	var errs []error
	for idx, item := range items {
		if err := convert(idx, item); err != nil {
			b.diag.Errorf("%v", err)
			errs = append(errs, err)
		}
	}
	klog.V(2).Infof("Phase %q: %d items, %d errors, %d nodes in graph", phase, len(items), len(errs), len(b.graph.Nodes))
	if len(errs) > 0 {
		return &ConversionFailedError{Phase: phase, Errors: errs}
	}
	return nil
}

func (b *graphBuilder) resolve(names []string) ([]int, error) {
	indices := make([]int, len(names))
	for ii, name := range names {
		var err error
		if indices[ii], err = b.graph.NodeIndex(name); err != nil {
			return nil, err
		}
	}
	return indices, nil
}

// sourceNames returns every name used in the source graph: tensors, values and operators.
func sourceNames(gp *protos.GraphProto) sets.Set[string] {
	names := sets.Make[string]()
	for _, tensor := range gp.Initializer {
		names.Insert(tensor.Name)
	}
	for _, info := range gp.Input {
		names.Insert(info.Name)
	}
	for _, node := range gp.Node {
		if node.Name != "" {
			names.Insert(node.Name)
		}
		for _, output := range node.Output {
			names.Insert(output)
		}
	}
	return names
}

// operatorName returns the node name, or "<op_type>_<index>" for unnamed nodes. If the
// generated name is already used in the source graph, a "_<n>" suffix is added.
func (b *graphBuilder) operatorName(node *protos.NodeProto, idx int) string {
	if node.Name != "" {
		return node.Name
	}
	base := fmt.Sprintf("%s_%d", node.OpType, idx)
	name := base
	for suffix := 1; b.names.Has(name) || b.graph.Has(name); suffix++ {
		name = fmt.Sprintf("%s_%d", base, suffix)
	}
	b.names.Insert(name)
	return name
}

// valueShape returns the shape declared for a value, or nil if unknown.
// Symbolic dimensions ("batch_size") keep their name. Sizes that don't fit the
// format's unsigned 32-bit dimensions fail with ErrShapeMismatch.
func valueShape(info *protos.ValueInfoProto) ([]Dim, error) {
	shapeProto := info.GetType().GetTensorType().GetShape()
	if shapeProto == nil {
		return nil, nil
	}
	shape := make([]Dim, len(shapeProto.GetDim()))
	for axis, dim := range shapeProto.GetDim() {
		if dim.DimParam != "" {
			shape[axis] = Dim{Name: dim.DimParam}
			continue
		}
		if dim.DimValue < 0 || dim.DimValue > math.MaxUint32 {
			return nil, errors.Wrapf(ErrShapeMismatch, "value %q has invalid size %d for axis %d",
				info.Name, dim.DimValue, axis)
		}
		shape[axis] = Dim{Value: int(dim.DimValue)}
	}
	return shape, nil
}

// addConstantOperator converts a "Constant" operator into a ConstantNode named after its output.
func (b *graphBuilder) addConstantOperator(node *protos.NodeProto) error {
	if len(node.Output) == 0 {
		return errors.Errorf("operator %q has no outputs", node.Name)
	}
	name := node.Output[0]
	r := newAttrReader(node, name, nil, nil)
	r.normalizer = b.normalizer
	var constant *ConstantNode
	err := exceptions.TryCatch[error](func() { constant = constantFromAttributes(r) })
	if err != nil {
		return err
	}
	_, err = b.graph.AddNode(constant)
	return err
}

// constantFromAttributes reads the value of a "Constant" operator, given by one of its
// "value*" attributes. Sparse and string values are not supported.
func constantFromAttributes(r *attrReader) *ConstantNode {
	var constant *ConstantNode
	var err error
	switch {
	case r.attr("value", protos.AttributeProto_TENSOR) != nil:
		constant, err = r.normalizer.constant(r.requireTensor("value"), r.name, r.name)
	case r.attr("value_float", protos.AttributeProto_FLOAT) != nil:
		constant, err = NewConstantNode(r.name, nil, []float32{r.getFloat("value_float", 0)})
	case r.attr("value_floats", protos.AttributeProto_FLOATS) != nil:
		values := r.getFloats("value_floats", nil)
		constant, err = NewConstantNode(r.name, []int{len(values)}, values)
	case r.attr("value_int", protos.AttributeProto_INT) != nil:
		constant, err = NewConstantNode(r.name, nil, r.normalizer.clampToInt32([]int64{r.requireInt("value_int")}))
	case r.attr("value_ints", protos.AttributeProto_INTS) != nil:
		values := r.getInts("value_ints", nil)
		constant, err = NewConstantNode(r.name, []int{len(values)}, r.normalizer.clampToInt32(values))
	default:
		err = errors.Wrapf(ErrMissingRequiredAttribute, "attribute %q", "value")
	}
	if err != nil {
		panic(err)
	}
	return constant
}

// addOperator registers the placeholders of the operator outputs, then converts the operator.
func (b *graphBuilder) addOperator(node *protos.NodeProto, name string) error {
	outputs := make([]int, len(node.Output))
	for ii, output := range node.Output {
		if output == "" {
			// Omitted optional output: it still takes its position, under a name of its own.
			output = fmt.Sprintf("%s:unused-output-%d", name, ii)
		}
		var err error
		outputs[ii], err = b.graph.AddNode(NewValueNode(output, b.shapes[output]))
		if err != nil {
			return err
		}
	}
	op, err := b.convertOperator(node, name, outputs)
	if err != nil {
		return err
	}
	_, err = b.graph.AddNode(op)
	return err
}

// convertOperator translates the operator type and attributes with the operator's rule.
// Attributes promoted to inputs are added to the graph as constants.
func (b *graphBuilder) convertOperator(node *protos.NodeProto, name string, outputs []int) (*OperatorNode, error) {
	opType, rule, err := lookupOperator(node.OpType)
	if err != nil {
		return nil, err
	}
	inputs := make([]int, len(node.Input))
	for ii, input := range node.Input {
		if input == "" {
			inputs[ii] = NoInput
			continue
		}
		if inputs[ii], err = b.graph.NodeIndex(input); err != nil {
			return nil, errors.WithMessagef(err, "input #%d", ii)
		}
	}

	r := newAttrReader(node, name, inputs, b.graph.AddNode)
	r.normalizer = b.normalizer
	r.opsetVersion = b.opsetVersion
	op := &OperatorNode{name: name, OpType: opType, Outputs: outputs}
	err = exceptions.TryCatch[error](func() { op.Attrs = rule(r) })
	if err != nil {
		return nil, err
	}
	for _, attrName := range r.unhandled() {
		b.diag.Warnf("Unsupported attribute %s for operator %s", attrName, node.OpType)
	}
	op.Inputs = r.inputs
	return op, nil
}
