package onnx

import (
	"slices"

	"github.com/gomlx/gomlx/pkg/support/sets"
	"github.com/pkg/errors"
	"github.com/wasnn/onnx-wasnn/internal/protos"
)

// attrReader reads the attributes of one ONNX node while converting it, and keeps track of which
// attributes were handled, so the unhandled ones can be reported.
//
// Its methods panic with an error on failure: operator rules run inside exceptions.TryCatch,
// see convertOperator.
type attrReader struct {
	node *protos.NodeProto

	// name of the operator, used for synthesized nodes and messages.
	name string

	// inputs are the node indices of the operator inputs. Promoted attributes are inserted here.
	inputs []int

	// addNode registers a synthesized node in the graph and returns its index.
	addNode func(Node) (int, error)

	normalizer   *tensorNormalizer
	opsetVersion int64

	handled sets.Set[string]
}

func newAttrReader(node *protos.NodeProto, name string, inputs []int, addNode func(Node) (int, error)) *attrReader {
	return &attrReader{
		node:    node,
		name:    name,
		inputs:  slices.Clone(inputs),
		addNode: addNode,
		handled: sets.Make[string](),
	}
}

// attr returns the attribute named name, or nil if absent. The name is marked as handled either way.
// If present, its type must be attrType, otherwise it panics with ErrAttributeTypeMismatch.
func (r *attrReader) attr(name string, attrType protos.AttributeProto_AttributeType) *protos.AttributeProto {
	r.handled.Insert(name)
	for _, attr := range r.node.Attribute {
		if attr.Name != name {
			continue
		}
		if attr.Type != attrType {
			panic(errors.Wrapf(ErrAttributeTypeMismatch, "attribute %q is %s, expected %s", name, attr.Type, attrType))
		}
		return attr
	}
	return nil
}

// require is like attr, but panics with ErrMissingRequiredAttribute if the attribute is absent.
func (r *attrReader) require(name string, attrType protos.AttributeProto_AttributeType) *protos.AttributeProto {
	attr := r.attr(name, attrType)
	if attr == nil {
		panic(errors.Wrapf(ErrMissingRequiredAttribute, "attribute %q", name))
	}
	return attr
}

// getInt returns an integer attribute, or defaultValue if absent.
func (r *attrReader) getInt(name string, defaultValue int64) int64 {
	if attr := r.attr(name, protos.AttributeProto_INT); attr != nil {
		return attr.I
	}
	return defaultValue
}

// getOptionalInt returns an integer attribute, or nil if absent.
func (r *attrReader) getOptionalInt(name string) *int64 {
	if attr := r.attr(name, protos.AttributeProto_INT); attr != nil {
		v := attr.I
		return &v
	}
	return nil
}

// getBool returns a boolean attribute, stored by ONNX as an int, or defaultValue if absent.
func (r *attrReader) getBool(name string, defaultValue bool) bool {
	defaultInt := int64(0)
	if defaultValue {
		defaultInt = 1
	}
	return r.getInt(name, defaultInt) != 0
}

func (r *attrReader) getFloat(name string, defaultValue float32) float32 {
	if attr := r.attr(name, protos.AttributeProto_FLOAT); attr != nil {
		return attr.F
	}
	return defaultValue
}

func (r *attrReader) getString(name string, defaultValue string) string {
	if attr := r.attr(name, protos.AttributeProto_STRING); attr != nil {
		return string(attr.S)
	}
	return defaultValue
}

// getInts returns an integer list attribute, or defaultValue if absent.
func (r *attrReader) getInts(name string, defaultValue []int64) []int64 {
	if attr := r.attr(name, protos.AttributeProto_INTS); attr != nil {
		if attr.Ints == nil {
			return []int64{}
		}
		return attr.Ints
	}
	return defaultValue
}

func (r *attrReader) getFloats(name string, defaultValue []float32) []float32 {
	if attr := r.attr(name, protos.AttributeProto_FLOATS); attr != nil {
		return attr.Floats
	}
	return defaultValue
}

func (r *attrReader) requireInt(name string) int64 {
	return r.require(name, protos.AttributeProto_INT).I
}

func (r *attrReader) requireInts(name string) []int64 {
	return r.require(name, protos.AttributeProto_INTS).Ints
}

func (r *attrReader) requireTensor(name string) *protos.TensorProto {
	return r.require(name, protos.AttributeProto_TENSOR).T
}

// getEnum reads a snake_case string attribute into a value of the enum domain.
// It panics with ErrUnsupportedEnumValue if the value has no matching variant.
func getEnum[E ~uint8](r *attrReader, name string, domain enumDomain[E], defaultValue string) E {
	value := r.getString(name, defaultValue)
	v, err := domain.lookup(value)
	if err != nil {
		panic(errors.WithMessagef(err, "attribute %q", name))
	}
	return v
}

// ignore marks the attribute as handled without reading it. Used for attributes that carry
// information the runtime infers by itself.
func (r *attrReader) ignore(name string) {
	r.handled.Insert(name)
}

// checkInt panics with ErrUnsupportedAttributeValue if the attribute is present with a value
// not in allowed.
func (r *attrReader) checkInt(name string, allowed ...int64) {
	if attr := r.attr(name, protos.AttributeProto_INT); attr != nil && !slices.Contains(allowed, attr.I) {
		panic(unsupportedValue(name, attr.I, allowed))
	}
}

func (r *attrReader) checkFloat(name string, allowed ...float32) {
	if attr := r.attr(name, protos.AttributeProto_FLOAT); attr != nil && !slices.Contains(allowed, attr.F) {
		panic(unsupportedValue(name, attr.F, allowed))
	}
}

func (r *attrReader) checkString(name string, allowed ...string) {
	if attr := r.attr(name, protos.AttributeProto_STRING); attr != nil && !slices.Contains(allowed, string(attr.S)) {
		panic(unsupportedValue(name, string(attr.S), allowed))
	}
}

func (r *attrReader) checkInts(name string, allowed ...[]int64) {
	attr := r.attr(name, protos.AttributeProto_INTS)
	if attr == nil {
		return
	}
	for _, candidate := range allowed {
		if slices.Equal(attr.Ints, candidate) {
			return
		}
	}
	panic(unsupportedValue(name, attr.Ints, allowed))
}

// checkEmptyList panics unless the list attribute is absent or empty. attrType must be one of the
// list types.
func (r *attrReader) checkEmptyList(name string, attrType protos.AttributeProto_AttributeType) {
	attr := r.attr(name, attrType)
	if attr == nil {
		return
	}
	size := len(attr.Floats) + len(attr.Ints) + len(attr.Strings) + len(attr.Tensors) + len(attr.Graphs)
	if size > 0 {
		panic(errors.Wrapf(ErrUnsupportedAttributeValue, "attribute %q must be empty, got %d values", name, size))
	}
}

func unsupportedValue[T any](name string, value T, allowed []T) error {
	if len(allowed) == 1 {
		return errors.Wrapf(ErrUnsupportedAttributeValue, "value %v for attribute %q, only %v is supported",
			value, name, allowed[0])
	}
	return errors.Wrapf(ErrUnsupportedAttributeValue, "value %v for attribute %q, supported values are %v",
		value, name, allowed)
}

// promoteToInput converts the attribute, if present, into a constant node used as the operator
// input at inputIndex. This is for parameters that older opsets gave as attributes and newer
// ones as inputs, which is the only form the runtime supports.
//
// int and float attributes become scalars, ints become a 1D int32 tensor. The constant is
// named "<operator>:wasnn-<attribute>". It panics with ErrConflictingAttributeAndInput if the
// operator already has an input at inputIndex.
func (r *attrReader) promoteToInput(inputIndex int, attrName string, attrType protos.AttributeProto_AttributeType) {
	attr := r.attr(attrName, attrType)
	if attr == nil {
		return
	}
	if inputIndex < len(r.inputs) && r.inputs[inputIndex] != NoInput {
		panic(errors.Wrapf(ErrConflictingAttributeAndInput,
			"operator has both an attribute %q and the corresponding input #%d", attrName, inputIndex))
	}

	name := r.name + ":wasnn-" + attrName
	var constant *ConstantNode
	var err error
	switch attrType {
	case protos.AttributeProto_INT:
		constant, err = NewConstantNode(name, nil, r.normalizer.clampToInt32([]int64{attr.I}))
	case protos.AttributeProto_FLOAT:
		constant, err = NewConstantNode(name, nil, []float32{attr.F})
	case protos.AttributeProto_INTS:
		constant, err = NewConstantNode(name, []int{len(attr.Ints)}, r.normalizer.clampToInt32(attr.Ints))
	default:
		err = errors.Errorf("unable to generate input from %q attribute of type %s", attrName, attrType)
	}
	if err != nil {
		panic(err)
	}
	idx, err := r.addNode(constant)
	if err != nil {
		panic(err)
	}
	for len(r.inputs) <= inputIndex {
		r.inputs = append(r.inputs, NoInput)
	}
	r.inputs[inputIndex] = idx
}

// unhandled returns the names of the node attributes no rule looked at, in the node order.
func (r *attrReader) unhandled() []string {
	var names []string
	for _, attr := range r.node.Attribute {
		if !r.handled.Has(attr.Name) {
			names = append(names, attr.Name)
		}
	}
	return names
}

// uints converts an integer list attribute to the unsigned form used by the schema.
// It panics with ErrUnsupportedAttributeValue on negative values.
func uints(name string, values []int64) []uint32 {
	if values == nil {
		return nil
	}
	out := make([]uint32, len(values))
	for ii, v := range values {
		if v < 0 || v > 1<<32-1 {
			panic(errors.Wrapf(ErrUnsupportedAttributeValue, "attribute %q has out of range value %d", name, v))
		}
		out[ii] = uint32(v)
	}
	return out
}

// int32s converts an integer list attribute to int32, clamping out of range values.
func (r *attrReader) int32s(values []int64) []int32 {
	if values == nil {
		return nil
	}
	return r.normalizer.clampToInt32(values)
}
