package onnx

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gomlx/gomlx/pkg/support/sets"
	"github.com/wasnn/onnx-wasnn/internal/schema"
)

// String implements fmt.Stringer, and pretty prints model information.
func (m *Model) String() string {
	var buf bytes.Buffer
	w := func(format string, args ...any) {
		if len(args) == 0 {
			buf.WriteString(format)
		} else {
			buf.WriteString(fmt.Sprintf(format, args...))
		}
	}
	w("ONNX Model:\n")
	if m.Proto.DocString != "" {
		w("%s\n", m.Proto.DocString)
	}
	if m.Proto.ModelVersion != 0 {
		w("\tVersion:\t%d\n", m.Proto.ModelVersion)
	}
	if m.Proto.ProducerName != "" {
		w("\tProducer:\t%s / %s\n", m.Proto.ProducerName, m.Proto.ProducerVersion)
	}
	w("\tIR Version:\t%d\n", m.Proto.IrVersion)
	w("\tOperator Sets:\t[")
	for ii, opSetId := range m.Proto.OpsetImport {
		if ii > 0 {
			w(", ")
		}
		if opSetId.Domain != "" {
			w("v%d (%s)", opSetId.Version, opSetId.Domain)
		} else {
			w("v%d", opSetId.Version)
		}
	}
	w("]\n")

	w("\t# nodes:\t%d\n", len(m.Proto.Graph.Node))
	w("\t# initializers:\t%d\n", len(m.Proto.Graph.Initializer))
	opTypesSet := sets.Make[string]()
	for _, n := range m.Proto.Graph.Node {
		opTypesSet.Insert(n.GetOpType())
	}
	w("\tOp types:\t%#v\n", slices.Sorted(maps.Keys(opTypesSet)))
	w("\tInputs:\t%v\n", m.InputsNames())
	w("\tOutputs:\t%v\n", m.OutputsNames())

	if len(m.Proto.MetadataProps) > 0 {
		w("\tMetadata: [")
		for ii, prop := range m.Proto.MetadataProps {
			if ii > 0 {
				w(", ")
			}
			w("%s=%s", prop.Key, prop.Value)
		}
		w("]\n")
	}
	return buf.String()
}

// String implements fmt.Stringer, and pretty prints a summary of the converted graph.
func (g *Graph) String() string {
	var buf bytes.Buffer
	var numConstants, numValues, numWeights int
	opCounts := make(map[schema.OperatorType]int)
	for _, node := range g.Nodes {
		switch n := node.(type) {
		case *ConstantNode:
			numConstants++
			numWeights += n.Len()
		case *ValueNode:
			numValues++
		case *OperatorNode:
			opCounts[n.OpType]++
		}
	}
	nodeNames := func(indices []int) string {
		return strings.Join(sliceMap(indices, func(idx int) string {
			if idx < 0 || idx >= len(g.Nodes) {
				return fmt.Sprintf("#%d?", idx)
			}
			return g.Nodes[idx].Name()
		}), ", ")
	}
	fmt.Fprintf(&buf, "wasnn Graph:\n")
	fmt.Fprintf(&buf, "\t# nodes:\t%d\n", len(g.Nodes))
	fmt.Fprintf(&buf, "\t# constants:\t%d (%d elements)\n", numConstants, numWeights)
	fmt.Fprintf(&buf, "\t# values:\t%d\n", numValues)
	opTypes := slices.SortedFunc(maps.Keys(opCounts), func(a, b schema.OperatorType) int {
		return strings.Compare(a.String(), b.String())
	})
	fmt.Fprintf(&buf, "\tOperators:\t[")
	for ii, opType := range opTypes {
		if ii > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s×%d", opType, opCounts[opType])
	}
	buf.WriteString("]\n")
	fmt.Fprintf(&buf, "\tInputs:\t[%s]\n", nodeNames(g.Inputs))
	fmt.Fprintf(&buf, "\tOutputs:\t[%s]\n", nodeNames(g.Outputs))
	return buf.String()
}
