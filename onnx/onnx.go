// Package onnx converts ONNX models to the wasnn model format.
//
//   - Parse: converts a serialized ONNX ModelProto to a Model.
//   - ReadFile: reads a file and calls Parse. It returns a Model.
//   - Model.Convert: builds the wasnn Graph of the model: constants, value placeholders and operators.
//   - Serialize: encodes a Graph as a wasnn FlatBuffers model.
//   - ConvertFile: all of the above, from an .onnx file to a .wasnn file.
package onnx

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/wasnn/onnx-wasnn/internal/protos"
)

// Model represents a parsed ONNX file.
type Model struct {
	Proto protos.ModelProto

	// BaseDir is the directory of the model file, used to locate tensors stored in external files.
	// It is set by ReadFile.
	BaseDir string
}

// Parse parses an ONNX model.
func Parse(contents []byte) (*Model, error) {
	m := &Model{}
	err := protos.Unmarshal(contents, &m.Proto)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse ONNX model proto")
	}
	if m.Proto.Graph == nil {
		return nil, errors.New("ONNX model has no graph")
	}
	return m, nil
}

// ReadFile parses an ONNX model file.
func ReadFile(filePath string) (*Model, error) {
	contents, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read ONNX model file in %s", filePath)
	}
	m, err := Parse(contents)
	if err != nil {
		return nil, errors.WithMessagef(err, "model file %s", filePath)
	}
	m.BaseDir = filepath.Dir(filePath)
	return m, nil
}

// OpsetVersion returns the version of the default ("ai.onnx") operator set the model uses,
// or 0 if it doesn't declare one.
func (m *Model) OpsetVersion() int64 {
	for _, opset := range m.Proto.OpsetImport {
		if opset.Domain == "" || opset.Domain == "ai.onnx" {
			return opset.Version
		}
	}
	return 0
}

// InputsNames returns the names of the model inputs, as declared in the graph.
func (m *Model) InputsNames() []string {
	return sliceMap(m.Proto.Graph.Input, func(info *protos.ValueInfoProto) string { return info.Name })
}

// OutputsNames returns the names of the model outputs.
func (m *Model) OutputsNames() []string {
	return sliceMap(m.Proto.Graph.Output, func(info *protos.ValueInfoProto) string { return info.Name })
}

// sliceMap executes the given function sequentially for every element on in, and returns a mapped slice.
func sliceMap[In, Out any](in []In, fn func(e In) Out) (out []Out) {
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return
}
