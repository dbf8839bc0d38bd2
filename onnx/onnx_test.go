package onnx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasnn/onnx-wasnn/internal/protos"
)

func TestReadFile(t *testing.T) {
	tmpDir := t.TempDir()
	model := convNetModel()
	model.Proto.ProducerName = "test"
	model.Proto.ProducerVersion = "1.0"
	onnxPath := filepath.Join(tmpDir, "convnet.onnx")
	require.NoError(t, os.WriteFile(onnxPath, protos.Marshal(&model.Proto), 0644))

	m, err := ReadFile(onnxPath)
	require.NoError(t, err)
	assert.Equal(t, tmpDir, m.BaseDir)
	assert.Equal(t, int64(13), m.OpsetVersion())
	assert.Equal(t, []string{"x"}, m.InputsNames())
	assert.Equal(t, []string{"y"}, m.OutputsNames())

	summary := m.String()
	assert.Contains(t, summary, "Producer:\ttest / 1.0")
	assert.Contains(t, summary, `[]string{"Add", "Clip", "Constant", "Conv", "Relu"}`)

	_, err = ReadFile(filepath.Join(tmpDir, "missing.onnx"))
	require.Error(t, err)

	_, err = Parse([]byte{0x0a, 0xff})
	require.Error(t, err)

	// A model without a graph can't be converted.
	_, err = Parse(protos.Marshal(&protos.ModelProto{IrVersion: 8}))
	require.Error(t, err)
}

func TestConvertFile(t *testing.T) {
	tmpDir := t.TempDir()

	// Weights stored in an external file, as large models do.
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "convnet.bin"), float32Bytes(2), 0644))
	model := convNetModel()
	model.Proto.Graph.Initializer[0] = &protos.TensorProto{
		Name:         "w",
		Dims:         []int64{1, 1, 1, 1},
		DataType:     int32(protos.TensorProto_FLOAT),
		DataLocation: protos.TensorProto_EXTERNAL,
		ExternalData: []*protos.StringStringEntryProto{{Key: "location", Value: "convnet.bin"}},
	}
	onnxPath := filepath.Join(tmpDir, "convnet.onnx")
	require.NoError(t, os.WriteFile(onnxPath, protos.Marshal(&model.Proto), 0644))

	for _, disableMmap := range []bool{false, true} {
		outputPath := filepath.Join(tmpDir, "convnet.wasnn")
		require.NoError(t, ConvertFile(onnxPath, outputPath, ConvertOptions{Diagnostics: quietDiagnostics(), DisableMmap: disableMmap}))

		g, err := Deserialize(must.M1(os.ReadFile(outputPath)))
		require.NoError(t, err)
		assert.Equal(t, []float32{2}, g.Nodes[0].(*ConstantNode).Data)
		assert.Len(t, g.Nodes, 13)
		assert.Contains(t, g.String(), "Inputs:\t[x]")
	}

	// No temporary files are left behind.
	entries := must.M1(os.ReadDir(tmpDir))
	assert.Len(t, entries, 3)

	// A failed conversion doesn't create the output.
	model.Proto.Graph.Node[0].OpType = "NonMaxSuppression"
	badPath := filepath.Join(tmpDir, "bad.onnx")
	require.NoError(t, os.WriteFile(badPath, protos.Marshal(&model.Proto), 0644))
	err := ConvertFile(badPath, filepath.Join(tmpDir, "bad.wasnn"), ConvertOptions{Diagnostics: quietDiagnostics()})
	require.ErrorIs(t, err, ErrUnsupportedOperator)
	_, err = os.Stat(filepath.Join(tmpDir, "bad.wasnn"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "model.wasnn")
	require.NoError(t, WriteFile(path, []byte("first")))
	require.NoError(t, WriteFile(path, []byte("second")))
	assert.Equal(t, []byte("second"), must.M1(os.ReadFile(path)))

	require.Error(t, WriteFile(filepath.Join(tmpDir, "missing-dir", "model.wasnn"), nil))
}
