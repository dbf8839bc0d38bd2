package onnx

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ConvertFile converts the ONNX model in onnxPath and writes the wasnn model to outputPath.
//
// The output file is only created if the whole conversion succeeds.
func ConvertFile(onnxPath, outputPath string, opts ConvertOptions) error {
	model, err := ReadFile(onnxPath)
	if err != nil {
		return err
	}
	klog.V(1).Infof("Converting %s (opset %d, %d operators, %d initializers)", onnxPath,
		model.OpsetVersion(), len(model.Proto.Graph.Node), len(model.Proto.Graph.Initializer))
	graph, err := model.Convert(opts)
	if err != nil {
		return err
	}
	buf, err := graph.Serialize()
	if err != nil {
		return err
	}
	return WriteFile(outputPath, buf)
}

// WriteFile writes the serialized model to path. It writes to a temporary file in the same
// directory first, and renames it, so readers never see a partially written model.
func WriteFile(path string, contents []byte) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary file in %s", dir)
	}
	tmpPath := f.Name()
	_, err = f.Write(contents)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpPath, path)
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, "failed to write model to %s", path)
	}
	klog.V(1).Infof("Wrote %d bytes to %s", len(contents), path)
	return nil
}
