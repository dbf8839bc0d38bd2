package onnx

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"github.com/wasnn/onnx-wasnn/internal/protos"
	"golang.org/x/exp/mmap"
)

// externalDataInfo is where a tensor's bytes live when the model stores them outside the .onnx file.
type externalDataInfo struct {
	location string
	offset   int64
	length   int64 // 0 means "up to the size of the tensor".
}

// isExternal reports whether the tensor data is stored in an external file.
func isExternal(tensor *protos.TensorProto) bool {
	return tensor.DataLocation == protos.TensorProto_EXTERNAL || len(tensor.ExternalData) > 0
}

// parseExternalDataInfo reads the "location", "offset" and "length" entries of a tensor.
// Other keys ("checksum", ...) are ignored.
func parseExternalDataInfo(tensor *protos.TensorProto) (*externalDataInfo, error) {
	info := &externalDataInfo{}
	for _, entry := range tensor.ExternalData {
		var err error
		switch entry.Key {
		case "location":
			info.location = entry.Value
		case "offset":
			info.offset, err = strconv.ParseInt(entry.Value, 10, 64)
		case "length":
			info.length, err = strconv.ParseInt(entry.Value, 10, 64)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "tensor %q has invalid external data %s=%q", tensor.Name, entry.Key, entry.Value)
		}
	}
	if info.location == "" {
		return nil, errors.Errorf("tensor %q is stored externally but has no location", tensor.Name)
	}
	if info.offset < 0 || info.length < 0 {
		return nil, errors.Errorf("tensor %q has negative external data offset/length (%d/%d)",
			tensor.Name, info.offset, info.length)
	}
	return info, nil
}

// ExternalDataReader memory-maps the external data files referenced by a model.
//
// Weights of large models are usually split into one or a few files shared by many tensors,
// so each file is mapped once and kept until Close.
type ExternalDataReader struct {
	baseDir  string
	mappings map[string]*mmap.ReaderAt
	mu       sync.Mutex
}

// NewExternalDataReader creates a reader resolving locations relative to baseDir,
// normally the directory of the .onnx file.
func NewExternalDataReader(baseDir string) *ExternalDataReader {
	return &ExternalDataReader{
		baseDir:  baseDir,
		mappings: make(map[string]*mmap.ReaderAt),
	}
}

func (r *ExternalDataReader) mapping(location string) (*mmap.ReaderAt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.mappings[location]; ok {
		return m, nil
	}
	if r.mappings == nil {
		return nil, errors.New("ExternalDataReader used after Close")
	}
	path := filepath.Join(r.baseDir, location)
	m, err := mmap.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to mmap external data file %q", path)
	}
	r.mappings[location] = m
	return m, nil
}

// ReadInto fills dst with the external bytes described by info.
func (r *ExternalDataReader) ReadInto(info *externalDataInfo, dst []byte) error {
	if r.baseDir == "" {
		return errors.New("base directory is required for reading external data")
	}
	if info.length > 0 && info.length != int64(len(dst)) {
		return errors.Errorf("external data length %d doesn't match tensor size of %d bytes", info.length, len(dst))
	}
	m, err := r.mapping(info.location)
	if err != nil {
		return err
	}
	n, err := m.ReadAt(dst, info.offset)
	if err != nil && err != io.EOF {
		return errors.Wrapf(err, "failed to read %d bytes at offset %d from %q", len(dst), info.offset, info.location)
	}
	if n != len(dst) {
		return errors.Errorf("read %d bytes but expected %d from external data file %q", n, len(dst), info.location)
	}
	return nil
}

// Close unmaps all files. The reader must not be used afterwards.
func (r *ExternalDataReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var firstErr error
	for location, m := range r.mappings {
		if err := m.Close(); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "failed to close mmap for %q", location)
		}
	}
	r.mappings = nil
	return firstErr
}

// readExternalDataDirect reads the external bytes with plain file I/O, for callers without an
// ExternalDataReader.
func readExternalDataDirect(baseDir string, info *externalDataInfo, dst []byte) error {
	if baseDir == "" {
		return errors.New("base directory is required for reading external data")
	}
	if info.length > 0 && info.length != int64(len(dst)) {
		return errors.Errorf("external data length %d doesn't match tensor size of %d bytes", info.length, len(dst))
	}
	path := filepath.Join(baseDir, info.location)
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open external data file %q", path)
	}
	defer f.Close()
	if _, err = f.Seek(info.offset, io.SeekStart); err != nil {
		return errors.Wrapf(err, "failed to seek to offset %d in %q", info.offset, path)
	}
	if n, err := io.ReadFull(f, dst); err != nil {
		return errors.Wrapf(err, "failed to read %d bytes from %q (read %d)", len(dst), path, n)
	}
	return nil
}
