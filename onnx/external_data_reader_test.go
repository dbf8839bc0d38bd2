package onnx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasnn/onnx-wasnn/internal/protos"
)

func TestParseExternalDataInfo(t *testing.T) {
	t.Run("NotExternal", func(t *testing.T) {
		assert.False(t, isExternal(&protos.TensorProto{Name: "test"}))
		assert.True(t, isExternal(&protos.TensorProto{Name: "test", DataLocation: protos.TensorProto_EXTERNAL}))
	})

	t.Run("AllFields", func(t *testing.T) {
		proto := &protos.TensorProto{
			Name: "test",
			ExternalData: []*protos.StringStringEntryProto{
				{Key: "location", Value: "weights.bin"},
				{Key: "offset", Value: "1024"},
				{Key: "length", Value: "4096"},
				{Key: "checksum", Value: "abc123"}, // Ignored.
			},
		}
		require.True(t, isExternal(proto))
		info, err := parseExternalDataInfo(proto)
		require.NoError(t, err)
		assert.Equal(t, &externalDataInfo{location: "weights.bin", offset: 1024, length: 4096}, info)
	})

	t.Run("MissingLocation", func(t *testing.T) {
		proto := &protos.TensorProto{
			Name:         "test",
			ExternalData: []*protos.StringStringEntryProto{{Key: "offset", Value: "1024"}},
		}
		_, err := parseExternalDataInfo(proto)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no location")
	})

	t.Run("InvalidOffset", func(t *testing.T) {
		proto := &protos.TensorProto{
			Name: "test",
			ExternalData: []*protos.StringStringEntryProto{
				{Key: "location", Value: "weights.bin"},
				{Key: "offset", Value: "not-a-number"},
			},
		}
		_, err := parseExternalDataInfo(proto)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "offset")
	})
}

func TestExternalDataReader(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "data.bin"), content, 0644))

	r := NewExternalDataReader(tmpDir)
	dst := make([]byte, 4)
	require.NoError(t, r.ReadInto(&externalDataInfo{location: "data.bin", offset: 2}, dst))
	assert.Equal(t, []byte{2, 3, 4, 5}, dst)

	// The file is mapped once.
	require.NoError(t, r.ReadInto(&externalDataInfo{location: "data.bin", offset: 6, length: 4}, dst))
	assert.Equal(t, []byte{6, 7, 8, 9}, dst)
	assert.Len(t, r.mappings, 1)

	err := r.ReadInto(&externalDataInfo{location: "data.bin", length: 8}, dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doesn't match tensor size")

	err = r.ReadInto(&externalDataInfo{location: "data.bin", offset: 8}, dst)
	require.Error(t, err)

	err = r.ReadInto(&externalDataInfo{location: "missing.bin"}, dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to mmap")

	require.NoError(t, r.Close())
	require.Error(t, r.ReadInto(&externalDataInfo{location: "data.bin"}, dst))

	// Without mmap.
	require.NoError(t, readExternalDataDirect(tmpDir, &externalDataInfo{location: "data.bin", offset: 1}, dst))
	assert.Equal(t, []byte{1, 2, 3, 4}, dst)
	require.Error(t, readExternalDataDirect("", &externalDataInfo{location: "data.bin"}, dst))
}
