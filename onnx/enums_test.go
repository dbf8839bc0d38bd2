package onnx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasnn/onnx-wasnn/internal/schema"
)

func TestSnakeToPascal(t *testing.T) {
	assert.Equal(t, "RoundPreferFloor", snakeToPascal("round_prefer_floor"))
	assert.Equal(t, "Forward", snakeToPascal("forward"))
	assert.Equal(t, "HalfPixel", snakeToPascal("half_pixel"))
	assert.Equal(t, "", snakeToPascal(""))
}

func TestEnumDomain(t *testing.T) {
	v, err := nearestModeDomain.lookup("round_prefer_floor")
	require.NoError(t, err)
	assert.Equal(t, schema.NearestModeRoundPreferFloor, v)

	v2, err := rnnDirectionDomain.lookup("bidirectional")
	require.NoError(t, err)
	assert.Equal(t, schema.RNNDirectionBidirectional, v2)

	// "None" is stored with the reserved-word escape, and found through it.
	_, found := scatterReductionDomain.variants["None"]
	assert.False(t, found)
	v3, err := scatterReductionDomain.lookup("none")
	require.NoError(t, err)
	assert.Equal(t, schema.ScatterReductionNone, v3)

	_, err = resizeModeDomain.lookup("cubic_spline")
	require.ErrorIs(t, err, ErrUnsupportedEnumValue)
	assert.Contains(t, err.Error(), "ResizeMode")
}
