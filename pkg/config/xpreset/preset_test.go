package xpreset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
http_latency:
  bounds: [0.005, 0.01, 0.05, 0.1, 0.5, 1]
queue_wait:
  linear:
    start: -15
    width: 5
    count: 6
payload_bytes:
  exponential:
    start: 100
    factor: 1.2
    count: 3
`

// =============================================================================
// 加载
// =============================================================================

func TestNewFromBytes_YAML(t *testing.T) {
	presets, err := NewFromBytes([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 3, presets.Len())
	assert.Equal(t, []string{"http_latency", "payload_bytes", "queue_wait"}, presets.Names())

	bounds, err := presets.Buckets("http_latency")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1}, bounds)

	linear, err := presets.Buckets("queue_wait")
	require.NoError(t, err)
	assert.Equal(t, []float64{-15, -10, -5, 0, 5, 10}, linear)

	exp, err := presets.Buckets("payload_bytes")
	require.NoError(t, err)
	require.Len(t, exp, 3)
	assert.InDelta(t, 100.0, exp[0], 1e-9)
	assert.InDelta(t, 120.0, exp[1], 1e-9)
	assert.InDelta(t, 144.0, exp[2], 1e-9)
}

func TestNewFromBytes_JSON(t *testing.T) {
	data := []byte(`{"rpc": {"bounds": [1, 2, 3]}}`)
	presets, err := NewFromBytes(data, FormatJSON)
	require.NoError(t, err)

	bounds, err := presets.Buckets("rpc")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, bounds)
}

func TestNewFromBytes_Empty(t *testing.T) {
	presets, err := NewFromBytes(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 0, presets.Len())

	_, err = presets.Buckets("anything")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestNew_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buckets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	presets, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, 3, presets.Len())
}

func TestNew_PathErrors(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = New("buckets.toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrLoadFailed)
}

// =============================================================================
// 校验
// =============================================================================

func TestNewFromBytes_InvalidPresets(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"空声明", "empty: {}"},
		{"多种写法并存", "both:\n  bounds: [1]\n  linear: {start: 0, width: 1, count: 2}"},
		{"桶未排序", "unsorted:\n  bounds: [5, 1]"},
		{"linear 宽度非法", "bad_linear:\n  linear: {start: 0, width: 0, count: 3}"},
		{"exponential 因子非法", "bad_exp:\n  exponential: {start: 1, factor: 1, count: 3}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFromBytes([]byte(tt.yaml), FormatYAML)
			assert.ErrorIs(t, err, ErrInvalidPreset)
		})
	}
}

func TestNewFromBytes_ParseError(t *testing.T) {
	_, err := NewFromBytes([]byte("{not yaml: ["), FormatYAML)
	assert.ErrorIs(t, err, ErrParseFailed)

	_, err = NewFromBytes([]byte("x: 1"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

// =============================================================================
// 不可变性
// =============================================================================

func TestBuckets_DefensiveCopy(t *testing.T) {
	presets, err := NewFromBytes([]byte("rpc:\n  bounds: [1, 2, 3]"), FormatYAML)
	require.NoError(t, err)

	first, err := presets.Buckets("rpc")
	require.NoError(t, err)
	first[0] = -999

	second, err := presets.Buckets("rpc")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, second, "调用方的修改不得污染预设")
}
