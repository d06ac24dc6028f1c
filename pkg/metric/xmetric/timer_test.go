package xmetric

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimer_ObserveDuration(t *testing.T) {
	h := MustNewHistogram(HistogramOpts{
		Opts: Opts{Name: "op_duration_seconds"},
	})

	timer := h.StartTimer()
	time.Sleep(10 * time.Millisecond)
	d := timer.ObserveDuration()

	assert.GreaterOrEqual(t, d, 10*time.Millisecond)
	assert.Equal(t, uint64(1), h.Count())
	assert.InDelta(t, d.Seconds(), h.Sum(), 1e-9)
}

func TestTimer_OneShot(t *testing.T) {
	h := MustNewHistogram(HistogramOpts{
		Opts: Opts{Name: "op_duration_seconds"},
	})

	timer := h.StartTimer()
	first := timer.ObserveDuration()
	second := timer.ObserveDuration()

	require.Equal(t, uint64(1), h.Count(), "重复结算不得再次观测")
	assert.GreaterOrEqual(t, second, first)
	assert.InDelta(t, first.Seconds(), h.Sum(), 1e-9, "直方图记录的是首次时长")
}
