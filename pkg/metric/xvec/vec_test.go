package xvec

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xprom/pkg/metric/xatomic"
	"github.com/omeyang/xprom/pkg/metric/xdesc"
	"github.com/omeyang/xprom/pkg/metric/xmodel"
)

// stubMetric 是测试用的最小 Metric 实现。
type stubMetric struct {
	desc   *xdesc.Desc
	labels []xdesc.LabelPair
	val    xatomic.Value[float64]
}

func (m *stubMetric) Desc() *xdesc.Desc { return m.desc }

func (m *stubMetric) Write() xmodel.Sample {
	return xmodel.Sample{
		Labels: m.labels,
		Gauge:  &xmodel.SimpleValue{Value: m.val.Load()},
	}
}

func newTestVec(t *testing.T, labels ...string) *Vec[*stubMetric] {
	t.Helper()
	desc := xdesc.MustNewDesc("test_metric", "help", labels, nil, xdesc.KindGauge)
	v, err := New[*stubMetric](desc, func(vals []string) (*stubMetric, error) {
		return &stubMetric{desc: desc, labels: xmodel.MakeLabelPairs(desc, vals)}, nil
	})
	require.NoError(t, err)
	return v
}

// =============================================================================
// 构造
// =============================================================================

func TestNew_Validation(t *testing.T) {
	descNoLabels := xdesc.MustNewDesc("m", "h", nil, nil, xdesc.KindGauge)
	_, err := New[*stubMetric](descNoLabels, func([]string) (*stubMetric, error) { return nil, nil })
	assert.ErrorIs(t, err, ErrNoVariableLabels)

	desc := xdesc.MustNewDesc("m", "h", []string{"l"}, nil, xdesc.KindGauge)
	_, err = New[*stubMetric](desc, nil)
	assert.ErrorIs(t, err, ErrNilBuilder)
}

// =============================================================================
// GetWith / With
// =============================================================================

func TestVec_GetWith_Idempotent(t *testing.T) {
	v := newTestVec(t, "l1", "l2")

	a, err := v.GetWith("v1", "v2")
	require.NoError(t, err)
	b, err := v.GetWith("v1", "v2")
	require.NoError(t, err)
	assert.Same(t, a, b, "同一元组必须解析到同一个子指标实例")

	c, err := v.GetWith("v1", "other")
	require.NoError(t, err)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, v.Len())
}

func TestVec_GetWith_Cardinality(t *testing.T) {
	v := newTestVec(t, "l1", "l2")

	_, err := v.GetWith("v1")
	assert.ErrorIs(t, err, ErrCardinality)

	_, err = v.GetWith("v1", "v2", "v3")
	assert.ErrorIs(t, err, ErrCardinality)

	// 被拒绝的调用不创建子指标。
	assert.Equal(t, 0, v.Len())
}

func TestVec_GetWith_InvalidLabelValue(t *testing.T) {
	v := newTestVec(t, "l1")

	_, err := v.GetWith("\xff\xfe")
	assert.ErrorIs(t, err, ErrInvalidLabelValue)
	assert.Equal(t, 0, v.Len())
}

func TestVec_WithLabelValueCheck(t *testing.T) {
	desc := xdesc.MustNewDesc("m", "h", []string{"l"}, nil, xdesc.KindGauge)
	errTooLong := errors.New("label value too long")

	v, err := New[*stubMetric](desc,
		func(vals []string) (*stubMetric, error) {
			return &stubMetric{desc: desc, labels: xmodel.MakeLabelPairs(desc, vals)}, nil
		},
		WithLabelValueCheck(func(val string) error {
			if len(val) > 3 {
				return errTooLong
			}
			return nil
		}),
	)
	require.NoError(t, err)

	_, err = v.GetWith("okay")
	assert.ErrorIs(t, err, errTooLong)

	_, err = v.GetWith("ok")
	assert.NoError(t, err)
}

func TestVec_With_Panics(t *testing.T) {
	v := newTestVec(t, "l1")
	assert.Panics(t, func() { v.With("a", "b") })
	assert.NotPanics(t, func() { v.With("a") })
}

func TestVec_BuilderError(t *testing.T) {
	desc := xdesc.MustNewDesc("m", "h", []string{"l"}, nil, xdesc.KindGauge)
	errBuild := errors.New("build failed")
	v, err := New[*stubMetric](desc, func([]string) (*stubMetric, error) {
		return nil, errBuild
	})
	require.NoError(t, err)

	_, err = v.GetWith("a")
	assert.ErrorIs(t, err, errBuild)
	assert.Equal(t, 0, v.Len(), "构造失败不得留下子指标")
}

// =============================================================================
// 并发首次创建：单胜者
// =============================================================================

func TestVec_ConcurrentGetWith_SingleWinner(t *testing.T) {
	desc := xdesc.MustNewDesc("m", "h", []string{"l1", "l2"}, nil, xdesc.KindGauge)

	var built atomic.Int64
	v, err := New[*stubMetric](desc, func(vals []string) (*stubMetric, error) {
		built.Add(1)
		return &stubMetric{desc: desc, labels: xmodel.MakeLabelPairs(desc, vals)}, nil
	})
	require.NoError(t, err)

	const goroutines = 64
	results := make([]*stubMetric, goroutines)

	var start, done sync.WaitGroup
	start.Add(1)
	for i := 0; i < goroutines; i++ {
		i := i
		done.Add(1)
		go func() {
			defer done.Done()
			start.Wait()
			m, err := v.GetWith("a", "b")
			require.NoError(t, err)
			results[i] = m
		}()
	}
	start.Done()
	done.Wait()

	assert.Equal(t, int64(1), built.Load(), "并发首次创建必须恰好构造一次")
	for _, m := range results {
		assert.Same(t, results[0], m, "所有调用方必须拿到同一个实例")
	}
	assert.Equal(t, 1, v.Len())
}

// =============================================================================
// Delete / Reset
// =============================================================================

func TestVec_Delete(t *testing.T) {
	v := newTestVec(t, "l1", "l2")
	v.With("v1", "v2")

	assert.False(t, v.Delete("v1", "missing"))
	assert.False(t, v.Delete("v1"), "基数不符时 Delete 返回 false 而非报错")
	assert.True(t, v.Delete("v1", "v2"))
	assert.False(t, v.Delete("v1", "v2"), "重复删除是无操作")
	assert.Equal(t, 0, v.Len())
}

func TestVec_DeleteThenRecreate(t *testing.T) {
	v := newTestVec(t, "l")
	a := v.With("x")
	require.True(t, v.Delete("x"))

	b := v.With("x")
	assert.NotSame(t, a, b, "删除后重新创建产生新实例")
}

func TestVec_Reset(t *testing.T) {
	v := newTestVec(t, "l")
	v.With("a")
	v.With("b")
	require.Equal(t, 2, v.Len())

	v.Reset()
	assert.Equal(t, 0, v.Len())
	assert.Empty(t, v.Collect()[0].Metrics)
}

// =============================================================================
// Collect
// =============================================================================

func TestVec_Collect(t *testing.T) {
	v := newTestVec(t, "code")
	v.With("500").val.Set(1)
	v.With("200").val.Set(42)

	families := v.Collect()
	require.Len(t, families, 1)

	fam := families[0]
	assert.Equal(t, "test_metric", fam.Name)
	assert.Equal(t, xdesc.KindGauge, fam.Kind)
	require.Len(t, fam.Metrics, 2)

	// 样本按标签集排序，"200" 在 "500" 之前。
	assert.Equal(t, "200", fam.Metrics[0].Labels[0].Value)
	assert.InDelta(t, 42.0, fam.Metrics[0].Gauge.Value, 0)
	assert.Equal(t, "500", fam.Metrics[1].Labels[0].Value)
	assert.InDelta(t, 1.0, fam.Metrics[1].Gauge.Value, 0)
}

func TestVec_Describe(t *testing.T) {
	v := newTestVec(t, "l")
	descs := v.Describe()
	require.Len(t, descs, 1)
	assert.Equal(t, "test_metric", descs[0].FQName())
}
