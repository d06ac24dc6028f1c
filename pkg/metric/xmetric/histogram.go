package xmetric

import (
	"fmt"
	"math"
	"sort"

	"github.com/omeyang/xprom/pkg/metric/xatomic"
	"github.com/omeyang/xprom/pkg/metric/xdesc"
	"github.com/omeyang/xprom/pkg/metric/xmodel"
	"github.com/omeyang/xprom/pkg/metric/xvec"
)

// BucketLabel 是直方图桶上界的保留标签名（"less or equal"）。
// 编码器用它展开桶序列，因此直方图自身的标签不得使用该名称。
const BucketLabel = "le"

// HistogramOpts 是创建直方图的参数。
type HistogramOpts struct {
	Opts

	// Buckets 是桶上界序列，必须严格递增。
	// 每个桶的计数包含全部 ≤ 上界的观测（累积语义）。
	// 末尾无需显式 +Inf，隐式追加。留空时使用 DefBuckets。
	Buckets []float64
}

// Histogram 把观测值计入可配置的累积桶，同时维护观测总数
// 和精确观测值之和（未分桶，供下游计算均值）。
//
// 桶计数采用累积存储：一次 Observe 递增所有上界 ≥ 观测值的桶。
// 静止状态下恒有 bucketCounts[i] ≤ bucketCounts[i+1] 且
// +Inf 桶计数等于观测总数。并发读写下的快照是最终一致的，
// 详见包文档。
type Histogram struct {
	desc       *xdesc.Desc
	labelPairs []xdesc.LabelPair

	// upperBounds 不含隐式 +Inf 桶，+Inf 的累积计数即 count。
	upperBounds  []float64
	bucketCounts []xatomic.Value[int64]

	count xatomic.Value[int64]
	sum   xatomic.Value[float64]
}

// NewHistogram 创建直方图。桶校验规则见 NormalizeBuckets；
// 常量标签使用 "le" 时返回 ErrReservedLabel。
func NewHistogram(opts HistogramOpts) (*Histogram, error) {
	desc, err := opts.desc(xdesc.KindHistogram, nil)
	if err != nil {
		return nil, err
	}
	bounds, err := NormalizeBuckets(opts.Buckets)
	if err != nil {
		return nil, err
	}
	return newHistogramWith(desc, bounds, nil)
}

// MustNewHistogram 与 NewHistogram 相同，失败时 panic。
func MustNewHistogram(opts HistogramOpts) *Histogram {
	h, err := NewHistogram(opts)
	if err != nil {
		panic(err)
	}
	return h
}

// newHistogramWith 用已规整的桶上界构造直方图。
// 向量 builder 走此入口，桶只在创建向量时规整一次。
func newHistogramWith(desc *xdesc.Desc, bounds []float64, labelValues []string) (*Histogram, error) {
	if err := checkHistogramLabels(desc); err != nil {
		return nil, err
	}
	if want, got := desc.NumVariableLabels(), len(labelValues); want != got {
		return nil, fmt.Errorf("%w: expected %d label values, got %d", xvec.ErrCardinality, want, got)
	}
	return &Histogram{
		desc:         desc,
		labelPairs:   xmodel.MakeLabelPairs(desc, labelValues),
		upperBounds:  bounds,
		bucketCounts: make([]xatomic.Value[int64], len(bounds)),
	}, nil
}

func checkHistogramLabels(desc *xdesc.Desc) error {
	for _, name := range desc.VariableLabels() {
		if name == BucketLabel {
			return ErrReservedLabel
		}
	}
	for _, pair := range desc.ConstLabelPairs() {
		if pair.Name == BucketLabel {
			return ErrReservedLabel
		}
	}
	return nil
}

// Observe 记录一次观测：递增所有上界 ≥ v 的桶的累积计数，
// 观测总数加 1，观测值之和加 v。
//
// 递增顺序是先总数、再从高桶到低桶：并发读者在任意时刻看到的
// 桶序列保持单调不减，+Inf（即总数）不小于任何有限桶。
func (h *Histogram) Observe(v float64) {
	h.count.Add(1)
	idx := sort.SearchFloat64s(h.upperBounds, v)
	for i := len(h.upperBounds) - 1; i >= idx; i-- {
		h.bucketCounts[i].Add(1)
	}
	h.sum.Add(v)
}

// Sum 返回精确观测值之和。
func (h *Histogram) Sum() float64 {
	return h.sum.Load()
}

// Count 返回观测总数。
func (h *Histogram) Count() uint64 {
	return uint64(h.count.Load())
}

// Desc 实现 xmodel.Metric。
func (h *Histogram) Desc() *xdesc.Desc {
	return h.desc
}

// Write 实现 xmodel.Metric：返回 sum/count/buckets 三元组快照。
// 末桶总是 +Inf，累积计数取观测总数。
//
// 读取顺序是 Observe 递增顺序的镜像：先从低桶到高桶，最后读总数。
// 写入方保证任意时刻总数 ≥ 任何有限桶、高桶 ≥ 低桶，且三者只增不减，
// 因此后读的值不小于先读的值在读取时刻的上界——快照内
// bucketCounts[i] ≤ bucketCounts[i+1] ≤ count 恒成立。
func (h *Histogram) Write() xmodel.Sample {
	buckets := make([]xmodel.Bucket, 0, len(h.upperBounds)+1)
	for i, bound := range h.upperBounds {
		buckets = append(buckets, xmodel.Bucket{
			UpperBound:      bound,
			CumulativeCount: uint64(h.bucketCounts[i].Load()),
		})
	}
	count := uint64(h.count.Load())
	buckets = append(buckets, xmodel.Bucket{
		UpperBound:      math.Inf(+1),
		CumulativeCount: count,
	})

	return xmodel.Sample{
		Labels: h.labelPairs,
		Histogram: &xmodel.HistogramSnapshot{
			SampleSum:   h.sum.Load(),
			SampleCount: count,
			Buckets:     buckets,
		},
	}
}

// Describe 实现 xmodel.Collector。
func (h *Histogram) Describe() []*xdesc.Desc {
	return []*xdesc.Desc{h.desc}
}

// Collect 实现 xmodel.Collector。
func (h *Histogram) Collect() []*xmodel.MetricFamily {
	return []*xmodel.MetricFamily{{
		Name:    h.desc.FQName(),
		Help:    h.desc.Help(),
		Kind:    h.desc.Kind(),
		Metrics: []xmodel.Sample{h.Write()},
	}}
}

// 保证具体指标类型满足采集协议。
var (
	_ xmodel.Metric    = (*Histogram)(nil)
	_ xmodel.Collector = (*Histogram)(nil)
	_ xmodel.Metric    = (*Counter)(nil)
	_ xmodel.Metric    = (*Gauge)(nil)
)
