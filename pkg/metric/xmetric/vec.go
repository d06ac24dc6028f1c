package xmetric

import (
	"github.com/omeyang/xprom/pkg/metric/xatomic"
	"github.com/omeyang/xprom/pkg/metric/xdesc"
	"github.com/omeyang/xprom/pkg/metric/xvec"
)

// CounterVec 是按标签维度展开的浮点计数器集合。
type CounterVec = xvec.Vec[*Counter]

// IntCounterVec 是按标签维度展开的整数计数器集合。
type IntCounterVec = xvec.Vec[*IntCounter]

// GaugeVec 是按标签维度展开的浮点瞬时值集合。
type GaugeVec = xvec.Vec[*Gauge]

// IntGaugeVec 是按标签维度展开的整数瞬时值集合。
type IntGaugeVec = xvec.Vec[*IntGauge]

// HistogramVec 是按标签维度展开的直方图集合，所有子直方图共享桶配置。
type HistogramVec = xvec.Vec[*Histogram]

// NewCounterVec 创建计数器向量，按 labelNames 声明的变量标签分维。
// 至少需要一个标签名。
func NewCounterVec(opts Opts, labelNames []string, vopts ...xvec.Option) (*CounterVec, error) {
	return newCounterVec[float64](opts, labelNames, vopts...)
}

// NewIntCounterVec 创建整数计数器向量。
func NewIntCounterVec(opts Opts, labelNames []string, vopts ...xvec.Option) (*IntCounterVec, error) {
	return newCounterVec[int64](opts, labelNames, vopts...)
}

func newCounterVec[T xatomic.Numeric](opts Opts, labelNames []string, vopts ...xvec.Option) (*xvec.Vec[*GenericCounter[T]], error) {
	desc, err := opts.desc(xdesc.KindCounter, labelNames)
	if err != nil {
		return nil, err
	}
	return xvec.New(desc, func(labelValues []string) (*GenericCounter[T], error) {
		return newGenericCounterWith[T](desc, labelValues)
	}, vopts...)
}

// NewGaugeVec 创建瞬时值向量。
func NewGaugeVec(opts Opts, labelNames []string, vopts ...xvec.Option) (*GaugeVec, error) {
	return newGaugeVec[float64](opts, labelNames, vopts...)
}

// NewIntGaugeVec 创建整数瞬时值向量。
func NewIntGaugeVec(opts Opts, labelNames []string, vopts ...xvec.Option) (*IntGaugeVec, error) {
	return newGaugeVec[int64](opts, labelNames, vopts...)
}

func newGaugeVec[T xatomic.Numeric](opts Opts, labelNames []string, vopts ...xvec.Option) (*xvec.Vec[*GenericGauge[T]], error) {
	desc, err := opts.desc(xdesc.KindGauge, labelNames)
	if err != nil {
		return nil, err
	}
	return xvec.New(desc, func(labelValues []string) (*GenericGauge[T], error) {
		return newGenericGaugeWith[T](desc, labelValues)
	}, vopts...)
}

// NewHistogramVec 创建直方图向量。桶配置在创建向量时规整一次，
// 所有子直方图共享同一份上界序列。
func NewHistogramVec(opts HistogramOpts, labelNames []string, vopts ...xvec.Option) (*HistogramVec, error) {
	desc, err := opts.desc(xdesc.KindHistogram, labelNames)
	if err != nil {
		return nil, err
	}
	if err := checkHistogramLabels(desc); err != nil {
		return nil, err
	}
	bounds, err := NormalizeBuckets(opts.Buckets)
	if err != nil {
		return nil, err
	}
	return xvec.New(desc, func(labelValues []string) (*Histogram, error) {
		return newHistogramWith(desc, bounds, labelValues)
	}, vopts...)
}
