package xmetric

import (
	"github.com/omeyang/xprom/pkg/metric/xatomic"
	"github.com/omeyang/xprom/pkg/metric/xdesc"
	"github.com/omeyang/xprom/pkg/metric/xmodel"
)

// GenericGauge 是 Gauge 和 IntGauge 的底层实现：
// 可任意增减赋值的瞬时值，没有单调性约束。
type GenericGauge[T xatomic.Numeric] struct {
	v *value[T]
}

// Gauge 是浮点瞬时值。
type Gauge = GenericGauge[float64]

// IntGauge 是整数瞬时值。
type IntGauge = GenericGauge[int64]

// NewGauge 创建浮点瞬时值。
func NewGauge(opts Opts) (*Gauge, error) {
	return newGenericGauge[float64](opts)
}

// NewIntGauge 创建整数瞬时值。
func NewIntGauge(opts Opts) (*IntGauge, error) {
	return newGenericGauge[int64](opts)
}

// MustNewGauge 与 NewGauge 相同，失败时 panic。
func MustNewGauge(opts Opts) *Gauge {
	g, err := NewGauge(opts)
	if err != nil {
		panic(err)
	}
	return g
}

func newGenericGauge[T xatomic.Numeric](opts Opts) (*GenericGauge[T], error) {
	desc, err := opts.desc(xdesc.KindGauge, nil)
	if err != nil {
		return nil, err
	}
	return newGenericGaugeWith[T](desc, nil)
}

func newGenericGaugeWith[T xatomic.Numeric](desc *xdesc.Desc, labelValues []string) (*GenericGauge[T], error) {
	v, err := newValue[T](desc, labelValues)
	if err != nil {
		return nil, err
	}
	return &GenericGauge[T]{v: v}, nil
}

// Set 把瞬时值设置为 val。
func (g *GenericGauge[T]) Set(val T) {
	g.v.cell.Set(val)
}

// Inc 把瞬时值加 1。
func (g *GenericGauge[T]) Inc() {
	g.v.cell.Add(1)
}

// Dec 把瞬时值减 1。
func (g *GenericGauge[T]) Dec() {
	g.v.cell.Add(-1)
}

// Add 把瞬时值加 delta。delta 可以为负。
func (g *GenericGauge[T]) Add(delta T) {
	g.v.cell.Add(delta)
}

// Sub 把瞬时值减 delta。
func (g *GenericGauge[T]) Sub(delta T) {
	g.v.cell.Add(-delta)
}

// Value 返回当前值。
func (g *GenericGauge[T]) Value() T {
	return g.v.cell.Load()
}

// Desc 实现 xmodel.Metric。
func (g *GenericGauge[T]) Desc() *xdesc.Desc {
	return g.v.desc
}

// Write 实现 xmodel.Metric。
func (g *GenericGauge[T]) Write() xmodel.Sample {
	return g.v.sample()
}

// Describe 实现 xmodel.Collector。
func (g *GenericGauge[T]) Describe() []*xdesc.Desc {
	return []*xdesc.Desc{g.v.desc}
}

// Collect 实现 xmodel.Collector。
func (g *GenericGauge[T]) Collect() []*xmodel.MetricFamily {
	return []*xmodel.MetricFamily{g.v.family()}
}
