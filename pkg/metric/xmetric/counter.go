package xmetric

import (
	"fmt"

	"github.com/omeyang/xprom/pkg/metric/xatomic"
	"github.com/omeyang/xprom/pkg/metric/xdesc"
	"github.com/omeyang/xprom/pkg/metric/xmodel"
)

// GenericCounter 是 Counter 和 IntCounter 的底层实现：
// 单调不减的计数器，负增量被拒绝且不改变当前值。
type GenericCounter[T xatomic.Numeric] struct {
	v *value[T]
}

// Counter 是浮点计数器。
type Counter = GenericCounter[float64]

// IntCounter 是整数计数器。值全为整数时性能优于 Counter：
// 整数路径是单次原子加法，没有 CAS 重试。
type IntCounter = GenericCounter[int64]

// NewCounter 创建浮点计数器。
func NewCounter(opts Opts) (*Counter, error) {
	return newGenericCounter[float64](opts)
}

// NewIntCounter 创建整数计数器。
func NewIntCounter(opts Opts) (*IntCounter, error) {
	return newGenericCounter[int64](opts)
}

// MustNewCounter 与 NewCounter 相同，失败时 panic。
func MustNewCounter(opts Opts) *Counter {
	c, err := NewCounter(opts)
	if err != nil {
		panic(err)
	}
	return c
}

func newGenericCounter[T xatomic.Numeric](opts Opts) (*GenericCounter[T], error) {
	desc, err := opts.desc(xdesc.KindCounter, nil)
	if err != nil {
		return nil, err
	}
	return newGenericCounterWith[T](desc, nil)
}

func newGenericCounterWith[T xatomic.Numeric](desc *xdesc.Desc, labelValues []string) (*GenericCounter[T], error) {
	v, err := newValue[T](desc, labelValues)
	if err != nil {
		return nil, err
	}
	return &GenericCounter[T]{v: v}, nil
}

// Inc 把计数器加 1。
func (c *GenericCounter[T]) Inc() {
	c.v.cell.Add(1)
}

// Add 把计数器加 delta。delta 为负时返回 ErrCounterDecrease，当前值不变。
func (c *GenericCounter[T]) Add(delta T) error {
	if delta < 0 {
		return fmt.Errorf("%w: %v", ErrCounterDecrease, delta)
	}
	c.v.cell.Add(delta)
	return nil
}

// MustAdd 与 Add 相同，delta 为负时 panic。
// 用于增量恒为非负、出错即编程错误的热路径。
func (c *GenericCounter[T]) MustAdd(delta T) {
	if err := c.Add(delta); err != nil {
		panic(err)
	}
}

// Value 返回当前计数。
func (c *GenericCounter[T]) Value() T {
	return c.v.cell.Load()
}

// Desc 实现 xmodel.Metric。
func (c *GenericCounter[T]) Desc() *xdesc.Desc {
	return c.v.desc
}

// Write 实现 xmodel.Metric。
func (c *GenericCounter[T]) Write() xmodel.Sample {
	return c.v.sample()
}

// Describe 实现 xmodel.Collector。
func (c *GenericCounter[T]) Describe() []*xdesc.Desc {
	return []*xdesc.Desc{c.v.desc}
}

// Collect 实现 xmodel.Collector。
func (c *GenericCounter[T]) Collect() []*xmodel.MetricFamily {
	return []*xmodel.MetricFamily{c.v.family()}
}
