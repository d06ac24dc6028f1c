package xatomic

import (
	"math"
	"sync/atomic"
)

// Numeric 约束指标值的数值类型。
// 整数指标（IntCounter 等）使用 int64，浮点指标使用 float64。
type Numeric interface {
	int64 | float64
}

// Value 是单个数值单元，支持无锁的增减、赋值和读取。
// 零值可用，初始值为 0。所有方法都是并发安全的。
// Value 不可复制：内含 atomic.Uint64。
type Value[T Numeric] struct {
	bits atomic.Uint64
}

// Load 读取当前值。
func (v *Value[T]) Load() T {
	return fromBits[T](v.bits.Load())
}

// Set 将值设置为 val，覆盖之前的任何写入。
func (v *Value[T]) Set(val T) {
	v.bits.Store(toBits(val))
}

// Add 原子地加上 delta。delta 可以为负。
//
// int64 退化为一次原子加法；float64 使用 CAS 循环，
// 竞争激烈时可能重试，但不会阻塞调用方。
func (v *Value[T]) Add(delta T) {
	switch d := any(delta).(type) {
	case int64:
		// uint64 加法与 int64 补码加法按位等价，负数同样正确。
		v.bits.Add(uint64(d))
	case float64:
		for {
			old := v.bits.Load()
			next := math.Float64bits(math.Float64frombits(old) + d)
			if v.bits.CompareAndSwap(old, next) {
				return
			}
		}
	}
}

func toBits[T Numeric](val T) uint64 {
	switch x := any(val).(type) {
	case int64:
		return uint64(x)
	case float64:
		return math.Float64bits(x)
	}
	// Numeric 只有两个成员，不可达。
	panic("xatomic: unsupported numeric type")
}

func fromBits[T Numeric](bits uint64) T {
	var zero T
	if _, ok := any(zero).(int64); ok {
		return T(int64(bits))
	}
	return T(math.Float64frombits(bits))
}
