package xmetric

import (
	"fmt"
	"sort"

	"github.com/omeyang/xprom/pkg/metric/xatomic"
)

// LocalCounter 是单 goroutine 的本地计数器缓冲。
// 写操作没有任何同步开销，Flush 时把累积增量一次性合并到共享计数器。
// 适合单个工作 goroutine 内的超高频计数。非并发安全。
type LocalCounter[T xatomic.Numeric] struct {
	c   *GenericCounter[T]
	val T
}

// Local 返回该计数器的本地缓冲。
func (c *GenericCounter[T]) Local() *LocalCounter[T] {
	return &LocalCounter[T]{c: c}
}

// Inc 把本地计数加 1。
func (l *LocalCounter[T]) Inc() {
	l.val++
}

// Add 把本地计数加 delta。delta 为负时返回 ErrCounterDecrease。
func (l *LocalCounter[T]) Add(delta T) error {
	if delta < 0 {
		return fmt.Errorf("%w: %v", ErrCounterDecrease, delta)
	}
	l.val += delta
	return nil
}

// Value 返回尚未 Flush 的本地累积量。
func (l *LocalCounter[T]) Value() T {
	return l.val
}

// Flush 把本地累积量合并到共享计数器并清零本地值。
// 本地值为 0 时是无操作。
func (l *LocalCounter[T]) Flush() {
	if l.val == 0 {
		return
	}
	l.c.v.cell.Add(l.val)
	l.val = 0
}

// LocalHistogram 是单 goroutine 的本地直方图缓冲，
// 桶语义与共享直方图一致（累积计数）。非并发安全。
type LocalHistogram struct {
	h      *Histogram
	counts []uint64
	count  uint64
	sum    float64
}

// Local 返回该直方图的本地缓冲。
func (h *Histogram) Local() *LocalHistogram {
	return &LocalHistogram{
		h:      h,
		counts: make([]uint64, len(h.upperBounds)),
	}
}

// Observe 在本地记录一次观测。
func (l *LocalHistogram) Observe(v float64) {
	idx := sort.SearchFloat64s(l.h.upperBounds, v)
	for i := idx; i < len(l.counts); i++ {
		l.counts[i]++
	}
	l.count++
	l.sum += v
}

// Clear 丢弃全部本地累积量。
func (l *LocalHistogram) Clear() {
	clear(l.counts)
	l.count = 0
	l.sum = 0
}

// Flush 把本地累积量合并到共享直方图并清零本地值。
// 没有本地观测时是无操作。
// 合并顺序与 Observe 一致：先总数、再从高桶到低桶，
// 并发快照在合并中途同样保持单调。
func (l *LocalHistogram) Flush() {
	if l.count == 0 {
		return
	}

	l.h.count.Add(int64(l.count))
	for i := len(l.counts) - 1; i >= 0; i-- {
		if c := l.counts[i]; c > 0 {
			l.h.bucketCounts[i].Add(int64(c))
		}
	}
	l.h.sum.Add(l.sum)

	l.Clear()
}
