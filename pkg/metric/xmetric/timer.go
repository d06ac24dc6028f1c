package xmetric

import (
	"sync/atomic"
	"time"
)

// Timer 对一次操作计时，结束时把耗时（秒）记入直方图。
// 一个 Timer 只观测一次：重复调用 ObserveDuration 只有首次生效。
type Timer struct {
	h     *Histogram
	start time.Time
	done  atomic.Bool
}

// StartTimer 返回一个从当前时刻开始计时的 Timer。
//
//	timer := latency.StartTimer()
//	defer timer.ObserveDuration()
func (h *Histogram) StartTimer() *Timer {
	return &Timer{h: h, start: time.Now()}
}

// ObserveDuration 记录自 StartTimer 以来的耗时（秒）并返回该时长。
// 只有首次调用会写入直方图，后续调用仅返回当前耗时。
func (t *Timer) ObserveDuration() time.Duration {
	d := time.Since(t.start)
	if t.done.CompareAndSwap(false, true) {
		t.h.Observe(d.Seconds())
	}
	return d
}
