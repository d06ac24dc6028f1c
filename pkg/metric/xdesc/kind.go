package xdesc

import "strconv"

// Kind 表示指标种类。
type Kind int

const (
	// KindCounter 表示单调不减的计数器。
	KindCounter Kind = iota
	// KindGauge 表示可任意增减的瞬时值。
	KindGauge
	// KindHistogram 表示分桶累积直方图。
	KindHistogram
	// KindSummary 表示分位数摘要。
	KindSummary
	// KindUntyped 表示未声明种类的指标。
	KindUntyped
)

// String 返回 Kind 的可读字符串表示，用于调试和错误信息。
func (k Kind) String() string {
	switch k {
	case KindCounter:
		return "Counter"
	case KindGauge:
		return "Gauge"
	case KindHistogram:
		return "Histogram"
	case KindSummary:
		return "Summary"
	case KindUntyped:
		return "Untyped"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}
