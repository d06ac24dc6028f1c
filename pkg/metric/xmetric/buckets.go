package xmetric

import (
	"fmt"
	"math"
	"slices"
)

// DefBuckets 是默认的直方图桶上界，面向以秒计的网络服务响应时间。
// 大多数场景应按自身值域定制桶边界。
var DefBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// LinearBuckets 生成 count 个宽度为 width 的桶上界，最低上界为 start。
// 隐式的 +Inf 桶不包含在返回值中。
// count 不是正数时返回 ErrInvalidBucketCount，width 不是正数时返回
// ErrInvalidBucketWidth。
func LinearBuckets(start, width float64, count int) ([]float64, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBucketCount, count)
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBucketWidth, width)
	}

	buckets := make([]float64, count)
	next := start
	for i := range buckets {
		buckets[i] = next
		next += width
	}
	return buckets, nil
}

// ExponentialBuckets 生成 count 个桶上界，最低上界为 start，
// 此后每个上界是前一个的 factor 倍。隐式的 +Inf 桶不包含在返回值中。
// count 不是正数、start 不是正数或 factor 不大于 1 时返回对应错误。
func ExponentialBuckets(start, factor float64, count int) ([]float64, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBucketCount, count)
	}
	if start <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBucketStart, start)
	}
	if factor <= 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBucketFactor, factor)
	}

	buckets := make([]float64, count)
	next := start
	for i := range buckets {
		buckets[i] = next
		next *= factor
	}
	return buckets, nil
}

// NormalizeBuckets 校验并规整桶上界：空切片回落到 DefBuckets；
// 上界必须严格递增，否则返回 ErrBucketsNotSorted；
// 末尾的 +Inf 是隐式桶，会被剔除。返回的切片是新分配的副本。
func NormalizeBuckets(buckets []float64) ([]float64, error) {
	if len(buckets) == 0 {
		return slices.Clone(DefBuckets), nil
	}

	for i := 0; i < len(buckets)-1; i++ {
		if buckets[i] >= buckets[i+1] {
			return nil, fmt.Errorf("%w: %v >= %v", ErrBucketsNotSorted, buckets[i], buckets[i+1])
		}
	}

	normalized := slices.Clone(buckets)
	if last := normalized[len(normalized)-1]; math.IsInf(last, +1) {
		normalized = normalized[:len(normalized)-1]
	}
	return normalized, nil
}
