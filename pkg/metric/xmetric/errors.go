package xmetric

import "errors"

var (
	// ErrCounterDecrease 表示对计数器施加了负增量。
	ErrCounterDecrease = errors.New("xmetric: counter cannot decrease in value")

	// ErrBucketsNotSorted 表示直方图桶上界不是严格递增的。
	ErrBucketsNotSorted = errors.New("xmetric: histogram buckets must be in strictly increasing order")

	// ErrInvalidBucketCount 表示桶数量不是正数。
	ErrInvalidBucketCount = errors.New("xmetric: bucket count must be positive")

	// ErrInvalidBucketWidth 表示线性桶宽度不是正数。
	ErrInvalidBucketWidth = errors.New("xmetric: linear bucket width must be positive")

	// ErrInvalidBucketStart 表示指数桶起点不是正数。
	ErrInvalidBucketStart = errors.New("xmetric: exponential bucket start must be positive")

	// ErrInvalidBucketFactor 表示指数桶倍率不大于 1。
	ErrInvalidBucketFactor = errors.New("xmetric: exponential bucket factor must be greater than 1")

	// ErrReservedLabel 表示直方图使用了保留标签名 "le"。
	ErrReservedLabel = errors.New(`xmetric: "le" is not allowed as label name in histograms`)
)
