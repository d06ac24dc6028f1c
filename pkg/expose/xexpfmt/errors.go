package xexpfmt

import "errors"

var (
	// ErrNoName 表示指标族缺少名称。
	ErrNoName = errors.New("xexpfmt: metric family has no name")

	// ErrNoMetrics 表示指标族不含任何样本。
	ErrNoMetrics = errors.New("xexpfmt: metric family has no metrics")

	// ErrKindMismatch 表示样本的值字段与族声明的种类不符。
	ErrKindMismatch = errors.New("xexpfmt: sample does not match family kind")
)
