package xdesc

import "errors"

var (
	// ErrEmptyName 表示指标名为空。
	ErrEmptyName = errors.New("xdesc: metric name is empty")

	// ErrInvalidName 表示指标名不符合命名规则。
	ErrInvalidName = errors.New("xdesc: invalid metric name")

	// ErrInvalidLabelName 表示标签名不符合命名规则或使用了保留前缀。
	ErrInvalidLabelName = errors.New("xdesc: invalid label name")

	// ErrDuplicateLabelName 表示变量标签与常量标签之间存在重名。
	ErrDuplicateLabelName = errors.New("xdesc: duplicate label name")
)
