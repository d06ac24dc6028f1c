package xvec

import "errors"

var (
	// ErrNilBuilder 表示创建向量时未提供子指标构造函数。
	ErrNilBuilder = errors.New("xvec: nil metric builder")

	// ErrNoVariableLabels 表示描述符没有变量标签，不构成向量。
	ErrNoVariableLabels = errors.New("xvec: descriptor has no variable labels")

	// ErrCardinality 表示提供的标签值数量与变量标签数量不一致。
	ErrCardinality = errors.New("xvec: inconsistent label cardinality")

	// ErrInvalidLabelValue 表示标签值未通过合法性校验。
	ErrInvalidLabelValue = errors.New("xvec: invalid label value")
)
