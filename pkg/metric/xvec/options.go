package xvec

import (
	"fmt"
	"unicode/utf8"
)

// options 内部可选配置。
type options struct {
	checkLabelValue func(string) error
}

// Option 定义向量可选配置函数类型。
type Option func(*options)

// WithLabelValueCheck 设置标签值合法性校验函数。
// 校验在查找和删除入口执行，返回错误时不创建子指标。
// fn 为 nil 时保持默认校验（合法 UTF-8）。
func WithLabelValueCheck(fn func(string) error) Option {
	return func(o *options) {
		if fn != nil {
			o.checkLabelValue = fn
		}
	}
}

func defaultOptions() *options {
	return &options{
		checkLabelValue: func(v string) error {
			if !utf8.ValidString(v) {
				return fmt.Errorf("%w: not valid UTF-8", ErrInvalidLabelValue)
			}
			return nil
		},
	}
}
