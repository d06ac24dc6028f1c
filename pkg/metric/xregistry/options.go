package xregistry

import (
	"io"
	"log/slog"
	"runtime"
)

// options 内部可选配置。
type options struct {
	logger      *slog.Logger
	parallelism int
}

// Option 定义注册表可选配置函数类型。
type Option func(*options)

// WithLogger 设置诊断日志器，用于记录采集器 panic 等异常。
// logger 为 nil 时保持默认（丢弃日志）。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithGatherParallelism 设置 Gather 并发调用采集器的上限。
// n 不是正数时保持默认（GOMAXPROCS）。
func WithGatherParallelism(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

func defaultOptions() *options {
	return &options{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		parallelism: runtime.GOMAXPROCS(0),
	}
}
