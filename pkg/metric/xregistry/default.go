package xregistry

import "github.com/omeyang/xprom/pkg/metric/xmodel"

// DefaultRegistry 是进程级默认注册表，供包级便捷函数使用。
var DefaultRegistry = New()

// Register 把采集器注册到 DefaultRegistry。
func Register(c xmodel.Collector) error {
	return DefaultRegistry.Register(c)
}

// MustRegister 把采集器注册到 DefaultRegistry，失败时 panic。
func MustRegister(cs ...xmodel.Collector) {
	DefaultRegistry.MustRegister(cs...)
}

// Unregister 从 DefaultRegistry 注销采集器。
func Unregister(c xmodel.Collector) bool {
	return DefaultRegistry.Unregister(c)
}

// Gather 采集 DefaultRegistry 中的全部指标。
func Gather() ([]*xmodel.MetricFamily, error) {
	return DefaultRegistry.Gather()
}
