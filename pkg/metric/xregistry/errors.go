package xregistry

import (
	"errors"
	"fmt"

	"github.com/omeyang/xprom/pkg/metric/xmodel"
)

var (
	// ErrNoDescriptors 表示采集器的 Describe 没有返回任何描述符。
	ErrNoDescriptors = errors.New("xregistry: collector describes no descriptors")

	// ErrDescriptorMismatch 表示同名指标声明了不一致的维度
	// （类型、帮助文本或变量标签集不同）。
	ErrDescriptorMismatch = errors.New("xregistry: descriptors with same name have different dimensions")

	// ErrCollectorPanic 表示某个采集器在 Collect 期间 panic，
	// 该采集器本轮的输出被丢弃。
	ErrCollectorPanic = errors.New("xregistry: collector panicked during collect")
)

// AlreadyRegisteredError 表示注册的描述符与已注册的描述符 ID 相同。
// 调用方可通过 ExistingCollector 复用已注册的采集器。
type AlreadyRegisteredError struct {
	ExistingCollector xmodel.Collector
	NewCollector      xmodel.Collector
	FQName            string
}

func (e AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("xregistry: descriptor %q already registered", e.FQName)
}

// InconsistentFamilyError 表示 Gather 合并时发现同名指标族的
// 元数据（类型或帮助文本）互相冲突，或族内出现重复的标签序列。
type InconsistentFamilyError struct {
	Name   string
	Reason string
}

func (e InconsistentFamilyError) Error() string {
	return fmt.Sprintf("xregistry: inconsistent family %q: %s", e.Name, e.Reason)
}
