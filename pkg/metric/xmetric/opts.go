package xmetric

import "github.com/omeyang/xprom/pkg/metric/xdesc"

// Opts 是创建指标的通用参数。只有 Name 是必填的。
type Opts struct {
	// Namespace、Subsystem、Name 用 "_" 连接为完全限定指标名。
	Namespace string
	Subsystem string
	Name      string

	// Help 是指标的帮助文本。同名指标必须使用相同的 Help。
	Help string

	// ConstLabels 是附着在指标上的固定标签。
	// 变化的维度应使用 *Vec 的变量标签，常量标签只用于
	// 进程生命周期内不变的取值（如构建版本）。
	ConstLabels map[string]string
}

// FQName 返回完全限定指标名。
func (o Opts) FQName() string {
	return xdesc.BuildFQName(o.Namespace, o.Subsystem, o.Name)
}

// desc 按给定种类和变量标签构造描述符。
func (o Opts) desc(kind xdesc.Kind, variableLabels []string) (*xdesc.Desc, error) {
	return xdesc.NewDesc(o.FQName(), o.Help, variableLabels, o.ConstLabels, kind)
}
