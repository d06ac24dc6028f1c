package xmodel

import "github.com/omeyang/xprom/pkg/metric/xdesc"

// Collector 是可被 Registry 注册和采集的对象。
//
// 实现约束：
//   - Describe 返回的描述符集合在 Collector 生命周期内保持不变，
//     Registry 在注册时据此做冲突检测
//   - Collect 可与任意写操作并发调用，返回的快照归调用方所有
//   - 两个方法都不得阻塞在 I/O 上
type Collector interface {
	// Describe 返回该 Collector 产出的全部指标描述符。
	Describe() []*xdesc.Desc

	// Collect 返回当前指标状态的快照。
	Collect() []*MetricFamily
}

// Metric 是能对自身状态做单点快照的具体指标。
// 裸指标和向量子指标都实现该接口。
type Metric interface {
	// Desc 返回指标描述符。
	Desc() *xdesc.Desc

	// Write 返回当前值的只读快照。
	Write() Sample
}
