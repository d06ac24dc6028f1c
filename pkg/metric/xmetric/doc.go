// Package xmetric 提供具体指标类型：Counter、Gauge、Histogram
// 及其整数变体和标签向量变体。
//
// # 指标类型
//
//   - Counter / IntCounter：单调不减的计数器，负增量被拒绝
//   - Gauge / IntGauge：可任意增减赋值的瞬时值
//   - Histogram：分桶累积直方图，附带观测总数和精确观测值之和
//   - *Vec 变体：按标签维度展开的同名指标集合（基于 xvec）
//   - Local* 变体：单 goroutine 的本地缓冲指标，Flush 时合并到共享指标
//
// 所有共享指标的写操作（Inc/Add/Set/Observe）都是无锁的原子操作，
// 不会阻塞并发写入方或采集方。每个指标同时实现 xmodel.Collector
// 和 xmodel.Metric，可直接注册到 Registry，也可作为向量的子指标。
//
// # 直方图一致性
//
// Histogram 的桶计数、观测总数和观测值之和是各自独立的原子单元。
// 并发写入时，采集到的快照是最终一致而非单一时刻一致的：
// 单次 Observe 的三类递增可能跨越快照边界。静止状态下恒有
// 末桶（+Inf）累积计数等于观测总数。需要单一时刻一致性的场景
// 应在外部停写后采集。
//
// # 命名
//
// Opts 的 Namespace、Subsystem、Name 用 "_" 连接为完全限定名，
// 只有 Name 是必填的。同名指标必须保持相同的帮助文本和标签 schema，
// 否则注册或采集时报错。
package xmetric
