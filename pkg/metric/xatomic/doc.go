// Package xatomic 提供指标热路径使用的无锁数值单元。
//
// Value 是 Counter、Gauge 和 Histogram 桶计数的底层存储：
// 单个 64 位单元，支持并发安全的增减、赋值和读取，
// 构造后不再分配内存，任何操作都不会阻塞。
//
// # 实现策略
//
//   - int64：直接在补码位上做原子加法（uint64 加法与 int64 加法按位等价）
//   - float64：在 IEEE-754 位表示上做 CAS 循环（Go 没有原生原子浮点）
//
// 两种表示共用同一个 uint64 存储，类型由泛型参数在编译期确定。
//
// # 一致性
//
// 每个单元的读写是单点线性化的：Load 观察到的值不早于读取开始时刻。
// 跨多个单元不提供全局顺序，需要多字段快照一致性的调用方
// （如 Histogram）自行声明最终一致语义。
package xatomic
