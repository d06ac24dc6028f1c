// Package xregistry 提供指标注册表：集中管理采集器并按需生成
// 一致的指标族快照。
//
// # 设计理念
//
//   - 注册即校验：Register 在注册时刻检查描述符冲突（相同 ID 的
//     重复注册、同名指标的维度不一致），失败的注册不产生任何
//     副作用，后续 Gather 不受其影响。
//   - 并行采集：Gather 对所有采集器并发调用 Collect，单个采集器
//     的 panic 被隔离为错误，不影响其余采集器的输出。
//   - 输出确定性：指标族按名称排序，族内样本按标签序列排序，
//     相同注册状态下两次 Gather 的结构一致。
//
// 进程级的便捷入口见 DefaultRegistry 与包级 Register / Gather。
package xregistry
