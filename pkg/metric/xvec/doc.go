// Package xvec 提供按标签维度展开的指标向量。
//
// Vec 把一个标签值元组映射到惰性创建的具体子指标（Counter、Gauge
// 或 Histogram），同一元组在向量生命周期内始终解析到同一个子指标实例。
// 子指标集合只增不减，删除必须显式调用 Delete 或 Reset。
//
// # 并发模型
//
//   - 已存在子指标的稳态访问只取读锁，写热路径不被采集或其它查找阻塞
//   - 写锁仅保护首次插入和删除；首次创建采用双检查的单胜者语义：
//     并发请求同一元组的多个调用方收敛到同一个实例，不产生重复子指标
//   - 元组到桶的映射使用 xxhash，同哈希桶内按元组逐项比对，哈希碰撞安全
//
// # 标签值校验
//
// 标签值的字符串合法性校验是外部协作点：默认只要求合法 UTF-8，
// 可通过 WithLabelValueCheck 注入更严格的校验函数。
package xvec
