// Package xdesc 定义指标的不可变描述符（Descriptor）。
//
// Desc 是指标的唯一身份：完全限定名、帮助文本、变量标签名序列、
// 常量标签集合和指标种类。它在指标构造时计算一次，此后不再变化，
// 同时服务于两个场景：
//
//   - 注册冲突检测：Registry 以 Desc 的 ID/DimHash 判断两个 Collector
//     是否产出了相同身份的指标
//   - 采集编码：Gather 结果中的族名、帮助文本和种类均来自 Desc
//
// # 身份哈希
//
// ID 是对完全限定名和常量标签值的 xxhash 摘要，两个 Desc 的 ID 相同
// 即视为同一指标；DimHash 是对种类、帮助文本、变量标签名和常量标签名
// 的摘要，同名指标的 DimHash 不同说明 schema 冲突。哈希分段之间写入
// 0xFF 分隔字节，避免 ("ab","c") 与 ("a","bc") 产生相同摘要。
//
// # 命名规则
//
// 指标名必须匹配 [a-zA-Z_:][a-zA-Z0-9_:]*；标签名必须匹配
// [a-zA-Z_][a-zA-Z0-9_]* 且不得以 "__" 开头（保留前缀）。
// 变量标签名与常量标签名必须互不重复。
package xdesc
