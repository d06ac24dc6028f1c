// Package xexpfmt 把指标族快照编码为对外暴露格式。
//
// 当前实现 Prometheus 文本格式 0.0.4：每个指标族输出 # HELP、
// # TYPE 注释行和样本行，直方图展开为带 "le" 标签的桶序列加
// _sum / _count 两个辅助样本。
//
// # 设计理念
//
//   - 编码器只负责格式转换，不校验指标名和标签名的合法性，
//     上游注册表已经保证了这一点；
//   - 输入顺序即输出顺序，排序由 Gather 完成，编码是确定性的；
//   - Encoder 是接口，未来的 protobuf / OpenMetrics 编码器
//     共用同一个调用面。
package xexpfmt
