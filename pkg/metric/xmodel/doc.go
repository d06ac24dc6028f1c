// Package xmodel 定义采集协议和采集结果的内存模型。
//
// Collector 是采集能力的最小接口：Describe 返回指标描述符，
// Collect 返回当前快照。裸指标（Counter/Gauge/Histogram）和
// 标签向量（xvec.Vec）都实现该接口，Registry 据此对异构指标做统一采집。
//
// MetricFamily、Sample 等结构是 Gather 输出与外部编码器之间的唯一契约：
// 编码器消费已定稿的内存快照并产出字节流，本库不关心序列化格式。
//
// # 快照语义
//
// Sample 是某一时刻对单个指标的只读快照，构造后不被修改。
// 同一指标内部字段（如直方图的 sum/count/buckets）在一次 Write 中
// 一起捕获；跨指标之间不保证同一时刻。
package xmodel
