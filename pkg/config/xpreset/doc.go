// Package xpreset 从配置文件加载命名的直方图桶预设。
//
// 桶边界属于运维口径：不同环境对同一指标往往需要不同的值域划分，
// 硬编码在代码里意味着改桶要发版。xpreset 把桶边界外置为
// YAML / JSON 配置，按名称查询：
//
//	presets, err := xpreset.New("buckets.yaml")
//	if err != nil { ... }
//	buckets, err := presets.Buckets("http_latency")
//
// 每个预设三种写法任选其一：
//
//	http_latency:
//	  bounds: [0.005, 0.01, 0.05, 0.1, 0.5, 1]
//	queue_wait:
//	  linear: {start: 0, width: 5, count: 6}
//	payload_bytes:
//	  exponential: {start: 256, factor: 4, count: 8}
//
// 生成式写法复用 xmetric 的桶生成器，校验规则与代码内创建一致。
// 全部预设在加载时即完成校验，Buckets 查询不会再失败于格式问题。
package xpreset
