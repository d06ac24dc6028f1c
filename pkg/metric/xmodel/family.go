package xmodel

import (
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/omeyang/xprom/pkg/metric/xdesc"
)

// MetricFamily 是共享同一描述符名称的一组样本，按标签元组区分。
// 它是 Gather 输出的基本单位，也是交给外部编码器的最终形态。
type MetricFamily struct {
	Name    string
	Help    string
	Kind    xdesc.Kind
	Metrics []Sample
}

// Sample 是单个指标在某一时刻的只读快照。
// Counter、Gauge、Untyped、Histogram 中恰好一个字段非 nil，与族的 Kind 对应。
type Sample struct {
	// Labels 是完整标签集（变量标签 + 常量标签），按标签名排序。
	Labels []xdesc.LabelPair

	Counter   *SimpleValue
	Gauge     *SimpleValue
	Untyped   *SimpleValue
	Histogram *HistogramSnapshot
}

// SimpleValue 是单值指标的快照。
type SimpleValue struct {
	Value float64
}

// HistogramSnapshot 是直方图的多字段快照。
// Buckets 按上界递增排列，末尾总是 +Inf 桶，其累积计数等于 SampleCount。
type HistogramSnapshot struct {
	SampleSum   float64
	SampleCount uint64
	Buckets     []Bucket
}

// Bucket 是直方图的一个累积桶：计数包含全部 ≤ UpperBound 的观测。
type Bucket struct {
	UpperBound      float64
	CumulativeCount uint64
}

// MakeLabelPairs 将描述符的变量标签与给定标签值配对，
// 连同常量标签一起返回按标签名排序的完整标签集。
// labelValues 的长度必须等于变量标签数量，由调用方保证。
func MakeLabelPairs(desc *xdesc.Desc, labelValues []string) []xdesc.LabelPair {
	constPairs := desc.ConstLabelPairs()
	varLabels := desc.VariableLabels()
	if len(varLabels) == 0 {
		return constPairs
	}

	pairs := make([]xdesc.LabelPair, 0, len(varLabels)+len(constPairs))
	for i, name := range varLabels {
		pairs = append(pairs, xdesc.LabelPair{Name: name, Value: labelValues[i]})
	}
	pairs = append(pairs, constPairs...)
	slices.SortFunc(pairs, func(a, b xdesc.LabelPair) int {
		return strings.Compare(a.Name, b.Name)
	})
	return pairs
}

// HashLabelPairs 返回已排序标签集的 xxhash 摘要，
// 用于族内标签元组唯一性检测和样本排序分组。
func HashLabelPairs(pairs []xdesc.LabelPair) uint64 {
	h := xxhash.New()
	for _, pair := range pairs {
		_, _ = h.WriteString(pair.Name)
		_, _ = h.Write([]byte{xdesc.SeparatorByte})
		_, _ = h.WriteString(pair.Value)
		_, _ = h.Write([]byte{xdesc.SeparatorByte})
	}
	return h.Sum64()
}

// CompareLabelPairs 按 (标签名, 标签值) 字典序比较两个标签集，
// 供 Gather 对族内样本做确定性排序。
func CompareLabelPairs(a, b []xdesc.LabelPair) int {
	for i, n := 0, min(len(a), len(b)); i < n; i++ {
		if c := strings.Compare(a[i].Name, b[i].Name); c != 0 {
			return c
		}
		if c := strings.Compare(a[i].Value, b[i].Value); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}
