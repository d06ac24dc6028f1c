package xvec

import (
	"fmt"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/omeyang/xprom/pkg/metric/xdesc"
	"github.com/omeyang/xprom/pkg/metric/xmodel"
)

// Builder 用给定标签值元组构造一个新的子指标。
// 构造出的子指标必须与向量共享同一个描述符。
type Builder[M xmodel.Metric] func(labelValues []string) (M, error)

// entry 是一个已创建的子指标及其标签值元组。
// values 用于同哈希桶内的碰撞比对。
type entry[M xmodel.Metric] struct {
	values []string
	metric M
}

// Vec 是标签维度的指标向量，实现 xmodel.Collector。
// 必须通过 [New] 创建，零值不可用。所有方法都是并发安全的。
type Vec[M xmodel.Metric] struct {
	desc  *xdesc.Desc
	build Builder[M]
	opts  *options

	mu       sync.RWMutex
	children map[uint64][]entry[M]
}

// New 创建指标向量。desc 必须带至少一个变量标签，build 不得为 nil。
func New[M xmodel.Metric](desc *xdesc.Desc, build Builder[M], opts ...Option) (*Vec[M], error) {
	if desc.NumVariableLabels() == 0 {
		return nil, ErrNoVariableLabels
	}
	if build == nil {
		return nil, ErrNilBuilder
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return &Vec[M]{
		desc:     desc,
		build:    build,
		opts:     o,
		children: make(map[uint64][]entry[M]),
	}, nil
}

// GetWith 返回标签值元组对应的子指标，不存在时创建。
// 标签值数量不等于变量标签数量时返回 ErrCardinality；
// 标签值未通过校验时返回 ErrInvalidLabelValue。
//
// 首次创建是单胜者语义：并发调用同一元组时恰好创建一个实例，
// 所有调用方拿到同一个引用。
func (v *Vec[M]) GetWith(labelValues ...string) (M, error) {
	var zero M
	hash, err := v.hashLabelValues(labelValues)
	if err != nil {
		return zero, err
	}

	v.mu.RLock()
	m, ok := v.lookup(hash, labelValues)
	v.mu.RUnlock()
	if ok {
		return m, nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	// 双检查：锁竞争期间其他调用方可能已完成创建。
	if m, ok := v.lookup(hash, labelValues); ok {
		return m, nil
	}

	values := slices.Clone(labelValues)
	m, err = v.build(values)
	if err != nil {
		return zero, err
	}
	v.children[hash] = append(v.children[hash], entry[M]{values: values, metric: m})
	return m, nil
}

// With 与 GetWith 相同，出错时 panic。
// 用于标签值在编码期已知、出错即编程错误的场景。
func (v *Vec[M]) With(labelValues ...string) M {
	m, err := v.GetWith(labelValues...)
	if err != nil {
		panic(err)
	}
	return m
}

// Delete 删除标签值元组对应的子指标，返回是否存在。
// 元组非法或不存在时返回 false，从不报错。
func (v *Vec[M]) Delete(labelValues ...string) bool {
	hash, err := v.hashLabelValues(labelValues)
	if err != nil {
		return false
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	bucket := v.children[hash]
	for i, e := range bucket {
		if slices.Equal(e.values, labelValues) {
			if len(bucket) == 1 {
				delete(v.children, hash)
			} else {
				v.children[hash] = slices.Delete(bucket, i, i+1)
			}
			return true
		}
	}
	return false
}

// Reset 删除全部子指标。
func (v *Vec[M]) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	clear(v.children)
}

// Len 返回当前子指标数量。
func (v *Vec[M]) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	n := 0
	for _, bucket := range v.children {
		n += len(bucket)
	}
	return n
}

// Describe 实现 xmodel.Collector。
func (v *Vec[M]) Describe() []*xdesc.Desc {
	return []*xdesc.Desc{v.desc}
}

// Collect 实现 xmodel.Collector：把每个子指标的快照合并为一个指标族。
// 子指标引用在读锁内复制，快照本身在锁外进行，不阻塞写热路径。
// 输出按标签集排序，保证同一状态下结果确定。
func (v *Vec[M]) Collect() []*xmodel.MetricFamily {
	v.mu.RLock()
	metrics := make([]M, 0, len(v.children))
	for _, bucket := range v.children {
		for _, e := range bucket {
			metrics = append(metrics, e.metric)
		}
	}
	v.mu.RUnlock()

	samples := make([]xmodel.Sample, 0, len(metrics))
	for _, m := range metrics {
		samples = append(samples, m.Write())
	}
	slices.SortFunc(samples, func(a, b xmodel.Sample) int {
		return xmodel.CompareLabelPairs(a.Labels, b.Labels)
	})

	return []*xmodel.MetricFamily{{
		Name:    v.desc.FQName(),
		Help:    v.desc.Help(),
		Kind:    v.desc.Kind(),
		Metrics: samples,
	}}
}

// hashLabelValues 校验元组后返回其 xxhash 摘要。
func (v *Vec[M]) hashLabelValues(labelValues []string) (uint64, error) {
	if want, got := v.desc.NumVariableLabels(), len(labelValues); want != got {
		return 0, fmt.Errorf("%w: expected %d label values, got %d", ErrCardinality, want, got)
	}

	h := xxhash.New()
	for _, val := range labelValues {
		if err := v.opts.checkLabelValue(val); err != nil {
			return 0, fmt.Errorf("%w: %q", err, val)
		}
		_, _ = h.WriteString(val)
		_, _ = h.Write([]byte{xdesc.SeparatorByte})
	}
	return h.Sum64(), nil
}

// lookup 在哈希桶内按元组比对查找，调用方必须持有 v.mu。
func (v *Vec[M]) lookup(hash uint64, labelValues []string) (M, bool) {
	for _, e := range v.children[hash] {
		if slices.Equal(e.values, labelValues) {
			return e.metric, true
		}
	}
	var zero M
	return zero, false
}
