package xmetric

import (
	"fmt"

	"github.com/omeyang/xprom/pkg/metric/xatomic"
	"github.com/omeyang/xprom/pkg/metric/xdesc"
	"github.com/omeyang/xprom/pkg/metric/xmodel"
	"github.com/omeyang/xprom/pkg/metric/xvec"
)

// value 是 Counter 和 Gauge 共用的单值指标内核：
// 描述符 + 预计算的标签集 + 一个无锁数值单元。
type value[T xatomic.Numeric] struct {
	desc       *xdesc.Desc
	labelPairs []xdesc.LabelPair
	cell       xatomic.Value[T]
}

func newValue[T xatomic.Numeric](desc *xdesc.Desc, labelValues []string) (*value[T], error) {
	if want, got := desc.NumVariableLabels(), len(labelValues); want != got {
		return nil, fmt.Errorf("%w: expected %d label values, got %d", xvec.ErrCardinality, want, got)
	}
	return &value[T]{
		desc:       desc,
		labelPairs: xmodel.MakeLabelPairs(desc, labelValues),
	}, nil
}

// sample 按描述符种类生成当前值的快照。
func (v *value[T]) sample() xmodel.Sample {
	s := xmodel.Sample{Labels: v.labelPairs}
	sv := &xmodel.SimpleValue{Value: float64(v.cell.Load())}
	switch v.desc.Kind() {
	case xdesc.KindCounter:
		s.Counter = sv
	case xdesc.KindGauge:
		s.Gauge = sv
	default:
		s.Untyped = sv
	}
	return s
}

// family 把单个指标包装为只含一个样本的指标族。
func (v *value[T]) family() *xmodel.MetricFamily {
	return &xmodel.MetricFamily{
		Name:    v.desc.FQName(),
		Help:    v.desc.Help(),
		Kind:    v.desc.Kind(),
		Metrics: []xmodel.Sample{v.sample()},
	}
}
