package xmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xprom/pkg/metric/xdesc"
)

func TestMakeLabelPairs(t *testing.T) {
	desc := xdesc.MustNewDesc("m", "h",
		[]string{"method", "code"},
		map[string]string{"service": "api", "az": "cn-1"},
		xdesc.KindCounter,
	)

	pairs := MakeLabelPairs(desc, []string{"GET", "200"})
	require.Len(t, pairs, 4)

	// 变量标签与常量标签合并后按标签名排序。
	assert.Equal(t, []xdesc.LabelPair{
		{Name: "az", Value: "cn-1"},
		{Name: "code", Value: "200"},
		{Name: "method", Value: "GET"},
		{Name: "service", Value: "api"},
	}, pairs)
}

func TestMakeLabelPairs_NoVariableLabels(t *testing.T) {
	desc := xdesc.MustNewDesc("m", "h", nil, map[string]string{"a": "1"}, xdesc.KindGauge)
	pairs := MakeLabelPairs(desc, nil)
	assert.Equal(t, []xdesc.LabelPair{{Name: "a", Value: "1"}}, pairs)
}

func TestHashLabelPairs(t *testing.T) {
	a := []xdesc.LabelPair{{Name: "l1", Value: "v1"}, {Name: "l2", Value: "v2"}}
	b := []xdesc.LabelPair{{Name: "l1", Value: "v1"}, {Name: "l2", Value: "v2"}}
	c := []xdesc.LabelPair{{Name: "l1", Value: "v2"}, {Name: "l2", Value: "v1"}}

	assert.Equal(t, HashLabelPairs(a), HashLabelPairs(b))
	assert.NotEqual(t, HashLabelPairs(a), HashLabelPairs(c))
}

func TestCompareLabelPairs(t *testing.T) {
	tests := []struct {
		name string
		a, b []xdesc.LabelPair
		want int
	}{
		{"相等", []xdesc.LabelPair{{Name: "a", Value: "1"}}, []xdesc.LabelPair{{Name: "a", Value: "1"}}, 0},
		{"值不同", []xdesc.LabelPair{{Name: "a", Value: "1"}}, []xdesc.LabelPair{{Name: "a", Value: "2"}}, -1},
		{"名不同", []xdesc.LabelPair{{Name: "a", Value: "9"}}, []xdesc.LabelPair{{Name: "b", Value: "0"}}, -1},
		{"前缀更短", nil, []xdesc.LabelPair{{Name: "a", Value: "1"}}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareLabelPairs(tt.a, tt.b)
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}
