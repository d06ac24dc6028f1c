package xexpfmt

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/omeyang/xprom/pkg/metric/xdesc"
	"github.com/omeyang/xprom/pkg/metric/xmodel"
)

// TextFormatType 是 Prometheus 文本格式 0.0.4 的 Content-Type。
const TextFormatType = "text/plain; version=0.0.4"

// Encoder 把指标族序列编码到 writer。实现不校验指标名和标签名，
// 非法名称会产生非法输出。
type Encoder interface {
	Encode(families []*xmodel.MetricFamily, w io.Writer) error
	// FormatType 返回编码产物的 Content-Type。
	FormatType() string
}

// TextEncoder 实现 Prometheus 文本格式 0.0.4。
type TextEncoder struct{}

// NewTextEncoder 创建文本编码器。TextEncoder 无状态，可并发使用。
func NewTextEncoder() *TextEncoder {
	return &TextEncoder{}
}

// FormatType 实现 Encoder。
func (*TextEncoder) FormatType() string {
	return TextFormatType
}

// Encode 实现 Encoder。无名称或无样本的指标族返回错误，
// 此时 writer 中可能已有部分输出。
func (*TextEncoder) Encode(families []*xmodel.MetricFamily, w io.Writer) error {
	for _, fam := range families {
		if fam.Name == "" {
			return ErrNoName
		}
		if len(fam.Metrics) == 0 {
			return fmt.Errorf("%w: %q", ErrNoMetrics, fam.Name)
		}

		if fam.Help != "" {
			if _, err := fmt.Fprintf(w, "# HELP %s %s\n", fam.Name, escapeString(fam.Help, false)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "# TYPE %s %s\n", fam.Name, typeName(fam.Kind)); err != nil {
			return err
		}

		for i := range fam.Metrics {
			if err := writeSampleLines(w, fam.Name, fam.Kind, &fam.Metrics[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSampleLines(w io.Writer, name string, kind xdesc.Kind, sample *xmodel.Sample) error {
	switch kind {
	case xdesc.KindCounter:
		if sample.Counter == nil {
			return fmt.Errorf("%w: %q", ErrKindMismatch, name)
		}
		return writeSample(w, name, sample.Labels, "", "", sample.Counter.Value)
	case xdesc.KindGauge:
		if sample.Gauge == nil {
			return fmt.Errorf("%w: %q", ErrKindMismatch, name)
		}
		return writeSample(w, name, sample.Labels, "", "", sample.Gauge.Value)
	case xdesc.KindUntyped:
		if sample.Untyped == nil {
			return fmt.Errorf("%w: %q", ErrKindMismatch, name)
		}
		return writeSample(w, name, sample.Labels, "", "", sample.Untyped.Value)
	case xdesc.KindHistogram:
		if sample.Histogram == nil {
			return fmt.Errorf("%w: %q", ErrKindMismatch, name)
		}
		return writeHistogram(w, name, sample.Labels, sample.Histogram)
	default:
		return fmt.Errorf("%w: %q: unsupported kind %v", ErrKindMismatch, name, kind)
	}
}

// writeHistogram 展开直方图：每个桶一行 name_bucket{le="..."}，
// 然后是 name_sum 和 name_count。
func writeHistogram(w io.Writer, name string, labels []xdesc.LabelPair, snap *xmodel.HistogramSnapshot) error {
	for _, bucket := range snap.Buckets {
		err := writeSample(w, name+"_bucket", labels, "le",
			formatFloat(bucket.UpperBound), float64(bucket.CumulativeCount))
		if err != nil {
			return err
		}
	}
	if err := writeSample(w, name+"_sum", labels, "", "", snap.SampleSum); err != nil {
		return err
	}
	return writeSample(w, name+"_count", labels, "", "", float64(snap.SampleCount))
}

// writeSample 写出一行样本。extraName 非空时把 extraName=extraValue
// 追加到标签序列末尾（直方图的 "le" 标签走此通道）。
func writeSample(w io.Writer, name string, labels []xdesc.LabelPair, extraName, extraValue string, value float64) error {
	var sb strings.Builder
	sb.WriteString(name)

	if len(labels) > 0 || extraName != "" {
		sb.WriteByte('{')
		for i, pair := range labels {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(pair.Name)
			sb.WriteString(`="`)
			sb.WriteString(escapeString(pair.Value, true))
			sb.WriteByte('"')
		}
		if extraName != "" {
			if len(labels) > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(extraName)
			sb.WriteString(`="`)
			sb.WriteString(escapeString(extraValue, true))
			sb.WriteByte('"')
		}
		sb.WriteByte('}')
	}

	sb.WriteByte(' ')
	sb.WriteString(formatFloat(value))
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// typeName 返回 # TYPE 行使用的小写种类名。
func typeName(kind xdesc.Kind) string {
	switch kind {
	case xdesc.KindCounter:
		return "counter"
	case xdesc.KindGauge:
		return "gauge"
	case xdesc.KindHistogram:
		return "histogram"
	case xdesc.KindSummary:
		return "summary"
	default:
		return "untyped"
	}
}

// formatFloat 以最短往返表示格式化样本值，正负无穷分别输出
// "+Inf" / "-Inf"，与 Prometheus 文本格式一致。
func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, +1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case math.IsNaN(v):
		return "NaN"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// escapeString 把 '\' 和换行转义为 '\\' 和 '\n'；
// includeDoubleQuote 为 true 时额外把 '"' 转义为 '\"'（标签值场景）。
func escapeString(v string, includeDoubleQuote bool) string {
	var sb strings.Builder
	sb.Grow(len(v))
	for _, r := range v {
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '"' && includeDoubleQuote:
			sb.WriteString(`\"`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

var _ Encoder = (*TextEncoder)(nil)
