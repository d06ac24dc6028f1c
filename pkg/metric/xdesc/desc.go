package xdesc

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// SeparatorByte 是哈希输入分段之间的分隔字节。
// 它不是合法的 UTF-8 编码字节，保证不同分段组合不会产生相同摘要。
const SeparatorByte byte = 0xFF

// reservedLabelPrefix 是保留给内部使用的标签名前缀。
const reservedLabelPrefix = "__"

var (
	metricNameRE = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)
	labelNameRE  = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// LabelPair 是一对标签名和标签值。
type LabelPair struct {
	Name  string
	Value string
}

// Desc 是指标的不可变描述符。必须通过 [NewDesc] 创建。
// 创建后所有字段不再变化，可被任意多个 goroutine 并发读取。
type Desc struct {
	fqName          string
	help            string
	kind            Kind
	variableLabels  []string
	constLabelPairs []LabelPair

	// id 是 (fqName, 常量标签值) 的摘要，Registry 用它判定指标身份冲突。
	id uint64
	// dimHash 是 (kind, help, 标签名 schema) 的摘要，
	// 同名指标的 dimHash 不一致说明 schema 冲突。
	dimHash uint64
}

// NewDesc 构造描述符并完成全部校验和哈希计算。
// variableLabels 的顺序即标签值元组的顺序；constLabels 会按标签名排序存储。
func NewDesc(fqName, help string, variableLabels []string, constLabels map[string]string, kind Kind) (*Desc, error) {
	if fqName == "" {
		return nil, ErrEmptyName
	}
	if !metricNameRE.MatchString(fqName) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, fqName)
	}

	seen := make(map[string]struct{}, len(variableLabels)+len(constLabels))
	checkLabel := func(name string) error {
		if !labelNameRE.MatchString(name) || strings.HasPrefix(name, reservedLabelPrefix) {
			return fmt.Errorf("%w: %q", ErrInvalidLabelName, name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateLabelName, name)
		}
		seen[name] = struct{}{}
		return nil
	}

	for _, name := range variableLabels {
		if err := checkLabel(name); err != nil {
			return nil, err
		}
	}

	constPairs := make([]LabelPair, 0, len(constLabels))
	for name, value := range constLabels {
		if err := checkLabel(name); err != nil {
			return nil, err
		}
		constPairs = append(constPairs, LabelPair{Name: name, Value: value})
	}
	slices.SortFunc(constPairs, func(a, b LabelPair) int {
		return strings.Compare(a.Name, b.Name)
	})

	d := &Desc{
		fqName:          fqName,
		help:            help,
		kind:            kind,
		variableLabels:  slices.Clone(variableLabels),
		constLabelPairs: constPairs,
	}
	d.id = computeID(d)
	d.dimHash = computeDimHash(d)
	return d, nil
}

// MustNewDesc 与 NewDesc 相同，失败时 panic。
// 用于包级变量等构造失败即编程错误的场景。
func MustNewDesc(fqName, help string, variableLabels []string, constLabels map[string]string, kind Kind) *Desc {
	d, err := NewDesc(fqName, help, variableLabels, constLabels, kind)
	if err != nil {
		panic(err)
	}
	return d
}

// FQName 返回完全限定指标名。
func (d *Desc) FQName() string { return d.fqName }

// Help 返回帮助文本。
func (d *Desc) Help() string { return d.help }

// Kind 返回指标种类。
func (d *Desc) Kind() Kind { return d.kind }

// ID 返回身份摘要。两个 Desc 的 ID 相同即视为同一指标。
func (d *Desc) ID() uint64 { return d.id }

// DimHash 返回 schema 摘要。
func (d *Desc) DimHash() uint64 { return d.dimHash }

// NumVariableLabels 返回变量标签数量，即标签值元组的长度。
func (d *Desc) NumVariableLabels() int { return len(d.variableLabels) }

// VariableLabels 返回变量标签名序列的副本。
func (d *Desc) VariableLabels() []string { return slices.Clone(d.variableLabels) }

// ConstLabelPairs 返回按标签名排序的常量标签副本。
func (d *Desc) ConstLabelPairs() []LabelPair { return slices.Clone(d.constLabelPairs) }

func computeID(d *Desc) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(d.fqName)
	_, _ = h.Write([]byte{SeparatorByte})
	for _, pair := range d.constLabelPairs {
		_, _ = h.WriteString(pair.Value)
		_, _ = h.Write([]byte{SeparatorByte})
	}
	return h.Sum64()
}

func computeDimHash(d *Desc) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(d.kind.String())
	_, _ = h.Write([]byte{SeparatorByte})
	_, _ = h.WriteString(d.help)
	_, _ = h.Write([]byte{SeparatorByte})
	for _, name := range d.variableLabels {
		_, _ = h.WriteString(name)
		_, _ = h.Write([]byte{SeparatorByte})
	}
	for _, pair := range d.constLabelPairs {
		_, _ = h.WriteString(pair.Name)
		_, _ = h.Write([]byte{SeparatorByte})
	}
	return h.Sum64()
}
