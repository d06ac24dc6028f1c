package xpreset

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/xprom/pkg/metric/xmetric"
)

// Format 表示配置格式。
type Format string

const (
	// FormatYAML 表示 YAML 格式。
	FormatYAML Format = "yaml"
	// FormatJSON 表示 JSON 格式。
	FormatJSON Format = "json"
)

// Presets 是一组按名称索引的桶预设，加载后只读，可并发查询。
type Presets struct {
	buckets map[string][]float64
}

// presetSpec 是单个预设的配置形态，bounds / linear / exponential
// 三者必须恰好出现一个。
type presetSpec struct {
	Bounds      []float64        `koanf:"bounds"`
	Linear      *linearSpec      `koanf:"linear"`
	Exponential *exponentialSpec `koanf:"exponential"`
}

type linearSpec struct {
	Start float64 `koanf:"start"`
	Width float64 `koanf:"width"`
	Count int     `koanf:"count"`
}

type exponentialSpec struct {
	Start  float64 `koanf:"start"`
	Factor float64 `koanf:"factor"`
	Count  int     `koanf:"count"`
}

// New 从文件路径加载预设集。
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json）。
func New(path string) (*Presets, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return NewFromBytes(data, format)
}

// NewFromBytes 从字节数据加载预设集。
// 需要显式指定格式，适用于 K8s ConfigMap 等场景。
// 空数据产生空预设集，任何查询都返回 ErrUnknownPreset。
func NewFromBytes(data []byte, format Format) (*Presets, error) {
	k := koanf.New(".")
	if len(data) > 0 {
		if err := loadData(k, data, format); err != nil {
			return nil, err
		}
	}

	var specs map[string]presetSpec
	if err := k.UnmarshalWithConf("", &specs, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	buckets := make(map[string][]float64, len(specs))
	for name, spec := range specs {
		b, err := buildBuckets(spec)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPreset, name, err)
		}
		buckets[name] = b
	}
	return &Presets{buckets: buckets}, nil
}

// Buckets 返回命名预设的桶上界副本。
// 预设名不存在时返回 ErrUnknownPreset。
func (p *Presets) Buckets(name string) ([]float64, error) {
	b, ok := p.buckets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return slices.Clone(b), nil
}

// Names 返回全部预设名，排序后返回。
func (p *Presets) Names() []string {
	names := make([]string, 0, len(p.buckets))
	for name := range p.buckets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len 返回预设数量。
func (p *Presets) Len() int {
	return len(p.buckets)
}

// =============================================================================
// 内部辅助函数
// =============================================================================

// buildBuckets 把一种预设写法转成桶上界。
// 校验委托给 xmetric 的生成器，与代码内创建直方图同一套规则。
func buildBuckets(spec presetSpec) ([]float64, error) {
	declared := 0
	if len(spec.Bounds) > 0 {
		declared++
	}
	if spec.Linear != nil {
		declared++
	}
	if spec.Exponential != nil {
		declared++
	}
	if declared != 1 {
		return nil, fmt.Errorf("want exactly one of bounds/linear/exponential, got %d", declared)
	}

	switch {
	case len(spec.Bounds) > 0:
		return xmetric.NormalizeBuckets(spec.Bounds)
	case spec.Linear != nil:
		return xmetric.LinearBuckets(spec.Linear.Start, spec.Linear.Width, spec.Linear.Count)
	default:
		return xmetric.ExponentialBuckets(spec.Exponential.Start, spec.Exponential.Factor, spec.Exponential.Count)
	}
}

// detectFormat 根据文件扩展名检测配置格式。
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %s", ErrUnsupportedFormat, ext)
	}
}

// loadData 加载数据到 koanf 实例。
func loadData(k *koanf.Koanf, data []byte, format Format) error {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return ErrUnsupportedFormat
	}

	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return nil
}
