package xregistry

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xprom/pkg/metric/xdesc"
	"github.com/omeyang/xprom/pkg/metric/xmodel"
)

// Registry 管理一组采集器并合并它们的指标输出。零值不可用，
// 必须通过 New 创建。所有方法并发安全。
type Registry struct {
	mu sync.RWMutex

	// collectorsByID 按描述符 ID 索引采集器，用于唯一性检查。
	collectorsByID map[uint64]xmodel.Collector
	// descIDsByCollector 记录每个采集器声明的描述符 ID，
	// Unregister 时据此回收。
	descIDsByCollector map[xmodel.Collector][]uint64
	// dimHashesByName 记录每个指标名的维度哈希与引用计数，
	// 同名指标的维度必须一致。
	dimHashesByName map[string]*dimEntry

	logger      *slog.Logger
	parallelism int
}

type dimEntry struct {
	dimHash uint64
	refs    int
}

// New 创建空注册表。
func New(opts ...Option) *Registry {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Registry{
		collectorsByID:     make(map[uint64]xmodel.Collector),
		descIDsByCollector: make(map[xmodel.Collector][]uint64),
		dimHashesByName:    make(map[string]*dimEntry),
		logger:             o.logger,
		parallelism:        o.parallelism,
	}
}

// Register 注册采集器。注册是全有或全无的：任何一个描述符校验
// 失败时整个注册被拒绝，注册表状态不变。
//
// 可能的错误：
//   - ErrNoDescriptors：Describe 没有返回描述符；
//   - AlreadyRegisteredError：某描述符的 ID 已被注册；
//   - ErrDescriptorMismatch：同名指标的维度（类型/帮助文本/
//     变量标签集）与已注册的不一致，或本次注册内部自相矛盾。
func (r *Registry) Register(c xmodel.Collector) error {
	descs := c.Describe()
	if len(descs) == 0 {
		return ErrNoDescriptors
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// 第一阶段只做校验，不触碰注册表状态。
	newIDs := make(map[uint64]struct{}, len(descs))
	newDims := make(map[string]uint64, len(descs))
	for _, desc := range descs {
		if existing, ok := r.collectorsByID[desc.ID()]; ok {
			return AlreadyRegisteredError{
				ExistingCollector: existing,
				NewCollector:      c,
				FQName:            desc.FQName(),
			}
		}
		if _, ok := newIDs[desc.ID()]; ok {
			// 同一采集器内重复声明同一描述符是合法的
			// （例如向量与其子指标），跳过即可。
			continue
		}

		if entry, ok := r.dimHashesByName[desc.FQName()]; ok && entry.dimHash != desc.DimHash() {
			return fmt.Errorf("%w: %q", ErrDescriptorMismatch, desc.FQName())
		}
		if dim, ok := newDims[desc.FQName()]; ok && dim != desc.DimHash() {
			return fmt.Errorf("%w: %q", ErrDescriptorMismatch, desc.FQName())
		}

		newIDs[desc.ID()] = struct{}{}
		newDims[desc.FQName()] = desc.DimHash()
	}

	// 第二阶段提交。
	ids := make([]uint64, 0, len(newIDs))
	for id := range newIDs {
		r.collectorsByID[id] = c
		ids = append(ids, id)
	}
	r.descIDsByCollector[c] = ids
	for _, desc := range descs {
		entry, ok := r.dimHashesByName[desc.FQName()]
		if !ok {
			entry = &dimEntry{dimHash: desc.DimHash()}
			r.dimHashesByName[desc.FQName()] = entry
		}
		entry.refs++
	}
	return nil
}

// MustRegister 注册若干采集器，任一失败时 panic。
func (r *Registry) MustRegister(cs ...xmodel.Collector) {
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
}

// Unregister 注销采集器，返回是否确实注销了。
// 未注册过的采集器返回 false。
func (r *Registry) Unregister(c xmodel.Collector) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids, ok := r.descIDsByCollector[c]
	if !ok {
		return false
	}
	for _, id := range ids {
		delete(r.collectorsByID, id)
	}
	delete(r.descIDsByCollector, c)

	for _, desc := range c.Describe() {
		entry, ok := r.dimHashesByName[desc.FQName()]
		if !ok {
			continue
		}
		entry.refs--
		if entry.refs <= 0 {
			delete(r.dimHashesByName, desc.FQName())
		}
	}
	return true
}

// Gather 并发调用所有采集器并合并输出：同名指标族合并为一个，
// 族按名称排序，族内样本按标签序列排序。
//
// 单个采集器的 panic 被捕获为 ErrCollectorPanic，其余采集器的
// 输出照常返回；合并阶段发现的元数据冲突或重复标签序列报告为
// InconsistentFamilyError，冲突的族整体丢弃。
//
// 注意返回语义是部分成功而非整体失败：err 非 nil 时返回的指标族
// 仍然可用，是全部无冲突输出的合并，错误通过 errors.Join 聚合。
// 调用方应先处理返回的族，再决定如何上报错误。
func (r *Registry) Gather() ([]*xmodel.MetricFamily, error) {
	r.mu.RLock()
	collectors := make([]xmodel.Collector, 0, len(r.descIDsByCollector))
	for c := range r.descIDsByCollector {
		collectors = append(collectors, c)
	}
	r.mu.RUnlock()

	results := make([][]*xmodel.MetricFamily, len(collectors))
	errs := make([]error, len(collectors))

	var g errgroup.Group
	g.SetLimit(r.parallelism)
	for i, c := range collectors {
		i, c := i, c
		g.Go(func() error {
			defer func() {
				if rec := recover(); rec != nil {
					r.logger.Error("collector panicked", "panic", rec)
					errs[i] = fmt.Errorf("%w: %v", ErrCollectorPanic, rec)
				}
			}()
			results[i] = c.Collect()
			return nil
		})
	}
	_ = g.Wait()

	merged, mergeErrs := mergeFamilies(results)
	return merged, errors.Join(append(errs, mergeErrs...)...)
}

// mergeFamilies 合并多批指标族：同名族校验元数据一致后合并样本，
// 样本排序并检查重复标签序列。冲突的族整体丢弃。
func mergeFamilies(results [][]*xmodel.MetricFamily) ([]*xmodel.MetricFamily, []error) {
	byName := make(map[string]*xmodel.MetricFamily)
	dropped := make(map[string]struct{})
	var errs []error

	for _, families := range results {
		for _, fam := range families {
			if fam == nil || len(fam.Metrics) == 0 {
				continue
			}
			existing, ok := byName[fam.Name]
			if !ok {
				byName[fam.Name] = &xmodel.MetricFamily{
					Name:    fam.Name,
					Help:    fam.Help,
					Kind:    fam.Kind,
					Metrics: slices.Clone(fam.Metrics),
				}
				continue
			}
			if existing.Kind != fam.Kind {
				errs = append(errs, InconsistentFamilyError{Name: fam.Name, Reason: "conflicting kinds"})
				dropped[fam.Name] = struct{}{}
				continue
			}
			if existing.Help != fam.Help {
				errs = append(errs, InconsistentFamilyError{Name: fam.Name, Reason: "conflicting help texts"})
				dropped[fam.Name] = struct{}{}
				continue
			}
			existing.Metrics = append(existing.Metrics, fam.Metrics...)
		}
	}

	merged := make([]*xmodel.MetricFamily, 0, len(byName))
	for name, fam := range byName {
		if _, ok := dropped[name]; ok {
			continue
		}
		sort.SliceStable(fam.Metrics, func(i, j int) bool {
			return xmodel.CompareLabelPairs(fam.Metrics[i].Labels, fam.Metrics[j].Labels) < 0
		})
		if dup, ok := findDuplicateLabels(fam.Metrics); ok {
			errs = append(errs, InconsistentFamilyError{
				Name:   name,
				Reason: fmt.Sprintf("duplicate label set %v", dup),
			})
			continue
		}
		merged = append(merged, fam)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Name < merged[j].Name })
	return merged, errs
}

// findDuplicateLabels 在已排序的样本序列中查找重复的标签序列。
func findDuplicateLabels(samples []xmodel.Sample) ([]xdesc.LabelPair, bool) {
	for i := 1; i < len(samples); i++ {
		if xmodel.CompareLabelPairs(samples[i-1].Labels, samples[i].Labels) == 0 {
			return samples[i].Labels, true
		}
	}
	return nil, false
}
