package xmetric

import (
	"testing"
)

func BenchmarkCounterInc(b *testing.B) {
	c := MustNewCounter(Opts{Name: "bench_total"})
	for i := 0; i < b.N; i++ {
		c.Inc()
	}
}

func BenchmarkIntCounterInc(b *testing.B) {
	c, _ := NewIntCounter(Opts{Name: "bench_total"})
	for i := 0; i < b.N; i++ {
		c.Inc()
	}
}

func BenchmarkCounterInc_Parallel(b *testing.B) {
	c := MustNewCounter(Opts{Name: "bench_total"})
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Inc()
		}
	})
}

func BenchmarkGaugeSet(b *testing.B) {
	g := MustNewGauge(Opts{Name: "bench_depth"})
	for i := 0; i < b.N; i++ {
		g.Set(42)
	}
}

func BenchmarkHistogramObserve(b *testing.B) {
	h := MustNewHistogram(HistogramOpts{Opts: Opts{Name: "bench_seconds"}})
	for i := 0; i < b.N; i++ {
		h.Observe(0.03)
	}
}

func BenchmarkHistogramObserve_Parallel(b *testing.B) {
	h := MustNewHistogram(HistogramOpts{Opts: Opts{Name: "bench_seconds"}})
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			h.Observe(0.03)
		}
	})
}

func BenchmarkLocalCounterInc(b *testing.B) {
	c := MustNewCounter(Opts{Name: "bench_total"})
	local := c.Local()
	for i := 0; i < b.N; i++ {
		local.Inc()
	}
	local.Flush()
}

func BenchmarkLocalHistogramObserve(b *testing.B) {
	h := MustNewHistogram(HistogramOpts{Opts: Opts{Name: "bench_seconds"}})
	local := h.Local()
	for i := 0; i < b.N; i++ {
		local.Observe(0.03)
	}
	local.Flush()
}

func BenchmarkCounterVecWith(b *testing.B) {
	vec, _ := NewCounterVec(Opts{Name: "bench_total"}, []string{"method", "code"})
	for i := 0; i < b.N; i++ {
		vec.With("GET", "200").Inc()
	}
}
