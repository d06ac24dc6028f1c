package xatomic

import "testing"

func BenchmarkValue_Float64_Add(b *testing.B) {
	var v Value[float64]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v.Add(1)
	}
}

func BenchmarkValue_Int64_Add(b *testing.B) {
	var v Value[int64]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v.Add(1)
	}
}

func BenchmarkValue_Float64_AddParallel(b *testing.B) {
	var v Value[float64]
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			v.Add(1)
		}
	})
}

func BenchmarkValue_Load(b *testing.B) {
	var v Value[float64]
	v.Set(42)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.Load()
	}
}
