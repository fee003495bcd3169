package chamfer_test

import (
	"testing"

	"github.com/katalvlaran/pcmatch/chamfer"
	"github.com/katalvlaran/pcmatch/pointcloud"
)

// benchmarkDistance runs Distance on pre-built clouds of size n vs m.
func benchmarkDistance(b *testing.B, n, m int) {
	a, err := pointcloud.Uniform(n, 1)
	if err != nil {
		b.Fatalf("build cloud: %v", err)
	}
	t, err := pointcloud.Uniform(m, 2)
	if err != nil {
		b.Fatalf("build cloud: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, _, err := chamfer.Distance(a, t); err != nil {
			b.Fatalf("Distance failed: %v", err)
		}
	}
}

// BenchmarkDistance_BruteForce stays below the kd-tree crossover.
func BenchmarkDistance_BruteForce(b *testing.B) { benchmarkDistance(b, 64, 64) }

// BenchmarkDistance_KDTree1024 measures the tree path on the reference
// cloud size.
func BenchmarkDistance_KDTree1024(b *testing.B) { benchmarkDistance(b, 1024, 1024) }

// BenchmarkDistance_Asymmetric measures a partial-scan-vs-model workload.
func BenchmarkDistance_Asymmetric(b *testing.B) { benchmarkDistance(b, 256, 2048) }

// BenchmarkBatchDistance_8x1024 measures per-element parallelism.
func BenchmarkBatchDistance_8x1024(b *testing.B) {
	a, err := pointcloud.UniformBatch(8, 1024, 1)
	if err != nil {
		b.Fatalf("build batch: %v", err)
	}
	t, err := pointcloud.UniformBatch(8, 1024, 2)
	if err != nil {
		b.Fatalf("build batch: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, _, err := chamfer.BatchDistance(a, t); err != nil {
			b.Fatalf("BatchDistance failed: %v", err)
		}
	}
}
