package hmm_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/metastates/hmm"
)

func BenchmarkFit(b *testing.B) {
	data := blocks(10_000, 250, 1)
	opts := hmm.DefaultOptions()
	opts.MaxIter = 10
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hmm.Fit(context.Background(), data, nil, 3, opts); err != nil {
			b.Fatalf("Fit failed: %v", err)
		}
	}
}

func BenchmarkLogLikelihood(b *testing.B) {
	data := blocks(100_000, 250, 1)
	m, err := hmm.Fit(context.Background(), data[:10_000], nil, 3, hmm.DefaultOptions())
	if err != nil {
		b.Fatalf("Fit failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.LogLikelihood(data, nil); err != nil {
			b.Fatalf("LogLikelihood failed: %v", err)
		}
	}
}
