package hashing_test

import (
	"testing"

	"github.com/hasbyte1/go-salted-hash/hashing"
)

func benchHasher(b *testing.B, alg hashing.Algorithm) *hashing.Hasher {
	b.Helper()
	h, err := hashing.NewHasher(alg, hashing.DefaultSaltSize)
	if err != nil {
		b.Fatalf("NewHasher: %v", err)
	}
	return h
}

func BenchmarkHasher_Hash(b *testing.B) {
	for _, alg := range hashing.Algorithms() {
		b.Run(alg.String(), func(b *testing.B) {
			h := benchHasher(b, alg)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = h.Hash("bench-password")
			}
		})
	}
}

func BenchmarkHasher_Validate(b *testing.B) {
	for _, alg := range hashing.Algorithms() {
		b.Run(alg.String(), func(b *testing.B) {
			h := benchHasher(b, alg)
			stored, _ := h.Hash("bench-password")
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = h.Validate("bench-password", stored)
			}
		})
	}
}

func BenchmarkGlobal_Hash(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = hashing.Hash("bench-password")
		}
	})
}

func BenchmarkRegistry_Digest(b *testing.B) {
	r := hashing.NewRegistry()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Digest(hashing.Algorithm(i % 6))
	}
}
