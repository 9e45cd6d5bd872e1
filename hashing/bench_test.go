package hashing_test

import (
	"testing"

	"github.com/hasbyte1/go-pbkdf2-utils/hashing"
)

// ──────────────────────────────────────────────────────────────────────────────
// PBKDF2 benchmarks
// ──────────────────────────────────────────────────────────────────────────────
//
// Note: the KDF is intentionally slow. The Default benchmarks measure the
// real-world cost; the Fast variants use 1000 iterations to measure
// framework overhead only.

func BenchmarkPBKDF2_Default_Make(b *testing.B) {
	h, _ := hashing.NewPBKDF2Hasher(hashing.DefaultPBKDF2Options())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Make("bench-password")
	}
}

func BenchmarkPBKDF2_Default_Check(b *testing.B) {
	h, _ := hashing.NewPBKDF2Hasher(hashing.DefaultPBKDF2Options())
	record, _ := h.Make("bench-password")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Check("bench-password", record)
	}
}

func BenchmarkPBKDF2_Fast_Make(b *testing.B) {
	h, _ := hashing.NewPBKDF2Hasher(fastPBKDF2Opts())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Make("bench-password")
	}
}

// The Correct/Wrong pair exists to sample verification timing: with an
// early-exit comparison the Wrong case would finish measurably faster.
// Both should report essentially identical ns/op.

func BenchmarkPBKDF2_Check_Correct(b *testing.B) {
	h, _ := hashing.NewPBKDF2Hasher(fastPBKDF2Opts())
	record, _ := h.Make("bench-password")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Check("bench-password", record)
	}
}

func BenchmarkPBKDF2_Check_Wrong(b *testing.B) {
	h, _ := hashing.NewPBKDF2Hasher(fastPBKDF2Opts())
	record, _ := h.Make("bench-password")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Check("bench-passworD", record)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Package-level and Manager benchmarks
// ──────────────────────────────────────────────────────────────────────────────

func BenchmarkVerify_Fast(b *testing.B) {
	h, _ := hashing.NewPBKDF2Hasher(fastPBKDF2Opts())
	record, _ := h.Make("bench-password")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = hashing.Verify("bench-password", record)
	}
}

func BenchmarkVerify_MalformedRecord(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = hashing.Verify("bench-password", "pbkdf2_sha256$NaN$AAAA$BBBB")
	}
}

func BenchmarkManager_Make(b *testing.B) {
	m := newTestManager(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Make("bench-password")
	}
}

func BenchmarkManager_CheckWithDetect(b *testing.B) {
	m := newTestManager(b)
	record, _ := m.Make("bench-password")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.CheckWithDetect("bench-password", record)
	}
}
