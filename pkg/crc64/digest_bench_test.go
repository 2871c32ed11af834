package crc64

import (
	"crypto/rand"
	"fmt"
	stdcrc64 "hash/crc64"
	"testing"
)

// Prevent the compiler from optimizing away benchmarked results.
var crc64Sink uint64

func benchSizes() []int { return []int{16, 64, 128, 256, 512, 1024, 4096, 16384, 65536} }

// BenchmarkCRC64 compares the stdlib hash/crc64 implementation, the
// slicing-by-16 table path, and the carryless-multiply path across input
// sizes. Sub-benchmarks are named "impl=(stdlib|table|simd)/<size>B" so that
// benchstat can compare columns with `-col /impl`.
func BenchmarkCRC64(b *testing.B) {
	sizes := benchSizes()
	data := make([]byte, sizes[len(sizes)-1])
	_, _ = rand.Read(data)

	tbl := stdcrc64.MakeTable(stdcrc64.ECMA)

	for _, sz := range sizes {
		buf := data[:sz]

		b.Run(fmt.Sprintf("impl=stdlib/%dB", sz), func(sb *testing.B) {
			sb.SetBytes(int64(sz))
			for i := 0; i < sb.N; i++ {
				crc64Sink = stdcrc64.Checksum(buf, tbl)
			}
		})

		b.Run(fmt.Sprintf("impl=table/%dB", sz), func(sb *testing.B) {
			sb.SetBytes(int64(sz))
			d := NewTable()
			for i := 0; i < sb.N; i++ {
				d.Reset()
				_, _ = d.Write(buf)
				crc64Sink = d.Sum64()
			}
		})

		b.Run(fmt.Sprintf("impl=simd/%dB", sz), func(sb *testing.B) {
			sb.SetBytes(int64(sz))
			for i := 0; i < sb.N; i++ {
				crc64Sink = Checksum(buf)
			}
		})
	}
}
