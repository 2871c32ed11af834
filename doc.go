// Package crc64fast is the root of a SIMD-accelerated CRC-64-ECMA
// (CRC-64-XZ) checksum library. The public incremental digest lives in
// pkg/crc64; the carryless-multiplication folding kernel and the
// slicing-by-16 table fallback live under internal/. See the README for a
// usage example and the benchmark command.
package crc64fast
