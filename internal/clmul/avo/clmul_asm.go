//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	op "github.com/mmcloughlin/avo/operand"
)

// This file generates the amd64 carryless-multiply kernel. The whole SIMD
// CRC pipeline needs exactly one instruction the compiler will not emit on
// its own (PCLMULQDQ), so the kernel stays minimal: multiply the low
// quadwords of two XMM registers and hand both product halves back. The
// folding arithmetic around it lives in plain Go where the compiler can
// schedule it.
//
// PCLMULQDQ selector 0x00 picks the low 64 bits of both operands; MOVQ into
// an XMM register zeroes the upper lane, so the selector choice is the only
// subtlety. PSHUFD 0x4e swaps the two 64-bit halves to expose the high half
// of the product to a plain MOVQ store.

func main() {
	Package("github.com/miretskiy/crc64fast/internal/clmul")
	ConstraintExpr("!purego")

	TEXT("clmul", NOSPLIT, "func(a, b uint64) (hi, lo uint64)")
	Doc("clmul returns the 128-bit carryless product of a and b.")

	a := Load(Param("a"), GP64())
	b := Load(Param("b"), GP64())

	x, y := XMM(), XMM()
	MOVQ(a, x)
	MOVQ(b, y)
	PCLMULQDQ(op.Imm(0x00), y, x)

	lo := GP64()
	MOVQ(x, lo)
	Store(lo, ReturnIndex(1))

	PSHUFD(op.Imm(0x4e), x, x)
	hi := GP64()
	MOVQ(x, hi)
	Store(hi, ReturnIndex(0))

	RET()
	Generate()
}
