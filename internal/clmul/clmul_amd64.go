//go:build !purego

package clmul

import "github.com/klauspost/cpuid/v2"

//go:generate go run -tags avogen ./avo -out clmul_amd64.s -stubs clmul_stub_amd64.go

const hasAsm = true

// PCLMULQDQ carries out the multiply itself; SSE2 covers the vector register
// moves and the PSHUFD extraction around it. SSE4.1 is also required, although
// the kernel issues no SSE4.1 instruction.
func supported() bool {
	return cpuid.CPU.Supports(cpuid.CLMUL, cpuid.SSE2, cpuid.SSE4)
}
