//go:build !purego

package clmul

import "golang.org/x/sys/cpu"

const hasAsm = true

// PMULL (the polynomial half of the AES extension) performs the multiply;
// ASIMD covers the vector register moves around it.
func supported() bool {
	return cpu.ARM64.HasASIMD && cpu.ARM64.HasPMULL
}

// clmul returns the 128-bit carryless product of a and b.
//
//go:noescape
func clmul(a, b uint64) (hi, lo uint64)
