//go:build purego || (!amd64 && !arm64)

package clmul

const hasAsm = false

// No hardware kernel: the update function pointer must never select this
// package's Update over the table path, but the portable multiply keeps the
// folding pipeline testable on every platform.
func supported() bool {
	return false
}

func clmul(a, b uint64) (hi, lo uint64) {
	return clmulGeneric(a, b)
}
