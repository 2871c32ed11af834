package clmul

import (
	"unsafe"

	"github.com/miretskiy/crc64fast/internal/table"
)

// chunkSize is the number of bytes folded per loop iteration: eight 16-byte
// lanes advancing in parallel.
const chunkSize = 128

// Supported reports whether the running CPU can execute the hardware
// carryless-multiply kernel. The probe is memoized process-wide by the
// feature-detection libraries, so calling it per digest creation is free.
func Supported() bool {
	return supported()
}

// Update folds p into state using 128-byte carryless-multiplication folding
// and returns the new running residue. Inputs shorter than one aligned
// 128-byte chunk fall through to the table path entirely; otherwise the
// unaligned head and tail go through the table path and the aligned middle
// through the folding loop. Must only be called when Supported() is true
// (or on a purego build, where the portable multiply backs it).
func Update(state uint64, p []byte) uint64 {
	left, middle, right := split(p)
	if len(middle) == 0 {
		return table.Update(state, p)
	}
	state = table.Update(state, left)
	state = foldChunks(state, middle)
	return table.Update(state, right)
}

// split cuts p into an unaligned head of at most 15 bytes, a 16-byte-aligned
// middle holding a whole number of 128-byte chunks, and the remaining tail.
// No bytes are copied. middle is empty whenever p cannot supply a full
// aligned chunk.
func split(p []byte) (left, middle, right []byte) {
	if len(p) < chunkSize {
		return nil, nil, p
	}
	off := int(-uintptr(unsafe.Pointer(&p[0])) & 15)
	n := (len(p) - off) &^ (chunkSize - 1)
	if n == 0 {
		return nil, nil, p
	}
	return p[:off], p[off : off+n], p[off+n:]
}

// foldChunks processes a 16-byte-aligned buffer whose length is a non-zero
// multiple of 128 bytes, reducing the accumulated residue back to 64 bits.
func foldChunks(state uint64, p []byte) uint64 {
	// Receive the initial 128 bytes into eight lanes and fold the running
	// scalar residue into the stream.
	var x [8]vector
	for i := range x {
		x[i] = load(p[i*16:])
	}
	x[0] = x[0].xor(newVector(0, state))

	// Each iteration advances every lane by 128 bytes. The low half of a
	// lane holds the earlier bytes, so it pairs with the farther fold
	// coefficient.
	coeff := newVector(table.K1023, table.K1087)
	for p = p[chunkSize:]; len(p) > 0; p = p[chunkSize:] {
		for i := range x {
			x[i] = load(p[i*16:]).xor(x[i].fold16(coeff))
		}
	}

	// Collapse the eight lanes at decreasing distances: 112, 96, 80, 64,
	// 48, 32 and 16 bytes.
	acc := x[0].fold16(newVector(table.K895, table.K959)).
		xor(x[1].fold16(newVector(table.K767, table.K831))).
		xor(x[2].fold16(newVector(table.K639, table.K703))).
		xor(x[3].fold16(newVector(table.K511, table.K575))).
		xor(x[4].fold16(newVector(table.K383, table.K447))).
		xor(x[5].fold16(newVector(table.K255, table.K319))).
		xor(x[6].fold16(newVector(table.K127, table.K191))).
		xor(x[7])

	// 128 bits → 64 bits, then Barrett.
	return acc.fold8(table.K127).barrett(table.Poly, table.Mu)
}
