// Package clmul implements the carryless-multiplication CRC-64-ECMA update.
// A 128-bit lane is modelled as a pair of uint64 halves; the only
// architecture-specific piece is the 64×64→128 carryless multiply, provided
// by a PCLMULQDQ kernel on amd64, a PMULL kernel on arm64, and a portable
// bit-iteration loop everywhere else (or under the purego build tag).
package clmul

import "encoding/binary"

// vector is a 128-bit polynomial over GF(2), viewed as two 64-bit halves.
// lo holds the first 8 bytes of a little-endian 16-byte load.
type vector struct {
	hi, lo uint64
}

func newVector(hi, lo uint64) vector {
	return vector{hi: hi, lo: lo}
}

// load reads a 16-byte lane starting at p[0].
func load(p []byte) vector {
	return vector{
		hi: binary.LittleEndian.Uint64(p[8:16]),
		lo: binary.LittleEndian.Uint64(p[0:8]),
	}
}

func (v vector) xor(o vector) vector {
	return vector{hi: v.hi ^ o.hi, lo: v.lo ^ o.lo}
}

// fold16 advances the lane by the distance encoded in coeff:
// (coeff.lo ⊗ v.lo) ⊕ (coeff.hi ⊗ v.hi), where ⊗ is carryless multiply.
func (v vector) fold16(coeff vector) vector {
	hHi, hLo := clmul(coeff.lo, v.lo)
	lHi, lLo := clmul(coeff.hi, v.hi)
	return vector{hi: hHi ^ lHi, lo: hLo ^ lLo}
}

// fold8 collapses 16 bytes to 8: (coeff ⊗ v.lo) ⊕ (v.hi zero-extended).
func (v vector) fold8(coeff uint64) vector {
	hi, lo := clmul(coeff, v.lo)
	return vector{hi: hi, lo: lo ^ v.hi}
}

// barrett reduces the 128-bit residue modulo poly using the precomputed
// mu = floor(x^128 / poly): t = (v.lo ⊗ mu).lo, then the high half of
// (t ⊗ poly) ⊕ (t << 64) ⊕ v.
func (v vector) barrett(poly, mu uint64) uint64 {
	_, t := clmul(v.lo, mu)
	hi, _ := clmul(t, poly)
	return v.hi ^ t ^ hi
}
