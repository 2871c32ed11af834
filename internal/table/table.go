// Package table implements the slicing-by-16 scalar CRC-64-ECMA update and
// owns every polynomial constant shared with the carryless-multiplication
// path. All values live in the bit-reversed ("reflected") domain so the
// folding identities line up with hardware CLMUL semantics; nothing in this
// library bit-reverses at the boundaries.
package table

import "math/bits"

// Poly is the CRC-64-ECMA generator polynomial in bit-reversed form. The
// normal-form polynomial is 0x42f0e1eba9ea3693.
const Poly = 0x92d8af2baf0e1e85

// Mu is the Barrett reduction constant, floor(x^128 / POLY) bit-reversed.
const Mu = 0x9c3e466c172963d5

// polyNormal is only used while building the byte tables; the long-division
// recurrence runs in the normal domain and the result is stored reflected.
const polyNormal = 0x42f0e1eba9ea3693

// Folding coefficients. Each Kn equals bit_reverse(x^n mod POLY); Kn advances
// a 64-bit residue by (n+1)/8 bytes of zero input.
const (
	K127  = 0xdabe95afc7875f40 // == tables[7][1]
	K191  = 0xe05dd497ca393ae4 // == tables[15][1]
	K255  = 0x3be653a30fe1af51
	K319  = 0x60095b008a9efa44
	K383  = 0x69a35d91c3730254
	K447  = 0xb5ea1af9c013aca4
	K511  = 0x081f6054a7842df4
	K575  = 0x6ae3efbb9dd441f3
	K639  = 0x0e31d519421a63a5
	K703  = 0x2e30203212cac325
	K767  = 0xe4ce2cd55fea0037
	K831  = 0x2fe3fd2920ce82ec
	K895  = 0x947874de595052cb
	K959  = 0x9e735cb59b4724da
	K1023 = 0xd7d86b2af73de740
	K1087 = 0x8757d71d4fcc1000
)

// tables[j][b] == bit_reverse(reverse_bits(b) · x^{8(j+1)} mod POLY).
// tables[0] is the classic byte-at-a-time table; tables[1..15] pre-multiply
// each byte by its distance from the end of a 16-byte block.
var tables [16][256]uint64

func init() {
	for j := range tables {
		steps := 8 * (j + 1)
		for b := 0; b < 256; b++ {
			value := uint64(bits.Reverse8(byte(b))) << 56
			for s := 0; s < steps; s++ {
				if value>>63 != 0 {
					value = value<<1 ^ polyNormal
				} else {
					value <<= 1
				}
			}
			tables[j][b] = bits.Reverse64(value)
		}
	}
}

// Update folds p into state, 16 bytes per step, and returns the new running
// residue. It is pure and handles any slice length including zero. state is
// the raw (non-inverted) residue; callers own the ^0 initialisation and the
// final inversion.
func Update(state uint64, p []byte) uint64 {
	for len(p) >= 16 {
		state = tables[15][p[0]^byte(state)] ^
			tables[14][p[1]^byte(state>>8)] ^
			tables[13][p[2]^byte(state>>16)] ^
			tables[12][p[3]^byte(state>>24)] ^
			tables[11][p[4]^byte(state>>32)] ^
			tables[10][p[5]^byte(state>>40)] ^
			tables[9][p[6]^byte(state>>48)] ^
			tables[8][p[7]^byte(state>>56)] ^
			tables[7][p[8]] ^
			tables[6][p[9]] ^
			tables[5][p[10]] ^
			tables[4][p[11]] ^
			tables[3][p[12]] ^
			tables[2][p[13]] ^
			tables[1][p[14]] ^
			tables[0][p[15]]
		p = p[16:]
	}
	for _, b := range p {
		state = state>>8 ^ tables[0][byte(state)^b]
	}
	return state
}
