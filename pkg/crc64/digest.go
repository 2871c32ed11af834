// Package crc64 computes the CRC-64-ECMA (CRC-64-XZ) checksum of byte
// streams. On amd64 and arm64 CPUs with carryless-multiply instructions a
// folding kernel processes 128 bytes per iteration; everywhere else, and for
// inputs too short to fill an aligned chunk, a slicing-by-16 table
// implementation takes over. Both paths return bit-identical results and
// match the standard library's hash/crc64 ECMA checksum.
package crc64

import (
	"hash"

	"github.com/miretskiy/crc64fast/internal/clmul"
	"github.com/miretskiy/crc64fast/internal/table"
)

// Size of a CRC-64 checksum in bytes.
const Size = 8

type updateFn func(state uint64, p []byte) uint64

// defaultUpdate is resolved once per process. The digest stores the chosen
// function, so Write stays a single indirect call with no feature branching.
var defaultUpdate = func() updateFn {
	if clmul.Supported() {
		return clmul.Update
	}
	return table.Update
}()

// Digest is an in-progress CRC-64 computation. It implements hash.Hash64.
// The zero value is not usable; call New or NewTable. A Digest must not be
// written to concurrently, but distinct digests are independent.
type Digest struct {
	update updateFn
	state  uint64
}

var _ hash.Hash64 = (*Digest)(nil)

// New creates a Digest using the fastest update path the running CPU
// supports.
func New() *Digest {
	return &Digest{update: defaultUpdate, state: ^uint64(0)}
}

// NewTable creates a Digest pinned to the table-driven path, regardless of
// CPU features.
func NewTable() *Digest {
	return &Digest{update: table.Update, state: ^uint64(0)}
}

// Write folds p into the running checksum. It never fails and always returns
// len(p), nil.
func (d *Digest) Write(p []byte) (int, error) {
	d.state = d.update(d.state, p)
	return len(p), nil
}

// Sum64 returns the CRC-64-ECMA value of all bytes written so far. It is
// idempotent and does not modify the digest.
func (d *Digest) Sum64() uint64 {
	return ^d.state
}

// Sum appends the current checksum, big-endian, to in.
func (d *Digest) Sum(in []byte) []byte {
	s := d.Sum64()
	return append(in, byte(s>>56), byte(s>>48), byte(s>>40), byte(s>>32),
		byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

// Reset restores the digest to its initial state, keeping the update path.
func (d *Digest) Reset() {
	d.state = ^uint64(0)
}

// Size returns the number of bytes Sum will append.
func (d *Digest) Size() int { return Size }

// BlockSize returns the hash's underlying block size.
func (d *Digest) BlockSize() int { return 1 }

// Clone returns an independent copy: further writes to either digest do not
// affect the other.
func (d *Digest) Clone() *Digest {
	c := *d
	return &c
}

// Checksum returns the CRC-64-ECMA of data in one shot.
func Checksum(data []byte) uint64 {
	return ^defaultUpdate(^uint64(0), data)
}

// Update extends a finalized checksum crc with additional data, as if the
// concatenation had been hashed in one pass. Update(0, data) equals
// Checksum(data).
func Update(crc uint64, data []byte) uint64 {
	return ^defaultUpdate(^crc, data)
}
