// SPDX-License-Identifier: MIT
// Package matrix - murmur3 hashing of vectors and matrices.
//
// Equal values hash equally because rationals are canonical: the hash is fed
// the shape followed by every (numerator, denominator) pair in row-major order.

package matrix

import (
	"encoding/binary"
	"hash"

	"github.com/spaolacci/murmur3"

	"github.com/katalvlaran/tangled/rational"
)

type hasher struct {
	h   hash.Hash64
	buf [8]byte
}

// newHasher starts a murmur3 stream seeded with the given shape words.
func newHasher(shape ...int) *hasher {
	hs := &hasher{h: murmur3.New64()}
	for _, n := range shape {
		hs.writeInt(int64(n))
	}

	return hs
}

func (hs *hasher) writeInt(x int64) {
	binary.LittleEndian.PutUint64(hs.buf[:], uint64(x))
	_, _ = hs.h.Write(hs.buf[:]) // hash.Hash never returns an error
}

func (hs *hasher) writeQs(qs []rational.Q) {
	for _, q := range qs {
		hs.writeInt(q.Num())
		hs.writeInt(q.Den())
	}
}

func (hs *hasher) sum() uint64 { return hs.h.Sum64() }
