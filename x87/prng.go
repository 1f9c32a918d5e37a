package x87

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// streamPRNG is a deterministic 64-bit generator built on a single-lane
// SHAKE256 XOF: a seed is absorbed once, then output bytes are squeezed
// on demand. A fixed seed always produces the same sequence.
type streamPRNG struct {
	xof sha3.ShakeHash
}

func newStreamPRNG(seed int64) *streamPRNG {
	x := sha3.NewShake256()
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(seed))
	x.Write(b[:])
	return &streamPRNG{xof: x}
}

func (p *streamPRNG) nextUint64() uint64 {
	var b [8]byte
	p.xof.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// fillRandomBytes writes len(buf) pseudo-random bytes pulled in 64-bit
// chunks and written into the value's raw bytes until filled, so that
// every representable bit pattern — including non-canonical ones — can
// appear.
func (p *streamPRNG) fillRandomBytes(buf []byte) {
	for i := 0; i < len(buf); i += 8 {
		var chunk [8]byte
		binary.LittleEndian.PutUint64(chunk[:], p.nextUint64())
		n := copy(buf[i:], chunk[:])
		_ = n
	}
}
