// Package xxh32 implements the 32-bit variant of the xxHash algorithm,
// a fast non-cryptographic seeded hash with good statistical distribution.
//
// https://github.com/Cyan4973/xxHash
package xxh32

import (
	"encoding/binary"
	"math/bits"
)

const (
	prime1 uint32 = 0x9E3779B1 // 0b10011110001101110111100110110001
	prime2 uint32 = 0x85EBCA77 // 0b10000101111010111100101001110111
	prime3 uint32 = 0xC2B2AE3D // 0b11000010101100101010111000111101
	prime4 uint32 = 0x27D4EB2F // 0b00100111110101001110101100101111
	prime5 uint32 = 0x165667B1 // 0b00010110010101100110011110110001
)

// Sum32 returns the digest of data with seed 0.
func Sum32(data []byte) uint32 {
	return Checksum(data, 0)
}

// Checksum returns the seeded 32-bit digest of data. A nil slice hashes
// the same as an empty one. All words are read little-endian regardless
// of the host byte order, so digests are identical across architectures.
func Checksum(data []byte, seed uint32) uint32 {
	var h uint32
	p, n := 0, len(data)

	if n >= 16 {
		v1 := seed + prime1 + prime2
		v2 := seed + prime2
		v3 := seed
		v4 := seed - prime1
		for ; n-p >= 16; p += 16 {
			v1 = round(v1, binary.LittleEndian.Uint32(data[p:]))
			v2 = round(v2, binary.LittleEndian.Uint32(data[p+4:]))
			v3 = round(v3, binary.LittleEndian.Uint32(data[p+8:]))
			v4 = round(v4, binary.LittleEndian.Uint32(data[p+12:]))
		}
		h = bits.RotateLeft32(v1, 1) + bits.RotateLeft32(v2, 7) +
			bits.RotateLeft32(v3, 12) + bits.RotateLeft32(v4, 18)
	} else {
		h = seed + prime5
	}

	h += uint32(n)

	for ; n-p >= 4; p += 4 {
		h += binary.LittleEndian.Uint32(data[p:]) * prime3
		h = bits.RotateLeft32(h, 17) * prime4
	}
	for ; p < n; p++ {
		h += uint32(data[p]) * prime5
		h = bits.RotateLeft32(h, 11) * prime1
	}

	return avalanche(h)
}

// round mixes one input word into a lane.
func round(lane, word uint32) uint32 {
	lane += word * prime2
	lane = bits.RotateLeft32(lane, 13)
	lane *= prime1
	return lane
}

// avalanche mixes all bits to finalize the hash.
func avalanche(h uint32) uint32 {
	h ^= h >> 15
	h *= prime2
	h ^= h >> 13
	h *= prime3
	h ^= h >> 16
	return h
}
