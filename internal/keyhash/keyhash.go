// Package keyhash computes the stable 53-bit fingerprint used to pick a
// display color per key. It is a fast two-lane multiplicative mix, not a
// cryptographic hash.
package keyhash

import (
	"unicode/utf16"

	"notelsm/internal/types"
)

// The constants are part of the output contract: existing color assignments
// depend on them.
const (
	seed1 uint32 = 0x243f6a88
	seed2 uint32 = 0x85a308d3

	mul1 uint32 = 2654435761
	mul2 uint32 = 1597334677

	fin1 uint32 = 2246822507
	fin2 uint32 = 3266489909

	highMask uint32 = 0x1fffff
)

// Limit is the exclusive upper bound of every hash value (2^53).
const Limit uint64 = 1 << 53

type lanes struct {
	h1 uint32
	h2 uint32
}

func newLanes() lanes {
	return lanes{h1: seed1, h2: seed2}
}

// write mixes the UTF-16 code units of text into both lanes.
func (l *lanes) write(text string) {
	for _, unit := range utf16.Encode([]rune(text)) {
		c := uint32(unit)
		l.h1 = (l.h1 ^ c) * mul1
		l.h2 = (l.h2 ^ c) * mul2
	}
}

// boundary marks the end of a composite key element.
func (l *lanes) boundary() {
	l.h1 *= mul1
	l.h2 *= mul2
}

func (l lanes) sum() uint64 {
	h1, h2 := l.h1, l.h2
	h1 = (h1 ^ (h1 >> 16)) * fin1
	h1 ^= (h2 ^ (h2 >> 13)) * fin2
	h2 = (h2 ^ (h2 >> 16)) * fin1
	h2 ^= (h1 ^ (h1 >> 13)) * fin2
	return uint64(h2&highMask)<<32 | uint64(h1)
}

// String hashes a single text key.
func String(text string) uint64 {
	l := newLanes()
	l.write(text)
	return l.sum()
}

// Composite hashes an ordered sequence of text values. ["a", "b"], ["b", "a"]
// and ["ab"] all hash differently.
func Composite(parts ...string) uint64 {
	l := newLanes()
	for _, part := range parts {
		l.write(part)
		l.boundary()
	}
	return l.sum()
}

// Sum hashes a key according to its shape.
func Sum(key types.Key) uint64 {
	if key.IsComposite() {
		return Composite(key.Parts()...)
	}
	return String(key.Text())
}
