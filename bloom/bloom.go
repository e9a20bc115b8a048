// Package bloom implements a fixed-size Bloom filter over string keys,
// sized and hashed per the PathMap companion-filter format: a byte array
// whose bit length is a multiple of 24 (so it base64-encodes without
// padding), with membership tested by double hashing with the 64-bit XXH3
// function (xxh3.HashSeed); the classic XXH64 function is not used.
package bloom

import "github.com/zeebo/xxh3"

// Filter is a sized bit array with double-hashed membership queries. The
// zero value is not usable; construct with New.
type Filter struct {
	bits []byte
	m    uint64
	k    int
	s    uint64
}

// New returns an empty Filter sized per config, after applying config's
// defaults. It returns ErrConfig if any field is outside its valid domain.
func New(config Config) (*Filter, error) {
	resolved, err := config.resolved()
	if err != nil {
		return nil, err
	}
	return &Filter{
		bits: make([]byte, (resolved.M+7)/8),
		m:    resolved.M,
		k:    resolved.K,
		s:    resolved.S,
	}, nil
}

// Restore reconstructs a Filter from a previously serialized bit array and
// the m, k, s parameters it was built with. It performs no validation:
// bits must hold at least m bits, or Add and Has index past its end. Use
// New for a validated, empty Filter instead.
func Restore(bits []byte, m uint64, k int, s uint64) *Filter {
	return &Filter{bits: bits, m: m, k: k, s: s}
}

// Add sets every bit value's k hash positions hash to.
func (f *Filter) Add(value string) {
	h1, h2 := f.hashPair(value)
	for i := 0; i < f.k; i++ {
		f.setBit(bitPosition(h1, h2, uint64(i), f.m))
	}
}

// Has reports whether every bit value's k hash positions hash to is set.
// It never false-negatives a value that was Add'ed; it may false-positive
// a value that was not.
func (f *Filter) Has(value string) bool {
	h1, h2 := f.hashPair(value)
	for i := 0; i < f.k; i++ {
		if !f.hasBit(bitPosition(h1, h2, uint64(i), f.m)) {
			return false
		}
	}
	return true
}

// Bytes exposes the filter's raw bit array, most-significant-bit first
// within each byte, ready for base64 encoding alongside a PathMap file.
func (f *Filter) Bytes() []byte {
	return f.bits
}

// M returns the filter's bit array size.
func (f *Filter) M() uint64 { return f.m }

// K returns the number of hash positions used per element.
func (f *Filter) K() int { return f.k }

// S returns the hash seed.
func (f *Filter) S() uint64 { return f.s }

func (f *Filter) hashPair(value string) (h1, h2 uint64) {
	b := []byte(value)
	return xxh3.HashSeed(b, f.s), xxh3.HashSeed(b, f.s+1)
}

// bitPosition computes the i-th hash position per §4.F: h1 + i*h2, with all
// arithmetic performed modulo 2^64 (Go's unsigned overflow) before the
// final reduction modulo m.
func bitPosition(h1, h2, i, m uint64) uint64 {
	return (h1 + i*h2) % m
}

// setBit and hasBit address bit b most-significant-bit first within its
// byte, so a base64 rendering of the byte array preserves bit order
// left-to-right.
func (f *Filter) setBit(b uint64) {
	byteIdx := b / 8
	bitIdx := 7 - (b % 8)
	f.bits[byteIdx] |= 1 << bitIdx
}

func (f *Filter) hasBit(b uint64) bool {
	byteIdx := b / 8
	bitIdx := 7 - (b % 8)
	return f.bits[byteIdx]&(1<<bitIdx) != 0
}
