package mnemonic

import (
	"crypto/sha256"
	"fmt"
)

// WordBits is the number of bits encoded by each mnemonic word.
const WordBits = 11

// ChecksumBits returns the checksum length for the given entropy size.
func ChecksumBits(entropyBits int) int {
	return entropyBits / 32
}

// Checksum returns the first Bits()/32 bits of SHA-256(entropy).
func Checksum(e Entropy) *BitStream {
	digest := sha256.Sum256(e.data)
	cs := &BitStream{}
	cs.AppendBits(digest[:], ChecksumBits(e.Bits()))
	return cs
}

// Encode returns the entropy bits followed by the checksum bits.
func Encode(e Entropy) *BitStream {
	if e.Bits()%32 != 0 {
		panic(fmt.Sprintf("mnemonic: entropy size %d is not a multiple of 32", e.Bits()))
	}
	bs := NewBitStream(e.data)
	bs.Append(Checksum(e))

	if bs.Len()%WordBits != 0 {
		panic(fmt.Sprintf("mnemonic: checksummed length %d is not a multiple of %d", bs.Len(), WordBits))
	}
	return bs
}
