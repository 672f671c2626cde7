// Package mnemonic implements BIP-39 mnemonic generation: entropy,
// checksum, 11-bit word mapping and formatting.
package mnemonic

import (
	"crypto/rand"
	"fmt"
	"io"
)

// DefaultEntropyBits is the entropy size for 12-word mnemonics.
const DefaultEntropyBits = 128

// ValidEntropySizes lists the entropy sizes BIP-39 allows, in bits.
var ValidEntropySizes = []int{128, 160, 192, 224, 256}

// ValidateEntropySize returns ErrInvalidEntropySize unless bits is one of
// ValidEntropySizes.
func ValidateEntropySize(bits int) error {
	for _, v := range ValidEntropySizes {
		if bits == v {
			return nil
		}
	}
	return fmt.Errorf("%w: %d bits (must be one of %v)", ErrInvalidEntropySize, bits, ValidEntropySizes)
}

// Entropy holds raw random bytes of a valid BIP-39 size.
type Entropy struct {
	data []byte
}

// NewEntropy wraps existing bytes as entropy. The length must be a valid
// BIP-39 size. The bytes are copied.
func NewEntropy(data []byte) (Entropy, error) {
	if err := ValidateEntropySize(len(data) * 8); err != nil {
		return Entropy{}, err
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return Entropy{data: buf}, nil
}

// Bits returns the entropy size in bits.
func (e Entropy) Bits() int {
	return len(e.data) * 8
}

// Bytes returns a copy of the entropy bytes.
func (e Entropy) Bytes() []byte {
	out := make([]byte, len(e.data))
	copy(out, e.data)
	return out
}

// EntropySource draws entropy from a cryptographically secure reader.
type EntropySource struct {
	r io.Reader
}

// NewEntropySource returns a source backed by the operating system CSPRNG.
func NewEntropySource() *EntropySource {
	return &EntropySource{r: rand.Reader}
}

// Generate reads bits/8 fresh random bytes. The size is validated before
// any randomness is consumed.
func (s *EntropySource) Generate(bits int) (Entropy, error) {
	if err := ValidateEntropySize(bits); err != nil {
		return Entropy{}, err
	}
	buf := make([]byte, bits/8)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return Entropy{}, fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}
	return Entropy{data: buf}, nil
}
