package mnemonic

import "fmt"

// WordlistSize is the number of entries a BIP-39 wordlist must have.
const WordlistSize = 1 << WordBits

// Wordlist is an ordered dictionary indexed 0..2047.
type Wordlist []string

// Validate returns ErrWordlistTooShort if wl cannot serve every 11-bit index.
func (wl Wordlist) Validate() error {
	if len(wl) < WordlistSize {
		return fmt.Errorf("%w: %d words, need %d", ErrWordlistTooShort, len(wl), WordlistSize)
	}
	return nil
}

// WordIndices splits bs into consecutive 11-bit groups and returns each as
// an index in [0, 2047], in stream order.
func WordIndices(bs *BitStream) []uint16 {
	if bs.Len()%WordBits != 0 {
		panic(fmt.Sprintf("mnemonic: bitstream length %d is not a multiple of %d", bs.Len(), WordBits))
	}
	out := make([]uint16, bs.Len()/WordBits)
	for i := range out {
		out[i] = bs.Uint(i*WordBits, WordBits)
	}
	return out
}

// MapWords looks up each 11-bit group of bs in wl. The wordlist is checked
// before any lookup, so a short list never yields partial output.
func MapWords(bs *BitStream, wl Wordlist) (Mnemonic, error) {
	if err := wl.Validate(); err != nil {
		return Mnemonic{}, err
	}
	indices := WordIndices(bs)
	words := make([]string, len(indices))
	for i, idx := range indices {
		words[i] = wl[idx]
	}
	return Mnemonic{words: words}, nil
}
