package mnemonic

import (
	"strconv"
	"strings"
)

// Mnemonic is an ordered word sequence. Word order encodes entropy order.
type Mnemonic struct {
	words []string
}

// NewMnemonic wraps a word sequence. The slice is copied.
func NewMnemonic(words []string) Mnemonic {
	w := make([]string, len(words))
	copy(w, words)
	return Mnemonic{words: w}
}

// Len returns the number of words.
func (m Mnemonic) Len() int {
	return len(m.words)
}

// Words returns a copy of the words.
func (m Mnemonic) Words() []string {
	out := make([]string, len(m.words))
	copy(out, m.words)
	return out
}

// String returns the words joined by single spaces.
func (m Mnemonic) String() string {
	return strings.Join(m.words, " ")
}

// Format renders one "<position>: <word>" line per word, 1-based, joined by
// newlines with no trailing newline.
func (m Mnemonic) Format() string {
	var b strings.Builder
	for i, w := range m.words {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(": ")
		b.WriteString(w)
	}
	return b.String()
}
