package mnemonic

import "fmt"

// BitStream is a fixed sequence of bits stored MSB-first in a byte slice.
// Bit 0 is the most significant bit of the first byte.
type BitStream struct {
	buf []byte
	n   int
}

// NewBitStream returns a stream holding every bit of data in order.
func NewBitStream(data []byte) *BitStream {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &BitStream{buf: buf, n: len(data) * 8}
}

// Len returns the number of bits in the stream.
func (s *BitStream) Len() int {
	return s.n
}

// Bit returns bit i (0 or 1).
func (s *BitStream) Bit(i int) uint8 {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("bitstream: bit %d out of range [0, %d)", i, s.n))
	}
	return (s.buf[i/8] >> (7 - uint(i%8))) & 1
}

// AppendBit appends a single bit (any non-zero value is a 1).
func (s *BitStream) AppendBit(b uint8) {
	if s.n%8 == 0 {
		s.buf = append(s.buf, 0)
	}
	if b != 0 {
		s.buf[s.n/8] |= 1 << (7 - uint(s.n%8))
	}
	s.n++
}

// AppendBits appends the first count bits of src, MSB-first.
func (s *BitStream) AppendBits(src []byte, count int) {
	if count < 0 || count > len(src)*8 {
		panic(fmt.Sprintf("bitstream: cannot take %d bits from %d bytes", count, len(src)))
	}
	for i := 0; i < count; i++ {
		s.AppendBit((src[i/8] >> (7 - uint(i%8))) & 1)
	}
}

// Append appends every bit of other.
func (s *BitStream) Append(other *BitStream) {
	for i := 0; i < other.n; i++ {
		s.AppendBit(other.Bit(i))
	}
}

// Uint reads width bits starting at offset as a big-endian unsigned integer.
// Width must be in [1, 16].
func (s *BitStream) Uint(offset, width int) uint16 {
	if width < 1 || width > 16 {
		panic(fmt.Sprintf("bitstream: width %d out of range [1, 16]", width))
	}
	if offset < 0 || offset+width > s.n {
		panic(fmt.Sprintf("bitstream: read [%d, %d) exceeds length %d", offset, offset+width, s.n))
	}
	var v uint16
	for i := offset; i < offset+width; i++ {
		v = v<<1 | uint16(s.Bit(i))
	}
	return v
}

// Bytes returns a copy of the backing bytes. Unused low bits of the last
// byte are zero.
func (s *BitStream) Bytes() []byte {
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

// String renders the stream as a string of '0' and '1'.
func (s *BitStream) String() string {
	out := make([]byte, s.n)
	for i := range out {
		out[i] = '0' + s.Bit(i)
	}
	return string(out)
}
