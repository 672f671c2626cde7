// Package crypto provides hashing helpers used to fingerprint wordlists.
package crypto

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// DigestSize is the length of a Hash result in bytes.
const DigestSize = 32

// Digest is a BLAKE3-256 hash.
type Digest [DigestSize]byte

// String returns the digest as lowercase hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Short returns the first 8 hex characters, for log lines.
func (d Digest) Short() string {
	return hex.EncodeToString(d[:4])
}

// Hash computes a BLAKE3-256 hash of the input data.
func Hash(data []byte) Digest {
	return blake3.Sum256(data)
}

// HashLines hashes lines joined by '\n' without building the joined string.
func HashLines(lines []string) Digest {
	h := blake3.New()
	for i, l := range lines {
		if i > 0 {
			h.Write([]byte{'\n'})
		}
		h.Write([]byte(l))
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}
