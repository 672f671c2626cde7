package output

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Envelope layout constants.
const (
	SaltSize = 16
	// magic(4) | salt(16) | memory(4) | iterations(4) | parallelism(1) | nonce(24) | ciphertext
	headerSize = len(envelopeMagic) + SaltSize + 4 + 4 + 1
)

var envelopeMagic = [4]byte{'M', 'N', 'G', '1'}

// EncryptionParams holds Argon2id parameters.
type EncryptionParams struct {
	Memory      uint32 // in KiB
	Iterations  uint32
	Parallelism uint8
}

// DefaultParams returns recommended Argon2id parameters.
func DefaultParams() EncryptionParams {
	return EncryptionParams{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 4,
	}
}

// Upper bounds accepted when reading an envelope. The header is only
// authenticated after key derivation, so these cap the work a damaged file
// can demand.
const (
	MaxMemory      = 1 << 20 // KiB
	MaxIterations  = 16
	MaxParallelism = 16
)

func (p EncryptionParams) validate() error {
	if p.Iterations == 0 || p.Iterations > MaxIterations ||
		p.Parallelism == 0 || p.Parallelism > MaxParallelism ||
		p.Memory > MaxMemory {
		return fmt.Errorf("invalid key derivation parameters: memory=%d iterations=%d parallelism=%d",
			p.Memory, p.Iterations, p.Parallelism)
	}
	return nil
}

func deriveKey(password, salt []byte, params EncryptionParams) []byte {
	return argon2.IDKey(password, salt, params.Iterations, params.Memory, params.Parallelism, chacha20poly1305.KeySize)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Encrypt seals data under password with Argon2id + XChaCha20-Poly1305.
// The header is authenticated as associated data.
func Encrypt(data, password []byte, params EncryptionParams) ([]byte, error) {
	if len(password) == 0 {
		return nil, fmt.Errorf("empty password")
	}
	if err := params.validate(); err != nil {
		return nil, err
	}

	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	key := deriveKey(password, salt, params)
	defer zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	header := make([]byte, 0, headerSize)
	header = append(header, envelopeMagic[:]...)
	header = append(header, salt...)
	header = binary.LittleEndian.AppendUint32(header, params.Memory)
	header = binary.LittleEndian.AppendUint32(header, params.Iterations)
	header = append(header, params.Parallelism)

	out := make([]byte, 0, headerSize+len(nonce)+len(data)+aead.Overhead())
	out = append(out, header...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, data, header), nil
}

// Decrypt opens an envelope produced by Encrypt.
func Decrypt(encrypted, password []byte) ([]byte, error) {
	nonceSize := chacha20poly1305.NonceSizeX
	minSize := headerSize + nonceSize + chacha20poly1305.Overhead
	if len(encrypted) < minSize {
		return nil, fmt.Errorf("encrypted data too short: %d bytes, need at least %d", len(encrypted), minSize)
	}
	if [4]byte(encrypted[:4]) != envelopeMagic {
		return nil, fmt.Errorf("not an encrypted mnemonic file")
	}

	off := len(envelopeMagic)
	salt := encrypted[off : off+SaltSize]
	off += SaltSize
	params := EncryptionParams{
		Memory:      binary.LittleEndian.Uint32(encrypted[off:]),
		Iterations:  binary.LittleEndian.Uint32(encrypted[off+4:]),
		Parallelism: encrypted[off+8],
	}
	if err := params.validate(); err != nil {
		return nil, err
	}

	header := encrypted[:headerSize]
	nonce := encrypted[headerSize : headerSize+nonceSize]
	ciphertext := encrypted[headerSize+nonceSize:]

	key := deriveKey(password, salt, params)
	defer zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, header)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	return plaintext, nil
}
