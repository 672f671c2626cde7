package output

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
	"time"
)

// fastParams returns low-cost Argon2 params for fast tests.
func fastParams() EncryptionParams {
	return EncryptionParams{
		Memory:      64,
		Iterations:  1,
		Parallelism: 1,
	}
}

func TestEncryptDecrypt_Roundtrip(t *testing.T) {
	plaintext := []byte("1: zoo\n2: zoo")
	password := []byte("strong-password-123")

	encrypted, err := Encrypt(plaintext, password, fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	decrypted, err := Decrypt(encrypted, password)
	if err != nil {
		t.Fatalf("Decrypt() error: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("decrypted = %q, want %q", decrypted, plaintext)
	}
}

func TestEncrypt_EmptyPassword(t *testing.T) {
	if _, err := Encrypt([]byte("data"), nil, fastParams()); err == nil {
		t.Error("should reject empty password")
	}
}

func TestEncrypt_RandomizedOutput(t *testing.T) {
	a, err := Encrypt([]byte("same"), []byte("pw"), fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	b, err := Encrypt([]byte("same"), []byte("pw"), fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("encrypting twice should use fresh salt and nonce")
	}
}

func TestDecrypt_WrongPassword(t *testing.T) {
	encrypted, err := Encrypt([]byte("secret"), []byte("correct"), fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	if _, err := Decrypt(encrypted, []byte("wrong")); err == nil {
		t.Error("should fail with wrong password")
	}
}

func TestDecrypt_TamperedHeader(t *testing.T) {
	encrypted, err := Encrypt([]byte("secret"), []byte("pw"), fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	// Flip a salt byte; the header is authenticated.
	encrypted[5] ^= 0x01
	if _, err := Decrypt(encrypted, []byte("pw")); err == nil {
		t.Error("should fail on tampered header")
	}
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	encrypted, err := Encrypt([]byte("secret"), []byte("pw"), fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	encrypted[len(encrypted)-1] ^= 0xFF
	if _, err := Decrypt(encrypted, []byte("pw")); err == nil {
		t.Error("should fail on tampered ciphertext")
	}
}

func TestDecrypt_TooShort(t *testing.T) {
	if _, err := Decrypt([]byte("short"), []byte("pw")); err == nil {
		t.Error("should reject short input")
	}
}

func TestDecrypt_BadMagic(t *testing.T) {
	encrypted, err := Encrypt([]byte("secret"), []byte("pw"), fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	encrypted[0] = 'X'
	if _, err := Decrypt(encrypted, []byte("pw")); err == nil {
		t.Error("should reject unknown envelope")
	}
}

func TestDecrypt_ExcessiveParams(t *testing.T) {
	// Offsets inside the header: magic(4) | salt(16) | memory(4) | iterations(4) | parallelism(1).
	const memOff, iterOff, parOff = 20, 24, 28

	tests := []struct {
		name   string
		mutate func(b []byte)
	}{
		{"iterations", func(b []byte) { binary.LittleEndian.PutUint32(b[iterOff:], 1<<30) }},
		{"memory", func(b []byte) { binary.LittleEndian.PutUint32(b[memOff:], 1<<31) }},
		{"parallelism", func(b []byte) { b[parOff] = 255 }},
		{"zero iterations", func(b []byte) { binary.LittleEndian.PutUint32(b[iterOff:], 0) }},
		{"zero parallelism", func(b []byte) { b[parOff] = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted, err := Encrypt([]byte("secret"), []byte("pw"), fastParams())
			if err != nil {
				t.Fatalf("Encrypt() error: %v", err)
			}
			tt.mutate(encrypted)

			done := make(chan error, 1)
			go func() {
				_, err := Decrypt(encrypted, []byte("pw"))
				done <- err
			}()

			select {
			case err := <-done:
				if err == nil || !strings.Contains(err.Error(), "invalid key derivation parameters") {
					t.Errorf("error = %v, want invalid key derivation parameters", err)
				}
			case <-time.After(3 * time.Second):
				t.Fatal("Decrypt did not reject out-of-range parameters")
			}
		})
	}
}

func TestEncrypt_ExcessiveParams(t *testing.T) {
	params := fastParams()
	params.Iterations = MaxIterations + 1
	if _, err := Encrypt([]byte("secret"), []byte("pw"), params); err == nil {
		t.Error("should reject parameters Decrypt would refuse")
	}
}

func TestDefaultParams_WithinBounds(t *testing.T) {
	if err := DefaultParams().validate(); err != nil {
		t.Errorf("DefaultParams() rejected: %v", err)
	}
}
