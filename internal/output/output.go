// Package output writes generated mnemonics to stdout or a file.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/Klingon-tech/mnemonicgen/internal/mnemonic"
)

// FileMode is the permission used for mnemonic files. Mnemonics are secrets.
const FileMode = 0600

// Write sends text to dest. An empty dest means stdout, where a newline is
// appended; files receive exactly text and are truncated first.
func Write(dest, text string) error {
	if dest == "" {
		return writeStream(os.Stdout, text+"\n")
	}
	return writeFile(dest, []byte(text))
}

// WriteEncrypted encrypts text with password and writes the envelope to
// dest. Encrypted output always goes to a file.
func WriteEncrypted(dest, text string, password []byte, params EncryptionParams) error {
	if dest == "" {
		return fmt.Errorf("%w: encrypted output requires a file destination", mnemonic.ErrOutputWriteFailure)
	}
	data, err := Encrypt([]byte(text), password, params)
	if err != nil {
		return fmt.Errorf("%w: %v", mnemonic.ErrOutputWriteFailure, err)
	}
	return writeFile(dest, data)
}

// ReadEncrypted reads an envelope written by WriteEncrypted and returns the
// plaintext.
func ReadEncrypted(path string, password []byte) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	plain, err := Decrypt(data, password)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func writeStream(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("%w: %v", mnemonic.ErrOutputWriteFailure, err)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, FileMode)
	if err != nil {
		return fmt.Errorf("%w: %v", mnemonic.ErrOutputWriteFailure, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", mnemonic.ErrOutputWriteFailure, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", mnemonic.ErrOutputWriteFailure, err)
	}
	return nil
}
