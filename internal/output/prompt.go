package output

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ReadPassword prompts on stderr and reads a password from stdin without echo.
func ReadPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	return password, nil
}

// ReadNewPassword prompts twice and requires both entries to match.
func ReadNewPassword() ([]byte, error) {
	password, err := ReadPassword("Enter password: ")
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	confirm, err := ReadPassword("Confirm password: ")
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	if !bytes.Equal(password, confirm) {
		return nil, fmt.Errorf("passwords do not match")
	}
	if len(password) == 0 {
		return nil, fmt.Errorf("password must not be empty")
	}
	return password, nil
}
