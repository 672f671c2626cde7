package mnemonic

import "errors"

// Mnemonic generation errors.
var (
	ErrInvalidEntropySize      = errors.New("invalid entropy size")
	ErrRandomSourceUnavailable = errors.New("random source unavailable")
	ErrWordlistTooShort        = errors.New("wordlist too short")
	ErrWordlistUnreadable      = errors.New("wordlist unreadable")
	ErrOutputWriteFailure      = errors.New("output write failure")
)
