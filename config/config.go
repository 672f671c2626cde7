// Package config handles application configuration.
//
// Values are layered: built-in defaults, then an optional key = value
// config file, then command-line flags. The resulting Config is passed
// explicitly into the generator; nothing reads it globally.
package config

// Config holds runtime configuration for a single generation run.
type Config struct {
	// EntropyBits selects the mnemonic length (128 → 12 words ... 256 → 24).
	EntropyBits int `conf:"entropy.bits"`

	// WordlistFile is a path to a one-word-per-line dictionary. Empty means
	// the built-in BIP-39 English list.
	WordlistFile string `conf:"wordlist.file"`

	// Output
	Output OutputConfig

	// Logging
	Log LogConfig

	// DecryptFile, when set, switches the run to printing a previously
	// encrypted mnemonic instead of generating one (not persisted in config file).
	DecryptFile string
}

// OutputConfig holds output destination settings.
type OutputConfig struct {
	File    string `conf:"output.file"`    // Empty = stdout
	Encrypt bool   `conf:"output.encrypt"` // Requires File
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}
