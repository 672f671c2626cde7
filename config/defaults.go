package config

import "github.com/Klingon-tech/mnemonicgen/internal/mnemonic"

// Default returns the default configuration: a 12-word mnemonic from the
// built-in English list, written to stdout.
func Default() *Config {
	return &Config{
		EntropyBits: mnemonic.DefaultEntropyBits,
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
