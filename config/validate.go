package config

import (
	"fmt"

	"github.com/Klingon-tech/mnemonicgen/internal/log"
	"github.com/Klingon-tech/mnemonicgen/internal/mnemonic"
)

// Validate checks the config for operator mistakes before any work is done.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := mnemonic.ValidateEntropySize(cfg.EntropyBits); err != nil {
		return fmt.Errorf("entropy.bits: %w", err)
	}
	if cfg.Output.Encrypt && cfg.Output.File == "" {
		return fmt.Errorf("output.encrypt requires output.file")
	}
	if cfg.DecryptFile != "" && cfg.Output.Encrypt {
		return fmt.Errorf("--decrypt cannot be combined with --encrypt")
	}
	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, or error")
	}
	return nil
}
