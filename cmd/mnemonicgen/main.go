// mnemonicgen generates a BIP-39 mnemonic phrase from fresh OS entropy.
//
// Usage:
//
//	mnemonicgen [--bits=128] [-o file]   Generate a mnemonic
//	mnemonicgen --help                    Show help
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Klingon-tech/mnemonicgen/config"
	"github.com/Klingon-tech/mnemonicgen/internal/log"
	"github.com/Klingon-tech/mnemonicgen/internal/mnemonic"
	"github.com/Klingon-tech/mnemonicgen/internal/output"
	"github.com/Klingon-tech/mnemonicgen/internal/wordlist"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, flags, err := config.Load(args, os.Stderr)
	if errors.Is(err, config.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if flags.Version {
		fmt.Printf("mnemonicgen %s\n", version)
		return nil
	}

	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	log.CLI.Debug().
		Str("version", version).
		Int("entropy_bits", cfg.EntropyBits).
		Bool("stdout", cfg.Output.File == "").
		Bool("encrypt", cfg.Output.Encrypt).
		Msg("Starting")

	if cfg.DecryptFile != "" {
		return decrypt(cfg.DecryptFile)
	}
	return generate(cfg)
}

func generate(cfg *config.Config) error {
	wl, err := loadWordlist(cfg.WordlistFile)
	if err != nil {
		return err
	}

	gen, err := mnemonic.NewGenerator(cfg.EntropyBits, wl)
	if err != nil {
		return err
	}

	done := log.Benchmark("generate")
	m, err := gen.Generate()
	done()
	if err != nil {
		return err
	}
	log.Generator.Info().
		Int("entropy_bits", gen.EntropyBits()).
		Int("words", m.Len()).
		Msg("Mnemonic generated")

	text := m.Format()
	if cfg.Output.Encrypt {
		password, err := output.ReadNewPassword()
		if err != nil {
			return err
		}
		if err := output.WriteEncrypted(cfg.Output.File, text, password, output.DefaultParams()); err != nil {
			return err
		}
		log.Output.Info().Str("file", cfg.Output.File).Msg("Encrypted mnemonic written")
		return nil
	}

	if err := output.Write(cfg.Output.File, text); err != nil {
		return err
	}
	if cfg.Output.File != "" {
		log.Output.Info().Str("file", cfg.Output.File).Msg("Mnemonic written")
		if output.IsTerminal(os.Stderr) {
			fmt.Fprintf(os.Stderr, "Mnemonic written to %s. Keep it somewhere safe; it cannot be recovered.\n", cfg.Output.File)
		}
	}
	return nil
}

func loadWordlist(path string) (mnemonic.Wordlist, error) {
	if path == "" {
		wl := wordlist.English()
		log.Wordlist.Debug().Str("source", "builtin").Msg("Using BIP-39 English wordlist")
		return wl, nil
	}

	wl, err := wordlist.Load(path)
	if err != nil {
		return nil, err
	}
	fp := wordlist.Fingerprint(wl)
	log.Wordlist.Debug().
		Str("file", path).
		Int("words", len(wl)).
		Str("fingerprint", fp.Short()).
		Msg("Wordlist loaded")
	if !wordlist.IsStandardEnglish(wl) {
		log.Wordlist.Warn().
			Str("file", path).
			Str("fingerprint", fp.String()).
			Msg("Wordlist differs from the BIP-39 English list; other wallets may not accept this mnemonic")
	}
	return wl, nil
}

func decrypt(path string) error {
	log.CLI.Info().Str("file", path).Msg("Decrypting stored mnemonic")
	password, err := output.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	text, err := output.ReadEncrypted(path, password)
	if err != nil {
		log.CLI.Warn().Str("file", path).Msg("Decryption failed")
		return err
	}
	return output.Write("", text)
}
