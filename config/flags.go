package config

import (
	"flag"
	"fmt"
	"io"
)

// ErrHelp is returned by ParseArgs when -h or --help was requested. The
// usage text has already been written at that point.
var ErrHelp = flag.ErrHelp

// Flags holds parsed command-line flags.
type Flags struct {
	Version bool

	Config string

	// Generation
	Bits     int
	Wordlist string

	// Output
	Output  string
	Encrypt bool
	Decrypt string

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Remaining args
	Args []string

	// Explicitly-set bool flags (for true/false overrides).
	SetEncrypt bool
	SetLogJSON bool
}

// ParseArgs parses command-line arguments (without the program name).
func ParseArgs(args []string, stderr io.Writer) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("mnemonicgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&f.Version, "version", false, "Show version information")
	fs.BoolVar(&f.Version, "v", false, "Show version (shorthand)")

	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")

	fs.IntVar(&f.Bits, "bits", 0, "Entropy size in bits (128, 160, 192, 224, 256)")
	fs.StringVar(&f.Wordlist, "wordlist", "", "Wordlist file (default: built-in BIP-39 English)")

	fs.StringVar(&f.Output, "output", "", "Write the mnemonic to this file")
	fs.StringVar(&f.Output, "output_file", "", "Write the mnemonic to this file")
	fs.StringVar(&f.Output, "o", "", "Write the mnemonic to this file (shorthand)")
	fs.BoolVar(&f.Encrypt, "encrypt", false, "Encrypt the output file with a password")
	fs.StringVar(&f.Decrypt, "decrypt", "", "Print the mnemonic stored in an encrypted file")

	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	fs.Usage = func() {
		printUsage(stderr)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f.SetEncrypt = isFlagSet(fs, "encrypt")
	f.SetLogJSON = isFlagSet(fs, "log-json")
	f.Args = fs.Args()

	if len(f.Args) > 0 {
		return nil, fmt.Errorf("unexpected argument %q", f.Args[0])
	}
	return f, nil
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	if f.Bits != 0 {
		cfg.EntropyBits = f.Bits
	}
	if f.Wordlist != "" {
		cfg.WordlistFile = f.Wordlist
	}

	if f.Output != "" {
		cfg.Output.File = f.Output
	}
	if f.SetEncrypt {
		cfg.Output.Encrypt = f.Encrypt
	}
	if f.Decrypt != "" {
		cfg.DecryptFile = f.Decrypt
	}

	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// isFlagSet checks if a flag was explicitly set.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func printUsage(w io.Writer) {
	usage := `mnemonicgen - generate a BIP-39 mnemonic phrase

Usage:
  mnemonicgen [options]
  mnemonicgen --help

Commands:
  --help, -h        Show this help message
  --version, -v     Show version information

Generation Options:
  --bits            Entropy size: 128 (12 words, default), 160, 192, 224, 256 (24 words)
  --wordlist        Wordlist file, one word per line (default: built-in English)
  --config, -c      Config file path (key = value format)

Output Options:
  --output, -o      Write the mnemonic to this file instead of stdout
  --encrypt         Encrypt the output file with a password (Argon2id + XChaCha20)
  --decrypt         Print the mnemonic stored in an encrypted file

Logging Options:
  --log-level       Log level: debug, info, warn, error (default: warn)
  --log-file        Also write JSON logs to this file
  --log-json        Output logs as JSON

Examples:
  # 12-word mnemonic on stdout
  mnemonicgen

  # 24-word mnemonic written to a file
  mnemonicgen --bits=256 -o seed.txt

  # Password-protected file
  mnemonicgen --encrypt -o seed.enc
  mnemonicgen --decrypt seed.enc
`
	fmt.Fprint(w, usage)
}

// Load builds the configuration with the following precedence:
// 1. Default values
// 2. Config file (when --config is given)
// 3. Command-line flags
func Load(args []string, stderr io.Writer) (*Config, *Flags, error) {
	flags, err := ParseArgs(args, stderr)
	if err != nil {
		return nil, nil, err
	}

	cfg := Default()
	if flags.Version {
		return cfg, flags, nil
	}

	if flags.Config != "" {
		values, err := LoadFile(flags.Config)
		if err != nil {
			return nil, nil, fmt.Errorf("load config file: %w", err)
		}
		if err := ApplyFileConfig(cfg, values); err != nil {
			return nil, nil, err
		}
	}

	ApplyFlags(cfg, flags)

	if err := Validate(cfg); err != nil {
		return nil, nil, err
	}
	return cfg, flags, nil
}
