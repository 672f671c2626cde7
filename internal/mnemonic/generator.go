package mnemonic

// Generator runs the full pipeline for a fixed entropy size and wordlist.
type Generator struct {
	entropyBits int
	wordlist    Wordlist
	source      *EntropySource
}

// NewGenerator validates the configuration up front so that a bad size or
// wordlist fails before any randomness is drawn.
func NewGenerator(entropyBits int, wl Wordlist) (*Generator, error) {
	if err := ValidateEntropySize(entropyBits); err != nil {
		return nil, err
	}
	if err := wl.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		entropyBits: entropyBits,
		wordlist:    wl,
		source:      NewEntropySource(),
	}, nil
}

// EntropyBits returns the configured entropy size.
func (g *Generator) EntropyBits() int {
	return g.entropyBits
}

// WordCount returns the number of words each generated mnemonic has.
func (g *Generator) WordCount() int {
	return (g.entropyBits + ChecksumBits(g.entropyBits)) / WordBits
}

// Generate draws fresh entropy and returns its mnemonic.
func (g *Generator) Generate() (Mnemonic, error) {
	e, err := g.source.Generate(g.entropyBits)
	if err != nil {
		return Mnemonic{}, err
	}
	return g.FromEntropy(e)
}

// FromEntropy maps caller-supplied entropy to its mnemonic.
func (g *Generator) FromEntropy(e Entropy) (Mnemonic, error) {
	if err := ValidateEntropySize(e.Bits()); err != nil {
		return Mnemonic{}, err
	}
	return MapWords(Encode(e), g.wordlist)
}
