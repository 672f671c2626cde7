// Package wordlist loads BIP-39 dictionaries from disk or the built-in
// English list.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"

	"github.com/Klingon-tech/mnemonicgen/internal/mnemonic"
	"github.com/Klingon-tech/mnemonicgen/pkg/crypto"
)

var englishFingerprint = crypto.HashLines(wordlists.English)

// English returns a copy of the standard BIP-39 English wordlist.
func English() mnemonic.Wordlist {
	wl := make(mnemonic.Wordlist, len(wordlists.English))
	copy(wl, wordlists.English)
	return wl
}

// Load reads a wordlist file with one word per line. Surrounding whitespace
// is trimmed and blank lines are skipped. The list must hold at least 2048
// unique words.
func Load(path string) (mnemonic.Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mnemonic.ErrWordlistUnreadable, err)
	}
	defer f.Close()

	var wl mnemonic.Wordlist
	seen := make(map[string]int, mnemonic.WordlistSize)
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if prev, ok := seen[word]; ok {
			return nil, fmt.Errorf("%w: line %d: duplicate word %q (first on line %d)",
				mnemonic.ErrWordlistUnreadable, lineNum, word, prev)
		}
		seen[word] = lineNum
		wl = append(wl, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", mnemonic.ErrWordlistUnreadable, err)
	}

	if err := wl.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return wl, nil
}

// Fingerprint returns a BLAKE3 digest identifying the list contents and order.
func Fingerprint(wl mnemonic.Wordlist) crypto.Digest {
	return crypto.HashLines(wl)
}

// IsStandardEnglish reports whether wl is exactly the BIP-39 English list.
func IsStandardEnglish(wl mnemonic.Wordlist) bool {
	return Fingerprint(wl) == englishFingerprint
}
